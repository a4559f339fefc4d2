// Package session owns the current logged-in identity: establishing it on
// login or registration, persisting it across restarts, patching it on
// profile edits, and clearing it on logout.
package session

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/coursemate/coursemate/internal/accounts"
	"github.com/coursemate/coursemate/internal/common"
	"github.com/coursemate/coursemate/internal/models"
	"github.com/coursemate/coursemate/internal/storage"
)

// Manager drives the session lifecycle. Every method that establishes a
// session persists the identity under the session key with the password
// stripped.
type Manager interface {
	// Login authenticates against the directory and establishes a session.
	Login(ctx context.Context, username, password string) (*models.SessionIdentity, error)

	// Register creates the account and immediately establishes a session,
	// identically to Login. Registration implies authentication.
	Register(ctx context.Context, username, email, password string) (*models.SessionIdentity, error)

	// Logout clears the persisted session and the in-memory identity. It is
	// idempotent: logging out while logged out succeeds.
	Logout(ctx context.Context) error

	// UpdateProfile patches both the in-memory identity and the backing
	// account record. Fails with common.ErrNoActiveSession when logged out.
	UpdateProfile(ctx context.Context, patch models.ProfilePatch) (*models.SessionIdentity, error)

	// Restore loads a previously persisted session, if any. An absent
	// session key is not an error and leaves the manager logged out.
	Restore(ctx context.Context) (*models.SessionIdentity, error)

	// Current returns the active identity, or nil when logged out.
	Current() *models.SessionIdentity
}

type manager struct {
	directory accounts.Directory
	store     storage.Store

	current *models.SessionIdentity
	// usernameKey of the account backing the current session. Needed for
	// profile updates because the display name may differ in casing.
	currentKey string
}

// NewManager returns a Manager bound to the given directory and store.
func NewManager(directory accounts.Directory, store storage.Store) Manager {
	return &manager{directory: directory, store: store}
}

func (m *manager) establish(ctx context.Context, record *models.AccountRecord) (*models.SessionIdentity, error) {
	identity := record.Session()
	if err := m.persist(ctx, identity); err != nil {
		return nil, err
	}
	m.current = identity
	m.currentKey = accounts.NormalizeUsername(record.Username)
	return identity, nil
}

func (m *manager) persist(ctx context.Context, identity *models.SessionIdentity) error {
	data, err := json.Marshal(identity)
	if err != nil {
		return fmt.Errorf("failed to encode session: %w", err)
	}
	if err := m.store.Set(ctx, storage.KeySession, data); err != nil {
		return fmt.Errorf("failed to persist session: %w", err)
	}
	return nil
}

func (m *manager) Login(ctx context.Context, username, password string) (*models.SessionIdentity, error) {
	record, err := m.directory.Authenticate(ctx, username, password)
	if err != nil {
		return nil, err
	}
	return m.establish(ctx, record)
}

func (m *manager) Register(ctx context.Context, username, email, password string) (*models.SessionIdentity, error) {
	record, err := m.directory.Register(ctx, username, email, password)
	if err != nil {
		return nil, err
	}
	return m.establish(ctx, record)
}

func (m *manager) Logout(ctx context.Context) error {
	if err := m.store.Delete(ctx, storage.KeySession); err != nil {
		return fmt.Errorf("failed to clear session: %w", err)
	}
	m.current = nil
	m.currentKey = ""
	return nil
}

func (m *manager) UpdateProfile(ctx context.Context, patch models.ProfilePatch) (*models.SessionIdentity, error) {
	if m.current == nil {
		return nil, common.ErrNoActiveSession
	}

	record, err := m.directory.UpdateRecord(ctx, m.currentKey, patch)
	if err != nil {
		return nil, err
	}

	identity := record.Session()
	if err := m.persist(ctx, identity); err != nil {
		return nil, err
	}
	m.current = identity
	return identity, nil
}

func (m *manager) Restore(ctx context.Context) (*models.SessionIdentity, error) {
	data, err := m.store.Get(ctx, storage.KeySession)
	if err != nil {
		return nil, fmt.Errorf("failed to load session: %w", err)
	}
	if len(data) == 0 {
		return nil, nil
	}

	var identity models.SessionIdentity
	if err := json.Unmarshal(data, &identity); err != nil {
		return nil, fmt.Errorf("failed to decode session: %w", err)
	}

	m.current = &identity
	m.currentKey = accounts.NormalizeUsername(identity.Username)
	return &identity, nil
}

func (m *manager) Current() *models.SessionIdentity {
	return m.current
}
