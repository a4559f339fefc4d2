// Package accounts implements the on-device account directory: the mapping
// of normalized usernames to account records, persisted as a single JSON
// blob in the key-value store.
//
// Every directory mutation is a whole-map read-modify-write. There is no
// partial-key locking, so two concurrent mutations issued before either
// persists can race and the later write overwrites the earlier one. The
// client serializes auth operations through the controller, which is the
// only supported access pattern.
package accounts

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/coursemate/coursemate/internal/common"
	"github.com/coursemate/coursemate/internal/models"
	"github.com/coursemate/coursemate/internal/storage"
	"github.com/google/uuid"
)

// NormalizeUsername returns the canonical directory key for a raw username:
// trimmed and lowercased. Register, Authenticate and UpdateRecord all go
// through this one function so the uniqueness invariant holds under every
// entry point.
func NormalizeUsername(raw string) string {
	return strings.ToLower(strings.TrimSpace(raw))
}

// Directory is the account registry. Lookups are by normalized username.
type Directory interface {
	Register(ctx context.Context, username, email, password string) (*models.AccountRecord, error)
	Authenticate(ctx context.Context, username, password string) (*models.AccountRecord, error)
	UpdateRecord(ctx context.Context, usernameKey string, patch models.ProfilePatch) (*models.AccountRecord, error)
}

type directory struct {
	store storage.Store
}

// NewDirectory returns a Directory backed by the given store.
func NewDirectory(store storage.Store) Directory {
	return &directory{store: store}
}

// load reads the whole directory map. An absent key yields an empty map.
func (d *directory) load(ctx context.Context) (map[string]models.AccountRecord, error) {
	data, err := d.store.Get(ctx, storage.KeyUsers)
	if err != nil {
		return nil, fmt.Errorf("failed to load account directory: %w", err)
	}
	return decodeUsers(data)
}

func decodeUsers(data []byte) (map[string]models.AccountRecord, error) {
	users := make(map[string]models.AccountRecord)
	if len(data) == 0 {
		return users, nil
	}
	if err := json.Unmarshal(data, &users); err != nil {
		return nil, fmt.Errorf("failed to decode account directory: %w", err)
	}
	return users, nil
}

func encodeUsers(users map[string]models.AccountRecord) ([]byte, error) {
	data, err := json.Marshal(users)
	if err != nil {
		return nil, fmt.Errorf("failed to encode account directory: %w", err)
	}
	return data, nil
}

// mutate runs fn against the decoded directory map inside one
// read-modify-write on the store, so the whole-map update is atomic.
func (d *directory) mutate(ctx context.Context, fn func(users map[string]models.AccountRecord) error) error {
	return d.store.Update(ctx, storage.KeyUsers, func(old []byte) ([]byte, error) {
		users, err := decodeUsers(old)
		if err != nil {
			return nil, err
		}
		if err := fn(users); err != nil {
			return nil, err
		}
		return encodeUsers(users)
	})
}

// Register creates a new account. The username is trimmed for display and
// normalized for the directory key. Returns common.ErrAccountExists when the
// key is already taken. Validation of username length/format and email syntax
// is the caller's responsibility.
func (d *directory) Register(ctx context.Context, username, email, password string) (*models.AccountRecord, error) {
	display := strings.TrimSpace(username)
	key := NormalizeUsername(username)

	var record models.AccountRecord
	err := d.mutate(ctx, func(users map[string]models.AccountRecord) error {
		if _, ok := users[key]; ok {
			return common.ErrAccountExists
		}
		record = models.AccountRecord{
			Id:       uuid.NewString(),
			Username: display,
			Email:    strings.TrimSpace(email),
			Password: password,
		}
		users[key] = record
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &record, nil
}

// Authenticate looks up the account by normalized username and compares the
// password byte-for-byte. Returns common.ErrAccountNotFound when no account
// has that key and common.ErrInvalidCredential on a password mismatch.
func (d *directory) Authenticate(ctx context.Context, username, password string) (*models.AccountRecord, error) {
	key := NormalizeUsername(username)

	users, err := d.load(ctx)
	if err != nil {
		return nil, err
	}

	record, ok := users[key]
	if !ok {
		return nil, common.ErrAccountNotFound
	}
	if record.Password != password {
		return nil, common.ErrInvalidCredential
	}

	return &record, nil
}

// UpdateRecord applies a partial update to the record stored under
// usernameKey and persists the directory. The directory key never changes,
// even when the display name casing does, so identity stays stable.
func (d *directory) UpdateRecord(ctx context.Context, usernameKey string, patch models.ProfilePatch) (*models.AccountRecord, error) {
	var record models.AccountRecord
	err := d.mutate(ctx, func(users map[string]models.AccountRecord) error {
		var ok bool
		record, ok = users[usernameKey]
		if !ok {
			return common.ErrAccountNotFound
		}
		if patch.Username != nil {
			record.Username = strings.TrimSpace(*patch.Username)
		}
		if patch.Avatar != nil {
			record.Avatar = *patch.Avatar
		}
		if patch.About != nil {
			record.About = *patch.About
		}
		users[usernameKey] = record
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &record, nil
}
