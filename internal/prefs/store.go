// Package prefs persists the user's preference flags. The dark-mode flag
// lives under its own key as the strings "true"/"false"; the notification,
// security and settings toggles are grouped into per-screen JSON blobs, each
// under its own key. Flags are independent: a setter touches only its own key
// and there are no cross-flag invariants.
package prefs

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/coursemate/coursemate/internal/models"
	"github.com/coursemate/coursemate/internal/storage"
)

// Store reads and writes preference flags. Loads treat an absent key, or a
// storage read failure, as "use defaults"; writes report failure to the
// caller.
type Store interface {
	DarkMode(ctx context.Context) (bool, error)
	SetDarkMode(ctx context.Context, on bool) error

	NotificationPrefs(ctx context.Context) (models.NotificationPrefs, error)
	SetNotificationPrefs(ctx context.Context, p models.NotificationPrefs) error

	SecurityPrefs(ctx context.Context) (models.SecurityPrefs, error)
	SetSecurityPrefs(ctx context.Context, p models.SecurityPrefs) error

	SettingsPrefs(ctx context.Context) (models.SettingsPrefs, error)
	SetSettingsPrefs(ctx context.Context, p models.SettingsPrefs) error
}

type store struct {
	kv storage.Store
}

// NewStore returns a Store backed by the given key-value store.
func NewStore(kv storage.Store) Store {
	return &store{kv: kv}
}

func (s *store) DarkMode(ctx context.Context) (bool, error) {
	data, err := s.kv.Get(ctx, storage.KeyDarkMode)
	if err != nil || len(data) == 0 {
		return false, nil
	}
	return string(data) == "true", nil
}

func (s *store) SetDarkMode(ctx context.Context, on bool) error {
	value := "false"
	if on {
		value = "true"
	}
	if err := s.kv.Set(ctx, storage.KeyDarkMode, []byte(value)); err != nil {
		return fmt.Errorf("failed to persist dark mode: %w", err)
	}
	return nil
}

// loadGroup decodes the blob under key into dst, which arrives pre-filled
// with defaults. Absent keys, read failures and undecodable blobs all leave
// the defaults in place. Persisted blobs overlay defaults field by field, so
// flags added later still default correctly.
func (s *store) loadGroup(ctx context.Context, key string, dst any) {
	data, err := s.kv.Get(ctx, key)
	if err != nil || len(data) == 0 {
		return
	}
	_ = json.Unmarshal(data, dst)
}

func (s *store) saveGroup(ctx context.Context, key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", key, err)
	}
	if err := s.kv.Set(ctx, key, data); err != nil {
		return fmt.Errorf("failed to persist %s: %w", key, err)
	}
	return nil
}

func (s *store) NotificationPrefs(ctx context.Context) (models.NotificationPrefs, error) {
	p := models.DefaultNotificationPrefs()
	s.loadGroup(ctx, storage.KeyNotificationPrefs, &p)
	return p, nil
}

func (s *store) SetNotificationPrefs(ctx context.Context, p models.NotificationPrefs) error {
	return s.saveGroup(ctx, storage.KeyNotificationPrefs, p)
}

func (s *store) SecurityPrefs(ctx context.Context) (models.SecurityPrefs, error) {
	p := models.DefaultSecurityPrefs()
	s.loadGroup(ctx, storage.KeySecurityPrefs, &p)
	return p, nil
}

func (s *store) SetSecurityPrefs(ctx context.Context, p models.SecurityPrefs) error {
	return s.saveGroup(ctx, storage.KeySecurityPrefs, p)
}

func (s *store) SettingsPrefs(ctx context.Context) (models.SettingsPrefs, error) {
	p := models.DefaultSettingsPrefs()
	s.loadGroup(ctx, storage.KeySettingsPrefs, &p)
	return p, nil
}

func (s *store) SetSettingsPrefs(ctx context.Context, p models.SettingsPrefs) error {
	return s.saveGroup(ctx, storage.KeySettingsPrefs, p)
}
