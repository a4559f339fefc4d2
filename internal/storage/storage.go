// Package storage implements the on-device persistent key-value store that
// backs every durable projection of the client: the account directory, the
// current session, the favourites list, and the preference flags.
//
// Operations are not atomic across keys. A crash between two writes can leave
// related keys inconsistent; callers must tolerate an absent or stale value
// on the next read and fall back to defaults.
package storage

import "context"

// Persisted key layout. Values are serialized structures (JSON) except
// KeyDarkMode, which stores the literal strings "true"/"false".
const (
	KeyUsers             = "users"
	KeySession           = "user"
	KeyFavourites        = "favs"
	KeyDarkMode          = "darkMode"
	KeyNotificationPrefs = "notificationPrefs"
	KeySecurityPrefs     = "securityPrefs"
	KeySettingsPrefs     = "settingsPrefs"
)

// Store is the single I/O boundary of the core. An absent key reads as
// (nil, nil), not as an error.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	// Update applies fn to the current value of key (nil when absent) and
	// writes the result back as one read-modify-write. An error from fn
	// aborts the update and leaves the stored value unchanged.
	Update(ctx context.Context, key string, fn func(old []byte) ([]byte, error)) error
	Delete(ctx context.Context, key string) error
	List(ctx context.Context) (map[string][]byte, error)
	Clear(ctx context.Context) error
}
