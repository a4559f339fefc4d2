package prefs

import (
	"context"
	"database/sql"
	"testing"

	"github.com/coursemate/coursemate/internal/models"
	"github.com/coursemate/coursemate/internal/storage"
	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"
)

func setup(t *testing.T) (Store, storage.Store) {
	t.Helper()
	db, err := sql.Open("sqlite", "file:prefs_tests?mode=memory&cache=shared")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	_, err = db.Exec(`CREATE TABLE IF NOT EXISTS kv (key TEXT PRIMARY KEY, value BLOB NOT NULL);`)
	require.NoError(t, err)
	_, err = db.Exec(`DELETE FROM kv`)
	require.NoError(t, err)

	kv := storage.NewSQLiteStore(db)
	return NewStore(kv), kv
}

func TestDarkMode_DefaultsFalse(t *testing.T) {
	s, _ := setup(t)

	on, err := s.DarkMode(context.Background())
	require.NoError(t, err)
	require.False(t, on)
}

func TestDarkMode_RoundTrip(t *testing.T) {
	s, kv := setup(t)
	ctx := context.Background()

	require.NoError(t, s.SetDarkMode(ctx, true))

	raw, err := kv.Get(ctx, storage.KeyDarkMode)
	require.NoError(t, err)
	require.Equal(t, "true", string(raw), "stored as a literal string flag")

	// A fresh store over the same kv simulates a process restart.
	on, err := NewStore(kv).DarkMode(ctx)
	require.NoError(t, err)
	require.True(t, on)

	require.NoError(t, s.SetDarkMode(ctx, false))
	on, err = s.DarkMode(ctx)
	require.NoError(t, err)
	require.False(t, on)
}

func TestNotificationPrefs_Defaults(t *testing.T) {
	s, _ := setup(t)

	p, err := s.NotificationPrefs(context.Background())
	require.NoError(t, err)
	require.Equal(t, models.NotificationPrefs{
		AppNotifications: true,
		CourseReminders:  true,
		EmailUpdates:     false,
	}, p)
}

func TestNotificationPrefs_RoundTrip(t *testing.T) {
	s, kv := setup(t)
	ctx := context.Background()

	want := models.NotificationPrefs{AppNotifications: false, CourseReminders: true, EmailUpdates: true}
	require.NoError(t, s.SetNotificationPrefs(ctx, want))

	got, err := NewStore(kv).NotificationPrefs(ctx)
	require.NoError(t, err)
	require.Equal(t, want, got)
}

func TestSecurityPrefs_DefaultsAndRoundTrip(t *testing.T) {
	s, kv := setup(t)
	ctx := context.Background()

	p, err := s.SecurityPrefs(ctx)
	require.NoError(t, err)
	require.Equal(t, models.SecurityPrefs{
		RequireLoginOnStart: true,
		BiometricUnlock:     false,
		ShareUsageAnalytics: false,
	}, p)

	p.BiometricUnlock = true
	require.NoError(t, s.SetSecurityPrefs(ctx, p))

	got, err := NewStore(kv).SecurityPrefs(ctx)
	require.NoError(t, err)
	require.Equal(t, p, got)
}

func TestSettingsPrefs_DefaultsAndRoundTrip(t *testing.T) {
	s, kv := setup(t)
	ctx := context.Background()

	p, err := s.SettingsPrefs(ctx)
	require.NoError(t, err)
	require.True(t, p.AppSounds)

	require.NoError(t, s.SetSettingsPrefs(ctx, models.SettingsPrefs{AppSounds: false}))

	got, err := NewStore(kv).SettingsPrefs(ctx)
	require.NoError(t, err)
	require.False(t, got.AppSounds)
}

func TestGroupPrefs_PartialBlobOverlaysDefaults(t *testing.T) {
	s, kv := setup(t)
	ctx := context.Background()

	// A blob written by an older build that only knew one flag.
	require.NoError(t, kv.Set(ctx, storage.KeyNotificationPrefs, []byte(`{"emailUpdates":true}`)))

	p, err := s.NotificationPrefs(ctx)
	require.NoError(t, err)
	require.True(t, p.EmailUpdates)
	require.True(t, p.AppNotifications, "missing fields keep their defaults")
	require.True(t, p.CourseReminders)
}

func TestGroupPrefs_CorruptBlobReadsAsDefaults(t *testing.T) {
	s, kv := setup(t)
	ctx := context.Background()

	require.NoError(t, kv.Set(ctx, storage.KeySecurityPrefs, []byte("{broken")))

	p, err := s.SecurityPrefs(ctx)
	require.NoError(t, err)
	require.Equal(t, models.DefaultSecurityPrefs(), p)
}

func TestPrefs_KeysAreIndependent(t *testing.T) {
	s, kv := setup(t)
	ctx := context.Background()

	require.NoError(t, s.SetDarkMode(ctx, true))
	require.NoError(t, s.SetSettingsPrefs(ctx, models.SettingsPrefs{AppSounds: false}))

	// Only the two touched keys exist.
	all, err := kv.List(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
	require.Contains(t, all, storage.KeyDarkMode)
	require.Contains(t, all, storage.KeySettingsPrefs)
}
