package storage

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"
)

func setupDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", "file:storage_tests?mode=memory&cache=shared")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	_, err = db.Exec(`CREATE TABLE IF NOT EXISTS kv (key TEXT PRIMARY KEY, value BLOB NOT NULL);`)
	require.NoError(t, err)
	_, err = db.Exec(`DELETE FROM kv`)
	require.NoError(t, err)
	return db
}

func TestSQLiteStore_GetAbsentKey(t *testing.T) {
	s := NewSQLiteStore(setupDB(t))

	v, err := s.Get(context.Background(), "missing")
	require.NoError(t, err, "absent key must not be an error")
	require.Nil(t, v)
}

func TestSQLiteStore_SetGetRoundTrip(t *testing.T) {
	s := NewSQLiteStore(setupDB(t))
	ctx := context.Background()

	require.NoError(t, s.Set(ctx, "k", []byte("v1")))

	v, err := s.Get(ctx, "k")
	require.NoError(t, err)
	require.Equal(t, []byte("v1"), v)
}

func TestSQLiteStore_SetOverwrites(t *testing.T) {
	s := NewSQLiteStore(setupDB(t))
	ctx := context.Background()

	require.NoError(t, s.Set(ctx, "k", []byte("v1")))
	require.NoError(t, s.Set(ctx, "k", []byte("v2")))

	v, err := s.Get(ctx, "k")
	require.NoError(t, err)
	require.Equal(t, []byte("v2"), v)
}

func TestSQLiteStore_Delete(t *testing.T) {
	s := NewSQLiteStore(setupDB(t))
	ctx := context.Background()

	require.NoError(t, s.Set(ctx, "k", []byte("v")))
	require.NoError(t, s.Delete(ctx, "k"))

	v, err := s.Get(ctx, "k")
	require.NoError(t, err)
	require.Nil(t, v)

	require.NoError(t, s.Delete(ctx, "k"), "deleting an absent key is not an error")
}

func TestSQLiteStore_UpdateReadModifyWrite(t *testing.T) {
	s := NewSQLiteStore(setupDB(t))
	ctx := context.Background()

	err := s.Update(ctx, "k", func(old []byte) ([]byte, error) {
		require.Nil(t, old, "absent key reads as nil inside the update")
		return []byte("v1"), nil
	})
	require.NoError(t, err)

	err = s.Update(ctx, "k", func(old []byte) ([]byte, error) {
		require.Equal(t, []byte("v1"), old)
		return append(old, '2'), nil
	})
	require.NoError(t, err)

	v, err := s.Get(ctx, "k")
	require.NoError(t, err)
	require.Equal(t, []byte("v12"), v)
}

func TestSQLiteStore_UpdateAbortsOnFnError(t *testing.T) {
	s := NewSQLiteStore(setupDB(t))
	ctx := context.Background()

	require.NoError(t, s.Set(ctx, "k", []byte("v1")))

	boom := errors.New("boom")
	err := s.Update(ctx, "k", func(old []byte) ([]byte, error) {
		return nil, boom
	})
	require.ErrorIs(t, err, boom)

	v, err := s.Get(ctx, "k")
	require.NoError(t, err)
	require.Equal(t, []byte("v1"), v, "a failed update leaves the stored value unchanged")
}

func TestSQLiteStore_ListAndClear(t *testing.T) {
	s := NewSQLiteStore(setupDB(t))
	ctx := context.Background()

	require.NoError(t, s.Set(ctx, "a", []byte("1")))
	require.NoError(t, s.Set(ctx, "b", []byte("2")))

	all, err := s.List(ctx)
	require.NoError(t, err)
	require.Equal(t, map[string][]byte{"a": []byte("1"), "b": []byte("2")}, all)

	require.NoError(t, s.Clear(ctx))
	all, err = s.List(ctx)
	require.NoError(t, err)
	require.Empty(t, all)
}

func TestOpen_AppliesMigrations(t *testing.T) {
	db, s, err := Open(context.Background(), "file:storage_open_test?mode=memory&cache=shared")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	ctx := context.Background()
	require.NoError(t, s.Set(ctx, bootCheckKey, []byte("ok")))

	v, err := s.Get(ctx, bootCheckKey)
	require.NoError(t, err)
	require.Equal(t, []byte("ok"), v)
}

const bootCheckKey = "bootcheck"
