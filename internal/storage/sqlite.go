package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/coursemate/coursemate/internal/common"
	"github.com/coursemate/coursemate/internal/dbx"
)

// SQLiteStore implements Store over a single kv(key, value) table using a
// DBTX (either *sql.DB or *sql.Tx).
type SQLiteStore struct {
	db dbx.DBTX
}

// NewSQLiteStore returns a SQLiteStore bound to the given DBTX.
func NewSQLiteStore(db dbx.DBTX) *SQLiteStore {
	return &SQLiteStore{db: db}
}

// Get returns the value stored under key, or (nil, nil) when the key is
// absent.
func (s *SQLiteStore) Get(ctx context.Context, key string) ([]byte, error) {
	var value []byte
	err := s.db.QueryRowContext(ctx, `SELECT value FROM kv WHERE key = ?`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: get kv[%s]: %w", common.ErrStorage, key, err)
	}
	return value, nil
}

// Set upserts the value stored under key.
func (s *SQLiteStore) Set(ctx context.Context, key string, value []byte) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO kv (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value
	`, key, value)
	if err != nil {
		return fmt.Errorf("%w: set kv[%s]: %w", common.ErrStorage, key, err)
	}
	return nil
}

// Update applies fn to the current value of key and writes the result back.
// When the store is bound to a *sql.DB the read-modify-write runs inside a
// single transaction, so a failing fn or write leaves the stored value
// unchanged.
func (s *SQLiteStore) Update(ctx context.Context, key string, fn func(old []byte) ([]byte, error)) error {
	if db, ok := s.db.(*sql.DB); ok {
		return dbx.WithTx(ctx, db, nil, func(ctx context.Context, tx dbx.DBTX) error {
			return update(ctx, &SQLiteStore{db: tx}, key, fn)
		})
	}
	return update(ctx, s, key, fn)
}

func update(ctx context.Context, s *SQLiteStore, key string, fn func(old []byte) ([]byte, error)) error {
	old, err := s.Get(ctx, key)
	if err != nil {
		return err
	}
	next, err := fn(old)
	if err != nil {
		return err
	}
	return s.Set(ctx, key, next)
}

// Delete removes key. Deleting an absent key is not an error.
func (s *SQLiteStore) Delete(ctx context.Context, key string) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM kv WHERE key = ?`, key)
	if err != nil {
		return fmt.Errorf("%w: delete kv[%s]: %w", common.ErrStorage, key, err)
	}
	return nil
}

// List returns every stored key with its value.
func (s *SQLiteStore) List(ctx context.Context) (map[string][]byte, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT key, value FROM kv`)
	if err != nil {
		return nil, fmt.Errorf("%w: list kv: %w", common.ErrStorage, err)
	}
	defer rows.Close()

	result := make(map[string][]byte)
	for rows.Next() {
		var key string
		var value []byte
		if err := rows.Scan(&key, &value); err != nil {
			return nil, fmt.Errorf("%w: scan kv row: %w", common.ErrStorage, err)
		}
		result[key] = value
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: iterate kv rows: %w", common.ErrStorage, err)
	}

	return result, nil
}

// Clear wipes every stored key.
func (s *SQLiteStore) Clear(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM kv`)
	if err != nil {
		return fmt.Errorf("%w: clear kv: %w", common.ErrStorage, err)
	}
	return nil
}
