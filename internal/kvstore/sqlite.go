package kvstore

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/avoigt/timecard/internal/db"
)

// SQLiteStore implements Store on a single SQLite table.
type SQLiteStore struct {
	db db.DBTX
}

// NewSQLiteStore creates a Store backed by the given connection.
func NewSQLiteStore(conn db.DBTX) *SQLiteStore {
	return &SQLiteStore{db: conn}
}

func (s *SQLiteStore) Get(ctx context.Context, key string) (string, bool, error) {
	var value string
	err := s.db.QueryRowContext(ctx, `SELECT value FROM kv WHERE key = ?`, key).Scan(&value)
	if err == sql.ErrNoRows {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("reading key %q: %w", key, err)
	}
	return value, true, nil
}

func (s *SQLiteStore) Set(ctx context.Context, key, value string) error {
	query := `INSERT OR REPLACE INTO kv (key, value) VALUES (?, ?)`
	if _, err := s.db.ExecContext(ctx, query, key, value); err != nil {
		return fmt.Errorf("writing key %q: %w", key, err)
	}
	return nil
}

func (s *SQLiteStore) Remove(ctx context.Context, key string) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM kv WHERE key = ?`, key); err != nil {
		return fmt.Errorf("removing key %q: %w", key, err)
	}
	return nil
}
