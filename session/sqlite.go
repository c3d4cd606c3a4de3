// ABOUTME: SQLite-backed session store keeping string values in a single key/value table.
package session

import (
	"database/sql"
	"errors"
	"fmt"

	_ "github.com/mattn/go-sqlite3"
)

// SqliteStore keeps session values in a SQLite database.
type SqliteStore struct {
	db *sql.DB
}

// OpenSqlite opens or creates a session database at path.
func OpenSqlite(path string) (*SqliteStore, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("set WAL mode: %w", err)
	}

	schema := `
		CREATE TABLE IF NOT EXISTS session (
			key TEXT PRIMARY KEY,
			value TEXT NOT NULL,
			updated_at TEXT NOT NULL DEFAULT (strftime('%Y-%m-%dT%H:%M:%SZ', 'now'))
		);`
	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("create schema: %w", err)
	}

	return &SqliteStore{db: db}, nil
}

// Close closes the database connection.
func (s *SqliteStore) Close() error {
	return s.db.Close()
}

// Get returns the value for key, or ErrNotFound.
func (s *SqliteStore) Get(key string) (string, error) {
	var value string
	err := s.db.QueryRow("SELECT value FROM session WHERE key = ?", key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", ErrNotFound
	}
	if err != nil {
		return "", fmt.Errorf("get session %s: %w", key, err)
	}
	return value, nil
}

// Set upserts the value for key.
func (s *SqliteStore) Set(key, value string) error {
	_, err := s.db.Exec(
		`INSERT INTO session (key, value, updated_at)
		 VALUES (?, ?, strftime('%Y-%m-%dT%H:%M:%SZ', 'now'))
		 ON CONFLICT(key) DO UPDATE SET
			value = excluded.value,
			updated_at = excluded.updated_at`,
		key, value,
	)
	if err != nil {
		return fmt.Errorf("set session %s: %w", key, err)
	}
	return nil
}

// Delete removes key. Deleting a missing key is not an error.
func (s *SqliteStore) Delete(key string) error {
	if _, err := s.db.Exec("DELETE FROM session WHERE key = ?", key); err != nil {
		return fmt.Errorf("delete session %s: %w", key, err)
	}
	return nil
}
