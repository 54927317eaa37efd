// Package storage is the durable store adapter: a small key-value layer
// over a local SQLite database holding the four records that survive
// restarts (auth token, user profile, favourites list, theme flag).
//
// Every operation is fallible but no failure escapes this boundary as an
// error: reads report absence, writes report a boolean outcome, and the
// underlying cause is logged. There are no retries. The in-memory state
// containers are the source of truth while the process runs; this adapter
// only has to be eventually consistent with them.
package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	_ "modernc.org/sqlite"
)

// Key identifies one of the fixed persisted records.
type Key string

// The four records the application persists.
const (
	KeyToken      Key = "user_token"
	KeyUser       Key = "user_data"
	KeyFavourites Key = "favourites"
	KeyTheme      Key = "theme"
)

const schema = `
CREATE TABLE IF NOT EXISTS records (
	key TEXT PRIMARY KEY,
	value TEXT NOT NULL
);
`

// Open opens (creating if needed) the SQLite database at path. The
// returned handle is shared between this package's Store and any other
// SQLite-backed component.
func Open(path string) (*sql.DB, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}
	return db, nil
}

// Store persists the fixed application records in SQLite.
type Store struct {
	db     *sql.DB
	logger *slog.Logger
}

// NewStore creates a Store using an existing database connection.
func NewStore(db *sql.DB, logger *slog.Logger) (*Store, error) {
	if db == nil {
		return nil, errors.New("storage: db is nil")
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	if _, err := db.Exec(schema); err != nil {
		return nil, fmt.Errorf("storage: create schema: %w", err)
	}
	return &Store{db: db, logger: logger}, nil
}

// Get returns the raw value for key, reporting absence (or any read
// failure) as ok=false.
func (s *Store) Get(ctx context.Context, key Key) (string, bool) {
	row := s.db.QueryRowContext(ctx, `SELECT value FROM records WHERE key = ?`, string(key))
	var value string
	if err := row.Scan(&value); err != nil {
		if !errors.Is(err, sql.ErrNoRows) {
			s.logger.Warn("storage read failed", "key", key, "error", err)
		}
		return "", false
	}
	return value, true
}

// Set writes the raw value for key, replacing any previous value.
func (s *Store) Set(ctx context.Context, key Key, value string) bool {
	_, err := s.db.ExecContext(ctx, `
INSERT INTO records (key, value) VALUES (?, ?)
ON CONFLICT(key) DO UPDATE SET value = excluded.value`, string(key), value)
	if err != nil {
		s.logger.Warn("storage write failed", "key", key, "error", err)
		return false
	}
	return true
}

// Remove deletes the record for key. Removing an absent key succeeds.
func (s *Store) Remove(ctx context.Context, key Key) bool {
	_, err := s.db.ExecContext(ctx, `DELETE FROM records WHERE key = ?`, string(key))
	if err != nil {
		s.logger.Warn("storage remove failed", "key", key, "error", err)
		return false
	}
	return true
}

// RemoveMany deletes several records in one statement.
func (s *Store) RemoveMany(ctx context.Context, keys ...Key) bool {
	if len(keys) == 0 {
		return true
	}
	placeholders := strings.TrimSuffix(strings.Repeat("?, ", len(keys)), ", ")
	args := make([]any, len(keys))
	for i, k := range keys {
		args[i] = string(k)
	}
	_, err := s.db.ExecContext(ctx, `DELETE FROM records WHERE key IN (`+placeholders+`)`, args...)
	if err != nil {
		s.logger.Warn("storage remove failed", "keys", keys, "error", err)
		return false
	}
	return true
}
