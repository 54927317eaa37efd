package auth

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	_ "modernc.org/sqlite"
)

const sqliteSchema = `
CREATE TABLE IF NOT EXISTS accounts (
	id TEXT PRIMARY KEY,
	username TEXT NOT NULL,
	email TEXT NOT NULL,
	password TEXT NOT NULL,
	first_name TEXT NOT NULL,
	last_name TEXT NOT NULL
);

CREATE UNIQUE INDEX IF NOT EXISTS idx_accounts_email ON accounts(lower(email));
CREATE UNIQUE INDEX IF NOT EXISTS idx_accounts_username ON accounts(lower(username));
`

// SQLiteStore persists accounts in SQLite so registrations survive
// restarts.
type SQLiteStore struct {
	db *sql.DB
}

var _ UserStore = (*SQLiteStore)(nil)

// NewSQLiteStore creates a SQLite-backed account store using an existing
// database connection and seeds the demo account if it is missing.
func NewSQLiteStore(db *sql.DB) (*SQLiteStore, error) {
	if db == nil {
		return nil, errors.New("auth sqlite store: db is nil")
	}
	if _, err := db.Exec(sqliteSchema); err != nil {
		return nil, fmt.Errorf("auth sqlite store create schema: %w", err)
	}
	s := &SQLiteStore{db: db}
	if err := s.seedDemo(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *SQLiteStore) seedDemo() error {
	err := s.Create(context.Background(), DemoRecord())
	if err != nil && !errors.Is(err, ErrUserExists) {
		return fmt.Errorf("auth sqlite store seed demo account: %w", err)
	}
	return nil
}

// Create inserts a new account.
func (s *SQLiteStore) Create(ctx context.Context, rec Record) error {
	_, err := s.db.ExecContext(ctx, `
INSERT INTO accounts (id, username, email, password, first_name, last_name)
VALUES (?, ?, ?, ?, ?, ?)`,
		rec.ID, rec.Username, rec.Email, rec.Password, rec.FirstName, rec.LastName)
	if err != nil {
		if isUniqueViolation(err) {
			return ErrUserExists
		}
		return fmt.Errorf("auth sqlite store create: %w", err)
	}
	return nil
}

// FindByEmail looks up an account by email, case-insensitively.
func (s *SQLiteStore) FindByEmail(ctx context.Context, email string) (Record, bool, error) {
	row := s.db.QueryRowContext(ctx, `
SELECT id, username, email, password, first_name, last_name
FROM accounts
WHERE lower(email) = lower(?)`, email)
	return scanRecord(row)
}

// FindByUsername looks up an account by username, case-insensitively.
func (s *SQLiteStore) FindByUsername(ctx context.Context, username string) (Record, bool, error) {
	row := s.db.QueryRowContext(ctx, `
SELECT id, username, email, password, first_name, last_name
FROM accounts
WHERE lower(username) = lower(?)`, username)
	return scanRecord(row)
}

func scanRecord(row *sql.Row) (Record, bool, error) {
	var rec Record
	err := row.Scan(&rec.ID, &rec.Username, &rec.Email, &rec.Password, &rec.FirstName, &rec.LastName)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Record{}, false, nil
		}
		return Record{}, false, fmt.Errorf("auth sqlite store scan: %w", err)
	}
	return rec, true, nil
}

func isUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	return strings.Contains(err.Error(), "UNIQUE constraint failed") ||
		strings.Contains(err.Error(), "constraint failed: index")
}
