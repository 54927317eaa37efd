package auth

import (
	"context"
	"errors"
	"strings"
	"sync"
)

// Record is a stored account. The password is kept alongside the profile;
// it never leaves this package.
type Record struct {
	User
	Password string
}

// ErrUserExists is returned by Create when the account's email or username
// is already taken.
var ErrUserExists = errors.New("user already exists")

// UserStore is the capability interface for registered-account storage.
// Lookups match email and username case-insensitively.
type UserStore interface {
	Create(ctx context.Context, rec Record) error
	FindByEmail(ctx context.Context, email string) (Record, bool, error)
	FindByUsername(ctx context.Context, username string) (Record, bool, error)
}

// DemoRecord is the account every store variant is seeded with so the app
// is usable out of the box.
func DemoRecord() Record {
	return Record{
		User: User{
			ID:        "demo-1",
			Username:  "demo",
			Email:     "demo@streambox.com",
			FirstName: "Demo",
			LastName:  "User",
		},
		Password: "Demo123",
	}
}

// MemoryStore keeps accounts for the lifetime of the process. It is the
// test double and mirrors the original app's behavior where registrations
// did not survive a restart.
type MemoryStore struct {
	mu      sync.RWMutex
	records []Record
}

var _ UserStore = (*MemoryStore)(nil)

// NewMemoryStore builds a MemoryStore seeded with the demo account.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{records: []Record{DemoRecord()}}
}

// Create appends a new account. Duplicate emails and usernames are
// rejected case-insensitively.
func (s *MemoryStore) Create(_ context.Context, rec Record) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, existing := range s.records {
		if strings.EqualFold(existing.Email, rec.Email) || strings.EqualFold(existing.Username, rec.Username) {
			return ErrUserExists
		}
	}
	s.records = append(s.records, rec)
	return nil
}

// FindByEmail looks up an account by email.
func (s *MemoryStore) FindByEmail(_ context.Context, email string) (Record, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, rec := range s.records {
		if strings.EqualFold(rec.Email, email) {
			return rec, true, nil
		}
	}
	return Record{}, false, nil
}

// FindByUsername looks up an account by username.
func (s *MemoryStore) FindByUsername(_ context.Context, username string) (Record, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, rec := range s.records {
		if strings.EqualFold(rec.Username, username) {
			return rec, true, nil
		}
	}
	return Record{}, false, nil
}
