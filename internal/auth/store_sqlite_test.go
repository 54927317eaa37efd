package auth

import (
	"context"
	"database/sql"
	"errors"
	"path/filepath"
	"testing"
)

func newTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", filepath.Join(t.TempDir(), "accounts.db"))
	if err != nil {
		t.Fatalf("open database: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func TestSQLiteStore_SeedsDemoAccount(t *testing.T) {
	store, err := NewSQLiteStore(newTestDB(t))
	if err != nil {
		t.Fatalf("NewSQLiteStore: %v", err)
	}

	rec, ok, err := store.FindByEmail(context.Background(), "demo@streambox.com")
	if err != nil {
		t.Fatalf("FindByEmail: %v", err)
	}
	if !ok {
		t.Fatalf("demo account not seeded")
	}
	if rec.ID != "demo-1" || rec.Password != "Demo123" {
		t.Fatalf("seeded record = %+v", rec)
	}
}

func TestSQLiteStore_SeedingIsIdempotent(t *testing.T) {
	db := newTestDB(t)
	if _, err := NewSQLiteStore(db); err != nil {
		t.Fatalf("first NewSQLiteStore: %v", err)
	}
	// Reopening against the same database must not fail on the existing
	// demo row.
	if _, err := NewSQLiteStore(db); err != nil {
		t.Fatalf("second NewSQLiteStore: %v", err)
	}
}

func TestSQLiteStore_CreateAndFindRoundTrip(t *testing.T) {
	store, err := NewSQLiteStore(newTestDB(t))
	if err != nil {
		t.Fatalf("NewSQLiteStore: %v", err)
	}
	ctx := context.Background()

	rec := Record{
		User: User{
			ID:        "user_1",
			Username:  "alice",
			Email:     "alice@example.com",
			FirstName: "alice",
			LastName:  "User",
		},
		Password: "Secret1!",
	}
	if err := store.Create(ctx, rec); err != nil {
		t.Fatalf("Create: %v", err)
	}

	byEmail, ok, err := store.FindByEmail(ctx, "ALICE@EXAMPLE.COM")
	if err != nil || !ok {
		t.Fatalf("FindByEmail case-insensitive: ok=%v err=%v", ok, err)
	}
	if byEmail != rec {
		t.Fatalf("FindByEmail = %+v, want %+v", byEmail, rec)
	}

	byUsername, ok, err := store.FindByUsername(ctx, "Alice")
	if err != nil || !ok {
		t.Fatalf("FindByUsername case-insensitive: ok=%v err=%v", ok, err)
	}
	if byUsername.ID != "user_1" {
		t.Fatalf("FindByUsername = %+v", byUsername)
	}
}

func TestSQLiteStore_CreateRejectsDuplicates(t *testing.T) {
	store, err := NewSQLiteStore(newTestDB(t))
	if err != nil {
		t.Fatalf("NewSQLiteStore: %v", err)
	}
	ctx := context.Background()

	dupEmail := Record{
		User:     User{ID: "user_2", Username: "unique", Email: "Demo@StreamBox.com"},
		Password: "x",
	}
	if err := store.Create(ctx, dupEmail); !errors.Is(err, ErrUserExists) {
		t.Fatalf("duplicate email err = %v, want ErrUserExists", err)
	}

	dupUsername := Record{
		User:     User{ID: "user_3", Username: "DEMO", Email: "unique@example.com"},
		Password: "x",
	}
	if err := store.Create(ctx, dupUsername); !errors.Is(err, ErrUserExists) {
		t.Fatalf("duplicate username err = %v, want ErrUserExists", err)
	}
}

func TestSQLiteStore_FindMissingReportsAbsence(t *testing.T) {
	store, err := NewSQLiteStore(newTestDB(t))
	if err != nil {
		t.Fatalf("NewSQLiteStore: %v", err)
	}

	_, ok, err := store.FindByEmail(context.Background(), "nobody@example.com")
	if err != nil {
		t.Fatalf("FindByEmail: %v", err)
	}
	if ok {
		t.Fatalf("missing account reported as found")
	}
}

func TestService_WithSQLiteStore(t *testing.T) {
	store, err := NewSQLiteStore(newTestDB(t))
	if err != nil {
		t.Fatalf("NewSQLiteStore: %v", err)
	}
	svc := NewService(store, nil, nil)
	ctx := context.Background()

	if _, err := svc.Register(ctx, "bob", "bob@example.com", "Secret1!"); err != nil {
		t.Fatalf("Register: %v", err)
	}
	sess, err := svc.Login(ctx, "bob@example.com", "Secret1!")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if sess.User.Username != "bob" {
		t.Fatalf("session user = %+v", sess.User)
	}
}
