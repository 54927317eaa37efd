package storage

import (
	"context"
	"database/sql"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/ThilinikaEvanthi1221/StreamBox/internal/auth"
	"github.com/ThilinikaEvanthi1221/StreamBox/internal/tmdb"
)

func newTestStore(t *testing.T) (*Store, *sql.DB) {
	t.Helper()
	db, err := Open(filepath.Join(t.TempDir(), "data", "streambox.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	store, err := NewStore(db, nil)
	if err != nil {
		t.Fatalf("NewStore: %v", err)
	}
	return store, db
}

func TestOpen_CreatesMissingDataDir(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dirs", "streambox.db")
	db, err := Open(path)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer db.Close()
	if err := db.Ping(); err != nil {
		t.Fatalf("Ping: %v", err)
	}
}

func TestStore_GetSetRemove(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	if _, ok := store.Get(ctx, KeyToken); ok {
		t.Fatalf("absent key reported present")
	}
	if !store.Set(ctx, KeyToken, "abc") {
		t.Fatalf("Set failed")
	}
	if got, ok := store.Get(ctx, KeyToken); !ok || got != "abc" {
		t.Fatalf("Get = %q/%v, want abc/true", got, ok)
	}

	// Overwrite.
	store.Set(ctx, KeyToken, "def")
	if got, _ := store.Get(ctx, KeyToken); got != "def" {
		t.Fatalf("Get after overwrite = %q, want def", got)
	}

	if !store.Remove(ctx, KeyToken) {
		t.Fatalf("Remove failed")
	}
	if _, ok := store.Get(ctx, KeyToken); ok {
		t.Fatalf("removed key reported present")
	}
	// Removing an absent key still succeeds.
	if !store.Remove(ctx, KeyToken) {
		t.Fatalf("Remove of absent key failed")
	}
}

func TestStore_RemoveMany(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	store.Set(ctx, KeyToken, "t")
	store.Set(ctx, KeyUser, "u")
	store.Set(ctx, KeyTheme, "true")

	if !store.RemoveMany(ctx, KeyToken, KeyUser) {
		t.Fatalf("RemoveMany failed")
	}
	if _, ok := store.Get(ctx, KeyToken); ok {
		t.Fatalf("token survived RemoveMany")
	}
	if _, ok := store.Get(ctx, KeyUser); ok {
		t.Fatalf("user survived RemoveMany")
	}
	if _, ok := store.Get(ctx, KeyTheme); !ok {
		t.Fatalf("unrelated key removed")
	}
	if !store.RemoveMany(ctx) {
		t.Fatalf("RemoveMany with no keys should succeed")
	}
}

func TestStore_UserRoundTrip(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	user := auth.User{ID: "demo-1", Username: "demo", Email: "demo@streambox.com", FirstName: "Demo", LastName: "User"}
	if !store.SetUser(ctx, user) {
		t.Fatalf("SetUser failed")
	}
	got, ok := store.User(ctx)
	if !ok {
		t.Fatalf("User reported absent after SetUser")
	}
	if got != user {
		t.Fatalf("User = %+v, want %+v", got, user)
	}
}

func TestStore_CorruptUserReportsAbsent(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	store.Set(ctx, KeyUser, "{not json")
	if _, ok := store.User(ctx); ok {
		t.Fatalf("corrupt profile reported present")
	}
}

func TestStore_FavouritesRoundTrip(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	items := []tmdb.MovieSummary{
		{ID: 1, Title: "One", VoteAverage: 7.5},
		{ID: 2, Title: "Two", ReleaseDate: "2024-01-01"},
	}
	if !store.SetFavourites(ctx, items) {
		t.Fatalf("SetFavourites failed")
	}
	got, ok := store.Favourites(ctx)
	if !ok {
		t.Fatalf("Favourites reported absent")
	}
	if !reflect.DeepEqual(got, items) {
		t.Fatalf("Favourites = %+v, want %+v", got, items)
	}
}

func TestStore_NilFavouritesStoredAsEmptyList(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	if !store.SetFavourites(ctx, nil) {
		t.Fatalf("SetFavourites(nil) failed")
	}
	raw, ok := store.Get(ctx, KeyFavourites)
	if !ok || raw != "[]" {
		t.Fatalf("stored favourites = %q/%v, want []/true", raw, ok)
	}
	got, ok := store.Favourites(ctx)
	if !ok || len(got) != 0 {
		t.Fatalf("Favourites = %v/%v, want empty/true", got, ok)
	}
}

func TestStore_ThemeRoundTrip(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	if _, ok := store.Theme(ctx); ok {
		t.Fatalf("theme reported present before write")
	}
	if !store.SetTheme(ctx, true) {
		t.Fatalf("SetTheme failed")
	}
	dark, ok := store.Theme(ctx)
	if !ok || !dark {
		t.Fatalf("Theme = %v/%v, want true/true", dark, ok)
	}

	store.Set(ctx, KeyTheme, "not a bool")
	if _, ok := store.Theme(ctx); ok {
		t.Fatalf("corrupt theme reported present")
	}
}

func TestStore_FailuresAreSwallowed(t *testing.T) {
	store, db := newTestStore(t)
	ctx := context.Background()

	store.SetToken(ctx, "abc")
	_ = db.Close()

	// A dead database degrades to absence and unsuccessful writes, never
	// a panic or an error value.
	if _, ok := store.Token(ctx); ok {
		t.Fatalf("read against closed db reported present")
	}
	if store.Set(ctx, KeyToken, "def") {
		t.Fatalf("write against closed db reported success")
	}
	if store.Remove(ctx, KeyToken) {
		t.Fatalf("remove against closed db reported success")
	}
}
