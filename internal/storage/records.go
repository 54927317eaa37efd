package storage

import (
	"context"
	"encoding/json"

	"github.com/ThilinikaEvanthi1221/StreamBox/internal/auth"
	"github.com/ThilinikaEvanthi1221/StreamBox/internal/tmdb"
)

// Typed accessors for the four persisted records. Serialization failures
// follow the same rule as transport failures: logged, reported as absent
// or unsuccessful, never propagated.

// Token returns the stored auth token.
func (s *Store) Token(ctx context.Context) (string, bool) {
	return s.Get(ctx, KeyToken)
}

// SetToken stores the auth token.
func (s *Store) SetToken(ctx context.Context, token string) bool {
	return s.Set(ctx, KeyToken, token)
}

// User returns the stored user profile.
func (s *Store) User(ctx context.Context) (auth.User, bool) {
	raw, ok := s.Get(ctx, KeyUser)
	if !ok {
		return auth.User{}, false
	}
	var user auth.User
	if err := json.Unmarshal([]byte(raw), &user); err != nil {
		s.logger.Warn("stored user profile is unreadable", "error", err)
		return auth.User{}, false
	}
	return user, true
}

// SetUser stores the user profile.
func (s *Store) SetUser(ctx context.Context, user auth.User) bool {
	raw, err := json.Marshal(user)
	if err != nil {
		s.logger.Warn("encode user profile failed", "error", err)
		return false
	}
	return s.Set(ctx, KeyUser, string(raw))
}

// Favourites returns the stored favourites list.
func (s *Store) Favourites(ctx context.Context) ([]tmdb.MovieSummary, bool) {
	raw, ok := s.Get(ctx, KeyFavourites)
	if !ok {
		return nil, false
	}
	var items []tmdb.MovieSummary
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		s.logger.Warn("stored favourites are unreadable", "error", err)
		return nil, false
	}
	return items, true
}

// SetFavourites stores the favourites list wholesale.
func (s *Store) SetFavourites(ctx context.Context, items []tmdb.MovieSummary) bool {
	if items == nil {
		items = []tmdb.MovieSummary{}
	}
	raw, err := json.Marshal(items)
	if err != nil {
		s.logger.Warn("encode favourites failed", "error", err)
		return false
	}
	return s.Set(ctx, KeyFavourites, string(raw))
}

// Theme returns the stored dark-mode flag.
func (s *Store) Theme(ctx context.Context) (bool, bool) {
	raw, ok := s.Get(ctx, KeyTheme)
	if !ok {
		return false, false
	}
	var dark bool
	if err := json.Unmarshal([]byte(raw), &dark); err != nil {
		s.logger.Warn("stored theme flag is unreadable", "error", err)
		return false, false
	}
	return dark, true
}

// SetTheme stores the dark-mode flag.
func (s *Store) SetTheme(ctx context.Context, dark bool) bool {
	raw, err := json.Marshal(dark)
	if err != nil {
		return false
	}
	return s.Set(ctx, KeyTheme, string(raw))
}
