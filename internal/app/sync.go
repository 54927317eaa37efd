package app

import (
	"context"
	"log/slog"

	"github.com/ThilinikaEvanthi1221/StreamBox/internal/auth"
	"github.com/ThilinikaEvanthi1221/StreamBox/internal/state"
	"github.com/ThilinikaEvanthi1221/StreamBox/internal/storage"
	"github.com/ThilinikaEvanthi1221/StreamBox/internal/tmdb"
)

// Sync is the synchronization layer: the single place where multi-step
// workflows are defined. It sequences container mutation with durable
// persistence and network calls.
//
// Persistence is write-behind: the in-memory state is visible as soon as
// the container dispatch returns, and a failed storage write degrades
// durability but never fails the workflow.
type Sync struct {
	catalog tmdb.CatalogFetcher
	authSvc *auth.Service
	store   *storage.Store
	logger  *slog.Logger

	// The four state containers, observable by the presentation layer.
	Auth       *state.Container[state.AuthState]
	Movies     *state.Container[state.MoviesState]
	Favourites *state.Container[state.FavouritesState]
	Theme      *state.Container[state.ThemeState]
}

// NewSync wires the synchronization layer around its collaborators and
// fresh containers.
func NewSync(catalog tmdb.CatalogFetcher, authSvc *auth.Service, store *storage.Store, logger *slog.Logger) *Sync {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Sync{
		catalog:    catalog,
		authSvc:    authSvc,
		store:      store,
		logger:     logger,
		Auth:       state.NewAuth(),
		Movies:     state.NewMovies(),
		Favourites: state.NewFavourites(),
		Theme:      state.NewTheme(),
	}
}

// Close stops the container dispatch loops.
func (s *Sync) Close() {
	s.Auth.Close()
	s.Movies.Close()
	s.Favourites.Close()
	s.Theme.Close()
}

// Hydrate restores persisted state on startup. Any unreadable record is
// treated as absent, failing open to an unauthenticated, default-theme
// state; hydration never returns an error. Favourites are only restored
// when a full session (token and profile) is present.
func (s *Sync) Hydrate(ctx context.Context) {
	if dark, ok := s.store.Theme(ctx); ok {
		s.Theme.Dispatch(state.SetTheme{Dark: dark})
	}

	token, haveToken := s.store.Token(ctx)
	user, haveUser := s.store.User(ctx)
	if !haveToken || !haveUser {
		s.logger.Info("no stored session, starting unauthenticated")
		return
	}

	s.Auth.Dispatch(state.RestoreAuth{Session: auth.Session{Token: token, User: user}})
	if items, ok := s.store.Favourites(ctx); ok {
		s.Favourites.Dispatch(state.SetFavourites{Items: items})
	}
	s.logger.Info("session restored", "username", user.Username)
}

// Login runs the login workflow: loginStart, authenticate, persist the
// session, loginSuccess. On failure the error's message is stored in the
// auth container for display. Token and profile are persisted before the
// success dispatch so a crash between the two cannot leave an
// authenticated UI without a stored session.
func (s *Sync) Login(ctx context.Context, email, password string) error {
	s.Auth.Dispatch(state.LoginStart{})

	sess, err := s.authSvc.Login(ctx, email, password)
	if err != nil {
		s.Auth.Dispatch(state.LoginFailure{Message: err.Error()})
		return err
	}

	s.store.SetToken(ctx, sess.Token)
	s.store.SetUser(ctx, sess.User)
	s.Auth.Dispatch(state.LoginSuccess{Session: sess})
	s.logger.Info("logged in", "username", sess.User.Username)
	return nil
}

// Register runs the registration workflow. A successful registration
// signs the new account in immediately.
func (s *Sync) Register(ctx context.Context, username, email, password string) error {
	s.Auth.Dispatch(state.RegisterStart{})

	sess, err := s.authSvc.Register(ctx, username, email, password)
	if err != nil {
		s.Auth.Dispatch(state.RegisterFailure{Message: err.Error()})
		return err
	}

	s.store.SetToken(ctx, sess.Token)
	s.store.SetUser(ctx, sess.User)
	s.Auth.Dispatch(state.RegisterSuccess{Session: sess})
	s.logger.Info("registered", "username", sess.User.Username)
	return nil
}

// Logout clears the persisted session best-effort, then resets the auth
// and favourites containers unconditionally. A partial storage failure
// never blocks the in-memory logout.
func (s *Sync) Logout(ctx context.Context) {
	if !s.store.RemoveMany(ctx, storage.KeyToken, storage.KeyUser, storage.KeyFavourites) {
		s.logger.Warn("failed to clear stored session, logging out anyway")
	}
	s.Auth.Dispatch(state.Logout{})
	s.Favourites.Dispatch(state.ClearFavourites{})
	s.logger.Info("logged out")
}

// ToggleFavourite flips membership for the movie and persists the
// container's post-dispatch list. The dispatch result is the single
// source of truth for what gets written; membership is never re-derived
// outside the reducer.
func (s *Sync) ToggleFavourite(ctx context.Context, movie tmdb.MovieSummary) {
	next := s.Favourites.Dispatch(state.ToggleFavourite{Movie: movie})
	s.store.SetFavourites(ctx, next.Items)
}

// ToggleTheme flips the theme and persists the container's post-dispatch
// value, not a caller-supplied snapshot.
func (s *Sync) ToggleTheme(ctx context.Context) {
	next := s.Theme.Dispatch(state.ToggleTheme{})
	s.store.SetTheme(ctx, next.Dark)
}

// LoadTrending fetches one page of trending movies, replacing the
// previous snapshot wholesale on success.
func (s *Sync) LoadTrending(ctx context.Context, page int) {
	s.Movies.Dispatch(state.FetchStart{})
	result, err := s.catalog.Trending(ctx, page)
	if err != nil {
		s.dispatchFetchFailure(err)
		return
	}
	s.Movies.Dispatch(state.TrendingLoaded{Page: *result})
}

// LoadPopular fetches one page of popular movies.
func (s *Sync) LoadPopular(ctx context.Context, page int) {
	s.Movies.Dispatch(state.FetchStart{})
	result, err := s.catalog.Popular(ctx, page)
	if err != nil {
		s.dispatchFetchFailure(err)
		return
	}
	s.Movies.Dispatch(state.PopularLoaded{Page: *result})
}

// LoadTopRated fetches one page of top rated movies.
func (s *Sync) LoadTopRated(ctx context.Context, page int) {
	s.Movies.Dispatch(state.FetchStart{})
	result, err := s.catalog.TopRated(ctx, page)
	if err != nil {
		s.dispatchFetchFailure(err)
		return
	}
	s.Movies.Dispatch(state.TopRatedLoaded{Page: *result})
}

// Search fetches one page of search results for the query.
func (s *Sync) Search(ctx context.Context, query string, page int) {
	s.Movies.Dispatch(state.FetchStart{})
	result, err := s.catalog.Search(ctx, query, page)
	if err != nil {
		s.dispatchFetchFailure(err)
		return
	}
	s.Movies.Dispatch(state.SearchLoaded{Page: *result})
}

// LoadDetails fetches the full record for one movie.
func (s *Sync) LoadDetails(ctx context.Context, movieID int64) {
	s.Movies.Dispatch(state.FetchStart{})
	result, err := s.catalog.Details(ctx, movieID)
	if err != nil {
		s.dispatchFetchFailure(err)
		return
	}
	s.Movies.Dispatch(state.DetailsLoaded{Details: *result})
}

// ClearSearch drops the search snapshot.
func (s *Sync) ClearSearch() {
	s.Movies.Dispatch(state.ClearSearch{})
}

// ClearDetails drops the movie-details record.
func (s *Sync) ClearDetails() {
	s.Movies.Dispatch(state.ClearDetails{})
}

func (s *Sync) dispatchFetchFailure(err error) {
	s.logger.Warn("catalog fetch failed", "error", err)
	s.Movies.Dispatch(state.FetchFailure{Message: err.Error()})
}
