// Package ui implements the StreamBox terminal interface with Bubble Tea.
//
// The UI is a pure consumer of the state containers: it renders their
// current values and invokes synchronization-layer operations through the
// Controller interface. It never mutates state directly.
package ui

import (
	"context"
	"errors"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/ThilinikaEvanthi1221/StreamBox/internal/state"
	"github.com/ThilinikaEvanthi1221/StreamBox/internal/tmdb"
)

// Controller is the synchronization-layer surface the UI drives.
// Implemented by *app.Sync.
type Controller interface {
	Login(ctx context.Context, email, password string) error
	Register(ctx context.Context, username, email, password string) error
	Logout(ctx context.Context)
	ToggleFavourite(ctx context.Context, movie tmdb.MovieSummary)
	ToggleTheme(ctx context.Context)
	LoadTrending(ctx context.Context, page int)
	LoadPopular(ctx context.Context, page int)
	LoadTopRated(ctx context.Context, page int)
	Search(ctx context.Context, query string, page int)
	LoadDetails(ctx context.Context, movieID int64)
	ClearSearch()
	ClearDetails()
}

// Options configure the UI.
type Options struct {
	Context      context.Context
	Control      Controller
	Auth         *state.Container[state.AuthState]
	Movies       *state.Container[state.MoviesState]
	Favourites   *state.Container[state.FavouritesState]
	Theme        *state.Container[state.ThemeState]
	ImageBaseURL string
}

// Run starts the UI and blocks until the user quits or the context is
// cancelled.
func Run(opts Options) error {
	if opts.Control == nil {
		return errors.New("ui requires a controller")
	}
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}

	program := tea.NewProgram(New(opts), tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := program.Run(); err != nil {
		// Context cancellation is a normal shutdown, not a failure.
		if ctx.Err() != nil {
			return nil
		}
		return err
	}
	return nil
}
