package ui

import (
	"context"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/ThilinikaEvanthi1221/StreamBox/internal/state"
)

// Screen identifies the active view.
type Screen int

// Screens.
const (
	ScreenLogin Screen = iota
	ScreenRegister
	ScreenHome
	ScreenSearch
	ScreenDetails
	ScreenFavourites
	ScreenProfile
)

// Tab identifies the active home list.
type Tab int

// Home tabs.
const (
	TabTrending Tab = iota
	TabPopular
	TabTopRated
)

// Messages.
type (
	// stateChangedMsg signals that a container applied an action.
	stateChangedMsg struct{}
	// authDoneMsg reports a finished login or registration workflow.
	authDoneMsg struct{ ok bool }
	// workflowDoneMsg reports any other finished workflow.
	workflowDoneMsg struct{}
)

// Model is the root Bubble Tea state.
type Model struct {
	ctx     context.Context
	control Controller

	auth       *state.Container[state.AuthState]
	movies     *state.Container[state.MoviesState]
	favourites *state.Container[state.FavouritesState]
	theme      *state.Container[state.ThemeState]

	notifications []<-chan struct{}
	imageBaseURL  string

	screen     Screen
	tab        Tab
	cursor     int
	detailFrom Screen

	loginInputs [2]textinput.Model
	regInputs   [4]textinput.Model
	focusIdx    int
	formError   string

	searchInput   textinput.Model
	searchFocused bool

	spin  spinner.Model
	busy  bool
	width int
}

// New creates the root model.
func New(opts Options) Model {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}

	email := textinput.New()
	email.Placeholder = "email"
	email.CharLimit = 64
	email.Focus()
	password := textinput.New()
	password.Placeholder = "password"
	password.CharLimit = 64
	password.EchoMode = textinput.EchoPassword

	regUsername := textinput.New()
	regUsername.Placeholder = "username"
	regUsername.CharLimit = 20
	regUsername.Focus()
	regEmail := textinput.New()
	regEmail.Placeholder = "email"
	regEmail.CharLimit = 64
	regPassword := textinput.New()
	regPassword.Placeholder = "password"
	regPassword.CharLimit = 64
	regPassword.EchoMode = textinput.EchoPassword
	regConfirm := textinput.New()
	regConfirm.Placeholder = "confirm password"
	regConfirm.CharLimit = 64
	regConfirm.EchoMode = textinput.EchoPassword

	search := textinput.New()
	search.Placeholder = "search movies"
	search.CharLimit = 80

	spin := spinner.New()
	spin.Spinner = spinner.Dot
	spin.Style = lipgloss.NewStyle().Foreground(lipgloss.Color(DarkTheme().Accent))

	m := Model{
		ctx:          ctx,
		control:      opts.Control,
		auth:         opts.Auth,
		movies:       opts.Movies,
		favourites:   opts.Favourites,
		theme:        opts.Theme,
		imageBaseURL: opts.ImageBaseURL,
		screen:       ScreenLogin,
		loginInputs:  [2]textinput.Model{email, password},
		regInputs:    [4]textinput.Model{regUsername, regEmail, regPassword, regConfirm},
		searchInput:  search,
		spin:         spin,
	}
	m.notifications = []<-chan struct{}{
		opts.Auth.Subscribe(),
		opts.Movies.Subscribe(),
		opts.Favourites.Subscribe(),
		opts.Theme.Subscribe(),
	}

	// A session restored during hydration skips the login screen.
	if opts.Auth.State().IsAuthenticated() {
		m.screen = ScreenHome
	}
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{m.spin.Tick, m.watch()}
	if m.screen == ScreenHome {
		cmds = append(cmds, m.loadTab(m.tab))
	}
	return tea.Batch(cmds...)
}

// watch re-arms the container subscription listener.
func (m Model) watch() tea.Cmd {
	chans := m.notifications
	done := m.ctx.Done()
	return func() tea.Msg {
		select {
		case <-chans[0]:
		case <-chans[1]:
		case <-chans[2]:
		case <-chans[3]:
		case <-done:
			return nil
		}
		return stateChangedMsg{}
	}
}

// loadTab fetches the list backing the given home tab.
func (m Model) loadTab(tab Tab) tea.Cmd {
	ctx, control := m.ctx, m.control
	return func() tea.Msg {
		switch tab {
		case TabPopular:
			control.LoadPopular(ctx, 1)
		case TabTopRated:
			control.LoadTopRated(ctx, 1)
		default:
			control.LoadTrending(ctx, 1)
		}
		return workflowDoneMsg{}
	}
}

func (m Model) loginCmd(email, password string) tea.Cmd {
	ctx, control := m.ctx, m.control
	return func() tea.Msg {
		err := control.Login(ctx, email, password)
		return authDoneMsg{ok: err == nil}
	}
}

func (m Model) registerCmd(username, email, password string) tea.Cmd {
	ctx, control := m.ctx, m.control
	return func() tea.Msg {
		err := control.Register(ctx, username, email, password)
		return authDoneMsg{ok: err == nil}
	}
}

func (m Model) searchCmd(query string) tea.Cmd {
	ctx, control := m.ctx, m.control
	return func() tea.Msg {
		control.Search(ctx, query, 1)
		return workflowDoneMsg{}
	}
}

func (m Model) detailsCmd(movieID int64) tea.Cmd {
	ctx, control := m.ctx, m.control
	return func() tea.Msg {
		control.LoadDetails(ctx, movieID)
		return workflowDoneMsg{}
	}
}

func (m Model) runCmd(fn func(context.Context)) tea.Cmd {
	ctx := m.ctx
	return func() tea.Msg {
		fn(ctx)
		return workflowDoneMsg{}
	}
}
