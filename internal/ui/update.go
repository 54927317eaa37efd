package ui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/ThilinikaEvanthi1221/StreamBox/internal/auth"
	"github.com/ThilinikaEvanthi1221/StreamBox/internal/tmdb"
)

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil

	case stateChangedMsg:
		return m, m.watch()

	case authDoneMsg:
		m.busy = false
		if msg.ok {
			m.resetForms()
			m.screen = ScreenHome
			m.cursor = 0
			return m, m.loadTab(m.tab)
		}
		return m, nil

	case workflowDoneMsg:
		m.busy = false
		m.cursor = m.clampCursor()
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return m, tea.Quit
		}
		switch m.screen {
		case ScreenLogin:
			return m.updateLogin(msg)
		case ScreenRegister:
			return m.updateRegister(msg)
		case ScreenHome:
			return m.updateHome(msg)
		case ScreenSearch:
			return m.updateSearch(msg)
		case ScreenDetails:
			return m.updateDetails(msg)
		case ScreenFavourites:
			return m.updateFavourites(msg)
		case ScreenProfile:
			return m.updateProfile(msg)
		}
	}
	return m, nil
}

func (m Model) updateLogin(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyTab, tea.KeyDown:
		m.focusLogin((m.focusIdx + 1) % len(m.loginInputs))
		return m, nil
	case tea.KeyShiftTab, tea.KeyUp:
		m.focusLogin((m.focusIdx + len(m.loginInputs) - 1) % len(m.loginInputs))
		return m, nil
	case tea.KeyCtrlR:
		m.resetForms()
		m.screen = ScreenRegister
		return m, nil
	case tea.KeyEnter:
		if m.busy {
			return m, nil
		}
		email := strings.TrimSpace(m.loginInputs[0].Value())
		password := m.loginInputs[1].Value()
		if err := auth.ValidateLogin(email, password); err != nil {
			m.formError = err.Error()
			return m, nil
		}
		m.formError = ""
		m.busy = true
		return m, m.loginCmd(email, password)
	}
	var cmd tea.Cmd
	m.loginInputs[m.focusIdx], cmd = m.loginInputs[m.focusIdx].Update(msg)
	return m, cmd
}

func (m Model) updateRegister(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.resetForms()
		m.screen = ScreenLogin
		return m, nil
	case tea.KeyTab, tea.KeyDown:
		m.focusRegister((m.focusIdx + 1) % len(m.regInputs))
		return m, nil
	case tea.KeyShiftTab, tea.KeyUp:
		m.focusRegister((m.focusIdx + len(m.regInputs) - 1) % len(m.regInputs))
		return m, nil
	case tea.KeyEnter:
		if m.busy {
			return m, nil
		}
		username := strings.TrimSpace(m.regInputs[0].Value())
		email := strings.TrimSpace(m.regInputs[1].Value())
		password := m.regInputs[2].Value()
		confirm := m.regInputs[3].Value()
		if err := auth.ValidateRegistration(username, email, password, confirm); err != nil {
			m.formError = err.Error()
			return m, nil
		}
		m.formError = ""
		m.busy = true
		return m, m.registerCmd(username, email, password)
	}
	var cmd tea.Cmd
	m.regInputs[m.focusIdx], cmd = m.regInputs[m.focusIdx].Update(msg)
	return m, cmd
}

func (m Model) updateHome(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		return m, tea.Quit
	case "left", "h":
		return m.switchTab((m.tab + 2) % 3)
	case "right", "l":
		return m.switchTab((m.tab + 1) % 3)
	case "1":
		return m.switchTab(TabTrending)
	case "2":
		return m.switchTab(TabPopular)
	case "3":
		return m.switchTab(TabTopRated)
	case "up", "k":
		m.cursor = clamp(m.cursor-1, len(m.currentList()))
		return m, nil
	case "down", "j":
		m.cursor = clamp(m.cursor+1, len(m.currentList()))
		return m, nil
	case "r":
		return m, m.loadTab(m.tab)
	case "f":
		return m.toggleSelected(m.currentList())
	case "/":
		m.screen = ScreenSearch
		m.searchFocused = true
		m.searchInput.Focus()
		m.cursor = 0
		return m, nil
	case "v":
		m.screen = ScreenFavourites
		m.cursor = 0
		return m, nil
	case "p":
		m.screen = ScreenProfile
		return m, nil
	case "enter":
		return m.openDetails(m.currentList(), ScreenHome)
	}
	return m, nil
}

func (m Model) updateSearch(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	results := m.movies.State().SearchResults

	if m.searchFocused {
		switch msg.Type {
		case tea.KeyEsc:
			return m.leaveSearch()
		case tea.KeyEnter:
			query := strings.TrimSpace(m.searchInput.Value())
			if query == "" || m.busy {
				return m, nil
			}
			m.searchFocused = false
			m.searchInput.Blur()
			m.cursor = 0
			m.busy = true
			return m, m.searchCmd(query)
		}
		var cmd tea.Cmd
		m.searchInput, cmd = m.searchInput.Update(msg)
		return m, cmd
	}

	switch msg.String() {
	case "esc":
		return m.leaveSearch()
	case "/":
		m.searchFocused = true
		m.searchInput.Focus()
		return m, nil
	case "up", "k":
		m.cursor = clamp(m.cursor-1, len(results))
		return m, nil
	case "down", "j":
		m.cursor = clamp(m.cursor+1, len(results))
		return m, nil
	case "f":
		return m.toggleSelected(results)
	case "enter":
		return m.openDetails(results, ScreenSearch)
	}
	return m, nil
}

func (m Model) updateDetails(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "backspace":
		m.screen = m.detailFrom
		m.control.ClearDetails()
		return m, nil
	case "f":
		details := m.movies.State().Details
		if details == nil {
			return m, nil
		}
		movie := details.Summary()
		return m, m.runCmd(func(ctx context.Context) { m.control.ToggleFavourite(ctx, movie) })
	}
	return m, nil
}

func (m Model) updateFavourites(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	items := m.favourites.State().Items
	switch msg.String() {
	case "esc", "q":
		m.screen = ScreenHome
		m.cursor = 0
		return m, nil
	case "up", "k":
		m.cursor = clamp(m.cursor-1, len(items))
		return m, nil
	case "down", "j":
		m.cursor = clamp(m.cursor+1, len(items))
		return m, nil
	case "f", "x":
		return m.toggleSelected(items)
	case "enter":
		return m.openDetails(items, ScreenFavourites)
	}
	return m, nil
}

func (m Model) updateProfile(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "q":
		m.screen = ScreenHome
		return m, nil
	case "t":
		return m, m.runCmd(m.control.ToggleTheme)
	case "l":
		m.resetForms()
		m.screen = ScreenLogin
		m.cursor = 0
		return m, m.runCmd(m.control.Logout)
	}
	return m, nil
}

func (m *Model) switchTab(tab Tab) (tea.Model, tea.Cmd) {
	m.tab = tab
	m.cursor = 0
	return *m, m.loadTab(tab)
}

func (m Model) toggleSelected(list []tmdb.MovieSummary) (tea.Model, tea.Cmd) {
	if m.cursor >= len(list) {
		return m, nil
	}
	movie := list[m.cursor]
	return m, m.runCmd(func(ctx context.Context) { m.control.ToggleFavourite(ctx, movie) })
}

func (m Model) openDetails(list []tmdb.MovieSummary, from Screen) (tea.Model, tea.Cmd) {
	if m.cursor >= len(list) {
		return m, nil
	}
	movie := list[m.cursor]
	m.detailFrom = from
	m.screen = ScreenDetails
	m.busy = true
	return m, m.detailsCmd(movie.ID)
}

func (m Model) leaveSearch() (tea.Model, tea.Cmd) {
	m.screen = ScreenHome
	m.searchFocused = false
	m.searchInput.Blur()
	m.searchInput.SetValue("")
	m.cursor = 0
	m.control.ClearSearch()
	return m, nil
}

func (m *Model) resetForms() {
	for i := range m.loginInputs {
		m.loginInputs[i].SetValue("")
	}
	for i := range m.regInputs {
		m.regInputs[i].SetValue("")
	}
	m.formError = ""
	m.focusLogin(0)
	if m.screen == ScreenRegister {
		m.focusRegister(0)
	}
}

func (m *Model) focusLogin(idx int) {
	m.focusIdx = idx
	for i := range m.loginInputs {
		if i == idx {
			m.loginInputs[i].Focus()
		} else {
			m.loginInputs[i].Blur()
		}
	}
}

func (m *Model) focusRegister(idx int) {
	m.focusIdx = idx
	for i := range m.regInputs {
		if i == idx {
			m.regInputs[i].Focus()
		} else {
			m.regInputs[i].Blur()
		}
	}
}

func (m Model) currentList() []tmdb.MovieSummary {
	movies := m.movies.State()
	switch m.tab {
	case TabPopular:
		return movies.Popular
	case TabTopRated:
		return movies.TopRated
	default:
		return movies.Trending
	}
}

func (m Model) clampCursor() int {
	switch m.screen {
	case ScreenHome:
		return clamp(m.cursor, len(m.currentList()))
	case ScreenSearch:
		return clamp(m.cursor, len(m.movies.State().SearchResults))
	case ScreenFavourites:
		return clamp(m.cursor, len(m.favourites.State().Items))
	}
	return m.cursor
}

func clamp(cursor, length int) int {
	if length == 0 {
		return 0
	}
	if cursor < 0 {
		return 0
	}
	if cursor >= length {
		return length - 1
	}
	return cursor
}
