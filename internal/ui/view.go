package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/ThilinikaEvanthi1221/StreamBox/internal/state"
	"github.com/ThilinikaEvanthi1221/StreamBox/internal/tmdb"
)

const maxListRows = 15

// View implements tea.Model.
func (m Model) View() string {
	theme := themeFor(m.theme.State().Dark)
	st := theme.Styles()

	var body string
	switch m.screen {
	case ScreenLogin:
		body = m.viewLogin(st)
	case ScreenRegister:
		body = m.viewRegister(st)
	case ScreenHome:
		body = m.viewHome(st)
	case ScreenSearch:
		body = m.viewSearch(st)
	case ScreenDetails:
		body = m.viewDetails(st)
	case ScreenFavourites:
		body = m.viewFavourites(st)
	case ScreenProfile:
		body = m.viewProfile(st)
	}

	return lipgloss.JoinVertical(lipgloss.Left, m.viewHeader(st, theme), body)
}

func (m Model) viewHeader(st Styles, theme Theme) string {
	left := st.Title.Render("StreamBox")
	right := ""
	if authState := m.auth.State(); authState.IsAuthenticated() {
		right = st.Muted.Render(authState.Session.User.Username + " · " + theme.Name)
	}
	if right == "" {
		return left + "\n"
	}
	return left + "  " + right + "\n"
}

func (m Model) viewLogin(st Styles) string {
	var b strings.Builder
	b.WriteString(st.Text.Render("Sign in") + "\n\n")
	b.WriteString(m.loginInputs[0].View() + "\n")
	b.WriteString(m.loginInputs[1].View() + "\n\n")
	b.WriteString(m.viewAuthStatus(st))
	b.WriteString(st.Help.Render("enter sign in · ctrl+r register · ctrl+c quit"))
	return st.Box.Render(b.String())
}

func (m Model) viewRegister(st Styles) string {
	var b strings.Builder
	b.WriteString(st.Text.Render("Create account") + "\n\n")
	for i := range m.regInputs {
		b.WriteString(m.regInputs[i].View() + "\n")
	}
	b.WriteString("\n")
	b.WriteString(m.viewAuthStatus(st))
	b.WriteString(st.Help.Render("enter register · esc back · ctrl+c quit"))
	return st.Box.Render(b.String())
}

func (m Model) viewAuthStatus(st Styles) string {
	if m.busy {
		return m.spin.View() + st.Muted.Render(" signing in...") + "\n\n"
	}
	if m.formError != "" {
		return st.Error.Render(m.formError) + "\n\n"
	}
	if message := m.auth.State().Error; message != "" {
		return st.Error.Render(message) + "\n\n"
	}
	return ""
}

func (m Model) viewHome(st Styles) string {
	movies := m.movies.State()

	tabs := []string{"Trending", "Popular", "Top Rated"}
	var rendered []string
	for i, label := range tabs {
		if Tab(i) == m.tab {
			rendered = append(rendered, st.ActiveTab.Render(label))
		} else {
			rendered = append(rendered, st.Tab.Render(label))
		}
	}

	var b strings.Builder
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Bottom, rendered...) + "\n\n")
	b.WriteString(m.viewMovieList(st, m.currentList(), movies))
	b.WriteString(st.Help.Render("↑/↓ move · ←/→ tab · enter details · f favourite · / search · v favourites · p profile · q quit"))
	return b.String()
}

func (m Model) viewSearch(st Styles) string {
	movies := m.movies.State()

	var b strings.Builder
	b.WriteString(m.searchInput.View() + "\n\n")
	if m.searchFocused {
		b.WriteString(st.Help.Render("enter search · esc back"))
		if len(movies.SearchResults) == 0 {
			return b.String()
		}
		b.WriteString("\n\n")
	}
	b.WriteString(m.viewMovieList(st, movies.SearchResults, movies))
	if !m.searchFocused {
		b.WriteString(st.Help.Render("↑/↓ move · enter details · f favourite · / edit query · esc back"))
	}
	return b.String()
}

// viewMovieList renders an error line, a loading indicator and the list
// itself. An error does not hide an already-loaded list: stale results
// stay visible alongside the failure message.
func (m Model) viewMovieList(st Styles, list []tmdb.MovieSummary, movies state.MoviesState) string {
	var b strings.Builder
	if movies.Error != "" {
		b.WriteString(st.Error.Render(movies.Error) + "\n")
	}
	if movies.Loading || m.busy {
		b.WriteString(m.spin.View() + st.Muted.Render(" loading...") + "\n")
	}
	if len(list) == 0 {
		if movies.Error == "" && !movies.Loading && !m.busy {
			b.WriteString(st.Muted.Render("nothing here yet") + "\n")
		}
		b.WriteString("\n")
		return b.String()
	}

	favs := m.favourites.State()
	start, end := listWindow(m.cursor, len(list))
	for i := start; i < end; i++ {
		b.WriteString(m.movieRow(st, list[i], i == m.cursor, favs.Contains(list[i].ID)) + "\n")
	}
	b.WriteString("\n")
	return b.String()
}

func (m Model) movieRow(st Styles, movie tmdb.MovieSummary, selected, favourite bool) string {
	marker := "  "
	if favourite {
		marker = st.Accent.Render("♥ ")
	}
	line := fmt.Sprintf("%s (%s)  ★ %.1f", movie.Title, releaseYear(movie.ReleaseDate), movie.VoteAverage)
	if selected {
		return marker + st.Selected.Render(line)
	}
	return marker + st.Text.Render(line)
}

func (m Model) viewDetails(st Styles) string {
	movies := m.movies.State()
	details := movies.Details

	var b strings.Builder
	if movies.Error != "" {
		b.WriteString(st.Error.Render(movies.Error) + "\n\n")
	}
	if details == nil {
		if m.busy || movies.Loading {
			b.WriteString(m.spin.View() + st.Muted.Render(" loading...") + "\n")
		}
		b.WriteString(st.Help.Render("esc back"))
		return b.String()
	}

	favourite := m.favourites.State().Contains(details.ID)
	title := st.Title.Render(details.Title)
	if favourite {
		title += st.Accent.Render("  ♥")
	}
	b.WriteString(title + "\n")
	if details.Tagline != "" {
		b.WriteString(st.Muted.Render(details.Tagline) + "\n")
	}
	b.WriteString("\n")

	meta := fmt.Sprintf("%s · %s · ★ %.1f", releaseYear(details.ReleaseDate), formatRuntime(details.Runtime), details.VoteAverage)
	b.WriteString(st.Text.Render(meta) + "\n")
	if len(details.Genres) > 0 {
		names := make([]string, len(details.Genres))
		for i, g := range details.Genres {
			names[i] = g.Name
		}
		b.WriteString(st.Muted.Render(strings.Join(names, ", ")) + "\n")
	}
	b.WriteString("\n")
	if details.Overview != "" {
		b.WriteString(st.Text.Render(wrap(details.Overview, m.contentWidth())) + "\n\n")
	}
	if cast := topCast(details.Credits, 5); cast != "" {
		b.WriteString(st.Muted.Render("Cast: "+cast) + "\n")
	}
	if trailer := firstTrailer(details.Videos); trailer != "" {
		b.WriteString(st.Muted.Render("Trailer: https://www.youtube.com/watch?v="+trailer) + "\n")
	}
	if poster := tmdb.ImageURL(m.imageBaseURL, details.PosterPath, tmdb.SizePoster); poster != "" {
		b.WriteString(st.Muted.Render("Poster: "+poster) + "\n")
	}
	b.WriteString("\n" + st.Help.Render("f favourite · esc back"))
	return b.String()
}

func (m Model) viewFavourites(st Styles) string {
	items := m.favourites.State().Items

	var b strings.Builder
	b.WriteString(st.Text.Render("Favourites") + "\n\n")
	if len(items) == 0 {
		b.WriteString(st.Muted.Render("no favourites yet — press f on any movie") + "\n\n")
	} else {
		start, end := listWindow(m.cursor, len(items))
		for i := start; i < end; i++ {
			b.WriteString(m.movieRow(st, items[i], i == m.cursor, true) + "\n")
		}
		b.WriteString("\n")
	}
	b.WriteString(st.Help.Render("↑/↓ move · enter details · f remove · esc back"))
	return b.String()
}

func (m Model) viewProfile(st Styles) string {
	authState := m.auth.State()
	themeState := m.theme.State()
	user := authState.Session.User

	var b strings.Builder
	b.WriteString(st.Text.Render("Profile") + "\n\n")
	b.WriteString(st.Muted.Render("Username:  ") + st.Text.Render(user.Username) + "\n")
	b.WriteString(st.Muted.Render("Name:      ") + st.Text.Render(strings.TrimSpace(user.FirstName+" "+user.LastName)) + "\n")
	b.WriteString(st.Muted.Render("Email:     ") + st.Text.Render(user.Email) + "\n")
	b.WriteString(st.Muted.Render("Theme:     ") + st.Text.Render(themeFor(themeState.Dark).Name) + "\n")
	b.WriteString(st.Muted.Render("Favourites:") + st.Text.Render(fmt.Sprintf(" %d", len(m.favourites.State().Items))) + "\n\n")
	b.WriteString(st.Help.Render("t toggle theme · l log out · esc back"))
	return st.Box.Render(b.String())
}

func (m Model) contentWidth() int {
	if m.width <= 0 {
		return 72
	}
	if m.width > 100 {
		return 100
	}
	return m.width - 4
}

// listWindow keeps the cursor visible within a fixed-height viewport.
func listWindow(cursor, length int) (int, int) {
	if length <= maxListRows {
		return 0, length
	}
	start := cursor - maxListRows/2
	if start < 0 {
		start = 0
	}
	if start+maxListRows > length {
		start = length - maxListRows
	}
	return start, start + maxListRows
}

func releaseYear(date string) string {
	if len(date) >= 4 {
		return date[:4]
	}
	return "N/A"
}

func formatRuntime(minutes int) string {
	if minutes <= 0 {
		return "N/A"
	}
	return fmt.Sprintf("%dh %dm", minutes/60, minutes%60)
}

func topCast(credits *tmdb.Credits, limit int) string {
	if credits == nil || len(credits.Cast) == 0 {
		return ""
	}
	names := make([]string, 0, limit)
	for i, member := range credits.Cast {
		if i == limit {
			break
		}
		names = append(names, member.Name)
	}
	return strings.Join(names, ", ")
}

func firstTrailer(videos *tmdb.VideoList) string {
	if videos == nil {
		return ""
	}
	for _, v := range videos.Results {
		if v.Site == "YouTube" && v.Type == "Trailer" {
			return v.Key
		}
	}
	return ""
}

// wrap folds text at word boundaries to the given width.
func wrap(text string, width int) string {
	if width <= 0 {
		return text
	}
	words := strings.Fields(text)
	var b strings.Builder
	lineLen := 0
	for i, word := range words {
		if i > 0 {
			if lineLen+1+len(word) > width {
				b.WriteString("\n")
				lineLen = 0
			} else {
				b.WriteString(" ")
				lineLen++
			}
		}
		b.WriteString(word)
		lineLen += len(word)
	}
	return b.String()
}
