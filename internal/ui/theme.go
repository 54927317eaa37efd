package ui

import "github.com/charmbracelet/lipgloss"

// Theme defines the colors for one of the two presentation modes.
type Theme struct {
	Name string

	Background string
	Text       string
	Muted      string
	Accent     string
	Danger     string
	Success    string
	Border     string

	SelectionBg   string
	SelectionText string
}

// DarkTheme is the palette used when the theme flag is set.
func DarkTheme() Theme {
	return Theme{
		Name:          "Dark",
		Background:    "#14141f",
		Text:          "#e6e6f0",
		Muted:         "#8a8aa3",
		Accent:        "#e50914",
		Danger:        "#ff5c5c",
		Success:       "#4cd964",
		Border:        "#3a3a55",
		SelectionBg:   "#2d2d44",
		SelectionText: "#ffffff",
	}
}

// LightTheme is the palette used otherwise.
func LightTheme() Theme {
	return Theme{
		Name:          "Light",
		Background:    "#fafafa",
		Text:          "#1a1a2e",
		Muted:         "#6b6b80",
		Accent:        "#e50914",
		Danger:        "#c62828",
		Success:       "#2e7d32",
		Border:        "#d0d0dd",
		SelectionBg:   "#e2e2f0",
		SelectionText: "#000000",
	}
}

// Styles holds the lipgloss styles derived from a theme.
type Styles struct {
	Title     lipgloss.Style
	Text      lipgloss.Style
	Muted     lipgloss.Style
	Accent    lipgloss.Style
	Error     lipgloss.Style
	Success   lipgloss.Style
	Selected  lipgloss.Style
	Tab       lipgloss.Style
	ActiveTab lipgloss.Style
	Box       lipgloss.Style
	Help      lipgloss.Style
}

// Styles returns lipgloss styles for this theme.
func (t Theme) Styles() Styles {
	return Styles{
		Title: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Accent)).
			Bold(true),
		Text: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Text)),
		Muted: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Muted)),
		Accent: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Accent)),
		Error: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Danger)).
			Bold(true),
		Success: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Success)),
		Selected: lipgloss.NewStyle().
			Background(lipgloss.Color(t.SelectionBg)).
			Foreground(lipgloss.Color(t.SelectionText)).
			Bold(true),
		Tab: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Muted)).
			Padding(0, 1),
		ActiveTab: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Accent)).
			Bold(true).
			Underline(true).
			Padding(0, 1),
		Box: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(t.Border)).
			Padding(1, 2),
		Help: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Muted)).
			Padding(0, 1),
	}
}

// themeFor maps the theme container's flag to a palette.
func themeFor(dark bool) Theme {
	if dark {
		return DarkTheme()
	}
	return LightTheme()
}
