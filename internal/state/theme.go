package state

// ThemeState is the theme container's state: a single global flag.
type ThemeState struct {
	Dark bool
}

// Theme container actions.
type (
	// SetTheme sets the flag explicitly (startup hydration).
	SetTheme struct{ Dark bool }
	// ToggleTheme flips the flag.
	ToggleTheme struct{}
)

func reduceTheme(s ThemeState, action any) ThemeState {
	switch a := action.(type) {
	case SetTheme:
		s.Dark = a.Dark
	case ToggleTheme:
		s.Dark = !s.Dark
	}
	return s
}

// NewTheme builds the theme container defaulting to light mode.
func NewTheme() *Container[ThemeState] {
	return NewContainer(ThemeState{}, reduceTheme, nil)
}
