package sweettea

import "github.com/charmbracelet/lipgloss"

// Theme defines the color palette used to render alert dialogs.
type Theme struct {
	// Brand/accent colors
	Primary   lipgloss.Color // focused button, title gradient start
	Secondary lipgloss.Color // title gradient end

	// Text hierarchy (most to least prominent)
	FgBase   lipgloss.Color
	FgMuted  lipgloss.Color
	FgSubtle lipgloss.Color

	// Button background
	BgButton lipgloss.Color

	// Borders
	Border      lipgloss.Color // dialog border while animating
	BorderFocus lipgloss.Color // dialog border while open

	// Status colors, also used for the built-in icons
	Success  lipgloss.Color
	Error    lipgloss.Color
	Warning  lipgloss.Color
	Info     lipgloss.Color
	Question lipgloss.Color

	styles *Styles
}

// Styles contains pre-built lipgloss styles derived from a Theme.
type Styles struct {
	Title         lipgloss.Style
	Text          lipgloss.Style
	Subtle        lipgloss.Style
	Button        lipgloss.Style
	ButtonFocused lipgloss.Style
	ButtonDimmed  lipgloss.Style
}

var defaultTheme = Theme{
	Primary:   lipgloss.Color("#a78bfa"),
	Secondary: lipgloss.Color("#f1a208"),

	FgBase:   lipgloss.Color("#c0c0c0"),
	FgMuted:  lipgloss.Color("#808080"),
	FgSubtle: lipgloss.Color("#585858"),

	BgButton: lipgloss.Color("#303030"),

	Border:      lipgloss.Color("#585858"),
	BorderFocus: lipgloss.Color("#a78bfa"),

	Success:  lipgloss.Color("#42b883"),
	Error:    lipgloss.Color("#ff5555"),
	Warning:  lipgloss.Color("#f1a208"),
	Info:     lipgloss.Color("#3fc3ee"),
	Question: lipgloss.Color("#87adbd"),
}

// DefaultTheme returns a copy of the built-in theme, ready to be
// adjusted and passed to Controller.SetTheme.
func DefaultTheme() Theme {
	t := defaultTheme
	t.styles = nil
	return t
}

// S returns the pre-built styles for this theme.
func (t *Theme) S() *Styles {
	if t.styles == nil {
		t.styles = t.buildStyles()
	}
	return t.styles
}

func (t *Theme) buildStyles() *Styles {
	base := lipgloss.NewStyle().Foreground(t.FgBase)

	return &Styles{
		Title:  base.Bold(true),
		Text:   base,
		Subtle: lipgloss.NewStyle().Foreground(t.FgSubtle),
		Button: lipgloss.NewStyle().
			Foreground(t.FgBase).
			Background(t.BgButton).
			Padding(0, 2),
		ButtonFocused: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#ffffff")).
			Background(t.Primary).
			Bold(true).
			Padding(0, 2),
		ButtonDimmed: lipgloss.NewStyle().
			Foreground(t.FgSubtle).
			Background(t.BgButton).
			Padding(0, 2),
	}
}
