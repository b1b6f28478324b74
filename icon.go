package sweettea

import "github.com/charmbracelet/lipgloss"

// Iconic is implemented by anything that can be displayed as the alert
// icon. Use it to provide custom icons; the built-in Icon values cover
// the common cases.
type Iconic interface {
	// Render returns the styled icon line for the given theme.
	Render(t *Theme) string

	// Defined reports whether an icon should be displayed at all.
	// The zero icon returns false, meaning no icon row is rendered.
	Defined() bool
}

// Icon is one of the built-in alert icons.
type Icon string

const (
	// IconNone displays no icon. It is the default.
	IconNone Icon = ""

	// IconSuccess shows a check mark.
	IconSuccess Icon = "success"

	// IconWarning shows an exclamation mark.
	IconWarning Icon = "warning"

	// IconError shows a cross.
	IconError Icon = "error"

	// IconInfo shows the letter "i".
	IconInfo Icon = "info"

	// IconQuestion shows a question mark.
	IconQuestion Icon = "question"
)

var _ Iconic = IconNone

// Defined implements Iconic.
func (i Icon) Defined() bool {
	return i != IconNone
}

// String returns the icon identifier.
func (i Icon) String() string {
	if i == IconNone {
		return "none"
	}
	return string(i)
}

// Render implements Iconic. Built-in icons render as a ring around a
// single glyph, colored from the theme's status palette.
func (i Icon) Render(t *Theme) string {
	var glyph string
	var color lipgloss.Color

	switch i {
	case IconSuccess:
		glyph, color = "✓", t.Success
	case IconWarning:
		glyph, color = "!", t.Warning
	case IconError:
		glyph, color = "✕", t.Error
	case IconInfo:
		glyph, color = "i", t.Info
	case IconQuestion:
		glyph, color = "?", t.Question
	default:
		return ""
	}

	return lipgloss.NewStyle().
		Foreground(color).
		Bold(true).
		Render("( " + glyph + " )")
}
