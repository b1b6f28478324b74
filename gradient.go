package sweettea

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/rivo/uniseg"
)

// GradientText renders text with a horizontal color gradient. Blending
// happens in HCL space for perceptually uniform transitions.
func GradientText(text string, from, to lipgloss.Color) string {
	return gradientText(text, false, from, to)
}

// BoldGradientText renders bold text with a horizontal color gradient.
func BoldGradientText(text string, from, to lipgloss.Color) string {
	return gradientText(text, true, from, to)
}

func gradientText(text string, bold bool, from, to lipgloss.Color) string {
	if text == "" {
		return ""
	}

	// Grapheme clusters, not runes, so combining marks stay together.
	var clusters []string
	gr := uniseg.NewGraphemes(text)
	for gr.Next() {
		clusters = append(clusters, gr.Str())
	}

	if len(clusters) < 2 {
		style := lipgloss.NewStyle().Foreground(from).Bold(bold)
		return style.Render(text)
	}

	c1 := parseHex(from)
	c2 := parseHex(to)

	var b strings.Builder
	last := float64(len(clusters) - 1)
	for i, cluster := range clusters {
		blended := c1.BlendHcl(c2, float64(i)/last)
		style := lipgloss.NewStyle().
			Foreground(lipgloss.Color(blended.Hex())).
			Bold(bold)
		b.WriteString(style.Render(cluster))
	}

	return b.String()
}

// parseHex converts a lipgloss hex color. ANSI palette colors fall back
// to a neutral gray since they carry no RGB information to blend.
func parseHex(c lipgloss.Color) colorful.Color {
	if hex := string(c); len(hex) == 7 && hex[0] == '#' {
		if col, err := colorful.Hex(hex); err == nil {
			return col
		}
	}
	return colorful.Color{R: 0.5, G: 0.5, B: 0.5}
}
