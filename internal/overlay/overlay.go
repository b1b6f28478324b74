// Package overlay composes a dialog on top of a base view.
package overlay

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// Compose overlays content on top of a base view. Visible characters in
// the overlay replace the base at the same display column; lines that
// are visually empty leave the base untouched. ANSI-aware, so styled
// text keeps its escape sequences intact on both sides.
func Compose(base, over string, width int) string {
	baseLines := strings.Split(base, "\n")
	overLines := strings.Split(over, "\n")

	for i, overLine := range overLines {
		if i >= len(baseLines) {
			break
		}

		plain := ansi.Strip(overLine)
		if strings.TrimSpace(plain) == "" {
			continue
		}

		// Visible bounds of the overlay content, in display columns.
		start := 0
		for _, r := range plain {
			if r != ' ' {
				break
			}
			start++
		}
		trimmed := strings.TrimRight(plain, " ")
		end := start + ansi.StringWidth(trimmed[start:])

		content := ansi.Cut(overLine, start, end)

		baseLine := baseLines[i]
		if w := ansi.StringWidth(ansi.Strip(baseLine)); w < width {
			baseLine += strings.Repeat(" ", width-w)
		}

		// Base prefix, overlay content, base suffix. Cutting through a
		// wide character can shift widths, so pad the seams.
		prefix := ansi.Cut(baseLine, 0, start)
		if w := ansi.StringWidth(ansi.Strip(prefix)); w < start {
			prefix += strings.Repeat(" ", start-w)
		}

		result := prefix + content
		if end < width {
			suffix := ansi.Cut(baseLine, end, width)
			want := width - end
			got := ansi.StringWidth(ansi.Strip(suffix))
			switch {
			case got > want:
				suffix = " " + ansi.Cut(suffix, got-want+1, got)
			case got < want:
				result += strings.Repeat(" ", want-got)
			}
			result += suffix
		}

		baseLines[i] = result
	}

	return strings.Join(baseLines, "\n")
}
