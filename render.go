package sweettea

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

// sanitize removes control characters and invalid UTF-8 so caller-supplied
// titles and texts cannot corrupt the terminal layout.
func sanitize(s string) string {
	clean := true
	for i := range len(s) {
		b := s[i]
		if (b < 0x20 && b != '\t') || (b >= 0x80 && b <= 0x9f) {
			clean = false
			break
		}
	}
	if clean && utf8.ValidString(s) {
		return s
	}

	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); {
		r, size := utf8.DecodeRuneInString(s[i:])
		if r == utf8.RuneError && size <= 1 {
			i++
			continue
		}
		if r != '\t' && unicode.IsControl(r) {
			i += size
			continue
		}
		b.WriteString(s[i : i+size])
		i += size
	}
	return b.String()
}

// truncate shortens a string to fit within maxWidth, adding an ellipsis.
// Width-aware for CJK and emoji.
func truncate(s string, maxWidth int) string {
	return runewidth.Truncate(sanitize(s), maxWidth, "…")
}

// wrap breaks text into lines no wider than width, preferring word
// boundaries. Words wider than the limit are hard-truncated.
func wrap(s string, width int) []string {
	if width < 1 {
		return nil
	}

	var lines []string
	for _, para := range strings.Split(s, "\n") {
		words := strings.Fields(sanitize(para))
		if len(words) == 0 {
			lines = append(lines, "")
			continue
		}

		var line string
		lineW := 0
		for _, word := range words {
			w := runewidth.StringWidth(word)
			switch {
			case lineW == 0:
				line, lineW = truncate(word, width), min(w, width)
			case lineW+1+w <= width:
				line += " " + word
				lineW += 1 + w
			default:
				lines = append(lines, line)
				line, lineW = truncate(word, width), min(w, width)
			}
		}
		lines = append(lines, line)
	}
	return lines
}

// padCenter centers the string within width, padding with spaces.
// ANSI-styled input is measured by visible width.
func padCenter(s string, width int) string {
	w := lipgloss.Width(s)
	if w >= width {
		return s
	}
	left := (width - w) / 2
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", width-w-left)
}
