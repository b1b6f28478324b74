package sweettea

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const (
	minDialogWidth = 20
	maxTextWidth   = 46
)

// rect is a rectangle in terminal cells.
type rect struct {
	x, y, w, h int
}

func (r rect) contains(x, y int) bool {
	return x >= r.x && x < r.x+r.w && y >= r.y && y < r.y+r.h
}

// buttonZone maps a rendered button to its screen area for mouse
// hit-testing.
type buttonZone struct {
	button *Button
	area   rect
}

// boxLayout captures where the dialog landed on screen during the last
// render. Backdrop and button clicks are resolved against it.
type boxLayout struct {
	valid   bool
	dialog  rect
	buttons []buttonZone
}

// renderDialog builds the centered dialog and records its layout.
func (c *Controller) renderDialog() string {
	t := &c.theme
	innerW := c.contentWidth()

	lines := make([]string, 0, 16)

	if c.opts.HasIcon() {
		lines = append(lines, padCenter(c.opts.Icon.Render(t), innerW), "")
	}

	if c.opts.HasTitle() {
		title := BoldGradientText(truncate(c.opts.Title, innerW), t.Primary, t.Secondary)
		lines = append(lines, padCenter(title, innerW), "")
	}

	if c.opts.HasText() {
		for _, line := range wrap(c.opts.Text, innerW) {
			lines = append(lines, padCenter(t.S().Text.Render(line), innerW))
		}
		lines = append(lines, "")
	}

	if c.opts.Body != nil {
		lines = append(lines, c.renderBody(innerW)...)
		lines = append(lines, "")
	}

	row, offsets := c.renderButtonRow(innerW)
	buttonLine := -1
	if row != "" {
		buttonLine = len(lines)
		lines = append(lines, row)
	}

	if hint := c.hint(); hint != "" {
		lines = append(lines, "", padCenter(t.S().Subtle.Render(hint), innerW))
	}

	// Border color marks the transition phases.
	borderColor := t.BorderFocus
	if c.state != StateOpen {
		borderColor = t.Border
	}

	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(borderColor).
		Padding(1, 2).
		Width(innerW + 4).
		Render(strings.Join(lines, "\n"))

	boxW := lipgloss.Width(box)
	boxH := strings.Count(box, "\n") + 1
	boxX := max((c.width-boxW)/2, 0)
	boxY := max((c.height-boxH)/2, 0)

	c.box = boxLayout{
		valid:  true,
		dialog: rect{x: boxX, y: boxY, w: boxW, h: boxH},
	}
	if buttonLine >= 0 {
		// Content starts after the border row and padding row; columns
		// after the border column and two padding columns.
		y := boxY + 2 + buttonLine
		x0 := boxX + 3
		for _, off := range offsets {
			c.box.buttons = append(c.box.buttons, buttonZone{
				button: off.button,
				area:   rect{x: x0 + off.x, y: y, w: off.w, h: 1},
			})
		}
	}

	return placeAt(box, boxX, boxY)
}

// contentWidth computes the inner dialog width from its widest piece,
// clamped to the terminal.
func (c *Controller) contentWidth() int {
	w := minDialogWidth

	if c.opts.HasTitle() {
		w = max(w, lipgloss.Width(c.opts.Title))
	}
	if c.opts.HasText() {
		textW := min(maxTextWidth, max(c.width-12, minDialogWidth))
		for _, line := range wrap(c.opts.Text, textW) {
			w = max(w, lipgloss.Width(line))
		}
	}
	if c.opts.Body != nil {
		for _, line := range strings.Split(c.opts.Body.View(), "\n") {
			w = max(w, lipgloss.Width(line))
		}
	}

	rowW := 0
	for _, b := range c.buttons {
		if rowW > 0 {
			rowW += 2
		}
		rowW += lipgloss.Width(b.render(&c.theme))
	}
	w = max(w, rowW)
	if hint := c.hint(); hint != "" {
		w = max(w, lipgloss.Width(hint))
	}

	return min(w, max(c.width-8, minDialogWidth))
}

// renderBody renders embedded content, routing it through the viewport
// when it is taller than the space the terminal leaves for it.
func (c *Controller) renderBody(innerW int) []string {
	view := c.opts.Body.View()
	bodyLines := strings.Split(view, "\n")

	maxBodyH := max(c.height-14, 3)
	if len(bodyLines) > maxBodyH {
		c.useVP = true
		c.bodyVP.Width = innerW
		c.bodyVP.Height = maxBodyH
		c.bodyVP.SetContent(view)
		return strings.Split(c.bodyVP.View(), "\n")
	}

	c.useVP = false
	out := make([]string, len(bodyLines))
	for i, line := range bodyLines {
		out[i] = padCenter(line, innerW)
	}
	return out
}

// buttonOffset records a button's horizontal placement in the row.
type buttonOffset struct {
	button *Button
	x, w   int
}

// renderButtonRow renders the visible buttons centered in the content
// area and reports each button's column range.
func (c *Controller) renderButtonRow(innerW int) (string, []buttonOffset) {
	if len(c.buttons) == 0 {
		return "", nil
	}

	parts := make([]string, len(c.buttons))
	widths := make([]int, len(c.buttons))
	rowW := 0
	for i, b := range c.buttons {
		parts[i] = b.render(&c.theme)
		widths[i] = lipgloss.Width(parts[i])
		if i > 0 {
			rowW += 2
		}
		rowW += widths[i]
	}

	lead := max((innerW-rowW)/2, 0)
	offsets := make([]buttonOffset, len(c.buttons))
	x := lead
	for i, b := range c.buttons {
		offsets[i] = buttonOffset{button: b, x: x, w: widths[i]}
		x += widths[i] + 2
	}

	row := strings.Repeat(" ", lead) + strings.Join(parts, "  ")
	if pad := innerW - lipgloss.Width(row); pad > 0 {
		row += strings.Repeat(" ", pad)
	}
	return row, offsets
}

// hint returns the footer key hint for the current alert.
func (c *Controller) hint() string {
	if len(c.buttons) == 0 && !c.opts.AutoCloses() {
		return ""
	}
	parts := make([]string, 0, 3)
	if len(c.buttons) > 1 {
		parts = append(parts, "tab: next")
	}
	if len(c.buttons) > 0 {
		parts = append(parts, "enter: select")
	}
	if c.opts.AutoCloses() {
		parts = append(parts, "esc: dismiss")
	}
	return strings.Join(parts, " · ")
}

// placeAt positions a box at the given screen coordinates by padding
// with blank lines and leading spaces, ready for overlay composition.
func placeAt(box string, x, y int) string {
	var b strings.Builder
	for range y {
		b.WriteString("\n")
	}
	indent := strings.Repeat(" ", x)
	for i, line := range strings.Split(box, "\n") {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(indent)
		b.WriteString(line)
	}
	return b.String()
}
