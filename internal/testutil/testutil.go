// Package testutil provides a test harness for driving an alert
// controller with simulated input and synchronous animation ticks.
package testutil

import (
	"regexp"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/lverne/sweettea"
)

// Harness wraps a Controller, collecting the commands it emits so
// tests can run them synchronously and feed the results back.
type Harness struct {
	C *sweettea.Controller

	queue []tea.Cmd
}

// New creates a harness around a fresh controller with the given
// terminal dimensions.
func New(width, height int) *Harness {
	c := sweettea.New()
	c.SetSize(width, height)
	return &Harness{C: c}
}

// Fire opens an alert and queues the resulting command.
func (h *Harness) Fire(opts sweettea.Options) {
	h.push(h.C.Fire(opts))
}

// CloseAlert requests a close and queues the resulting command.
func (h *Harness) CloseAlert(result *sweettea.Result) {
	h.push(h.C.Close(result))
}

// Send routes a message through the controller, queueing any command.
func (h *Harness) Send(msg tea.Msg) bool {
	handled, cmd := h.C.HandleMsg(msg)
	h.push(cmd)
	return handled
}

// SendKey simulates typing a regular key.
func (h *Harness) SendKey(key string) bool {
	return h.Send(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(key)})
}

// SendSpecial sends a special key (enter, escape, tab, ...).
func (h *Harness) SendSpecial(keyType tea.KeyType) bool {
	return h.Send(tea.KeyMsg{Type: keyType})
}

// SendEnter sends the enter key.
func (h *Harness) SendEnter() bool { return h.SendSpecial(tea.KeyEnter) }

// SendEscape sends the escape key.
func (h *Harness) SendEscape() bool { return h.SendSpecial(tea.KeyEscape) }

// SendTab sends the tab key.
func (h *Harness) SendTab() bool { return h.SendSpecial(tea.KeyTab) }

// SendShiftTab sends shift+tab.
func (h *Harness) SendShiftTab() bool { return h.SendSpecial(tea.KeyShiftTab) }

// Click simulates a left mouse press at the given cell.
func (h *Harness) Click(x, y int) bool {
	return h.Send(tea.MouseMsg{
		Action: tea.MouseActionPress,
		Button: tea.MouseButtonLeft,
		X:      x,
		Y:      y,
	})
}

// Settle runs queued commands until none remain, feeding each produced
// message back into the controller. Animation ticks execute with their
// real (short) durations, so a Settle after a close takes roughly the
// closing animation's length.
func (h *Harness) Settle() {
	for len(h.queue) > 0 {
		cmd := h.queue[0]
		h.queue = h.queue[1:]
		h.run(cmd)
	}
}

func (h *Harness) run(cmd tea.Cmd) {
	if cmd == nil {
		return
	}
	msg := cmd()
	if msg == nil {
		return
	}
	if batch, ok := msg.(tea.BatchMsg); ok {
		for _, sub := range batch {
			h.run(sub)
		}
		return
	}
	h.Send(msg)
}

// PendingCommands returns the number of commands not yet executed.
func (h *Harness) PendingCommands() int { return len(h.queue) }

// View renders the alert over a blank base view.
func (h *Harness) View() string {
	return h.C.RenderOverlay(blankBase())
}

func blankBase() string {
	// A generous blank canvas; the compositor drops overlay lines
	// beyond the base, so oversize is harmless.
	line := strings.Repeat(" ", 200)
	lines := make([]string, 100)
	for i := range lines {
		lines[i] = line
	}
	return strings.Join(lines, "\n")
}

// ViewContains reports whether the rendered view contains substr,
// ignoring styling.
func (h *Harness) ViewContains(substr string) bool {
	return strings.Contains(StripANSI(h.View()), substr)
}

func (h *Harness) push(cmd tea.Cmd) {
	if cmd != nil {
		h.queue = append(h.queue, cmd)
	}
}

var ansiRE = regexp.MustCompile(`\x1b\[[0-9;]*m`)

// StripANSI removes ANSI escape codes for easier assertions.
func StripANSI(s string) string {
	return ansiRE.ReplaceAllString(s, "")
}
