package sweettea

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// Transition durations, roughly matching the CSS transitions of the
// original web library.
const (
	openDuration  = 200 * time.Millisecond
	closeDuration = 300 * time.Millisecond
)

// openedCmd signals render-complete after the opening transition.
// Without animation the message is delivered on the next event loop
// pass instead of after a timer.
func openedCmd(gen int, animated bool) tea.Cmd {
	if !animated {
		return func() tea.Msg { return openedMsg{gen: gen} }
	}
	return tea.Tick(openDuration, func(_ time.Time) tea.Msg {
		return openedMsg{gen: gen}
	})
}

// closedCmd signals animation-done after the closing transition.
func closedCmd(gen int, animated bool) tea.Cmd {
	if !animated {
		return func() tea.Msg { return closedMsg{gen: gen} }
	}
	return tea.Tick(closeDuration, func(_ time.Time) tea.Msg {
		return closedMsg{gen: gen}
	})
}
