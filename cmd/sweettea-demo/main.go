package main

import (
	"fmt"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/lverne/sweettea"
	"github.com/lverne/sweettea/internal/config"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#a78bfa"))
	cursorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#a78bfa")).Bold(true)
	entryStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#c0c0c0"))
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#808080"))
)

type demoEntry struct {
	name string
	opts func(m *model) sweettea.Options
}

type model struct {
	alerts  *sweettea.Controller
	cfg     *config.Config
	entries []demoEntry
	cursor  int
	status  *string
	width   int
	height  int
}

func newModel(cfg *config.Config) model {
	alerts := sweettea.New()
	alerts.SetTheme(cfg.BuildTheme())

	status := "fire an alert and watch the result land here"
	m := model{
		alerts: alerts,
		cfg:    cfg,
		status: &status,
	}
	m.entries = buildEntries()
	return m
}

func buildEntries() []demoEntry {
	icons := []struct {
		name string
		icon sweettea.Icon
	}{
		{"Success", sweettea.IconSuccess},
		{"Warning", sweettea.IconWarning},
		{"Error", sweettea.IconError},
		{"Info", sweettea.IconInfo},
		{"Question", sweettea.IconQuestion},
	}

	var entries []demoEntry
	for _, ic := range icons {
		entries = append(entries, demoEntry{
			name: ic.name,
			opts: func(m *model) sweettea.Options {
				opts := sweettea.BasicIcon("This is a title", ic.icon)
				opts.Text = "A basic " + strings.ToLower(ic.name) + " alert."
				opts.Animation = sweettea.Bool(m.cfg.Animates())
				opts.Then = m.report
				return opts
			},
		})
	}

	entries = append(entries, demoEntry{
		name: "Three buttons",
		opts: func(m *model) sweettea.Options {
			opts := sweettea.Common("Save changes?", "Your edits will be lost otherwise.", sweettea.IconQuestion)
			opts.ShowDenyButton = true
			opts.ShowCancelButton = true
			opts.ConfirmButtonText = "Save"
			opts.DenyButtonText = "Don't save"
			opts.Animation = sweettea.Bool(m.cfg.Animates())
			opts.Then = m.report
			return opts
		},
	})

	entries = append(entries, demoEntry{
		name: "Chained",
		opts: func(m *model) sweettea.Options {
			opts := sweettea.BasicIcon("Step one", sweettea.IconInfo)
			opts.Text = "Confirming opens a second alert."
			opts.Animation = sweettea.Bool(m.cfg.Animates())
			opts.PreConfirm = func() {
				next := sweettea.BasicIcon("Step two", sweettea.IconSuccess)
				next.Text = "Fired from the first alert's pre-confirm."
				next.Animation = sweettea.Bool(m.cfg.Animates())
				next.Then = m.report
				m.alerts.Fire(next)
			}
			return opts
		},
	})

	entries = append(entries, demoEntry{
		name: "No auto-close",
		opts: func(m *model) sweettea.Options {
			opts := sweettea.Common("Sticky alert",
				"Escape and backdrop clicks are ignored; only the button closes this.",
				sweettea.IconWarning)
			opts.AutoClose = sweettea.Bool(false)
			opts.ConfirmButtonText = "Dismiss"
			opts.Animation = sweettea.Bool(m.cfg.Animates())
			opts.PreConfirm = func() {
				result := sweettea.Confirmed()
				m.alerts.Close(&result)
			}
			opts.Then = m.report
			return opts
		},
	})

	return entries
}

// report records the alert outcome on the status line.
func (m *model) report(r sweettea.Result) {
	switch {
	case r.IsConfirmed:
		*m.status = "result: confirmed"
	case r.IsDenied:
		*m.status = "result: denied"
	case r.IsDismissed && r.Dismiss != nil:
		*m.status = "result: dismissed (" + r.Dismiss.String() + ")"
	default:
		*m.status = "result: dismissed"
	}
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if size, ok := msg.(tea.WindowSizeMsg); ok {
		m.width = size.Width
		m.height = size.Height
	}

	if key, ok := msg.(tea.KeyMsg); ok && key.String() == "ctrl+c" {
		return m, tea.Quit
	}

	// The alert controller sees everything first; while an alert is
	// up it owns the keyboard and mouse.
	if handled, cmd := m.alerts.HandleMsg(msg); handled {
		return m, cmd
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch keyMsg.String() {
	case "q":
		return m, tea.Quit
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.entries)-1 {
			m.cursor++
		}
	case "enter":
		entry := m.entries[m.cursor]
		opts := entry.opts(&m)
		m.cfg.ApplyLabels(&opts)
		return m, m.alerts.Fire(opts)
	}
	return m, nil
}

func (m model) View() string {
	var b strings.Builder
	b.WriteString(headerStyle.Render("sweettea demo"))
	b.WriteString("\n\n")
	for i, entry := range m.entries {
		if i == m.cursor {
			b.WriteString(cursorStyle.Render("> " + entry.name))
		} else {
			b.WriteString(entryStyle.Render("  " + entry.name))
		}
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(statusStyle.Render(*m.status))
	b.WriteString("\n\n")
	b.WriteString(statusStyle.Render("j/k: move · enter: fire · q: quit"))

	view := lipgloss.NewStyle().Padding(1, 2).Render(b.String())
	return m.alerts.RenderOverlay(view)
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}

	p := tea.NewProgram(newModel(cfg), tea.WithAltScreen(), tea.WithMouseCellMotion())
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
