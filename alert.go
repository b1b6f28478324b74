// Package sweettea provides SweetAlert-style modal alert dialogs for
// Bubble Tea applications: a configurable dialog (title, text, icon,
// buttons, embedded content) with an open/close lifecycle, animation
// timing, a modal focus trap, and callbacks on button actions.
//
// A Controller owns at most one alert at a time. Wire it into the root
// model: forward messages through HandleMsg before your own routing,
// call SetSize on tea.WindowSizeMsg, and wrap the final view with
// RenderOverlay. Fire opens an alert, Close closes it.
//
// Calling Close immediately followed by Fire is unnecessary: Fire over
// an open alert queues the new configuration and replays it once the
// in-flight alert has fully closed, so animations never overlap.
package sweettea

import (
	"sync"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/lverne/sweettea/internal/overlay"
)

// State is the lifecycle state of the alert controller.
type State int

const (
	// StateClosed is the initial and resting state between alerts.
	StateClosed State = iota

	// StateOpening is the opening transition.
	StateOpening

	// StateOpen accepts input: buttons, Escape, backdrop clicks.
	StateOpen

	// StateClosing plays the closing animation.
	StateClosing
)

// String returns the state identifier.
func (s State) String() string {
	switch s {
	case StateClosed:
		return "closed"
	case StateOpening:
		return "opening"
	case StateOpen:
		return "open"
	case StateClosing:
		return "closing"
	}
	return "unknown"
}

// Controller manages the single active alert. The zero value is not
// usable; call New.
type Controller struct {
	theme Theme
	state State
	opts  Options

	buttons    []*Button
	bodyTarget *bodyFocus
	bodyVP     viewport.Model
	useVP      bool
	focusIdx   int

	// pending holds options queued by Fire while an alert is in
	// flight, replayed once the controller reaches StateClosed.
	pending *Options

	// result travels with the in-flight close; nil suppresses Then.
	result *Result

	// gen invalidates animation ticks from superseded transitions.
	gen int

	// Close/Fire calls made from inside a pre-close or Then callback
	// are recorded here instead of starting transitions, since the
	// callback has nowhere to return the transition command.
	inCallback       bool
	callbackClose    *Result
	callbackCloseSet bool

	width, height int
	box           boxLayout
}

// New creates an alert controller with the default theme.
func New() *Controller {
	return &Controller{
		theme:    DefaultTheme(),
		focusIdx: -1,
	}
}

var (
	defaultOnce sync.Once
	defaultCtl  *Controller
)

// Default returns the process-wide controller, created on first use.
// Repeated calls return the same instance, which keeps installation
// into the application root idempotent.
func Default() *Controller {
	defaultOnce.Do(func() {
		defaultCtl = New()
	})
	return defaultCtl
}

// Fire opens an alert on the default controller.
func Fire(opts Options) tea.Cmd { return Default().Fire(opts) }

// Close closes the alert on the default controller.
func Close(result *Result) tea.Cmd { return Default().Close(result) }

// SetTheme replaces the controller's theme.
func (c *Controller) SetTheme(t Theme) {
	t.styles = nil
	c.theme = t
}

// SetSize updates the terminal dimensions used for rendering and
// backdrop hit-testing.
func (c *Controller) SetSize(width, height int) {
	c.width = width
	c.height = height
}

// State returns the current lifecycle state.
func (c *Controller) State() State { return c.state }

// IsOpen reports whether an alert is accepting input.
func (c *Controller) IsOpen() bool { return c.state == StateOpen }

// Active reports whether an alert occupies the screen in any state
// other than closed.
func (c *Controller) Active() bool { return c.state != StateClosed }

// Options returns the configuration of the active alert. Zero value
// while closed.
func (c *Controller) Options() Options { return c.opts }

// Fire opens an alert with the given options. While an alert is open,
// opening, or closing, the new configuration is queued and shown only
// after the in-flight alert has fully reached the closed state; firing
// over an open alert begins its close without a result, so its Then
// callback is suppressed.
func (c *Controller) Fire(opts Options) tea.Cmd {
	if c.inCallback {
		c.pending = &opts
		return nil
	}

	switch c.state {
	case StateClosed:
		return c.open(opts)
	case StateOpening, StateClosing:
		c.pending = &opts
		return nil
	case StateOpen:
		c.pending = &opts
		return c.beginClose(nil)
	}
	return nil
}

// Close requests the closing transition. Valid only while the alert is
// open; in any other state it is a no-op. A non-nil result is passed to
// the Then callback once the closing animation completes; a nil result
// suppresses Then entirely.
func (c *Controller) Close(result *Result) tea.Cmd {
	if c.inCallback {
		if c.state == StateOpen {
			c.callbackClose = result
			c.callbackCloseSet = true
		}
		return nil
	}
	return c.beginClose(result)
}

// ConfirmButton returns the confirm button handle, or false when the
// alert is not open or the button is hidden.
func (c *Controller) ConfirmButton() (*Button, bool) { return c.button(ButtonConfirm) }

// DenyButton returns the deny button handle, or false when the alert is
// not open or the button is hidden.
func (c *Controller) DenyButton() (*Button, bool) { return c.button(ButtonDeny) }

// CancelButton returns the cancel button handle, or false when the
// alert is not open or the button is hidden.
func (c *Controller) CancelButton() (*Button, bool) { return c.button(ButtonCancel) }

func (c *Controller) button(kind ButtonKind) (*Button, bool) {
	if c.state != StateOpen {
		return nil, false
	}
	for _, b := range c.buttons {
		if b.kind == kind {
			return b, true
		}
	}
	return nil, false
}

// HandleMsg routes a message to the controller. It returns true when
// the message was consumed, in which case the host model should not
// process it further. Call this before the application's own routing.
func (c *Controller) HandleMsg(msg tea.Msg) (bool, tea.Cmd) {
	switch msg := msg.(type) {
	case openedMsg:
		if msg.gen != c.gen || c.state != StateOpening {
			return true, nil
		}
		return true, c.completeOpen()

	case closedMsg:
		if msg.gen != c.gen || c.state != StateClosing {
			return true, nil
		}
		return true, c.completeClose()

	case tea.WindowSizeMsg:
		// Track dimensions but let the host handle the resize too.
		c.SetSize(msg.Width, msg.Height)
		return false, nil

	case tea.KeyMsg:
		switch c.state {
		case StateClosed:
			return false, nil
		case StateOpening, StateClosing:
			// Modal: input during transitions is swallowed.
			return true, nil
		}
		return true, c.handleKey(msg)

	case tea.MouseMsg:
		switch c.state {
		case StateClosed:
			return false, nil
		case StateOpening, StateClosing:
			return true, nil
		}
		return true, c.handleMouse(msg)
	}

	return false, nil
}

// RenderOverlay draws the active alert centered over the base view.
// While closed it returns the base view unchanged.
func (c *Controller) RenderOverlay(base string) string {
	if c.state == StateClosed || c.width == 0 || c.height == 0 {
		c.box = boxLayout{}
		return base
	}
	return overlay.Compose(base, c.renderDialog(), c.width)
}

// open starts the closed→opening transition.
func (c *Controller) open(opts Options) tea.Cmd {
	c.opts = opts
	c.buttons = c.buildButtons(opts)
	c.bodyTarget = nil
	c.bodyVP = viewport.New(0, 0)
	c.useVP = false
	c.result = nil
	c.state = StateOpening
	c.gen++
	c.focusFirst()
	return openedCmd(c.gen, opts.Animates())
}

func (c *Controller) buildButtons(opts Options) []*Button {
	var buttons []*Button
	if opts.ShowsConfirm() {
		buttons = append(buttons, &Button{kind: ButtonConfirm, label: opts.confirmLabel(), c: c})
	}
	if opts.ShowDenyButton {
		buttons = append(buttons, &Button{kind: ButtonDeny, label: opts.denyLabel(), c: c})
	}
	if opts.ShowCancelButton {
		buttons = append(buttons, &Button{kind: ButtonCancel, label: opts.cancelLabel(), c: c})
	}
	return buttons
}

// completeOpen finishes the opening transition. If a Fire was queued
// while opening, the freshly opened alert immediately begins closing.
func (c *Controller) completeOpen() tea.Cmd {
	c.state = StateOpen
	if c.pending != nil {
		return c.beginClose(nil)
	}
	return nil
}

// beginClose starts the open→closing transition. No-op outside
// StateOpen: closing twice must not restart the in-flight animation.
func (c *Controller) beginClose(result *Result) tea.Cmd {
	if c.state != StateOpen {
		return nil
	}
	c.state = StateClosing
	c.result = result
	c.gen++
	return closedCmd(c.gen, c.opts.Animates())
}

// completeClose finishes the closing transition: clears the active
// configuration, invokes Then when a result was supplied, then replays
// a queued Fire.
func (c *Controller) completeClose() tea.Cmd {
	then := c.opts.Then
	result := c.result

	c.state = StateClosed
	c.opts = Options{}
	c.buttons = nil
	c.bodyTarget = nil
	c.useVP = false
	c.result = nil
	c.focusIdx = -1
	c.box = boxLayout{}

	if result != nil && then != nil {
		c.runCallback(func() { then(*result) })
	}

	if c.pending != nil {
		next := *c.pending
		c.pending = nil
		return c.open(next)
	}
	return nil
}

// runCallback runs a user callback with Fire/Close redirected to the
// queueing path, since the callback cannot return transition commands.
func (c *Controller) runCallback(fn func()) {
	c.inCallback = true
	fn()
	c.inCallback = false
}

// activate triggers a button: pre-close callback first, then the close
// transition with the button's result, subject to AutoClose.
func (c *Controller) activate(b *Button) tea.Cmd {
	if b == nil || b.disabled || c.state != StateOpen {
		return nil
	}

	var pre func()
	var result Result
	switch b.kind {
	case ButtonConfirm:
		pre, result = c.opts.PreConfirm, Confirmed()
	case ButtonDeny:
		pre, result = c.opts.PreDeny, Denied()
	case ButtonCancel:
		pre, result = c.opts.PreCancel, Canceled(DismissCancel)
	}

	if pre != nil {
		c.runCallback(pre)
	}

	// An explicit Close from the callback overrides the button result.
	if c.callbackCloseSet {
		r := c.callbackClose
		c.callbackClose = nil
		c.callbackCloseSet = false
		return c.beginClose(r)
	}

	if c.opts.AutoCloses() {
		return c.beginClose(&result)
	}
	return nil
}

func (c *Controller) handleKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "esc":
		if !c.opts.AutoCloses() {
			return nil
		}
		result := Canceled(DismissEsc)
		return c.beginClose(&result)

	case "tab":
		c.cycleFocus(1)
		return nil

	case "shift+tab":
		c.cycleFocus(-1)
		return nil

	case "right":
		if _, onBody := c.focusedTarget().(*bodyFocus); !onBody {
			c.cycleFocus(1)
			return nil
		}

	case "left":
		if _, onBody := c.focusedTarget().(*bodyFocus); !onBody {
			c.cycleFocus(-1)
			return nil
		}

	case "enter", " ":
		if b, ok := c.focusedTarget().(*Button); ok {
			return c.activate(b)
		}
	}

	// Remaining keys go to a focused body, or scroll the viewport.
	if f, ok := c.focusedTarget().(*bodyFocus); ok {
		if kh, ok := f.body.(KeyHandler); ok {
			return kh.HandleKey(msg)
		}
	}
	if c.useVP {
		switch msg.String() {
		case "up", "down", "pgup", "pgdown":
			var cmd tea.Cmd
			c.bodyVP, cmd = c.bodyVP.Update(msg)
			return cmd
		}
	}
	return nil
}

func (c *Controller) handleMouse(msg tea.MouseMsg) tea.Cmd {
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return nil
	}
	if !c.box.valid {
		return nil
	}

	if !c.box.dialog.contains(msg.X, msg.Y) {
		// Backdrop click.
		if !c.opts.AutoCloses() {
			return nil
		}
		result := Canceled(DismissBackdrop)
		return c.beginClose(&result)
	}

	for _, zone := range c.box.buttons {
		if zone.area.contains(msg.X, msg.Y) {
			zone.button.Focus()
			return c.activate(zone.button)
		}
	}
	return nil
}
