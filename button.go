package sweettea

// ButtonKind identifies one of the three action buttons.
type ButtonKind int

const (
	ButtonConfirm ButtonKind = iota
	ButtonDeny
	ButtonCancel
)

// String returns the button identifier.
func (k ButtonKind) String() string {
	switch k {
	case ButtonConfirm:
		return "confirm"
	case ButtonDeny:
		return "deny"
	case ButtonCancel:
		return "cancel"
	}
	return "unknown"
}

// Button is a stable handle to a rendered action button, valid while
// the alert that created it is open. It supports styling decisions,
// manual enable/disable, and explicit focus.
type Button struct {
	kind     ButtonKind
	label    string
	disabled bool
	focused  bool

	c *Controller
}

// Kind returns which action this button triggers.
func (b *Button) Kind() ButtonKind { return b.kind }

// Label returns the rendered label.
func (b *Button) Label() string { return b.label }

// Enabled reports whether the button can be activated.
func (b *Button) Enabled() bool { return !b.disabled }

// Focused reports whether the button currently holds focus.
func (b *Button) Focused() bool { return b.focused }

// SetEnabled enables or disables the button. Disabling the focused
// button moves focus to the next focusable element.
func (b *Button) SetEnabled(enabled bool) {
	b.disabled = !enabled
	if b.disabled && b.focused && b.c != nil {
		b.c.focusFirst()
	}
}

// Focus moves the dialog focus to this button. No-op while disabled.
func (b *Button) Focus() {
	if b.disabled || b.c == nil {
		return
	}
	b.c.focusOn(b)
}

func (b *Button) setFocused(focused bool) {
	b.focused = focused
}

// render returns the styled button for the current theme.
func (b *Button) render(t *Theme) string {
	s := t.S()
	switch {
	case b.disabled:
		return s.ButtonDimmed.Render(b.label)
	case b.focused:
		return s.ButtonFocused.Render(b.label)
	default:
		return s.Button.Render(b.label)
	}
}

// focusTarget is an element of the dialog's focus ring.
type focusTarget interface {
	setFocused(focused bool)
}

// bodyFocus adapts a user-supplied Focusable body to the focus ring.
type bodyFocus struct {
	body Focusable
}

func (f *bodyFocus) setFocused(focused bool) {
	f.body.SetFocused(focused)
}

// focusables returns the ordered focusable descendants of the dialog:
// the body (when focusable) followed by the visible, enabled buttons in
// confirm, deny, cancel order. An empty result means focus stays
// trapped on the dialog container itself.
func (c *Controller) focusables() []focusTarget {
	if c.state == StateClosed {
		return nil
	}

	var targets []focusTarget
	if f, ok := c.opts.Body.(Focusable); ok && c.opts.Body != nil {
		if c.bodyTarget == nil || c.bodyTarget.body != f {
			c.bodyTarget = &bodyFocus{body: f}
		}
		targets = append(targets, c.bodyTarget)
	}
	for _, b := range c.buttons {
		if !b.disabled {
			targets = append(targets, b)
		}
	}
	return targets
}

// focusFirst moves focus to the first focusable element, or traps it on
// the container when nothing is focusable.
func (c *Controller) focusFirst() {
	targets := c.focusables()
	if len(targets) == 0 {
		c.setFocusIndex(nil, -1)
		return
	}
	c.setFocusIndex(targets, 0)
}

// focusOn moves focus to the given target if it is in the ring.
func (c *Controller) focusOn(target focusTarget) {
	targets := c.focusables()
	for i, t := range targets {
		if t == target {
			c.setFocusIndex(targets, i)
			return
		}
	}
}

// cycleFocus advances focus by delta (+1 for Tab, -1 for Shift+Tab),
// wrapping from last to first and vice versa. With zero focusable
// descendants the container keeps the focus; the key is still consumed
// so focus never escapes the dialog.
func (c *Controller) cycleFocus(delta int) {
	targets := c.focusables()
	if len(targets) == 0 {
		c.focusIdx = -1
		return
	}
	idx := c.focusIdx
	if idx < 0 || idx >= len(targets) {
		idx = 0
	} else {
		idx = (idx + delta + len(targets)) % len(targets)
	}
	c.setFocusIndex(targets, idx)
}

func (c *Controller) setFocusIndex(targets []focusTarget, idx int) {
	if targets == nil {
		targets = c.focusables()
	}
	for i, t := range targets {
		t.setFocused(i == idx)
	}
	c.focusIdx = idx
}

// focusedTarget returns the element currently holding focus, or nil
// when focus is trapped on the container.
func (c *Controller) focusedTarget() focusTarget {
	targets := c.focusables()
	if c.focusIdx < 0 || c.focusIdx >= len(targets) {
		return nil
	}
	return targets[c.focusIdx]
}
