package sweettea

import tea "github.com/charmbracelet/bubbletea"

// Default button labels, applied when the corresponding text option is
// left empty.
const (
	DefaultConfirmText = "Ok"
	DefaultDenyText    = "Deny"
	DefaultCancelText  = "Cancel"
)

// Renderable is arbitrary embedded content displayed between the alert
// text and the buttons. Any Bubble Tea view fits; a component that also
// implements Focusable joins the dialog's focus ring.
type Renderable interface {
	View() string
}

// Focusable is optionally implemented by a Renderable body that wants
// to participate in the focus ring (and receive key events while
// focused, when it also implements KeyHandler).
type Focusable interface {
	SetFocused(focused bool)
}

// KeyHandler is optionally implemented by a focusable body to receive
// key events that the dialog itself does not consume.
type KeyHandler interface {
	HandleKey(msg tea.KeyMsg) tea.Cmd
}

// Options is the immutable configuration snapshot for one alert,
// created by the caller per Fire invocation and owned by the controller
// until the alert fully closes.
type Options struct {
	// Title of the alert. Empty means no title line.
	Title string

	// Text displayed below the title. Empty means no text block.
	Text string

	// Icon displayed above the title. Nil or IconNone means no icon.
	Icon Iconic

	// Body is arbitrary renderable content inserted below the text and
	// above the buttons. Overflowing bodies scroll in a viewport.
	Body Renderable

	// ShowConfirmButton defaults to true.
	ShowConfirmButton *bool

	// ShowDenyButton defaults to false.
	ShowDenyButton bool

	// ShowCancelButton defaults to false.
	ShowCancelButton bool

	// Button labels. Empty values fall back to the package defaults.
	ConfirmButtonText string
	DenyButtonText    string
	CancelButtonText  string

	// PreConfirm runs before the confirm close transition begins. It
	// may call Fire to chain a new alert; the current alert still
	// finishes closing first.
	PreConfirm func()

	// PreDeny runs before the deny close transition begins.
	PreDeny func()

	// PreCancel runs before the cancel close transition begins.
	PreCancel func()

	// Then runs after the alert has fully closed, receiving the close
	// result. It is not called when the alert is closed without a
	// result (Close(nil)).
	Then func(Result)

	// AutoClose controls whether button presses, Escape, and backdrop
	// clicks close the alert. Defaults to true. With AutoClose false
	// the pre-close callbacks still run but the alert stays open until
	// Close is called; Escape and backdrop clicks are ignored.
	//
	// Keeping users from dismissing an alert is an accessibility
	// hazard; use sparingly.
	AutoClose *bool

	// Animation controls the opening and closing transitions.
	// Defaults to true; false makes both transitions immediate.
	Animation *bool
}

// Basic returns options for a simple alert with just a title.
func Basic(title string) Options {
	return Options{Title: title}
}

// BasicIcon returns options for an alert with a title and an icon.
func BasicIcon(title string, icon Iconic) Options {
	return Options{Title: title, Icon: icon}
}

// Common returns options for an alert with a title, a text and an icon.
func Common(title, text string, icon Iconic) Options {
	return Options{Title: title, Text: text, Icon: icon}
}

// HasTitle reports whether a title line will be displayed.
func (o Options) HasTitle() bool { return o.Title != "" }

// HasText reports whether a text block will be displayed.
func (o Options) HasText() bool { return o.Text != "" }

// HasIcon reports whether an icon will be displayed.
func (o Options) HasIcon() bool { return o.Icon != nil && o.Icon.Defined() }

// ShowsConfirm reports whether the confirm button is displayed.
func (o Options) ShowsConfirm() bool {
	return o.ShowConfirmButton == nil || *o.ShowConfirmButton
}

// AutoCloses reports whether the alert closes itself on button press,
// Escape, and backdrop click.
func (o Options) AutoCloses() bool {
	return o.AutoClose == nil || *o.AutoClose
}

// Animates reports whether open/close transitions are animated.
func (o Options) Animates() bool {
	return o.Animation == nil || *o.Animation
}

// confirmLabel returns the confirm button label with default applied.
func (o Options) confirmLabel() string {
	if o.ConfirmButtonText != "" {
		return o.ConfirmButtonText
	}
	return DefaultConfirmText
}

func (o Options) denyLabel() string {
	if o.DenyButtonText != "" {
		return o.DenyButtonText
	}
	return DefaultDenyText
}

func (o Options) cancelLabel() string {
	if o.CancelButtonText != "" {
		return o.CancelButtonText
	}
	return DefaultCancelText
}

// Bool is a convenience for filling the optional boolean fields.
func Bool(v bool) *bool { return &v }
