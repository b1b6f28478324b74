package sweettea

// DismissReason explains why an alert was closed without being
// confirmed or denied.
type DismissReason int

const (
	// DismissBackdrop means the user clicked the backdrop around the dialog.
	DismissBackdrop DismissReason = iota

	// DismissCancel means the user pressed the cancel button.
	DismissCancel

	// DismissClose is never produced by the controller itself. It is
	// reserved for callers that close an alert programmatically and
	// want to detect that in the Then callback.
	DismissClose

	// DismissEsc means the user pressed the Escape key.
	DismissEsc
)

// String returns the reason identifier for logging.
func (r DismissReason) String() string {
	switch r {
	case DismissBackdrop:
		return "backdrop"
	case DismissCancel:
		return "cancel"
	case DismissClose:
		return "close"
	case DismissEsc:
		return "esc"
	}
	return "unknown"
}

// Result is the outcome of an alert's lifetime, delivered to the Then
// callback once the closing transition has completed.
type Result struct {
	// IsConfirmed is true when the confirm button was activated.
	IsConfirmed bool

	// IsDenied is true when the deny button was activated.
	IsDenied bool

	// IsDismissed is true when the alert was dismissed without a
	// confirm or deny: cancel button, Escape, or backdrop click.
	IsDismissed bool

	// Value is true only for confirmed alerts.
	Value bool

	// Dismiss carries the dismissal reason. It is nil for confirmed
	// and denied alerts.
	Dismiss *DismissReason
}

// Confirmed builds the result of a confirmed alert.
func Confirmed() Result {
	return Result{IsConfirmed: true, Value: true}
}

// Denied builds the result of a denied alert.
func Denied() Result {
	return Result{IsDenied: true}
}

// Canceled builds the result of an alert dismissed for the given reason.
func Canceled(reason DismissReason) Result {
	return Result{IsDismissed: true, Dismiss: &reason}
}
