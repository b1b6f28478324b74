package sweettea_test

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"

	"github.com/lverne/sweettea"
	"github.com/lverne/sweettea/internal/testutil"
)

// instant returns options with transitions disabled so tests settle
// without waiting on timers.
func instant(title string) sweettea.Options {
	opts := sweettea.Basic(title)
	opts.Animation = sweettea.Bool(false)
	return opts
}

func TestFireOpensAlert(t *testing.T) {
	h := testutil.New(80, 24)

	h.Fire(instant("Hello"))
	h.Settle()

	assert.True(t, h.C.IsOpen())
	assert.True(t, h.ViewContains("Hello"))
}

func TestOpeningTransitionSwallowsInput(t *testing.T) {
	h := testutil.New(80, 24)

	h.Fire(sweettea.Basic("Animated"))
	if h.C.State() != sweettea.StateOpening {
		t.Fatalf("State() = %v, want opening", h.C.State())
	}

	// Keys during the transition are consumed but do nothing.
	if !h.SendEnter() {
		t.Error("enter during opening should be consumed")
	}
	if h.C.State() != sweettea.StateOpening {
		t.Errorf("State() = %v after enter, want opening", h.C.State())
	}

	h.Settle()
	if !h.C.IsOpen() {
		t.Errorf("State() = %v after settle, want open", h.C.State())
	}
}

func TestConfirmDeliversResult(t *testing.T) {
	h := testutil.New(80, 24)

	var got *sweettea.Result
	calls := 0
	opts := instant("Confirm me")
	opts.Then = func(r sweettea.Result) {
		got = &r
		calls++
	}

	h.Fire(opts)
	h.Settle()
	h.SendEnter()
	h.Settle()

	if h.C.State() != sweettea.StateClosed {
		t.Fatalf("State() = %v, want closed", h.C.State())
	}
	if calls != 1 {
		t.Fatalf("Then called %d times, want 1", calls)
	}
	assert.True(t, got.IsConfirmed)
	assert.True(t, got.Value)
	assert.False(t, got.IsDenied)
	assert.False(t, got.IsDismissed)
	assert.Nil(t, got.Dismiss)
}

func TestDenyDeliversResult(t *testing.T) {
	h := testutil.New(80, 24)

	var got *sweettea.Result
	opts := instant("Deny me")
	opts.ShowDenyButton = true
	opts.Then = func(r sweettea.Result) { got = &r }

	h.Fire(opts)
	h.Settle()
	h.SendTab() // confirm -> deny
	h.SendEnter()
	h.Settle()

	if got == nil {
		t.Fatal("Then not called")
	}
	assert.True(t, got.IsDenied)
	assert.False(t, got.IsConfirmed)
	assert.False(t, got.Value)
}

func TestCancelDeliversDismissal(t *testing.T) {
	h := testutil.New(80, 24)

	var got *sweettea.Result
	opts := instant("Cancel me")
	opts.ShowCancelButton = true
	opts.Then = func(r sweettea.Result) { got = &r }

	h.Fire(opts)
	h.Settle()
	h.SendShiftTab() // confirm wraps back to cancel
	h.SendEnter()
	h.Settle()

	if got == nil {
		t.Fatal("Then not called")
	}
	assert.True(t, got.IsDismissed)
	if assert.NotNil(t, got.Dismiss) {
		assert.Equal(t, sweettea.DismissCancel, *got.Dismiss)
	}
}

func TestEscapeDismisses(t *testing.T) {
	h := testutil.New(80, 24)

	var got *sweettea.Result
	opts := instant("Esc me")
	opts.Then = func(r sweettea.Result) { got = &r }

	h.Fire(opts)
	h.Settle()
	h.SendEscape()
	h.Settle()

	if h.C.State() != sweettea.StateClosed {
		t.Fatalf("State() = %v, want closed", h.C.State())
	}
	if got == nil {
		t.Fatal("Then not called")
	}
	assert.True(t, got.IsDismissed)
	if assert.NotNil(t, got.Dismiss) {
		assert.Equal(t, sweettea.DismissEsc, *got.Dismiss)
	}
}

func TestEscapeIgnoredWithoutAutoClose(t *testing.T) {
	h := testutil.New(80, 24)

	opts := instant("Sticky")
	opts.AutoClose = sweettea.Bool(false)

	h.Fire(opts)
	h.Settle()
	h.SendEscape()
	h.Settle()

	if !h.C.IsOpen() {
		t.Errorf("State() = %v after esc, want open", h.C.State())
	}
}

func TestBackdropClickDismisses(t *testing.T) {
	h := testutil.New(80, 24)

	var got *sweettea.Result
	opts := instant("Click around me")
	opts.Then = func(r sweettea.Result) { got = &r }

	h.Fire(opts)
	h.Settle()
	h.View() // record the layout
	h.Click(0, 0)
	h.Settle()

	if h.C.State() != sweettea.StateClosed {
		t.Fatalf("State() = %v, want closed", h.C.State())
	}
	if got == nil {
		t.Fatal("Then not called")
	}
	if assert.NotNil(t, got.Dismiss) {
		assert.Equal(t, sweettea.DismissBackdrop, *got.Dismiss)
	}
}

func TestBackdropClickIgnoredWithoutAutoClose(t *testing.T) {
	h := testutil.New(80, 24)

	opts := instant("Sticky")
	opts.AutoClose = sweettea.Bool(false)

	h.Fire(opts)
	h.Settle()
	h.View()
	h.Click(0, 0)
	h.Settle()

	if !h.C.IsOpen() {
		t.Errorf("State() = %v after backdrop click, want open", h.C.State())
	}
}

func TestCloseWithoutResultSuppressesThen(t *testing.T) {
	h := testutil.New(80, 24)

	calls := 0
	opts := instant("Quiet close")
	opts.Then = func(sweettea.Result) { calls++ }

	h.Fire(opts)
	h.Settle()
	h.CloseAlert(nil)
	h.Settle()

	if h.C.State() != sweettea.StateClosed {
		t.Fatalf("State() = %v, want closed", h.C.State())
	}
	if calls != 0 {
		t.Errorf("Then called %d times, want 0", calls)
	}
}

func TestCloseWithResultCallsThen(t *testing.T) {
	h := testutil.New(80, 24)

	var got *sweettea.Result
	opts := instant("Programmatic")
	opts.Then = func(r sweettea.Result) { got = &r }

	h.Fire(opts)
	h.Settle()
	result := sweettea.Canceled(sweettea.DismissClose)
	h.CloseAlert(&result)
	h.Settle()

	if got == nil {
		t.Fatal("Then not called")
	}
	if assert.NotNil(t, got.Dismiss) {
		assert.Equal(t, sweettea.DismissClose, *got.Dismiss)
	}
}

func TestCloseWhileClosedIsNoOp(t *testing.T) {
	h := testutil.New(80, 24)

	result := sweettea.Confirmed()
	h.CloseAlert(&result)
	h.Settle()

	if h.C.State() != sweettea.StateClosed {
		t.Errorf("State() = %v, want closed", h.C.State())
	}
}

func TestCloseDuringClosingDoesNotRestart(t *testing.T) {
	h := testutil.New(80, 24)

	calls := 0
	opts := instant("Double close")
	opts.Then = func(sweettea.Result) { calls++ }

	h.Fire(opts)
	h.Settle()

	r1 := sweettea.Confirmed()
	h.CloseAlert(&r1)
	if h.C.State() != sweettea.StateClosing {
		t.Fatalf("State() = %v, want closing", h.C.State())
	}
	r2 := sweettea.Denied()
	h.CloseAlert(&r2)
	h.Settle()

	if calls != 1 {
		t.Errorf("Then called %d times, want 1", calls)
	}
}

func TestFireOverOpenAlertReplacesIt(t *testing.T) {
	h := testutil.New(80, 24)

	firstThen := 0
	first := instant("First")
	first.Then = func(sweettea.Result) { firstThen++ }

	h.Fire(first)
	h.Settle()

	h.Fire(instant("Second"))
	if h.C.State() != sweettea.StateClosing {
		t.Fatalf("State() = %v after second fire, want closing", h.C.State())
	}
	h.Settle()

	if !h.C.IsOpen() {
		t.Fatalf("State() = %v, want open", h.C.State())
	}
	assert.Equal(t, "Second", h.C.Options().Title)
	// The replaced alert closed without a result.
	assert.Zero(t, firstThen)
}

func TestFireWhileOpeningQueues(t *testing.T) {
	h := testutil.New(80, 24)

	h.Fire(instant("First"))
	// Still opening: the second fire must wait its turn.
	h.Fire(instant("Second"))
	h.Settle()

	if !h.C.IsOpen() {
		t.Fatalf("State() = %v, want open", h.C.State())
	}
	assert.Equal(t, "Second", h.C.Options().Title)
}

func TestChainedFireFromPreConfirm(t *testing.T) {
	h := testutil.New(80, 24)

	var firstResult *sweettea.Result
	second := instant("Second")

	first := instant("First")
	first.PreConfirm = func() { h.Fire(second) }
	first.Then = func(r sweettea.Result) { firstResult = &r }

	h.Fire(first)
	h.Settle()
	h.SendEnter()
	h.Settle()

	if !h.C.IsOpen() {
		t.Fatalf("State() = %v, want open", h.C.State())
	}
	assert.Equal(t, "Second", h.C.Options().Title)
	// The first alert completed its own close before the chain.
	if assert.NotNil(t, firstResult) {
		assert.True(t, firstResult.IsConfirmed)
	}
}

func TestFireFromThenReplays(t *testing.T) {
	h := testutil.New(80, 24)

	next := instant("Next")
	opts := instant("Current")
	opts.Then = func(sweettea.Result) { h.Fire(next) }

	h.Fire(opts)
	h.Settle()
	h.SendEnter()
	h.Settle()

	if !h.C.IsOpen() {
		t.Fatalf("State() = %v, want open", h.C.State())
	}
	assert.Equal(t, "Next", h.C.Options().Title)
}

func TestManualCloseWithoutAutoClose(t *testing.T) {
	h := testutil.New(80, 24)

	var got *sweettea.Result
	opts := instant("Manual")
	opts.AutoClose = sweettea.Bool(false)
	opts.PreConfirm = func() {
		r := sweettea.Confirmed()
		h.CloseAlert(&r)
	}
	opts.Then = func(r sweettea.Result) { got = &r }

	h.Fire(opts)
	h.Settle()
	h.SendEnter()
	h.Settle()

	if h.C.State() != sweettea.StateClosed {
		t.Fatalf("State() = %v, want closed", h.C.State())
	}
	if got == nil {
		t.Fatal("Then not called")
	}
	assert.True(t, got.IsConfirmed)
}

func TestButtonPressWithoutAutoCloseStaysOpen(t *testing.T) {
	h := testutil.New(80, 24)

	preCalls := 0
	opts := instant("Stays")
	opts.AutoClose = sweettea.Bool(false)
	opts.PreConfirm = func() { preCalls++ }

	h.Fire(opts)
	h.Settle()
	h.SendEnter()
	h.Settle()

	if !h.C.IsOpen() {
		t.Errorf("State() = %v, want open", h.C.State())
	}
	if preCalls != 1 {
		t.Errorf("PreConfirm called %d times, want 1", preCalls)
	}
}

func TestButtonHandles(t *testing.T) {
	h := testutil.New(80, 24)

	opts := instant("Handles")
	opts.ShowDenyButton = true
	opts.ConfirmButtonText = "Go"

	h.Fire(opts)

	// Not open yet: no handles during the transition.
	if _, ok := h.C.ConfirmButton(); ok {
		t.Error("ConfirmButton() available while opening")
	}

	h.Settle()

	confirm, ok := h.C.ConfirmButton()
	if !ok {
		t.Fatal("ConfirmButton() not available while open")
	}
	assert.Equal(t, "Go", confirm.Label())
	assert.True(t, confirm.Focused())

	deny, ok := h.C.DenyButton()
	if !ok {
		t.Fatal("DenyButton() not available while open")
	}
	assert.False(t, deny.Focused())

	if _, ok := h.C.CancelButton(); ok {
		t.Error("CancelButton() available though hidden")
	}

	deny.Focus()
	assert.True(t, deny.Focused())
	assert.False(t, confirm.Focused())
}

func TestDisabledButtonDoesNotActivate(t *testing.T) {
	h := testutil.New(80, 24)

	opts := instant("Disabled")
	opts.ShowDenyButton = true

	h.Fire(opts)
	h.Settle()

	confirm, _ := h.C.ConfirmButton()
	confirm.SetEnabled(false)

	// Focus moved off the disabled button.
	deny, _ := h.C.DenyButton()
	assert.True(t, deny.Focused())

	// Tab cycles only through the deny button now.
	h.SendTab()
	assert.True(t, deny.Focused())

	h.SendEnter()
	h.Settle()
	// Deny activated, not confirm.
	if h.C.State() != sweettea.StateClosed {
		t.Errorf("State() = %v, want closed", h.C.State())
	}
}

func TestArrowKeysMoveFocus(t *testing.T) {
	h := testutil.New(80, 24)

	opts := instant("Arrows")
	opts.ShowDenyButton = true

	h.Fire(opts)
	h.Settle()

	h.SendSpecial(tea.KeyRight)
	deny, _ := h.C.DenyButton()
	assert.True(t, deny.Focused())

	h.SendSpecial(tea.KeyLeft)
	confirm, _ := h.C.ConfirmButton()
	assert.True(t, confirm.Focused())
}

func TestKeysPassThroughWhileClosed(t *testing.T) {
	h := testutil.New(80, 24)

	if h.SendEnter() {
		t.Error("enter consumed while closed")
	}
	if h.SendKey("x") {
		t.Error("rune consumed while closed")
	}
}

func TestRenderOverlayPassthroughWhileClosed(t *testing.T) {
	c := sweettea.New()
	c.SetSize(80, 24)

	base := "plain base view"
	if got := c.RenderOverlay(base); got != base {
		t.Errorf("RenderOverlay() = %q, want base unchanged", got)
	}
}

func TestDefaultControllerIsSingleton(t *testing.T) {
	if sweettea.Default() != sweettea.Default() {
		t.Error("Default() returned different controllers")
	}
}

func TestViewShowsDialogPieces(t *testing.T) {
	h := testutil.New(80, 24)

	opts := sweettea.Common("A Title", "Some explanatory text.", sweettea.IconSuccess)
	opts.Animation = sweettea.Bool(false)
	opts.ShowCancelButton = true

	h.Fire(opts)
	h.Settle()

	assert.True(t, h.ViewContains("A Title"))
	assert.True(t, h.ViewContains("Some explanatory text."))
	assert.True(t, h.ViewContains("✓"))
	assert.True(t, h.ViewContains("Ok"))
	assert.True(t, h.ViewContains("Cancel"))
	assert.True(t, h.ViewContains("esc: dismiss"))
}

type listBody struct {
	focused bool
}

func (b *listBody) View() string            { return "line one\nline two" }
func (b *listBody) SetFocused(focused bool) { b.focused = focused }

func TestFocusableBodyHeadsTheRing(t *testing.T) {
	h := testutil.New(80, 24)

	body := &listBody{}
	opts := instant("With body")
	opts.Body = body

	h.Fire(opts)
	h.Settle()

	// Body focused first, before the confirm button.
	assert.True(t, body.focused)
	confirm, _ := h.C.ConfirmButton()
	assert.False(t, confirm.Focused())

	h.SendTab()
	assert.False(t, body.focused)
	assert.True(t, confirm.Focused())

	// Wraps back to the body.
	h.SendTab()
	assert.True(t, body.focused)
}
