package core

import (
	"image/color"
	"time"

	"github.com/user/build-status/internal/logger"
)

// Surface is the toolkit side of the window.
type Surface interface {
	// Render shows b on the button.
	Render(b ButtonState)
	// Close tears the window down. It may be called only once.
	Close()
}

// Options configures a StatusWindow.
type Options struct {
	Initial         ButtonState
	Complete        ButtonState
	CompletionDelay time.Duration
	ForceCloseDelay time.Duration
}

// DefaultOptions returns the stock labels, colors and delays.
func DefaultOptions() Options {
	white := color.NRGBA{R: 255, G: 255, B: 255, A: 255}
	return Options{
		Initial: ButtonState{
			Label:      "Run pipeline",
			Background: color.NRGBA{B: 255, A: 255},
			Foreground: white,
		},
		Complete: ButtonState{
			Label:      "✔ Pipeline complete!",
			Background: color.NRGBA{G: 128, A: 255},
			Foreground: white,
		},
		CompletionDelay: 5 * time.Second,
		ForceCloseDelay: 10 * time.Second,
	}
}

// StatusWindow owns the button state and the two close timers.
//
// Every method must be called from the goroutine the Scheduler delivers
// timer callbacks on (the Loop goroutine in production).
type StatusWindow struct {
	opts    Options
	sched   Scheduler
	surface Surface

	state    State
	button   ButtonState
	closedBy CloseReason

	completionTimer Timer
	forceCloseTimer Timer
	initialized     bool

	statusListener StatusListener
	done           chan struct{}
}

// NewStatusWindow creates a window in StateIdle. Nothing is shown until
// Initialize is called.
func NewStatusWindow(opts Options, sched Scheduler, surface Surface) *StatusWindow {
	return &StatusWindow{
		opts:    opts,
		sched:   sched,
		surface: surface,
		state:   StateIdle,
		button:  opts.Initial,
		done:    make(chan struct{}),
	}
}

// SetStatusListener sets a callback that will be called on every status change.
func (w *StatusWindow) SetStatusListener(listener StatusListener) {
	w.statusListener = listener
}

// Initialize renders the initial button and arms the force-close timer.
func (w *StatusWindow) Initialize() {
	if w.initialized || w.state == StateClosed {
		return
	}
	w.initialized = true

	w.surface.Render(w.button)
	w.forceCloseTimer = w.sched.AfterFunc(w.opts.ForceCloseDelay, func() {
		w.Close(CloseByForce)
	})
	logger.Info("Status window shown, force close in %s", w.opts.ForceCloseDelay)
	w.broadcastStatus()
}

// OnButtonActivated switches the button to the complete look and schedules
// the close relative to this click. An earlier pending close is cancelled.
func (w *StatusWindow) OnButtonActivated() {
	if w.state == StateClosed {
		return
	}

	prev := w.state
	w.state = StateCompleted
	w.button = w.opts.Complete
	w.surface.Render(w.button)

	if w.completionTimer != nil {
		w.completionTimer.Stop()
	}
	w.completionTimer = w.sched.AfterFunc(w.opts.CompletionDelay, func() {
		w.Close(CloseByCompletion)
	})

	if prev != StateCompleted {
		logger.Event("%s -> %s, closing in %s", prev, w.state, w.opts.CompletionDelay)
	} else {
		logger.Debug("Button activated again, close rescheduled in %s", w.opts.CompletionDelay)
	}
	w.broadcastStatus()
}

// Close moves the window to StateClosed. Closing an already closed window
// is a no-op.
func (w *StatusWindow) Close(reason CloseReason) {
	if w.state == StateClosed {
		logger.Debug("Close (%s) ignored, window already closed by %s", reason, w.closedBy)
		return
	}

	prev := w.state
	w.state = StateClosed
	w.closedBy = reason

	if w.completionTimer != nil {
		w.completionTimer.Stop()
		w.completionTimer = nil
	}
	if w.forceCloseTimer != nil {
		w.forceCloseTimer.Stop()
		w.forceCloseTimer = nil
	}

	w.surface.Close()
	logger.Event("%s -> %s (%s)", prev, w.state, reason)
	w.broadcastStatus()
	close(w.done)
}

// State returns the current state.
func (w *StatusWindow) State() State {
	return w.state
}

// Button returns the button as currently shown.
func (w *StatusWindow) Button() ButtonState {
	return w.button
}

// ClosedBy returns why the window closed, or "" while it is open.
func (w *StatusWindow) ClosedBy() CloseReason {
	return w.closedBy
}

// Done is closed when the window enters StateClosed.
func (w *StatusWindow) Done() <-chan struct{} {
	return w.done
}

// GetStatusPayload returns the current status.
func (w *StatusWindow) GetStatusPayload() *StatusPayload {
	return &StatusPayload{
		State:    w.state,
		Button:   w.button,
		ClosedBy: w.closedBy,
	}
}

// broadcastStatus sends status update to listener.
func (w *StatusWindow) broadcastStatus() {
	if w.statusListener != nil {
		w.statusListener(w.GetStatusPayload())
	}
}
