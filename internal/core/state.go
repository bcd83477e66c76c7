// Package core provides the build status window state machine and its event loop.
package core

import "image/color"

// State represents the status window state.
type State string

const (
	StateIdle      State = "idle"
	StateCompleted State = "completed"
	StateClosed    State = "closed"
)

// CloseReason records what moved the window into StateClosed.
type CloseReason string

const (
	CloseByCompletion CloseReason = "completion-timer"
	CloseByForce      CloseReason = "force-close-timer"
	CloseByUser       CloseReason = "user"
	CloseByShutdown   CloseReason = "shutdown"
)

// ButtonState is everything the window shows on its single button.
type ButtonState struct {
	Label      string
	Background color.NRGBA
	Foreground color.NRGBA
}

// StatusPayload represents the window status for listeners.
type StatusPayload struct {
	State    State
	Button   ButtonState
	ClosedBy CloseReason
}

// StatusListener is a callback invoked when the window status changes.
type StatusListener func(status *StatusPayload)
