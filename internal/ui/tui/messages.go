// Package tui provides the Bubble Tea dashboard shown during provisioning.
package tui

import "time"

// PhaseMsg reports a workflow phase starting, completing, or failing.
type PhaseMsg struct {
	Name string
	Done bool
	Took time.Duration
	Err  error
}

// LogMsg carries one progress line, typically the instance's own install
// output relayed over the notification stream.
type LogMsg struct {
	Line string
}

// WarnMsg carries a degraded, non-fatal condition.
type WarnMsg struct {
	Text string
}

// TickMsg is sent periodically to refresh the spinner and ETA.
type TickMsg struct{}

// ErrMsg carries the fatal workflow error.
type ErrMsg struct{ Err error }

// DoneMsg signals that provisioning finished successfully.
type DoneMsg struct{}
