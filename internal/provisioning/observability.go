package provisioning

import (
	"log"
	"time"
)

// Observer receives workflow progress. The console implementation logs;
// the TUI implementation feeds a Bubble Tea program.
type Observer interface {
	// Printf reports informational progress.
	Printf(format string, v ...any)
	// Warnf reports a degraded, non-fatal condition.
	Warnf(format string, v ...any)

	PhaseStarted(name string)
	PhaseCompleted(name string, took time.Duration)
	PhaseFailed(name string, err error)
}

// ConsoleObserver implements Observer using the standard log package.
type ConsoleObserver struct{}

// NewConsoleObserver creates a console-based observer.
func NewConsoleObserver() *ConsoleObserver { return &ConsoleObserver{} }

// Printf implements Observer.
func (o *ConsoleObserver) Printf(format string, v ...any) {
	log.Printf(format, v...)
}

// Warnf implements Observer.
func (o *ConsoleObserver) Warnf(format string, v ...any) {
	log.Printf("WARNING: "+format, v...)
}

// PhaseStarted implements Observer.
func (o *ConsoleObserver) PhaseStarted(name string) {
	log.Printf("[%s] starting", name)
}

// PhaseCompleted implements Observer.
func (o *ConsoleObserver) PhaseCompleted(name string, took time.Duration) {
	log.Printf("[%s] completed in %v", name, took.Round(time.Millisecond))
}

// PhaseFailed implements Observer.
func (o *ConsoleObserver) PhaseFailed(name string, err error) {
	log.Printf("[%s] failed: %v", name, err)
}
