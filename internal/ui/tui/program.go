package tui

import (
	"context"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llamaup/llamaup/internal/provisioning"
)

// RunUp wraps a provisioning run with the Bubble Tea dashboard.
//
// run executes the workflow with the given observer and prompter; it runs in
// a background goroutine while the program owns the terminal. cancel aborts
// the workflow when the operator quits the dashboard before it finishes.
func RunUp(
	ctx context.Context,
	cancel context.CancelFunc,
	instanceName, location string,
	phaseNames []string,
	prompter provisioning.Prompter,
	run func(obs provisioning.Observer, prompter provisioning.Prompter) provisioning.Outcome,
) (provisioning.Outcome, error) {
	m := NewModel(instanceName, location, phaseNames)
	p := tea.NewProgram(m)

	outcomeCh := make(chan provisioning.Outcome, 1)
	go func() {
		outcome := run(&programObserver{p: p}, &terminalPrompter{p: p, inner: prompter})
		outcomeCh <- outcome
		if outcome.Succeeded() {
			p.Send(DoneMsg{})
		} else {
			p.Send(ErrMsg{Err: outcome.Err})
		}
	}()

	finalModel, err := p.Run()
	if err != nil {
		cancel()
		<-outcomeCh
		return provisioning.Outcome{}, fmt.Errorf("dashboard error: %w", err)
	}

	if fm, ok := finalModel.(Model); ok && fm.QuitEarly {
		cancel()
	}

	return <-outcomeCh, nil
}

// programObserver feeds workflow progress into the running program.
type programObserver struct {
	p *tea.Program
}

var _ provisioning.Observer = (*programObserver)(nil)

func (o *programObserver) Printf(format string, v ...any) {
	o.p.Send(LogMsg{Line: fmt.Sprintf(format, v...)})
}

func (o *programObserver) Warnf(format string, v ...any) {
	o.p.Send(WarnMsg{Text: fmt.Sprintf(format, v...)})
}

func (o *programObserver) PhaseStarted(name string) {
	o.p.Send(PhaseMsg{Name: name})
}

func (o *programObserver) PhaseCompleted(name string, took time.Duration) {
	o.p.Send(PhaseMsg{Name: name, Done: true, Took: took})
}

func (o *programObserver) PhaseFailed(name string, err error) {
	o.p.Send(PhaseMsg{Name: name, Err: err})
}

// terminalPrompter hands the terminal back to the inner prompter for the
// duration of a question. The cleanup prompt fires while the dashboard is
// still running, and two programs cannot share the tty.
type terminalPrompter struct {
	p     *tea.Program
	inner provisioning.Prompter
}

func (t *terminalPrompter) Confirm(ctx context.Context, title, description string) (bool, error) {
	if err := t.p.ReleaseTerminal(); err != nil {
		return false, fmt.Errorf("failed to release terminal for prompt: %w", err)
	}
	defer func() { _ = t.p.RestoreTerminal() }()

	return t.inner.Confirm(ctx, title, description)
}
