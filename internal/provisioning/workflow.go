package provisioning

import (
	"context"
	"time"
)

// Prompter asks the operator a yes/no question. Implemented by
// internal/ui.ConfirmPrompter; tests inject canned answers.
type Prompter interface {
	Confirm(ctx context.Context, title, description string) (bool, error)
}

// Workflow sequences phases and routes failures through cleanup.
type Workflow struct {
	phases  []Phase
	cleanup *Cleanup
}

// NewWorkflow creates a workflow over the given phases.
func NewWorkflow(prompter Prompter, phases ...Phase) *Workflow {
	return &Workflow{
		phases:  phases,
		cleanup: &Cleanup{Prompter: prompter},
	}
}

// Run executes the pipeline and returns the terminal outcome. There is no
// whole-workflow retry: the outcome is final.
//
// Operator interrupts surface as context cancellation inside the running
// phase and take the same route as any fatal stage error, so a created
// server is always reported and offered for cleanup.
func (w *Workflow) Run(pctx *Context) Outcome {
	start := time.Now()

	for _, phase := range w.phases {
		phaseStart := time.Now()
		pctx.Observer.PhaseStarted(phase.Name())

		if err := phase.Provision(pctx); err != nil {
			pctx.Observer.PhaseFailed(phase.Name(), err)
			return w.fail(pctx, phase.Name(), err)
		}

		pctx.Observer.PhaseCompleted(phase.Name(), time.Since(phaseStart))
	}

	pctx.Observer.Printf("workflow completed in %v", time.Since(start).Round(time.Second))
	return Outcome{
		Result:   ResultSucceeded,
		Instance: pctx.State.Instance,
		Warnings: pctx.State.Warnings,
	}
}

// fail classifies the failure and offers cleanup when a server exists.
func (w *Workflow) fail(pctx *Context, stage string, err error) Outcome {
	if pctx.State.Instance == nil {
		return Outcome{
			Result:   ResultFailedNoInstance,
			Stage:    stage,
			Err:      err,
			Warnings: pctx.State.Warnings,
		}
	}

	deleted := w.cleanup.Offer(pctx)
	return Outcome{
		Result:          ResultFailedWithInstance,
		Stage:           stage,
		Err:             err,
		Instance:        pctx.State.Instance,
		InstanceDeleted: deleted,
		Warnings:        pctx.State.Warnings,
	}
}
