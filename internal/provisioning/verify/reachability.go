// Package verify proves the provisioned instance actually works: first that
// it answers commands at all, then that the services on it are healthy and
// the model is present.
package verify

import (
	"context"
	"fmt"

	"github.com/llamaup/llamaup/internal/provisioning"
	"github.com/llamaup/llamaup/internal/util/poll"
)

// ReachabilityPhase waits for the instance to answer a trivial command over
// SSH after the install reboot. Success proves the full network and auth
// path end to end; failure within the budget is fatal.
type ReachabilityPhase struct{}

// NewReachabilityPhase creates the reachability phase.
func NewReachabilityPhase() *ReachabilityPhase { return &ReachabilityPhase{} }

// Name implements provisioning.Phase.
func (p *ReachabilityPhase) Name() string { return "Wait for SSH" }

// Provision implements provisioning.Phase. On success the established
// runner is stored in the state for the health checks that follow.
func (p *ReachabilityPhase) Provision(pctx *provisioning.Context) error {
	instance := pctx.State.Instance

	runner, err := pctx.NewRunner(instance.PublicIP, pctx.State.SSHPrivateKey)
	if err != nil {
		return fmt.Errorf("failed to prepare SSH access to %s: %w", instance.PublicIP, err)
	}

	err = poll.Until(pctx, poll.Spec{
		What:     fmt.Sprintf("SSH on %s", instance.PublicIP),
		Interval: pctx.Timeouts.ReachInterval,
		Timeout:  pctx.Timeouts.Reachable,
	}, func(ctx context.Context) (bool, error) {
		if _, err := runner.Execute(ctx, "true"); err != nil {
			return false, err
		}
		return true, nil
	})
	if err != nil {
		return err
	}

	pctx.State.Runner = runner
	return nil
}
