package compute

import (
	"context"

	"github.com/hetznercloud/hcloud-go/v2/hcloud"
	"github.com/llamaup/llamaup/internal/provisioning"
	"github.com/llamaup/llamaup/internal/util/poll"
)

// BootPhase waits for the control plane to report the server running.
//
// "Running" is a control-plane claim about the VM lifecycle, not evidence
// the guest is up; the later phases verify the guest itself. A server that
// never reaches running within the budget is a fatal failure.
type BootPhase struct{}

// NewBootPhase creates the boot confirmation phase.
func NewBootPhase() *BootPhase { return &BootPhase{} }

// Name implements provisioning.Phase.
func (p *BootPhase) Name() string { return "Wait for boot" }

// Provision implements provisioning.Phase.
func (p *BootPhase) Provision(pctx *provisioning.Context) error {
	instance := pctx.State.Instance

	return poll.Until(pctx, poll.Spec{
		What:     "server running",
		Interval: pctx.Timeouts.BootInterval,
		Timeout:  pctx.Timeouts.BootRunning,
	}, func(ctx context.Context) (bool, error) {
		status, err := pctx.Cloud.GetServerStatus(ctx, instance.ID)
		if err != nil {
			return false, err
		}
		return status == hcloud.ServerStatusRunning, nil
	})
}
