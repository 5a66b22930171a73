package verify

import (
	"github.com/llamaup/llamaup/internal/provisioning"
)

// ServicesPhase runs the on-instance health checks. Every check here is
// warn-only: once the instance is reachable the operator can inspect and
// fix it themselves, so a slow model download or a sluggish web UI must not
// trigger deletion of an otherwise working server.
type ServicesPhase struct{}

// NewServicesPhase creates the service verification phase.
func NewServicesPhase() *ServicesPhase { return &ServicesPhase{} }

// Name implements provisioning.Phase.
func (p *ServicesPhase) Name() string { return "Verify services" }

// Provision implements provisioning.Phase.
func (p *ServicesPhase) Provision(pctx *provisioning.Context) error {
	cfg := pctx.Config
	checker := NewChecker(pctx, pctx.State.Runner)

	if err := checker.CheckProcessesRunning(pctx, cfg.Services()); err != nil {
		pctx.Warnf("service check: %v", err)
	}

	pctx.Observer.Printf("waiting for web UI on port %d", cfg.WebUIPort)
	if err := checker.PollHTTPHealth(pctx, cfg.WebUIPort); err != nil {
		pctx.Warnf("web UI health: %v", err)
	}

	pctx.Observer.Printf("waiting for model %s to finish downloading", cfg.Model)
	if err := checker.PollContentReady(pctx, cfg.InferencePort, cfg.Model); err != nil {
		pctx.Warnf("model readiness: %v", err)
	}

	return nil
}
