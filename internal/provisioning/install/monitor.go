// Package install follows the instance's self-reported installation
// progress over its push-notification topic.
//
// The instance is the only party that knows how the install is going, and
// it is unreachable for most of that time (mid-install, mid-reboot). It
// therefore publishes progress to a relay topic keyed by its own name, and
// this phase just listens.
package install

import (
	"github.com/llamaup/llamaup/internal/platform/ntfy"
	"github.com/llamaup/llamaup/internal/provisioning"
	"github.com/llamaup/llamaup/internal/userdata"
)

// MonitorPhase subscribes to the instance's progress topic and blocks until
// the installer announces a terminal marker.
//
// Two failure modes are fatal here: a silent topic (nothing published
// within the first-event budget means the installer never started) and a
// stream that ends before a terminal marker (the emitter disappeared
// mid-install). Between events there is no timeout at all; driver downloads
// are legitimately silent for long stretches.
type MonitorPhase struct{}

// NewMonitorPhase creates the installation progress phase.
func NewMonitorPhase() *MonitorPhase { return &MonitorPhase{} }

// Name implements provisioning.Phase.
func (p *MonitorPhase) Name() string { return "Install inference stack" }

// Provision implements provisioning.Phase.
func (p *MonitorPhase) Provision(pctx *provisioning.Context) error {
	topic := pctx.Config.Name

	var opts []ntfy.SubscribeOption
	if !pctx.State.CreatedAt.IsZero() {
		opts = append(opts, ntfy.WithSince(pctx.State.CreatedAt))
	}

	sub, err := pctx.Notify.Subscribe(pctx, topic, opts...)
	if err != nil {
		return err
	}
	defer sub.Close()

	pctx.Observer.Printf("waiting for installation progress on topic %s", topic)

	first, err := sub.AwaitFirstEvent(pctx.Timeouts.FirstEvent)
	if err != nil {
		return err
	}

	markers := []string{userdata.MarkerRebooting, userdata.MarkerStartingServices}
	terminal, err := sub.ConsumeUntilTerminal(first, markers, func(ev *ntfy.Event) {
		pctx.Observer.Printf("install: %s", ev.Message)
	})
	if err != nil {
		return err
	}

	pctx.Observer.Printf("install: %s", terminal.Message)
	return nil
}
