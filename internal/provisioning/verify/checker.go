package verify

import (
	"context"
	"fmt"
	"strings"

	"github.com/llamaup/llamaup/internal/provisioning"
	"github.com/llamaup/llamaup/internal/util/poll"
)

// Checker runs the on-instance health checks over an established runner.
// All checks execute locally on the instance, so they work regardless of
// which ports the firewall exposes.
type Checker struct {
	runner   provisioning.Runner
	timeouts checkerTimeouts
}

type checkerTimeouts struct {
	httpHealth   poll.Spec
	contentReady poll.Spec
}

// NewChecker creates a health checker bound to the given runner.
func NewChecker(pctx *provisioning.Context, runner provisioning.Runner) *Checker {
	return &Checker{
		runner: runner,
		timeouts: checkerTimeouts{
			httpHealth: poll.Spec{
				What:     "web UI HTTP health",
				Interval: pctx.Timeouts.HealthInterval,
				Timeout:  pctx.Timeouts.HTTPHealth,
			},
			contentReady: poll.Spec{
				What:     "model in inference API",
				Interval: pctx.Timeouts.HealthInterval,
				Timeout:  pctx.Timeouts.ContentReady,
			},
		},
	}
}

// CheckProcessesRunning verifies each expected container is up. It is a
// point-in-time check, not a poll: by the time the instance is reachable
// again the services were already started by the boot payload.
func (c *Checker) CheckProcessesRunning(ctx context.Context, services []string) error {
	out, err := c.runner.Execute(ctx, "docker ps --format '{{.Names}}'")
	if err != nil {
		return &provisioning.RemoteCommandError{Command: "docker ps", Err: err}
	}

	running := make(map[string]bool)
	for _, name := range strings.Fields(out) {
		running[name] = true
	}

	var missing []string
	for _, svc := range services {
		if !running[svc] {
			missing = append(missing, svc)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("containers not running: %s", strings.Join(missing, ", "))
	}
	return nil
}

// PollHTTPHealth waits for the web UI to answer 200 on its local port.
func (c *Checker) PollHTTPHealth(ctx context.Context, port int) error {
	cmd := fmt.Sprintf("curl -s -o /dev/null -w '%%{http_code}' http://localhost:%d/", port)

	return poll.Until(ctx, c.timeouts.httpHealth, func(ctx context.Context) (bool, error) {
		out, err := c.runner.Execute(ctx, cmd)
		if err != nil {
			return false, &provisioning.RemoteCommandError{Command: cmd, Err: err}
		}
		return strings.TrimSpace(out) == "200", nil
	})
}

// PollContentReady waits for the model to appear in the inference API's tag
// list. This is the last readiness signal: the model download is by far the
// longest step and only ends when the name shows up here.
func (c *Checker) PollContentReady(ctx context.Context, port int, model string) error {
	cmd := fmt.Sprintf("curl -s http://localhost:%d/api/tags", port)

	return poll.Until(ctx, c.timeouts.contentReady, func(ctx context.Context) (bool, error) {
		out, err := c.runner.Execute(ctx, cmd)
		if err != nil {
			return false, &provisioning.RemoteCommandError{Command: cmd, Err: err}
		}
		return strings.Contains(out, model), nil
	})
}
