package provisioning

import (
	"context"
	"fmt"
	"time"

	"github.com/llamaup/llamaup/internal/config"
	hcloudplat "github.com/llamaup/llamaup/internal/platform/hcloud"
	"github.com/llamaup/llamaup/internal/platform/ntfy"
	sshplat "github.com/llamaup/llamaup/internal/platform/ssh"
)

// Phase is one sequential step of the workflow. Provision blocks until the
// step reaches a terminal result: ready, timed out, or failed.
type Phase interface {
	// Name returns the human-readable name of this phase.
	Name() string

	// Provision executes the phase. A non-nil error aborts the workflow.
	Provision(ctx *Context) error
}

// Runner executes commands on the provisioned instance. Implemented by
// internal/platform/ssh.Client.
type Runner interface {
	Execute(ctx context.Context, command string) (string, error)
}

// RunnerFactory builds a Runner for the instance once its address is known.
type RunnerFactory func(host string, privateKey []byte) (Runner, error)

// State holds the shared results of workflow phases. It is progressively
// populated as each phase completes.
type State struct {
	// Instance is the one in-flight server record. Set by the create phase;
	// once non-nil, every failure path must offer cleanup.
	Instance *hcloudplat.Instance

	// CreatedAt is when the create request was issued. The progress monitor
	// replays relay-cached events from this point so nothing published before
	// the subscription opened is lost.
	CreatedAt time.Time

	// SSHKeyID is the uploaded run key (populated by the create phase).
	SSHKeyID int64
	// SSHPrivateKey is the generated private key used for probing.
	SSHPrivateKey []byte

	// AdminSecret seeds the web UI; generated when not configured.
	AdminSecret string

	// Runner is the established command channel (populated by the
	// reachability phase).
	Runner Runner

	// Warnings collects degraded, non-fatal conditions for the final report.
	Warnings []string
}

// Context wraps all dependencies and state needed by workflow phases.
type Context struct {
	context.Context
	Config   *config.Config
	State    *State
	Cloud    hcloudplat.CloudClient
	Notify   *ntfy.Client
	Observer Observer
	Timeouts *config.Timeouts

	// NewRunner builds the remote command channel. Replaceable in tests.
	NewRunner RunnerFactory
}

// NewContext creates a workflow context with console observability and the
// SSH-backed runner factory.
func NewContext(ctx context.Context, cfg *config.Config, cloud hcloudplat.CloudClient, notify *ntfy.Client) *Context {
	return &Context{
		Context:  ctx,
		Config:   cfg,
		State:    &State{},
		Cloud:    cloud,
		Notify:   notify,
		Observer: NewConsoleObserver(),
		Timeouts: config.LoadTimeouts(),
		NewRunner: func(host string, privateKey []byte) (Runner, error) {
			return sshplat.NewClient(sshplat.Config{
				Host:       host,
				User:       config.DefaultSSHUser,
				PrivateKey: privateKey,
			})
		},
	}
}

// Warnf records a degraded condition in the state and surfaces it through
// the observer. The workflow continues.
func (c *Context) Warnf(format string, v ...any) {
	msg := fmt.Sprintf(format, v...)
	c.State.Warnings = append(c.State.Warnings, msg)
	c.Observer.Warnf("%s", msg)
}
