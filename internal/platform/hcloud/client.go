// Package hcloud wraps the Hetzner Cloud API behind the narrow surface the
// provisioning workflow needs: create, inspect, and delete a single server,
// and manage the SSH key used to reach it.
package hcloud

import (
	"context"

	"github.com/hetznercloud/hcloud-go/v2/hcloud"
)

// Instance is the workflow's view of a provisioned server.
type Instance struct {
	ID       int64
	Name     string
	PublicIP string
	Status   hcloud.ServerStatus
	Labels   map[string]string
}

// CreateOpts holds all parameters for creating a server.
type CreateOpts struct {
	Name       string
	Location   string
	ServerType string
	Image      string
	SSHKeyIDs  []int64
	Labels     map[string]string
	// UserData is the opaque boot-configuration payload. It is forwarded
	// verbatim; nothing in this package inspects it.
	UserData string
}

// InstanceProvisioner defines the interface for provisioning servers.
type InstanceProvisioner interface {
	// CreateServer creates a new server. A billable resource exists remotely
	// the moment this returns without error.
	CreateServer(ctx context.Context, opts CreateOpts) (*Instance, error)
	// GetServerStatus returns the current lifecycle status of the server.
	GetServerStatus(ctx context.Context, id int64) (hcloud.ServerStatus, error)
	// GetServerByName returns the server with the given name, or nil if it
	// does not exist.
	GetServerByName(ctx context.Context, name string) (*Instance, error)
	// DeleteServer deletes the server. Deleting a server that no longer
	// exists is a no-op.
	DeleteServer(ctx context.Context, id int64) error
}

// SSHKeyManager defines the interface for managing uploaded SSH keys.
type SSHKeyManager interface {
	// EnsureSSHKey uploads the public key under the given name, reusing an
	// existing key with that name. Returns the key ID.
	EnsureSSHKey(ctx context.Context, name, publicKey string, labels map[string]string) (int64, error)
	// GetSSHKeyID resolves a key name to its ID.
	GetSSHKeyID(ctx context.Context, name string) (int64, error)
	// DeleteSSHKey removes an uploaded key.
	DeleteSSHKey(ctx context.Context, id int64) error
}

// CloudClient combines the control-plane interfaces the workflow consumes.
type CloudClient interface {
	InstanceProvisioner
	SSHKeyManager
}
