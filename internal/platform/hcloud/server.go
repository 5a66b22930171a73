package hcloud

import (
	"context"
	"fmt"

	"github.com/hetznercloud/hcloud-go/v2/hcloud"

	"github.com/llamaup/llamaup/internal/util/retry"
)

// CreateServer creates a new server and waits for the create action to
// finish. The returned Instance is guaranteed to carry a non-zero ID and a
// public IPv4 address; anything less is reported as a ProvisionError.
func (c *RealClient) CreateServer(ctx context.Context, opts CreateOpts) (*Instance, error) {
	createOpts, err := c.buildCreateOpts(ctx, opts)
	if err != nil {
		return nil, err
	}

	var result hcloud.ServerCreateResult
	err = retry.WithExponentialBackoff(ctx, func() error {
		res, _, err := c.client.Server.Create(ctx, createOpts)
		if err != nil {
			if isCreateFatal(err) {
				return retry.Fatal(err)
			}
			return err
		}
		result = res
		return nil
	}, retry.WithMaxRetries(3))
	if err != nil {
		return nil, &ProvisionError{Reason: "server create request failed", Err: err}
	}

	if err := c.client.Action.WaitFor(ctx, result.Action); err != nil {
		return nil, &ProvisionError{Reason: "server create action failed", Err: err}
	}

	return instanceFromServer(result.Server)
}

// GetServerStatus returns the current lifecycle status of the server.
// A missing server is a structural error, not a "not yet" condition: the
// caller created it moments ago.
func (c *RealClient) GetServerStatus(ctx context.Context, id int64) (hcloud.ServerStatus, error) {
	srv, _, err := c.client.Server.GetByID(ctx, id)
	if err != nil {
		return "", fmt.Errorf("failed to get server %d: %w", id, err)
	}
	if srv == nil {
		return "", retry.Fatal(fmt.Errorf("server %d no longer exists", id))
	}
	return srv.Status, nil
}

// GetServerByName returns the server with the given name, or nil if none
// exists.
func (c *RealClient) GetServerByName(ctx context.Context, name string) (*Instance, error) {
	srv, _, err := c.client.Server.GetByName(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("failed to look up server %q: %w", name, err)
	}
	if srv == nil {
		return nil, nil
	}
	inst, err := instanceFromServer(srv)
	if err != nil {
		// A server without a public address is still a real server the
		// caller may want to delete; report what we know.
		return &Instance{ID: srv.ID, Name: srv.Name, Status: srv.Status, Labels: srv.Labels}, nil
	}
	return inst, nil
}

// DeleteServer deletes the server. Repeated deletion is tolerated: a server
// that is already gone counts as success.
func (c *RealClient) DeleteServer(ctx context.Context, id int64) error {
	ctx, cancel := context.WithTimeout(ctx, c.timeouts.Delete)
	defer cancel()

	srv, _, err := c.client.Server.GetByID(ctx, id)
	if err != nil {
		if IsNotFound(err) {
			return nil
		}
		return fmt.Errorf("failed to get server %d: %w", id, err)
	}
	if srv == nil {
		return nil
	}

	result, _, err := c.client.Server.DeleteWithResult(ctx, srv)
	if err != nil {
		if IsNotFound(err) {
			return nil
		}
		return fmt.Errorf("failed to delete server %d: %w", id, err)
	}

	if err := c.client.Action.WaitFor(ctx, result.Action); err != nil {
		return fmt.Errorf("failed to wait for server %d deletion: %w", id, err)
	}
	return nil
}

// buildCreateOpts resolves names to API objects and assembles create options.
func (c *RealClient) buildCreateOpts(ctx context.Context, opts CreateOpts) (hcloud.ServerCreateOpts, error) {
	serverType, _, err := c.client.ServerType.Get(ctx, opts.ServerType)
	if err != nil {
		return hcloud.ServerCreateOpts{}, fmt.Errorf("failed to get server type: %w", err)
	}
	if serverType == nil {
		return hcloud.ServerCreateOpts{}, &ProvisionError{Reason: fmt.Sprintf("server type not found: %s", opts.ServerType)}
	}

	image, _, err := c.client.Image.GetByNameAndArchitecture(ctx, opts.Image, serverType.Architecture)
	if err != nil {
		return hcloud.ServerCreateOpts{}, fmt.Errorf("failed to get image: %w", err)
	}
	if image == nil {
		return hcloud.ServerCreateOpts{}, &ProvisionError{Reason: fmt.Sprintf("image not found: %s", opts.Image)}
	}

	location, _, err := c.client.Location.Get(ctx, opts.Location)
	if err != nil {
		return hcloud.ServerCreateOpts{}, fmt.Errorf("failed to get location: %w", err)
	}
	if location == nil {
		return hcloud.ServerCreateOpts{}, &ProvisionError{Reason: fmt.Sprintf("location not found: %s", opts.Location)}
	}

	sshKeys := make([]*hcloud.SSHKey, 0, len(opts.SSHKeyIDs))
	for _, id := range opts.SSHKeyIDs {
		sshKeys = append(sshKeys, &hcloud.SSHKey{ID: id})
	}

	return hcloud.ServerCreateOpts{
		Name:       opts.Name,
		ServerType: serverType,
		Image:      image,
		Location:   location,
		SSHKeys:    sshKeys,
		Labels:     opts.Labels,
		UserData:   opts.UserData,
	}, nil
}

// instanceFromServer validates the API response shape. The workflow must
// never proceed with a server it cannot identify and address.
func instanceFromServer(srv *hcloud.Server) (*Instance, error) {
	if srv == nil || srv.ID == 0 {
		return nil, &ProvisionError{Reason: "create response lacks a server identifier"}
	}
	if srv.PublicNet.IPv4.IP == nil {
		return nil, &ProvisionError{Reason: fmt.Sprintf("server %d has no public IPv4 address", srv.ID)}
	}
	return &Instance{
		ID:       srv.ID,
		Name:     srv.Name,
		PublicIP: srv.PublicNet.IPv4.IP.String(),
		Status:   srv.Status,
		Labels:   srv.Labels,
	}, nil
}
