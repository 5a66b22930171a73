package hcloud

import (
	"context"
	"fmt"

	"github.com/hetznercloud/hcloud-go/v2/hcloud"
)

// EnsureSSHKey uploads the public key under the given name, reusing an
// existing key with the same name.
func (c *RealClient) EnsureSSHKey(ctx context.Context, name, publicKey string, labels map[string]string) (int64, error) {
	existing, _, err := c.client.SSHKey.GetByName(ctx, name)
	if err != nil {
		return 0, fmt.Errorf("failed to look up SSH key %q: %w", name, err)
	}
	if existing != nil {
		return existing.ID, nil
	}

	key, _, err := c.client.SSHKey.Create(ctx, hcloud.SSHKeyCreateOpts{
		Name:      name,
		PublicKey: publicKey,
		Labels:    labels,
	})
	if err != nil {
		return 0, fmt.Errorf("failed to create SSH key %q: %w", name, err)
	}
	return key.ID, nil
}

// GetSSHKeyID resolves an uploaded key name to its ID.
func (c *RealClient) GetSSHKeyID(ctx context.Context, name string) (int64, error) {
	key, _, err := c.client.SSHKey.GetByName(ctx, name)
	if err != nil {
		return 0, fmt.Errorf("failed to look up SSH key %q: %w", name, err)
	}
	if key == nil {
		return 0, fmt.Errorf("SSH key %q not found", name)
	}
	return key.ID, nil
}

// DeleteSSHKey removes an uploaded key. Missing keys count as deleted.
func (c *RealClient) DeleteSSHKey(ctx context.Context, id int64) error {
	_, err := c.client.SSHKey.Delete(ctx, &hcloud.SSHKey{ID: id})
	if err != nil && !IsNotFound(err) {
		return fmt.Errorf("failed to delete SSH key %d: %w", id, err)
	}
	return nil
}
