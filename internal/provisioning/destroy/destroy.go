// Package destroy tears down a llamaup-managed server and its run SSH key.
package destroy

import (
	"context"
	"fmt"

	"github.com/llamaup/llamaup/internal/platform/hcloud"
	"github.com/llamaup/llamaup/internal/provisioning"
	"github.com/llamaup/llamaup/internal/util/labels"
)

// Destroy deletes the named server and the run SSH key uploaded for it.
// Returns the deleted instance, or nil when no server with that name
// exists. A server whose labels do not mark it as llamaup-managed is only
// deleted when force is set. Key deletion failure is reported as a
// warning, not an error: the key is free and harmless, the server is the
// billable resource.
func Destroy(ctx context.Context, cloud hcloud.CloudClient, name string, force bool, obs provisioning.Observer) (*hcloud.Instance, error) {
	instance, err := cloud.GetServerByName(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("failed to look up server %q: %w", name, err)
	}

	if instance != nil && !force && !labels.IsManaged(instance.Labels) {
		return instance, fmt.Errorf("server %q (ID %d) is not managed by llamaup; use --force to delete it anyway", name, instance.ID)
	}

	if instance != nil {
		obs.Printf("deleting server %s (ID %d)", instance.Name, instance.ID)
		if err := cloud.DeleteServer(ctx, instance.ID); err != nil {
			return instance, fmt.Errorf("failed to delete server %q: %w", name, err)
		}
	}

	keyName := name + "-llamaup"
	keyID, err := cloud.GetSSHKeyID(ctx, keyName)
	if err == nil && keyID != 0 {
		if err := cloud.DeleteSSHKey(ctx, keyID); err != nil {
			obs.Warnf("failed to delete SSH key %s: %v", keyName, err)
		}
	}

	return instance, nil
}
