package hcloud

import (
	"net"
	"testing"

	"github.com/hetznercloud/hcloud-go/v2/hcloud"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInstanceFromServer(t *testing.T) {
	t.Parallel()

	t.Run("valid server", func(t *testing.T) {
		t.Parallel()
		srv := &hcloud.Server{
			ID:     42,
			Name:   "gpu-box",
			Status: hcloud.ServerStatusInitializing,
		}
		srv.PublicNet.IPv4.IP = net.ParseIP("203.0.113.7")

		inst, err := instanceFromServer(srv)
		require.NoError(t, err)
		assert.Equal(t, int64(42), inst.ID)
		assert.Equal(t, "gpu-box", inst.Name)
		assert.Equal(t, "203.0.113.7", inst.PublicIP)
		assert.Equal(t, hcloud.ServerStatusInitializing, inst.Status)
	})

	t.Run("nil server", func(t *testing.T) {
		t.Parallel()
		_, err := instanceFromServer(nil)
		assert.True(t, IsProvisionError(err))
	})

	t.Run("missing id", func(t *testing.T) {
		t.Parallel()
		_, err := instanceFromServer(&hcloud.Server{})
		assert.True(t, IsProvisionError(err))
	})

	t.Run("missing public address", func(t *testing.T) {
		t.Parallel()
		_, err := instanceFromServer(&hcloud.Server{ID: 42})
		require.Error(t, err)
		assert.True(t, IsProvisionError(err))
		assert.Contains(t, err.Error(), "no public IPv4")
	})
}

func TestMockClient_InterfaceCompliance(_ *testing.T) {
	var _ CloudClient = (*MockClient)(nil)
	var _ CloudClient = (*RealClient)(nil)
}
