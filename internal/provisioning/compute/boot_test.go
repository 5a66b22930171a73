package compute

import (
	"context"
	"testing"
	"time"

	hcloudapi "github.com/hetznercloud/hcloud-go/v2/hcloud"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/llamaup/llamaup/internal/platform/hcloud"
	"github.com/llamaup/llamaup/internal/util/poll"
)

func TestBootPhaseWaitsForRunning(t *testing.T) {
	calls := 0
	cloud := &hcloud.MockClient{
		GetServerStatusFunc: func(ctx context.Context, id int64) (hcloudapi.ServerStatus, error) {
			calls++
			if calls < 3 {
				return hcloudapi.ServerStatusInitializing, nil
			}
			return hcloudapi.ServerStatusRunning, nil
		},
	}

	pctx := testContext(cloud)
	pctx.State.Instance = &hcloud.Instance{ID: 42, Name: "gpu-box"}
	pctx.Timeouts.BootRunning = time.Second
	pctx.Timeouts.BootInterval = 10 * time.Millisecond

	require.NoError(t, NewBootPhase().Provision(pctx))
	assert.Equal(t, 3, calls)
}

func TestBootPhaseTimesOut(t *testing.T) {
	cloud := &hcloud.MockClient{
		GetServerStatusFunc: func(ctx context.Context, id int64) (hcloudapi.ServerStatus, error) {
			return hcloudapi.ServerStatusStarting, nil
		},
	}

	pctx := testContext(cloud)
	pctx.State.Instance = &hcloud.Instance{ID: 42, Name: "gpu-box"}
	pctx.Timeouts.BootRunning = 30 * time.Millisecond
	pctx.Timeouts.BootInterval = 10 * time.Millisecond

	err := NewBootPhase().Provision(pctx)
	require.Error(t, err)
	assert.True(t, poll.IsTimeout(err))
}
