package compute

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/llamaup/llamaup/internal/config"
	"github.com/llamaup/llamaup/internal/platform/hcloud"
	"github.com/llamaup/llamaup/internal/provisioning"
)

func testContext(cloud hcloud.CloudClient) *provisioning.Context {
	cfg := &config.Config{
		Name:          "gpu-box",
		Location:      "fsn1",
		ServerType:    "cx22",
		Image:         "ubuntu-24.04",
		Model:         "llama3",
		WebUIPort:     3000,
		InferencePort: 11434,
		NtfyServer:    "https://ntfy.sh",
	}
	return &provisioning.Context{
		Context:  context.Background(),
		Config:   cfg,
		State:    &provisioning.State{},
		Cloud:    cloud,
		Observer: provisioning.NewConsoleObserver(),
		Timeouts: config.LoadTimeouts(),
	}
}

func TestCreatePhaseProvisionsServer(t *testing.T) {
	var captured hcloud.CreateOpts
	var uploadedKey string
	cloud := &hcloud.MockClient{
		GetServerByNameFunc: func(ctx context.Context, name string) (*hcloud.Instance, error) {
			return nil, nil
		},
		EnsureSSHKeyFunc: func(ctx context.Context, name, publicKey string, labels map[string]string) (int64, error) {
			uploadedKey = publicKey
			assert.Equal(t, "gpu-box-llamaup", name)
			assert.Equal(t, "llamaup", labels["managed-by"])
			return 55, nil
		},
		CreateServerFunc: func(ctx context.Context, opts hcloud.CreateOpts) (*hcloud.Instance, error) {
			captured = opts
			return &hcloud.Instance{ID: 42, Name: opts.Name, PublicIP: "192.0.2.10"}, nil
		},
	}

	pctx := testContext(cloud)
	err := NewCreatePhase().Provision(pctx)
	require.NoError(t, err)

	assert.Equal(t, "gpu-box", captured.Name)
	assert.Equal(t, "cx22", captured.ServerType)
	assert.Equal(t, []int64{55}, captured.SSHKeyIDs)
	assert.Equal(t, "llamaup", captured.Labels["managed-by"])
	assert.True(t, strings.HasPrefix(uploadedKey, "ssh-ed25519 "))

	assert.Contains(t, captured.UserData, "#cloud-config")
	assert.Contains(t, captured.UserData, "llama3")
	assert.Contains(t, captured.UserData, "gpu-box", "topic is baked into the payload")

	require.NotNil(t, pctx.State.Instance)
	assert.Equal(t, int64(42), pctx.State.Instance.ID)
	assert.Equal(t, int64(55), pctx.State.SSHKeyID)
	assert.NotEmpty(t, pctx.State.SSHPrivateKey)
	assert.NotEmpty(t, pctx.State.AdminSecret, "secret is generated when not configured")
	assert.False(t, pctx.State.CreatedAt.IsZero())
}

func TestCreatePhaseAttachesConfiguredKeys(t *testing.T) {
	cloud := &hcloud.MockClient{
		GetServerByNameFunc: func(ctx context.Context, name string) (*hcloud.Instance, error) {
			return nil, nil
		},
		EnsureSSHKeyFunc: func(ctx context.Context, name, publicKey string, labels map[string]string) (int64, error) {
			return 1, nil
		},
		GetSSHKeyIDFunc: func(ctx context.Context, name string) (int64, error) {
			assert.Equal(t, "laptop", name)
			return 9, nil
		},
	}

	pctx := testContext(cloud)
	pctx.Config.SSHKeys = []string{"laptop"}

	var captured hcloud.CreateOpts
	cloud.CreateServerFunc = func(ctx context.Context, opts hcloud.CreateOpts) (*hcloud.Instance, error) {
		captured = opts
		return &hcloud.Instance{ID: 1, Name: opts.Name, PublicIP: "192.0.2.10"}, nil
	}

	require.NoError(t, NewCreatePhase().Provision(pctx))
	assert.Equal(t, []int64{1, 9}, captured.SSHKeyIDs)
}

func TestCreatePhaseKeepsConfiguredSecret(t *testing.T) {
	cloud := &hcloud.MockClient{
		GetServerByNameFunc: func(ctx context.Context, name string) (*hcloud.Instance, error) {
			return nil, nil
		},
	}

	pctx := testContext(cloud)
	pctx.Config.AdminSecret = "configured-secret"

	require.NoError(t, NewCreatePhase().Provision(pctx))
	assert.Equal(t, "configured-secret", pctx.State.AdminSecret)
}

func TestCreatePhaseRejectsExistingServer(t *testing.T) {
	cloud := &hcloud.MockClient{
		GetServerByNameFunc: func(ctx context.Context, name string) (*hcloud.Instance, error) {
			return &hcloud.Instance{ID: 3, Name: name}, nil
		},
	}

	pctx := testContext(cloud)
	err := NewCreatePhase().Provision(pctx)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")
	assert.Nil(t, pctx.State.Instance, "no resource may be recorded on refusal")
}
