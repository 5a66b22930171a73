package handlers

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/llamaup/llamaup/internal/config"
	hcloudplat "github.com/llamaup/llamaup/internal/platform/hcloud"
)

func withStatusStubs(t *testing.T, cloud hcloudplat.CloudClient) {
	t.Helper()
	origLoad := loadConfigFile
	origClient := newCloudClient
	origProbe := probeHTTP
	t.Cleanup(func() {
		loadConfigFile = origLoad
		newCloudClient = origClient
		probeHTTP = origProbe
	})
	probeHTTP = func(context.Context, string) bool { return true }

	t.Setenv("HCLOUD_TOKEN", "test-token")
	loadConfigFile = func(string) (*config.Config, error) {
		return &config.Config{
			Name: "test", Location: "fsn1", ServerType: "gex44", Model: "llama3",
			WebUIPort: 3000, InferencePort: 11434,
		}, nil
	}
	newCloudClient = func(string) hcloudplat.CloudClient { return cloud }
}

func TestStatusExistingServer(t *testing.T) {
	withStatusStubs(t, &hcloudplat.MockClient{})
	require.NoError(t, Status(context.Background(), "llamaup.yaml"))
}

func TestStatusMissingServer(t *testing.T) {
	withStatusStubs(t, &hcloudplat.MockClient{
		GetServerByNameFunc: func(ctx context.Context, name string) (*hcloudplat.Instance, error) {
			return nil, nil
		},
	})
	require.NoError(t, Status(context.Background(), "llamaup.yaml"))
}

func TestStatusProbesOnlyPublishedPorts(t *testing.T) {
	withStatusStubs(t, &hcloudplat.MockClient{})

	var probed []string
	probeHTTP = func(_ context.Context, url string) bool {
		probed = append(probed, url)
		return true
	}

	require.NoError(t, Status(context.Background(), "llamaup.yaml"))

	// The inference API is bound to the server's loopback, so only the
	// web UI port can be probed from outside.
	require.Equal(t, []string{"http://192.0.2.10:3000"}, probed)
}

func TestStatusRequiresToken(t *testing.T) {
	withStatusStubs(t, &hcloudplat.MockClient{})
	t.Setenv("HCLOUD_TOKEN", "")
	require.Error(t, Status(context.Background(), "llamaup.yaml"))
}
