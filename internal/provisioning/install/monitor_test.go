package install

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/llamaup/llamaup/internal/config"
	"github.com/llamaup/llamaup/internal/platform/hcloud"
	"github.com/llamaup/llamaup/internal/platform/ntfy"
	"github.com/llamaup/llamaup/internal/provisioning"
	"github.com/llamaup/llamaup/internal/util/poll"
)

// progressServer streams canned ntfy events for one topic and then blocks
// until the client goes away.
func progressServer(t *testing.T, messages []string, hold bool) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		flusher, ok := w.(http.Flusher)
		require.True(t, ok)

		fmt.Fprintln(w, `{"id":"o1","time":1,"event":"open","topic":"gpu-box"}`)
		flusher.Flush()

		for i, msg := range messages {
			fmt.Fprintf(w, `{"id":"m%d","time":%d,"event":"message","topic":"gpu-box","message":%q}`+"\n", i, i+2, msg)
			flusher.Flush()
		}

		if hold {
			<-r.Context().Done()
		}
	}))
}

func testContext(server string) *provisioning.Context {
	pctx := &provisioning.Context{
		Context: context.Background(),
		Config: &config.Config{
			Name:       "gpu-box",
			Location:   "fsn1",
			ServerType: "cx22",
			Model:      "llama3",
			NtfyServer: server,
		},
		State:    &provisioning.State{Instance: &hcloud.Instance{ID: 1, Name: "gpu-box"}},
		Cloud:    &hcloud.MockClient{},
		Notify:   ntfy.NewClient(server),
		Observer: provisioning.NewConsoleObserver(),
		Timeouts: config.LoadTimeouts(),
	}
	pctx.Timeouts.FirstEvent = 2 * time.Second
	return pctx
}

func TestMonitorPhaseCompletesOnTerminalMarker(t *testing.T) {
	srv := progressServer(t, []string{
		"Installing Docker",
		"Installing NVIDIA driver",
		"Rebooting to load the NVIDIA driver",
	}, true)
	defer srv.Close()

	pctx := testContext(srv.URL)
	assert.NoError(t, NewMonitorPhase().Provision(pctx))
}

func TestMonitorPhaseMatchesMarkerCaseInsensitively(t *testing.T) {
	srv := progressServer(t, []string{"starting SERVICES now"}, true)
	defer srv.Close()

	pctx := testContext(srv.URL)
	assert.NoError(t, NewMonitorPhase().Provision(pctx))
}

func TestMonitorPhaseFailsOnSilentTopic(t *testing.T) {
	srv := progressServer(t, nil, true)
	defer srv.Close()

	pctx := testContext(srv.URL)
	pctx.Timeouts.FirstEvent = 50 * time.Millisecond

	err := NewMonitorPhase().Provision(pctx)
	require.Error(t, err)
	assert.True(t, poll.IsTimeout(err))
}

func TestMonitorPhaseFailsWhenStreamEndsEarly(t *testing.T) {
	// Two connections, both end after a non-terminal message: the single
	// resubscribe is spent and the phase fails.
	srv := progressServer(t, []string{"Installing Docker"}, false)
	defer srv.Close()

	pctx := testContext(srv.URL)
	err := NewMonitorPhase().Provision(pctx)
	require.Error(t, err)
	assert.ErrorIs(t, err, ntfy.ErrStreamClosed)
}
