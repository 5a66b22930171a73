package handlers

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/llamaup/llamaup/internal/config"
	"github.com/llamaup/llamaup/internal/pricing"
)

func withCostStubs(t *testing.T) *string {
	t.Helper()
	origLoad := loadConfigFile
	origFetch := fetchPrices
	t.Cleanup(func() {
		loadConfigFile = origLoad
		fetchPrices = origFetch
	})

	loadConfigFile = func(string) (*config.Config, error) {
		return &config.Config{
			Name: "test", Location: "hel1", ServerType: "gex44", Model: "llama3",
		}, nil
	}

	var fetchedLocation string
	fetchPrices = func(_ context.Context, _, location string) *pricing.Prices {
		fetchedLocation = location
		return &pricing.Prices{
			Servers:     map[string]float64{"gex44": 169.00},
			PrimaryIPv4: 0.50,
		}
	}
	return &fetchedLocation
}

func TestCostUsesConfiguredLocation(t *testing.T) {
	fetchedLocation := withCostStubs(t)

	require.NoError(t, Cost(context.Background(), "llamaup.yaml", false))
	require.Equal(t, "hel1", *fetchedLocation)
}

func TestCostJSONOutput(t *testing.T) {
	withCostStubs(t)
	require.NoError(t, Cost(context.Background(), "llamaup.yaml", true))
}

func TestCostConfigError(t *testing.T) {
	withCostStubs(t)
	loadConfigFile = func(string) (*config.Config, error) {
		return nil, context.DeadlineExceeded
	}
	require.Error(t, Cost(context.Background(), "llamaup.yaml", false))
}
