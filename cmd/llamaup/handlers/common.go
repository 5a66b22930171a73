// Package handlers implements the command logic behind the CLI.
//
// Handlers depend on platform clients through factory function variables so
// tests can swap in mocks without touching global state beyond the package.
package handlers

import (
	"fmt"
	"os"

	"github.com/llamaup/llamaup/internal/config"
	hcloudplat "github.com/llamaup/llamaup/internal/platform/hcloud"
)

// Factory function variables shared across handlers - replaceable in tests.
var (
	loadConfigFile = config.Load
	findConfigFile = config.FindConfigFile

	newCloudClient = func(token string) hcloudplat.CloudClient {
		return hcloudplat.NewRealClient(token)
	}
)

// loadConfig resolves the config path (explicit flag or the default file in
// the working directory) and loads it.
func loadConfig(path string) (*config.Config, error) {
	if path == "" {
		var err error
		path, err = findConfigFile()
		if err != nil {
			return nil, err
		}
	}
	return loadConfigFile(path)
}

// cloudClientFromEnv builds the API client from the HCLOUD_TOKEN
// environment variable.
func cloudClientFromEnv() (hcloudplat.CloudClient, error) {
	token := os.Getenv("HCLOUD_TOKEN")
	if token == "" {
		return nil, fmt.Errorf("HCLOUD_TOKEN environment variable is not set")
	}
	return newCloudClient(token), nil
}
