package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "llamaup.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad_AppliesDefaults(t *testing.T) {
	t.Parallel()
	path := writeConfig(t, `
name: my-llamabox
location: fsn1
server_type: cx52
model: llama3.1:8b
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "my-llamabox", cfg.Name)
	assert.Equal(t, DefaultImage, cfg.Image)
	assert.Equal(t, DefaultNtfyServer, cfg.NtfyServer)
	assert.Equal(t, DefaultWebUIPort, cfg.WebUIPort)
	assert.Equal(t, DefaultInferencePort, cfg.InferencePort)
	assert.Empty(t, cfg.SSHKeys)
	assert.Nil(t, cfg.Export)
}

func TestLoad_FullConfig(t *testing.T) {
	t.Parallel()
	path := writeConfig(t, `
name: gpu-box
location: hel1
server_type: gex44
image: ubuntu-22.04
model: mistral:7b
webui_port: 8080
ntfy_server: https://ntfy.example.com
ssh_keys: [workstation, laptop]
export:
  endpoint: https://s3.example.com
  bucket: llamaup-exports
  access_key: AK
  secret_key: SK
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "ubuntu-22.04", cfg.Image)
	assert.Equal(t, 8080, cfg.WebUIPort)
	assert.Equal(t, []string{"workstation", "laptop"}, cfg.SSHKeys)
	require.NotNil(t, cfg.Export)
	assert.Equal(t, "llamaup-exports", cfg.Export.Bucket)
}

func TestLoad_MissingFile(t *testing.T) {
	t.Parallel()
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
}

func TestValidate(t *testing.T) {
	t.Parallel()
	base := func() Config {
		return Config{Name: "ok", Location: "fsn1", ServerType: "cx52", Model: "llama3.1:8b"}
	}

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"valid", func(*Config) {}, ""},
		{"empty name", func(c *Config) { c.Name = "" }, "invalid name"},
		{"uppercase name", func(c *Config) { c.Name = "MyBox" }, "invalid name"},
		{"trailing hyphen", func(c *Config) { c.Name = "box-" }, "invalid name"},
		{"too long", func(c *Config) { c.Name = "abcdefghijklmnopqrstuvwxyz0123456789" }, "invalid name"},
		{"missing location", func(c *Config) { c.Location = "" }, "location is required"},
		{"missing server type", func(c *Config) { c.ServerType = "" }, "server_type is required"},
		{"missing model", func(c *Config) { c.Model = "" }, "model is required"},
		{"export missing bucket", func(c *Config) {
			c.Export = &ExportConfig{Endpoint: "https://s3", AccessKey: "a", SecretKey: "s"}
		}, "export requires endpoint and bucket"},
		{"export missing credentials", func(c *Config) {
			c.Export = &ExportConfig{Endpoint: "https://s3", Bucket: "b"}
		}, "export requires access_key and secret_key"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			cfg := base()
			tt.mutate(&cfg)

			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
			} else {
				assert.ErrorContains(t, err, tt.wantErr)
			}
		})
	}
}

func TestServices(t *testing.T) {
	t.Parallel()
	cfg := Config{}
	assert.Equal(t, []string{"ollama", "open-webui"}, cfg.Services())
}

func TestLoadTimeouts_Defaults(t *testing.T) {
	ts := LoadTimeouts()

	assert.Equal(t, 180*time.Second, ts.BootRunning)
	assert.Equal(t, 5*time.Second, ts.BootInterval)
	assert.Equal(t, 300*time.Second, ts.FirstEvent)
	assert.Equal(t, 120*time.Second, ts.Reachable)
	assert.Equal(t, 2*time.Second, ts.ReachInterval)
	assert.Equal(t, 30*time.Second, ts.HTTPHealth)
	assert.Equal(t, 600*time.Second, ts.ContentReady)
	assert.Equal(t, 5*time.Minute, ts.Delete)
}

func TestLoadTimeouts_EnvOverride(t *testing.T) {
	t.Setenv("LLAMAUP_TIMEOUT_BOOT", "42s")
	t.Setenv("LLAMAUP_TIMEOUT_FIRST_EVENT", "not-a-duration")

	ts := LoadTimeouts()

	assert.Equal(t, 42*time.Second, ts.BootRunning)
	assert.Equal(t, 300*time.Second, ts.FirstEvent, "invalid value falls back to default")
}
