// Package config defines the llamaup configuration file format and the
// environment-tunable stage timeouts.
package config

import (
	"fmt"
	"regexp"
)

// Default values applied by Load when the corresponding field is absent.
const (
	DefaultImage         = "ubuntu-24.04"
	DefaultNtfyServer    = "https://ntfy.sh"
	DefaultWebUIPort     = 3000
	DefaultInferencePort = 11434
	DefaultSSHUser       = "root"
)

// DefaultFile is the config file looked up in the working directory when no
// path is given.
const DefaultFile = "llamaup.yaml"

// nameRegex validates instance names: 1-32 lowercase alphanumeric with
// hyphens. The name doubles as the progress topic and must be globally
// unique per account.
var nameRegex = regexp.MustCompile(`^[a-z0-9](?:[a-z0-9-]{0,30}[a-z0-9])?$`)

// Config is the llamaup.yaml file format.
type Config struct {
	// Name is the server name and the label used to key the progress topic.
	Name string `yaml:"name"`
	// Location is the Hetzner Cloud datacenter (e.g. fsn1, nbg1, hel1).
	Location string `yaml:"location"`
	// ServerType is the Hetzner server type to provision.
	ServerType string `yaml:"server_type"`
	// Image is the base OS image.
	Image string `yaml:"image,omitempty"`
	// Model is the Ollama model pulled during installation. Its presence in
	// the inference API's tag list is the final readiness signal.
	Model string `yaml:"model"`
	// WebUIPort is the instance-local port the web UI listens on.
	WebUIPort int `yaml:"webui_port,omitempty"`
	// InferencePort is the instance-local port the inference API listens on.
	InferencePort int `yaml:"inference_port,omitempty"`
	// NtfyServer is the push-notification relay the instance publishes
	// installation progress to.
	NtfyServer string `yaml:"ntfy_server,omitempty"`
	// SSHKeys are names of SSH keys already registered with Hetzner Cloud.
	// When empty a key pair is generated and uploaded.
	SSHKeys []string `yaml:"ssh_keys,omitempty"`
	// AdminSecret seeds the web UI admin account. Generated when empty.
	AdminSecret string `yaml:"admin_secret,omitempty"`
	// Export optionally uploads the access-details file to an S3-compatible
	// bucket after a successful run.
	Export *ExportConfig `yaml:"export,omitempty"`
}

// ExportConfig points at an S3-compatible bucket for access-data export.
type ExportConfig struct {
	Endpoint  string `yaml:"endpoint"`
	Region    string `yaml:"region,omitempty"`
	Bucket    string `yaml:"bucket"`
	AccessKey string `yaml:"access_key"`
	SecretKey string `yaml:"secret_key"`
}

// Services returns the container names that must be running on the instance.
func (c *Config) Services() []string {
	return []string{"ollama", "open-webui"}
}

// Validate checks the configuration for completeness.
func (c *Config) Validate() error {
	if !nameRegex.MatchString(c.Name) {
		return fmt.Errorf("invalid name %q: must be 1-32 lowercase alphanumeric characters or hyphens", c.Name)
	}
	if c.Location == "" {
		return fmt.Errorf("location is required")
	}
	if c.ServerType == "" {
		return fmt.Errorf("server_type is required")
	}
	if c.Model == "" {
		return fmt.Errorf("model is required")
	}
	if c.Export != nil {
		if c.Export.Endpoint == "" || c.Export.Bucket == "" {
			return fmt.Errorf("export requires endpoint and bucket")
		}
		if c.Export.AccessKey == "" || c.Export.SecretKey == "" {
			return fmt.Errorf("export requires access_key and secret_key")
		}
	}
	return nil
}

// applyDefaults fills in optional fields that were left empty.
func (c *Config) applyDefaults() {
	if c.Image == "" {
		c.Image = DefaultImage
	}
	if c.NtfyServer == "" {
		c.NtfyServer = DefaultNtfyServer
	}
	if c.WebUIPort == 0 {
		c.WebUIPort = DefaultWebUIPort
	}
	if c.InferencePort == 0 {
		c.InferencePort = DefaultInferencePort
	}
}
