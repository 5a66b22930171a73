// Package userdata renders the cloud-init payload that installs the
// inference stack on first boot.
//
// The payload is opaque to the provisioning workflow: it is rendered once,
// handed to the control plane at create time, and never inspected again.
// Everything the instance needs to report progress (the relay URL and its
// own topic) is baked in here, which is what lets the orchestrator stay a
// passive subscriber.
package userdata

import (
	_ "embed"
	"fmt"
	"strings"
	"text/template"
)

//go:embed cloudinit.yaml.tmpl
var cloudInitTemplate string

// Markers published by the install script that the progress monitor treats
// as terminal for the installation stage.
const (
	MarkerRebooting        = "Rebooting"
	MarkerStartingServices = "Starting services"
)

// Params fills the cloud-init template.
type Params struct {
	// Topic is the ntfy topic the instance publishes progress to. It equals
	// the instance name, which is unique per account.
	Topic string
	// NtfyServer is the relay base URL.
	NtfyServer string
	// Model is pulled into Ollama once the stack is up.
	Model string
	// WebUIPort is the host port the web UI is published on.
	WebUIPort int
	// InferencePort is the host port the inference API is published on.
	InferencePort int
	// AdminSecret seeds the web UI session secret.
	AdminSecret string
}

// Render produces the cloud-init payload.
func Render(p Params) (string, error) {
	if p.Topic == "" {
		return "", fmt.Errorf("topic is required")
	}
	if p.Model == "" {
		return "", fmt.Errorf("model is required")
	}

	tmpl, err := template.New("cloudinit").Parse(cloudInitTemplate)
	if err != nil {
		return "", fmt.Errorf("failed to parse cloud-init template: %w", err)
	}

	var buf strings.Builder
	if err := tmpl.Execute(&buf, p); err != nil {
		return "", fmt.Errorf("failed to render cloud-init payload: %w", err)
	}
	return buf.String(), nil
}
