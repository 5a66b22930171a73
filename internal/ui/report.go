package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"gopkg.in/yaml.v3"

	"github.com/llamaup/llamaup/internal/config"
	"github.com/llamaup/llamaup/internal/platform/hcloud"
)

// AccessDetails is everything the operator needs to use the instance. It is
// printed after a successful run and optionally exported to object storage.
type AccessDetails struct {
	Name         string `yaml:"name"`
	IP           string `yaml:"ip"`
	WebUIURL     string `yaml:"webui_url"`
	InferenceURL string `yaml:"inference_url"`
	Model        string `yaml:"model"`
	AdminSecret  string `yaml:"admin_secret"`
	SSHCommand   string `yaml:"ssh_command"`
}

// NewAccessDetails assembles the access details for a provisioned instance.
func NewAccessDetails(cfg *config.Config, instance *hcloud.Instance, adminSecret string) AccessDetails {
	return AccessDetails{
		Name:         instance.Name,
		IP:           instance.PublicIP,
		WebUIURL: fmt.Sprintf("http://%s:%d", instance.PublicIP, cfg.WebUIPort),
		// The inference API is bound to the server's loopback; it is
		// reached through the web UI or over SSH, never directly.
		InferenceURL: fmt.Sprintf("http://localhost:%d (on the server)", cfg.InferencePort),
		Model:        cfg.Model,
		AdminSecret:  adminSecret,
		SSHCommand:   fmt.Sprintf("ssh %s@%s", config.DefaultSSHUser, instance.PublicIP),
	}
}

// YAML serializes the access details for the export file.
func (d AccessDetails) YAML() ([]byte, error) {
	return yaml.Marshal(d)
}

var (
	reportBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#22c55e")).
			Padding(1, 2)

	reportTitleStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("#22c55e"))

	reportLabelStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#6b7280")).
				Width(12)

	reportWarnStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#eab308"))
)

// RenderSuccess renders the post-provisioning summary.
func RenderSuccess(d AccessDetails, warnings []string) string {
	var b strings.Builder

	b.WriteString(reportTitleStyle.Render(fmt.Sprintf("%s is ready", d.Name)))
	b.WriteString("\n\n")

	rows := []struct{ label, value string }{
		{"Web UI", d.WebUIURL},
		{"Inference", d.InferenceURL},
		{"Model", d.Model},
		{"SSH", d.SSHCommand},
		{"Secret", d.AdminSecret},
	}
	for _, row := range rows {
		fmt.Fprintf(&b, "%s %s\n", reportLabelStyle.Render(row.label), row.value)
	}

	if len(warnings) > 0 {
		b.WriteString("\n")
		for _, warn := range warnings {
			b.WriteString(reportWarnStyle.Render("warning: " + warn))
			b.WriteString("\n")
		}
	}

	return reportBoxStyle.Render(strings.TrimRight(b.String(), "\n"))
}

// RenderResidual renders the manual-cleanup notice for a failed run that
// left a server behind.
func RenderResidual(instance *hcloud.Instance) string {
	return reportWarnStyle.Render(fmt.Sprintf(
		"server %s (ID %d) still exists and incurs charges; remove it with 'llamaup destroy' or via the Hetzner console",
		instance.Name, instance.ID))
}
