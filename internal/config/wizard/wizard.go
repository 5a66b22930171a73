package wizard

import (
	"context"
	"fmt"
)

// Result holds all the answers from the interactive wizard.
type Result struct {
	// Instance identity
	Name     string
	Location string

	// Hardware
	ServerType string

	// Inference
	Model string

	// SSH access (optional; a key pair is always generated for probing)
	SSHKeys []string

	// Export (optional)
	ExportEndpoint  string
	ExportBucket    string
	ExportAccessKey string
	ExportSecretKey string
}

// Run runs the interactive configuration wizard. The context is used for
// cancellation support (e.g., Ctrl+C).
func Run(ctx context.Context) (*Result, error) {
	result := &Result{}

	if err := runIdentityGroup(ctx, result); err != nil {
		return nil, fmt.Errorf("instance identity: %w", err)
	}

	if err := runHardwareGroup(ctx, result); err != nil {
		return nil, fmt.Errorf("hardware: %w", err)
	}

	if err := runModelGroup(ctx, result); err != nil {
		return nil, fmt.Errorf("model: %w", err)
	}

	if err := runSSHAccessGroup(ctx, result); err != nil {
		return nil, fmt.Errorf("ssh access: %w", err)
	}

	if err := runExportGroup(ctx, result); err != nil {
		return nil, fmt.Errorf("export: %w", err)
	}

	return result, nil
}
