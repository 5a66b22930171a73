package commands

import (
	"github.com/spf13/cobra"

	"github.com/llamaup/llamaup/cmd/llamaup/handlers"
)

// Up returns the up command.
func Up() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "up",
		Short: "Provision the GPU server and wait until it serves the model",
		Long: `Up creates the server, installs the inference stack via its boot
payload, and verifies readiness end to end:

  1. Create the server with the rendered cloud-init payload
  2. Wait for the control plane to report it running
  3. Follow the instance's self-reported install progress
  4. Wait for SSH after the driver-install reboot
  5. Verify the services and wait for the model download

If provisioning fails after the server exists, llamaup offers to delete it
so nothing keeps billing silently.

Example:
  export HCLOUD_TOKEN=<your-token>
  llamaup up -c llamaup.yaml`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return handlers.Up(cmd.Context(), configPath)
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "Path to configuration file (default: llamaup.yaml)")

	return cmd
}
