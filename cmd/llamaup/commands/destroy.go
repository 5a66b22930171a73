package commands

import (
	"github.com/spf13/cobra"

	"github.com/llamaup/llamaup/cmd/llamaup/handlers"
)

// Destroy returns the destroy command.
func Destroy() *cobra.Command {
	var configPath string
	var force bool

	cmd := &cobra.Command{
		Use:   "destroy",
		Short: "Delete the server and its uploaded SSH key",
		Long: `Destroy deletes the configured server and the SSH key llamaup
uploaded for it. The model, the web UI state, and everything else on the
server is lost.

Example:
  llamaup destroy -c llamaup.yaml

WARNING: This operation is irreversible.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return handlers.Destroy(cmd.Context(), configPath, force)
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "Path to configuration file (default: llamaup.yaml)")
	cmd.Flags().BoolVar(&force, "force", false, "Skip the confirmation prompt and the managed-by label check")

	return cmd
}
