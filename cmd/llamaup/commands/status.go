package commands

import (
	"github.com/spf13/cobra"

	"github.com/llamaup/llamaup/cmd/llamaup/handlers"
)

// Status returns the status command.
func Status() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show the server's current state and access URLs",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return handlers.Status(cmd.Context(), configPath)
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "Path to configuration file (default: llamaup.yaml)")

	return cmd
}
