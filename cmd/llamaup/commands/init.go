package commands

import (
	"github.com/spf13/cobra"

	"github.com/llamaup/llamaup/cmd/llamaup/handlers"
)

// Init returns the init command.
func Init() *cobra.Command {
	var outputPath string

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create a configuration file interactively",
		Long: `Init runs an interactive wizard and writes the answers to a
configuration file.

The wizard asks for the instance name, location, GPU server type, and the
model to serve. Everything else gets sensible defaults that can be edited
in the generated file afterwards.

Example:
  llamaup init
  llamaup up`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return handlers.Init(cmd.Context(), outputPath)
		},
	}

	cmd.Flags().StringVarP(&outputPath, "output", "o", "llamaup.yaml", "Path to write the configuration file")

	return cmd
}
