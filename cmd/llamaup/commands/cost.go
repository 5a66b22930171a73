package commands

import (
	"github.com/spf13/cobra"

	"github.com/llamaup/llamaup/cmd/llamaup/handlers"
)

// Cost returns the cost command.
func Cost() *cobra.Command {
	var (
		configPath string
		jsonOutput bool
	)

	cmd := &cobra.Command{
		Use:   "cost",
		Short: "Estimate the monthly cost of the configured server",
		Long: `Estimate the monthly cost of the configured GPU server, including the
primary IPv4 address and VAT.

Live prices are fetched from the Hetzner API when HCLOUD_TOKEN is set;
otherwise built-in approximate prices are used.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return handlers.Cost(cmd.Context(), configPath, jsonOutput)
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "Path to configuration file (default: llamaup.yaml)")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output the estimate as JSON")

	return cmd
}
