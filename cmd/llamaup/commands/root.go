// Package commands defines the CLI command structure and flag bindings.
//
// This package contains cobra command definitions that handle argument
// parsing, flag binding, and validation. Command execution is delegated to
// handler functions in the handlers package.
package commands

import "github.com/spf13/cobra"

// Root returns the root command for the llamaup CLI.
func Root() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "llamaup",
		Short:         "Provision a GPU inference server on Hetzner Cloud",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.AddCommand(Init())
	cmd.AddCommand(Up())
	cmd.AddCommand(Status())
	cmd.AddCommand(Cost())
	cmd.AddCommand(Destroy())
	cmd.AddCommand(Version())
	cmd.AddCommand(Completion())

	return cmd
}
