package handlers

import (
	"context"
	"fmt"

	"github.com/llamaup/llamaup/internal/config/wizard"
)

// Factory function variables for init - can be replaced in tests.
var (
	fileExists       = wizard.FileExists
	confirmOverwrite = wizard.ConfirmOverwrite
	runWizard        = wizard.Run
	writeConfig      = wizard.WriteConfig
)

// Init runs the configuration wizard and writes the result to a file.
func Init(ctx context.Context, outputPath string) error {
	if fileExists(outputPath) {
		ok, err := confirmOverwrite(outputPath)
		if err != nil {
			return err
		}
		if !ok {
			fmt.Println("Keeping the existing file.")
			return nil
		}
	}

	printWelcome()

	result, err := runWizard(ctx)
	if err != nil {
		return fmt.Errorf("wizard canceled: %w", err)
	}

	cfg := wizard.BuildConfig(result)

	if err := writeConfig(cfg, outputPath); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	printInitSuccess(outputPath)
	return nil
}

// printWelcome prints the welcome message.
func printWelcome() {
	fmt.Println()
	fmt.Println("llamaup - GPU inference on Hetzner Cloud")
	fmt.Println("========================================")
	fmt.Println()
	fmt.Println("This wizard creates an instance configuration with sensible defaults.")
	fmt.Println()
}

// printInitSuccess prints the success message with next steps.
func printInitSuccess(outputPath string) {
	fmt.Println()
	fmt.Println("Configuration saved!")
	fmt.Println()
	fmt.Printf("  File: %s\n", outputPath)
	fmt.Println()
	fmt.Println("Next steps:")
	fmt.Println("  export HCLOUD_TOKEN=<your-token>")
	fmt.Printf("  llamaup up -c %s\n", outputPath)
	fmt.Println()
}
