package handlers

import (
	"context"
	"fmt"
	"log"

	"github.com/llamaup/llamaup/internal/provisioning"
	"github.com/llamaup/llamaup/internal/provisioning/destroy"
	"github.com/llamaup/llamaup/internal/ui"
)

// Factory function variables for destroy - can be replaced in tests.
var (
	destroyInstance = destroy.Destroy

	newDestroyPrompter = func() provisioning.Prompter {
		return ui.ConfirmPrompter{}
	}
)

// Destroy handles the destroy command. Without force it asks first; the
// deletion is irreversible.
func Destroy(ctx context.Context, configPath string, force bool) error {
	cfg, err := loadConfig(configPath)
	if err != nil {
		return err
	}

	cloud, err := cloudClientFromEnv()
	if err != nil {
		return err
	}

	if !force {
		confirmed, err := newDestroyPrompter().Confirm(ctx,
			fmt.Sprintf("Delete server %q?", cfg.Name),
			"The server, the model, and all data on it will be lost.")
		if err != nil {
			return err
		}
		if !confirmed {
			fmt.Println("Nothing deleted.")
			return nil
		}
	}

	instance, err := destroyInstance(ctx, cloud, cfg.Name, force, provisioning.NewConsoleObserver())
	if err != nil {
		return err
	}

	if instance == nil {
		log.Printf("no server named %q exists, nothing to delete", cfg.Name)
		return nil
	}

	log.Printf("server %s (ID %d) deleted", instance.Name, instance.ID)
	return nil
}
