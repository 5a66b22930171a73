package handlers

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/mattn/go-isatty"

	"github.com/llamaup/llamaup/internal/config"
	"github.com/llamaup/llamaup/internal/platform/ntfy"
	s3plat "github.com/llamaup/llamaup/internal/platform/s3"
	"github.com/llamaup/llamaup/internal/provisioning"
	"github.com/llamaup/llamaup/internal/provisioning/compute"
	"github.com/llamaup/llamaup/internal/provisioning/install"
	"github.com/llamaup/llamaup/internal/provisioning/verify"
	"github.com/llamaup/llamaup/internal/ui"
	"github.com/llamaup/llamaup/internal/ui/tui"
)

// exporter uploads the access-details file after a successful run.
type exporter interface {
	Upload(ctx context.Context, key string, body []byte) error
}

// Factory function variables for up - can be replaced in tests.
var (
	newUpContext = provisioning.NewContext

	newExportClient = func(ctx context.Context, cfg *config.ExportConfig) (exporter, error) {
		return s3plat.NewClient(ctx, cfg)
	}

	isInteractive = func() bool {
		return isatty.IsTerminal(os.Stdout.Fd())
	}

	runDashboard = tui.RunUp
)

// upPhases builds the workflow pipeline in execution order.
func upPhases() []provisioning.Phase {
	return []provisioning.Phase{
		compute.NewCreatePhase(),
		compute.NewBootPhase(),
		install.NewMonitorPhase(),
		verify.NewReachabilityPhase(),
		verify.NewServicesPhase(),
	}
}

// Up handles the up command: provision, install, verify, report.
func Up(ctx context.Context, configPath string) error {
	cfg, err := loadConfig(configPath)
	if err != nil {
		return err
	}

	cloud, err := cloudClientFromEnv()
	if err != nil {
		return err
	}

	notify := ntfy.NewClient(cfg.NtfyServer)
	pctx := newUpContext(ctx, cfg, cloud, notify)
	phases := upPhases()

	var outcome provisioning.Outcome
	if isInteractive() {
		names := make([]string, len(phases))
		for i, phase := range phases {
			names[i] = phase.Name()
		}

		runCtx, cancel := context.WithCancel(ctx)
		defer cancel()
		pctx.Context = runCtx

		outcome, err = runDashboard(runCtx, cancel, cfg.Name, cfg.Location, names, ui.ConfirmPrompter{},
			func(obs provisioning.Observer, prompter provisioning.Prompter) provisioning.Outcome {
				pctx.Observer = obs
				return provisioning.NewWorkflow(prompter, phases...).Run(pctx)
			})
		if err != nil {
			return err
		}
	} else {
		outcome = provisioning.NewWorkflow(ui.DeclinePrompter{}, phases...).Run(pctx)
	}

	if !outcome.Succeeded() {
		if outcome.ResidualInstance() {
			fmt.Println(ui.RenderResidual(outcome.Instance))
		}
		return fmt.Errorf("provisioning failed at %q: %w", outcome.Stage, outcome.Err)
	}

	details := ui.NewAccessDetails(cfg, outcome.Instance, pctx.State.AdminSecret)
	fmt.Println(ui.RenderSuccess(details, outcome.Warnings))

	if cfg.Export != nil {
		if err := exportAccessDetails(ctx, cfg, details); err != nil {
			log.Printf("Warning: access-details export failed: %v", err)
		}
	}

	return nil
}

// exportAccessDetails uploads the access file to the configured bucket.
// Failures here never fail the run; the server is up and reported.
func exportAccessDetails(ctx context.Context, cfg *config.Config, details ui.AccessDetails) error {
	client, err := newExportClient(ctx, cfg.Export)
	if err != nil {
		return err
	}

	body, err := details.YAML()
	if err != nil {
		return err
	}

	key := fmt.Sprintf("%s/access.yaml", cfg.Name)
	if err := client.Upload(ctx, key, body); err != nil {
		return err
	}

	log.Printf("access details exported to %s/%s", cfg.Export.Bucket, key)
	return nil
}
