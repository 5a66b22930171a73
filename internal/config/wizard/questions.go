package wizard

import (
	"context"
	"regexp"
	"strings"

	"github.com/charmbracelet/huh"
)

// nameRegex validates instance name format: 1-32 lowercase alphanumeric
// with hyphens.
var nameRegex = regexp.MustCompile(`^[a-z0-9](?:[a-z0-9-]{0,30}[a-z0-9])?$`)

// runIdentityGroup prompts for instance name and location.
func runIdentityGroup(ctx context.Context, result *Result) error {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Instance Name").
				Description("Also used as the progress topic; must be unique in your account").
				Placeholder("my-llama").
				Value(&result.Name).
				Validate(validateName),
			huh.NewSelect[string]().
				Title("Location").
				Description("Hetzner Cloud datacenter").
				Options(LocationsToOptions()...).
				Value(&result.Location),
		).Title("Instance Identity"),
	).RunWithContext(ctx)
}

// runHardwareGroup prompts for the GPU server type.
func runHardwareGroup(ctx context.Context, result *Result) error {
	result.ServerType = GPUServerTypes[0].Value // default

	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Server Type").
				Description("The model must fit into the GPU's VRAM").
				Options(ServerTypesToOptions()...).
				Value(&result.ServerType),
		).Title("Hardware"),
	).RunWithContext(ctx)
}

// runModelGroup prompts for the Ollama model, with a free-form fallback.
func runModelGroup(ctx context.Context, result *Result) error {
	err := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Model").
				Description("Pulled into Ollama on first boot").
				Options(ModelsToOptions()...).
				Value(&result.Model),
		).Title("Model"),
	).RunWithContext(ctx)
	if err != nil {
		return err
	}

	if result.Model != modelCustom {
		return nil
	}

	result.Model = ""
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Model Name").
				Description("Any model from the Ollama library, e.g. phi4:14b").
				Placeholder("phi4:14b").
				Value(&result.Model).
				Validate(validateModel),
		).Title("Model"),
	).RunWithContext(ctx)
}

// runSSHAccessGroup prompts for additional SSH key names (optional).
func runSSHAccessGroup(ctx context.Context, result *Result) error {
	var sshKeysInput string

	err := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("SSH Key Names (Optional)").
				Description("Comma-separated key names from Hetzner Cloud to attach in addition to the generated key").
				Placeholder("my-key, another-key (or leave empty)").
				Value(&sshKeysInput),
		).Title("SSH Access"),
	).RunWithContext(ctx)
	if err != nil {
		return err
	}

	result.SSHKeys = parseSSHKeys(sshKeysInput)
	return nil
}

// runExportGroup optionally configures the S3 export of access details.
func runExportGroup(ctx context.Context, result *Result) error {
	configure := false

	err := huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title("Export access details to S3?").
				Description("Uploads the access file to an S3-compatible bucket after a successful run").
				Affirmative("Yes").
				Negative("No").
				Value(&configure),
		).Title("Export"),
	).RunWithContext(ctx)
	if err != nil || !configure {
		return err
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Endpoint").
				Placeholder("https://fsn1.your-objectstorage.com").
				Value(&result.ExportEndpoint),
			huh.NewInput().
				Title("Bucket").
				Value(&result.ExportBucket),
			huh.NewInput().
				Title("Access Key").
				Value(&result.ExportAccessKey),
			huh.NewInput().
				Title("Secret Key").
				EchoMode(huh.EchoModePassword).
				Value(&result.ExportSecretKey),
		).Title("Export Target"),
	).RunWithContext(ctx)
}

// parseSSHKeys splits a comma-separated key name list, trimming whitespace
// and dropping empty entries.
func parseSSHKeys(input string) []string {
	var keys []string
	for _, part := range strings.Split(input, ",") {
		if key := strings.TrimSpace(part); key != "" {
			keys = append(keys, key)
		}
	}
	return keys
}

func validateName(name string) error {
	if name == "" {
		return errNameRequired
	}
	if !nameRegex.MatchString(name) {
		return errNameInvalid
	}
	return nil
}

func validateModel(model string) error {
	if strings.TrimSpace(model) == "" {
		return errModelRequired
	}
	return nil
}
