package wizard

import "github.com/llamaup/llamaup/internal/config"

// BuildConfig creates a Config from the wizard result. Defaulted fields
// (image, ports, relay) are left empty so the written file stays minimal.
func BuildConfig(result *Result) *config.Config {
	cfg := &config.Config{
		Name:       result.Name,
		Location:   result.Location,
		ServerType: result.ServerType,
		Model:      result.Model,
	}

	if len(result.SSHKeys) > 0 {
		cfg.SSHKeys = result.SSHKeys
	}

	if result.ExportEndpoint != "" {
		cfg.Export = &config.ExportConfig{
			Endpoint:  result.ExportEndpoint,
			Bucket:    result.ExportBucket,
			AccessKey: result.ExportAccessKey,
			SecretKey: result.ExportSecretKey,
		}
	}

	return cfg
}
