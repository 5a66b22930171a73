// Package compute holds the phases that bring the server itself into
// existence: creating it with the rendered boot payload and waiting for the
// control plane to report it running.
package compute

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/llamaup/llamaup/internal/platform/hcloud"
	"github.com/llamaup/llamaup/internal/provisioning"
	"github.com/llamaup/llamaup/internal/userdata"
	"github.com/llamaup/llamaup/internal/util/keygen"
	"github.com/llamaup/llamaup/internal/util/labels"
)

// CreatePhase provisions the server with its boot-time install payload.
type CreatePhase struct{}

// NewCreatePhase creates the server creation phase.
func NewCreatePhase() *CreatePhase { return &CreatePhase{} }

// Name implements provisioning.Phase.
func (p *CreatePhase) Name() string { return "Create server" }

// Provision generates the run key, renders the cloud-init payload, and
// creates the server. On success exactly one billable resource exists and
// is recorded in the workflow state.
func (p *CreatePhase) Provision(pctx *provisioning.Context) error {
	cfg := pctx.Config

	if existing, err := pctx.Cloud.GetServerByName(pctx, cfg.Name); err != nil {
		return fmt.Errorf("failed to check for existing server: %w", err)
	} else if existing != nil {
		return fmt.Errorf("server %q already exists (ID %d); run 'llamaup destroy' first or pick another name", cfg.Name, existing.ID)
	}

	keyIDs, runKeyID, privateKey, err := p.prepareKeys(pctx)
	if err != nil {
		return err
	}

	secret := cfg.AdminSecret
	if secret == "" {
		secret, err = randomSecret()
		if err != nil {
			return fmt.Errorf("failed to generate admin secret: %w", err)
		}
	}

	payload, err := userdata.Render(userdata.Params{
		Topic:         cfg.Name,
		NtfyServer:    cfg.NtfyServer,
		Model:         cfg.Model,
		WebUIPort:     cfg.WebUIPort,
		InferencePort: cfg.InferencePort,
		AdminSecret:   secret,
	})
	if err != nil {
		return fmt.Errorf("failed to render boot payload: %w", err)
	}

	pctx.Observer.Printf("creating server %s (%s, %s)", cfg.Name, cfg.ServerType, cfg.Location)
	pctx.State.CreatedAt = time.Now()

	instance, err := pctx.Cloud.CreateServer(pctx, hcloud.CreateOpts{
		Name:       cfg.Name,
		Location:   cfg.Location,
		ServerType: cfg.ServerType,
		Image:      cfg.Image,
		SSHKeyIDs:  keyIDs,
		Labels:     labels.ForInstance(cfg.Name),
		UserData:   payload,
	})
	if err != nil {
		return err
	}

	pctx.State.Instance = instance
	pctx.State.SSHKeyID = runKeyID
	pctx.State.SSHPrivateKey = privateKey
	pctx.State.AdminSecret = secret

	pctx.Observer.Printf("server %s created (ID %d, IP %s)", instance.Name, instance.ID, instance.PublicIP)
	return nil
}

// prepareKeys generates and uploads the per-run key and resolves any
// configured keys. The run key always exists because the configured keys
// have no local private half to probe with.
func (p *CreatePhase) prepareKeys(pctx *provisioning.Context) (keyIDs []int64, runKeyID int64, privateKey []byte, err error) {
	cfg := pctx.Config

	pair, err := keygen.GenerateKeyPair(cfg.Name + "-llamaup")
	if err != nil {
		return nil, 0, nil, fmt.Errorf("failed to generate SSH key: %w", err)
	}

	runKeyID, err = pctx.Cloud.EnsureSSHKey(pctx, cfg.Name+"-llamaup", string(pair.PublicKey),
		labels.ForInstance(cfg.Name))
	if err != nil {
		return nil, 0, nil, fmt.Errorf("failed to upload SSH key: %w", err)
	}
	keyIDs = append(keyIDs, runKeyID)

	for _, name := range cfg.SSHKeys {
		id, err := pctx.Cloud.GetSSHKeyID(pctx, name)
		if err != nil {
			return nil, 0, nil, fmt.Errorf("failed to resolve SSH key %q: %w", name, err)
		}
		keyIDs = append(keyIDs, id)
	}

	return keyIDs, runKeyID, pair.PrivateKey, nil
}

// randomSecret returns a 32-byte hex-encoded random string.
func randomSecret() (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}
