package provisioning

import (
	"context"
	"fmt"
)

// Cleanup offers to delete a partially provisioned server after a failed run.
type Cleanup struct {
	Prompter Prompter
}

// Offer asks the operator whether the residual server should be deleted and,
// on consent, deletes it. Returns true only when the server was actually
// removed. The server is never deleted without an explicit yes; when the
// prompt cannot be answered (non-interactive run, prompt error) the server
// is kept and its ID reported so it can be removed manually.
//
// The prompt runs on a context detached from cancellation so that an
// interrupt which aborted the workflow does not also swallow the cleanup
// question.
func (c *Cleanup) Offer(pctx *Context) bool {
	instance := pctx.State.Instance
	if instance == nil {
		return false
	}

	promptCtx := context.WithoutCancel(pctx)

	confirmed := false
	if c.Prompter != nil {
		var err error
		confirmed, err = c.Prompter.Confirm(promptCtx,
			fmt.Sprintf("Delete server %q?", instance.Name),
			fmt.Sprintf("Provisioning failed but server %s (ID %d) was created and may incur charges.", instance.Name, instance.ID))
		if err != nil {
			pctx.Warnf("cleanup prompt failed: %v", err)
		}
	}

	if !confirmed {
		pctx.Observer.Printf("keeping server %s (ID %d); delete it with 'llamaup destroy' or via the Hetzner console", instance.Name, instance.ID)
		return false
	}

	if err := pctx.Cloud.DeleteServer(promptCtx, instance.ID); err != nil {
		pctx.Warnf("failed to delete server %s (ID %d): %v; delete it manually", instance.Name, instance.ID, err)
		return false
	}

	if pctx.State.SSHKeyID != 0 {
		if err := pctx.Cloud.DeleteSSHKey(promptCtx, pctx.State.SSHKeyID); err != nil {
			pctx.Warnf("failed to delete SSH key %d: %v", pctx.State.SSHKeyID, err)
		}
	}

	pctx.Observer.Printf("server %s (ID %d) deleted", instance.Name, instance.ID)
	return true
}
