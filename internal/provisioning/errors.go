package provisioning

import (
	"errors"
	"fmt"
)

// RemoteCommandError reports a failed remote command execution. These are
// transient from the workflow's perspective: the owning poll loop retries
// them until its own budget runs out and never beyond it.
type RemoteCommandError struct {
	Command string
	Err     error
}

func (e *RemoteCommandError) Error() string {
	return fmt.Sprintf("remote command %q failed: %v", e.Command, e.Err)
}

func (e *RemoteCommandError) Unwrap() error { return e.Err }

// IsRemoteCommandError reports whether err is (or wraps) a
// RemoteCommandError.
func IsRemoteCommandError(err error) bool {
	var rce *RemoteCommandError
	return errors.As(err, &rce)
}
