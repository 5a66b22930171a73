package wizard

import "errors"

// Validation errors for the interactive wizard.
var (
	errNameRequired  = errors.New("instance name is required")
	errNameInvalid   = errors.New("instance name must be 1-32 lowercase alphanumeric characters or hyphens, starting and ending with alphanumeric")
	errModelRequired = errors.New("model name is required")
)
