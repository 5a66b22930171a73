package hcloud

import (
	"errors"
	"fmt"

	"github.com/hetznercloud/hcloud-go/v2/hcloud"
)

// ProvisionError reports that the control plane rejected server creation or
// returned a response without a usable identifier or address. No instance
// exists when this error is returned.
type ProvisionError struct {
	Reason string
	Err    error
}

func (e *ProvisionError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("provisioning rejected: %s: %v", e.Reason, e.Err)
	}
	return fmt.Sprintf("provisioning rejected: %s", e.Reason)
}

func (e *ProvisionError) Unwrap() error { return e.Err }

// IsProvisionError reports whether err is (or wraps) a ProvisionError.
func IsProvisionError(err error) bool {
	var pe *ProvisionError
	return errors.As(err, &pe)
}

// isCreateFatal checks if a create error cannot be cured by retrying:
// invalid parameters and capacity exhaustion are rejected outright.
func isCreateFatal(err error) bool {
	return isHCloudErrorCode(err,
		hcloud.ErrorCodeNotFound,
		hcloud.ErrorCodeInvalidInput,
		hcloud.ErrorCodeInvalidServerType,
		hcloud.ErrorCodeResourceUnavailable,
		hcloud.ErrorCodeResourceLimitExceeded,
	)
}

// isHCloudErrorCode checks if the error is an hcloud API error with one of
// the given codes.
func isHCloudErrorCode(err error, codes ...hcloud.ErrorCode) bool {
	if err == nil {
		return false
	}

	var hcloudErr hcloud.Error
	if errors.As(err, &hcloudErr) {
		for _, code := range codes {
			if hcloudErr.Code == code {
				return true
			}
		}
	}
	return false
}

// IsNotFound checks if an error indicates a resource was not found.
func IsNotFound(err error) bool {
	return isHCloudErrorCode(err, hcloud.ErrorCodeNotFound)
}
