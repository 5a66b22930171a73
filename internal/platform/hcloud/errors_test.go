package hcloud

import (
	"errors"
	"fmt"
	"testing"

	"github.com/hetznercloud/hcloud-go/v2/hcloud"
	"github.com/stretchr/testify/assert"
)

func apiErr(code hcloud.ErrorCode) error {
	return hcloud.Error{Code: code, Message: string(code)}
}

func TestIsCreateFatal(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"nil", nil, false},
		{"invalid input", apiErr(hcloud.ErrorCodeInvalidInput), true},
		{"invalid server type", apiErr(hcloud.ErrorCodeInvalidServerType), true},
		{"out of capacity", apiErr(hcloud.ErrorCodeResourceUnavailable), true},
		{"limit exceeded", apiErr(hcloud.ErrorCodeResourceLimitExceeded), true},
		{"not found", apiErr(hcloud.ErrorCodeNotFound), true},
		{"rate limited", apiErr(hcloud.ErrorCodeRateLimitExceeded), false},
		{"locked", apiErr(hcloud.ErrorCodeLocked), false},
		{"plain error", errors.New("boom"), false},
		{"wrapped", fmt.Errorf("create: %w", apiErr(hcloud.ErrorCodeInvalidInput)), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, isCreateFatal(tt.err))
		})
	}
}

func TestIsNotFound(t *testing.T) {
	t.Parallel()
	assert.True(t, IsNotFound(apiErr(hcloud.ErrorCodeNotFound)))
	assert.False(t, IsNotFound(apiErr(hcloud.ErrorCodeConflict)))
	assert.False(t, IsNotFound(nil))
}

func TestProvisionError(t *testing.T) {
	t.Parallel()
	inner := errors.New("out of capacity")
	err := &ProvisionError{Reason: "server create request failed", Err: inner}

	assert.Contains(t, err.Error(), "provisioning rejected")
	assert.Contains(t, err.Error(), "out of capacity")
	assert.ErrorIs(t, err, inner)

	wrapped := fmt.Errorf("create stage: %w", err)
	assert.True(t, IsProvisionError(wrapped))
	assert.False(t, IsProvisionError(inner))

	bare := &ProvisionError{Reason: "create response lacks a server identifier"}
	assert.Equal(t, "provisioning rejected: create response lacks a server identifier", bare.Error())
}
