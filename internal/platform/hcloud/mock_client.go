package hcloud

import (
	"context"

	"github.com/hetznercloud/hcloud-go/v2/hcloud"

	"github.com/llamaup/llamaup/internal/util/labels"
)

// MockClient is a func-field mock implementation of CloudClient.
// Unset fields return permissive defaults so tests only stub what they
// assert on.
type MockClient struct {
	CreateServerFunc    func(ctx context.Context, opts CreateOpts) (*Instance, error)
	GetServerStatusFunc func(ctx context.Context, id int64) (hcloud.ServerStatus, error)
	GetServerByNameFunc func(ctx context.Context, name string) (*Instance, error)
	DeleteServerFunc    func(ctx context.Context, id int64) error

	EnsureSSHKeyFunc func(ctx context.Context, name, publicKey string, labels map[string]string) (int64, error)
	GetSSHKeyIDFunc  func(ctx context.Context, name string) (int64, error)
	DeleteSSHKeyFunc func(ctx context.Context, id int64) error
}

var _ CloudClient = (*MockClient)(nil)

// CreateServer mocks server creation.
func (m *MockClient) CreateServer(ctx context.Context, opts CreateOpts) (*Instance, error) {
	if m.CreateServerFunc != nil {
		return m.CreateServerFunc(ctx, opts)
	}
	return &Instance{ID: 1, Name: opts.Name, PublicIP: "192.0.2.10", Status: hcloud.ServerStatusInitializing, Labels: opts.Labels}, nil
}

// GetServerStatus mocks status lookup.
func (m *MockClient) GetServerStatus(ctx context.Context, id int64) (hcloud.ServerStatus, error) {
	if m.GetServerStatusFunc != nil {
		return m.GetServerStatusFunc(ctx, id)
	}
	return hcloud.ServerStatusRunning, nil
}

// GetServerByName mocks lookup by name.
func (m *MockClient) GetServerByName(ctx context.Context, name string) (*Instance, error) {
	if m.GetServerByNameFunc != nil {
		return m.GetServerByNameFunc(ctx, name)
	}
	return &Instance{
		ID: 1, Name: name, PublicIP: "192.0.2.10", Status: hcloud.ServerStatusRunning,
		Labels: labels.ForInstance(name),
	}, nil
}

// DeleteServer mocks server deletion.
func (m *MockClient) DeleteServer(ctx context.Context, id int64) error {
	if m.DeleteServerFunc != nil {
		return m.DeleteServerFunc(ctx, id)
	}
	return nil
}

// EnsureSSHKey mocks key upload.
func (m *MockClient) EnsureSSHKey(ctx context.Context, name, publicKey string, labels map[string]string) (int64, error) {
	if m.EnsureSSHKeyFunc != nil {
		return m.EnsureSSHKeyFunc(ctx, name, publicKey, labels)
	}
	return 100, nil
}

// GetSSHKeyID mocks key lookup.
func (m *MockClient) GetSSHKeyID(ctx context.Context, name string) (int64, error) {
	if m.GetSSHKeyIDFunc != nil {
		return m.GetSSHKeyIDFunc(ctx, name)
	}
	return 100, nil
}

// DeleteSSHKey mocks key deletion.
func (m *MockClient) DeleteSSHKey(ctx context.Context, id int64) error {
	if m.DeleteSSHKeyFunc != nil {
		return m.DeleteSSHKeyFunc(ctx, id)
	}
	return nil
}
