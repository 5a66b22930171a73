package ssh

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/llamaup/llamaup/internal/util/keygen"
)

func testKey(t *testing.T) []byte {
	t.Helper()
	kp, err := keygen.GenerateKeyPair("test")
	require.NoError(t, err)
	return kp.PrivateKey
}

func TestNewClient_Validation(t *testing.T) {
	t.Parallel()
	key := testKey(t)

	tests := []struct {
		name    string
		cfg     Config
		wantErr string
	}{
		{"missing host", Config{User: "root", PrivateKey: key}, "host cannot be empty"},
		{"missing user", Config{Host: "h", PrivateKey: key}, "user cannot be empty"},
		{"missing key", Config{Host: "h", User: "root"}, "private key cannot be empty"},
		{"garbage key", Config{Host: "h", User: "root", PrivateKey: []byte("not a key")}, "failed to parse private key"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := NewClient(tt.cfg)
			assert.ErrorContains(t, err, tt.wantErr)
		})
	}
}

func TestNewClient_Defaults(t *testing.T) {
	t.Parallel()
	c, err := NewClient(Config{Host: "203.0.113.7", User: "root", PrivateKey: testKey(t)})
	require.NoError(t, err)

	assert.Equal(t, defaultPort, c.config.Port)
	assert.Equal(t, defaultDialTimeout, c.config.DialTimeout)
	assert.NotNil(t, c.config.HostKeyCallback)
}

func TestExecute_UnreachableHost(t *testing.T) {
	t.Parallel()
	// TEST-NET-1 address, nothing listens there.
	c, err := NewClient(Config{
		Host:        "192.0.2.1",
		User:        "root",
		PrivateKey:  testKey(t),
		DialTimeout: 50 * time.Millisecond,
	})
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 200*time.Millisecond)
	defer cancel()

	_, err = c.Execute(ctx, "true")
	assert.Error(t, err)
}
