package commands

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootRegistersCommands(t *testing.T) {
	root := Root()

	expected := []string{"init", "up", "status", "cost", "destroy", "version", "completion"}
	for _, name := range expected {
		found := false
		for _, cmd := range root.Commands() {
			if cmd.Name() == name {
				found = true
				break
			}
		}
		assert.True(t, found, "command %q not registered", name)
	}
}

func TestUpHasConfigFlag(t *testing.T) {
	cmd := Up()
	flag := cmd.Flags().Lookup("config")
	require.NotNil(t, flag)
	assert.Equal(t, "c", flag.Shorthand)
}

func TestDestroyHasForceFlag(t *testing.T) {
	cmd := Destroy()
	require.NotNil(t, cmd.Flags().Lookup("force"))
}

func TestVersionOutputUsesSetInfo(t *testing.T) {
	SetVersionInfo("1.2.3", "abc", "today")
	assert.Equal(t, "1.2.3", version)
	assert.Equal(t, "abc", commit)
	assert.Equal(t, "today", date)
}
