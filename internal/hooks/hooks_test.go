package hooks

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shinji-kodama/devenv/internal/model"
)

// writeHook creates a hook script under <configDir>/hooks with the
// given mode.
func writeHook(t *testing.T, configDir, name string, mode os.FileMode) {
	t.Helper()
	dir := filepath.Join(configDir, DirName)
	require.NoError(t, os.MkdirAll(dir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("#!/bin/sh\necho hi\n"), mode))
}

// TestDiscover_BothHooks verifies executable scripts become commands
// with workspace-relative paths.
func TestDiscover_BothHooks(t *testing.T) {
	configDir := t.TempDir()
	writeHook(t, configDir, PostCreate, 0o755)
	writeHook(t, configDir, PostStart, 0o755)

	set, err := Discover(configDir, false)
	require.NoError(t, err)

	require.NotNil(t, set.PostCreate)
	assert.Equal(t, "./.devcontainer/hooks/post-create", set.PostCreate.Cmd)
	assert.Equal(t, ".", set.PostCreate.WorkingDirectory)

	require.NotNil(t, set.PostStart)
	assert.Equal(t, "./.devcontainer/hooks/post-start", set.PostStart.Cmd)
}

// TestDiscover_Absent verifies missing scripts yield an empty set, not
// an error.
func TestDiscover_Absent(t *testing.T) {
	set, err := Discover(t.TempDir(), false)
	require.NoError(t, err)
	assert.Nil(t, set.PostCreate)
	assert.Nil(t, set.PostStart)
}

// TestDiscover_NotExecutable verifies a script without the executable
// bit is rejected with a pointed message.
func TestDiscover_NotExecutable(t *testing.T) {
	configDir := t.TempDir()
	writeHook(t, configDir, PostCreate, 0o644)

	_, err := Discover(configDir, false)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not executable")

	cliErr, ok := err.(*model.CLIError)
	require.True(t, ok)
	assert.Equal(t, model.ExitInvalidConfig, cliErr.Code)
}

// TestDiscover_Disabled verifies the kill switch skips discovery even
// when scripts exist.
func TestDiscover_Disabled(t *testing.T) {
	configDir := t.TempDir()
	writeHook(t, configDir, PostCreate, 0o755)

	set, err := Discover(configDir, true)
	require.NoError(t, err)
	assert.Nil(t, set.PostCreate)
	assert.Nil(t, set.PostStart)
}

// TestDiscover_DirectoryRejected verifies a directory where a script
// should be is flagged.
func TestDiscover_DirectoryRejected(t *testing.T) {
	configDir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(configDir, DirName, PostStart), 0o755))

	_, err := Discover(configDir, false)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "directory")
}
