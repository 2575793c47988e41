package docker

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestBuildRunArgs verifies the fixed label order and formatting. The
// serializer embeds this output verbatim, so any change here changes
// every generated file.
func TestBuildRunArgs(t *testing.T) {
	args := BuildRunArgs("My Project", []string{"apt-updates", "mise"})

	assert.Equal(t, []string{
		"--label=com.devenv.managed=true",
		"--label=com.devenv.project=My Project",
		"--label=com.devenv.modules=apt-updates,mise",
	}, args)
}

// TestBuildRunArgs_NoModules verifies the modules label is still
// emitted (with an empty value) when no modules are configured, keeping
// the output shape stable.
func TestBuildRunArgs_NoModules(t *testing.T) {
	args := BuildRunArgs("demo", nil)

	assert.Len(t, args, 3)
	assert.Equal(t, "--label=com.devenv.modules=", args[2])
}

// TestBuildRunArgs_Deterministic verifies that two calls with the same
// inputs produce identical output.
func TestBuildRunArgs_Deterministic(t *testing.T) {
	first := BuildRunArgs("demo", []string{"mise"})
	second := BuildRunArgs("demo", []string{"mise"})
	assert.Equal(t, first, second)
}

// TestParseModulesLabel verifies the round trip from the csv label
// value back to a name list, including the empty-value case.
func TestParseModulesLabel(t *testing.T) {
	assert.Equal(t, []string{"apt-updates", "mise"}, ParseModulesLabel("apt-updates,mise"))
	assert.Nil(t, ParseModulesLabel(""))
}
