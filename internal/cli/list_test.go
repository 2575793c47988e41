package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/shinji-kodama/devenv/internal/model"
)

// TestFormatModulesList verifies the text-table rendering of module
// lists, including the "-" placeholder for none.
func TestFormatModulesList(t *testing.T) {
	tests := []struct {
		name    string
		modules []string
		want    string
	}{
		{name: "empty list", modules: nil, want: "-"},
		{name: "single module", modules: []string{"mise"}, want: "mise"},
		{name: "multiple modules keep order", modules: []string{"claude-code", "apt-updates"}, want: "claude-code,apt-updates"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatModulesList(tt.modules))
		})
	}
}

// TestTitleStatus verifies the capitalized status words used in text
// output.
func TestTitleStatus(t *testing.T) {
	assert.Equal(t, "Created", titleStatus(model.FileCreated))
	assert.Equal(t, "Updated", titleStatus(model.FileUpdated))
}
