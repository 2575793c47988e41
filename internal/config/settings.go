package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/caarlos0/env/v11"
)

// Settings holds process-level configuration sourced from environment
// variables. These tune where devenv looks for machine-local state;
// everything project-specific lives in the YAML documents instead.
type Settings struct {
	// UserConfigDir is the directory holding the user config and is
	// normally derived from the OS config dir (~/.config/devenv on
	// Linux). DEVENV_CONFIG_DIR overrides it, which the tests also use
	// to isolate themselves from the developer's real config.
	UserConfigDir string `env:"DEVENV_CONFIG_DIR"`

	// DisableHooks skips hook script discovery entirely when set.
	DisableHooks bool `env:"DEVENV_DISABLE_HOOKS"`
}

// LoadSettings parses the environment and fills in platform defaults
// for anything not overridden.
func LoadSettings() (Settings, error) {
	var s Settings
	if err := env.Parse(&s); err != nil {
		return Settings{}, fmt.Errorf("failed to parse environment settings: %w", err)
	}

	if s.UserConfigDir == "" {
		base, err := os.UserConfigDir()
		if err != nil {
			return Settings{}, fmt.Errorf("failed to determine user config directory: %w", err)
		}
		s.UserConfigDir = filepath.Join(base, "devenv")
	}

	return s, nil
}

// UserConfigPath returns the full path of the user config document.
func (s Settings) UserConfigPath() string {
	return filepath.Join(s.UserConfigDir, "config.yaml")
}
