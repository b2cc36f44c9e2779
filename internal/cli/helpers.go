package cli

import (
	"fmt"

	"github.com/glorpus-work/authsim/pkg/config"
)

// These variables will be set by the main package
var (
	ConfigPath *string
	LogLevel   *string
)

// loadConfig loads the configuration honoring the global --config and
// --log-level flags.
func loadConfig() (*config.Config, error) {
	configPath := ""
	if ConfigPath != nil {
		configPath = *ConfigPath
	}

	cfg, err := config.LoadConfigOrDefault(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	if LogLevel != nil && *LogLevel != "" {
		cfg.Settings.LogLevel = *LogLevel
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
