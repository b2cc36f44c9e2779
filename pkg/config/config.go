// Package config provides configuration management for authsim: the
// state directory, the four reserved table file names, logging, and
// the optional post-run hook and snapshot bundle. Configuration is
// read from a YAML file with sensible defaults.
package config

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/hashicorp/go-version"
	"gopkg.in/yaml.v3"

	"github.com/glorpus-work/authsim/pkg/errors"
	"github.com/glorpus-work/authsim/pkg/fsutil"
)

// Config represents the application configuration.
type Config struct {
	Settings Settings `yaml:"settings"`
}

// Settings represents general application settings.
type Settings struct {
	// StateDir is where the tables, the audit log and the user files
	// live.
	StateDir string `yaml:"state_dir,omitempty"`

	// The four reserved table file names. No user-facing command may
	// target them.
	AccountsFile string `yaml:"accounts_file"`
	AuditFile    string `yaml:"audit_file"`
	GroupsFile   string `yaml:"groups_file"`
	FilesFile    string `yaml:"files_file"`

	// LogLevel controls the process log (error, warn, info, debug).
	// The audit trail is unaffected.
	LogLevel string `yaml:"log_level"`

	// HookScript is an optional Tengo script run after the replay.
	HookScript string `yaml:"hook_script,omitempty"`

	// BundlePath, when set, receives a tar.gz archive of the state
	// directory after a successful replay.
	BundlePath string `yaml:"bundle_path,omitempty"`

	// FormatVersion is the on-disk state format version.
	FormatVersion string `yaml:"format_version"`
}

// CurrentFormatVersion is the state format this build writes.
const CurrentFormatVersion = "1.0"

// formatVersionConstraint is the range of state formats this build
// can work with.
const formatVersionConstraint = ">= 1.0, < 2.0"

// Default table file names.
const (
	DefaultAccountsFile = "accounts.txt"
	DefaultAuditFile    = "audit.log"
	DefaultGroupsFile   = "groups.txt"
	DefaultFilesFile    = "files.txt"
)

// DefaultConfig returns a configuration with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Settings: Settings{
			StateDir:      "state",
			AccountsFile:  DefaultAccountsFile,
			AuditFile:     DefaultAuditFile,
			GroupsFile:    DefaultGroupsFile,
			FilesFile:     DefaultFilesFile,
			LogLevel:      "info",
			FormatVersion: CurrentFormatVersion,
		},
	}
}

// LoadConfig loads a configuration from the given YAML file.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, errors.ErrEmptyConfigPath
	}

	file, err := os.Open(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("failed to open config file %s: %w", path, err)
	}
	defer func() { _ = file.Close() }()

	return parseConfigFromReader(file)
}

// LoadConfigOrDefault loads the config at path, or returns the
// default configuration when path is empty or no file exists there.
func LoadConfigOrDefault(path string) (*Config, error) {
	if path == "" {
		return DefaultConfig(), nil
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return DefaultConfig(), nil
	}
	return LoadConfig(path)
}

// SaveConfig writes the configuration to the given path atomically,
// creating the directory if needed.
func (c *Config) SaveConfig(path string) error {
	if path == "" {
		return errors.ErrEmptyConfigPath
	}

	if err := fsutil.EnsureDir(filepath.Dir(path)); err != nil {
		return errors.Wrap(errors.ErrConfigDirectory, err.Error())
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return errors.Wrap(errors.ErrConfigEncode, err.Error())
	}

	if err := fsutil.WriteFileAtomic(path, data); err != nil {
		return fmt.Errorf("failed to write config file %s: %w", path, err)
	}
	return nil
}

// WriteTo renders the configuration as YAML to w.
func (c *Config) WriteTo(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(c); err != nil {
		return errors.Wrap(errors.ErrConfigEncode, err.Error())
	}
	return enc.Close()
}

// Validate checks the configuration for consistency.
func (c *Config) Validate() error {
	s := &c.Settings

	switch s.LogLevel {
	case "error", "warn", "info", "debug":
	default:
		return errors.ErrInvalidLogLevelWithDetails(s.LogLevel)
	}

	names := []string{s.AccountsFile, s.AuditFile, s.GroupsFile, s.FilesFile}
	seen := make(map[string]bool, len(names))
	for _, name := range names {
		if name == "" {
			return fmt.Errorf("table file names cannot be empty: %w", errors.ErrConfigValidation)
		}
		if seen[name] {
			return fmt.Errorf("table file name '%s' used twice: %w", name, errors.ErrConfigValidation)
		}
		seen[name] = true
	}

	constraint, err := version.NewConstraint(formatVersionConstraint)
	if err != nil {
		return fmt.Errorf("bad format version constraint: %w", err)
	}
	v, err := version.NewVersion(s.FormatVersion)
	if err != nil {
		return fmt.Errorf("%w: %q", errors.ErrFormatVersion, s.FormatVersion)
	}
	if !constraint.Check(v) {
		return fmt.Errorf("%w: %s (supported: %s)", errors.ErrFormatVersion, s.FormatVersion, formatVersionConstraint)
	}

	return nil
}

// ProtectedNames returns the four reserved file names.
func (c *Config) ProtectedNames() []string {
	return []string{
		c.Settings.AccountsFile,
		c.Settings.AuditFile,
		c.Settings.GroupsFile,
		c.Settings.FilesFile,
	}
}

// TablePath returns the path of the named table inside the state
// directory.
func (c *Config) TablePath(name string) string {
	return filepath.Join(c.Settings.StateDir, name)
}

func parseConfigFromReader(reader io.Reader) (*Config, error) {
	data, err := io.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	config := DefaultConfig()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, errors.Wrap(errors.ErrConfigParse, err.Error())
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}
