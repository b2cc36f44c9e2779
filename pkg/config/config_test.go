package config

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/glorpus-work/authsim/pkg/errors"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, "state", cfg.Settings.StateDir)
	assert.Equal(t, DefaultAccountsFile, cfg.Settings.AccountsFile)
	assert.Equal(t, DefaultAuditFile, cfg.Settings.AuditFile)
	assert.Equal(t, DefaultGroupsFile, cfg.Settings.GroupsFile)
	assert.Equal(t, DefaultFilesFile, cfg.Settings.FilesFile)
	assert.Equal(t, "info", cfg.Settings.LogLevel)
	assert.Equal(t, CurrentFormatVersion, cfg.Settings.FormatVersion)
	require.NoError(t, cfg.Validate())
}

func TestLoadConfig(t *testing.T) {
	t.Run("partial file overlays the defaults", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.yaml")
		require.NoError(t, os.WriteFile(path, []byte(`
settings:
  state_dir: /var/lib/authsim
  log_level: debug
`), 0o644))

		cfg, err := LoadConfig(path)
		require.NoError(t, err)
		assert.Equal(t, "/var/lib/authsim", cfg.Settings.StateDir)
		assert.Equal(t, "debug", cfg.Settings.LogLevel)
		// Untouched fields keep their defaults.
		assert.Equal(t, DefaultAccountsFile, cfg.Settings.AccountsFile)
		assert.Equal(t, CurrentFormatVersion, cfg.Settings.FormatVersion)
	})

	t.Run("empty path", func(t *testing.T) {
		_, err := LoadConfig("")
		assert.ErrorIs(t, err, errors.ErrEmptyConfigPath)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
		assert.Error(t, err)
	})

	t.Run("malformed yaml", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.yaml")
		require.NoError(t, os.WriteFile(path, []byte("settings: ["), 0o644))

		_, err := LoadConfig(path)
		assert.ErrorIs(t, err, errors.ErrConfigParse)
	})
}

func TestLoadConfigOrDefault(t *testing.T) {
	t.Run("empty path falls back to defaults", func(t *testing.T) {
		cfg, err := LoadConfigOrDefault("")
		require.NoError(t, err)
		assert.Equal(t, DefaultConfig(), cfg)
	})

	t.Run("missing file falls back to defaults", func(t *testing.T) {
		cfg, err := LoadConfigOrDefault(filepath.Join(t.TempDir(), "nope.yaml"))
		require.NoError(t, err)
		assert.Equal(t, DefaultConfig(), cfg)
	})

	t.Run("existing file is loaded", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.yaml")
		require.NoError(t, os.WriteFile(path, []byte("settings:\n  log_level: warn\n"), 0o644))

		cfg, err := LoadConfigOrDefault(path)
		require.NoError(t, err)
		assert.Equal(t, "warn", cfg.Settings.LogLevel)
	})
}

func TestSaveConfig(t *testing.T) {
	t.Run("roundtrip", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "nested", "config.yaml")

		cfg := DefaultConfig()
		cfg.Settings.StateDir = "/tmp/authsim-state"
		cfg.Settings.HookScript = "post.tengo"
		require.NoError(t, cfg.SaveConfig(path))

		loaded, err := LoadConfig(path)
		require.NoError(t, err)
		assert.Equal(t, cfg, loaded)
	})

	t.Run("empty path", func(t *testing.T) {
		assert.ErrorIs(t, DefaultConfig().SaveConfig(""), errors.ErrEmptyConfigPath)
	})
}

func TestWriteTo(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, DefaultConfig().WriteTo(&buf))
	assert.Contains(t, buf.String(), "accounts_file: accounts.txt")
	assert.Contains(t, buf.String(), "log_level: info")
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr error
	}{
		{
			name:    "defaults are valid",
			mutate:  func(c *Config) {},
			wantErr: nil,
		},
		{
			name:    "bad log level",
			mutate:  func(c *Config) { c.Settings.LogLevel = "verbose" },
			wantErr: errors.ErrInvalidLogLevel,
		},
		{
			name:    "empty table name",
			mutate:  func(c *Config) { c.Settings.GroupsFile = "" },
			wantErr: errors.ErrConfigValidation,
		},
		{
			name:    "duplicate table names",
			mutate:  func(c *Config) { c.Settings.AuditFile = c.Settings.AccountsFile },
			wantErr: errors.ErrConfigValidation,
		},
		{
			name:    "unparseable format version",
			mutate:  func(c *Config) { c.Settings.FormatVersion = "one" },
			wantErr: errors.ErrFormatVersion,
		},
		{
			name:    "format version out of range",
			mutate:  func(c *Config) { c.Settings.FormatVersion = "2.0" },
			wantErr: errors.ErrFormatVersion,
		},
		{
			name:    "newer minor format accepted",
			mutate:  func(c *Config) { c.Settings.FormatVersion = "1.3" },
			wantErr: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)

			err := cfg.Validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}

func TestProtectedNames(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t,
		[]string{"accounts.txt", "audit.log", "groups.txt", "files.txt"},
		cfg.ProtectedNames())
}

func TestTablePath(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Settings.StateDir = "/srv/authsim"
	assert.Equal(t, filepath.Join("/srv/authsim", "audit.log"), cfg.TablePath("audit.log"))
}
