package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, "text", cfg.Logging.Format)
	assert.Equal(t, "file", cfg.Logging.Output)
	assert.Equal(t, DefaultBaseDir, cfg.Output.BaseDir)
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name        string
		mutate      func(*Config)
		expectError bool
	}{
		{
			name:   "defaults are valid",
			mutate: func(c *Config) {},
		},
		{
			name:        "invalid log level",
			mutate:      func(c *Config) { c.Logging.Level = "verbose" },
			expectError: true,
		},
		{
			name:        "invalid log format",
			mutate:      func(c *Config) { c.Logging.Format = "xml" },
			expectError: true,
		},
		{
			name:        "invalid log output",
			mutate:      func(c *Config) { c.Logging.Output = "syslog" },
			expectError: true,
		},
		{
			name:        "empty base dir",
			mutate:      func(c *Config) { c.Output.BaseDir = "" },
			expectError: true,
		},
		{
			name:   "json to console is valid",
			mutate: func(c *Config) { c.Logging.Format = "json"; c.Logging.Output = "console" },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)

			err := cfg.validate()
			if tt.expectError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestLoadFromFile(t *testing.T) {
	tempDir := t.TempDir()
	configPath := filepath.Join(tempDir, "piigen.yml")

	content := `
logging:
  level: debug
  format: json
output:
  base_dir: /data/fixtures
`
	require.NoError(t, os.WriteFile(configPath, []byte(content), 0644))

	cfg, err := loadFromFile(configPath)
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "json", cfg.Logging.Format)
	assert.Equal(t, "/data/fixtures", cfg.Output.BaseDir)
}

func TestLoadFromFile_Malformed(t *testing.T) {
	tempDir := t.TempDir()
	configPath := filepath.Join(tempDir, "piigen.yml")
	require.NoError(t, os.WriteFile(configPath, []byte("logging: ["), 0644))

	_, err := loadFromFile(configPath)
	assert.Error(t, err)
}

func TestMergeConfigs_FileFillsDefaults(t *testing.T) {
	fileCfg := Config{}
	fileCfg.Logging.Level = "debug"
	fileCfg.Output.BaseDir = "/custom/base"

	envCfg := *Default()

	merged := mergeConfigs(fileCfg, envCfg)

	assert.Equal(t, "debug", merged.Logging.Level)
	assert.Equal(t, "/custom/base", merged.Output.BaseDir)
	// Untouched fields keep defaults
	assert.Equal(t, "text", merged.Logging.Format)
}

func TestMergeConfigs_EnvWins(t *testing.T) {
	fileCfg := Config{}
	fileCfg.Logging.Level = "debug"

	envCfg := *Default()
	envCfg.Logging.Level = "error" // explicitly set via environment

	merged := mergeConfigs(fileCfg, envCfg)
	assert.Equal(t, "error", merged.Logging.Level)
}
