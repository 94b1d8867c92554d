package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "quotepage.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, DefaultLogPath, cfg.Log.File.Path)
	assert.Equal(t, DefaultLogFileMaxSizeMB, cfg.Log.File.MaxSizeMB)
	assert.Equal(t, DefaultLogFileMaxBackups, cfg.Log.File.MaxBackups)
	assert.Equal(t, DefaultLogFileMaxAgeDays, cfg.Log.File.MaxAgeDays)
	assert.Empty(t, cfg.Telemetry.Endpoint)
	assert.Equal(t, DefaultServiceName, cfg.Telemetry.ServiceName)
	assert.NoError(t, cfg.Validate())
}

func TestLoad_File(t *testing.T) {
	path := writeFile(t, `
log:
  level: debug
  file:
    path: /tmp/q.log
    max_size: 5
telemetry:
  endpoint: localhost:4318
`)
	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "/tmp/q.log", cfg.Log.File.Path)
	assert.Equal(t, 5, cfg.Log.File.MaxSizeMB)
	assert.Equal(t, DefaultLogFileMaxBackups, cfg.Log.File.MaxBackups)
	assert.Equal(t, "localhost:4318", cfg.Telemetry.Endpoint)
	assert.NoError(t, cfg.Validate())
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	path := writeFile(t, "log:\n  level: debug\n")
	t.Setenv("QUOTEPAGE_LOG_LEVEL", "error")
	t.Setenv("QUOTEPAGE_LOG_FILE_MAX_SIZE", "42")
	t.Setenv("QUOTEPAGE_TELEMETRY_SERVICE_NAME", "quotes-dev")
	t.Setenv("QUOTEPAGE_UNKNOWN_KEY", "ignored")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "error", cfg.Log.Level)
	assert.Equal(t, 42, cfg.Log.File.MaxSizeMB)
	assert.Equal(t, "quotes-dev", cfg.Telemetry.ServiceName)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "does not exist")
}

func TestLoad_InvalidYAML(t *testing.T) {
	path := writeFile(t, "log: [unclosed")
	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "loading config file")
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		cfg, err := Load("")
		require.NoError(t, err)
		return cfg
	}

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{name: "bad level", mutate: func(c *Config) { c.Log.Level = "loud" }, wantErr: "log.level must be one of"},
		{name: "empty path", mutate: func(c *Config) { c.Log.File.Path = "" }, wantErr: "log.file.path is required"},
		{name: "size too small", mutate: func(c *Config) { c.Log.File.MaxSizeMB = 0 }, wantErr: "must be at least 1"},
		{name: "bad endpoint", mutate: func(c *Config) { c.Telemetry.Endpoint = "not an endpoint" }, wantErr: "must be host:port"},
		{name: "no service name", mutate: func(c *Config) { c.Telemetry.ServiceName = "" }, wantErr: "telemetry.servicename is required"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(cfg)
			err := cfg.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
