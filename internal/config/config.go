// Package config loads ambient runtime settings using koanf.
//
// Only operational concerns live here. The quote catalog, the load delay and
// the mounted page variant are fixed at build time.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// EnvPrefix prefixes every environment override, e.g. QUOTEPAGE_LOG_LEVEL.
const EnvPrefix = "QUOTEPAGE_"

// Default configuration values.
const (
	DefaultLogPath           = "quotepage.log"
	DefaultLogFileMaxSizeMB  = 10
	DefaultLogFileMaxBackups = 3
	DefaultLogFileMaxAgeDays = 28
	DefaultServiceName       = "quotepage"
)

// Config is the root configuration structure.
type Config struct {
	Log       LogConfig       `koanf:"log"`
	Telemetry TelemetryConfig `koanf:"telemetry"`
}

// LogConfig contains logging settings.
type LogConfig struct {
	Level string        `koanf:"level" validate:"required,oneof=debug info warn error"`
	File  LogFileConfig `koanf:"file"`
}

// LogFileConfig contains rolling log file settings.
type LogFileConfig struct {
	Path       string `koanf:"path"        validate:"required"`
	MaxSizeMB  int    `koanf:"max_size"    validate:"min=1,max=1024"`
	MaxBackups int    `koanf:"max_backups" validate:"min=0,max=100"`
	MaxAgeDays int    `koanf:"max_age"     validate:"min=0,max=365"`
}

// TelemetryConfig contains OpenTelemetry settings. An empty Endpoint
// disables tracing.
type TelemetryConfig struct {
	Endpoint    string `koanf:"endpoint"     validate:"omitempty,hostname_port"`
	ServiceName string `koanf:"service_name" validate:"required"`
}

// defaults returns the default configuration values.
func defaults() map[string]any {
	return map[string]any{
		"log.level":            "info",
		"log.file.path":        DefaultLogPath,
		"log.file.max_size":    DefaultLogFileMaxSizeMB,
		"log.file.max_backups": DefaultLogFileMaxBackups,
		"log.file.max_age":     DefaultLogFileMaxAgeDays,

		"telemetry.endpoint":     "",
		"telemetry.service_name": DefaultServiceName,
	}
}

// envKeys maps environment variable names to config keys, e.g.
// QUOTEPAGE_LOG_FILE_MAX_SIZE → log.file.max_size.
func envKeys() map[string]string {
	keys := make(map[string]string)
	for k := range defaults() {
		name := EnvPrefix + strings.ToUpper(strings.ReplaceAll(k, ".", "_"))
		keys[name] = k
	}
	return keys
}

// Load loads configuration with the following precedence (highest to lowest):
//  1. Environment variables (QUOTEPAGE_ prefix)
//  2. The YAML file at path, if path is non-empty
//  3. Default values
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(confmap.Provider(defaults(), "."), nil); err != nil {
		return nil, fmt.Errorf("loading defaults: %w", err)
	}

	if path != "" {
		if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("config file %q does not exist", path)
		}
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("loading config file %q: %w", path, err)
		}
	}

	keys := envKeys()
	err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		return keys[s] // unknown variables map to "" and are skipped
	}), nil)
	if err != nil {
		return nil, fmt.Errorf("loading env vars: %w", err)
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}
	return &cfg, nil
}
