package config

import (
	"context"
	"os"
	"path/filepath"

	"github.com/rshade/mindful/internal/logging"
)

// EnvConfigPath names an explicit config file.
const EnvConfigPath = "MINDFUL_CONFIG"

// ResolvePath picks the config file for this invocation. It checks, in order:
//  1. flagValue (--config)
//  2. MINDFUL_CONFIG
//  3. DefaultPath()
//
// The returned path is absolute when it can be made so. The file need not
// exist.
func ResolvePath(ctx context.Context, flagValue string) string {
	path := flagValue
	if path == "" {
		path = os.Getenv(EnvConfigPath)
	}
	if path == "" {
		return DefaultPath()
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		logger := logging.FromContext(ctx)
		logger.Warn().
			Str("component", "config").
			Err(err).
			Str("path", path).
			Msg("failed to resolve absolute path for config file")
		return path
	}
	return abs
}

// LoadOrDefault loads the config at path and falls back to defaults, with a
// warning, when the file is malformed.
func LoadOrDefault(ctx context.Context, path string) *Config {
	cfg, err := Load(path)
	if err == nil {
		return cfg
	}

	logger := logging.FromContext(ctx)
	logger.Warn().
		Str("component", "config").
		Str("operation", "load_config").
		Err(err).
		Str("config_path", path).
		Msg("failed to load config, using defaults")

	cfg = Default()
	cfg.SetConfigPath(path)
	cfg.ApplyEnv(os.LookupEnv)
	return cfg
}
