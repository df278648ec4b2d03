package config

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// EnvHome overrides the configuration directory.
const EnvHome = "CARBONWISE_HOME"

// The process-wide configuration is built lazily by New on first use.
//
//nolint:gochecknoglobals // Process-wide configuration.
var (
	globalMu  sync.Mutex
	globalCfg *Config
)

// GetGlobalConfig returns the process configuration, building it on the
// first call.
func GetGlobalConfig() *Config {
	globalMu.Lock()
	defer globalMu.Unlock()
	if globalCfg == nil {
		globalCfg = New()
	}
	return globalCfg
}

// ResetGlobalConfigForTest drops the cached configuration so the next
// GetGlobalConfig rereads the file and environment.
func ResetGlobalConfigForTest() {
	globalMu.Lock()
	globalCfg = nil
	globalMu.Unlock()
}

// GetDefaultOutputFormat is the output.default_format setting.
func GetDefaultOutputFormat() string {
	return GetGlobalConfig().Output.DefaultFormat
}

// GetDefaults returns a copy of the analysis defaults.
func GetDefaults() DefaultsConfig {
	return GetGlobalConfig().Defaults
}

// GetConfigDir resolves the configuration directory: $CARBONWISE_HOME,
// else ~/.carbonwise.
func GetConfigDir() (string, error) {
	if dir := os.Getenv(EnvHome); dir != "" {
		return dir, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolving home directory: %w", err)
	}
	return filepath.Join(home, ".carbonwise"), nil
}

// GetConfigFilePath is config.yaml inside GetConfigDir.
func GetConfigFilePath() (string, error) {
	dir, err := GetConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, configFileName), nil
}

// EnsureConfigDir creates the configuration directory with owner-only
// permissions.
func EnsureConfigDir() error {
	dir, err := GetConfigDir()
	if err != nil {
		return err
	}
	return os.MkdirAll(dir, 0o700)
}

// EnsureLogDir creates the directory of logging.file. Logging to stderr
// needs nothing.
func EnsureLogDir() error {
	file := GetGlobalConfig().Logging.File
	if file == "" {
		return nil
	}
	dir := filepath.Dir(file)
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return fmt.Errorf("creating log directory %s: %w", dir, err)
	}
	return nil
}
