package config

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// GlobalConfig holds the configuration for the current invocation.
var GlobalConfig *Config        //nolint:gochecknoglobals // Singleton pattern for configuration
var globalConfigMu sync.RWMutex //nolint:gochecknoglobals // Protects GlobalConfig

// SetGlobalConfig replaces the invocation's configuration.
func SetGlobalConfig(cfg *Config) {
	globalConfigMu.Lock()
	defer globalConfigMu.Unlock()
	GlobalConfig = cfg
}

// ResetGlobalConfigForTest resets the global config for testing purposes.
func ResetGlobalConfigForTest() {
	SetGlobalConfig(nil)
}

// GetGlobalConfig returns the invocation's configuration, initializing it
// with defaults on first use.
func GetGlobalConfig() *Config {
	globalConfigMu.Lock()
	defer globalConfigMu.Unlock()

	if GlobalConfig == nil {
		GlobalConfig = New()
	}
	return GlobalConfig
}

// GetOutputDirectory returns the configured report directory.
func GetOutputDirectory() string {
	return GetGlobalConfig().Output.Directory
}

// GetConfigDir returns the carbonreport configuration directory:
// $CARBONREPORT_HOME if set, otherwise ~/.carbonreport. A nil lookupEnv
// reads the process environment.
func GetConfigDir(lookupEnv func(string) (string, bool)) (string, error) {
	if lookupEnv == nil {
		lookupEnv = os.LookupEnv
	}
	if home, ok := lookupEnv(EnvHome); ok && home != "" {
		return home, nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user home directory: %w", err)
	}
	return filepath.Join(homeDir, ".carbonreport"), nil
}

// EnsureLogDir creates the parent directory of the configured log file.
func EnsureLogDir(cfg *Config) error {
	if cfg.Logging.File == "" {
		return nil
	}
	logDir := filepath.Dir(cfg.Logging.File)
	if err := os.MkdirAll(logDir, 0o700); err != nil {
		return fmt.Errorf("failed to create log directory %q: %w", logDir, err)
	}
	return nil
}
