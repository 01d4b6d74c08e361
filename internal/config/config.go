// Package config loads, validates and saves carbonreport settings.
//
// Settings come from ~/.carbonreport/config.yaml (or $CARBONREPORT_HOME),
// an optional overlay file given with --config, and environment variables,
// applied in that order.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/Masterminds/semver/v3"
	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"

	"github.com/gulievsadigg/carbon-emission/internal/emissions"
	"github.com/gulievsadigg/carbon-emission/internal/report"
)

// CurrentVersion is written into new config files.
const CurrentVersion = "1.0.0"

// Environment variables read by the config layer.
const (
	EnvHome      = "CARBONREPORT_HOME"
	EnvLogLevel  = "CARBONREPORT_LOG_LEVEL"
	EnvLogFormat = "CARBONREPORT_LOG_FORMAT"
	EnvOutputDir = "CARBONREPORT_OUTPUT_DIR"
)

// supportedVersions is the range of config file versions this build reads.
const supportedVersions = ">= 1.0.0, < 2.0.0"

// configFileName is the file name inside the config directory.
const configFileName = "config.yaml"

// Config validation errors.
var (
	ErrUnsupportedVersion = errors.New("unsupported config version")
	ErrInvalidVersion     = errors.New("config version is not a semantic version")
	ErrInvalidLogLevel    = errors.New("invalid log level")
	ErrInvalidLogFormat   = errors.New("log format must be 'console' or 'json'")
	ErrNegativeAttempts   = errors.New("input.max_attempts cannot be negative")
)

// Config is the full set of carbonreport settings.
type Config struct {
	Version string            `yaml:"version"`
	Output  OutputConfig      `yaml:"output"`
	Logging LoggingConfig     `yaml:"logging"`
	Factors emissions.Factors `yaml:"factors"`
	Input   InputConfig       `yaml:"input"`

	configPath string
}

// OutputConfig controls where and how reports are written.
type OutputConfig struct {
	// Directory receives the generated documents.
	Directory string `yaml:"directory"`
	// Formats lists document formats: pdf, markdown, json, text.
	Formats []string `yaml:"formats"`
	// Equivalencies adds an EPA equivalency section to reports.
	Equivalencies bool `yaml:"equivalencies"`
}

// LoggingConfig controls diagnostic logging.
type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
	File   string `yaml:"file"`
}

// InputConfig controls interactive input collection.
type InputConfig struct {
	// MaxAttempts caps retries per prompt; 0 means unlimited.
	MaxAttempts int `yaml:"max_attempts"`
}

// New returns a Config holding the defaults, pointed at the default path.
func New() *Config {
	return NewWithEnv(os.LookupEnv)
}

// NewWithEnv is New with the configuration directory resolved through
// lookupEnv.
func NewWithEnv(lookupEnv func(string) (string, bool)) *Config {
	cfg := &Config{
		Version: CurrentVersion,
		Output: OutputConfig{
			Directory:     "reports",
			Formats:       []string{string(report.FormatPDF)},
			Equivalencies: true,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
		Factors: emissions.DefaultFactors(),
	}

	if dir, err := GetConfigDir(lookupEnv); err == nil {
		cfg.configPath = filepath.Join(dir, configFileName)
	}
	return cfg
}

// Load builds a Config from defaults, the global config file (if present),
// the overlay file (if overlayPath is not empty) and the environment.
// A missing global file is not an error; a missing overlay is. lookupEnv
// locates the global file and supplies the overrides.
func Load(overlayPath string, lookupEnv func(string) (string, bool)) (*Config, error) {
	cfg := NewWithEnv(lookupEnv)

	if cfg.configPath != "" {
		if _, err := os.Stat(cfg.configPath); err == nil {
			if err := MergeYAML(cfg, cfg.configPath); err != nil {
				return nil, err
			}
		} else if !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("cannot access config path %s: %w", cfg.configPath, err)
		}
	}

	if overlayPath != "" {
		if err := MergeYAML(cfg, overlayPath); err != nil {
			return nil, err
		}
	}

	if lookupEnv != nil {
		cfg.ApplyEnv(lookupEnv)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// ApplyEnv applies CARBONREPORT_* environment overrides.
func (c *Config) ApplyEnv(lookupEnv func(string) (string, bool)) {
	if v, ok := lookupEnv(EnvLogLevel); ok && v != "" {
		c.Logging.Level = v
	}
	if v, ok := lookupEnv(EnvLogFormat); ok && v != "" {
		c.Logging.Format = v
	}
	if v, ok := lookupEnv(EnvOutputDir); ok && v != "" {
		c.Output.Directory = v
	}
}

// Validate checks the version range, output formats, logging settings,
// factors and input limits, reporting every problem found.
func (c *Config) Validate() error {
	var errs []error

	if err := checkVersion(c.Version); err != nil {
		errs = append(errs, err)
	}
	if _, err := c.OutputFormats(); err != nil {
		errs = append(errs, fmt.Errorf("output.formats: %w", err))
	}
	if _, err := zerolog.ParseLevel(c.Logging.Level); err != nil {
		errs = append(errs, fmt.Errorf("%w: %q", ErrInvalidLogLevel, c.Logging.Level))
	}
	if c.Logging.Format != "" && c.Logging.Format != "console" && c.Logging.Format != "json" {
		errs = append(errs, fmt.Errorf("%w, got %q", ErrInvalidLogFormat, c.Logging.Format))
	}
	if err := c.Factors.Validate(); err != nil {
		errs = append(errs, err)
	}
	if c.Input.MaxAttempts < 0 {
		errs = append(errs, ErrNegativeAttempts)
	}

	return errors.Join(errs...)
}

func checkVersion(v string) error {
	version, err := semver.NewVersion(v)
	if err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidVersion, v)
	}
	constraint, err := semver.NewConstraint(supportedVersions)
	if err != nil {
		return fmt.Errorf("parsing supported version range: %w", err)
	}
	if !constraint.Check(version) {
		return fmt.Errorf("%w: %s (supported: %s)", ErrUnsupportedVersion, v, supportedVersions)
	}
	return nil
}

// OutputFormats parses Output.Formats.
func (c *Config) OutputFormats() ([]report.Format, error) {
	return report.ParseFormats(c.Output.Formats)
}

// ConfigPath returns the file Save writes to.
func (c *Config) ConfigPath() string {
	return c.configPath
}

// SetConfigPath changes the file Save writes to.
func (c *Config) SetConfigPath(path string) {
	c.configPath = path
}

// Save writes the configuration as YAML, creating the directory if needed.
func (c *Config) Save() error {
	if c.configPath == "" {
		return errors.New("config path not set")
	}
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshalling config: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(c.configPath), 0o700); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}
	if err := os.WriteFile(c.configPath, data, 0o600); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}
