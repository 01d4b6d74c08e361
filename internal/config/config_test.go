package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gulievsadigg/carbon-emission/internal/emissions"
	"github.com/gulievsadigg/carbon-emission/internal/report"
)

func noEnv(string) (string, bool) { return "", false }

func envMap(m map[string]string) func(string) (string, bool) {
	return func(k string) (string, bool) {
		v, ok := m[k]
		return v, ok
	}
}

func homeEnv(home string) func(string) (string, bool) {
	return envMap(map[string]string{EnvHome: home})
}

func TestLoad_HomeFromInjectedEnv(t *testing.T) {
	t.Setenv(EnvHome, t.TempDir())
	home := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(home, "config.yaml"), []byte(`
output:
  directory: injected-out
`), 0o600))

	cfg, err := Load("", homeEnv(home))
	require.NoError(t, err)
	assert.Equal(t, "injected-out", cfg.Output.Directory)
	assert.Equal(t, filepath.Join(home, "config.yaml"), cfg.ConfigPath())
}

func TestNew_Defaults(t *testing.T) {
	t.Setenv("CARBONREPORT_HOME", "/opt/carbon")

	cfg := New()

	assert.Equal(t, CurrentVersion, cfg.Version)
	assert.Equal(t, "reports", cfg.Output.Directory)
	assert.Equal(t, []string{"pdf"}, cfg.Output.Formats)
	assert.True(t, cfg.Output.Equivalencies)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, emissions.DefaultFactors(), cfg.Factors)
	assert.Zero(t, cfg.Input.MaxAttempts)
	assert.Equal(t, filepath.Join("/opt/carbon", "config.yaml"), cfg.ConfigPath())
	assert.NoError(t, cfg.Validate())
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr error
		wantMsg string
	}{
		{name: "unsupported major version", mutate: func(c *Config) { c.Version = "2.0.0" }, wantErr: ErrUnsupportedVersion},
		{name: "not semver", mutate: func(c *Config) { c.Version = "one" }, wantErr: ErrInvalidVersion},
		{name: "unknown format", mutate: func(c *Config) { c.Output.Formats = []string{"docx"} }, wantErr: report.ErrUnknownFormat},
		{name: "bad level", mutate: func(c *Config) { c.Logging.Level = "loud" }, wantErr: ErrInvalidLogLevel},
		{name: "bad log format", mutate: func(c *Config) { c.Logging.Format = "xml" }, wantErr: ErrInvalidLogFormat},
		{name: "negative factor", mutate: func(c *Config) { c.Factors.Gas = -1 }, wantErr: emissions.ErrNegativeValue, wantMsg: "factor gas"},
		{name: "negative attempts", mutate: func(c *Config) { c.Input.MaxAttempts = -2 }, wantErr: ErrNegativeAttempts},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := New()
			tt.mutate(cfg)
			err := cfg.Validate()
			require.Error(t, err)
			require.ErrorIs(t, err, tt.wantErr)
			if tt.wantMsg != "" {
				assert.Contains(t, err.Error(), tt.wantMsg)
			}
		})
	}
}

func TestValidate_MinorVersionAccepted(t *testing.T) {
	cfg := New()
	cfg.Version = "1.4.2"
	assert.NoError(t, cfg.Validate())
}

func TestLoad_Layers(t *testing.T) {
	home := t.TempDir()

	require.NoError(t, os.WriteFile(filepath.Join(home, "config.yaml"), []byte(`
version: "1.0.0"
output:
  directory: global-out
  formats: [markdown]
factors:
  gas: 0.006
`), 0o600))

	overlay := filepath.Join(t.TempDir(), "team.yaml")
	require.NoError(t, os.WriteFile(overlay, []byte(`
output:
  directory: team-out
`), 0o600))

	cfg, err := Load(overlay, envMap(map[string]string{
		EnvHome:     home,
		EnvLogLevel: "debug",
	}))
	require.NoError(t, err)

	assert.Equal(t, "team-out", cfg.Output.Directory)
	assert.Equal(t, []string{"markdown"}, cfg.Output.Formats)
	assert.InDelta(t, 0.006, cfg.Factors.Gas, 1e-12)
	assert.InDelta(t, emissions.DefaultElectricityFactor, cfg.Factors.Electricity, 1e-12)
	assert.Equal(t, "debug", cfg.Logging.Level)
}

func TestLoad_NoGlobalFile(t *testing.T) {
	cfg, err := Load("", homeEnv(t.TempDir()))
	require.NoError(t, err)
	assert.Equal(t, "reports", cfg.Output.Directory)
}

func TestLoad_MissingOverlay(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"), homeEnv(t.TempDir()))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoad_InvalidResult(t *testing.T) {
	home := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(home, "config.yaml"), []byte("version: \"3.0.0\"\n"), 0o600))

	_, err := Load("", homeEnv(home))
	assert.ErrorIs(t, err, ErrUnsupportedVersion)
}

func TestApplyEnv(t *testing.T) {
	cfg := New()
	cfg.ApplyEnv(envMap(map[string]string{
		"CARBONREPORT_LOG_FORMAT": "json",
		"CARBONREPORT_OUTPUT_DIR": "/srv/reports",
		"CARBONREPORT_LOG_LEVEL":  "",
	}))

	assert.Equal(t, "json", cfg.Logging.Format)
	assert.Equal(t, "/srv/reports", cfg.Output.Directory)
	assert.Equal(t, "info", cfg.Logging.Level)
}

func TestSave_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")
	cfg := New()
	cfg.SetConfigPath(path)
	cfg.Output.Formats = []string{"pdf", "text"}
	cfg.Factors.Waste = 0.6

	require.NoError(t, cfg.Save())

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())

	loaded := New()
	require.NoError(t, MergeYAML(loaded, path))
	assert.Equal(t, cfg.Output, loaded.Output)
	assert.Equal(t, cfg.Factors, loaded.Factors)
}

func TestSave_NoPath(t *testing.T) {
	cfg := &Config{}
	assert.Error(t, cfg.Save())
}

func TestOutputFormats(t *testing.T) {
	cfg := New()
	cfg.Output.Formats = []string{"markdown", "pdf", "markdown"}

	got, err := cfg.OutputFormats()
	require.NoError(t, err)
	assert.Equal(t, []report.Format{report.FormatMarkdown, report.FormatPDF}, got)
}
