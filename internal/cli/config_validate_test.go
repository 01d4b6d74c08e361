package cli_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gulievsadigg/carbon-emission/internal/config"
)

func TestConfigValidate_Defaults(t *testing.T) {
	setupCLITest(t)

	out, _, err := execute(t, "", "config", "validate", "--verbose")
	require.NoError(t, err)

	assert.Contains(t, out, "Configuration is valid")
	assert.Contains(t, out, "Formats:          pdf")
	assert.Contains(t, out, "travel=2.31")
}

func TestConfigValidate_Invalid(t *testing.T) {
	home := setupCLITest(t)
	require.NoError(t, os.WriteFile(filepath.Join(home, "config.yaml"), []byte(`
version: "2.0.0"
output:
  formats: [docx]
`), 0o600))

	_, _, err := execute(t, "", "config", "validate")
	require.Error(t, err)
	assert.ErrorIs(t, err, config.ErrUnsupportedVersion)
	assert.Contains(t, err.Error(), "configuration validation failed")
	assert.Contains(t, err.Error(), "docx")
}

func TestConfigValidate_Overlay(t *testing.T) {
	setupCLITest(t)
	overlay := filepath.Join(t.TempDir(), "team.yaml")
	require.NoError(t, os.WriteFile(overlay, []byte("factors:\n  gas: -1\n"), 0o600))

	_, _, err := execute(t, "", "--config", overlay, "config", "validate")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "factor gas")
}

func TestConfigShow(t *testing.T) {
	setupCLITest(t)
	overlay := filepath.Join(t.TempDir(), "team.yaml")
	require.NoError(t, os.WriteFile(overlay, []byte("output:\n  directory: team-reports\n"), 0o600))

	out, _, err := execute(t, "", "--config", overlay, "config", "show")
	require.NoError(t, err)

	assert.Contains(t, out, "directory: team-reports")
	assert.Contains(t, out, "level: error")
}

func TestRoot_InvalidConfigFailsOtherCommands(t *testing.T) {
	home := setupCLITest(t)
	require.NoError(t, os.WriteFile(filepath.Join(home, "config.yaml"), []byte("unknown: 1\n"), 0o600))

	_, _, err := execute(t, "", "config", "show")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown config key")
}
