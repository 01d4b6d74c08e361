package cli_test

import (
	"bytes"
	"os"
	"strings"
	"testing"

	"github.com/gulievsadigg/carbon-emission/internal/cli"
	"github.com/gulievsadigg/carbon-emission/internal/config"
)

// quietEnv keeps command logging out of test output and passes only the
// config home through from the process environment.
func quietEnv(key string) (string, bool) {
	switch key {
	case config.EnvLogLevel:
		return "error", true
	case config.EnvHome:
		return os.LookupEnv(key)
	default:
		return "", false
	}
}

// withEnv layers vars over quietEnv.
func withEnv(vars map[string]string) func(string) (string, bool) {
	return func(key string) (string, bool) {
		if v, ok := vars[key]; ok {
			return v, true
		}
		return quietEnv(key)
	}
}

// setupCLITest isolates the config directory and resets global state.
func setupCLITest(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv(config.EnvHome, home)
	t.Cleanup(config.ResetGlobalConfigForTest)
	return home
}

// execute runs the root command with args and stdin, returning stdout and
// stderr separately.
func execute(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	return executeWithEnv(t, quietEnv, stdin, args...)
}

// executeWithEnv is execute with an explicit environment lookup.
func executeWithEnv(
	t *testing.T,
	lookupEnv func(string) (string, bool),
	stdin string,
	args ...string,
) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	cmd := cli.NewRootCmdWithEnv("test", lookupEnv)
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)

	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}
