package cli_test

import (
	"bytes"
	"testing"

	"github.com/rshade/mindful/internal/cli"
	"github.com/rshade/mindful/internal/config"
)

// setupCLITest isolates the mindful home directory and clears environment
// overrides so tests never touch the real configuration.
func setupCLITest(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("MINDFUL_HOME", home)
	for _, env := range []string{
		config.EnvLogFormat, config.EnvOutputFormat,
		config.EnvServerAddr, config.EnvConfigPath,
	} {
		t.Setenv(env, "")
	}
	t.Setenv(config.EnvLogLevel, "error")
	return home
}

// execute runs the root command with args and returns stdout and stderr.
func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	cmd := cli.NewRootCmd("test")
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}
