package cli_test

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/rshade/carbonwise/internal/cli"
	"github.com/rshade/carbonwise/internal/config"
)

// setupCLITest isolates the config directory and quiets logging. It returns
// the temporary CARBONWISE_HOME.
func setupCLITest(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("CARBONWISE_HOME", home)
	t.Setenv("CARBONWISE_LOG_LEVEL", "error")
	t.Setenv("CARBONWISE_CACHE_TTL", "")
	t.Setenv("CARBONWISE_CATALOG", "")
	config.ResetGlobalConfigForTest()
	t.Cleanup(config.ResetGlobalConfigForTest)
	return home
}

// runCLI executes the root command with args and returns stdout and stderr.
func runCLI(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	cmd := cli.NewRootCmd("test")
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetIn(&bytes.Buffer{})
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

// runJSON executes the root command and decodes its stdout into T.
func runJSON[T any](t *testing.T, args ...string) T {
	t.Helper()
	stdout, stderr, err := runCLI(t, append(args, "--output", "json")...)
	require.NoError(t, err, "stderr: %s", stderr)

	var out T
	require.NoError(t, json.Unmarshal([]byte(stdout), &out), "stdout: %s", stdout)
	return out
}
