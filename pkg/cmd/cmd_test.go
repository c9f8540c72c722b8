package cmd

import (
	"bytes"
	"context"
	"os"
	"testing"

	"github.com/pseudomuto/sqlfold/pkg/config"
	"github.com/pseudomuto/sqlfold/pkg/consts"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v3"
)

// runCommand runs command as a subcommand of a test app with cfg as the current
// configuration and returns what it wrote.
func runCommand(t *testing.T, cfg config.Config, command *cli.Command, args ...string) (string, error) {
	t.Helper()
	useConfig(t, cfg)

	var buf bytes.Buffer
	app := &cli.Command{
		Name:     "test",
		Writer:   &buf,
		Commands: []*cli.Command{command},
	}

	err := app.Run(context.Background(), append([]string{"test", command.Name}, args...))
	return buf.String(), err
}

func useConfig(t *testing.T, cfg config.Config) {
	t.Helper()

	prev := currentConfig
	currentConfig = func() (config.Config, error) { return cfg, nil }
	t.Cleanup(func() { currentConfig = prev })
}

func settings(t *testing.T, s string) config.Config {
	t.Helper()

	cfg, err := config.ApplySettings(config.Default(), s)
	require.NoError(t, err)
	return cfg
}

// unsetConfigEnv clears SQLFOLD_CONFIG for the duration of the test.
func unsetConfigEnv(t *testing.T) {
	t.Helper()

	t.Setenv(consts.ConfigEnvVar, "")
	require.NoError(t, os.Unsetenv(consts.ConfigEnvVar))
}
