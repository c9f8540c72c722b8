package config_test

import (
	"os"
	"testing"

	. "github.com/pseudomuto/sqlfold/pkg/config"
	"github.com/pseudomuto/sqlfold/pkg/consts"
	"github.com/stretchr/testify/require"
)

func TestLoadWorkingDir(t *testing.T) {
	t.Run("no file", func(t *testing.T) {
		t.Chdir(t.TempDir())

		cfg, err := LoadWorkingDir()
		require.NoError(t, err)
		require.True(t, cfg.Equal(Default()))
	})

	t.Run("with file", func(t *testing.T) {
		t.Chdir(t.TempDir())
		require.NoError(t, os.WriteFile(consts.DefaultConfigFile, []byte(testConfigYAML), consts.ModeFile))

		cfg, err := LoadWorkingDir()
		require.NoError(t, err)
		validateTestConfig(t, cfg)
	})

	t.Run("malformed file", func(t *testing.T) {
		t.Chdir(t.TempDir())
		require.NoError(t, os.WriteFile(consts.DefaultConfigFile, []byte("indentation: [\n"), consts.ModeFile))

		_, err := LoadWorkingDir()
		require.Error(t, err)
		require.Contains(t, err.Error(), "failed to unmarshal sqlfold config")
	})
}
