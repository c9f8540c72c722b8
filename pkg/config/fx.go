package config

import (
	"log/slog"
	"os"

	"github.com/pseudomuto/sqlfold/pkg/consts"
	"go.uber.org/fx"
)

// Loader produces a Config on demand. Reading is deferred until a command asks
// for the configuration, so a broken file never prevents the CLI from starting.
type Loader func() (Config, error)

var Module = fx.Module("config", fx.Provide(
	func() Loader { return LoadWorkingDir },
))

// LoadWorkingDir loads sqlfold.yaml from the working directory when it exists.
// Without it the default configuration is returned, so commands work outside a
// project.
func LoadWorkingDir() (Config, error) {
	if _, err := os.Stat(consts.DefaultConfigFile); os.IsNotExist(err) {
		slog.Debug("No config file found, using defaults", "file", consts.DefaultConfigFile)
		return Default(), nil
	}

	return LoadFile(consts.DefaultConfigFile)
}
