package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"github.com/pseudomuto/sqlfold/pkg/config"
	"github.com/pseudomuto/sqlfold/pkg/consts"
	"github.com/urfave/cli/v3"
)

// initCmd creates a CLI command that writes the default configuration to a new
// file, sqlfold.yaml unless a path is given. Parent directories are created as
// needed. An existing file is left alone unless --force is passed.
//
// Examples:
//
//	sqlfold init
//	sqlfold init config/sqlfold.yaml
//	sqlfold init --force
func initCmd() *cli.Command {
	return &cli.Command{
		Name:      "init",
		Usage:     "Write a default sqlfold.yaml",
		ArgsUsage: "[path]",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:    "force",
				Aliases: []string{"f"},
				Usage:   "overwrite an existing file",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			if cmd.Args().Len() > 1 {
				return errors.New("at most one path argument is allowed")
			}

			path := consts.DefaultConfigFile
			if cmd.Args().Present() {
				path = cmd.Args().First()
			}

			if _, err := os.Stat(path); err == nil && !cmd.Bool("force") {
				return errors.Errorf("%s already exists (use --force to overwrite)", path)
			}

			data, err := config.Marshal(config.Default())
			if err != nil {
				return err
			}

			if err := os.MkdirAll(filepath.Dir(path), consts.ModeDir); err != nil {
				return errors.Wrapf(err, "failed to create directory for %s", path)
			}

			if err := os.WriteFile(path, data, consts.ModeFile); err != nil {
				return errors.Wrapf(err, "failed to write file: %s", path)
			}

			slog.Debug("Wrote default config", "file", path)
			fmt.Fprintf(output(cmd), "Created %s\n", path)
			return nil
		},
	}
}
