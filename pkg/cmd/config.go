package cmd

import (
	"context"

	"github.com/pkg/errors"
	"github.com/pseudomuto/sqlfold/pkg/config"
	"github.com/urfave/cli/v3"
)

// configCmd creates a CLI command that prints the effective configuration, after
// --config and --set have been applied, in the YAML format read by --config.
//
// Example:
//
//	sqlfold --set folding.select=chop config > sqlfold.yaml
func configCmd() *cli.Command {
	return &cli.Command{
		Name:  "config",
		Usage: "Print the effective configuration as YAML",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			cfg, err := currentConfig()
			if err != nil {
				return err
			}

			data, err := config.Marshal(cfg)
			if err != nil {
				return err
			}

			if _, err := output(cmd).Write(data); err != nil {
				return errors.Wrap(err, "failed to write config")
			}

			return nil
		},
	}
}
