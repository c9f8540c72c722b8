package cmd

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/pkg/errors"
	"github.com/pseudomuto/sqlfold/pkg/config"
	"github.com/pseudomuto/sqlfold/pkg/consts"
	"github.com/urfave/cli/v3"
	"go.uber.org/fx"
)

// currentConfig returns the configuration commands work with. The root Before
// hook replaces it with one that applies --config and --set. The file is only
// read by commands that call it, so init can replace a broken file.
var currentConfig = func() (config.Config, error) { return config.Default(), nil }

type (
	Params struct {
		fx.In

		Args       []string
		Commands   []*cli.Command `group:"commands"`
		Loader     config.Loader
		Ctx        context.Context
		Lifecycle  fx.Lifecycle
		Shutdowner fx.Shutdowner
		Version    *Version
	}

	Version struct {
		Version   string
		Commit    string
		Timestamp string
	}
)

// Run creates the sqlfold CLI application and runs it when the fx application
// starts. The process exits with status 1 when the command fails.
//
// Global Flags:
//   - --config, -c: configuration file (env SQLFOLD_CONFIG, default sqlfold.yaml)
//   - --set, -s: settings applied on top of the file, e.g. "indentation=2,folding.select=chop"
//   - --verbose: enable debug logging
//
// Example usage:
//
//	sqlfold resolve
//	sqlfold --set folding.default=fold resolve where having
//	sqlfold -c ci/sqlfold.yaml layout --clause select --widths 10,24,8 --width 120
func Run(p Params) {
	cli.VersionPrinter = func(cmd *cli.Command) {
		fmt.Fprintln(cmd.Writer, "Version:", p.Version.Version)
		fmt.Fprintln(cmd.Writer, "Commit:", p.Version.Commit)
		fmt.Fprintln(cmd.Writer, "Date:", p.Version.Timestamp)
	}

	app := newApp(p)

	p.Lifecycle.Append(fx.StartHook(func() {
		if err := app.Run(p.Ctx, p.Args); err != nil {
			slog.Error("Error running command", "err", err)
			_ = p.Shutdowner.Shutdown(fx.ExitCode(1))
			return
		}

		_ = p.Shutdowner.Shutdown(fx.ExitCode(0))
	}))
}

func newApp(p Params) *cli.Command {
	version := ""
	if p.Version != nil {
		version = p.Version.Version
	}

	return &cli.Command{
		Name:  "sqlfold",
		Usage: "Inspect how SQL clause lists are folded across lines",
		Description: `sqlfold loads a SQL writer configuration and reports, for every clause,
which line folding applies and how a list of items would be laid out.`,
		Version: version,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "the sqlfold config file",
				Sources: cli.EnvVars(consts.ConfigEnvVar),
				Value:   consts.DefaultConfigFile,
				Config: cli.StringConfig{
					TrimSpace: true,
				},
			},
			&cli.StringFlag{
				Name:    "set",
				Aliases: []string{"s"},
				Usage:   "comma separated key=value settings applied after the config file",
			},
			&cli.BoolFlag{
				Name:  "verbose",
				Usage: "enable debug logging",
			},
		},
		Before: func(ctx context.Context, cmd *cli.Command) (context.Context, error) {
			level := slog.LevelInfo
			if cmd.Bool("verbose") {
				level = slog.LevelDebug
			}
			slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

			if _, err := config.ApplySettings(config.Default(), cmd.String("set")); err != nil {
				return ctx, errors.Wrap(err, "invalid --set")
			}

			currentConfig = func() (config.Config, error) {
				return loadConfig(cmd, p.Loader)
			}
			return ctx, nil
		},
		Commands: p.Commands,
	}
}

// loadConfig reads the file named by --config when it was given explicitly, or
// asks load for the working directory's configuration otherwise, and applies
// --set on top.
func loadConfig(cmd *cli.Command, load config.Loader) (config.Config, error) {
	if load == nil {
		load = config.LoadWorkingDir
	}

	var (
		cfg config.Config
		err error
	)
	if cmd.IsSet("config") {
		path := cmd.String("config")
		slog.Debug("Loading config", "file", path)
		cfg, err = config.LoadFile(path)
	} else {
		cfg, err = load()
	}
	if err != nil {
		return cfg, err
	}

	cfg, err = config.ApplySettings(cfg, cmd.String("set"))
	if err != nil {
		return cfg, errors.Wrap(err, "invalid --set")
	}

	return cfg, nil
}

// output returns the writer of the root command, which subcommands share.
func output(cmd *cli.Command) io.Writer {
	if w := cmd.Root().Writer; w != nil {
		return w
	}

	return os.Stdout
}
