// Package cmd provides the CLI commands for the sqlfold tool.
//
// Each command is built by a function returning a *cli.Command, following the
// urfave/cli/v3 pattern, and registered with the root application through an fx
// value group. Commands read the configuration assembled by the root Before hook
// from the config file and the --set flag.
//
// # Available Commands
//
//   - resolve: show the effective line folding of each clause and its source
//   - layout: show how the items of one clause list are laid out
//   - config: print the effective configuration as YAML
//   - init: write a default sqlfold.yaml
//
// # Global Options
//
//   - --config, -c: the configuration file (env SQLFOLD_CONFIG, default sqlfold.yaml)
//   - --set, -s: settings applied after the file, e.g. "folding.default=fold,indentation=2"
//   - --verbose: enable debug logging
//
// # Example Usage
//
//	sqlfold init
//	sqlfold resolve
//	sqlfold -s folding.where=chop resolve where
//	sqlfold layout --clause group_by --widths 12,18,9 --indent 1
//	sqlfold --config ci/sqlfold.yaml config
package cmd
