package cmd

import (
	"context"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/pseudomuto/sqlfold/pkg/format"
	"github.com/urfave/cli/v3"
)

// resolveCmd creates a CLI command that prints the effective line folding of
// each clause together with the setting it was resolved from: a per-clause
// override, the global folding, a legacy newline switch or the built-in default.
//
// Without arguments every clause is listed. Clause names are case-insensitive
// and accept spaces or dashes in place of underscores.
//
// Examples:
//
//	sqlfold resolve
//	sqlfold resolve select "group by" order_by
func resolveCmd() *cli.Command {
	return &cli.Command{
		Name:      "resolve",
		Usage:     "Show the effective line folding of each clause",
		ArgsUsage: "[clause...]",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			clauses := format.Clauses()
			if cmd.Args().Present() {
				clauses = make([]format.Clause, 0, cmd.Args().Len())
				for _, arg := range cmd.Args().Slice() {
					c, err := format.ParseClause(arg)
					if err != nil {
						return err
					}
					clauses = append(clauses, c)
				}
			}

			cfg, err := currentConfig()
			if err != nil {
				return err
			}
			f := format.New(cfg)

			t := table.NewWriter()
			t.SetOutputMirror(output(cmd))
			t.SetStyle(table.StyleLight)
			t.AppendHeader(table.Row{"Clause", "Folding", "Source"})
			for _, c := range clauses {
				r := f.Resolve(c)
				t.AppendRow(table.Row{r.Clause.String(), r.Folding.String(), r.Source.String()})
			}
			t.Render()

			return nil
		},
	}
}
