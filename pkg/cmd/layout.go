package cmd

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/pseudomuto/sqlfold/pkg/format"
	"github.com/urfave/cli/v3"
)

// layoutCmd creates a CLI command that shows how a list of items in a clause
// would be laid out under the current configuration.
//
// Items are given by their rendered widths. The width of the whole list on one
// line defaults to the sum of the item widths plus a ", " separator between
// items; pass --width when the caller measures it differently.
//
// Flags:
//   - --clause: the clause holding the list (required)
//   - --widths: comma separated item widths (required)
//   - --indent: the nesting level of the clause
//   - --width: the width of the list rendered on one line
//
// Example:
//
//	sqlfold layout --clause select --widths 10,24,8,31 --width 90
func layoutCmd() *cli.Command {
	return &cli.Command{
		Name:  "layout",
		Usage: "Show how the items of a clause list are laid out",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "clause",
				Usage:    "the clause holding the list, e.g. select or group_by",
				Required: true,
			},
			&cli.StringFlag{
				Name:     "widths",
				Usage:    "comma separated widths of the list items",
				Required: true,
			},
			&cli.IntFlag{
				Name:  "indent",
				Usage: "the nesting level of the clause",
			},
			&cli.IntFlag{
				Name:        "width",
				Usage:       "the width of the list on one line",
				DefaultText: "computed from --widths",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			clause, err := format.ParseClause(cmd.String("clause"))
			if err != nil {
				return err
			}

			widths, err := parseWidths(cmd.String("widths"))
			if err != nil {
				return err
			}

			if cmd.Int("indent") < 0 {
				return errors.New("--indent must not be negative")
			}

			list := format.List{
				Clause: clause,
				Items:  widths,
				Indent: cmd.Int("indent"),
				Width:  format.OneLineWidth(widths),
			}
			if cmd.IsSet("width") {
				list.Width = cmd.Int("width")
			}

			cfg, err := currentConfig()
			if err != nil {
				return err
			}

			return printLayout(cmd, list, format.New(cfg).Layout(list))
		},
	}
}

func parseWidths(s string) ([]int, error) {
	var widths []int
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}

		w, err := strconv.Atoi(part)
		if err != nil || w < 0 {
			return nil, errors.Errorf("invalid item width: %s", part)
		}
		widths = append(widths, w)
	}

	if len(widths) == 0 {
		return nil, errors.New("at least one item width is required")
	}

	return widths, nil
}

func printLayout(cmd *cli.Command, list format.List, layout format.Layout) error {
	w := output(cmd)

	lines := []string{
		fmt.Sprintf("clause:       %s", list.Clause),
		fmt.Sprintf("folding:      %s", layout.Folding),
		fmt.Sprintf("width:        %d", list.Width),
		fmt.Sprintf("starts line:  %t", layout.StartsLine),
		fmt.Sprintf("ends line:    %t", layout.EndsLine),
		fmt.Sprintf("item indent:  %d (first %d)", layout.ItemIndent, layout.FirstItemIndent),
	}

	for i, line := range layout.Lines {
		items := make([]string, len(line))
		for j, idx := range line {
			items[j] = strconv.Itoa(idx)
		}
		lines = append(lines, fmt.Sprintf("line %d:       %s", i+1, strings.Join(items, " ")))
	}

	if _, err := fmt.Fprintln(w, strings.Join(lines, "\n")); err != nil {
		return errors.Wrap(err, "failed to write layout")
	}

	return nil
}
