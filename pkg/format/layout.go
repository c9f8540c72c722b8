package format

import "github.com/pseudomuto/sqlfold/pkg/config"

// separatorWidth is the width of ", " between two items on the same line.
const separatorWidth = 2

// List describes a clause about to be written.
type List struct {
	Clause Clause
	// Items holds the rendered width of each item.
	Items []int
	// Indent is the indentation level of the clause keyword.
	Indent int
	// Width is the tentative width of the whole clause kept on one line.
	Width int
}

// OneLineWidth is the width of the items joined by ", " on a single line.
func OneLineWidth(items []int) int {
	if len(items) == 0 {
		return 0
	}

	w := separatorWidth * (len(items) - 1)
	for _, i := range items {
		w += i
	}

	return w
}

// Layout is the placement decided for a List.
type Layout struct {
	// Folding is the effective policy of the clause.
	Folding config.LineFolding
	// StartsLine requests a line break before the clause keyword.
	StartsLine bool
	// EndsLine requests a line break after the clause keyword.
	EndsLine bool
	// Lines holds the indexes of the items written on each line, in order.
	Lines [][]int
	// ItemIndent is the column of item lines that follow a line break.
	ItemIndent int
	// FirstItemIndent is the column of the first item line.
	FirstItemIndent int
}

// Wrapped reports whether the items span more than one line.
func (l Layout) Wrapped() bool {
	return len(l.Lines) > 1
}

// Decide places the items of l according to the effective folding of its clause:
//
//   - WIDE: one line. Clause breaks follow ClauseStartsLine and ClauseEndsLine.
//   - STEP: like WIDE, but when the clause ends its line the items are stepped in
//     one level.
//   - FOLD: WIDE while the clause fits within the fold length, otherwise the items
//     are packed onto as few lines as possible without exceeding it.
//   - CHOP: WIDE while the clause fits within the fold length, otherwise one item
//     per line.
//   - TALL: one item per line.
//
// A clause fits when its width is at most the fold length; a fold length of 0
// never fits. An item is never split, so a single item wider than the fold length
// still gets a line of its own.
func Decide(cfg config.Config, l List) Layout {
	folding := Effective(cfg, l.Clause)
	indent := cfg.Indentation()
	level := max(l.Indent, 0)

	out := Layout{
		Folding:    folding,
		StartsLine: cfg.ClauseStartsLine(),
		EndsLine:   cfg.ClauseEndsLine(),
		ItemIndent: (level + 1) * indent,
	}

	switch folding {
	case config.Step:
		out.Lines = oneLine(len(l.Items))
	case config.Fold, config.Chop:
		if fits(cfg, l.Width) {
			return wide(out, level*indent, len(l.Items))
		}
		out.EndsLine = true
		out.FirstItemIndent = firstItemIndent(cfg, l.Clause, level)
		if folding == config.Fold {
			out.Lines = pack(l.Items, out.FirstItemIndent, out.ItemIndent, cfg.FoldLength())
		} else {
			out.Lines = onePerLine(len(l.Items))
		}
		return out
	case config.Tall:
		out.EndsLine = true
		out.FirstItemIndent = firstItemIndent(cfg, l.Clause, level)
		out.Lines = onePerLine(len(l.Items))
		return out
	default:
		return wide(out, level*indent, len(l.Items))
	}

	out.FirstItemIndent = out.ItemIndent
	return out
}

// Layout decides the placement of l under the formatter's configuration.
func (f *Formatter) Layout(l List) Layout {
	return Decide(f.cfg, l)
}

func wide(out Layout, column, n int) Layout {
	out.ItemIndent = column
	out.FirstItemIndent = column
	out.Lines = oneLine(n)
	return out
}

func fits(cfg config.Config, width int) bool {
	return cfg.FoldLength() > 0 && width <= cfg.FoldLength()
}

// firstItemIndent is one level less than the other items for a SELECT list
// whose extra indent is turned off.
func firstItemIndent(cfg config.Config, clause Clause, level int) int {
	if clause == Select && !cfg.SelectListExtraIndentFlag() {
		return level * cfg.Indentation()
	}

	return (level + 1) * cfg.Indentation()
}

func oneLine(n int) [][]int {
	if n == 0 {
		return nil
	}

	line := make([]int, n)
	for i := range line {
		line[i] = i
	}

	return [][]int{line}
}

func onePerLine(n int) [][]int {
	if n == 0 {
		return nil
	}

	lines := make([][]int, n)
	for i := range lines {
		lines[i] = []int{i}
	}

	return lines
}

// pack fills lines greedily: an item joins the current line when the line,
// separators included, stays within limit.
func pack(widths []int, first, rest, limit int) [][]int {
	var (
		lines [][]int
		line  []int
		col   = first
	)

	for i, w := range widths {
		if len(line) > 0 && col+separatorWidth+w > limit {
			lines = append(lines, line)
			line, col = nil, rest
		}
		if len(line) > 0 {
			col += separatorWidth
		}
		col += w
		line = append(line, i)
	}

	if len(line) > 0 {
		lines = append(lines, line)
	}

	return lines
}
