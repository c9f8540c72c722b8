// Package format resolves how each clause of a SQL statement is laid out.
//
// This package is the decision layer between a config.Config and the writer that
// emits SQL text. It does not render anything itself; for every clause the writer
// reaches, it answers which folding policy applies and where the items go.
//
// Key features:
//   - A single resolution cascade for every clause (Resolve, Effective)
//   - Backward compatible handling of the legacy per-clause boolean switches
//   - Item placement for each policy at a given fold length (Decide)
//   - Keyword casing, identifier quoting and indentation helpers (Formatter)
//
// Resolution order for a clause:
//
//  1. the clause's own folding setting (FROM always has one, TALL by default)
//  2. the global line folding
//  3. the clause's legacy switch, true meaning TALL and false WIDE
//     (SELECT, WINDOW, VALUES and UPDATE SET only)
//  4. WIDE
//
// Usage:
//
//	cfg := config.Default().WithLineFolding(utils.Ptr(config.Fold))
//
//	format.Effective(cfg, format.Where) // FOLD
//	format.Effective(cfg, format.From)  // TALL
//
//	layout := format.Decide(cfg, format.List{
//		Clause: format.Select,
//		Items:  []int{30, 30, 30},
//		Width:  94,
//	})
//	// layout.Lines == [][]int{{0, 1}, {2}}
//
// Every function in this package is pure and safe for concurrent use.
package format
