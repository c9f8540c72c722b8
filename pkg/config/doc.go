// Package config defines the immutable configuration of a SQL writer.
//
// A Config holds every setting that drives the layout of formatted SQL:
// indentation, keyword casing, identifier quoting, clause line breaks, and the
// line folding policy of each clause. It is a plain value; With methods return a
// modified copy and never touch the receiver:
//
//	cfg := config.Default().
//		WithKeywordsLowerCase(true).
//		WithLineFolding(utils.Ptr(config.Fold))
//
//	cfg, err := cfg.WithIndentation(2)
//	if err != nil {
//		// errors.Is(err, config.ErrInvalidConfiguration)
//	}
//
// # Line folding
//
// LineFolding ranges from Wide (never wrap) to Tall (one item per line). Each
// clause has an optional override, there is an optional global default, and a few
// clauses keep the boolean switches that predate the folding policy. The
// accessors report the raw, possibly unset values; format.Effective resolves them
// into the single policy that applies.
//
// # Loading
//
// Load and LoadFile read the YAML representation produced by Marshal.
// ApplySettings accepts the same keys in a compact "key=value, ..." form, which
// is what the sqlfold CLI's --set flag uses. Both go through Set, so every
// external setting becomes exactly one With call and obeys the same validation.
package config
