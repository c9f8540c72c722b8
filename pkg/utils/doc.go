// Package utils provides small helpers shared by the sqlfold packages.
//
// # Pointers (ptr.go)
//
// Optional settings are passed as pointers, nil meaning "unset". Ptr turns a
// literal into such a pointer:
//
//	cfg = cfg.WithLineFolding(utils.Ptr(config.Fold))
//
// # Identifier Utilities (identifier.go)
//
// Identifier helpers work on possibly qualified, possibly quoted names without
// knowing which dialect produced them:
//
//	utils.SplitQualified("`my.db`.events")
//	// Result: ["`my.db`", "events"]
//
//	utils.QuoteQualified("analytics.events", dialect.ClickHouse.QuoteIdentifier)
//	// Result: `analytics`.`events`
//
//	utils.IsQuoted(`"users"`, `"`, `"`)
//	// Result: true
//
// The helpers are idempotent: quoting an already quoted part through a dialect
// leaves it unchanged.
package utils
