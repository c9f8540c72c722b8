package dialect

import (
	"sort"
	"strings"

	"github.com/pkg/errors"
	"github.com/pseudomuto/sqlfold/pkg/utils"
)

// CaseFolding describes what a dialect does to unquoted identifiers.
type CaseFolding int

const (
	// PreserveCase keeps unquoted identifiers as written.
	PreserveCase CaseFolding = iota
	// FoldLower reads unquoted identifiers as lower case (PostgreSQL).
	FoldLower
	// FoldUpper reads unquoted identifiers as upper case (ANSI).
	FoldUpper
)

// Dialect holds the identifier rules of one SQL dialect.
type Dialect struct {
	name       string
	openQuote  string
	closeQuote string
	folding    CaseFolding
	reserved   map[string]struct{}
}

var (
	// ANSI quotes with double quotes and folds unquoted names to upper case.
	ANSI = newDialect("ansi", `"`, `"`, FoldUpper, commonReserved...)

	// ClickHouse quotes with backticks and is case sensitive.
	ClickHouse = newDialect("clickhouse", "`", "`", PreserveCase, append(commonReserved,
		"ARRAY", "FINAL", "FORMAT", "GLOBAL", "PREWHERE", "SAMPLE", "SETTINGS",
	)...)

	// MySQL quotes with backticks.
	MySQL = newDialect("mysql", "`", "`", PreserveCase, append(commonReserved,
		"DUAL", "KEY", "KEYS", "STRAIGHT_JOIN",
	)...)

	// PostgreSQL quotes with double quotes and folds unquoted names to lower case.
	PostgreSQL = newDialect("postgresql", `"`, `"`, FoldLower, append(commonReserved,
		"ILIKE", "RETURNING", "VARIADIC",
	)...)

	catalogue = map[string]*Dialect{
		ANSI.name:       ANSI,
		ClickHouse.name: ClickHouse,
		MySQL.name:      MySQL,
		PostgreSQL.name: PostgreSQL,
		"postgres":      PostgreSQL,
	}
)

var commonReserved = []string{
	"ALL", "AND", "AS", "ASC", "BETWEEN", "BY", "CASE", "CROSS", "DESC", "DISTINCT",
	"ELSE", "END", "EXCEPT", "EXISTS", "FALSE", "FROM", "FULL", "GROUP", "HAVING",
	"IN", "INNER", "INTERSECT", "INTO", "IS", "JOIN", "LEFT", "LIKE", "LIMIT", "NOT",
	"NULL", "ON", "OR", "ORDER", "OUTER", "OVER", "RIGHT", "SELECT", "SET", "TABLE",
	"THEN", "TRUE", "UNION", "UPDATE", "USING", "VALUES", "WHEN", "WHERE", "WINDOW",
	"WITH",
}

func newDialect(name, openQuote, closeQuote string, folding CaseFolding, reserved ...string) *Dialect {
	d := &Dialect{
		name:       name,
		openQuote:  openQuote,
		closeQuote: closeQuote,
		folding:    folding,
		reserved:   make(map[string]struct{}, len(reserved)),
	}
	for _, w := range reserved {
		d.reserved[w] = struct{}{}
	}

	return d
}

// Lookup returns the dialect registered under name (case-insensitive).
func Lookup(name string) (*Dialect, error) {
	d, ok := catalogue[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return nil, errors.Errorf("unknown dialect %q (known: %s)", name, strings.Join(Names(), ", "))
	}

	return d, nil
}

// Names lists the registered dialect names, sorted.
func Names() []string {
	names := make([]string, 0, len(catalogue))
	for n := range catalogue {
		names = append(names, n)
	}
	sort.Strings(names)

	return names
}

// Name returns the canonical dialect name.
func (d *Dialect) Name() string { return d.name }

// CaseFolding reports how the dialect treats unquoted identifiers.
func (d *Dialect) CaseFolding() CaseFolding { return d.folding }

// IsReserved reports whether word is a reserved keyword of the dialect.
func (d *Dialect) IsReserved(word string) bool {
	_, ok := d.reserved[strings.ToUpper(word)]
	return ok
}

// QuoteIdentifier wraps name in the dialect's quotes, doubling any embedded
// closing quote. Names that are already quoted are returned unchanged.
func (d *Dialect) QuoteIdentifier(name string) string {
	if utils.IsQuoted(name, d.openQuote, d.closeQuote) {
		return name
	}

	return d.openQuote + strings.ReplaceAll(name, d.closeQuote, d.closeQuote+d.closeQuote) + d.closeQuote
}

// NeedsQuote reports whether name has to be quoted to survive a round trip:
// it is empty, is not a plain identifier, is reserved, or would be case folded.
func (d *Dialect) NeedsQuote(name string) bool {
	if name == "" || !isPlainIdentifier(name) || d.IsReserved(name) {
		return true
	}

	switch d.folding {
	case FoldLower:
		return strings.ToLower(name) != name
	case FoldUpper:
		return strings.ToUpper(name) != name
	default:
		return false
	}
}

func isPlainIdentifier(name string) bool {
	for i, r := range name {
		switch {
		case r == '_', r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z':
		case i > 0 && r >= '0' && r <= '9':
		default:
			return false
		}
	}

	return true
}
