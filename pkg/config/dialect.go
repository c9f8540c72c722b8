package config

// Dialect supplies the identifier rules of a SQL dialect. Config.Equal compares
// dialects of a comparable type with ==, and any other dialect by Name. The
// dialect package provides implementations for common databases.
type Dialect interface {
	// Name returns the canonical, lower-case name of the dialect (e.g. "mysql").
	Name() string
	// QuoteIdentifier wraps a single identifier part in the dialect's quotes.
	QuoteIdentifier(name string) string
	// NeedsQuote reports whether name must be quoted to be read back verbatim.
	NeedsQuote(name string) bool
}
