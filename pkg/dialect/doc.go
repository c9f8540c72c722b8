// Package dialect provides the identifier rules of the SQL dialects understood by
// sqlfold.
//
// A *Dialect satisfies config.Dialect and is normally attached to a configuration
// by name, either from the YAML file (dialect: clickhouse) or programmatically:
//
//	d, err := dialect.Lookup("clickhouse")
//	if err != nil {
//		return err
//	}
//	cfg := config.Default().WithDialect(d)
//
// Dialects differ in their quote characters, in whether unquoted identifiers are
// case folded and in their reserved words. NeedsQuote combines those rules to
// decide whether an identifier can be written bare.
package dialect
