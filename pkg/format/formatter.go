package format

import (
	"strings"

	"github.com/pseudomuto/sqlfold/pkg/config"
	"github.com/pseudomuto/sqlfold/pkg/dialect"
	"github.com/pseudomuto/sqlfold/pkg/utils"
)

// Formatter answers the layout questions a SQL writer asks while emitting a
// statement, under one configuration.
type Formatter struct {
	cfg config.Config
}

// New creates a new Formatter with the specified configuration
func New(cfg config.Config) *Formatter {
	return &Formatter{cfg: cfg}
}

// NewDefault creates a new Formatter with the default configuration
func NewDefault() *Formatter {
	return New(config.Default())
}

// Config returns the formatter's configuration.
func (f *Formatter) Config() config.Config {
	return f.cfg
}

// Folding returns the effective folding of clause.
func (f *Formatter) Folding(clause Clause) config.LineFolding {
	return Effective(f.cfg, clause)
}

// Resolve returns the effective folding of clause and where it came from.
func (f *Formatter) Resolve(clause Clause) Resolution {
	return Resolve(f.cfg, clause)
}

// ItemsOnSeparateLines reports whether each item of clause always gets a line.
func (f *Formatter) ItemsOnSeparateLines(clause Clause) bool {
	return ItemsOnSeparateLines(f.cfg, clause)
}

// Keyword formats a keyword according to the keyword case setting
func (f *Formatter) Keyword(kw string) string {
	if f.cfg.KeywordsLowerCase() {
		return strings.ToLower(kw)
	}
	return strings.ToUpper(kw)
}

// Indent returns the specified number of indent levels as spaces
func (f *Formatter) Indent(level int) string {
	if level <= 0 {
		return ""
	}
	return strings.Repeat(" ", level*f.cfg.Indentation())
}

// Identifier quotes a possibly qualified identifier part by part. Parts are
// quoted when every identifier must be quoted, or when the dialect says the part
// cannot be written bare. Without a dialect ANSI rules apply.
func (f *Formatter) Identifier(name string) string {
	var d config.Dialect = dialect.ANSI
	if f.cfg.Dialect() != nil {
		d = f.cfg.Dialect()
	}

	quoteAll := f.cfg.QuoteAllIdentifiers()
	return utils.QuoteQualified(name, func(part string) string {
		if part == "*" {
			return part
		}
		if quoteAll || d.NeedsQuote(part) {
			return d.QuoteIdentifier(part)
		}
		return part
	})
}
