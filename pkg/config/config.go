package config

import "reflect"

// Config is the immutable configuration of a SQL writer.
//
// A Config is a plain value: every With method returns a modified copy and leaves
// the receiver untouched, so a Config can be shared freely between goroutines.
// Start from Default and chain With calls to build a variant:
//
//	cfg := config.Default().
//		WithKeywordsLowerCase(true).
//		WithSelectFolding(utils.Ptr(config.Chop))
//
// Folding overrides are reported raw by their accessors (nil when unset); use
// format.Effective to obtain the policy that actually applies to a clause.
type Config struct {
	dialect             Dialect
	keywordsLowerCase   bool
	quoteAllIdentifiers bool
	indentation         int
	lineLength          int
	foldLength          int

	clauseStartsLine               bool
	clauseEndsLine                 bool
	windowNewline                  bool
	leadingComma                   bool
	alwaysUseParentheses           bool
	caseClausesOnNewLines          bool
	whereListItemsOnSeparateLines  bool
	selectListItemsOnSeparateLines bool
	selectListExtraIndentFlag      bool
	subQueryStyle                  SubQueryStyle

	windowDeclListNewline bool
	valuesListNewline     bool
	updateSetListNewline  bool

	lineFolding      optFolding
	selectFolding    optFolding
	fromFolding      LineFolding
	whereFolding     optFolding
	groupByFolding   optFolding
	havingFolding    optFolding
	windowFolding    optFolding
	matchFolding     optFolding
	orderByFolding   optFolding
	overFolding      optFolding
	valuesFolding    optFolding
	updateSetFolding optFolding
}

var defaultConfig = Config{
	quoteAllIdentifiers:       true,
	indentation:               4,
	foldLength:                80,
	clauseStartsLine:          true,
	selectListExtraIndentFlag: true,
	subQueryStyle:             Hyde,
	windowDeclListNewline:     true,
	valuesListNewline:         true,
	updateSetListNewline:      true,
	fromFolding:               Tall,
}

// Default returns the canonical default configuration.
func Default() Config {
	return defaultConfig
}

// Equal reports whether c and o hold the same settings. Dialects are compared
// with == when their type allows it, and by name otherwise.
func (c Config) Equal(o Config) bool {
	if !sameDialect(c.dialect, o.dialect) {
		return false
	}

	c.dialect, o.dialect = nil, nil
	return c == o
}

func sameDialect(a, b Dialect) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}

	ta, tb := reflect.TypeOf(a), reflect.TypeOf(b)
	if ta != tb {
		return false
	}
	if ta.Comparable() {
		return a == b
	}

	return a.Name() == b.Name()
}

// Dialect returns the dialect, or nil when none is configured.
func (c Config) Dialect() Dialect { return c.dialect }

// WithDialect returns a copy using d. A nil d removes the dialect.
func (c Config) WithDialect(d Dialect) Config {
	c.dialect = d
	return c
}

// KeywordsLowerCase reports whether keywords are written in lower case.
func (c Config) KeywordsLowerCase() bool { return c.keywordsLowerCase }

func (c Config) WithKeywordsLowerCase(v bool) Config {
	c.keywordsLowerCase = v
	return c
}

// QuoteAllIdentifiers reports whether every identifier is quoted, not only those
// that require it.
func (c Config) QuoteAllIdentifiers() bool { return c.quoteAllIdentifiers }

func (c Config) WithQuoteAllIdentifiers(v bool) Config {
	c.quoteAllIdentifiers = v
	return c
}

// Indentation is the number of spaces per indentation level.
func (c Config) Indentation() int { return c.indentation }

// WithIndentation returns a copy with n spaces per level. n must not be negative.
func (c Config) WithIndentation(n int) (Config, error) {
	if err := nonNegative("indentation", n); err != nil {
		return c, err
	}

	c.indentation = n
	return c, nil
}

// LineLength is the maximum line length; 0 means unbounded.
func (c Config) LineLength() int { return c.lineLength }

// WithLineLength returns a copy with the given maximum line length. n must not be
// negative.
func (c Config) WithLineLength(n int) (Config, error) {
	if err := nonNegative("line_length", n); err != nil {
		return c, err
	}

	c.lineLength = n
	return c, nil
}

// FoldLength is the width above which Fold and Chop clauses wrap. With 0 those
// clauses always wrap.
func (c Config) FoldLength() int { return c.foldLength }

// WithFoldLength returns a copy with the given fold threshold. n must not be
// negative.
func (c Config) WithFoldLength(n int) (Config, error) {
	if err := nonNegative("fold_length", n); err != nil {
		return c, err
	}

	c.foldLength = n
	return c, nil
}

// ClauseStartsLine reports whether each clause (FROM, WHERE, ...) starts a new line.
func (c Config) ClauseStartsLine() bool { return c.clauseStartsLine }

func (c Config) WithClauseStartsLine(v bool) Config {
	c.clauseStartsLine = v
	return c
}

// ClauseEndsLine reports whether a clause keyword is followed by a line break.
func (c Config) ClauseEndsLine() bool { return c.clauseEndsLine }

func (c Config) WithClauseEndsLine(v bool) Config {
	c.clauseEndsLine = v
	return c
}

// WindowNewline reports whether each WINDOW declaration starts a new line.
func (c Config) WindowNewline() bool { return c.windowNewline }

func (c Config) WithWindowNewline(v bool) Config {
	c.windowNewline = v
	return c
}

// LeadingComma reports whether list separators are written at the start of the
// following line.
func (c Config) LeadingComma() bool { return c.leadingComma }

func (c Config) WithLeadingComma(v bool) Config {
	c.leadingComma = v
	return c
}

// AlwaysUseParentheses reports whether every operand of an operator is
// parenthesized.
func (c Config) AlwaysUseParentheses() bool { return c.alwaysUseParentheses }

func (c Config) WithAlwaysUseParentheses(v bool) Config {
	c.alwaysUseParentheses = v
	return c
}

// CaseClausesOnNewLines reports whether WHEN, THEN and ELSE start new lines.
func (c Config) CaseClausesOnNewLines() bool { return c.caseClausesOnNewLines }

func (c Config) WithCaseClausesOnNewLines(v bool) Config {
	c.caseClausesOnNewLines = v
	return c
}

// WhereListItemsOnSeparateLines reports whether each AND/OR term of a WHERE
// clause starts a new line.
func (c Config) WhereListItemsOnSeparateLines() bool { return c.whereListItemsOnSeparateLines }

func (c Config) WithWhereListItemsOnSeparateLines(v bool) Config {
	c.whereListItemsOnSeparateLines = v
	return c
}

// SelectListItemsOnSeparateLines is the legacy switch for the SELECT list. It is
// superseded by SelectFolding and LineFolding when either is set.
func (c Config) SelectListItemsOnSeparateLines() bool { return c.selectListItemsOnSeparateLines }

func (c Config) WithSelectListItemsOnSeparateLines(v bool) Config {
	c.selectListItemsOnSeparateLines = v
	return c
}

// SelectListExtraIndentFlag reports whether the first SELECT item is aligned with
// the following items when the list is folded.
func (c Config) SelectListExtraIndentFlag() bool { return c.selectListExtraIndentFlag }

func (c Config) WithSelectListExtraIndentFlag(v bool) Config {
	c.selectListExtraIndentFlag = v
	return c
}

// SubQueryStyle is the indentation style of sub-queries.
func (c Config) SubQueryStyle() SubQueryStyle { return c.subQueryStyle }

// WithSubQueryStyle returns a copy with the given sub-query style.
func (c Config) WithSubQueryStyle(s SubQueryStyle) Config {
	c.subQueryStyle = s
	return c
}

// WindowDeclListNewline is the legacy switch for the WINDOW list, superseded by
// WindowFolding and LineFolding.
func (c Config) WindowDeclListNewline() bool { return c.windowDeclListNewline }

func (c Config) WithWindowDeclListNewline(v bool) Config {
	c.windowDeclListNewline = v
	return c
}

// ValuesListNewline is the legacy switch for VALUES rows, superseded by
// ValuesFolding and LineFolding.
func (c Config) ValuesListNewline() bool { return c.valuesListNewline }

func (c Config) WithValuesListNewline(v bool) Config {
	c.valuesListNewline = v
	return c
}

// UpdateSetListNewline is the legacy switch for UPDATE SET assignments,
// superseded by UpdateSetFolding and LineFolding.
func (c Config) UpdateSetListNewline() bool { return c.updateSetListNewline }

func (c Config) WithUpdateSetListNewline(v bool) Config {
	c.updateSetListNewline = v
	return c
}

// LineFolding is the global folding default, or nil when unset.
func (c Config) LineFolding() *LineFolding { return c.lineFolding.ptr() }

// WithLineFolding sets the global folding default; nil unsets it.
func (c Config) WithLineFolding(f *LineFolding) Config {
	c.lineFolding = optFromPtr(f)
	return c
}

// FromFolding is the folding of FROM and its joins. Unlike the other clauses it
// is never unset.
func (c Config) FromFolding() LineFolding { return c.fromFolding }

func (c Config) WithFromFolding(f LineFolding) Config {
	c.fromFolding = f
	return c
}

func (c Config) SelectFolding() *LineFolding { return c.selectFolding.ptr() }

func (c Config) WithSelectFolding(f *LineFolding) Config {
	c.selectFolding = optFromPtr(f)
	return c
}

func (c Config) WhereFolding() *LineFolding { return c.whereFolding.ptr() }

func (c Config) WithWhereFolding(f *LineFolding) Config {
	c.whereFolding = optFromPtr(f)
	return c
}

func (c Config) GroupByFolding() *LineFolding { return c.groupByFolding.ptr() }

func (c Config) WithGroupByFolding(f *LineFolding) Config {
	c.groupByFolding = optFromPtr(f)
	return c
}

func (c Config) HavingFolding() *LineFolding { return c.havingFolding.ptr() }

func (c Config) WithHavingFolding(f *LineFolding) Config {
	c.havingFolding = optFromPtr(f)
	return c
}

func (c Config) WindowFolding() *LineFolding { return c.windowFolding.ptr() }

func (c Config) WithWindowFolding(f *LineFolding) Config {
	c.windowFolding = optFromPtr(f)
	return c
}

// MatchFolding is the folding of MATCH_RECOGNIZE, or nil when unset.
func (c Config) MatchFolding() *LineFolding { return c.matchFolding.ptr() }

func (c Config) WithMatchFolding(f *LineFolding) Config {
	c.matchFolding = optFromPtr(f)
	return c
}

func (c Config) OrderByFolding() *LineFolding { return c.orderByFolding.ptr() }

func (c Config) WithOrderByFolding(f *LineFolding) Config {
	c.orderByFolding = optFromPtr(f)
	return c
}

// OverFolding is the folding of window specifications in OVER, or nil when unset.
func (c Config) OverFolding() *LineFolding { return c.overFolding.ptr() }

func (c Config) WithOverFolding(f *LineFolding) Config {
	c.overFolding = optFromPtr(f)
	return c
}

func (c Config) ValuesFolding() *LineFolding { return c.valuesFolding.ptr() }

func (c Config) WithValuesFolding(f *LineFolding) Config {
	c.valuesFolding = optFromPtr(f)
	return c
}

func (c Config) UpdateSetFolding() *LineFolding { return c.updateSetFolding.ptr() }

func (c Config) WithUpdateSetFolding(f *LineFolding) Config {
	c.updateSetFolding = optFromPtr(f)
	return c
}
