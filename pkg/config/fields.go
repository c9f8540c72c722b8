package config

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/pseudomuto/sqlfold/pkg/dialect"
	"github.com/pseudomuto/sqlfold/pkg/utils"
)

// FoldingPrefix prefixes the keys of folding settings in their flat form
// ("folding.select"). In YAML they are nested under a "folding" mapping.
const FoldingPrefix = "folding."

type valueKind int

const (
	kindBool valueKind = iota
	kindInt
	kindString
)

// field binds a setting key to its accessor and "with" operation. Both loaders go
// through this table, so every external key becomes exactly one With call.
type field struct {
	key  string
	kind valueKind
	// get returns the textual value, or false when the setting is unset.
	get func(Config) (string, bool)
	set func(Config, string) (Config, error)
}

var (
	fields     []field
	fieldsByID map[string]field
)

func init() {
	fields = []field{
		{
			key:  "dialect",
			kind: kindString,
			get: func(c Config) (string, bool) {
				if c.dialect == nil {
					return "", false
				}
				return c.dialect.Name(), true
			},
			set: func(c Config, s string) (Config, error) {
				if s == "" {
					return c.WithDialect(nil), nil
				}
				d, err := dialect.Lookup(s)
				if err != nil {
					return c, &InvalidConfigurationError{Field: "dialect", Value: s, Reason: err.Error()}
				}
				return c.WithDialect(d), nil
			},
		},
		boolField("keywords_lower_case", Config.KeywordsLowerCase, Config.WithKeywordsLowerCase),
		boolField("quote_all_identifiers", Config.QuoteAllIdentifiers, Config.WithQuoteAllIdentifiers),
		intField("indentation", Config.Indentation, Config.WithIndentation),
		boolField("clause_starts_line", Config.ClauseStartsLine, Config.WithClauseStartsLine),
		boolField("clause_ends_line", Config.ClauseEndsLine, Config.WithClauseEndsLine),
		boolField("select_list_items_on_separate_lines", Config.SelectListItemsOnSeparateLines, Config.WithSelectListItemsOnSeparateLines),
		boolField("select_list_extra_indent", Config.SelectListExtraIndentFlag, Config.WithSelectListExtraIndentFlag),
		boolField("window_decl_list_newline", Config.WindowDeclListNewline, Config.WithWindowDeclListNewline),
		boolField("values_list_newline", Config.ValuesListNewline, Config.WithValuesListNewline),
		boolField("update_set_list_newline", Config.UpdateSetListNewline, Config.WithUpdateSetListNewline),
		boolField("window_newline", Config.WindowNewline, Config.WithWindowNewline),
		boolField("leading_comma", Config.LeadingComma, Config.WithLeadingComma),
		{
			key:  "sub_query_style",
			kind: kindString,
			get:  func(c Config) (string, bool) { return c.subQueryStyle.String(), c.subQueryStyle.Valid() },
			set: func(c Config, s string) (Config, error) {
				style, err := ParseSubQueryStyle(s)
				if err != nil {
					return c, err
				}
				return c.WithSubQueryStyle(style), nil
			},
		},
		boolField("where_list_items_on_separate_lines", Config.WhereListItemsOnSeparateLines, Config.WithWhereListItemsOnSeparateLines),
		boolField("always_use_parentheses", Config.AlwaysUseParentheses, Config.WithAlwaysUseParentheses),
		boolField("case_clauses_on_new_lines", Config.CaseClausesOnNewLines, Config.WithCaseClausesOnNewLines),
		intField("line_length", Config.LineLength, Config.WithLineLength),
		intField("fold_length", Config.FoldLength, Config.WithFoldLength),
		optFoldingField(FoldingPrefix+"default", Config.LineFolding, Config.WithLineFolding),
		optFoldingField(FoldingPrefix+"select", Config.SelectFolding, Config.WithSelectFolding),
		{
			key:  FoldingPrefix + "from",
			kind: kindString,
			get:  func(c Config) (string, bool) { return c.fromFolding.String(), c.fromFolding.Valid() },
			set: func(c Config, s string) (Config, error) {
				f, err := ParseLineFolding(s)
				if err != nil {
					return c, err
				}
				return c.WithFromFolding(f), nil
			},
		},
		optFoldingField(FoldingPrefix+"where", Config.WhereFolding, Config.WithWhereFolding),
		optFoldingField(FoldingPrefix+"group_by", Config.GroupByFolding, Config.WithGroupByFolding),
		optFoldingField(FoldingPrefix+"having", Config.HavingFolding, Config.WithHavingFolding),
		optFoldingField(FoldingPrefix+"window", Config.WindowFolding, Config.WithWindowFolding),
		optFoldingField(FoldingPrefix+"match", Config.MatchFolding, Config.WithMatchFolding),
		optFoldingField(FoldingPrefix+"order_by", Config.OrderByFolding, Config.WithOrderByFolding),
		optFoldingField(FoldingPrefix+"over", Config.OverFolding, Config.WithOverFolding),
		optFoldingField(FoldingPrefix+"values", Config.ValuesFolding, Config.WithValuesFolding),
		optFoldingField(FoldingPrefix+"update_set", Config.UpdateSetFolding, Config.WithUpdateSetFolding),
	}

	fieldsByID = make(map[string]field, len(fields))
	for _, f := range fields {
		fieldsByID[f.key] = f
	}
}

// Keys returns every setting key accepted by Set, in file order.
func Keys() []string {
	keys := make([]string, len(fields))
	for i, f := range fields {
		keys[i] = f.key
	}

	return keys
}

// Set applies a single setting given in textual form, e.g. Set(cfg, "indentation", "2")
// or Set(cfg, "folding.select", "chop"). An empty value (or "null") clears an
// optional folding override.
func Set(c Config, key, value string) (Config, error) {
	f, ok := fieldsByID[strings.ToLower(strings.TrimSpace(key))]
	if !ok {
		return c, errors.Errorf("unknown setting: %s", key)
	}

	return f.set(c, value)
}

func boolField(key string, get func(Config) bool, with func(Config, bool) Config) field {
	return field{
		key:  key,
		kind: kindBool,
		get:  func(c Config) (string, bool) { return strconv.FormatBool(get(c)), true },
		set: func(c Config, s string) (Config, error) {
			v, err := strconv.ParseBool(strings.TrimSpace(s))
			if err != nil {
				return c, &InvalidConfigurationError{Field: key, Value: s, Reason: "expected a boolean"}
			}
			return with(c, v), nil
		},
	}
}

func intField(key string, get func(Config) int, with func(Config, int) (Config, error)) field {
	return field{
		key:  key,
		kind: kindInt,
		get:  func(c Config) (string, bool) { return strconv.Itoa(get(c)), true },
		set: func(c Config, s string) (Config, error) {
			v, err := strconv.Atoi(strings.TrimSpace(s))
			if err != nil {
				return c, &InvalidConfigurationError{Field: key, Value: s, Reason: "expected an integer"}
			}
			return with(c, v)
		},
	}
}

func optFoldingField(key string, get func(Config) *LineFolding, with func(Config, *LineFolding) Config) field {
	return field{
		key:  key,
		kind: kindString,
		get: func(c Config) (string, bool) {
			if f := get(c); f != nil && f.Valid() {
				return f.String(), true
			}
			return "", false
		},
		set: func(c Config, s string) (Config, error) {
			if s == "" || strings.EqualFold(s, "null") {
				return with(c, nil), nil
			}
			f, err := ParseLineFolding(s)
			if err != nil {
				return c, &InvalidConfigurationError{Field: key, Value: s, Reason: "unknown line folding"}
			}
			return with(c, utils.Ptr(f)), nil
		},
	}
}
