package config

import (
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
	"github.com/pkg/errors"
)

type (
	// settingsList is a comma separated list of key=value pairs.
	settingsList struct {
		Settings []*setting `parser:"(@@ (',' @@)*)? ','?"`
	}

	setting struct {
		Pos   lexer.Position
		Key   string `parser:"@Ident (@'.' @Ident)?"`
		Value string `parser:"'=' @(String | Ident | '-'? Number)?"`
	}
)

var (
	settingsLexer = lexer.MustSimple([]lexer.SimpleRule{
		{Name: "String", Pattern: `'([^'\\]|\\.)*'|"([^"\\]|\\.)*"`},
		{Name: "Number", Pattern: `\d+`},
		{Name: "Ident", Pattern: `[a-zA-Z_][a-zA-Z0-9_]*`},
		{Name: "Punct", Pattern: `[=,.\-]`},
		{Name: "Whitespace", Pattern: `\s+`},
	})

	settingsParser = participle.MustBuild[settingsList](
		participle.Lexer(settingsLexer),
		participle.Elide("Whitespace"),
		participle.Unquote("String"),
	)
)

// ApplySettings applies a compact list of settings on top of c, left to right:
//
//	cfg, err := config.ApplySettings(cfg, "indentation=2, folding.select=chop, dialect='mysql'")
//
// Keys are the same as in the YAML file, with nested folding keys written as
// "folding.<clause>". Values are bare words, integers or quoted strings; an empty
// value clears an optional folding override. An empty string returns c unchanged.
func ApplySettings(c Config, s string) (Config, error) {
	if strings.TrimSpace(s) == "" {
		return c, nil
	}

	list, err := settingsParser.ParseString("settings", s)
	if err != nil {
		return c, errors.Wrapf(err, "failed to parse settings %q", s)
	}

	for _, st := range list.Settings {
		if c, err = Set(c, st.Key, st.Value); err != nil {
			return c, errors.Wrapf(err, "column %d", st.Pos.Column)
		}
	}

	return c, nil
}
