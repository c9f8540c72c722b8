package config_test

import (
	"sync"
	"testing"

	. "github.com/pseudomuto/sqlfold/pkg/config"
	"github.com/pseudomuto/sqlfold/pkg/dialect"
	"github.com/pseudomuto/sqlfold/pkg/utils"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	checks := []struct {
		name string
		got  any
		want any
	}{
		{"Dialect", cfg.Dialect(), nil},
		{"KeywordsLowerCase", cfg.KeywordsLowerCase(), false},
		{"QuoteAllIdentifiers", cfg.QuoteAllIdentifiers(), true},
		{"Indentation", cfg.Indentation(), 4},
		{"LineLength", cfg.LineLength(), 0},
		{"FoldLength", cfg.FoldLength(), 80},
		{"ClauseStartsLine", cfg.ClauseStartsLine(), true},
		{"ClauseEndsLine", cfg.ClauseEndsLine(), false},
		{"WindowNewline", cfg.WindowNewline(), false},
		{"LeadingComma", cfg.LeadingComma(), false},
		{"AlwaysUseParentheses", cfg.AlwaysUseParentheses(), false},
		{"CaseClausesOnNewLines", cfg.CaseClausesOnNewLines(), false},
		{"WhereListItemsOnSeparateLines", cfg.WhereListItemsOnSeparateLines(), false},
		{"SelectListItemsOnSeparateLines", cfg.SelectListItemsOnSeparateLines(), false},
		{"SelectListExtraIndentFlag", cfg.SelectListExtraIndentFlag(), true},
		{"SubQueryStyle", cfg.SubQueryStyle(), Hyde},
		{"WindowDeclListNewline", cfg.WindowDeclListNewline(), true},
		{"ValuesListNewline", cfg.ValuesListNewline(), true},
		{"UpdateSetListNewline", cfg.UpdateSetListNewline(), true},
		{"FromFolding", cfg.FromFolding(), Tall},
	}

	for _, c := range checks {
		require.Equal(t, c.want, c.got, c.name)
	}

	unset := map[string]*LineFolding{
		"LineFolding":      cfg.LineFolding(),
		"SelectFolding":    cfg.SelectFolding(),
		"WhereFolding":     cfg.WhereFolding(),
		"GroupByFolding":   cfg.GroupByFolding(),
		"HavingFolding":    cfg.HavingFolding(),
		"WindowFolding":    cfg.WindowFolding(),
		"MatchFolding":     cfg.MatchFolding(),
		"OrderByFolding":   cfg.OrderByFolding(),
		"OverFolding":      cfg.OverFolding(),
		"ValuesFolding":    cfg.ValuesFolding(),
		"UpdateSetFolding": cfg.UpdateSetFolding(),
	}
	for name, f := range unset {
		require.Nil(t, f, name)
	}

	require.True(t, Default().Equal(Default()))
}

func TestConfig_WithLeavesReceiverUnchanged(t *testing.T) {
	base := Default()

	changed := base.
		WithDialect(dialect.MySQL).
		WithKeywordsLowerCase(true).
		WithQuoteAllIdentifiers(false).
		WithClauseStartsLine(false).
		WithClauseEndsLine(true).
		WithWindowNewline(true).
		WithLeadingComma(true).
		WithAlwaysUseParentheses(true).
		WithCaseClausesOnNewLines(true).
		WithWhereListItemsOnSeparateLines(true).
		WithSelectListItemsOnSeparateLines(true).
		WithSelectListExtraIndentFlag(false).
		WithSubQueryStyle(Black).
		WithWindowDeclListNewline(false).
		WithValuesListNewline(false).
		WithUpdateSetListNewline(false).
		WithLineFolding(utils.Ptr(Fold)).
		WithSelectFolding(utils.Ptr(Chop)).
		WithFromFolding(Wide).
		WithWhereFolding(utils.Ptr(Step)).
		WithGroupByFolding(utils.Ptr(Tall)).
		WithHavingFolding(utils.Ptr(Wide)).
		WithWindowFolding(utils.Ptr(Fold)).
		WithMatchFolding(utils.Ptr(Chop)).
		WithOrderByFolding(utils.Ptr(Step)).
		WithOverFolding(utils.Ptr(Tall)).
		WithValuesFolding(utils.Ptr(Wide)).
		WithUpdateSetFolding(utils.Ptr(Fold))

	require.True(t, base.Equal(Default()), "receiver must not change")
	require.False(t, changed.Equal(base))

	require.Equal(t, dialect.MySQL, changed.Dialect())
	require.True(t, changed.KeywordsLowerCase())
	require.False(t, changed.QuoteAllIdentifiers())
	require.False(t, changed.ClauseStartsLine())
	require.True(t, changed.ClauseEndsLine())
	require.True(t, changed.WindowNewline())
	require.True(t, changed.LeadingComma())
	require.True(t, changed.AlwaysUseParentheses())
	require.True(t, changed.CaseClausesOnNewLines())
	require.True(t, changed.WhereListItemsOnSeparateLines())
	require.True(t, changed.SelectListItemsOnSeparateLines())
	require.False(t, changed.SelectListExtraIndentFlag())
	require.Equal(t, Black, changed.SubQueryStyle())
	require.False(t, changed.WindowDeclListNewline())
	require.False(t, changed.ValuesListNewline())
	require.False(t, changed.UpdateSetListNewline())
	require.Equal(t, Fold, *changed.LineFolding())
	require.Equal(t, Chop, *changed.SelectFolding())
	require.Equal(t, Wide, changed.FromFolding())
	require.Equal(t, Step, *changed.WhereFolding())
	require.Equal(t, Tall, *changed.GroupByFolding())
	require.Equal(t, Wide, *changed.HavingFolding())
	require.Equal(t, Fold, *changed.WindowFolding())
	require.Equal(t, Chop, *changed.MatchFolding())
	require.Equal(t, Step, *changed.OrderByFolding())
	require.Equal(t, Tall, *changed.OverFolding())
	require.Equal(t, Wide, *changed.ValuesFolding())
	require.Equal(t, Fold, *changed.UpdateSetFolding())
}

func TestConfig_WithDiffersInOneField(t *testing.T) {
	base := Default()

	require.True(t, base.WithKeywordsLowerCase(false).Equal(base))
	require.True(t, base.WithKeywordsLowerCase(true).WithKeywordsLowerCase(false).Equal(base))
	require.True(t, base.WithSelectFolding(utils.Ptr(Chop)).WithSelectFolding(nil).Equal(base))
	require.True(t, base.WithDialect(dialect.ANSI).WithDialect(nil).Equal(base))
}

func TestConfig_OptionalFolding(t *testing.T) {
	t.Run("unset is distinct from wide", func(t *testing.T) {
		wide := Default().WithSelectFolding(utils.Ptr(Wide))
		require.NotNil(t, wide.SelectFolding())
		require.Equal(t, Wide, *wide.SelectFolding())
		require.False(t, wide.Equal(Default()))
	})

	t.Run("accessor returns a copy", func(t *testing.T) {
		cfg := Default().WithLineFolding(utils.Ptr(Fold))
		*cfg.LineFolding() = Tall
		require.Equal(t, Fold, *cfg.LineFolding())
	})

	t.Run("caller pointer is not retained", func(t *testing.T) {
		f := Chop
		cfg := Default().WithOrderByFolding(&f)
		f = Wide
		require.Equal(t, Chop, *cfg.OrderByFolding())
	})
}

func TestConfig_WithIndentation(t *testing.T) {
	a := Default()

	once, err := a.WithIndentation(4)
	require.NoError(t, err)
	twice, err := once.WithIndentation(4)
	require.NoError(t, err)
	require.True(t, once.Equal(twice))

	two, err := a.WithIndentation(2)
	require.NoError(t, err)
	require.Equal(t, 2, two.Indentation())
	require.Equal(t, 4, a.Indentation())

	zero, err := a.WithIndentation(0)
	require.NoError(t, err)
	require.Equal(t, 0, zero.Indentation())
}

func TestConfig_RejectsNegativeIntegers(t *testing.T) {
	tests := []struct {
		field string
		with  func(Config) (Config, error)
	}{
		{"indentation", func(c Config) (Config, error) { return c.WithIndentation(-1) }},
		{"line_length", func(c Config) (Config, error) { return c.WithLineLength(-1) }},
		{"fold_length", func(c Config) (Config, error) { return c.WithFoldLength(-10) }},
	}

	for _, tt := range tests {
		t.Run(tt.field, func(t *testing.T) {
			base := Default()

			_, err := tt.with(base)
			require.Error(t, err)
			require.ErrorIs(t, err, ErrInvalidConfiguration)

			var invalid *InvalidConfigurationError
			require.ErrorAs(t, err, &invalid)
			require.Equal(t, tt.field, invalid.Field)
			require.Contains(t, err.Error(), "must not be negative")

			// the receiver is still valid and usable
			require.True(t, base.Equal(Default()))
			next, err := base.WithFoldLength(100)
			require.NoError(t, err)
			require.Equal(t, 100, next.FoldLength())
		})
	}
}

func TestConfig_LengthLimits(t *testing.T) {
	cfg, err := Default().WithLineLength(120)
	require.NoError(t, err)
	cfg, err = cfg.WithFoldLength(0)
	require.NoError(t, err)

	require.Equal(t, 120, cfg.LineLength())
	require.Equal(t, 0, cfg.FoldLength())
}

func TestConfig_ConcurrentReaders(t *testing.T) {
	cfg := Default().WithSelectFolding(utils.Ptr(Chop))

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			derived := cfg.WithKeywordsLowerCase(i%2 == 0)
			_ = derived.SelectFolding()
		}(i)
	}
	wg.Wait()

	require.False(t, cfg.KeywordsLowerCase())
	require.Equal(t, Chop, *cfg.SelectFolding())
}

func TestLineFolding(t *testing.T) {
	t.Run("names", func(t *testing.T) {
		names := make([]string, 0, 5)
		for _, f := range LineFoldings() {
			names = append(names, f.String())
		}
		require.Equal(t, []string{"WIDE", "STEP", "FOLD", "CHOP", "TALL"}, names)
		require.Equal(t, "LineFolding(9)", LineFolding(9).String())
	})

	t.Run("ordered by wrap eagerness", func(t *testing.T) {
		require.Less(t, Wide, Step)
		require.Less(t, Step, Fold)
		require.Less(t, Fold, Chop)
		require.Less(t, Chop, Tall)
	})

	t.Run("parse", func(t *testing.T) {
		f, err := ParseLineFolding(" chop ")
		require.NoError(t, err)
		require.Equal(t, Chop, f)

		_, err = ParseLineFolding("squash")
		require.ErrorIs(t, err, ErrInvalidConfiguration)
	})

	t.Run("text round trip", func(t *testing.T) {
		text, err := Tall.MarshalText()
		require.NoError(t, err)
		require.Equal(t, "TALL", string(text))

		var f LineFolding
		require.NoError(t, f.UnmarshalText([]byte("fold")))
		require.Equal(t, Fold, f)

		require.Error(t, f.UnmarshalText([]byte("nope")))
		require.Equal(t, Fold, f)

		_, err = LineFolding(-1).MarshalText()
		require.ErrorIs(t, err, ErrInvalidConfiguration)
	})
}

func TestSubQueryStyle(t *testing.T) {
	s, err := ParseSubQueryStyle("black")
	require.NoError(t, err)
	require.Equal(t, Black, s)
	require.Equal(t, "BLACK", s.String())
	require.Equal(t, "HYDE", Hyde.String())

	_, err = ParseSubQueryStyle("tabs")
	require.ErrorIs(t, err, ErrInvalidConfiguration)

	require.True(t, Hyde.Valid())
	require.True(t, Black.Valid())
	require.False(t, SubQueryStyle(7).Valid())
}

// mapDialect is a dialect whose type cannot be compared with ==.
type mapDialect struct {
	name     string
	reserved map[string]bool
}

func (d mapDialect) Name() string                       { return d.name }
func (d mapDialect) QuoteIdentifier(name string) string { return `"` + name + `"` }
func (d mapDialect) NeedsQuote(name string) bool        { return d.reserved[name] }

func TestConfig_EqualDialects(t *testing.T) {
	t.Run("uncomparable dialect", func(t *testing.T) {
		a := Default().WithDialect(mapDialect{name: "custom", reserved: map[string]bool{}})
		b := Default().WithDialect(mapDialect{name: "custom", reserved: map[string]bool{"x": true}})
		c := Default().WithDialect(mapDialect{name: "other", reserved: map[string]bool{}})

		require.NotPanics(t, func() { a.Equal(b) })
		require.True(t, a.Equal(b))
		require.True(t, a.Equal(a))
		require.False(t, a.Equal(c))
		require.False(t, a.Equal(Default()))
		require.False(t, Default().Equal(a))
		require.False(t, a.Equal(Default().WithDialect(dialect.ANSI)))
	})

	t.Run("comparable dialect", func(t *testing.T) {
		require.True(t, Default().WithDialect(dialect.MySQL).Equal(Default().WithDialect(dialect.MySQL)))
		require.False(t, Default().WithDialect(dialect.MySQL).Equal(Default().WithDialect(dialect.ClickHouse)))
	})

	t.Run("other fields still count", func(t *testing.T) {
		d := mapDialect{name: "custom"}
		require.False(t, Default().WithDialect(d).Equal(Default().WithDialect(d).WithLeadingComma(true)))
	})
}
