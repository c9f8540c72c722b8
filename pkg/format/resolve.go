package format

import "github.com/pseudomuto/sqlfold/pkg/config"

// Source records which setting produced an effective folding policy.
type Source int

const (
	// SourceOverride means the clause's own folding setting applied.
	SourceOverride Source = iota
	// SourceGlobal means the global line folding applied.
	SourceGlobal
	// SourceLegacy means the clause's legacy boolean switch applied.
	SourceLegacy
	// SourceDefault means nothing was configured for the clause.
	SourceDefault
)

func (s Source) String() string {
	switch s {
	case SourceOverride:
		return "override"
	case SourceGlobal:
		return "global"
	case SourceLegacy:
		return "legacy"
	default:
		return "default"
	}
}

// Resolution is an effective folding policy together with its origin.
type Resolution struct {
	Clause  Clause
	Folding config.LineFolding
	Source  Source
}

// Resolve computes the folding policy of clause under cfg.
//
// The clause's own setting wins when set; FROM's setting is never unset. Next
// comes the global line folding. Last, clauses that predate folding policies fall
// back to their boolean switch (true is TALL, false is WIDE) and every other
// clause to WIDE. Values outside the declared policies are skipped as if unset.
// The result is fully determined by its inputs.
func Resolve(cfg config.Config, clause Clause) Resolution {
	r := Resolution{Clause: clause}

	if clause == From {
		r.Folding, r.Source = cfg.FromFolding(), SourceOverride
		if !r.Folding.Valid() {
			r.Folding, r.Source = config.Tall, SourceDefault
		}
		return r
	}

	if f := override(cfg, clause); f != nil && f.Valid() {
		r.Folding, r.Source = *f, SourceOverride
		return r
	}

	if f := cfg.LineFolding(); f != nil && f.Valid() {
		r.Folding, r.Source = *f, SourceGlobal
		return r
	}

	if legacy, ok := legacySwitch(cfg, clause); ok {
		r.Folding, r.Source = config.Wide, SourceLegacy
		if legacy {
			r.Folding = config.Tall
		}
		return r
	}

	r.Folding, r.Source = config.Wide, SourceDefault
	return r
}

// Effective returns the folding policy that applies to clause under cfg. It
// always returns one of the declared policies.
func Effective(cfg config.Config, clause Clause) config.LineFolding {
	return Resolve(cfg, clause).Folding
}

// ItemsOnSeparateLines reports whether every item of clause goes on its own line
// unconditionally. For SELECT, WINDOW, VALUES and UPDATE SET with no folding
// configured this is the clause's legacy switch; once a folding policy is set,
// the switch is ignored.
func ItemsOnSeparateLines(cfg config.Config, clause Clause) bool {
	return Effective(cfg, clause) == config.Tall
}

// ResolveAll resolves every clause, in declaration order.
func ResolveAll(cfg config.Config) []Resolution {
	clauses := Clauses()
	out := make([]Resolution, len(clauses))
	for i, c := range clauses {
		out[i] = Resolve(cfg, c)
	}

	return out
}

func override(cfg config.Config, clause Clause) *config.LineFolding {
	switch clause {
	case Select:
		return cfg.SelectFolding()
	case Where:
		return cfg.WhereFolding()
	case GroupBy:
		return cfg.GroupByFolding()
	case Having:
		return cfg.HavingFolding()
	case Window:
		return cfg.WindowFolding()
	case Match:
		return cfg.MatchFolding()
	case OrderBy:
		return cfg.OrderByFolding()
	case Over:
		return cfg.OverFolding()
	case Values:
		return cfg.ValuesFolding()
	case UpdateSet:
		return cfg.UpdateSetFolding()
	default:
		return nil
	}
}

func legacySwitch(cfg config.Config, clause Clause) (bool, bool) {
	switch clause {
	case Select:
		return cfg.SelectListItemsOnSeparateLines(), true
	case Window:
		return cfg.WindowDeclListNewline(), true
	case Values:
		return cfg.ValuesListNewline(), true
	case UpdateSet:
		return cfg.UpdateSetListNewline(), true
	default:
		return false, false
	}
}
