package config

import (
	"strconv"
	"strings"
)

// LineFolding controls how the items of a clause are spread across lines. Values
// are ordered by how eagerly they wrap, from Wide (never) to Tall (always).
type LineFolding int

const (
	// Wide keeps every item on one line regardless of its width.
	Wide LineFolding = iota
	// Step keeps items on one line, but the clause may end its own line.
	Step
	// Fold wraps only when the line exceeds the fold length, packing items densely.
	Fold
	// Chop puts every item on its own line once the line exceeds the fold length.
	Chop
	// Tall always puts every item on its own line.
	Tall
)

var lineFoldingNames = [...]string{"WIDE", "STEP", "FOLD", "CHOP", "TALL"}

// LineFoldings returns all folding policies in ascending wrap order.
func LineFoldings() []LineFolding {
	return []LineFolding{Wide, Step, Fold, Chop, Tall}
}

func (f LineFolding) String() string {
	if !f.Valid() {
		return "LineFolding(" + strconv.Itoa(int(f)) + ")"
	}

	return lineFoldingNames[f]
}

// Valid reports whether f is one of the declared policies.
func (f LineFolding) Valid() bool {
	return f >= Wide && f <= Tall
}

// MarshalText implements encoding.TextMarshaler.
func (f LineFolding) MarshalText() ([]byte, error) {
	if !f.Valid() {
		return nil, &InvalidConfigurationError{Field: "line_folding", Value: int(f), Reason: "unknown line folding"}
	}

	return []byte(f.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (f *LineFolding) UnmarshalText(text []byte) error {
	v, err := ParseLineFolding(string(text))
	if err != nil {
		return err
	}

	*f = v
	return nil
}

// ParseLineFolding parses a policy name case-insensitively ("chop", "CHOP").
func ParseLineFolding(s string) (LineFolding, error) {
	name := strings.ToUpper(strings.TrimSpace(s))
	for i, n := range lineFoldingNames {
		if n == name {
			return LineFolding(i), nil
		}
	}

	return Wide, &InvalidConfigurationError{Field: "line_folding", Value: s, Reason: "unknown line folding"}
}

// SubQueryStyle selects how sub-queries are indented.
type SubQueryStyle int

const (
	// Hyde places the opening parenthesis on its own line, aligned with the
	// enclosing clause.
	Hyde SubQueryStyle = iota
	// Black opens the parenthesis at the end of the line and indents the body.
	Black
)

func (s SubQueryStyle) String() string {
	switch s {
	case Hyde:
		return "HYDE"
	case Black:
		return "BLACK"
	default:
		return "SubQueryStyle(" + strconv.Itoa(int(s)) + ")"
	}
}

// Valid reports whether s is one of the declared styles.
func (s SubQueryStyle) Valid() bool {
	return s == Hyde || s == Black
}

// ParseSubQueryStyle parses a style name case-insensitively.
func ParseSubQueryStyle(s string) (SubQueryStyle, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "HYDE":
		return Hyde, nil
	case "BLACK":
		return Black, nil
	default:
		return Hyde, &InvalidConfigurationError{Field: "sub_query_style", Value: s, Reason: "unknown sub-query style"}
	}
}

// optFolding is a LineFolding that may be unset. The zero value is unset, which
// keeps "unset" distinct from Wide.
type optFolding struct {
	value LineFolding
	set   bool
}

func someFolding(f LineFolding) optFolding {
	return optFolding{value: f, set: true}
}

func optFromPtr(p *LineFolding) optFolding {
	if p == nil {
		return optFolding{}
	}

	return someFolding(*p)
}

// ptr returns a fresh pointer, or nil when unset.
func (o optFolding) ptr() *LineFolding {
	if !o.set {
		return nil
	}

	v := o.value
	return &v
}
