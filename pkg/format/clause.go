package format

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// Clause identifies a section of a statement whose list layout is configurable.
type Clause int

const (
	Select Clause = iota
	From
	Where
	GroupBy
	Having
	Window
	// Match is the MATCH_RECOGNIZE clause.
	Match
	OrderBy
	// Over is the window specification of an OVER clause.
	Over
	Values
	// UpdateSet is the assignment list of UPDATE ... SET.
	UpdateSet
)

var clauseNames = [...]string{
	Select:    "SELECT",
	From:      "FROM",
	Where:     "WHERE",
	GroupBy:   "GROUP_BY",
	Having:    "HAVING",
	Window:    "WINDOW",
	Match:     "MATCH_RECOGNIZE",
	OrderBy:   "ORDER_BY",
	Over:      "OVER",
	Values:    "VALUES",
	UpdateSet: "UPDATE_SET",
}

// Clauses returns every clause in declaration order.
func Clauses() []Clause {
	out := make([]Clause, len(clauseNames))
	for i := range clauseNames {
		out[i] = Clause(i)
	}

	return out
}

func (c Clause) String() string {
	if c < 0 || int(c) >= len(clauseNames) {
		return "Clause(" + strconv.Itoa(int(c)) + ")"
	}

	return clauseNames[c]
}

// ParseClause parses a clause name. It is case-insensitive and accepts spaces or
// dashes in place of underscores ("group by", "update-set"), plus "MATCH" for
// MATCH_RECOGNIZE.
func ParseClause(s string) (Clause, error) {
	name := strings.ToUpper(strings.TrimSpace(s))
	name = strings.NewReplacer(" ", "_", "-", "_").Replace(name)
	if name == "MATCH" {
		return Match, nil
	}

	for i, n := range clauseNames {
		if n == name {
			return Clause(i), nil
		}
	}

	return Select, errors.Errorf("unknown clause: %s", s)
}
