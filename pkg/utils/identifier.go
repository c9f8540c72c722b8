package utils

import "strings"

// identifierQuotes are the quote pairs recognised when splitting qualified names.
var identifierQuotes = map[byte]byte{
	'`': '`',
	'"': '"',
	'[': ']',
}

// IsQuoted checks if s is a single identifier wrapped in the given quotes, with no
// unescaped closing quote inside.
//
// Examples (backticks):
//   - "`table`" -> true
//   - "table" -> false
//   - "`db`.`table`" -> false (qualified name, not a single quoted identifier)
//   - "`a``b`" -> true (doubled quote is an escape)
//   - "" -> false
func IsQuoted(s, open, close string) bool {
	if len(s) < len(open)+len(close) || !strings.HasPrefix(s, open) || !strings.HasSuffix(s, close) {
		return false
	}

	inner := s[len(open) : len(s)-len(close)]
	return !strings.Contains(strings.ReplaceAll(inner, close+close, ""), close)
}

// SplitQualified splits a qualified name on the dots that are not inside a quoted
// part. Quotes are kept on the parts.
//
// Examples:
//   - "db.table" -> ["db", "table"]
//   - "`my.db`.table" -> ["`my.db`", "table"]
//   - `"a"."b.c"` -> [`"a"`, `"b.c"`]
//   - "" -> []
func SplitQualified(name string) []string {
	if name == "" {
		return nil
	}

	var (
		parts   []string
		start   int
		closing byte
	)

	for i := 0; i < len(name); i++ {
		c := name[i]
		switch {
		case closing != 0:
			if c == closing {
				// A doubled closing quote is an escaped quote.
				if i+1 < len(name) && name[i+1] == closing {
					i++
					continue
				}
				closing = 0
			}
		case c == '.':
			parts = append(parts, name[start:i])
			start = i + 1
		default:
			if cl, ok := identifierQuotes[c]; ok {
				closing = cl
			}
		}
	}

	return append(parts, name[start:])
}

// QuoteQualified applies quote to every part of a qualified name and joins the
// parts back with dots.
//
// Examples (quote adds backticks):
//   - "table" -> "`table`"
//   - "database.table" -> "`database`.`table`"
//   - "" -> ""
func QuoteQualified(name string, quote func(part string) string) string {
	parts := SplitQualified(name)
	for i, p := range parts {
		parts[i] = quote(p)
	}

	return strings.Join(parts, ".")
}
