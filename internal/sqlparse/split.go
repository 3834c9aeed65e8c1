package sqlparse

import "strings"

// SplitList splits a comma-separated fragment into its top-level items,
// each trimmed of surrounding whitespace. A comma is a split point only
// when no quote is open and bracket depth is zero, so quoted strings and
// parenthesized, bracketed, or braced literals (JSON values in
// particular) pass through intact.
//
// The parser consumes token streams directly; SplitList serves callers
// holding raw fragments, such as comma-separated parameter lists.
func SplitList(fragment string) []string {
	if strings.TrimSpace(fragment) == "" {
		return nil
	}

	var (
		items []string
		start int
		depth int
		quote byte // 0 when no quote is open
	)

	for i := 0; i < len(fragment); i++ {
		c := fragment[i]
		switch {
		case quote != 0:
			if c == '\\' {
				i++ // escaped character inside quotes
			} else if c == quote {
				quote = 0
			}
		case c == '\'' || c == '"':
			quote = c
		case c == '{' || c == '[' || c == '(':
			depth++
		case c == '}' || c == ']' || c == ')':
			depth--
		case c == ',' && depth == 0:
			items = append(items, strings.TrimSpace(fragment[start:i]))
			start = i + 1
		}
	}
	items = append(items, strings.TrimSpace(fragment[start:]))
	return items
}
