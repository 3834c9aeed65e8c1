package sqlparse

import (
	"strconv"
	"strings"

	"github.com/questlog/questlog/internal/record"
)

// CoerceLiteral converts a raw literal fragment into a typed value.
//
// Precedence: a value wrapped in matching single or double quotes becomes
// a string (quotes stripped); true/false (case-sensitive) becomes a
// boolean; NULL (any case) becomes null; otherwise a numeric parse is
// attempted, falling back to the raw string so unquoted identifiers stay
// strings instead of becoming zero.
func CoerceLiteral(raw string) record.Value {
	s := strings.TrimSpace(raw)
	if len(s) >= 2 {
		if (s[0] == '\'' && s[len(s)-1] == '\'') || (s[0] == '"' && s[len(s)-1] == '"') {
			return coerceQuoted(unescapeQuoted(s[1:len(s)-1], s[0]))
		}
	}
	return coerceBare(s)
}

// coerceQuoted wraps already-unquoted string content.
func coerceQuoted(content string) record.Value {
	return record.String(content)
}

// coerceBare applies the non-string precedence to an unquoted token.
func coerceBare(s string) record.Value {
	switch s {
	case "true":
		return record.Bool(true)
	case "false":
		return record.Bool(false)
	}
	if strings.EqualFold(s, "NULL") {
		return record.Null{}
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return record.Number(f)
	}
	return record.String(s)
}

// unescapeQuoted resolves backslash and doubled-quote escapes inside a
// quoted literal whose outer quotes are already stripped.
func unescapeQuoted(content string, quote byte) string {
	if !strings.ContainsAny(content, `\`+string(quote)) {
		return content
	}
	var sb strings.Builder
	for i := 0; i < len(content); i++ {
		c := content[i]
		if (c == '\\' || c == quote) && i+1 < len(content) {
			sb.WriteByte(content[i+1])
			i++
			continue
		}
		sb.WriteByte(c)
	}
	return sb.String()
}
