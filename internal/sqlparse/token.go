package sqlparse

import (
	"fmt"
	"strings"
	"unicode"
)

type tokenKind int

const (
	tokenIdent  tokenKind = iota
	tokenString           // quoted literal; text holds the unquoted content
	tokenNumber
	tokenPlaceholder // a single ? token
	tokenSymbol      // = != > < >= <= ( ) , * ;
)

// token is one lexical unit of a statement, with the byte offset of its
// first character in the source text.
type token struct {
	kind tokenKind
	text string
	pos  int
}

func (t token) String() string {
	switch t.kind {
	case tokenString:
		return fmt.Sprintf("'%s'", t.text)
	case tokenPlaceholder:
		return "?"
	default:
		return t.text
	}
}

// lex splits a statement into tokens. Quoted strings (single or double
// quotes) support backslash escapes and doubled-quote escapes; the token
// carries the unquoted content.
func lex(input string) ([]token, error) {
	var toks []token
	i := 0
	for i < len(input) {
		c := input[i]
		switch {
		case c == ' ' || c == '\t' || c == '\n' || c == '\r':
			i++

		case c == '?':
			toks = append(toks, token{kind: tokenPlaceholder, text: "?", pos: i})
			i++

		case c == '\'' || c == '"':
			content, width, err := lexQuoted(input[i:], c)
			if err != nil {
				return nil, fmt.Errorf("at offset %d: %w", i, err)
			}
			toks = append(toks, token{kind: tokenString, text: content, pos: i})
			i += width

		case c >= '0' && c <= '9',
			(c == '-' || c == '.') && i+1 < len(input) && input[i+1] >= '0' && input[i+1] <= '9':
			text, width := lexNumber(input[i:])
			toks = append(toks, token{kind: tokenNumber, text: text, pos: i})
			i += width

		case isIdentStart(rune(c)):
			start := i
			for i < len(input) && isIdentPart(rune(input[i])) {
				i++
			}
			toks = append(toks, token{kind: tokenIdent, text: input[start:i], pos: start})

		case c == '>' || c == '<' || c == '!':
			if i+1 < len(input) && input[i+1] == '=' {
				toks = append(toks, token{kind: tokenSymbol, text: input[i : i+2], pos: i})
				i += 2
			} else if c == '!' {
				return nil, fmt.Errorf("at offset %d: unexpected character %q", i, c)
			} else {
				toks = append(toks, token{kind: tokenSymbol, text: string(c), pos: i})
				i++
			}

		case strings.ContainsRune("=(),*;", rune(c)):
			toks = append(toks, token{kind: tokenSymbol, text: string(c), pos: i})
			i++

		default:
			return nil, fmt.Errorf("at offset %d: unexpected character %q", i, c)
		}
	}
	return toks, nil
}

// lexQuoted reads a quoted literal starting at input[0] == quote.
// Returns the unquoted content and the total width consumed, including
// both quote characters.
func lexQuoted(input string, quote byte) (string, int, error) {
	var sb strings.Builder
	i := 1
	for i < len(input) {
		c := input[i]
		switch {
		case c == '\\' && i+1 < len(input):
			sb.WriteByte(input[i+1])
			i += 2
		case c == quote:
			// Doubled quote is an escaped quote.
			if i+1 < len(input) && input[i+1] == quote {
				sb.WriteByte(quote)
				i += 2
				continue
			}
			return sb.String(), i + 1, nil
		default:
			sb.WriteByte(c)
			i++
		}
	}
	return "", 0, fmt.Errorf("unterminated %q-quoted string", quote)
}

// lexNumber reads a numeric literal: optional sign, digits, optional
// fraction, optional exponent. Validity is checked later by ParseFloat;
// the lexer only finds the extent.
func lexNumber(input string) (string, int) {
	i := 0
	if input[i] == '-' {
		i++
	}
	sawExp := false
	for i < len(input) {
		c := input[i]
		switch {
		case c >= '0' && c <= '9' || c == '.':
			i++
		case (c == 'e' || c == 'E') && !sawExp:
			sawExp = true
			i++
			if i < len(input) && (input[i] == '+' || input[i] == '-') {
				i++
			}
		default:
			return input[:i], i
		}
	}
	return input[:i], i
}

func isIdentStart(r rune) bool {
	return r == '_' || unicode.IsLetter(r)
}

func isIdentPart(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
}
