package sqlparse

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrUnsupportedStatement marks a statement whose leading keyword is not
// SELECT, INSERT, UPDATE, or DELETE. The storage contract treats this as
// a fail-soft case, not a hard failure.
var ErrUnsupportedStatement = errors.New("unsupported statement")

// ErrUnsupportedSyntax marks statement text the dialect deliberately does
// not cover (OR/NOT predicates, grouping, batch VALUES, and similar).
// The original engine's behavior for these inputs was undefined; rejecting
// them explicitly is safer than misparsing.
var ErrUnsupportedSyntax = errors.New("unsupported syntax")

// Parse parses one statement of the constrained dialect into its AST.
func Parse(input string) (Statement, error) {
	toks, err := lex(input)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnsupportedSyntax, err)
	}
	// Tolerate one trailing semicolon.
	if n := len(toks); n > 0 && toks[n-1].kind == tokenSymbol && toks[n-1].text == ";" {
		toks = toks[:n-1]
	}
	if len(toks) == 0 {
		return nil, fmt.Errorf("%w: empty statement", ErrUnsupportedStatement)
	}

	p := &parser{toks: toks}
	lead := toks[0]
	if lead.kind != tokenIdent {
		return nil, fmt.Errorf("%w: statement starts with %s", ErrUnsupportedStatement, lead)
	}

	var stmt Statement
	switch {
	case strings.EqualFold(lead.text, "SELECT"):
		stmt, err = p.parseSelect()
	case strings.EqualFold(lead.text, "INSERT"):
		stmt, err = p.parseInsert()
	case strings.EqualFold(lead.text, "UPDATE"):
		stmt, err = p.parseUpdate()
	case strings.EqualFold(lead.text, "DELETE"):
		stmt, err = p.parseDelete()
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedStatement, lead.text)
	}
	if err != nil {
		return nil, err
	}
	if !p.atEnd() {
		return nil, fmt.Errorf("%w: unexpected %s after statement", ErrUnsupportedSyntax, p.peek())
	}
	return stmt, nil
}

type parser struct {
	toks         []token
	pos          int
	placeholders int // next placeholder ordinal, in scan order
}

func (p *parser) atEnd() bool {
	return p.pos >= len(p.toks)
}

func (p *parser) peek() token {
	if p.atEnd() {
		return token{kind: tokenSymbol, text: "<end>"}
	}
	return p.toks[p.pos]
}

func (p *parser) next() token {
	t := p.peek()
	p.pos++
	return t
}

// peekKeyword reports whether the next token is the given bare keyword.
func (p *parser) peekKeyword(word string) bool {
	t := p.peek()
	return t.kind == tokenIdent && strings.EqualFold(t.text, word)
}

// acceptKeyword consumes the next token if it is the given keyword.
func (p *parser) acceptKeyword(word string) bool {
	if p.peekKeyword(word) {
		p.pos++
		return true
	}
	return false
}

func (p *parser) expectKeyword(word string) error {
	if !p.acceptKeyword(word) {
		return fmt.Errorf("%w: expected %s, got %s", ErrUnsupportedSyntax, word, p.peek())
	}
	return nil
}

// acceptSymbol consumes the next token if it is the given symbol.
func (p *parser) acceptSymbol(sym string) bool {
	t := p.peek()
	if t.kind == tokenSymbol && t.text == sym {
		p.pos++
		return true
	}
	return false
}

func (p *parser) expectSymbol(sym string) error {
	if !p.acceptSymbol(sym) {
		return fmt.Errorf("%w: expected %q, got %s", ErrUnsupportedSyntax, sym, p.peek())
	}
	return nil
}

func (p *parser) expectIdent() (string, error) {
	t := p.peek()
	if t.kind != tokenIdent {
		return "", fmt.Errorf("%w: expected identifier, got %s", ErrUnsupportedSyntax, t)
	}
	p.pos++
	return t.text, nil
}

// parseSelect parses the remainder of a SELECT statement. The leading
// SELECT keyword is still at the cursor.
func (p *parser) parseSelect() (*Select, error) {
	if err := p.expectKeyword("SELECT"); err != nil {
		return nil, err
	}

	sel := &Select{}
	switch {
	case p.acceptSymbol("*"):
		// All columns.
	case p.peekKeyword("COUNT"):
		p.pos++
		if err := p.expectSymbol("("); err != nil {
			return nil, err
		}
		if err := p.expectSymbol("*"); err != nil {
			return nil, err
		}
		if err := p.expectSymbol(")"); err != nil {
			return nil, err
		}
		sel.Count = true
	default:
		for {
			col, err := p.expectIdent()
			if err != nil {
				return nil, err
			}
			sel.Columns = append(sel.Columns, col)
			if !p.acceptSymbol(",") {
				break
			}
		}
	}

	if err := p.expectKeyword("FROM"); err != nil {
		return nil, err
	}
	table, err := p.expectIdent()
	if err != nil {
		return nil, err
	}
	sel.Table = table

	if p.acceptKeyword("WHERE") {
		where, err := p.parsePredicate()
		if err != nil {
			return nil, err
		}
		sel.Where = where
	}

	if p.acceptKeyword("ORDER") {
		if err := p.expectKeyword("BY"); err != nil {
			return nil, err
		}
		col, err := p.expectIdent()
		if err != nil {
			return nil, err
		}
		ob := &OrderBy{Column: col}
		if p.acceptKeyword("DESC") {
			ob.Desc = true
		} else {
			p.acceptKeyword("ASC") // default direction
		}
		sel.OrderBy = ob
	}

	if p.acceptKeyword("LIMIT") {
		t := p.peek()
		if t.kind != tokenNumber {
			return nil, fmt.Errorf("%w: LIMIT requires a number, got %s", ErrUnsupportedSyntax, t)
		}
		p.pos++
		n, err := strconv.Atoi(t.text)
		if err != nil || n < 0 {
			return nil, fmt.Errorf("%w: LIMIT %s is not a non-negative integer", ErrUnsupportedSyntax, t.text)
		}
		sel.Limit = &n
	}

	return sel, nil
}

// parseInsert parses INSERT INTO t (cols) VALUES (vals).
func (p *parser) parseInsert() (*Insert, error) {
	if err := p.expectKeyword("INSERT"); err != nil {
		return nil, err
	}
	if err := p.expectKeyword("INTO"); err != nil {
		return nil, err
	}
	table, err := p.expectIdent()
	if err != nil {
		return nil, err
	}
	ins := &Insert{Table: table}

	if err := p.expectSymbol("("); err != nil {
		return nil, err
	}
	for {
		col, err := p.expectIdent()
		if err != nil {
			return nil, err
		}
		ins.Columns = append(ins.Columns, col)
		if !p.acceptSymbol(",") {
			break
		}
	}
	if err := p.expectSymbol(")"); err != nil {
		return nil, err
	}

	if err := p.expectKeyword("VALUES"); err != nil {
		return nil, err
	}
	if err := p.expectSymbol("("); err != nil {
		return nil, err
	}
	for {
		expr, err := p.parseValueExpr()
		if err != nil {
			return nil, err
		}
		ins.Values = append(ins.Values, expr)
		if !p.acceptSymbol(",") {
			break
		}
	}
	if err := p.expectSymbol(")"); err != nil {
		return nil, err
	}

	// Batch inserts are a single-row dialect away; reject the second
	// tuple rather than silently dropping it.
	if p.acceptSymbol(",") {
		return nil, fmt.Errorf("%w: multi-row VALUES", ErrUnsupportedSyntax)
	}

	return ins, nil
}

// parseUpdate parses UPDATE t SET col = val[, ...] [WHERE ...].
// SET is parsed before WHERE, so placeholder ordinals partition the
// parameter list SET-first.
func (p *parser) parseUpdate() (*Update, error) {
	if err := p.expectKeyword("UPDATE"); err != nil {
		return nil, err
	}
	table, err := p.expectIdent()
	if err != nil {
		return nil, err
	}
	upd := &Update{Table: table}

	if err := p.expectKeyword("SET"); err != nil {
		return nil, err
	}
	for {
		col, err := p.expectIdent()
		if err != nil {
			return nil, err
		}
		if err := p.expectSymbol("="); err != nil {
			return nil, err
		}
		val, err := p.parseValueExpr()
		if err != nil {
			return nil, err
		}
		upd.Sets = append(upd.Sets, Assignment{Column: col, Value: val})
		if !p.acceptSymbol(",") {
			break
		}
	}

	if p.acceptKeyword("WHERE") {
		where, err := p.parsePredicate()
		if err != nil {
			return nil, err
		}
		upd.Where = where
	}

	return upd, nil
}

// parseDelete parses DELETE FROM t [WHERE ...]. No WHERE means every row
// is deleted.
func (p *parser) parseDelete() (*Delete, error) {
	if err := p.expectKeyword("DELETE"); err != nil {
		return nil, err
	}
	if err := p.expectKeyword("FROM"); err != nil {
		return nil, err
	}
	table, err := p.expectIdent()
	if err != nil {
		return nil, err
	}
	del := &Delete{Table: table}

	if p.acceptKeyword("WHERE") {
		where, err := p.parsePredicate()
		if err != nil {
			return nil, err
		}
		del.Where = where
	}

	return del, nil
}

// parsePredicate parses an AND-only conjunction of comparisons. OR, NOT,
// and parenthesized groups are rejected.
func (p *parser) parsePredicate() (Predicate, error) {
	var conds []Predicate
	for {
		if p.peekKeyword("OR") || p.peekKeyword("NOT") {
			return nil, fmt.Errorf("%w: %s in WHERE clause", ErrUnsupportedSyntax, strings.ToUpper(p.peek().text))
		}
		if t := p.peek(); t.kind == tokenSymbol && t.text == "(" {
			return nil, fmt.Errorf("%w: grouped conditions in WHERE clause", ErrUnsupportedSyntax)
		}

		cond, err := p.parseCompare()
		if err != nil {
			return nil, err
		}
		conds = append(conds, cond)

		if p.peekKeyword("OR") {
			return nil, fmt.Errorf("%w: OR in WHERE clause", ErrUnsupportedSyntax)
		}
		if !p.acceptKeyword("AND") {
			break
		}
	}
	if len(conds) == 1 {
		return conds[0], nil
	}
	return And{Conditions: conds}, nil
}

// parseCompare parses one column OP value condition.
func (p *parser) parseCompare() (Predicate, error) {
	col, err := p.expectIdent()
	if err != nil {
		return nil, err
	}

	var op CompareOp
	t := p.peek()
	switch {
	case t.kind == tokenSymbol:
		switch t.text {
		case "=", "!=", ">", "<", ">=", "<=":
			op = CompareOp(t.text)
			p.pos++
		default:
			return nil, fmt.Errorf("%w: operator %q", ErrUnsupportedSyntax, t.text)
		}
	case t.kind == tokenIdent && strings.EqualFold(t.text, "IS"):
		p.pos++
		op = OpIs
		if p.acceptKeyword("NOT") {
			op = OpIsNot
		}
	default:
		return nil, fmt.Errorf("%w: expected operator after %q, got %s", ErrUnsupportedSyntax, col, t)
	}

	val, err := p.parseValueExpr()
	if err != nil {
		return nil, err
	}
	return Compare{Column: col, Op: op, Value: val}, nil
}

// parseValueExpr parses one value position: a placeholder, a quoted
// string, a number, or a bare word run through literal coercion
// (true/false/NULL/identifier-as-string).
func (p *parser) parseValueExpr() (Expr, error) {
	t := p.peek()
	switch t.kind {
	case tokenPlaceholder:
		p.pos++
		ph := Placeholder{Ordinal: p.placeholders}
		p.placeholders++
		return ph, nil
	case tokenString:
		p.pos++
		return Literal{Value: coerceQuoted(t.text)}, nil
	case tokenNumber:
		p.pos++
		return Literal{Value: coerceBare(t.text)}, nil
	case tokenIdent:
		p.pos++
		return Literal{Value: coerceBare(t.text)}, nil
	default:
		return nil, fmt.Errorf("%w: expected value, got %s", ErrUnsupportedSyntax, t)
	}
}
