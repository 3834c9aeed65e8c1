package sqlparse

import "github.com/questlog/questlog/internal/record"

// Statement is the common interface for parsed statements.
//
// This is a sealed interface - only types in this package implement it.
// The marker method pattern enables exhaustive type switches in the
// execution engine.
type Statement interface {
	stmtNode()
}

// Select represents a parsed SELECT statement.
type Select struct {
	Table   string
	Count   bool     // COUNT(*) projection
	Columns []string // nil means all columns (*)
	Where   Predicate
	OrderBy *OrderBy
	Limit   *int
}

func (*Select) stmtNode() {}

// OrderBy is the ORDER BY clause of a SELECT. Direction defaults to
// ascending when omitted.
type OrderBy struct {
	Column string
	Desc   bool
}

// Insert represents a parsed INSERT statement. One row per statement.
//
// Values holds the literal/placeholder expressions from the VALUES list.
// When the caller supplies a parameter list the engine binds columns
// positionally from it instead, so Values is the fallback path.
type Insert struct {
	Table   string
	Columns []string
	Values  []Expr
}

func (*Insert) stmtNode() {}

// Update represents a parsed UPDATE statement.
type Update struct {
	Table string
	Sets  []Assignment
	Where Predicate
}

func (*Update) stmtNode() {}

// Assignment is one column = value entry of a SET list.
type Assignment struct {
	Column string
	Value  Expr
}

// Delete represents a parsed DELETE statement. A nil Where means every
// row in the table is deleted, matching SQL semantics.
type Delete struct {
	Table string
	Where Predicate
}

func (*Delete) stmtNode() {}

// Expr is a value expression in a SET list, VALUES list, or predicate:
// either a coerced literal or a positional placeholder.
//
// Sealed - only Literal and Placeholder implement it.
type Expr interface {
	exprNode()
}

// Literal is a value known at parse time.
type Literal struct {
	Value record.Value
}

func (Literal) exprNode() {}

// Placeholder is a ? token. Ordinal is the zero-based index into the
// caller's parameter list, assigned in scan order (SET before WHERE).
type Placeholder struct {
	Ordinal int
}

func (Placeholder) exprNode() {}

// Predicate is a filter condition tree.
//
// Sealed - only And and Compare implement it. Only AND conjunctions are
// representable today; the tree shape leaves room for OR/NOT without an
// incompatible rewrite.
type Predicate interface {
	predicateNode()
}

// And holds a conjunction of conditions. A row matches only if every
// condition matches.
type And struct {
	Conditions []Predicate
}

func (And) predicateNode() {}

// CompareOp is a comparison operator in a predicate.
type CompareOp string

const (
	OpEq    CompareOp = "="
	OpNeq   CompareOp = "!="
	OpGt    CompareOp = ">"
	OpLt    CompareOp = "<"
	OpGte   CompareOp = ">="
	OpLte   CompareOp = "<="
	OpIs    CompareOp = "IS"
	OpIsNot CompareOp = "IS NOT"
)

// Compare is a single column OP value condition.
type Compare struct {
	Column string
	Op     CompareOp
	Value  Expr
}

func (Compare) predicateNode() {}
