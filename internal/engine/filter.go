package engine

import (
	"strconv"

	"github.com/questlog/questlog/internal/record"
	"github.com/questlog/questlog/internal/sqlparse"
)

// matches evaluates a predicate against a row. A nil predicate matches
// every row. All conditions of a conjunction must hold.
func (e *Executor) matches(row *record.Row, pred sqlparse.Predicate, params []any) bool {
	switch p := pred.(type) {
	case nil:
		return true
	case sqlparse.And:
		for _, cond := range p.Conditions {
			if !e.matches(row, cond, params) {
				return false
			}
		}
		return true
	case sqlparse.Compare:
		return e.compare(row, p, params)
	default:
		// Unknown condition shapes are trivially true; the parser does
		// not produce them today.
		return true
	}
}

// compare evaluates one column OP value condition. IS and IS NOT treat a
// missing column as NULL; every other operator is false for a missing
// column.
func (e *Executor) compare(row *record.Row, cmp sqlparse.Compare, params []any) bool {
	want := e.resolve(cmp.Value, params)
	got, present := row.Get(cmp.Column)

	switch cmp.Op {
	case sqlparse.OpIs, sqlparse.OpIsNot:
		if !present {
			got = record.Null{}
		}
		eq := looseEqual(got, want)
		if cmp.Op == sqlparse.OpIsNot {
			return !eq
		}
		return eq
	}

	if !present {
		return false
	}

	switch cmp.Op {
	case sqlparse.OpEq:
		return looseEqual(got, want)
	case sqlparse.OpNeq:
		return !looseEqual(got, want)
	case sqlparse.OpGt, sqlparse.OpLt, sqlparse.OpGte, sqlparse.OpLte:
		ord, ok := orderCompare(got, want)
		if !ok {
			return false
		}
		switch cmp.Op {
		case sqlparse.OpGt:
			return ord > 0
		case sqlparse.OpLt:
			return ord < 0
		case sqlparse.OpGte:
			return ord >= 0
		default:
			return ord <= 0
		}
	}
	return false
}

// looseEqual compares two values permitting cross-kind matches: numbers,
// booleans (as 0/1), and numeric strings compare numerically; everything
// else compares by rendered form. NULL equals only NULL.
func looseEqual(a, b record.Value) bool {
	_, aNull := a.(record.Null)
	_, bNull := b.(record.Null)
	if aNull || bNull {
		return aNull && bNull
	}
	if fa, ok := asNumber(a); ok {
		if fb, ok := asNumber(b); ok {
			return fa == fb
		}
	}
	return record.Render(a) == record.Render(b)
}

// orderCompare orders two values for ordering operators and ORDER BY:
// numerically when both sides are numeric, otherwise by rendered string.
// NULL does not order against anything.
func orderCompare(a, b record.Value) (int, bool) {
	if _, ok := a.(record.Null); ok {
		return 0, false
	}
	if _, ok := b.(record.Null); ok {
		return 0, false
	}
	if fa, aok := asNumber(a); aok {
		if fb, bok := asNumber(b); bok {
			switch {
			case fa < fb:
				return -1, true
			case fa > fb:
				return 1, true
			default:
				return 0, true
			}
		}
	}
	ra, rb := record.Render(a), record.Render(b)
	switch {
	case ra < rb:
		return -1, true
	case ra > rb:
		return 1, true
	default:
		return 0, true
	}
}

// asNumber reports the numeric reading of a value: numbers as-is,
// booleans as 0/1, and strings that parse as numbers.
func asNumber(v record.Value) (float64, bool) {
	switch t := v.(type) {
	case record.Number:
		return float64(t), true
	case record.Bool:
		if t {
			return 1, true
		}
		return 0, true
	case record.String:
		f, err := strconv.ParseFloat(string(t), 64)
		if err != nil {
			return 0, false
		}
		return f, true
	}
	return 0, false
}
