// Package engine executes parsed statements against tables held in the
// namespaced key-value store.
//
// Each statement operates on one whole table: the table is read,
// transformed in memory, and written back as a single entry. That makes
// every mutation atomic with respect to its table on any backend whose
// Set is all-or-nothing. There is no locking; the store is private to one
// process and operations run synchronously to completion.
package engine

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/questlog/questlog/internal/kv"
	"github.com/questlog/questlog/internal/record"
	"github.com/questlog/questlog/internal/sqlparse"
)

// Executor runs statements against a key-value backend.
type Executor struct {
	backend kv.Backend
	logger  *slog.Logger
}

// New creates an Executor over the given backend. A nil logger discards
// diagnostics.
func New(backend kv.Backend, logger *slog.Logger) *Executor {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Executor{backend: backend, logger: logger}
}

// Query executes a SELECT statement and returns the matching rows, or a
// single count row for COUNT(*).
func (e *Executor) Query(stmt sqlparse.Statement, params []any) ([]*record.Row, error) {
	sel, ok := stmt.(*sqlparse.Select)
	if !ok {
		return nil, fmt.Errorf("query requires a SELECT statement, got %T", stmt)
	}
	return e.execSelect(sel, params)
}

// Execute runs a mutation statement and returns the affected row count.
func (e *Executor) Execute(stmt sqlparse.Statement, params []any) (int, error) {
	switch s := stmt.(type) {
	case *sqlparse.Insert:
		return e.execInsert(s, params)
	case *sqlparse.Update:
		return e.execUpdate(s, params)
	case *sqlparse.Delete:
		return e.execDelete(s, params)
	default:
		return 0, fmt.Errorf("execute requires INSERT, UPDATE, or DELETE, got %T", stmt)
	}
}

// loadTable reads and deserializes a table. A missing entry is an empty
// table, and so is a corrupt one: a single damaged table must not take
// the application down, so corruption is logged and read as empty.
func (e *Executor) loadTable(name string) record.Table {
	data, ok, err := e.backend.Get(kv.Key(name))
	if err != nil {
		e.logger.Error("table read failed, treating as empty", "table", name, "error", err)
		return nil
	}
	if !ok {
		return nil
	}
	table, err := record.UnmarshalTable(data)
	if err != nil {
		e.logger.Error("table deserialize failed, treating as empty", "table", name, "error", err)
		return nil
	}
	return table
}

// saveTable serializes and persists a table as one key-value entry.
func (e *Executor) saveTable(name string, table record.Table) error {
	data, err := table.Marshal()
	if err != nil {
		return fmt.Errorf("serialize table %q: %w", name, err)
	}
	if err := e.backend.Set(kv.Key(name), data); err != nil {
		return fmt.Errorf("persist table %q: %w", name, err)
	}
	return nil
}

// resolve converts a value expression into a runtime value. Placeholders
// pull the parameter at their ordinal; an ordinal past the end of the
// parameter list binds NULL with a diagnostic rather than failing the
// statement.
func (e *Executor) resolve(expr sqlparse.Expr, params []any) record.Value {
	switch v := expr.(type) {
	case sqlparse.Literal:
		return v.Value
	case sqlparse.Placeholder:
		if v.Ordinal >= len(params) {
			e.logger.Warn("placeholder without a parameter, binding NULL",
				"ordinal", v.Ordinal, "supplied", len(params))
			return record.Null{}
		}
		return record.FromGo(params[v.Ordinal])
	default:
		return record.Null{}
	}
}
