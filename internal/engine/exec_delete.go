package engine

import (
	"github.com/questlog/questlog/internal/record"
	"github.com/questlog/questlog/internal/sqlparse"
)

// execDelete removes every row matching the WHERE predicate and persists
// the remainder. No WHERE clause deletes every row, matching SQL
// semantics. The affected count is the difference in table length.
func (e *Executor) execDelete(del *sqlparse.Delete, params []any) (int, error) {
	table := e.loadTable(del.Table)

	kept := make(record.Table, 0, len(table))
	for _, row := range table {
		if del.Where != nil && !e.matches(row, del.Where, params) {
			kept = append(kept, row)
		}
	}

	removed := len(table) - len(kept)
	if removed == 0 {
		return 0, nil
	}
	if err := e.saveTable(del.Table, kept); err != nil {
		return 0, err
	}
	return removed, nil
}
