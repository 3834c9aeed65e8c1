package engine

import (
	"github.com/questlog/questlog/internal/sqlparse"
)

// execUpdate applies every SET assignment to every row matching the WHERE
// predicate. Assignments run on a clone which then replaces the original
// at the same position, so row identity is preserved and unmatched rows
// are untouched.
func (e *Executor) execUpdate(upd *sqlparse.Update, params []any) (int, error) {
	table := e.loadTable(upd.Table)

	affected := 0
	for i, row := range table {
		if !e.matches(row, upd.Where, params) {
			continue
		}
		updated := row.Clone()
		for _, set := range upd.Sets {
			updated.Set(set.Column, e.resolve(set.Value, params))
		}
		table[i] = updated
		affected++
	}

	if affected == 0 {
		return 0, nil
	}
	if err := e.saveTable(upd.Table, table); err != nil {
		return 0, err
	}
	return affected, nil
}
