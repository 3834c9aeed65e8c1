package engine

import (
	"github.com/questlog/questlog/internal/record"
	"github.com/questlog/questlog/internal/sqlparse"
)

// execInsert appends one new row to a table, creating the table on first
// insert. When the caller supplied parameters, column values come
// positionally from the parameter list; otherwise the coerced VALUES
// literals are used.
func (e *Executor) execInsert(ins *sqlparse.Insert, params []any) (int, error) {
	row := record.NewRow()

	if len(params) > 0 {
		for i, col := range ins.Columns {
			if i >= len(params) {
				e.logger.Warn("insert column without a parameter, binding NULL",
					"table", ins.Table, "column", col)
				row.Set(col, record.Null{})
				continue
			}
			row.Set(col, record.FromGo(params[i]))
		}
	} else {
		for i, col := range ins.Columns {
			if i >= len(ins.Values) {
				e.logger.Warn("insert column without a value, binding NULL",
					"table", ins.Table, "column", col)
				row.Set(col, record.Null{})
				continue
			}
			row.Set(col, e.resolve(ins.Values[i], nil))
		}
		if len(ins.Values) > len(ins.Columns) {
			e.logger.Warn("insert values beyond the column list dropped",
				"table", ins.Table,
				"columns", len(ins.Columns), "values", len(ins.Values))
		}
	}

	table := append(e.loadTable(ins.Table), row)
	if err := e.saveTable(ins.Table, table); err != nil {
		return 0, err
	}
	return 1, nil
}
