package engine

import (
	"sort"

	"github.com/questlog/questlog/internal/record"
	"github.com/questlog/questlog/internal/sqlparse"
)

// execSelect filters, orders, truncates, and projects rows from one
// table. COUNT(*) short-circuits to a single row with the size of the
// filtered set.
func (e *Executor) execSelect(sel *sqlparse.Select, params []any) ([]*record.Row, error) {
	table := e.loadTable(sel.Table)

	matched := make([]*record.Row, 0, len(table))
	for _, row := range table {
		if e.matches(row, sel.Where, params) {
			matched = append(matched, row)
		}
	}

	if sel.Count {
		row := record.NewRow()
		row.Set("count", record.Number(len(matched)))
		return []*record.Row{row}, nil
	}

	if sel.OrderBy != nil {
		orderRows(matched, sel.OrderBy)
	}

	if sel.Limit != nil && len(matched) > *sel.Limit {
		matched = matched[:*sel.Limit]
	}

	if sel.Columns != nil {
		projected := make([]*record.Row, len(matched))
		for i, row := range matched {
			p := record.NewRow()
			for _, col := range sel.Columns {
				if v, ok := row.Get(col); ok {
					p.Set(col, v)
				}
			}
			projected[i] = p
		}
		matched = projected
	}

	return matched, nil
}

// orderRows sorts rows by one column. The sort is stable so ties keep
// their original relative order; rows where the comparison is undefined
// (NULL or missing column) also keep their position.
func orderRows(rows []*record.Row, by *sqlparse.OrderBy) {
	sort.SliceStable(rows, func(i, j int) bool {
		a, aok := rows[i].Get(by.Column)
		b, bok := rows[j].Get(by.Column)
		if !aok || !bok {
			return false
		}
		ord, ok := orderCompare(a, b)
		if !ok {
			return false
		}
		if by.Desc {
			return ord > 0
		}
		return ord < 0
	})
}
