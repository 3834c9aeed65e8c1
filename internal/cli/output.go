package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/questlog/questlog/internal/record"
)

// RenderRows writes a row set in the requested format. Text output is an
// aligned column table over the union of row columns in first-seen order;
// JSON output is an array of ordered objects.
func RenderRows(w io.Writer, rows []*record.Row, format string) error {
	if format == "json" {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(rows)
	}
	return renderText(w, rows)
}

func renderText(w io.Writer, rows []*record.Row) error {
	if len(rows) == 0 {
		_, err := fmt.Fprintln(w, "(no rows)")
		return err
	}

	// Union of columns across rows, in first-seen order. Rows are
	// schemaless, so later rows may carry columns earlier ones lack.
	var cols []string
	seen := make(map[string]bool)
	for _, row := range rows {
		for _, col := range row.Columns() {
			if !seen[col] {
				seen[col] = true
				cols = append(cols, col)
			}
		}
	}

	cells := make([][]string, len(rows))
	widths := make([]int, len(cols))
	for i, col := range cols {
		widths[i] = len(col)
	}
	for ri, row := range rows {
		cells[ri] = make([]string, len(cols))
		for ci, col := range cols {
			var cell string
			if v, ok := row.Get(col); ok {
				cell = record.Render(v)
			}
			cells[ri][ci] = cell
			if len(cell) > widths[ci] {
				widths[ci] = len(cell)
			}
		}
	}

	writeLine := func(line []string) error {
		var sb strings.Builder
		for i, cell := range line {
			if i > 0 {
				sb.WriteString("  ")
			}
			sb.WriteString(fmt.Sprintf("%-*s", widths[i], cell))
		}
		_, err := fmt.Fprintln(w, strings.TrimRight(sb.String(), " "))
		return err
	}

	if err := writeLine(cols); err != nil {
		return err
	}
	sep := make([]string, len(cols))
	for i := range cols {
		sep[i] = strings.Repeat("-", widths[i])
	}
	if err := writeLine(sep); err != nil {
		return err
	}
	for _, line := range cells {
		if err := writeLine(line); err != nil {
			return err
		}
	}
	return nil
}
