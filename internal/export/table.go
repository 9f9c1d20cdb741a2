// Package export renders a chosen projection of tabular data into CSV or
// spreadsheet bytes for download. It never raises on a missing column: the
// requested header still appears, with empty cells.
package export

import "fmt"

type Column struct {
	Field  string
	Header string
}

type Table struct {
	Columns []Column
	Rows    []map[string]any
}

// Project narrows a table to the requested columns, keeping request order and
// filling fields the rows don't carry with nil.
func (t Table) Project(cols []Column) Table {
	out := Table{Columns: cols, Rows: make([]map[string]any, len(t.Rows))}
	for i, row := range t.Rows {
		projected := make(map[string]any, len(cols))
		for _, col := range cols {
			projected[col.Field] = row[col.Field] // absent -> nil
		}
		out.Rows[i] = projected
	}
	return out
}

func cellString(v any) string {
	if v == nil {
		return ""
	}
	switch s := v.(type) {
	case string:
		return s
	default:
		return fmt.Sprint(v)
	}
}
