package tui

import (
	"fmt"

	table "github.com/charmbracelet/bubbles/table"

	"scatterplot/internal/data"
)

// refreshAttrsFromCurrent rebuilds the records table from the loaded dataset.
func (m *Model) refreshAttrsFromCurrent() {
	cols, rows := m.buildAttributes()
	// If there are no rows, disable the table view to avoid rendering panics
	if len(rows) == 0 {
		m.showAttrs = false
		m.status = "no records loaded"
		return
	}
	tcols := make([]table.Column, 0, len(cols)+1)
	tcols = append(tcols, table.Column{Title: "#", Width: 4})
	for i, c := range cols {
		w := len(c) + 2
		if i == 0 {
			w = 22
		} else {
			w = max(w, 10)
		}
		tcols = append(tcols, table.Column{Title: c, Width: w})
	}
	trows := make([]table.Row, 0, len(rows))
	for i, r := range rows {
		row := make([]string, 0, len(r)+1)
		row = append(row, fmt.Sprintf("%d", i+1))
		row = append(row, r...)
		trows = append(trows, table.Row(row))
	}
	// Avoid transient mismatch: clear rows, set columns, then set rows
	m.tbl.SetRows(nil)
	m.tbl.SetColumns(tcols)
	m.tbl.SetRows(trows)
}

// buildAttributes returns (columns, rows) for the loaded records.
func (m *Model) buildAttributes() ([]string, [][]string) {
	if m.ds.Len() == 0 {
		return nil, nil
	}
	cols := data.Columns
	rows := make([][]string, 0, m.ds.Len())
	for _, r := range m.ds.Records {
		f := r.Fields()
		rows = append(rows, []string{r.Country, f[0], f[1], f[2], f[3]})
	}
	return cols, rows
}
