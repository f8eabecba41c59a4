package ui

import (
	"strings"
	"unicode/utf8"
)

// Table provides minimal table/list rendering with simple spacing
// alignment and no borders.
type Table struct {
	rows       [][]string
	colWidths  []int
	colPadding int
}

// NewTable creates a new table with the specified number of columns.
func NewTable(cols int) *Table {
	return &Table{
		colWidths:  make([]int, cols),
		colPadding: 2,
	}
}

// AddRow adds a row. Extra cells beyond the column count are dropped.
func (t *Table) AddRow(cells ...string) {
	row := make([]string, len(t.colWidths))
	for i := 0; i < len(t.colWidths) && i < len(cells); i++ {
		row[i] = cells[i]
		if w := utf8.RuneCountInString(cells[i]); w > t.colWidths[i] {
			t.colWidths[i] = w
		}
	}
	t.rows = append(t.rows, row)
}

// Render returns the aligned table as a string.
func (t *Table) Render() string {
	var b strings.Builder
	pad := strings.Repeat(" ", t.colPadding)
	for _, row := range t.rows {
		for i, cell := range row {
			b.WriteString(cell)
			if i < len(row)-1 {
				b.WriteString(strings.Repeat(" ", t.colWidths[i]-utf8.RuneCountInString(cell)))
				b.WriteString(pad)
			}
		}
		b.WriteString("\n")
	}
	return b.String()
}
