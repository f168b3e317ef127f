// Package table provides the in-memory record store shared by the parser,
// the analyzer and the renderers.
package table

import (
	"errors"
	"fmt"
	"unicode/utf8"
)

// MissingCell is the placeholder text for a column a row does not populate.
// Column widths count it at its literal width.
const MissingCell = "None"

// ErrEmpty is returned when a table would be constructed without rows.
var ErrEmpty = errors.New("table: rows cannot be empty")

// Row is a single record of a table: a mapping from column name to an
// optional text value.
type Row interface {
	// Value returns the value of the column and whether the row populates it.
	// A missing value is distinct from an empty string.
	Value(column string) (string, bool)

	// Columns returns the populated columns in a stable order.
	Columns() []string
}

// Table is an ordered, non-empty sequence of rows plus the union of the
// columns they populate. Rows may be heterogeneous.
type Table struct {
	rows    []Row
	columns []string
	seen    map[string]bool
}

// New creates a table from the given rows. The slice is copied.
func New(rows []Row) (*Table, error) {
	if len(rows) == 0 {
		return nil, ErrEmpty
	}

	t := &Table{
		rows: make([]Row, 0, len(rows)),
		seen: make(map[string]bool),
	}
	t.Append(rows...)
	return t, nil
}

// Append adds rows to the end of the table and extends the column set.
// It is the only operation that mutates a table and is meant for assembling
// a table incrementally.
func (t *Table) Append(rows ...Row) {
	for _, row := range rows {
		t.rows = append(t.rows, row)
		for _, col := range row.Columns() {
			if !t.seen[col] {
				t.seen[col] = true
				t.columns = append(t.columns, col)
			}
		}
	}
}

// Len returns the number of rows.
func (t *Table) Len() int {
	return len(t.rows)
}

// Rows returns the rows of the table. Callers must not modify the slice.
func (t *Table) Rows() []Row {
	return t.rows
}

// Row returns the i-th row.
func (t *Table) Row(i int) Row {
	return t.rows[i]
}

// Columns returns the column names in first-seen order.
func (t *Table) Columns() []string {
	out := make([]string, len(t.columns))
	copy(out, t.columns)
	return out
}

// HasColumn reports whether any row populates the column.
func (t *Table) HasColumn(column string) bool {
	return t.seen[column]
}

// Lookup returns the value of a cell and whether it is populated.
func (t *Table) Lookup(i int, column string) (string, bool) {
	return t.rows[i].Value(column)
}

// Cell returns the value of a cell, or MissingCell when the row does not
// populate the column.
func (t *Table) Cell(i int, column string) string {
	if v, ok := t.rows[i].Value(column); ok {
		return v
	}
	return MissingCell
}

// ColumnWidth returns the width of a column: the longest of its header and
// all of its cells, in runes.
func (t *Table) ColumnWidth(column string) (int, error) {
	if !t.seen[column] {
		return 0, fmt.Errorf("no such column %q", column)
	}

	width := utf8.RuneCountInString(column)
	for i := range t.rows {
		if n := utf8.RuneCountInString(t.Cell(i, column)); n > width {
			width = n
		}
	}
	return width, nil
}

// ColumnWidths returns the width of every column, in column order.
func (t *Table) ColumnWidths() []int {
	widths := make([]int, len(t.columns))
	for i, col := range t.columns {
		// Columns always exist here.
		widths[i], _ = t.ColumnWidth(col)
	}
	return widths
}

// Filter returns a new table holding the rows for which keep returns true.
// It returns ErrEmpty when no row is kept.
func (t *Table) Filter(keep func(Row) bool) (*Table, error) {
	var kept []Row
	for _, row := range t.rows {
		if keep(row) {
			kept = append(kept, row)
		}
	}
	return New(kept)
}
