package table

// Cell is a single named value of a derived row.
type Cell struct {
	Column string
	Value  string
}

// Cells is an ordered row of named values. Analysis results use it for their
// (key, count) rows.
type Cells []Cell

// Value returns the value of the first cell named column.
func (c Cells) Value(column string) (string, bool) {
	for _, cell := range c {
		if cell.Column == column {
			return cell.Value, true
		}
	}
	return "", false
}

// Columns returns the cell names in order.
func (c Cells) Columns() []string {
	cols := make([]string, len(c))
	for i, cell := range c {
		cols[i] = cell.Column
	}
	return cols
}

// Pair builds a two-column row.
func Pair(keyColumn, key, valueColumn, value string) Cells {
	return Cells{{Column: keyColumn, Value: key}, {Column: valueColumn, Value: value}}
}
