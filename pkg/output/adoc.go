package output

import (
	"strings"

	"github.com/ccollicutt/logstats/pkg/table"
)

const adocFence = "|==="

// AdocRenderer renders tables as AsciiDoc tables.
type AdocRenderer struct{}

// Name returns the format name.
func (AdocRenderer) Name() string {
	return "adoc"
}

// Heading renders a document title line.
func (AdocRenderer) Heading(header string) string {
	return "= " + header + "\n"
}

// Render renders t between |=== fences. The header row is followed by a blank
// line and every body cell by a single space.
func (r AdocRenderer) Render(t *table.Table, maxRows int, header string) string {
	var b strings.Builder
	if header != "" {
		b.WriteString(r.Heading(header))
	}
	b.WriteString(adocFence + "\n")

	columns := t.Columns()
	widths := t.ColumnWidths()

	for i, col := range columns {
		b.WriteString("|" + centerText(col, widths[i]))
	}
	b.WriteString("\n\n")

	for row, n := 0, rowCount(t, maxRows); row < n; row++ {
		for i, col := range columns {
			v := t.Cell(row, col)
			if v == "" {
				v = table.MissingCell
			}
			b.WriteString("|" + centerText(v, widths[i]) + " ")
		}
		b.WriteString("\n")
	}

	b.WriteString(adocFence + "\n")
	return b.String()
}
