package output

import (
	"strings"

	"github.com/ccollicutt/logstats/pkg/table"
)

// markdownEmptyCell replaces cells holding the empty string.
const markdownEmptyCell = "null"

// MarkdownRenderer renders tables as pipe tables with centered columns.
type MarkdownRenderer struct{}

// Name returns the format name.
func (MarkdownRenderer) Name() string {
	return "markdown"
}

// Heading renders a level four heading.
func (MarkdownRenderer) Heading(header string) string {
	return "#### " + header + "\n"
}

// Render renders t as a markdown table.
func (r MarkdownRenderer) Render(t *table.Table, maxRows int, header string) string {
	var b strings.Builder
	if header != "" {
		b.WriteString(r.Heading(header))
	}

	columns := t.Columns()
	widths := t.ColumnWidths()

	cells := make([]string, len(columns))
	for i, col := range columns {
		cells[i] = centerText(col, widths[i])
	}
	writePipeRow(&b, cells)

	for i, w := range widths {
		cells[i] = ":" + strings.Repeat("-", max(w-2, 0)) + ":"
	}
	writePipeRow(&b, cells)

	for row, n := 0, rowCount(t, maxRows); row < n; row++ {
		for i, col := range columns {
			v := t.Cell(row, col)
			if v == "" {
				v = markdownEmptyCell
			}
			cells[i] = centerText(v, widths[i])
		}
		writePipeRow(&b, cells)
	}

	return b.String()
}

func writePipeRow(b *strings.Builder, cells []string) {
	b.WriteString("|")
	b.WriteString(strings.Join(cells, "|"))
	b.WriteString("|\n")
}
