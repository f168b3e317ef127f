// Package output renders result tables and the analysis report as text.
package output

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/ccollicutt/logstats/pkg/table"
)

// Renderer turns a table into an aligned textual table in one markup.
// Implementations hold no state and are safe for concurrent use.
type Renderer interface {
	// Name returns the format name (markdown, adoc).
	Name() string

	// Heading renders a section heading on its own line.
	Heading(header string) string

	// Render renders at most maxRows rows of t, preceded by header when it is
	// not empty. Column widths come from t.ColumnWidth.
	Render(t *table.Table, maxRows int, header string) string
}

// NewRenderer returns the renderer for a format name.
func NewRenderer(format string) (Renderer, error) {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "markdown":
		return MarkdownRenderer{}, nil
	case "adoc":
		return AdocRenderer{}, nil
	default:
		return nil, fmt.Errorf("unknown output format %q (must be markdown or adoc)", format)
	}
}

// centerText pads text to width runes, putting the smaller half of the
// padding on the left. Text wider than width is returned unchanged.
func centerText(text string, width int) string {
	padding := max(width-utf8.RuneCountInString(text), 0)
	left := padding / 2
	return strings.Repeat(" ", left) + text + strings.Repeat(" ", padding-left)
}

// rowCount bounds maxRows to the table size.
func rowCount(t *table.Table, maxRows int) int {
	return min(max(maxRows, 0), t.Len())
}
