package output

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ccollicutt/logstats/pkg/table"
)

func pad(n int) string {
	return strings.Repeat(" ", n)
}

func statusTable(t *testing.T) *table.Table {
	t.Helper()
	tbl, err := table.New([]table.Row{
		table.Pair("status", "200", "responses", "2"),
		table.Pair("status", "404", "responses", "1"),
	})
	require.NoError(t, err)
	return tbl
}

// sparseTable has one missing cell in each column.
func sparseTable(t *testing.T) *table.Table {
	t.Helper()
	tbl, err := table.New([]table.Row{
		table.Cells{{Column: "a", Value: "x"}},
		table.Cells{{Column: "b", Value: "longer"}},
	})
	require.NoError(t, err)
	return tbl
}

func TestNewRenderer(t *testing.T) {
	tests := []struct {
		format string
		want   string
	}{
		{"markdown", "markdown"},
		{"adoc", "adoc"},
		{" ADOC ", "adoc"},
	}

	for _, tt := range tests {
		r, err := NewRenderer(tt.format)
		require.NoError(t, err)
		assert.Equal(t, tt.want, r.Name())
	}

	_, err := NewRenderer("html")
	assert.Error(t, err)
}

func TestCenterText(t *testing.T) {
	tests := []struct {
		text  string
		width int
		want  string
	}{
		{"ab", 6, "  ab  "},
		{"abc", 6, " abc  "},
		{"a", 4, " a  "},
		{"exact", 5, "exact"},
		{"toolong", 3, "toolong"},
		{"é", 3, " é "},
		{"", 2, "  "},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, centerText(tt.text, tt.width), "centerText(%q, %d)", tt.text, tt.width)
	}
}

func TestMarkdownRenderer_Render(t *testing.T) {
	want := "#### Test\n" +
		"|status|responses|\n" +
		"|:----:|:-------:|\n" +
		"| 200  |" + pad(4) + "2" + pad(4) + "|\n" +
		"| 404  |" + pad(4) + "1" + pad(4) + "|\n"

	assert.Equal(t, want, MarkdownRenderer{}.Render(statusTable(t), 5, "Test"))
}

func TestMarkdownRenderer_RowLimit(t *testing.T) {
	got := MarkdownRenderer{}.Render(statusTable(t), 1, "")

	assert.Equal(t, "|status|responses|\n"+
		"|:----:|:-------:|\n"+
		"| 200  |"+pad(4)+"2"+pad(4)+"|\n", got)

	got = MarkdownRenderer{}.Render(statusTable(t), 0, "")
	assert.Equal(t, "|status|responses|\n|:----:|:-------:|\n", got)
}

func TestMarkdownRenderer_MissingAndEmptyCells(t *testing.T) {
	want := "| a  |  b   |\n" +
		"|:--:|:----:|\n" +
		"| x  | None |\n" +
		"|None|longer|\n"
	assert.Equal(t, want, MarkdownRenderer{}.Render(sparseTable(t), 10, ""))

	empty, err := table.New([]table.Row{table.Cells{{Column: "k", Value: ""}}})
	require.NoError(t, err)
	assert.Equal(t, "|k|\n|::|\n|null|\n", MarkdownRenderer{}.Render(empty, 1, ""))
}

func TestAdocRenderer_Render(t *testing.T) {
	want := "= Test\n" +
		"|===\n" +
		"|status|responses\n" +
		"\n" +
		"| 200   |" + pad(4) + "2" + pad(5) + "\n" +
		"| 404   |" + pad(4) + "1" + pad(5) + "\n" +
		"|===\n"

	assert.Equal(t, want, AdocRenderer{}.Render(statusTable(t), 5, "Test"))
}

func TestAdocRenderer_MissingAndEmptyCells(t *testing.T) {
	want := "|===\n" +
		"| a  |  b   \n" +
		"\n" +
		"| x   | None  \n" +
		"|None |longer \n" +
		"|===\n"
	assert.Equal(t, want, AdocRenderer{}.Render(sparseTable(t), 10, ""))

	empty, err := table.New([]table.Row{table.Cells{{Column: "k", Value: ""}}})
	require.NoError(t, err)
	assert.Equal(t, "|===\n|k\n\n|None \n|===\n", AdocRenderer{}.Render(empty, 1, ""))
}

func TestAdocRenderer_RowLimit(t *testing.T) {
	got := AdocRenderer{}.Render(statusTable(t), 0, "")
	assert.Equal(t, "|===\n|status|responses\n\n|===\n", got)
}
