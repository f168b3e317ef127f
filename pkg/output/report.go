package output

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/ccollicutt/logstats/pkg/table"
)

// Overview returns the overall information table.
func (r *Report) Overview() *table.Table {
	metric := func(name, value string) table.Row {
		return table.Pair(ColumnMetrics, name, ColumnValue, value)
	}

	// Five rows, so New cannot fail.
	t, _ := table.New([]table.Row{
		metric(MetricFiles, strings.Join(r.Sources, ", ")),
		metric(MetricStartDate, formatDate(r.From)),
		metric(MetricEndDate, formatDate(r.To)),
		metric(MetricRequests, strconv.Itoa(r.Requests)),
		metric(MetricAverageResponseSize, formatFloat(r.AverageResponseSize)),
	})
	return t
}

// Write renders the overview in full, then every section limited to maxRows
// rows, separated by blank lines.
func (r *Report) Write(w io.Writer, renderer Renderer, maxRows int) error {
	overview := r.Overview()

	var b strings.Builder
	b.WriteString(renderer.Render(overview, overview.Len(), HeaderOverview))

	for _, s := range r.Sections {
		b.WriteString("\n")
		if s.Table == nil {
			b.WriteString(renderer.Heading(s.Header))
			b.WriteString(SkippedNote + "\n")
			continue
		}
		b.WriteString(renderer.Render(s.Table, maxRows, s.Header))
	}

	if _, err := io.WriteString(w, b.String()); err != nil {
		return fmt.Errorf("writing report: %w", err)
	}
	return nil
}

func formatDate(t *time.Time) string {
	if t == nil {
		return table.MissingCell
	}
	return t.Format(time.DateOnly)
}

// formatFloat prints the shortest exact representation, always with a
// fractional part.
func formatFloat(v float64) string {
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}
