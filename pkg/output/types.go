package output

import (
	"time"

	"github.com/ccollicutt/logstats/pkg/analyzer"
	"github.com/ccollicutt/logstats/pkg/table"
)

// Section headers, in report order.
const (
	HeaderOverview  = "Overall information"
	HeaderResources = "The most popular resources"
	HeaderStatuses  = "The most popular statuses"
	HeaderDays      = "The most highloaded days"
	HeaderUsers     = "The most active users"
)

// Overview table columns and metric names.
const (
	ColumnMetrics = "metrics"
	ColumnValue   = "value"

	MetricFiles               = "Files"
	MetricStartDate           = "Start date"
	MetricEndDate             = "End date"
	MetricRequests            = "Requests"
	MetricAverageResponseSize = "Average response size"
)

// SkippedNote is written under the heading of a section with no rows.
const SkippedNote = "No matching records."

// Report is the complete analysis output.
type Report struct {
	// Sources lists the sources as given by the user.
	Sources []string

	// From and To are the date bounds that were applied, nil when unset.
	From *time.Time
	To   *time.Time

	Requests            int
	AverageResponseSize float64

	// Sections are rendered in order after the overview.
	Sections []Section
}

// Section is one ranked statistic. A nil Table marks a section where no
// records qualified.
type Section struct {
	Header string
	Table  *table.Table
}

// NewReport builds a report from an analysis result.
func NewReport(sources []string, res *analyzer.Result) *Report {
	return &Report{
		Sources:             sources,
		From:                res.Metadata.From,
		To:                  res.Metadata.To,
		Requests:            res.Requests,
		AverageResponseSize: res.AverageResponseSize,
		Sections: []Section{
			{Header: HeaderResources, Table: res.Resources},
			{Header: HeaderStatuses, Table: res.Statuses},
			{Header: HeaderDays, Table: res.Days},
			{Header: HeaderUsers, Table: res.Users},
		},
	}
}
