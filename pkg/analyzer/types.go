// Package analyzer computes access-log statistics over a table of records.
package analyzer

import (
	"errors"
	"time"

	"github.com/ccollicutt/logstats/pkg/table"
)

// DefaultMethod is the request method TopResources ranks by default.
const DefaultMethod = "GET"

// DefaultLimit is the default number of rows in a ranking.
const DefaultLimit = 5

// LocalhostIP is the address "localhost" is counted as.
const LocalhostIP = "127.0.0.1"

// Result column names.
const (
	ColumnResource  = "resource"
	ColumnValue     = "value"
	ColumnStatus    = "status"
	ColumnResponses = "responses"
	ColumnDay       = "day"
	ColumnRequests  = "requests"
	ColumnUserIP    = "user_ip"
)

// ErrInvalidLimit is returned for a ranking size below one.
var ErrInvalidLimit = errors.New("ranking size must be at least 1")

// Result holds every statistic of one analysis run.
type Result struct {
	// Requests is the number of records after the date constraint.
	Requests int

	// AverageResponseSize is the mean body_bytes_sent.
	AverageResponseSize float64

	// Rankings. A nil table means no record qualified for that ranking.
	Resources *table.Table
	Statuses  *table.Table
	Days      *table.Table
	Users     *table.Table

	// Metadata provides context about the analysis.
	Metadata Metadata
}

// Metadata describes how a Result was produced.
type Metadata struct {
	// From and To are the inclusive date bounds, if any.
	From *time.Time
	To   *time.Time

	// Method is the request method resources were ranked by.
	Method string

	// Limit is the ranking size.
	Limit int

	// RowsIn is the number of records before the date constraint.
	RowsIn int

	StartTime time.Time
	EndTime   time.Time
}
