package analyzer

import (
	"fmt"
	"time"

	"github.com/ccollicutt/logstats/pkg/parser"
	"github.com/ccollicutt/logstats/pkg/table"
)

// DateConstrain returns the records whose calendar day lies within
// [from, to]. Either bound may be nil. Only the date part of a bound counts.
// With both bounds nil, t itself is returned, unparsable times included;
// otherwise records without a parsable time_local are dropped.
func DateConstrain(t *table.Table, from, to *time.Time) (*table.Table, error) {
	if from == nil && to == nil {
		return t, nil
	}

	var lo, hi time.Time
	if from != nil {
		lo = dateOf(*from)
	}
	if to != nil {
		hi = dateOf(*to)
	}

	result, err := t.Filter(func(row table.Row) bool {
		day, ok := parser.RecordDay(row)
		if !ok {
			return false
		}
		if from != nil && day.Before(lo) {
			return false
		}
		if to != nil && day.After(hi) {
			return false
		}
		return true
	})
	if err != nil {
		return nil, fmt.Errorf("no records between %s and %s: %w", boundText(from), boundText(to), err)
	}
	return result, nil
}

// FromDate keeps records dated on or after from.
func FromDate(t *table.Table, from time.Time) (*table.Table, error) {
	return DateConstrain(t, &from, nil)
}

// ToDate keeps records dated on or before to.
func ToDate(t *table.Table, to time.Time) (*table.Table, error) {
	return DateConstrain(t, nil, &to)
}

// dateOf returns the calendar date of ts in its own location, at midnight UTC.
func dateOf(ts time.Time) time.Time {
	return time.Date(ts.Year(), ts.Month(), ts.Day(), 0, 0, 0, 0, time.UTC)
}

func boundText(b *time.Time) string {
	if b == nil {
		return "-"
	}
	return b.Format(time.DateOnly)
}
