package parser

import (
	"fmt"
	"strings"
	"time"

	"github.com/itchyny/timefmt-go"

	"github.com/ccollicutt/logstats/pkg/table"
)

// TimeLocalFormat is the strftime layout of the time_local field.
const TimeLocalFormat = "%d/%b/%Y:%H:%M:%S %z"

// clockFormat is TimeLocalFormat without the zone offset.
const clockFormat = "%d/%b/%Y:%H:%M:%S"

// ParseTimeLocal parses a time_local value. The zone offset is kept as
// written; the result is not converted to UTC or the local zone. Dates that
// don't exist on the calendar, such as 31/Feb, are rejected.
func ParseTimeLocal(s string) (time.Time, error) {
	ts, err := timefmt.Parse(s, TimeLocalFormat)
	if err != nil {
		return time.Time{}, fmt.Errorf("parsing time_local %q: %w", s, err)
	}
	clock, _, _ := strings.Cut(s, " ")
	if timefmt.Format(ts, clockFormat) != clock {
		return time.Time{}, fmt.Errorf("parsing time_local %q: no such date or time", s)
	}
	return ts, nil
}

// CalendarDay returns the date printed in a time_local value, at midnight UTC.
// Time of day and zone offset are discarded without conversion.
func CalendarDay(s string) (time.Time, error) {
	ts, err := ParseTimeLocal(s)
	if err != nil {
		return time.Time{}, err
	}
	return time.Date(ts.Year(), ts.Month(), ts.Day(), 0, 0, 0, 0, time.UTC), nil
}

// RecordDay returns the calendar day of a row's time_local field. It reports
// false when the field is missing or unparsable.
func RecordDay(row table.Row) (time.Time, bool) {
	s, ok := row.Value(FieldTimeLocal.String())
	if !ok {
		return time.Time{}, false
	}
	day, err := CalendarDay(s)
	if err != nil {
		return time.Time{}, false
	}
	return day, true
}
