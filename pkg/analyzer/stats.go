package analyzer

import (
	"cmp"
	"fmt"
	"slices"
	"strconv"
	"time"

	"github.com/ccollicutt/logstats/pkg/parser"
	"github.com/ccollicutt/logstats/pkg/table"
)

// RequestCount returns the number of records.
func RequestCount(t *table.Table) int {
	return t.Len()
}

// TopResources ranks request targets of records whose method equals method.
// Records without a method never match.
func TopResources(t *table.Table, k int, method string) (*table.Table, error) {
	return topK(t, k, ColumnResource, ColumnValue, func(row table.Row) (string, bool) {
		m, ok := field(row, parser.FieldRequestMethod)
		if !ok || m != method {
			return "", false
		}
		return field(row, parser.FieldRequest)
	})
}

// TopStatuses ranks response statuses.
func TopStatuses(t *table.Table, k int) (*table.Table, error) {
	return topK(t, k, ColumnStatus, ColumnResponses, func(row table.Row) (string, bool) {
		return field(row, parser.FieldStatus)
	})
}

// TopLoadedDays ranks calendar days by request count. Days are the dates
// printed in time_local; records with an unparsable time are skipped.
func TopLoadedDays(t *table.Table, k int) (*table.Table, error) {
	return topK(t, k, ColumnDay, ColumnRequests, func(row table.Row) (string, bool) {
		day, ok := parser.RecordDay(row)
		if !ok {
			return "", false
		}
		return day.Format(time.DateOnly), true
	})
}

// TopActiveUsers ranks client addresses. "localhost" is counted as 127.0.0.1.
func TopActiveUsers(t *table.Table, k int) (*table.Table, error) {
	return topK(t, k, ColumnUserIP, ColumnRequests, func(row table.Row) (string, bool) {
		addr, ok := field(row, parser.FieldRemoteAddr)
		if !ok {
			return "", false
		}
		if addr == "localhost" {
			addr = LocalhostIP
		}
		return addr, true
	})
}

// AverageResponseSize returns the mean body_bytes_sent over records where it
// is a non-negative integer, or 0 when there are none.
func AverageResponseSize(t *table.Table) float64 {
	var sum float64
	var n int

	for _, row := range t.Rows() {
		v, ok := field(row, parser.FieldBodyBytesSent)
		if !ok {
			continue
		}
		size, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			continue
		}
		sum += float64(size)
		n++
	}

	if n == 0 {
		return 0
	}
	return sum / float64(n)
}

// topK counts the keys produced by key and returns the k most frequent as
// (keyColumn, countColumn) rows. Equal counts keep first-seen order. Rows for
// which key reports false are ignored; if none remain the error wraps
// table.ErrEmpty.
func topK(t *table.Table, k int, keyColumn, countColumn string, key func(table.Row) (string, bool)) (*table.Table, error) {
	if k < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidLimit, k)
	}

	counts := make(map[string]int)
	var order []string

	for _, row := range t.Rows() {
		v, ok := key(row)
		if !ok {
			continue
		}
		if _, seen := counts[v]; !seen {
			order = append(order, v)
		}
		counts[v]++
	}

	slices.SortStableFunc(order, func(a, b string) int {
		return cmp.Compare(counts[b], counts[a])
	})
	if len(order) > k {
		order = order[:k]
	}

	rows := make([]table.Row, len(order))
	for i, v := range order {
		rows[i] = table.Pair(keyColumn, v, countColumn, strconv.Itoa(counts[v]))
	}

	result, err := table.New(rows)
	if err != nil {
		return nil, fmt.Errorf("ranking by %s: %w", keyColumn, err)
	}
	return result, nil
}

func field(row table.Row, f parser.Field) (string, bool) {
	return row.Value(f.String())
}
