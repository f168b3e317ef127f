package analyzer

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/ccollicutt/logstats/pkg/table"
)

// Analyzer runs the date constraint and every statistic over a table.
type Analyzer struct {
	from   *time.Time
	to     *time.Time
	method string
	limit  int
	logger zerolog.Logger
}

// AnalyzerOption configures analyzer behavior.
type AnalyzerOption func(*Analyzer)

// WithDateRange limits analysis to records dated within [from, to].
// Either bound may be nil.
func WithDateRange(from, to *time.Time) AnalyzerOption {
	return func(a *Analyzer) {
		a.from = from
		a.to = to
	}
}

// WithMethod sets the request method resources are ranked by.
func WithMethod(method string) AnalyzerOption {
	return func(a *Analyzer) {
		a.method = method
	}
}

// WithLimit sets the size of every ranking.
func WithLimit(k int) AnalyzerOption {
	return func(a *Analyzer) {
		a.limit = k
	}
}

// WithLogger sets the analyzer's logger.
func WithLogger(l zerolog.Logger) AnalyzerOption {
	return func(a *Analyzer) {
		a.logger = l
	}
}

// NewAnalyzer creates an analyzer.
func NewAnalyzer(opts ...AnalyzerOption) (*Analyzer, error) {
	a := &Analyzer{
		method: DefaultMethod,
		limit:  DefaultLimit,
		logger: zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(a)
	}

	if a.limit < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidLimit, a.limit)
	}
	if strings.TrimSpace(a.method) == "" {
		return nil, errors.New("request method must not be empty")
	}
	if a.from != nil && a.to != nil && dateOf(*a.from).After(dateOf(*a.to)) {
		return nil, fmt.Errorf("start date %s is after end date %s", boundText(a.from), boundText(a.to))
	}

	return a, nil
}

// Analyze applies the date constraint and computes every statistic. The input
// table is not modified. If no record survives the date constraint the error
// wraps table.ErrEmpty. A ranking with no qualifying records is left nil.
func (a *Analyzer) Analyze(ctx context.Context, t *table.Table) (*Result, error) {
	result := &Result{
		Metadata: Metadata{
			From:      a.from,
			To:        a.to,
			Method:    a.method,
			Limit:     a.limit,
			RowsIn:    t.Len(),
			StartTime: time.Now(),
		},
	}

	logs, err := DateConstrain(t, a.from, a.to)
	if err != nil {
		return nil, err
	}

	result.Requests = RequestCount(logs)
	result.AverageResponseSize = AverageResponseSize(logs)

	rankings := []struct {
		name string
		dst  **table.Table
		run  func() (*table.Table, error)
	}{
		{"resources", &result.Resources, func() (*table.Table, error) { return TopResources(logs, a.limit, a.method) }},
		{"statuses", &result.Statuses, func() (*table.Table, error) { return TopStatuses(logs, a.limit) }},
		{"days", &result.Days, func() (*table.Table, error) { return TopLoadedDays(logs, a.limit) }},
		{"users", &result.Users, func() (*table.Table, error) { return TopActiveUsers(logs, a.limit) }},
	}

	for _, r := range rankings {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		tbl, err := r.run()
		if errors.Is(err, table.ErrEmpty) {
			a.logger.Warn().Str("ranking", r.name).Msg("No records qualify for ranking")
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("computing %s: %w", r.name, err)
		}
		*r.dst = tbl
	}

	result.Metadata.EndTime = time.Now()

	a.logger.Debug().
		Int("rows_in", result.Metadata.RowsIn).
		Int("requests", result.Requests).
		Dur("took", result.Metadata.EndTime.Sub(result.Metadata.StartTime)).
		Msg("Analysis complete")

	return result, nil
}
