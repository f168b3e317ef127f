package parser

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/rs/zerolog"

	"github.com/ccollicutt/logstats/pkg/table"
)

// timeLocalPattern matches the bracketed local time, e.g. 08/Nov/2024:10:52:20 +0000.
const timeLocalPattern = `\d{2}/[A-Z][a-z]{2}/\d{4}:\d{2}:\d{2}:\d{2} [-+]\d{4}`

// linePattern is the access-log grammar. Capture groups follow Field order.
var linePattern = regexp.MustCompile(
	`^(\d{1,4}\.\d{1,4}\.\d{1,4}\.\d{1,4}) - ` + // remote_addr
		`([^ ]+) ` + // remote_user
		`\[(` + timeLocalPattern + `)\] ` + // time_local
		`"(\w+) ` + // request_type
		`(/[^ ]*) ` + // request
		`(HTTP/.+)" ` + // protocol
		`(\d+) ` + // status
		`(\d+) ` + // body_bytes_sent
		`"(.+)" ` + // http_referer
		`"(.+)"$`, // http_user_agent
)

// Parser converts access-log lines into records.
type Parser struct {
	logger zerolog.Logger
}

// Option configures a Parser.
type Option func(*Parser)

// WithLogger sets the logger used to report dropped lines.
func WithLogger(l zerolog.Logger) Option {
	return func(p *Parser) {
		p.logger = l
	}
}

// New creates a Parser.
func New(opts ...Option) *Parser {
	p := &Parser{logger: zerolog.Nop()}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

var defaultParser = New()

// ParseLine parses a line with the default parser.
func ParseLine(line string) (*Record, bool) {
	return defaultParser.ParseLine(line)
}

// ParseLines parses lines with the default parser.
func ParseLines(lines []string) (*table.Table, int, error) {
	return defaultParser.ParseLines(lines)
}

// ParseLine returns the record for a line that matches the grammar from start
// to end. It returns false for any other line; no partial record is ever
// returned.
func (p *Parser) ParseLine(line string) (*Record, bool) {
	m := linePattern.FindStringSubmatch(strings.TrimRight(line, "\r\n"))
	if m == nil {
		return nil, false
	}

	r := &Record{}
	for i := Field(0); i < NumFields; i++ {
		r.values[i] = m[i+1]
		r.present[i] = true
	}
	return r, true
}

// ParseLines parses every line, keeping matches in their original order, and
// returns the resulting table together with the number of dropped lines.
// A batch in which no line matches is an error wrapping table.ErrEmpty.
func (p *Parser) ParseLines(lines []string) (*table.Table, int, error) {
	rows := make([]table.Row, 0, len(lines))
	dropped := 0

	for i, line := range lines {
		r, ok := p.ParseLine(line)
		if !ok {
			dropped++
			p.logger.Debug().Int("line", i+1).Msg("Log line did not match expected format")
			continue
		}
		rows = append(rows, r)
	}

	t, err := table.New(rows)
	if err != nil {
		return nil, dropped, fmt.Errorf("no parsable log lines among %d input lines: %w", len(lines), err)
	}

	p.logger.Debug().Int("parsed", len(rows)).Int("dropped", dropped).Msg("Parsed log lines")
	return t, dropped, nil
}
