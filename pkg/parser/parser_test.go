package parser

import (
	"bytes"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ccollicutt/logstats/pkg/table"
)

const validLine = `127.0.0.1 - - [08/Nov/2024:10:52:20 +0000] "GET /index.html HTTP/1.1" 200 1024 "https://example.com" "Mozilla/5.0 (Windows NT 10.0; Win64; x64)"`

func TestParseLine_Valid(t *testing.T) {
	r, ok := ParseLine(validLine)
	require.True(t, ok)

	want := map[Field]string{
		FieldRemoteAddr:    "127.0.0.1",
		FieldRemoteUser:    "-",
		FieldTimeLocal:     "08/Nov/2024:10:52:20 +0000",
		FieldRequestMethod: "GET",
		FieldRequest:       "/index.html",
		FieldProtocol:      "HTTP/1.1",
		FieldStatus:        "200",
		FieldBodyBytesSent: "1024",
		FieldReferer:       "https://example.com",
		FieldUserAgent:     "Mozilla/5.0 (Windows NT 10.0; Win64; x64)",
	}
	for f, v := range want {
		got, ok := r.Get(f)
		assert.True(t, ok, f.String())
		assert.Equal(t, v, got, f.String())
	}
	assert.Equal(t, ColumnNames(), r.Columns())
}

func TestParseLine_Invalid(t *testing.T) {
	tests := []struct {
		name string
		line string
	}{
		{"empty", ""},
		{"garbage", "Некорректная строка лога"},
		{"hostname address", `localhost - - [08/Nov/2024:10:52:20 +0000] "GET / HTTP/1.1" 200 1 "-" "ua"`},
		{"missing protocol and status", `127.0.0.1 - - [08/Nov/2024:10:52:20 +0000] "GET /index.html"`},
		{"path without slash", `127.0.0.1 - - [08/Nov/2024:10:52:20 +0000] "GET index.html HTTP/1.1" 200 1 "-" "ua"`},
		{"lowercase month", `127.0.0.1 - - [08/nov/2024:10:52:20 +0000] "GET / HTTP/1.1" 200 1 "-" "ua"`},
		{"missing zone", `127.0.0.1 - - [08/Nov/2024:10:52:20] "GET / HTTP/1.1" 200 1 "-" "ua"`},
		{"dash bytes", `127.0.0.1 - - [08/Nov/2024:10:52:20 +0000] "GET / HTTP/1.1" 200 - "-" "ua"`},
		{"trailing text", validLine + " extra"},
		{"leading text", "x " + validLine},
		{"empty user agent", `127.0.0.1 - - [08/Nov/2024:10:52:20 +0000] "GET / HTTP/1.1" 200 1 "-" ""`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, ok := ParseLine(tt.line)
			assert.False(t, ok)
			assert.Nil(t, r)
		})
	}
}

func TestParseLine_EmbeddedQuotes(t *testing.T) {
	line := `10.0.0.1 - bob [01/Jan/2025:00:00:01 -0500] "POST /api/v1 HTTP/2.0" 201 0 "https://x.test/?q="a"" "Agent "quoted" 1.0"`

	r, ok := ParseLine(line)
	require.True(t, ok)

	ref, _ := r.Get(FieldReferer)
	ua, _ := r.Get(FieldUserAgent)
	assert.Equal(t, `https://x.test/?q="a"`, ref)
	assert.Equal(t, `Agent "quoted" 1.0`, ua)
}

func TestParseLine_LineEndings(t *testing.T) {
	for _, suffix := range []string{"\n", "\r\n"} {
		r, ok := ParseLine(validLine + suffix)
		require.True(t, ok)
		ua, _ := r.Get(FieldUserAgent)
		assert.Equal(t, "Mozilla/5.0 (Windows NT 10.0; Win64; x64)", ua)
	}
}

func TestParseLine_RoundTrip(t *testing.T) {
	lines := []string{
		validLine,
		`192.168.1.2 - admin [09/Nov/2024:23:59:59 -0700] "DELETE /items/7?force=1 HTTP/1.0" 404 2048 "-" "curl/7.68.0"`,
		`1.2.3.4 - - [31/Dec/1999:00:00:00 +1400] "HEAD / HTTP/1.1" 304 0 "a b c" "x"`,
	}

	for _, line := range lines {
		r, ok := ParseLine(line)
		require.True(t, ok, line)
		assert.Equal(t, line, r.String())
	}
}

func TestParseLine_Deterministic(t *testing.T) {
	a, ok := ParseLine(validLine)
	require.True(t, ok)
	b, ok := ParseLine(validLine)
	require.True(t, ok)
	assert.Equal(t, a, b)
}

func TestParseLines_MixedInput(t *testing.T) {
	lines := []string{
		validLine,
		"not a log line",
		`192.168.1.2 - - [09/Nov/2024:11:00:00 +0000] "POST /form HTTP/1.1" 404 2048 "-" "Mozilla/5.0"`,
		"",
		`127.0.0.1 - - [10/Nov/2024:15:30:00 +0000] "GET /about HTTP/1.1" 200 512 "-" "curl/7.68.0"`,
		`127.0.0.1 - - [10/Nov/2024:15:30:00 +0000] "GET /about"`,
	}

	tbl, dropped, err := ParseLines(lines)
	require.NoError(t, err)

	assert.Equal(t, 3, tbl.Len())
	assert.Equal(t, 3, dropped)
	assert.Equal(t, "/index.html", tbl.Cell(0, "request"))
	assert.Equal(t, "/form", tbl.Cell(1, "request"))
	assert.Equal(t, "/about", tbl.Cell(2, "request"))
	assert.Equal(t, ColumnNames(), tbl.Columns())
}

func TestParseLines_NoMatches(t *testing.T) {
	_, dropped, err := ParseLines([]string{"a", "b"})
	assert.ErrorIs(t, err, table.ErrEmpty)
	assert.Equal(t, 2, dropped)

	_, _, err = ParseLines(nil)
	assert.ErrorIs(t, err, table.ErrEmpty)
}

func TestParser_LogsDroppedLines(t *testing.T) {
	var buf bytes.Buffer
	p := New(WithLogger(zerolog.New(&buf).Level(zerolog.DebugLevel)))

	_, dropped, err := p.ParseLines([]string{validLine, "junk"})
	require.NoError(t, err)
	assert.Equal(t, 1, dropped)
	assert.Contains(t, buf.String(), "did not match")
	assert.True(t, strings.Contains(buf.String(), `"line":2`))
}

func TestRecord_Partial(t *testing.T) {
	r := NewRecord(map[Field]string{
		FieldStatus:     "500",
		FieldRemoteAddr: "",
	})

	assert.Equal(t, []string{"remote_addr", "status"}, r.Columns())

	v, ok := r.Value("status")
	assert.True(t, ok)
	assert.Equal(t, "500", v)

	v, ok = r.Value("remote_addr")
	assert.True(t, ok, "empty string is present, not missing")
	assert.Equal(t, "", v)

	_, ok = r.Value("time_local")
	assert.False(t, ok)
	_, ok = r.Value("no_such_column")
	assert.False(t, ok)
}

func TestFieldNames(t *testing.T) {
	assert.Len(t, ColumnNames(), 10)
	assert.Equal(t, "remote_addr", FieldRemoteAddr.String())
	assert.Equal(t, "http_user_agent", FieldUserAgent.String())
	assert.Equal(t, "Field(42)", Field(42).String())

	f, ok := FieldByName("body_bytes_sent")
	assert.True(t, ok)
	assert.Equal(t, FieldBodyBytesSent, f)
}
