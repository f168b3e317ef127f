package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/klauspost/compress/gzip"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRootCommand(t *testing.T) {
	root := NewRootCommand()

	assert.Equal(t, "logstats", root.Use)
	assert.True(t, root.SilenceUsage)
	assert.True(t, root.SilenceErrors)

	var names []string
	for _, c := range root.Commands() {
		names = append(names, c.Name())
	}
	assert.ElementsMatch(t, []string{"analyze", "check", "validate", "version"}, names)
}

// TestRootCommand_AnalyzeRotatedLogs runs a full analysis over a plain log
// and its gzipped rotation, selected by one glob.
func TestRootCommand_AnalyzeRotatedLogs(t *testing.T) {
	dir := t.TempDir()

	current := `10.0.0.1 - - [10/Nov/2024:08:00:00 +0100] "GET /index.html HTTP/1.1" 200 100 "-" "curl/8.0"
10.0.0.2 - alice [10/Nov/2024:09:00:00 +0100] "GET /index.html HTTP/1.1" 304 0 "https://example.com/" "Mozilla/5.0 (X11)"
`
	rotated := `10.0.0.1 - - [09/Nov/2024:23:59:59 -0500] "GET /about HTTP/2.0" 200 300 "-" "curl/8.0"
malformed
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "access.log"), []byte(current), 0o600))

	var gz bytes.Buffer
	zw := gzip.NewWriter(&gz)
	_, err := zw.Write([]byte(rotated))
	require.NoError(t, err)
	require.NoError(t, zw.Close())
	require.NoError(t, os.WriteFile(filepath.Join(dir, "access.log.1.gz"), gz.Bytes(), 0o600))

	var stdout, stderr bytes.Buffer
	root := NewRootCommand()
	root.SetOut(&stdout)
	root.SetErr(&stderr)
	root.SetArgs([]string{"analyze", "-s", filepath.Join(dir, "access.log*"), "--log-level", "quiet"})

	require.NoError(t, root.Execute())
	out := stdout.String()

	assert.Contains(t, out, "/index.html")
	assert.Contains(t, out, "/about")
	assert.Contains(t, out, "2024-11-10")
	assert.Contains(t, out, "2024-11-09")
	assert.Contains(t, out, "133.33333333333334")
	assert.Empty(t, stderr.String())

	// 10.0.0.1 made two requests, so it leads the users table.
	users := out[strings.Index(out, "#### The most active users"):]
	assert.Less(t, strings.Index(users, "10.0.0.1"), strings.Index(users, "10.0.0.2"))
}
