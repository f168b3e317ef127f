package parser

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path"
	"strings"
	"time"

	"github.com/cenkalti/backoff"
	"github.com/klauspost/compress/gzip"
	"github.com/rs/zerolog"
)

// ErrSourceUnavailable is returned when a log source cannot be read.
var ErrSourceUnavailable = errors.New("log source unavailable")

// Defaults for remote sources.
const (
	DefaultHTTPTimeout = 30 * time.Second
	DefaultHTTPRetries = 3
	maxLineSize        = 1024 * 1024
)

// Source provides the raw lines of one log file or URL.
type Source interface {
	// Name returns the path or URL of the source.
	Name() string

	// Lines reads the whole source.
	Lines(ctx context.Context) ([]string, error)
}

// FileSource reads a local log file. Files ending in .gz are decompressed.
type FileSource struct {
	path string
}

// NewFileSource creates a Source for a local file.
func NewFileSource(path string) *FileSource {
	return &FileSource{path: path}
}

// Name returns the file path.
func (s *FileSource) Name() string {
	return s.path
}

// Lines reads every line of the file.
func (s *FileSource) Lines(ctx context.Context) ([]string, error) {
	f, err := os.Open(s.path) // #nosec G304 -- user-provided paths are expected
	if err != nil {
		return nil, fmt.Errorf("opening log file %s: %w", s.path, err)
	}
	defer f.Close()

	lines, err := readLines(ctx, f, isGzip(s.path))
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", s.path, err)
	}
	return lines, nil
}

// URLSource fetches a log over HTTP(S). Transport errors and 5xx responses are
// retried with exponential backoff; other non-2xx responses fail at once.
type URLSource struct {
	url     string
	client  *http.Client
	retries int
	logger  zerolog.Logger
}

// NewURLSource creates a Source for a remote log.
func NewURLSource(rawURL string, client *http.Client, retries int, logger zerolog.Logger) *URLSource {
	if client == nil {
		client = &http.Client{Timeout: DefaultHTTPTimeout}
	}
	return &URLSource{url: rawURL, client: client, retries: retries, logger: logger}
}

// Name returns the URL.
func (s *URLSource) Name() string {
	return s.url
}

// Lines downloads the body and splits it into lines.
func (s *URLSource) Lines(ctx context.Context) ([]string, error) {
	var lines []string

	fetch := func() error {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.url, nil)
		if err != nil {
			return backoff.Permanent(fmt.Errorf("creating request: %w", err))
		}
		req.Header.Set("User-Agent", "logstats")

		resp, err := s.client.Do(req)
		if err != nil {
			if ctx.Err() != nil {
				return backoff.Permanent(ctx.Err())
			}
			return fmt.Errorf("request failed: %w", err)
		}
		defer resp.Body.Close()

		switch {
		case resp.StatusCode >= 500:
			return fmt.Errorf("server returned status %d", resp.StatusCode)
		case resp.StatusCode < 200 || resp.StatusCode >= 300:
			return backoff.Permanent(fmt.Errorf("server returned status %d", resp.StatusCode))
		}

		lines, err = readLines(ctx, resp.Body, isGzip(urlPath(s.url)))
		if err != nil {
			return fmt.Errorf("reading response: %w", err)
		}
		return nil
	}

	policy := backoff.WithContext(
		backoff.WithMaxRetries(backoff.NewExponentialBackOff(), uint64(max(s.retries, 0))),
		ctx,
	)
	notify := func(err error, wait time.Duration) {
		s.logger.Warn().Err(err).Str("source", s.url).Dur("retry_in", wait).Msg("Fetching log source failed, retrying")
	}

	if err := backoff.RetryNotify(fetch, policy, notify); err != nil {
		return nil, fmt.Errorf("fetching %s: %w", s.url, err)
	}
	return lines, nil
}

// Loader opens sources by name and concatenates their lines.
type Loader struct {
	client  *http.Client
	retries int
	logger  zerolog.Logger
}

// LoaderOption configures a Loader.
type LoaderOption func(*Loader)

// WithHTTPClient sets the client used for URL sources.
func WithHTTPClient(c *http.Client) LoaderOption {
	return func(l *Loader) {
		l.client = c
	}
}

// WithRetries sets how many times a failed URL fetch is retried.
func WithRetries(n int) LoaderOption {
	return func(l *Loader) {
		l.retries = n
	}
}

// WithLoaderLogger sets the loader's logger.
func WithLoaderLogger(logger zerolog.Logger) LoaderOption {
	return func(l *Loader) {
		l.logger = logger
	}
}

// NewLoader creates a Loader.
func NewLoader(opts ...LoaderOption) *Loader {
	l := &Loader{
		client:  &http.Client{Timeout: DefaultHTTPTimeout},
		retries: DefaultHTTPRetries,
		logger:  zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Open returns the Source for a path or URL.
func (l *Loader) Open(name string) Source {
	if IsURL(name) {
		return NewURLSource(name, l.client, l.retries, l.logger)
	}
	return NewFileSource(name)
}

// LoadAll expands the given paths, globs and URLs and returns the lines of
// every source, concatenated in order. Any unreadable source fails the whole
// load with an error wrapping ErrSourceUnavailable.
func (l *Loader) LoadAll(ctx context.Context, sources []string) ([]string, error) {
	names, err := ExpandSources(sources)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSourceUnavailable, err)
	}

	var all []string
	for _, name := range names {
		lines, err := l.Open(name).Lines(ctx)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrSourceUnavailable, err)
		}
		l.logger.Debug().Str("source", name).Int("lines", len(lines)).Msg("Loaded log source")
		all = append(all, lines...)
	}
	return all, nil
}

// IsURL reports whether a source name is an http or https URL.
func IsURL(name string) bool {
	lower := strings.ToLower(name)
	return strings.HasPrefix(lower, "http://") || strings.HasPrefix(lower, "https://")
}

func readLines(ctx context.Context, r io.Reader, gz bool) ([]string, error) {
	if gz {
		zr, err := gzip.NewReader(r)
		if err != nil {
			return nil, fmt.Errorf("opening gzip stream: %w", err)
		}
		defer zr.Close()
		r = zr
	}

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	var lines []string
	for scanner.Scan() {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return lines, nil
}

func isGzip(name string) bool {
	return strings.EqualFold(path.Ext(name), ".gz")
}

func urlPath(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return rawURL
	}
	return u.Path
}
