package config

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/araddon/dateparse"
	"gopkg.in/yaml.v3"

	"github.com/ccollicutt/logstats/pkg/logging"
)

// Read builds a configuration from defaults, the YAML file at path (skipped
// when path is empty) and environment overrides. The result is not validated,
// so callers can layer flags on top before calling Validate.
func Read(_ context.Context, path string) (*Config, error) {
	cfg := DefaultConfig()

	if path != "" {
		data, err := os.ReadFile(path) // #nosec G304 -- user-provided config path is expected
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	if err := cfg.applyEnvironmentOverrides(); err != nil {
		return nil, fmt.Errorf("reading environment: %w", err)
	}

	return cfg, nil
}

// Load reads and validates a configuration.
func Load(ctx context.Context, path string) (*Config, error) {
	cfg, err := Read(ctx, path)
	if err != nil {
		return nil, err
	}

	if err := Validate(cfg); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	return cfg, nil
}

// Validate checks a configuration for errors, normalizes format and method,
// and compiles the date bounds. Every returned error wraps ErrInvalidArgument.
func Validate(cfg *Config) error {
	cfg.Format = strings.ToLower(strings.TrimSpace(cfg.Format))
	switch cfg.Format {
	case FormatMarkdown, FormatAdoc:
	default:
		return fmt.Errorf("%w: format %q (must be markdown or adoc)", ErrInvalidArgument, cfg.Format)
	}

	if cfg.Lines < 1 {
		return fmt.Errorf("%w: lines must be >= 1, got %d", ErrInvalidArgument, cfg.Lines)
	}

	cfg.Method = strings.ToUpper(strings.TrimSpace(cfg.Method))
	if cfg.Method == "" {
		return fmt.Errorf("%w: method is required", ErrInvalidArgument)
	}

	if cfg.HTTP.Retries < 0 {
		return fmt.Errorf("%w: http.retries must be >= 0, got %d", ErrInvalidArgument, cfg.HTTP.Retries)
	}
	if cfg.HTTP.Timeout < 0 {
		return fmt.Errorf("%w: http.timeout must not be negative", ErrInvalidArgument)
	}

	if _, err := logging.ParseLevel(cfg.LogLevel); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidArgument, err)
	}

	from, err := parseDate(cfg.From)
	if err != nil {
		return fmt.Errorf("%w: from: %w", ErrInvalidArgument, err)
	}
	to, err := parseDate(cfg.To)
	if err != nil {
		return fmt.Errorf("%w: to: %w", ErrInvalidArgument, err)
	}
	if from != nil && to != nil && from.After(*to) {
		return fmt.Errorf("%w: from %s is after to %s", ErrInvalidArgument,
			from.Format(time.DateOnly), to.Format(time.DateOnly))
	}
	cfg.fromDate = from
	cfg.toDate = to

	return nil
}

// parseDate parses an ISO-8601 date, optionally followed by a time, and
// truncates it to its calendar day. An empty string is an unset bound.
func parseDate(s string) (*time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}

	if len(s) < len(time.DateOnly) {
		return nil, fmt.Errorf("invalid date %q: expected YYYY-MM-DD", s)
	}
	if _, err := time.Parse(time.DateOnly, s[:len(time.DateOnly)]); err != nil {
		return nil, fmt.Errorf("invalid date %q: expected YYYY-MM-DD: %w", s, err)
	}
	if len(s) > len(time.DateOnly) && s[len(time.DateOnly)] != 'T' && s[len(time.DateOnly)] != ' ' {
		return nil, fmt.Errorf("invalid date %q: expected YYYY-MM-DD", s)
	}

	t, err := dateparse.ParseIn(s, time.UTC)
	if err != nil {
		return nil, fmt.Errorf("invalid date %q: %w", s, err)
	}
	if t.IsZero() {
		return nil, errors.New("date must not be empty")
	}

	day := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
	return &day, nil
}
