// Package config provides configuration loading and validation for logstats.
package config

import (
	"errors"
	"time"
)

// ErrInvalidArgument is returned for configuration values that cannot be used.
var ErrInvalidArgument = errors.New("invalid argument")

// Output formats.
const (
	FormatMarkdown = "markdown"
	FormatAdoc     = "adoc"
)

// Config is the run configuration. It is built from defaults, an optional
// YAML file, LOGSTATS_* environment variables and command-line flags, in that
// order, and is not modified after Validate succeeds.
type Config struct {
	// Sources are file paths, glob patterns or http(s) URLs.
	Sources []string `yaml:"sources"`

	// From and To bound the analysed calendar days, inclusive.
	// Any ISO-8601 style date is accepted; only the date part is used.
	From string `yaml:"from,omitempty"`
	To   string `yaml:"to,omitempty"`

	// Format selects the table renderer (markdown or adoc).
	Format string `yaml:"format"`

	// Lines is the number of rows in every ranking.
	Lines int `yaml:"lines"`

	// Method is the request method resources are ranked by.
	Method string `yaml:"method"`

	HTTP HTTPConfig `yaml:"http"`

	LogLevel string `yaml:"log_level"`

	// populated during validation
	fromDate *time.Time
	toDate   *time.Time
}

// HTTPConfig controls how URL sources are fetched.
type HTTPConfig struct {
	Timeout time.Duration `yaml:"timeout"`
	Retries int           `yaml:"retries"`
}

// FromDate returns the compiled lower date bound, or nil when unset.
func (c *Config) FromDate() *time.Time {
	return c.fromDate
}

// ToDate returns the compiled upper date bound, or nil when unset.
func (c *Config) ToDate() *time.Time {
	return c.toDate
}
