package config

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/ccollicutt/logstats/pkg/analyzer"
	"github.com/ccollicutt/logstats/pkg/logging"
	"github.com/ccollicutt/logstats/pkg/parser"
)

// EnvPrefix prefixes every environment override, e.g. LOGSTATS_FORMAT.
const EnvPrefix = "LOGSTATS"

// Environment keys, relative to EnvPrefix.
const (
	EnvSources     = "sources"
	EnvFrom        = "from"
	EnvTo          = "to"
	EnvFormat      = "format"
	EnvLines       = "lines"
	EnvMethod      = "method"
	EnvLogLevel    = "log_level"
	EnvHTTPTimeout = "http_timeout"
	EnvHTTPRetries = "http_retries"
)

// DefaultConfig returns a configuration with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Sources:  []string{},
		Format:   FormatMarkdown,
		Lines:    analyzer.DefaultLimit,
		Method:   analyzer.DefaultMethod,
		LogLevel: logging.DefaultLevel,
		HTTP: HTTPConfig{
			Timeout: parser.DefaultHTTPTimeout,
			Retries: parser.DefaultHTTPRetries,
		},
	}
}

// applyEnvironmentOverrides applies LOGSTATS_* environment variables.
func (c *Config) applyEnvironmentOverrides() error {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()

	if v.IsSet(EnvSources) {
		c.Sources = splitList(v.GetString(EnvSources))
	}
	if v.IsSet(EnvFrom) {
		c.From = v.GetString(EnvFrom)
	}
	if v.IsSet(EnvTo) {
		c.To = v.GetString(EnvTo)
	}
	if v.IsSet(EnvFormat) {
		c.Format = v.GetString(EnvFormat)
	}
	if v.IsSet(EnvMethod) {
		c.Method = v.GetString(EnvMethod)
	}
	if v.IsSet(EnvLogLevel) {
		c.LogLevel = v.GetString(EnvLogLevel)
	}
	if v.IsSet(EnvLines) {
		n, err := strconv.Atoi(strings.TrimSpace(v.GetString(EnvLines)))
		if err != nil {
			return fmt.Errorf("%w: %s_LINES: %w", ErrInvalidArgument, EnvPrefix, err)
		}
		c.Lines = n
	}
	if v.IsSet(EnvHTTPRetries) {
		n, err := strconv.Atoi(strings.TrimSpace(v.GetString(EnvHTTPRetries)))
		if err != nil {
			return fmt.Errorf("%w: %s_HTTP_RETRIES: %w", ErrInvalidArgument, EnvPrefix, err)
		}
		c.HTTP.Retries = n
	}
	if v.IsSet(EnvHTTPTimeout) {
		d, err := time.ParseDuration(strings.TrimSpace(v.GetString(EnvHTTPTimeout)))
		if err != nil {
			return fmt.Errorf("%w: %s_HTTP_TIMEOUT: %w", ErrInvalidArgument, EnvPrefix, err)
		}
		c.HTTP.Timeout = d
	}

	return nil
}

// splitList splits a comma or whitespace separated list, dropping empties.
func splitList(s string) []string {
	return strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t' || r == '\n'
	})
}
