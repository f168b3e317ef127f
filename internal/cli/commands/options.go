package commands

import (
	"context"
	"fmt"
	"net/http"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/ccollicutt/logstats/pkg/analyzer"
	"github.com/ccollicutt/logstats/pkg/config"
	"github.com/ccollicutt/logstats/pkg/logging"
	"github.com/ccollicutt/logstats/pkg/parser"
)

// RunOptions holds the command-line options shared by analyze and check.
// Only flags set explicitly override the configuration file and environment.
type RunOptions struct {
	ConfigPath string
	Sources    []string
	From       string
	To         string
	Format     string
	Lines      int
	Method     string
	LogLevel   string
	Retries    int
}

func (o *RunOptions) addFlags(cmd *cobra.Command) {
	f := cmd.Flags()
	f.StringVarP(&o.ConfigPath, "config", "c", "", "Configuration file (YAML)")
	f.StringArrayVarP(&o.Sources, "source", "s", nil, "Log file, glob pattern or http(s) URL (can be repeated)")
	f.StringVar(&o.From, "from", "", "Only analyze records on or after this date (ISO-8601)")
	f.StringVar(&o.To, "to", "", "Only analyze records on or before this date (ISO-8601)")
	f.StringVarP(&o.Format, "format", "f", config.FormatMarkdown, "Output format (markdown|adoc)")
	f.IntVarP(&o.Lines, "lines", "n", analyzer.DefaultLimit, "Maximum rows per ranking table")
	f.StringVar(&o.Method, "method", analyzer.DefaultMethod, "Request method resources are ranked by")
	f.StringVar(&o.LogLevel, "log-level", logging.DefaultLevel, "Log level (debug|info|warn|error|quiet)")
	f.IntVar(&o.Retries, "retries", parser.DefaultHTTPRetries, "Retries for failed URL sources")
}

// config layers the set flags and positional sources over the configuration
// file and environment, then validates the result.
func (o *RunOptions) config(ctx context.Context, cmd *cobra.Command, args []string) (*config.Config, error) {
	cfg, err := config.Read(ctx, o.ConfigPath)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	flags := cmd.Flags()
	if flags.Changed("source") || len(args) > 0 {
		cfg.Sources = append(append([]string{}, o.Sources...), args...)
	}
	if flags.Changed("from") {
		cfg.From = o.From
	}
	if flags.Changed("to") {
		cfg.To = o.To
	}
	if flags.Changed("format") {
		cfg.Format = o.Format
	}
	if flags.Changed("lines") {
		cfg.Lines = o.Lines
	}
	if flags.Changed("method") {
		cfg.Method = o.Method
	}
	if flags.Changed("log-level") {
		cfg.LogLevel = o.LogLevel
	}
	if flags.Changed("retries") {
		cfg.HTTP.Retries = o.Retries
	}

	if err := config.Validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func newLogger(cmd *cobra.Command, cfg *config.Config) (zerolog.Logger, error) {
	return logging.New(cfg.LogLevel, cmd.ErrOrStderr())
}

func newLoader(cfg *config.Config, logger zerolog.Logger) *parser.Loader {
	return parser.NewLoader(
		parser.WithHTTPClient(&http.Client{Timeout: cfg.HTTP.Timeout}),
		parser.WithRetries(cfg.HTTP.Retries),
		parser.WithLoaderLogger(logger),
	)
}

func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}
