package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ccollicutt/logstats/pkg/analyzer"
	"github.com/ccollicutt/logstats/pkg/output"
	"github.com/ccollicutt/logstats/pkg/parser"
)

// NewAnalyzeCommand creates the analyze command.
func NewAnalyzeCommand() *cobra.Command {
	opts := &RunOptions{}

	cmd := &cobra.Command{
		Use:   "analyze [source...]",
		Short: "Print statistics for access logs",
		Long: `Load access logs from files, glob patterns or http(s) URLs and print
statistics as markdown or AsciiDoc tables:

  - Overall information (sources, date range, requests, average response size)
  - The most popular resources
  - The most popular statuses
  - The most highloaded days
  - The most active users

Lines that do not match the access log format are skipped.
With no sources nothing is printed and the command succeeds.

Exit codes:
  0 - Success
  2 - Configuration or runtime error

Example:
  logstats analyze -s /var/log/nginx/access.log* --from 2024-11-01 --format adoc --lines 10`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAnalyze(cmd, args, opts)
		},
	}

	opts.addFlags(cmd)

	return cmd
}

func runAnalyze(cmd *cobra.Command, args []string, opts *RunOptions) error {
	ctx := commandContext(cmd)

	cfg, err := opts.config(ctx, cmd, args)
	if err != nil {
		return err
	}

	logger, err := newLogger(cmd, cfg)
	if err != nil {
		return err
	}

	if len(cfg.Sources) == 0 {
		logger.Info().Msg("No log sources given, nothing to analyze")
		return nil
	}

	renderer, err := output.NewRenderer(cfg.Format)
	if err != nil {
		return err
	}

	lines, err := newLoader(cfg, logger).LoadAll(ctx, cfg.Sources)
	if err != nil {
		return fmt.Errorf("loading logs: %w", err)
	}
	if len(lines) == 0 {
		logger.Info().Strs("sources", cfg.Sources).Msg("Sources contain no log lines, nothing to analyze")
		return nil
	}

	logs, dropped, err := parser.New(parser.WithLogger(logger)).ParseLines(lines)
	if err != nil {
		return fmt.Errorf("parsing logs: %w", err)
	}

	a, err := analyzer.NewAnalyzer(
		analyzer.WithDateRange(cfg.FromDate(), cfg.ToDate()),
		analyzer.WithMethod(cfg.Method),
		analyzer.WithLimit(cfg.Lines),
		analyzer.WithLogger(logger),
	)
	if err != nil {
		return fmt.Errorf("creating analyzer: %w", err)
	}

	result, err := a.Analyze(ctx, logs)
	if err != nil {
		return fmt.Errorf("analysis failed: %w", err)
	}

	report := output.NewReport(cfg.Sources, result)
	if err := report.Write(cmd.OutOrStdout(), renderer, cfg.Lines); err != nil {
		return err
	}

	logger.Info().
		Int("lines", len(lines)).
		Int("dropped", dropped).
		Int("requests", result.Requests).
		Str("format", renderer.Name()).
		Msg("Analysis complete")

	return nil
}
