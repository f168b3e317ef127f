package commands

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/ccollicutt/logstats/pkg/parser"
)

// maxSampleLines is how many skipped lines are shown per source in verbose mode.
const maxSampleLines = 3

// Check statuses.
const (
	StatusOK      = "ok"
	StatusWarning = "warning"
	StatusError   = "error"
)

// CheckResult is the outcome of checking a single source.
type CheckResult struct {
	Source  string
	Status  string
	Message string
	Kept    int
	Dropped int
	Details []string
}

// NewCheckCommand creates the check command.
func NewCheckCommand() *cobra.Command {
	opts := &RunOptions{}
	var verbose bool

	cmd := &cobra.Command{
		Use:   "check [source...]",
		Short: "Report how many lines of each source match the access log format",
		Long: `Load every source and report, per source, how many lines match the
access log format and how many would be skipped by analyze.

Example:
  logstats check -s '/var/log/nginx/*.log'
  logstats check -v access.log  # show sample skipped lines`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(cmd, args, opts, verbose)
		},
	}

	opts.addFlags(cmd)
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Show sample skipped lines")

	return cmd
}

func runCheck(cmd *cobra.Command, args []string, opts *RunOptions, verbose bool) error {
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
		logger.Info().Msg("No log sources given, nothing to check")
		return nil
	}

	names, err := parser.ExpandSources(cfg.Sources)
	if err != nil {
		return fmt.Errorf("expanding sources: %w", err)
	}

	loader := newLoader(cfg, logger)
	results := make([]CheckResult, 0, len(names))
	for _, name := range names {
		lines, err := loader.Open(name).Lines(ctx)
		if err != nil {
			if ctxErr := ctx.Err(); ctxErr != nil {
				return ctxErr
			}
			results = append(results, CheckResult{
				Source:  name,
				Status:  StatusError,
				Message: fmt.Sprintf("Cannot read source: %v", err),
			})
			continue
		}
		results = append(results, checkLines(name, lines))
	}

	errCount := printCheckResults(cmd.OutOrStdout(), results, verbose)
	if errCount > 0 {
		return errors.New("one or more sources could not be read")
	}
	return nil
}

// checkLines classifies the lines of one source.
func checkLines(name string, lines []string) CheckResult {
	result := CheckResult{Source: name}

	for i, line := range lines {
		if _, ok := parser.ParseLine(line); ok {
			result.Kept++
			continue
		}
		result.Dropped++
		if len(result.Details) < maxSampleLines {
			result.Details = append(result.Details, fmt.Sprintf("line %d: %s", i+1, truncate(line, 80)))
		}
	}

	switch {
	case len(lines) == 0:
		result.Status = StatusWarning
		result.Message = "Source is empty"
	case result.Kept == 0:
		result.Status = StatusWarning
		result.Message = fmt.Sprintf("None of %d lines match the access log format", len(lines))
	case result.Dropped > 0:
		result.Status = StatusWarning
		result.Message = fmt.Sprintf("%d of %d lines match, %d will be skipped", result.Kept, len(lines), result.Dropped)
	default:
		result.Status = StatusOK
		result.Message = fmt.Sprintf("All %d lines match", len(lines))
	}

	return result
}

// printCheckResults writes the results and a summary, returning the number
// of failed sources.
func printCheckResults(w io.Writer, results []CheckResult, verbose bool) int {
	fmt.Fprintln(w, "=== logstats source check ===")
	fmt.Fprintln(w)

	okCount, warnCount, errCount := 0, 0, 0
	kept, dropped := 0, 0

	for _, r := range results {
		var icon string
		switch r.Status {
		case StatusOK:
			icon = "PASS"
			okCount++
		case StatusWarning:
			icon = "WARN"
			warnCount++
		case StatusError:
			icon = "FAIL"
			errCount++
		}
		kept += r.Kept
		dropped += r.Dropped

		fmt.Fprintf(w, "[%s] %s\n", icon, r.Source)
		fmt.Fprintf(w, "    %s\n", r.Message)

		if verbose {
			for _, d := range r.Details {
				fmt.Fprintf(w, "      - %s\n", d)
			}
		}

		fmt.Fprintln(w)
	}

	fmt.Fprintln(w, "---")
	fmt.Fprintf(w, "Summary: %d passed, %d warnings, %d errors\n", okCount, warnCount, errCount)
	fmt.Fprintf(w, "Lines: %d kept, %d skipped\n", kept, dropped)

	return errCount
}

// truncate shortens s to at most maxLen runes.
func truncate(s string, maxLen int) string {
	runes := []rune(s)
	if len(runes) <= maxLen {
		return s
	}
	return string(runes[:maxLen-3]) + "..."
}
