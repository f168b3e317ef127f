package commands

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/ccollicutt/logstats/pkg/config"
	"github.com/ccollicutt/logstats/pkg/parser"
)

// NewValidateCommand creates the validate command.
func NewValidateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "validate <config-file>",
		Short: "Validate a configuration file",
		Long: `Validate a logstats configuration file without running analysis.
LOGSTATS_* environment overrides are applied before validation.

Checks:
  - YAML syntax
  - Output format and row limit
  - Date bounds (ISO-8601, from not after to)
  - HTTP retry settings and log level
  - Log source existence (warning only)`,
		Args: cobra.ExactArgs(1),
		RunE: runValidate,
	}
}

func runValidate(cmd *cobra.Command, args []string) error {
	configPath := args[0]
	w := cmd.OutOrStdout()

	fmt.Fprintf(w, "Validating %s...\n", configPath)

	cfg, err := config.Load(commandContext(cmd), configPath)
	if err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}

	fmt.Fprintf(w, "\nConfiguration valid!\n")
	fmt.Fprintf(w, "  Format:      %s\n", cfg.Format)
	fmt.Fprintf(w, "  Lines:       %d\n", cfg.Lines)
	fmt.Fprintf(w, "  Method:      %s\n", cfg.Method)
	fmt.Fprintf(w, "  From:        %s\n", dateOrUnset(cfg.FromDate()))
	fmt.Fprintf(w, "  To:          %s\n", dateOrUnset(cfg.ToDate()))
	fmt.Fprintf(w, "  HTTP:        timeout %s, %d retries\n", cfg.HTTP.Timeout, cfg.HTTP.Retries)
	fmt.Fprintf(w, "  Sources:     %d pattern(s)\n", len(cfg.Sources))

	if len(cfg.Sources) == 0 {
		fmt.Fprintf(w, "\nWarning: No sources configured, analyze will print nothing\n")
		return nil
	}

	names, err := parser.ExpandSources(cfg.Sources)
	if err != nil {
		fmt.Fprintf(w, "\nWarning: Error expanding source patterns: %v\n", err)
		return nil
	}

	fmt.Fprintf(w, "\nSources resolved: %d\n", len(names))
	for _, name := range names {
		fmt.Fprintf(w, "  - %s%s\n", name, sourceNote(name))
	}

	return nil
}

func sourceNote(name string) string {
	if parser.IsURL(name) {
		return " (url)"
	}
	if !fileExists(name) {
		return " (warning: not found)"
	}
	return ""
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}

func dateOrUnset(t *time.Time) string {
	if t == nil {
		return "unset"
	}
	return t.Format(time.DateOnly)
}
