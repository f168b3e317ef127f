package parser

import (
	"fmt"
	"path/filepath"
	"sort"
)

// ExpandSources expands local glob patterns into file paths and leaves URLs
// untouched. Sources keep the order they were given in; the matches of a
// single pattern are sorted. A source named twice is loaded twice. Patterns
// that don't match any files are returned as-is so that opening them reports
// a clear error.
func ExpandSources(patterns []string) ([]string, error) {
	var result []string

	for _, pattern := range patterns {
		if IsURL(pattern) {
			result = append(result, pattern)
			continue
		}

		matches, err := filepath.Glob(pattern)
		if err != nil {
			return nil, fmt.Errorf("invalid glob pattern %q: %w", pattern, err)
		}

		if len(matches) == 0 {
			result = append(result, pattern)
			continue
		}

		sort.Strings(matches)
		result = append(result, matches...)
	}

	return result, nil
}
