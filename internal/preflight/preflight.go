package preflight

import (
	"context"
	"path/filepath"

	"subclean/internal/config"
)

// Result reports the outcome of a single preflight check.
type Result struct {
	Name   string
	Passed bool
	Detail string
}

// RunAll executes all applicable preflight checks for the given config.
// Output directories are derived from inputs; each distinct directory is
// checked once.
func RunAll(ctx context.Context, cfg *config.Config, inputs ...string) []Result {
	if cfg == nil {
		return nil
	}

	var results []Result

	if cfg.History.Enabled && cfg.History.Path != "" {
		results = append(results, CheckDirectoryAccess("History directory", filepath.Dir(cfg.History.Path)))
	}

	if cfg.Pipeline.PatternsFile != "" {
		results = append(results, CheckFileReadable("Patterns file", cfg.Pipeline.PatternsFile))
	}

	seen := make(map[string]struct{}, len(inputs))
	for _, input := range inputs {
		if ctx.Err() != nil {
			break
		}
		dir := filepath.Dir(input)
		if _, ok := seen[dir]; ok {
			continue
		}
		seen[dir] = struct{}{}
		results = append(results, CheckDirectoryAccess("Output directory", dir))
	}

	return results
}

// Failed returns the checks that did not pass.
func Failed(results []Result) []Result {
	var failed []Result
	for _, r := range results {
		if !r.Passed {
			failed = append(failed, r)
		}
	}
	return failed
}
