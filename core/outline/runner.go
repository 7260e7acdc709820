package outline

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/wakabaloola/visualise-code-structure/core/cache"
	"github.com/wakabaloola/visualise-code-structure/core/config"
	"github.com/wakabaloola/visualise-code-structure/core/extractor"
	"github.com/wakabaloola/visualise-code-structure/core/ignore"
	"github.com/wakabaloola/visualise-code-structure/core/logger"
	"github.com/wakabaloola/visualise-code-structure/core/models"
	"github.com/wakabaloola/visualise-code-structure/core/printer"
	"github.com/wakabaloola/visualise-code-structure/core/walker"
)

// Runner holds the configuration for one outline run.
type Runner struct {
	Dir string
	Out io.Writer

	Verbosity  int
	Docstrings bool
	JSON       bool
	Color      bool

	// IgnorePatterns are extra patterns on top of ignore.DefaultPatterns
	// and the config file's patterns.
	IgnorePatterns []string

	// Cache is optional; watch mode shares one across runs.
	Cache *cache.ParseCache
}

func NewRunner(dir string, out io.Writer) *Runner {
	return &Runner{
		Dir:   dir,
		Out:   out,
		Color: true,
	}
}

// ApplyConfig merges the directory's .codestructure.yaml into the runner.
// Flags already set by the caller win over config values.
func (r *Runner) ApplyConfig() error {
	cfg, err := config.Load(r.Dir)
	if err != nil {
		return err
	}
	r.IgnorePatterns = append(r.IgnorePatterns, cfg.Ignore...)
	if cfg.Docstrings {
		r.Docstrings = true
	}
	if !cfg.Color {
		r.Color = false
	}
	return nil
}

// Run walks the directory, outlines every Python file, and prints the
// result. Per-file parse failures end up in the report's error section and
// never fail the run; only an invalid directory or a traversal-level error
// (including cancellation) is returned.
func (r *Runner) Run(ctx context.Context) error {
	info, err := os.Stat(r.Dir)
	if err != nil {
		return fmt.Errorf("invalid directory %s: %w", r.Dir, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("invalid directory %s: not a directory", r.Dir)
	}

	patterns := append(ignore.DefaultPatterns(), r.IgnorePatterns...)
	matcher := ignore.NewMatcher(patterns...)

	w := walker.NewFileWalker(matcher, extractor.Options{
		Verbosity:  r.Verbosity,
		Docstrings: r.Docstrings,
	})
	w.Cache = r.Cache

	report, err := w.Walk(ctx, r.Dir)
	if err != nil {
		return fmt.Errorf("failed to walk directory: %w", err)
	}
	logger.Debug("Outlined %d files, %d parse failures", len(report.Files), len(report.Errors))

	p := printer.New(r.Out, r.Color, r.Docstrings)
	if r.JSON {
		return p.PrintJSON(report)
	}
	p.Print(report)

	return nil
}

// ResolveVerbosity maps the -a/-t flag combination to a verbosity level.
func ResolveVerbosity(arguments, types bool) int {
	switch {
	case arguments && types:
		return models.VerbosityArgsTypes
	case types:
		return models.VerbosityTypes
	case arguments:
		return models.VerbosityArgs
	default:
		return models.VerbosityNames
	}
}
