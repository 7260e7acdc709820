package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/wakabaloola/visualise-code-structure/core/cache"
	"github.com/wakabaloola/visualise-code-structure/core/ignore"
	"github.com/wakabaloola/visualise-code-structure/core/logger"
	"github.com/wakabaloola/visualise-code-structure/core/outline"
	"github.com/wakabaloola/visualise-code-structure/core/watcher"
)

// watchCmd re-runs the outline whenever a Python file under the directory
// changes. Unchanged files are served from the parse cache.
var watchCmd = &cobra.Command{
	Use:   "watch [directory]",
	Short: "Re-print the outline whenever files change",
	Long:  `Watches the directory tree and re-prints the outline on every change.`,
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		logger.SetVerbose(verbose)
		if err := openLogfile(); err != nil {
			return err
		}

		dir := "."
		if len(args) == 1 {
			dir = args[0]
		}

		ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer cancel()

		runner := outline.NewRunner(dir, os.Stdout)
		runner.Verbosity = outline.ResolveVerbosity(showArguments, showTypes)
		runner.Docstrings = showDocstrings
		runner.JSON = jsonOutput
		runner.Color = !noColor
		runner.IgnorePatterns = ignorePatterns
		runner.Cache = cache.GetCache()

		if err := runner.ApplyConfig(); err != nil {
			return err
		}

		matcher := ignore.NewMatcher(append(ignore.DefaultPatterns(), runner.IgnorePatterns...)...)
		fw, err := watcher.NewFileWatcher(dir, matcher, runner.Cache)
		if err != nil {
			return err
		}
		defer fw.Close()

		fw.FileWatcher.AddOnStartFunc(func() error {
			return runner.Run(ctx)
		})
		fw.FileWatcher.AddOnChangeFunc(func() error {
			runner.Cache.LogStats()
			return runner.Run(ctx)
		})

		logger.Info("Watching %s for changes...", dir)
		return fw.Watch(ctx)
	},
}

func init() {
	rootCmd.AddCommand(watchCmd)

	watchCmd.Flags().BoolVarP(&showArguments, "arguments", "a", false, "Show argument names (with -t: names and types)")
	watchCmd.Flags().BoolVarP(&showTypes, "types", "t", false, "Show type annotations (alone: types only)")
	watchCmd.Flags().BoolVarP(&showDocstrings, "docstrings", "d", false, "Show docstrings")
	watchCmd.Flags().BoolVar(&jsonOutput, "json", false, "Emit the outline as JSON")
	watchCmd.Flags().BoolVar(&noColor, "no-color", false, "Disable ANSI colors")
	watchCmd.Flags().StringArrayVar(&ignorePatterns, "ignore", nil, "Extra glob pattern to ignore (repeatable)")
}
