package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/wakabaloola/visualise-code-structure/core/logger"
	"github.com/wakabaloola/visualise-code-structure/core/outline"
)

var rootCmd = &cobra.Command{
	Use:   "code-structure [directory]",
	Short: "Print an outline of the classes and functions in a Python codebase",
	Long: `code-structure walks a directory tree, parses every Python source file,
and prints a formatted outline of its classes, methods, and top-level
functions. Argument names, type annotations, and docstrings are shown
depending on the flags given. Files that fail to parse are reported in an
error section without aborting the run.`,
	Args: cobra.MaximumNArgs(1),
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

		if err := runner.ApplyConfig(); err != nil {
			return err
		}
		return runner.Run(ctx)
	},
}

var (
	logfile string
	verbose bool

	showArguments  bool
	showTypes      bool
	showDocstrings bool
	jsonOutput     bool
	noColor        bool
	ignorePatterns []string
)

func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func openLogfile() error {
	if logfile == "" {
		return nil
	}
	f, err := os.OpenFile(logfile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return err
	}
	logger.AddWriter(f)
	return nil
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logfile, "logfile", "", "File to write logs to")
	rootCmd.PersistentFlags().BoolVar(&verbose, "verbose", false, "Verbose output")

	rootCmd.Flags().BoolVarP(&showArguments, "arguments", "a", false, "Show argument names (with -t: names and types)")
	rootCmd.Flags().BoolVarP(&showTypes, "types", "t", false, "Show type annotations (alone: types only)")
	rootCmd.Flags().BoolVarP(&showDocstrings, "docstrings", "d", false, "Show docstrings")
	rootCmd.Flags().BoolVar(&jsonOutput, "json", false, "Emit the outline as JSON")
	rootCmd.Flags().BoolVar(&noColor, "no-color", false, "Disable ANSI colors")
	rootCmd.Flags().StringArrayVar(&ignorePatterns, "ignore", nil, "Extra glob pattern to ignore (repeatable)")
}
