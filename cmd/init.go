package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/wakabaloola/visualise-code-structure/core/config"
	"github.com/wakabaloola/visualise-code-structure/core/logger"
)

var (
	force bool
)

var initCmd = &cobra.Command{
	Use:   "init [directory]",
	Short: "Write a default .codestructure.yaml",
	Long:  `Creates a .codestructure.yaml with the default settings in the given directory.`,
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		logger.SetVerbose(verbose)

		dir := "."
		if len(args) == 1 {
			dir = args[0]
		}

		path := filepath.Join(dir, config.FileName)
		if _, err := os.Stat(path); err == nil && !force {
			return fmt.Errorf("%s already exists, use --force to overwrite", path)
		}

		if err := config.Write(dir, config.Default()); err != nil {
			return err
		}
		fmt.Printf("Wrote %s\n", path)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(initCmd)

	initCmd.Flags().BoolVar(&force, "force", false, "Force overwrite an existing config file")
}
