package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/wakabaloola/visualise-code-structure/core/version"
)

// versionCmd represents the version command
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Display the version of code-structure",
	Long:  `Displays the version of code-structure.`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("code-structure %s\n", version.Version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
