package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

const version = "0.1.0"

// Exit codes
const (
	ExitSuccess    = 0
	ExitFindings   = 1
	ExitUsageError = 2
)

var rootCmd = &cobra.Command{
	Use:   "cliware",
	Short: "Inspect cliware settings documents",
	Long:  "Cliware merges, lints, and previews the declarative settings documents the cliware library builds command-line tools from.",
}

var flagDebug bool

// Run executes the root command and returns an exit code.
func Run() int {
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Enable debug logging")
	cobra.OnInitialize(setupLogger)

	rootCmd.AddCommand(mergeCmd)
	rootCmd.AddCommand(lintCmd)
	rootCmd.AddCommand(previewCmd)
	rootCmd.AddCommand(versionCmd)

	if err := rootCmd.Execute(); err != nil {
		// Cobra already prints the error
		return ExitUsageError
	}

	return exitCode
}

// exitCode is set by command handlers to control the process exit code.
var exitCode = ExitSuccess

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print cliware version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(os.Stdout, "cliware version %s\n", version)
	},
}
