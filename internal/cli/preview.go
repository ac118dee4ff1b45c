package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/cliware/cliware"
)

var previewCmd = &cobra.Command{
	Use:   "preview <settings.json>",
	Short: "Render the help screen a settings document would produce",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		tree, err := readTree(args[0])
		if err != nil {
			return err
		}

		// Construct a host as the library would, but with the exit stubbed
		// so a malformed document reports and falls through to the help
		// screen instead of killing the inspector.
		cliware.New(tree,
			cliware.WithArgs([]string{"--help"}),
			cliware.WithStdout(os.Stdout),
			cliware.WithStderr(os.Stderr),
			cliware.WithExit(func(int) {}),
		)
		return nil
	},
}
