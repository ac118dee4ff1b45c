package cli

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/cliware/cliware/settings"
)

var flagWithDefaults bool

var mergeCmd = &cobra.Command{
	Use:   "merge <defaults.json> <overrides.json>",
	Short: "Merge two settings documents and print the result",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		merged, err := mergeFiles(args[0], args[1], flagWithDefaults)
		if err != nil {
			return err
		}

		data, err := json.MarshalIndent(merged, "", "  ")
		if err != nil {
			return fmt.Errorf("encoding merged settings: %w", err)
		}
		fmt.Fprintln(os.Stdout, string(data))
		return nil
	},
}

func init() {
	mergeCmd.Flags().BoolVar(&flagWithDefaults, "with-defaults", false,
		"Merge over the library's built-in defaults first")
}

func mergeFiles(defaultsPath, overridesPath string, withDefaults bool) (map[string]any, error) {
	defaults, err := readTree(defaultsPath)
	if err != nil {
		return nil, err
	}
	overrides, err := readTree(overridesPath)
	if err != nil {
		return nil, err
	}

	if withDefaults {
		base, err := settings.Merge(libraryDefaults(), defaults)
		if err != nil {
			return nil, fmt.Errorf("merging %s over built-in defaults: %w", defaultsPath, err)
		}
		defaults = base
	}

	slog.Debug("merging settings documents",
		"defaults", defaultsPath,
		"overrides", overridesPath,
		"with_defaults", withDefaults)

	merged, err := settings.Merge(defaults, overrides)
	if err != nil {
		return nil, fmt.Errorf("merging %s over %s: %w", overridesPath, defaultsPath, err)
	}
	return merged, nil
}

func readTree(path string) (map[string]any, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	var tree map[string]any
	if err := json.Unmarshal(data, &tree); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return tree, nil
}
