package cli

import (
	"fmt"
	"log/slog"
	"os"
	"unicode/utf8"

	"github.com/spf13/cobra"

	"github.com/cliware/cliware"
	"github.com/cliware/cliware/logging"
	"github.com/cliware/cliware/settings"
)

var lintCmd = &cobra.Command{
	Use:   "lint <settings.json>",
	Short: "Validate a settings document",
	Long:  "Lint checks a settings document the way the cliware library would consume it: the merge over built-in defaults, the logging subtree, and the option definitions.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		tree, err := readTree(args[0])
		if err != nil {
			return err
		}

		findings := lintSettings(tree)
		if len(findings) == 0 {
			fmt.Fprintln(os.Stdout, "No issues found.")
			return nil
		}

		for _, f := range findings {
			fmt.Fprintf(os.Stdout, "  [!] %s\n", f)
		}
		fmt.Fprintf(os.Stdout, "%d issue(s) found\n", len(findings))
		exitCode = ExitFindings
		return nil
	},
}

func libraryDefaults() map[string]any {
	return cliware.DefaultSettings()
}

// lintSettings reports every problem the library would reject the document
// for, plus soft issues (unknown colors) the library silently ignores.
func lintSettings(tree map[string]any) []string {
	var findings []string

	merged, err := settings.Merge(libraryDefaults(), tree)
	if err != nil {
		// A document that cannot merge has nothing else worth checking.
		return []string{err.Error()}
	}
	slog.Debug("document merged over defaults", "keys", len(merged))

	reserved := make(map[string]bool)
	for _, name := range cliware.ReservedMethodNames() {
		reserved[name] = true
	}

	cfgs, err := cliware.DecodeLogging(merged)
	if err != nil {
		findings = append(findings, err.Error())
	}
	for name, cfg := range cfgs {
		if reserved[name] {
			findings = append(findings, fmt.Sprintf("logging method %q collides with a reserved name", name))
		}
		if cfg.Color != "" && !logging.KnownColor(cfg.Color) {
			findings = append(findings, fmt.Sprintf("logging method %q uses unknown color %q", name, cfg.Color))
		}
	}

	defs, err := cliware.DecodeOptionDefs(merged)
	if err != nil {
		findings = append(findings, err.Error())
	}
	findings = append(findings, lintOptionDefs(defs)...)

	return findings
}

func lintOptionDefs(defs []cliware.OptionDef) []string {
	var findings []string
	seen := make(map[string]bool)
	defaultOptions := 0

	for _, def := range defs {
		if def.Name == "" {
			findings = append(findings, "option definition without a name")
			continue
		}
		if seen[def.Name] {
			findings = append(findings, fmt.Sprintf("option %q defined twice", def.Name))
		}
		seen[def.Name] = true

		if def.Alias != "" && utf8.RuneCountInString(def.Alias) != 1 {
			findings = append(findings, fmt.Sprintf("option %q: alias %q is not a single character", def.Name, def.Alias))
		}
		switch def.Type {
		case "", "string", "strings", "bool", "int", "float", "number":
		default:
			findings = append(findings, fmt.Sprintf("option %q: unknown type %q", def.Name, def.Type))
		}
		if def.DefaultOption {
			defaultOptions++
		}
	}
	if defaultOptions > 1 {
		findings = append(findings, fmt.Sprintf("%d option definitions claim defaultOption; only one can collect positionals", defaultOptions))
	}
	return findings
}
