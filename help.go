package cliware

import (
	"fmt"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

const helpWrapWidth = 78

// ShowHelp renders the two-section help screen — tool header plus option
// list — to the host's stdout. Settings are final by the time any caller
// can reach this, so the screen always reflects the merged tree.
func (c *CLI) ShowHelp() {
	fmt.Fprintln(c.stdout, text.Bold.Sprint(c.name))
	if c.description != "" {
		fmt.Fprintln(c.stdout, text.WrapSoft(c.description, helpWrapWidth))
	}
	fmt.Fprintln(c.stdout)

	fmt.Fprintln(c.stdout, text.Bold.Sprint("Options"))
	tw := table.NewWriter()
	tw.SetOutputMirror(c.stdout)
	tw.SetStyle(table.StyleLight)
	tw.Style().Options.DrawBorder = false
	tw.Style().Options.SeparateColumns = false
	tw.Style().Options.SeparateRows = false
	tw.Style().Options.SeparateHeader = false
	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 3, WidthMax: helpWrapWidth / 2},
	})
	for _, def := range c.defs {
		tw.AppendRow(table.Row{flagSyntax(def), typeLabel(def), def.Description})
	}
	tw.Render()
}

func flagSyntax(def OptionDef) string {
	if def.Alias != "" {
		return fmt.Sprintf("-%s, --%s", def.Alias, def.Name)
	}
	return fmt.Sprintf("    --%s", def.Name)
}

func typeLabel(def OptionDef) string {
	if def.TypeLabel != "" {
		return def.TypeLabel
	}
	switch def.Type {
	case "", "string":
		if def.Multiple {
			return "string[]"
		}
		return "string"
	case "bool":
		return ""
	case "strings":
		return "string[]"
	default:
		return def.Type
	}
}
