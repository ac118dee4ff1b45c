package cliware

import (
	"fmt"
	"io"
	"unicode/utf8"

	"github.com/spf13/pflag"
)

// OptionDef is one option-definition record from the merged
// optionDefinitions sequence.
type OptionDef struct {
	Name        string `mapstructure:"name" json:"name"`
	Alias       string `mapstructure:"alias" json:"alias,omitempty"`
	Type        string `mapstructure:"type" json:"type,omitempty"`
	Description string `mapstructure:"description" json:"description,omitempty"`

	// TypeLabel replaces the type name in the help screen.
	TypeLabel string `mapstructure:"typeLabel" json:"typeLabel,omitempty"`

	// DefaultValue seeds the option when the flag is absent.
	DefaultValue any `mapstructure:"defaultValue" json:"defaultValue,omitempty"`

	// DefaultOption marks the definition that collects bare positional
	// arguments.
	DefaultOption bool `mapstructure:"defaultOption" json:"defaultOption,omitempty"`

	// Multiple collects repeated values into a string list.
	Multiple bool `mapstructure:"multiple" json:"multiple,omitempty"`
}

// Options is the parsed option bag. Force is never a flag; it is raised by
// the host itself when construction fails so error reporting cannot
// escalate.
type Options struct {
	Values  map[string]any
	Verbose bool
	Quiet   bool
	Force   bool
	Help    bool
}

// Bool returns a boolean option value from the bag.
func (o *Options) Bool(name string) bool {
	b, _ := o.Values[name].(bool)
	return b
}

// String returns a string option value from the bag.
func (o *Options) String(name string) string {
	s, _ := o.Values[name].(string)
	return s
}

// parseOptions binds the merged option definitions onto a pflag set and
// parses the construction argv exactly once.
func (c *CLI) parseOptions(defs []OptionDef) (*Options, error) {
	fs := pflag.NewFlagSet(c.name, pflag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.Usage = func() {}

	for _, def := range defs {
		if err := bindFlag(fs, def); err != nil {
			return nil, err
		}
	}

	if err := fs.Parse(c.args); err != nil {
		return nil, fmt.Errorf("parsing arguments: %w", err)
	}

	values := make(map[string]any, len(defs))
	for _, def := range defs {
		v, err := flagValue(fs, def)
		if err != nil {
			return nil, err
		}
		values[def.Name] = v
	}

	if err := bindPositionals(values, defs, fs.Args()); err != nil {
		return nil, err
	}

	opts := &Options{Values: values}
	opts.Help, _ = values["help"].(bool)
	opts.Verbose, _ = values["verbose"].(bool)
	opts.Quiet, _ = values["quiet"].(bool)
	return opts, nil
}

func bindFlag(fs *pflag.FlagSet, def OptionDef) error {
	alias := def.Alias
	if alias != "" && utf8.RuneCountInString(alias) != 1 {
		return fmt.Errorf("option %q: alias %q must be a single character", def.Name, alias)
	}
	if fs.Lookup(def.Name) != nil {
		return fmt.Errorf("option %q defined twice", def.Name)
	}

	switch kind := def.Type; kind {
	case "bool":
		fs.BoolP(def.Name, alias, defaultBool(def.DefaultValue), def.Description)
	case "", "string":
		if def.Multiple {
			fs.StringSliceP(def.Name, alias, defaultStrings(def.DefaultValue), def.Description)
		} else {
			fs.StringP(def.Name, alias, defaultString(def.DefaultValue), def.Description)
		}
	case "strings":
		fs.StringSliceP(def.Name, alias, defaultStrings(def.DefaultValue), def.Description)
	case "int":
		fs.IntP(def.Name, alias, defaultInt(def.DefaultValue), def.Description)
	case "float", "number":
		fs.Float64P(def.Name, alias, defaultFloat(def.DefaultValue), def.Description)
	default:
		return fmt.Errorf("option %q: unknown type %q", def.Name, kind)
	}
	return nil
}

func flagValue(fs *pflag.FlagSet, def OptionDef) (any, error) {
	switch def.Type {
	case "bool":
		return fs.GetBool(def.Name)
	case "", "string":
		if def.Multiple {
			return fs.GetStringSlice(def.Name)
		}
		return fs.GetString(def.Name)
	case "strings":
		return fs.GetStringSlice(def.Name)
	case "int":
		return fs.GetInt(def.Name)
	case "float", "number":
		return fs.GetFloat64(def.Name)
	default:
		return nil, fmt.Errorf("option %q: unknown type %q", def.Name, def.Type)
	}
}

// bindPositionals assigns leftover arguments to the defaultOption
// definition. Leftovers with no collector are a parse failure, matching
// the strictness of unknown flags.
func bindPositionals(values map[string]any, defs []OptionDef, rest []string) error {
	if len(rest) == 0 {
		return nil
	}
	for _, def := range defs {
		if !def.DefaultOption {
			continue
		}
		if def.Multiple || def.Type == "strings" {
			existing, _ := values[def.Name].([]string)
			values[def.Name] = append(existing, rest...)
		} else {
			values[def.Name] = rest[0]
			if len(rest) > 1 {
				return fmt.Errorf("unexpected arguments: %v", rest[1:])
			}
		}
		return nil
	}
	return fmt.Errorf("unexpected arguments: %v", rest)
}

func defaultBool(v any) bool {
	b, _ := v.(bool)
	return b
}

func defaultString(v any) string {
	s, _ := v.(string)
	return s
}

func defaultStrings(v any) []string {
	switch tv := v.(type) {
	case []string:
		return tv
	case []any:
		out := make([]string, 0, len(tv))
		for _, e := range tv {
			if s, ok := e.(string); ok {
				out = append(out, s)
			}
		}
		return out
	case string:
		return []string{tv}
	}
	return nil
}

func defaultInt(v any) int {
	switch tv := v.(type) {
	case int:
		return tv
	case int64:
		return int(tv)
	case float64:
		return int(tv)
	}
	return 0
}

func defaultFloat(v any) float64 {
	switch tv := v.(type) {
	case float64:
		return tv
	case float32:
		return float64(tv)
	case int:
		return float64(tv)
	}
	return 0
}
