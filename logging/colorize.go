package logging

import (
	"reflect"

	"github.com/fatih/color"
)

// palette maps recognized color names to their ANSI attributes. Unknown
// names leave values unmodified.
var palette = map[string]*color.Color{
	"black":   color.New(color.FgBlack),
	"red":     color.New(color.FgRed),
	"green":   color.New(color.FgGreen),
	"yellow":  color.New(color.FgYellow),
	"blue":    color.New(color.FgBlue),
	"magenta": color.New(color.FgMagenta),
	"cyan":    color.New(color.FgCyan),
	"white":   color.New(color.FgWhite),
	"gray":    color.New(color.FgHiBlack),
	"grey":    color.New(color.FgHiBlack),
}

// KnownColor reports whether name is in the palette.
func KnownColor(name string) bool {
	_, ok := palette[name]
	return ok
}

// Colorize applies a named color one level deep: a string is returned
// colorized; string elements of a sequence and string values of a mapping
// are colorized in a shallow copy; everything else passes through
// untouched. A blank or unknown color name is a no-op.
func Colorize(v any, name string) any {
	c, ok := palette[name]
	if !ok {
		return v
	}

	switch tv := v.(type) {
	case string:
		return c.Sprint(tv)
	case []any:
		out := make([]any, len(tv))
		for i, e := range tv {
			if s, isStr := e.(string); isStr {
				out[i] = c.Sprint(s)
			} else {
				out[i] = e
			}
		}
		return out
	case map[string]any:
		out := make(map[string]any, len(tv))
		for k, e := range tv {
			if s, isStr := e.(string); isStr {
				out[k] = c.Sprint(s)
			} else {
				out[k] = e
			}
		}
		return out
	}

	// Typed sequences still get element-wise treatment.
	if rv := reflect.ValueOf(v); rv.Kind() == reflect.Slice {
		out := make([]any, rv.Len())
		for i := range out {
			e := rv.Index(i).Interface()
			if s, isStr := e.(string); isStr {
				out[i] = c.Sprint(s)
			} else {
				out[i] = e
			}
		}
		return out
	}
	return v
}
