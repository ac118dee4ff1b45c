package cliware

import "github.com/cliware/cliware/settings"

// defaultTemplate is the process-wide default settings document. It is
// never handed out directly; every construction merges over a deep clone.
var defaultTemplate = map[string]any{
	"name":              "cli",
	"description":       "",
	"allowForceNoThrow": true,
	"logging": map[string]any{
		"log":   map[string]any{"verbose": false},
		"info":  map[string]any{"verbose": true, "color": "cyan"},
		"ok":    map[string]any{"verbose": false, "prefix": "OK", "color": "green"},
		"warn":  map[string]any{"verbose": false, "prefix": "WARN", "color": "yellow"},
		"error": map[string]any{"verbose": false, "prefix": "ERROR", "color": "red", "throws": true},
		"debug": map[string]any{"verbose": true, "color": "gray", "stamp": true},
	},
	"optionDefinitions": []any{
		map[string]any{"name": "help", "alias": "h", "type": "bool", "description": "Show this help screen"},
		map[string]any{"name": "verbose", "alias": "v", "type": "bool", "description": "Enable verbose output"},
		map[string]any{"name": "quiet", "alias": "q", "type": "bool", "description": "Suppress all output"},
	},
}

func defaultSettings() map[string]any {
	return settings.Clone(defaultTemplate)
}

// DefaultSettings returns a deep copy of the default settings document —
// the tree a caller's overrides are merged over.
func DefaultSettings() map[string]any {
	return defaultSettings()
}

// ReservedMethodNames lists the names that can never be logging methods.
func ReservedMethodNames() []string {
	out := make([]string, len(reservedMethodNames))
	copy(out, reservedMethodNames)
	return out
}

// reservedMethodNames may never be used as logging method names; they are
// the host's own surface.
var reservedMethodNames = []string{"options", "settings", "help", "version"}
