// Package cliware scaffolds small command-line tools from declarative
// settings.
//
// A CLI host is built in one shot: caller overrides are merged over the
// default settings tree, logging methods are generated from the merged
// logging subtree, and process arguments are parsed against the merged
// option definitions. A malformed settings tree is never ignored — the
// error is reported through the best logger available, the help screen is
// shown, and the process exits.
//
// Typical use:
//
//	cli := cliware.New(map[string]any{
//		"name":        "mytool",
//		"description": "Does the thing.",
//		"optionDefinitions": []any{
//			map[string]any{"name": "out", "alias": "o", "type": "string"},
//		},
//	})
//	cli.Log("info", "starting up")
package cliware
