// Package cli implements the cliware inspector commands.
//
// The inspector operates on settings documents (JSON files shaped like the
// trees the cliware library consumes): it merges them, lints them, and
// previews the help screen they would produce.
package cli
