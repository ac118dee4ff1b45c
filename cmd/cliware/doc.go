// Cliware is the inspector for cliware settings documents.
//
// It operates on the JSON settings trees the cliware library consumes,
// without running the tool they describe.
//
// Usage:
//
//	cliware merge defaults.json overrides.json   # print the merged tree
//	cliware lint settings.json                   # validate a document
//	cliware preview settings.json                # render its help screen
//
// See https://github.com/cliware/cliware for full documentation.
package main
