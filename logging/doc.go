// Package logging derives named logging functions from declarative
// configuration.
//
// A Set is built once from a map of method configurations. Each method is a
// callable that gates its output on runtime verbose/quiet state, colorizes
// string arguments, optionally prepends a prefix and timestamp, writes to a
// console channel chosen by method name, and can escalate the call into an
// error carrying the original arguments.
package logging
