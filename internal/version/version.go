// Package version gives the current version of conworld.
package version

// Current is the version of conworld being run.
const Current = "0.1.0"
