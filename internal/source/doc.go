// Package source implements the configuration source chain: an ordered list
// of providers (built-in defaults, configuration files, environment
// variables, a remote config server, command-line overrides) folded into a
// single [Values] view by ascending precedence.
//
// The main entry point is [BuildMerged].
package source
