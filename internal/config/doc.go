// Package config provides bootstrap option loading and the typed binding of
// the resolved configuration.
//
// Bootstrap options are assembled from multiple layers in the following
// priority order (later layers override earlier non-zero fields):
//  1. Built-in defaults
//  2. BOOTSTRAP_* environment variables
//  3. Command-line flags
//
// The main entry points are [GetOptions] for the bootstrap options and
// [Bind] for mapping the resolved configuration onto [StructuredConfig].
package config
