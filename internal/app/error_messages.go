// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app wires the startup pipeline of the bootcamp web API: it loads
// the configuration source chain, resolves placeholders and hands the
// resolved snapshot to the host launcher.
//
// The Msg* constants are the human-readable summaries logged when a stage
// fails. Each one matches exactly one [ExitCode].
package app

const (
	// MsgLoggingFailed is logged when the bootstrap or production logger
	// cannot be built from the configured level.
	MsgLoggingFailed = "logger could not be configured"

	// MsgConfigurationFailed is logged when the bootstrap options, a
	// configuration source or binding the typed configuration fails.
	MsgConfigurationFailed = "configuration could not be loaded"

	// MsgPlaceholderFailed is logged when a ${key} placeholder is
	// malformed, unresolved or cyclic.
	MsgPlaceholderFailed = "configuration placeholders could not be resolved"

	// MsgMigrationFailed is logged when the schema cannot be brought to the
	// latest version.
	MsgMigrationFailed = "database schema could not be migrated"

	// MsgHostFailed is logged when the host fails to configure, start or
	// shut down cleanly.
	MsgHostFailed = "host failed"

	// MsgStopped is logged on a clean shutdown.
	MsgStopped = "host stopped"
)

// Message returns the summary logged for a process exit code.
func Message(code ExitCode) string {
	switch code {
	case ExitOK:
		return MsgStopped
	case ExitLogging:
		return MsgLoggingFailed
	case ExitConfig:
		return MsgConfigurationFailed
	case ExitPlaceholder:
		return MsgPlaceholderFailed
	case ExitMigration:
		return MsgMigrationFailed
	default:
		return MsgHostFailed
	}
}
