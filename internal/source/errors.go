// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package source

import (
	"errors"
	"fmt"
)

var (
	// ErrDuplicatePrecedence is returned by [BuildMerged] when two sources
	// declare the same precedence rank, which would make the fold order
	// ambiguous.
	ErrDuplicatePrecedence = errors.New("duplicate source precedence")

	// ErrUnsupportedValue is returned by file sources when a document holds a
	// value that cannot be flattened into a string.
	ErrUnsupportedValue = errors.New("unsupported configuration value")

	// ErrInvalidRemoteSettings is returned when the configSource.remote.*
	// keys cannot be parsed.
	ErrInvalidRemoteSettings = errors.New("invalid remote config source settings")

	// ErrMalformedDocument is returned when the config server answers with a
	// body that is not a property source document.
	ErrMalformedDocument = errors.New("malformed config server document")
)

// ConfigSourceUnavailableError reports that a source could not be reached.
// Whether it stops startup depends on Required.
type ConfigSourceUnavailableError struct {
	Source   string
	Required bool
	Attempts int
	Err      error
}

func (e *ConfigSourceUnavailableError) Error() string {
	kind := "optional"
	if e.Required {
		kind = "required"
	}
	return fmt.Sprintf("%s config source %q unavailable after %d attempt(s): %v", kind, e.Source, e.Attempts, e.Err)
}

func (e *ConfigSourceUnavailableError) Unwrap() error {
	return e.Err
}

// statusError is a non-2xx answer from the config server.
type statusError struct {
	code int
	body string
}

func (e *statusError) Error() string {
	if e.body == "" {
		return fmt.Sprintf("config server returned http %d", e.code)
	}
	return fmt.Sprintf("config server returned http %d: %s", e.code, e.body)
}
