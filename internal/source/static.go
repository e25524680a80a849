// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package source

import (
	"context"
	"slices"
)

// staticSource serves a fixed list of entries. It backs the built-in
// defaults and the command-line overrides.
type staticSource struct {
	name       string
	precedence int
	entries    []Entry
}

// NewStatic returns a source that yields entries unchanged on every load.
func NewStatic(name string, precedence int, entries ...Entry) Source {
	return &staticSource{
		name:       name,
		precedence: precedence,
		entries:    slices.Clone(entries),
	}
}

// NewStaticMap is [NewStatic] for a map. Entries are emitted in lexical key
// order.
func NewStaticMap(name string, precedence int, values map[string]string) Source {
	entries := make([]Entry, 0, len(values))
	for _, k := range Values(values).Keys() {
		entries = append(entries, Entry{Key: k, Value: values[k]})
	}
	return &staticSource{name: name, precedence: precedence, entries: entries}
}

func (s *staticSource) Name() string    { return s.name }
func (s *staticSource) Precedence() int { return s.precedence }

func (s *staticSource) Load(_ context.Context, _ Values) ([]Entry, error) {
	return slices.Clone(s.entries), nil
}

// Defaults returns the built-in defaults, the lowest-ranked source in the
// chain.
func Defaults() Source {
	return NewStaticMap("defaults", PrecedenceDefaults, map[string]string{
		"app.name":    "bootcamp-webapi",
		"app.version": "0.0.0-dev",

		"logging.minimumLevel": "info",

		"host.bindAddress":     "0.0.0.0",
		"host.port":            "8080",
		"host.grpcPort":        "0",
		"host.readTimeout":     "15s",
		"host.writeTimeout":    "15s",
		"host.shutdownTimeout": "10s",
		"host.rateLimit.rps":   "0",
		"host.rateLimit.burst": "0",

		"migration.required": "true",
		"storage.db.dsn":     "file:bootcamp.db",

		"configSource.remote.url":                 "",
		"configSource.remote.required":            "true",
		"configSource.remote.profile":             "default",
		"configSource.remote.timeoutMs":           "5000",
		"configSource.remote.retry.maxAttempts":   "5",
		"configSource.remote.retry.backoffBaseMs": "500",
		"configSource.remote.retry.backoffMaxMs":  "10000",
	})
}
