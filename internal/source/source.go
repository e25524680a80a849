// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package source

import (
	"context"
	"slices"
	"strings"
)

// Precedence ranks of the built-in sources. Higher ranks shadow lower ones.
const (
	PrecedenceDefaults     = 0
	PrecedenceJSONFile     = 10
	PrecedenceYAMLFile     = 11
	PrecedenceHCLFile      = 12
	PrecedenceEnv          = 20
	PrecedenceCloudFoundry = 25
	PrecedenceRemote       = 30
	PrecedenceCLI          = 40
)

// Entry is a single configuration key/value pair as produced by a [Source].
// Key may use any of the supported delimiters; it is normalised with
// [NormalizeKey] when folded into [Values].
type Entry struct {
	Key   string
	Value string
}

// Source is one provider of configuration entries with a fixed precedence
// rank. Load is called exactly once per startup. Entries are returned in the
// source's own iteration order; when a source yields the same key twice the
// later entry wins.
//
// local is a read-only copy of everything loaded so far by sources of lower
// rank (or, for deferred sources, by every non-deferred source).
type Source interface {
	Name() string
	Precedence() int
	Load(ctx context.Context, local Values) ([]Entry, error)
}

// Deferred is implemented by sources that need the merged view of all local
// sources before they can load, such as the remote config server whose URL
// may come from the command line.
type Deferred interface {
	Deferred() bool
}

func isDeferred(src Source) bool {
	d, ok := src.(Deferred)
	return ok && d.Deferred()
}

// NormalizeKey converts a hierarchical key to its canonical form: lower case,
// segments separated by ".". The delimiters ":" and "__" are accepted as
// aliases so that keys coming from environment variables and colon-style
// files land on the same path.
func NormalizeKey(key string) string {
	key = strings.TrimSpace(key)
	key = strings.ReplaceAll(key, "__", ".")
	key = strings.ReplaceAll(key, ":", ".")
	return strings.ToLower(key)
}

// Values is a merged configuration view keyed by normalised keys.
type Values map[string]string

// Get returns the value stored under key, normalising key first.
func (v Values) Get(key string) string {
	return v[NormalizeKey(key)]
}

// Lookup is like [Values.Get] but reports whether the key exists.
func (v Values) Lookup(key string) (string, bool) {
	val, ok := v[NormalizeKey(key)]
	return val, ok
}

// Clone returns an independent copy of v.
func (v Values) Clone() Values {
	out := make(Values, len(v))
	for k, val := range v {
		out[k] = val
	}
	return out
}

// Keys returns the keys of v in lexical order.
func (v Values) Keys() []string {
	keys := make([]string, 0, len(v))
	for k := range v {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}

func (v Values) apply(entries []Entry) {
	for _, e := range entries {
		key := NormalizeKey(e.Key)
		if key == "" {
			continue
		}
		v[key] = e.Value
	}
}
