// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package placeholder

import (
	"errors"
	"slices"
	"strings"

	"github.com/MKhiriev/bootcamp-webapi/internal/source"
)

const (
	openToken      = "${"
	closeToken     = '}'
	defaultDivider = ":"
)

type resolver struct {
	input  map[string]string
	done   map[string]string
	path   []string
	onPath map[string]struct{}
}

// Resolve substitutes every ${key} and ${key:default} placeholder in values
// with the value of key, resolving referenced values first. Keys are
// normalised with [source.NormalizeKey]; the reference part of a placeholder
// is normalised the same way. A default is used only when key is absent and
// is inserted literally.
//
// Resolve is pure and deterministic: keys are visited in lexical order and
// each reference is resolved depth-first. It returns either a fully resolved
// snapshot or one of [UnresolvedReferenceError], [CyclicReferenceError] and
// [MalformedPlaceholderError], never a partial result.
func Resolve(values map[string]string) (*Resolved, error) {
	r := newResolver(values)

	for _, key := range sortedKeys(r.input) {
		if _, err := r.resolveKey(key); err != nil {
			return nil, err
		}
	}

	return &Resolved{values: r.done}, nil
}

// ResolveKeys resolves only keys and the values they reference, leaving the
// rest of values untouched. Keys absent from values are skipped. The result
// is keyed by the normalised key.
func ResolveKeys(values map[string]string, keys ...string) (map[string]string, error) {
	r := newResolver(values)

	out := make(map[string]string, len(keys))
	for _, key := range keys {
		nk := source.NormalizeKey(key)
		if _, ok := r.input[nk]; !ok {
			continue
		}
		v, err := r.resolveKey(nk)
		if err != nil {
			return nil, err
		}
		out[nk] = v
	}
	return out, nil
}

func newResolver(values map[string]string) *resolver {
	input := make(map[string]string, len(values))
	for _, k := range sortedKeys(values) {
		if nk := source.NormalizeKey(k); nk != "" {
			input[nk] = values[k]
		}
	}

	return &resolver{
		input:  input,
		done:   make(map[string]string, len(input)),
		onPath: make(map[string]struct{}),
	}
}

func (r *resolver) resolveKey(key string) (string, error) {
	if v, ok := r.done[key]; ok {
		return v, nil
	}

	if _, ok := r.onPath[key]; ok {
		start := slices.Index(r.path, key)
		cycle := append(slices.Clone(r.path[start:]), key)
		return "", &CyclicReferenceError{Key: key, Cycle: cycle}
	}

	r.onPath[key] = struct{}{}
	r.path = append(r.path, key)

	value, err := r.expand(key, r.input[key])

	r.path = r.path[:len(r.path)-1]
	delete(r.onPath, key)

	if err != nil {
		return "", err
	}

	r.done[key] = value
	return value, nil
}

func (r *resolver) expand(key, value string) (string, error) {
	if !strings.Contains(value, openToken) {
		return value, nil
	}

	var b strings.Builder
	b.Grow(len(value))

	for i := 0; i < len(value); {
		rel := strings.Index(value[i:], openToken)
		if rel < 0 {
			b.WriteString(value[i:])
			break
		}
		start := i + rel
		b.WriteString(value[i:start])

		body := value[start+len(openToken):]
		end := strings.IndexByte(body, closeToken)
		if end < 0 {
			return "", &MalformedPlaceholderError{Key: key, Value: value, Pos: start, Reason: "unterminated placeholder"}
		}
		inner := body[:end]
		if strings.Contains(inner, openToken) {
			return "", &MalformedPlaceholderError{Key: key, Value: value, Pos: start, Reason: "nested placeholders are not supported"}
		}

		ref, def, hasDefault := strings.Cut(inner, defaultDivider)
		ref = source.NormalizeKey(ref)
		if ref == "" {
			return "", &MalformedPlaceholderError{Key: key, Value: value, Pos: start, Reason: "empty reference"}
		}

		switch _, ok := r.input[ref]; {
		case ok:
			resolved, err := r.resolveKey(ref)
			if err != nil {
				return "", err
			}
			b.WriteString(resolved)
		case hasDefault:
			b.WriteString(def)
		default:
			return "", &UnresolvedReferenceError{Key: key, Ref: ref, Value: value}
		}

		i = start + len(openToken) + end + 1
	}

	out := b.String()
	// "$" followed by a substituted "{...}" would leave a placeholder behind.
	if pos := strings.Index(out, openToken); pos >= 0 {
		return "", &MalformedPlaceholderError{Key: key, Value: out, Pos: pos, Reason: "substitution produced a placeholder"}
	}
	return out, nil
}

// KeyOf returns the configuration key a resolution error is about.
func KeyOf(err error) (string, bool) {
	var (
		unresolved *UnresolvedReferenceError
		cyclic     *CyclicReferenceError
		malformed  *MalformedPlaceholderError
	)
	switch {
	case errors.As(err, &unresolved):
		return unresolved.Key, true
	case errors.As(err, &cyclic):
		return cyclic.Key, true
	case errors.As(err, &malformed):
		return malformed.Key, true
	default:
		return "", false
	}
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}
