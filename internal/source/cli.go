// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package source

import (
	"fmt"
	"strings"
)

// NewCommandLine returns the highest-ranked source holding command-line
// overrides. Each override has the form key=value; the value may be empty
// and may itself contain "=".
func NewCommandLine(overrides []string) (Source, error) {
	entries := make([]Entry, 0, len(overrides))
	for _, raw := range overrides {
		key, value, ok := strings.Cut(raw, "=")
		if !ok || strings.TrimSpace(key) == "" {
			return nil, fmt.Errorf("invalid override %q: want key=value", raw)
		}
		entries = append(entries, Entry{Key: key, Value: value})
	}

	return NewStatic("cli", PrecedenceCLI, entries...), nil
}
