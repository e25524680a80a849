// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package source

import (
	"context"
	"os"
	"strings"

	"github.com/caarlos0/env/v11"
)

// DefaultEnvPrefix is the prefix selecting the environment variables that
// belong to the application configuration.
const DefaultEnvPrefix = "APP_"

type envSource struct {
	prefix  string
	environ func() []string
}

// NewEnv returns a source reading environment variables that start with
// prefix. The prefix is stripped and "__" separates key segments, so
// APP_HOST__PORT=8080 yields host.port=8080. Variables with an empty
// remainder are ignored.
func NewEnv(prefix string) Source {
	return &envSource{prefix: prefix, environ: os.Environ}
}

func (s *envSource) Name() string    { return "env" }
func (s *envSource) Precedence() int { return PrecedenceEnv }

func (s *envSource) Load(_ context.Context, _ Values) ([]Entry, error) {
	vars := env.ToMap(s.environ())

	prefix := strings.ToUpper(s.prefix)
	selected := make(map[string]string)
	for name, value := range vars {
		if !strings.HasPrefix(strings.ToUpper(name), prefix) {
			continue
		}
		key := name[len(prefix):]
		if key == "" {
			continue
		}
		selected[key] = value
	}

	entries := make([]Entry, 0, len(selected))
	for _, key := range Values(selected).Keys() {
		entries = append(entries, Entry{Key: key, Value: selected[key]})
	}

	return entries, nil
}
