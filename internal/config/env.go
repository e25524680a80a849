// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// parseEnv populates cfg using the caarlos0/env library. Struct fields are
// mapped via their `env` and `envPrefix` tags.
//
// A nil environment reads the process environment; otherwise only the given
// map is consulted, which is how resolved configuration keys are bound.
func parseEnv(cfg any, environment map[string]string) error {
	opts := env.Options{}
	if environment != nil {
		opts.Environment = environment
	}

	if err := env.ParseWithOptions(cfg, opts); err != nil {
		return fmt.Errorf("error getting env configs: %w", err)
	}

	return nil
}
