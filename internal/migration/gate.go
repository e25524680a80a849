// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package migration

import (
	"context"
	"sync"

	"github.com/MKhiriev/bootcamp-webapi/internal/logger"
)

// Gate brings the persistent schema to the latest version before the host
// starts serving. It runs at most once; later calls return the first
// outcome.
type Gate struct {
	store    Store
	required bool
	logger   *logger.Logger

	once sync.Once
	err  error
}

// NewGate constructs a [Gate]. When required is false the gate succeeds
// without touching the store.
func NewGate(store Store, required bool, log *logger.Logger) *Gate {
	return &Gate{
		store:    store,
		required: required,
		logger:   log,
	}
}

// EnsureMigrated reads the current schema version, migrates when it is
// behind and verifies the result. A schema newer than the latest known
// migration is never downgraded and fails with [ErrSchemaAhead].
func (g *Gate) EnsureMigrated(ctx context.Context) error {
	g.once.Do(func() {
		g.err = g.ensureMigrated(ctx)
	})
	return g.err
}

func (g *Gate) ensureMigrated(ctx context.Context) error {
	if !g.required {
		g.logger.Info().Msg("migrations are not required, skipping schema check")
		return nil
	}

	target, err := g.store.LatestVersion()
	if err != nil {
		return &MigrationFailure{Stage: StageLatestVersion, Current: -1, Target: -1, Err: err}
	}

	current, err := g.store.CurrentSchemaVersion(ctx)
	if err != nil {
		return &MigrationFailure{Stage: StageReadVersion, Current: -1, Target: target, Err: err}
	}

	log := g.logger.With().Int64("current", current).Int64("target", target).Logger()

	switch {
	case current == target:
		log.Info().Msg("schema is up to date")
		return nil
	case current > target:
		log.Error().Msg("schema is ahead of this build")
		return &MigrationFailure{Stage: StageVerify, Current: current, Target: target, Err: ErrSchemaAhead}
	}

	log.Info().Msg("applying pending migrations")
	if err = g.store.MigrateToLatest(ctx); err != nil {
		return &MigrationFailure{Stage: StageMigrate, Current: current, Target: target, Err: err}
	}

	after, err := g.store.CurrentSchemaVersion(ctx)
	if err != nil {
		return &MigrationFailure{Stage: StageVerify, Current: current, Target: target, Err: err}
	}
	if after != target {
		return &MigrationFailure{Stage: StageVerify, Current: after, Target: target, Err: ErrVersionMismatch}
	}

	log.Info().Int64("applied", after).Msg("migrations applied")
	return nil
}
