// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import (
	"context"
	"time"

	"github.com/MKhiriev/bootcamp-webapi/internal/config"
	"github.com/MKhiriev/bootcamp-webapi/internal/logger"
)

// GateProvider builds the migration gate once the typed configuration is
// known. The gate receives the production logger.
type GateProvider func(ctx context.Context, cfg *config.StructuredConfig, log *logger.Logger) (MigrationGate, error)

// AfterMigrationHook runs after the gate succeeded and before serving.
type AfterMigrationHook func(ctx context.Context, cfg *config.StructuredConfig) error

// Launcher drives a [Host] through configure, logger installation, the
// migration gate and the blocking serve loop.
type Launcher struct {
	host     Host
	gates    GateProvider
	logger   *logger.Logger
	deadline time.Time
	role     string
}

// LauncherOption customizes a [Launcher].
type LauncherOption func(*Launcher)

// WithStartupDeadline bounds every step before Serve.
func WithStartupDeadline(deadline time.Time) LauncherOption {
	return func(l *Launcher) { l.deadline = deadline }
}

// WithLoggerRole sets the role field of the production logger.
func WithLoggerRole(role string) LauncherOption {
	return func(l *Launcher) { l.role = role }
}

func NewLauncher(host Host, gates GateProvider, log *logger.Logger, opts ...LauncherOption) *Launcher {
	l := &Launcher{
		host:   host,
		gates:  gates,
		logger: log,
		role:   "bootcamp-webapi",
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Run binds resolved, configures the host, installs the production logger,
// runs the migration gate exactly once, calls afterMigration and then serves
// until ctx is canceled. Every failure is a [LaunchError].
func (l *Launcher) Run(ctx context.Context, resolved config.Snapshot, afterMigration AfterMigrationHook) error {
	startCtx, cancel := l.startupContext(ctx)
	defer cancel()

	cfg, err := config.Bind(resolved)
	if err != nil {
		return &LaunchError{Stage: StageBind, Err: err}
	}

	if err = l.stage(startCtx, StageConfigure, func() error { return l.host.Configure(cfg) }); err != nil {
		return err
	}

	var prodLogger *logger.Logger
	err = l.stage(startCtx, StageInstallLogger, func() error {
		prodLogger, err = logger.NewLoggerWithLevel(l.role, cfg.Logging.MinimumLevel)
		if err != nil {
			return err
		}
		l.host.InstallLogger(prodLogger)
		return nil
	})
	if err != nil {
		return err
	}

	err = l.stage(startCtx, StageMigration, func() error {
		gate, err := l.gates(startCtx, cfg, prodLogger)
		if err != nil {
			return err
		}
		return gate.EnsureMigrated(startCtx)
	})
	if err != nil {
		return err
	}

	if afterMigration != nil {
		if err = l.stage(startCtx, StageAfterMigration, func() error { return afterMigration(startCtx, cfg) }); err != nil {
			return err
		}
	}

	if err = startCtx.Err(); err != nil {
		return &LaunchError{Stage: StageServe, Err: err}
	}

	prodLogger.Info().Msg("startup complete, serving")
	if err = l.host.Serve(ctx); err != nil {
		return &LaunchError{Stage: StageServe, Err: err}
	}
	return nil
}

// stage runs fn unless the startup context is already done.
func (l *Launcher) stage(ctx context.Context, name string, fn func() error) error {
	if err := ctx.Err(); err != nil {
		return &LaunchError{Stage: name, Err: err}
	}

	l.logger.Debug().Str("stage", name).Msg("host launch stage")
	if err := fn(); err != nil {
		return &LaunchError{Stage: name, Err: err}
	}
	return nil
}

func (l *Launcher) startupContext(ctx context.Context) (context.Context, context.CancelFunc) {
	if l.deadline.IsZero() {
		return context.WithCancel(ctx)
	}
	return context.WithDeadline(ctx, l.deadline)
}
