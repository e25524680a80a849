package app

import (
	"context"
	"time"

	"github.com/MKhiriev/bootcamp-webapi/internal/config"
	"github.com/MKhiriev/bootcamp-webapi/internal/logger"
	"github.com/MKhiriev/bootcamp-webapi/internal/migration"
	"github.com/MKhiriev/bootcamp-webapi/internal/placeholder"
	"github.com/MKhiriev/bootcamp-webapi/internal/server"
	"github.com/MKhiriev/bootcamp-webapi/internal/source"
	"github.com/MKhiriev/bootcamp-webapi/internal/store"
	"github.com/MKhiriev/bootcamp-webapi/models"
)

// Store is the persistence the startup pipeline needs: the schema versions
// for the migration gate and the startup history record.
type Store interface {
	migration.Store
	RecordStartup(ctx context.Context, appName, appVersion string, schemaVersion int64) error
	Close() error
}

// StoreOpener connects to the database described by cfg.
type StoreOpener func(ctx context.Context, cfg config.DB, log *logger.Logger) (Store, error)

// App runs the startup pipeline once.
type App struct {
	opts   *config.Options
	logger *logger.Logger

	host      server.Host
	openStore StoreOpener
	sources   func(*config.Options, *logger.Logger) ([]source.Source, error)

	store Store
}

type Option func(*App)

// WithHost replaces the HTTP/gRPC host.
func WithHost(host server.Host) Option {
	return func(a *App) { a.host = host }
}

// WithStoreOpener replaces the SQL store used by the migration gate.
func WithStoreOpener(open StoreOpener) Option {
	return func(a *App) { a.openStore = open }
}

// WithSources replaces the source chain built from the options.
func WithSources(sources ...source.Source) Option {
	return func(a *App) {
		a.sources = func(*config.Options, *logger.Logger) ([]source.Source, error) {
			return sources, nil
		}
	}
}

func New(opts *config.Options, build models.AppBuildInfo, log *logger.Logger, options ...Option) *App {
	a := &App{
		opts:      opts,
		logger:    log,
		openStore: openSQLStore,
		sources:   Sources,
	}
	for _, opt := range options {
		opt(a)
	}
	if a.host == nil {
		a.host = server.NewServer(build, log)
	}
	return a
}

func openSQLStore(ctx context.Context, cfg config.DB, log *logger.Logger) (Store, error) {
	db, err := store.Open(ctx, cfg, log)
	if err != nil {
		return nil, err
	}
	return db, nil
}

// Run merges the configuration sources, resolves placeholders and launches
// the host. It blocks until ctx is canceled or a stage fails. Every failure
// is a [StageError]. StartupTimeout bounds everything before serving.
func (a *App) Run(ctx context.Context) error {
	var (
		startCtx context.Context
		cancel   context.CancelFunc
		deadline time.Time
	)
	if a.opts.StartupTimeout > 0 {
		deadline = time.Now().Add(a.opts.StartupTimeout)
		startCtx, cancel = context.WithDeadline(ctx, deadline)
	} else {
		startCtx, cancel = context.WithCancel(ctx)
	}
	defer cancel()
	defer a.closeStore()

	sources, err := a.sources(a.opts, a.logger)
	if err != nil {
		return &StageError{Stage: StageSources, Code: ExitConfig, Err: err}
	}

	merged, err := source.BuildMerged(startCtx, a.logger, sources...)
	if err != nil {
		if _, ok := placeholder.KeyOf(err); ok {
			return &StageError{Stage: StagePlaceholders, Code: ExitPlaceholder, Err: err}
		}
		return &StageError{Stage: StageSources, Code: ExitConfig, Err: err}
	}

	if err = startCtx.Err(); err != nil {
		return &StageError{Stage: StagePlaceholders, Code: ExitPlaceholder, Err: err}
	}
	resolved, err := placeholder.Resolve(merged)
	if err != nil {
		return &StageError{Stage: StagePlaceholders, Code: ExitPlaceholder, Err: err}
	}
	a.logger.Debug().Int("keys", resolved.Len()).Msg("configuration resolved")

	launchOpts := make([]server.LauncherOption, 0, 2)
	if !deadline.IsZero() {
		launchOpts = append(launchOpts, server.WithStartupDeadline(deadline))
	}
	if name := resolved.Get("app.name"); name != "" {
		launchOpts = append(launchOpts, server.WithLoggerRole(name))
	}

	launcher := server.NewLauncher(a.host, a.gate, a.logger, launchOpts...)
	if err = launcher.Run(ctx, resolved, a.recordStartup); err != nil {
		return fromLaunchError(err)
	}
	return nil
}

// gate opens the store only when migration is required.
func (a *App) gate(ctx context.Context, cfg *config.StructuredConfig, log *logger.Logger) (server.MigrationGate, error) {
	if !cfg.Migration.Required {
		return migration.NewGate(nil, false, log), nil
	}

	st, err := a.openStore(ctx, cfg.Storage.DB, log)
	if err != nil {
		return nil, err
	}
	a.store = st
	return migration.NewGate(st, true, log), nil
}

func (a *App) recordStartup(ctx context.Context, cfg *config.StructuredConfig) error {
	if a.store == nil {
		return nil
	}

	current, err := a.store.CurrentSchemaVersion(ctx)
	if err != nil {
		return err
	}
	return a.store.RecordStartup(ctx, cfg.App.Name, cfg.App.Version, current)
}

func (a *App) closeStore() {
	if a.store == nil {
		return
	}
	if err := a.store.Close(); err != nil {
		a.logger.Warn().Err(err).Msg("error closing database")
	}
	a.store = nil
}
