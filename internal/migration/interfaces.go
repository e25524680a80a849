package migration

//go:generate mockgen -source=interfaces.go -destination=../mock/migration_store_mock.go -package=mock

import "context"

// Store is the persistent store whose schema the gate guards.
type Store interface {
	// CurrentSchemaVersion returns the applied schema version, 0 for an
	// empty database.
	CurrentSchemaVersion(ctx context.Context) (int64, error)
	// LatestVersion returns the version the shipped migrations lead to.
	LatestVersion() (int64, error)
	// MigrateToLatest applies every pending migration.
	MigrateToLatest(ctx context.Context) error
}
