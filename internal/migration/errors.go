package migration

import (
	"errors"
	"fmt"
)

// Stages of the gate reported in [MigrationFailure].
const (
	StageReadVersion   = "read-version"
	StageLatestVersion = "latest-version"
	StageMigrate       = "migrate"
	StageVerify        = "verify"
)

var (
	// ErrSchemaAhead is returned when the database was migrated by a newer
	// build than the running one.
	ErrSchemaAhead = errors.New("schema version is ahead of the latest known migration")

	// ErrVersionMismatch is returned when migrating did not bring the schema
	// to the latest version.
	ErrVersionMismatch = errors.New("schema version does not match the latest migration")
)

// MigrationFailure is returned by [Gate.EnsureMigrated] for every failure.
// Current and Target are -1 when they were not determined.
type MigrationFailure struct {
	Stage   string
	Current int64
	Target  int64
	Err     error
}

func (e *MigrationFailure) Error() string {
	return fmt.Sprintf("migration failed at %s (current=%d, target=%d): %v", e.Stage, e.Current, e.Target, e.Err)
}

func (e *MigrationFailure) Unwrap() error {
	return e.Err
}
