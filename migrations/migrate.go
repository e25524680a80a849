package migrations

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"

	"github.com/pressly/goose/v3"

	"github.com/MKhiriev/bootcamp-webapi/internal/logger"
)

// Dialects accepted by [Migrate].
const (
	DialectPostgres = "pgx"
	DialectSQLite   = "sqlite3"
)

// VersionTable is the table in which goose records applied versions.
const VersionTable = "goose_db_version"

//go:embed *.sql
var embedMigrations embed.FS

// Migrate applies every pending embedded migration.
func Migrate(ctx context.Context, db *sql.DB, dialect string, log *logger.Logger) error {
	if db == nil {
		return errors.New("migration error: db is nil")
	}

	goose.SetBaseFS(embedMigrations)
	goose.SetTableName(VersionTable)
	goose.SetLogger(gooseLogger{log: log})

	if err := goose.SetDialect(dialect); err != nil {
		return fmt.Errorf("migration error setting dialect for db: %w", err)
	}

	if err := goose.UpContext(ctx, db, "."); err != nil {
		return fmt.Errorf("migration error: %w", err)
	}

	return nil
}

// LatestVersion returns the highest version among the embedded migrations.
func LatestVersion() (int64, error) {
	goose.SetBaseFS(embedMigrations)

	migrations, err := goose.CollectMigrations(".", 0, goose.MaxVersion)
	if err != nil {
		return 0, fmt.Errorf("error collecting migrations: %w", err)
	}
	if len(migrations) == 0 {
		return 0, nil
	}

	return migrations[len(migrations)-1].Version, nil
}

// gooseLogger routes goose output through zerolog.
type gooseLogger struct {
	log *logger.Logger
}

func (l gooseLogger) Printf(format string, v ...any) {
	l.log.Info().Str("component", "goose").Msgf(format, v...)
}

func (l gooseLogger) Fatalf(format string, v ...any) {
	l.log.Error().Str("component", "goose").Msgf(format, v...)
}
