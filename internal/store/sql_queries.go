package store

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/bootcamp-webapi/migrations"
)

const startupHistoryTable = "startup_history"

// buildSchemaVersionQuery selects the highest applied goose version.
func buildSchemaVersionQuery(_ context.Context, format sq.PlaceholderFormat) (string, []any, error) {
	query, args, err := sq.
		Select("COALESCE(MAX(version_id), 0)").
		From(migrations.VersionTable).
		Where(sq.Eq{"is_applied": true}).
		PlaceholderFormat(format).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

// buildInsertStartupQuery records one successful startup.
func buildInsertStartupQuery(_ context.Context, format sq.PlaceholderFormat, appName, appVersion string, schemaVersion int64) (string, []any, error) {
	query, args, err := sq.
		Insert(startupHistoryTable).
		Columns("app_name", "app_version", "schema_version").
		Values(appName, appVersion, schemaVersion).
		PlaceholderFormat(format).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}
