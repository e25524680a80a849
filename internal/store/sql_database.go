// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgerrcode"

	"github.com/MKhiriev/bootcamp-webapi/internal/logger"
	"github.com/MKhiriev/bootcamp-webapi/migrations"
)

// DB is the persistent store collaborator of the migration gate. It wraps a
// *sql.DB opened for one of the supported dialects.
type DB struct {
	*sql.DB
	dialect            string
	placeholder        sq.PlaceholderFormat
	errorClassificator ErrorClassificator
	logger             *logger.Logger
}

// Dialect returns the goose dialect of the connection.
func (db *DB) Dialect() string {
	return db.dialect
}

// CurrentSchemaVersion returns the highest applied migration version, or 0
// when no migration has ever been applied.
func (db *DB) CurrentSchemaVersion(ctx context.Context) (int64, error) {
	query, args, err := buildSchemaVersionQuery(ctx, db.placeholder)
	if err != nil {
		return 0, err
	}

	var version int64
	err = db.QueryRowContext(ctx, query, args...).Scan(&version)
	switch {
	case err == nil:
		return version, nil
	case isUndefinedTable(err):
		db.logger.Debug().Str("func", "*DB.CurrentSchemaVersion").Msg("version table does not exist yet")
		return 0, nil
	case errors.Is(err, sql.ErrNoRows):
		return 0, nil
	default:
		db.logger.Err(err).Str("func", "*DB.CurrentSchemaVersion").Msg("error reading schema version")
		return 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
}

// MigrateToLatest applies every pending embedded migration.
func (db *DB) MigrateToLatest(ctx context.Context) error {
	return migrations.Migrate(ctx, db.DB, db.dialect, db.logger)
}

// LatestVersion returns the version the embedded migrations lead to.
func (db *DB) LatestVersion() (int64, error) {
	return migrations.LatestVersion()
}

// RecordStartup appends a row to the startup history once the schema is
// current.
func (db *DB) RecordStartup(ctx context.Context, appName, appVersion string, schemaVersion int64) error {
	query, args, err := buildInsertStartupQuery(ctx, db.placeholder, appName, appVersion, schemaVersion)
	if err != nil {
		return err
	}

	if _, err = db.ExecContext(ctx, query, args...); err != nil {
		db.logger.Err(err).Str("func", "*DB.RecordStartup").Msg("error recording startup")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

func isUndefinedTable(err error) bool {
	if postgresError(err) == pgerrcode.UndefinedTable {
		return true
	}
	// sqlite3 reports a missing table only through its message
	return strings.Contains(err.Error(), "no such table")
}
