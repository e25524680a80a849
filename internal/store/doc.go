// Package store opens the application database and exposes the schema
// operations used during startup.
//
// [Open] picks the driver from the DSN: PostgreSQL through pgx or a local
// SQLite file through go-sqlite3. The returned [DB] reports the applied
// schema version, runs the embedded goose migrations and records every
// successful startup in the startup_history table. Queries are built with
// squirrel using the placeholder format of the selected dialect.
package store
