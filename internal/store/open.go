package store

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/sethvargo/go-retry"

	"github.com/MKhiriev/bootcamp-webapi/internal/config"
	"github.com/MKhiriev/bootcamp-webapi/internal/logger"
)

// Open connects to the database selected by cfg.DSN: postgres:// and
// postgresql:// use pgx, while file: URIs, :memory: and *.db / *.sqlite
// paths use sqlite3.
func Open(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	dsn := strings.ToLower(strings.TrimSpace(cfg.DSN))

	switch {
	case strings.HasPrefix(dsn, "postgres://"), strings.HasPrefix(dsn, "postgresql://"):
		return NewConnectPostgres(ctx, cfg, log)
	case strings.HasPrefix(dsn, "file:"),
		dsn == ":memory:",
		strings.HasSuffix(dsn, ".db"),
		strings.HasSuffix(dsn, ".sqlite"):
		return NewConnectSQLite(ctx, cfg, log)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedDSN, redactDSN(cfg.DSN))
	}
}

func defaultPingBackoff() retry.Backoff {
	backoff := retry.NewExponential(200 * time.Millisecond)
	backoff = retry.WithCappedDuration(2*time.Second, backoff)
	return retry.WithMaxRetries(5, backoff)
}

// pingWithRetry pings until success, a non-retryable error, or backoff
// exhaustion.
func pingWithRetry(ctx context.Context, conn *sql.DB, classifier ErrorClassificator, backoff retry.Backoff, log *logger.Logger) error {
	attempt := 0
	return retry.Do(ctx, backoff, func(ctx context.Context) error {
		attempt++
		err := conn.PingContext(ctx)
		if err == nil {
			return nil
		}
		if classifier.Classify(err) == Retryable {
			log.Warn().Err(err).Int("attempt", attempt).Msg("database is not ready, retrying ping")
			return retry.RetryableError(err)
		}
		return err
	})
}

// redactDSN drops everything before the host so credentials never reach
// logs or error messages.
func redactDSN(dsn string) string {
	if at := strings.LastIndex(dsn, "@"); at >= 0 {
		if scheme := strings.Index(dsn, "://"); scheme >= 0 && scheme < at {
			return dsn[:scheme+3] + "***" + dsn[at:]
		}
	}
	return dsn
}
