package store

import (
	"context"
	"database/sql"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"carmarket/internal/config"
	"carmarket/internal/logger"
)

// DB wraps a database/sql connection together with the SQL dialect details
// the repositories need: a squirrel statement builder configured with the
// driver's placeholder format and an error classifier that maps
// driver-specific error codes onto the package's sentinel errors.
type DB struct {
	*sql.DB

	builder         sq.StatementBuilderType
	errorClassifier ErrorClassifier
	logger          *logger.Logger
}

// ErrorClassifier recognises well-known driver-level error conditions so
// repositories stay dialect-agnostic.
type ErrorClassifier interface {
	// IsUniqueViolation reports whether err signals a violated UNIQUE or
	// PRIMARY KEY constraint.
	IsUniqueViolation(err error) bool
}

// NewConnect opens a database connection for the configured driver.
// Supported drivers: "pgx" (PostgreSQL) and "sqlite3".
func NewConnect(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	switch cfg.Driver {
	case "pgx", "postgres":
		return NewConnectPostgres(ctx, cfg, log)
	case "sqlite3", "sqlite":
		return NewConnectSQLite(ctx, cfg, log)
	default:
		return nil, fmt.Errorf("unsupported database driver: %q", cfg.Driver)
	}
}
