package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"

	sq "github.com/Masterminds/squirrel"
	sqlite3 "github.com/mattn/go-sqlite3"

	"carmarket/internal/config"
	"carmarket/internal/logger"
)

// NewConnectSQLite opens (creating if needed) a file-backed SQLite database
// and bootstraps the schema. SQLite is the zero-setup local backend; the
// repositories themselves are dialect-agnostic.
func NewConnectSQLite(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	if err := createLocalDBFileIfNotExists(cfg.DSN); err != nil {
		log.Err(err).Str("func", "NewConnectSQLite").Msg("error creating database file")
		return nil, fmt.Errorf("error creating database file")
	}

	conn, err := sql.Open("sqlite3", cfg.DSN)
	if err != nil {
		log.Err(err).Str("func", "NewConnectSQLite").Msg("error connecting database")
		return nil, fmt.Errorf("error opening connection to DB")
	}

	if err = conn.PingContext(ctx); err != nil {
		log.Err(err).Str("func", "NewConnectSQLite").Msg("error connecting database (ping)")
		return nil, err
	}
	log.Debug().Str("func", "NewConnectSQLite").Msg("connected to database successfully")

	if _, err = conn.ExecContext(ctx, sqliteSchema); err != nil {
		log.Err(err).Str("func", "NewConnectSQLite").Msg("error bootstrapping schema")
		return nil, fmt.Errorf("error bootstrapping sqlite schema: %w", err)
	}

	db := &DB{
		DB:              conn,
		builder:         sq.StatementBuilder.PlaceholderFormat(sq.Question),
		errorClassifier: NewSQLiteErrorClassifier(),
		logger:          log,
	}

	return db, nil
}

func createLocalDBFileIfNotExists(dbFile string) error {
	if _, err := os.Stat(dbFile); os.IsNotExist(err) {
		// if not found - create
		f, err := os.Create(dbFile)
		if err != nil {
			return fmt.Errorf("error creating DB file: %w", err)
		}
		f.Close()
	}

	// file already exists
	return nil
}

type sqliteErrorClassifier struct{}

// NewSQLiteErrorClassifier returns an ErrorClassifier for go-sqlite3 driver
// errors.
func NewSQLiteErrorClassifier() ErrorClassifier {
	return sqliteErrorClassifier{}
}

func (sqliteErrorClassifier) IsUniqueViolation(err error) bool {
	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) {
		return sqliteErr.ExtendedCode == sqlite3.ErrConstraintUnique ||
			sqliteErr.ExtendedCode == sqlite3.ErrConstraintPrimaryKey
	}

	return false
}
