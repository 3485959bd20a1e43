package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	_ "github.com/jackc/pgx/v5/stdlib"

	"carmarket/internal/config"
	"carmarket/internal/logger"
	"carmarket/migrations"
)

// NewConnectPostgres opens a PostgreSQL connection via the pgx stdlib driver,
// pings it and applies the embedded goose migrations.
func NewConnectPostgres(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	conn, err := sql.Open("pgx", cfg.DSN)
	if err != nil {
		log.Err(err).Str("func", "NewConnectPostgres").Msg("error occurred during database connection")
		return nil, fmt.Errorf("error occurred during database connection: %w", err)
	}

	conn.SetMaxOpenConns(10)
	conn.SetMaxIdleConns(4)

	if err = conn.PingContext(ctx); err != nil {
		log.Err(err).Str("func", "NewConnectPostgres").Msg("error connecting database (ping)")
		return nil, err
	}
	log.Info().Str("func", "NewConnectPostgres").Msg("connected to database successfully")

	if err = migrations.Migrate(conn); err != nil {
		log.Err(err).Str("func", "NewConnectPostgres").Msg("error applying migrations")
		return nil, err
	}

	db := &DB{
		DB:              conn,
		builder:         sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
		errorClassifier: NewPostgresErrorClassifier(),
		logger:          log,
	}

	return db, nil
}

type postgresErrorClassifier struct{}

// NewPostgresErrorClassifier returns an ErrorClassifier for PostgreSQL
// driver errors reported through pgconn.
func NewPostgresErrorClassifier() ErrorClassifier {
	return postgresErrorClassifier{}
}

func (postgresErrorClassifier) IsUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == pgerrcode.UniqueViolation
	}

	return false
}
