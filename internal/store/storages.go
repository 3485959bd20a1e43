package store

import (
	"context"

	"carmarket/internal/config"
	"carmarket/internal/logger"
)

// Storages bundles the repositories behind a single construction point so
// main only deals with one storage handle.
type Storages struct {
	UserRepository UserRepository
	CarRepository  CarRepository
}

// NewStorages connects to the configured database backend and wires the
// repositories on top of it.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	db, err := NewConnect(ctx, cfg.DB, log)
	if err != nil {
		log.Err(err).Msg("connection to database failed")
		return nil, err
	}

	return &Storages{
		UserRepository: NewUserRepository(db, log),
		CarRepository:  NewCarRepository(db, log),
	}, nil
}
