package http

import (
	"carmarket/internal/config"
	"carmarket/internal/logger"
	"carmarket/internal/service"
)

type Handler struct {
	services *service.Services

	staticDir   string
	corsOrigins []string

	logger *logger.Logger
}

func NewHandler(services *service.Services, cfg config.Server, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:    services,
		staticDir:   cfg.StaticDir,
		corsOrigins: cfg.CORSOrigins,
		logger:      logger,
	}
}
