package handler

import (
	"carmarket/internal/config"
	"carmarket/internal/handler/http"
	"carmarket/internal/logger"
	"carmarket/internal/service"
)

type Handlers struct {
	HTTP *http.Handler
}

func NewHandlers(services *service.Services, cfg config.Server, logger *logger.Logger) *Handlers {
	logger.Info().Msg("creating new handlers...")

	return &Handlers{
		HTTP: http.NewHandler(services, cfg, logger),
	}
}
