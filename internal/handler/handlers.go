package handler

import (
	"github.com/Cleber-Canto/transactions-api/internal/config"
	"github.com/Cleber-Canto/transactions-api/internal/handler/http"
	"github.com/Cleber-Canto/transactions-api/internal/logger"
	"github.com/Cleber-Canto/transactions-api/internal/service"
)

type Handlers struct {
	HTTP *http.Handler
}

func NewHandlers(services *service.Services, cfg config.App, logger *logger.Logger) *Handlers {
	logger.Info().Msg("creating new handlers...")

	return &Handlers{
		HTTP: http.NewHandler(services, cfg, logger),
	}
}
