package http

import (
	"github.com/Cleber-Canto/transactions-api/internal/config"
	"github.com/Cleber-Canto/transactions-api/internal/logger"
	"github.com/Cleber-Canto/transactions-api/internal/service"
	"github.com/Cleber-Canto/transactions-api/internal/validators"
)

type Handler struct {
	services  *service.Services
	validator validators.Validator
	cfg       config.App

	logger *logger.Logger
}

func NewHandler(services *service.Services, cfg config.App, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:  services,
		validator: validators.NewTransactionValidator(),
		cfg:       cfg,
		logger:    logger,
	}
}
