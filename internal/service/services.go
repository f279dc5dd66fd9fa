package service

import (
	"github.com/Cleber-Canto/transactions-api/internal/logger"
	"github.com/Cleber-Canto/transactions-api/internal/store"
	"github.com/Cleber-Canto/transactions-api/internal/utils"
)

type Services struct {
	TransactionService TransactionService
}

func NewServices(storages *store.Storages, logger *logger.Logger) *Services {
	return &Services{
		TransactionService: NewTransactionService(storages.TransactionRepository, utils.NewUUIDGenerator(), logger),
	}
}
