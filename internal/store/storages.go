package store

import (
	"context"
	"fmt"

	"github.com/Cleber-Canto/transactions-api/internal/config"
	"github.com/Cleber-Canto/transactions-api/internal/logger"
)

// Storages aggregates every persistence-layer dependency handed to the
// service layer.
type Storages struct {
	TransactionRepository TransactionRepository
}

// NewStorages connects to PostgreSQL, applies pending migrations, and wires
// the transaction repository.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	db, err := NewConnectPostgres(ctx, cfg.DB, log)
	if err != nil {
		return nil, fmt.Errorf("error connecting to database: %w", err)
	}

	if err := db.Migrate(); err != nil {
		return nil, fmt.Errorf("error migrating database: %w", err)
	}

	return &Storages{
		TransactionRepository: NewTransactionRepository(db, log),
	}, nil
}
