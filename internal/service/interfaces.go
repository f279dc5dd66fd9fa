package service

import (
	"context"

	"github.com/Cleber-Canto/transactions-api/models"
)

// TransactionService holds the ledger's business rules: sign adjustment of
// amounts and session minting on first create. Everything else is delegated
// to the repository.
type TransactionService interface {
	// List returns all transactions of the session in insertion order.
	List(ctx context.Context, sessionID string) ([]models.Transaction, error)

	// GetOne returns the transaction matching id within the session, or
	// [store.ErrTransactionNotFound].
	GetOne(ctx context.Context, id, sessionID string) (models.Transaction, error)

	// Summarize returns the session's running balance.
	Summarize(ctx context.Context, sessionID string) (models.Summary, error)

	// Create persists a new sign-adjusted transaction. When sessionID is
	// empty a fresh session identifier is minted; minted reports whether
	// that happened so the transport layer knows to issue a cookie.
	Create(ctx context.Context, payload models.TransactionPayload, sessionID string) (created models.Transaction, minted bool, err error)

	// Update rewrites title and sign-adjusted amount of an owned transaction.
	Update(ctx context.Context, id, sessionID string, payload models.TransactionPayload) error

	// Delete removes an owned transaction.
	Delete(ctx context.Context, id, sessionID string) error
}

// IDGenerator produces identifiers for new transactions and sessions.
type IDGenerator interface {
	Generate() string
}
