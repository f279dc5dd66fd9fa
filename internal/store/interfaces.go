package store

import (
	"context"

	"github.com/Cleber-Canto/transactions-api/models"
)

// TransactionRepository is the query-execution boundary against the
// relational datastore. Every method is scoped by the opaque session
// identifier so that one session can never observe or mutate another
// session's rows.
type TransactionRepository interface {
	// List returns all transactions of the session in insertion order.
	List(ctx context.Context, sessionID string) ([]models.Transaction, error)

	// GetOne returns the transaction matching both id and sessionID, or
	// [ErrTransactionNotFound].
	GetOne(ctx context.Context, id, sessionID string) (models.Transaction, error)

	// Summarize returns the sum of all sign-adjusted amounts of the
	// session. An empty result set yields a zero summary.
	Summarize(ctx context.Context, sessionID string) (models.Summary, error)

	// Create persists a new transaction and returns it with all
	// server-assigned fields populated.
	Create(ctx context.Context, transaction models.Transaction) (models.Transaction, error)

	// Update rewrites title and amount of the transaction matching id and
	// sessionID in a single conditional statement. Zero matched rows map
	// to [ErrTransactionNotFound].
	Update(ctx context.Context, id, sessionID, title string, amount float64) error

	// Delete removes the transaction matching id and sessionID. Zero
	// matched rows map to [ErrTransactionNotFound].
	Delete(ctx context.Context, id, sessionID string) error
}

// ErrorClassificator distinguishes retryable driver failures from permanent
// ones. The repository only records the classification in its logs; no
// retries are performed at this layer.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}
