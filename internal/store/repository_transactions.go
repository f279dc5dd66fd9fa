package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Cleber-Canto/transactions-api/internal/logger"
	"github.com/Cleber-Canto/transactions-api/models"
)

// transactionRepository is the PostgreSQL-backed implementation of
// [TransactionRepository]. It executes all ledger CRUD operations directly
// against the "transactions" table using the embedded [*DB] connection.
//
// Every public method obtains a context-scoped logger via
// [logger.FromContext] so that database interactions are traced with
// structured fields (session_id, transaction id, retryability).
type transactionRepository struct {
	*DB
	logger *logger.Logger
}

// NewTransactionRepository constructs a [TransactionRepository] backed by
// the provided database connection and logger.
//
// The logger parameter is stored for fallback logging; most methods prefer
// the context-scoped logger obtained via [logger.FromContext].
func NewTransactionRepository(db *DB, logger *logger.Logger) TransactionRepository {
	logger.Debug().Msg("creating transaction repository")
	return &transactionRepository{
		DB:     db,
		logger: logger,
	}
}

// List retrieves every transaction owned by the given session in insertion
// order. Returns an empty slice when no records are found.
func (r *transactionRepository) List(ctx context.Context, sessionID string) ([]models.Transaction, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListTransactionsQuery(sessionID)
	if err != nil {
		log.Err(err).
			Str("func", "*transactionRepository.List").
			Str("session_id", sessionID).
			Msg("failed to build query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "*transactionRepository.List").
			Str("session_id", sessionID).
			Bool("retryable", r.errorClassificator.Classify(err) == Retryable).
			Msg("failed to execute query for listing transactions")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	results := make([]models.Transaction, 0, 20)

	for rows.Next() {
		var t models.Transaction

		scanErr := rows.Scan(&t.ID, &t.Title, &t.Amount, &t.SessionID, &t.CreatedAt)
		if scanErr != nil {
			log.Err(scanErr).
				Str("func", "*transactionRepository.List").
				Str("session_id", sessionID).
				Msg("failed to scan transaction row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}

		results = append(results, t)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).
			Str("func", "*transactionRepository.List").
			Str("session_id", sessionID).
			Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return results, nil
}

// GetOne retrieves the transaction matching both id and sessionID.
//
// Error handling:
//   - No matching row → [ErrTransactionNotFound]. Rows owned by another
//     session are invisible, so the caller cannot tell absence from
//     foreign ownership.
//   - Any driver-level error → wrapped [ErrExecutingQuery] or [ErrScanningRow].
func (r *transactionRepository) GetOne(ctx context.Context, id, sessionID string) (models.Transaction, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildGetTransactionQuery(id, sessionID)
	if err != nil {
		log.Err(err).
			Str("func", "*transactionRepository.GetOne").
			Str("transaction_id", id).
			Msg("failed to build query")
		return models.Transaction{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var t models.Transaction
	row := r.DB.QueryRowContext(ctx, query, args...)

	if scanErr := row.Scan(&t.ID, &t.Title, &t.Amount, &t.SessionID, &t.CreatedAt); scanErr != nil {
		if errors.Is(scanErr, sql.ErrNoRows) {
			return models.Transaction{}, ErrTransactionNotFound
		}

		log.Err(scanErr).
			Str("func", "*transactionRepository.GetOne").
			Str("transaction_id", id).
			Str("session_id", sessionID).
			Bool("retryable", r.errorClassificator.Classify(scanErr) == Retryable).
			Msg("failed to scan transaction row")
		return models.Transaction{}, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
	}

	return t, nil
}

// Summarize computes the running balance of the session — the sum of all
// sign-adjusted amounts. The query collapses NULL to zero, so an empty
// session yields a zero summary rather than an error.
func (r *transactionRepository) Summarize(ctx context.Context, sessionID string) (models.Summary, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSummarizeQuery(sessionID)
	if err != nil {
		log.Err(err).
			Str("func", "*transactionRepository.Summarize").
			Str("session_id", sessionID).
			Msg("failed to build query")
		return models.Summary{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var summary models.Summary
	row := r.DB.QueryRowContext(ctx, query, args...)

	if scanErr := row.Scan(&summary.Amount); scanErr != nil {
		log.Err(scanErr).
			Str("func", "*transactionRepository.Summarize").
			Str("session_id", sessionID).
			Bool("retryable", r.errorClassificator.Classify(scanErr) == Retryable).
			Msg("failed to scan summary row")
		return models.Summary{}, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
	}

	return summary, nil
}

// Create persists a new transaction and returns the fully populated
// [models.Transaction] with server-assigned fields (CreatedAt).
//
// The INSERT returns all columns via a RETURNING clause, so the caller
// receives the canonical database representation of the newly created entry.
func (r *transactionRepository) Create(ctx context.Context, transaction models.Transaction) (models.Transaction, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildInsertTransactionQuery(transaction.ID, transaction.Title, transaction.Amount, transaction.SessionID)
	if err != nil {
		log.Err(err).
			Str("func", "*transactionRepository.Create").
			Str("transaction_id", transaction.ID).
			Msg("failed to build query")
		return models.Transaction{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	row := r.DB.QueryRowContext(ctx, query, args...)

	var created models.Transaction
	if scanErr := row.Scan(&created.ID, &created.Title, &created.Amount, &created.SessionID, &created.CreatedAt); scanErr != nil {
		log.Err(scanErr).
			Str("func", "*transactionRepository.Create").
			Str("transaction_id", transaction.ID).
			Str("session_id", transaction.SessionID).
			Str("pg_code", postgresError(scanErr)).
			Bool("retryable", r.errorClassificator.Classify(scanErr) == Retryable).
			Msg("failed to insert transaction")
		return models.Transaction{}, fmt.Errorf("%w: %w", ErrExecutingStatement, scanErr)
	}

	return created, nil
}

// Update rewrites title and amount of the transaction matching id and
// sessionID in one conditional statement.
//
// Error handling:
//   - RowsAffected == 0 → [ErrTransactionNotFound].
//   - Any driver-level error → wrapped [ErrExecutingStatement].
func (r *transactionRepository) Update(ctx context.Context, id, sessionID, title string, amount float64) error {
	log := logger.FromContext(ctx)

	query, args, err := buildUpdateTransactionQuery(id, sessionID, title, amount)
	if err != nil {
		log.Err(err).
			Str("func", "*transactionRepository.Update").
			Str("transaction_id", id).
			Msg("failed to build query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, execErr := r.DB.ExecContext(ctx, query, args...)
	if execErr != nil {
		log.Err(execErr).
			Str("func", "*transactionRepository.Update").
			Str("transaction_id", id).
			Str("session_id", sessionID).
			Bool("retryable", r.errorClassificator.Classify(execErr) == Retryable).
			Msg("failed to execute update statement")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, execErr)
	}

	affected, affErr := result.RowsAffected()
	if affErr != nil {
		log.Err(affErr).
			Str("func", "*transactionRepository.Update").
			Str("transaction_id", id).
			Msg("failed to read affected rows")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, affErr)
	}

	if affected == 0 {
		return ErrTransactionNotFound
	}

	return nil
}

// Delete removes the transaction matching id and sessionID.
//
// Error handling mirrors [transactionRepository.Update]: zero affected rows
// map to [ErrTransactionNotFound], so a repeated delete of the same id is a
// clean not-found outcome rather than a server failure.
func (r *transactionRepository) Delete(ctx context.Context, id, sessionID string) error {
	log := logger.FromContext(ctx)

	query, args, err := buildDeleteTransactionQuery(id, sessionID)
	if err != nil {
		log.Err(err).
			Str("func", "*transactionRepository.Delete").
			Str("transaction_id", id).
			Msg("failed to build query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, execErr := r.DB.ExecContext(ctx, query, args...)
	if execErr != nil {
		log.Err(execErr).
			Str("func", "*transactionRepository.Delete").
			Str("transaction_id", id).
			Str("session_id", sessionID).
			Bool("retryable", r.errorClassificator.Classify(execErr) == Retryable).
			Msg("failed to execute delete statement")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, execErr)
	}

	affected, affErr := result.RowsAffected()
	if affErr != nil {
		log.Err(affErr).
			Str("func", "*transactionRepository.Delete").
			Str("transaction_id", id).
			Msg("failed to read affected rows")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, affErr)
	}

	if affected == 0 {
		return ErrTransactionNotFound
	}

	return nil
}
