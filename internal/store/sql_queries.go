package store

import (
	sq "github.com/Masterminds/squirrel"
)

// transactionColumns is the canonical column order used by every SELECT.
// Keep in sync with the scan calls in repository_transactions.go.
var transactionColumns = []string{"id", "title", "amount", "session_id", "created_at"}

// psql builds queries with PostgreSQL-style $N placeholders.
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

func buildListTransactionsQuery(sessionID string) (string, []any, error) {
	return psql.Select(transactionColumns...).
		From("transactions").
		Where(sq.Eq{"session_id": sessionID}).
		OrderBy("created_at", "id").
		ToSql()
}

func buildGetTransactionQuery(id, sessionID string) (string, []any, error) {
	return psql.Select(transactionColumns...).
		From("transactions").
		Where(sq.Eq{"id": id, "session_id": sessionID}).
		ToSql()
}

// buildSummarizeQuery aggregates the session balance. COALESCE collapses the
// NULL produced by SUM over an empty set into zero so callers never have to
// normalize.
func buildSummarizeQuery(sessionID string) (string, []any, error) {
	return psql.Select("COALESCE(SUM(amount), 0) AS amount").
		From("transactions").
		Where(sq.Eq{"session_id": sessionID}).
		ToSql()
}

func buildInsertTransactionQuery(id, title string, amount float64, sessionID string) (string, []any, error) {
	return psql.Insert("transactions").
		Columns("id", "title", "amount", "session_id").
		Values(id, title, amount, sessionID).
		Suffix("RETURNING id, title, amount, session_id, created_at").
		ToSql()
}

// buildUpdateTransactionQuery produces a single conditional UPDATE scoped by
// both id and session_id. Matching zero rows is how absence (or foreign
// ownership) is detected; no separate existence check is issued.
func buildUpdateTransactionQuery(id, sessionID, title string, amount float64) (string, []any, error) {
	return psql.Update("transactions").
		Set("title", title).
		Set("amount", amount).
		Where(sq.Eq{"id": id, "session_id": sessionID}).
		ToSql()
}

func buildDeleteTransactionQuery(id, sessionID string) (string, []any, error) {
	return psql.Delete("transactions").
		Where(sq.Eq{"id": id, "session_id": sessionID}).
		ToSql()
}
