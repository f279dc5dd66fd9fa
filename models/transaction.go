package models

import "time"

// Transaction type literals accepted in create/update payloads.
// The type itself is never persisted: it is collapsed into the sign
// of the stored amount at write time.
const (
	TypeCredit = "credit"
	TypeDebit  = "debit"
)

// Transaction is a single ledger entry. Amounts are stored already
// sign-adjusted (credit positive, debit negative) so a plain sum over
// a session yields its balance.
type Transaction struct {
	// ID is the server-generated transaction identifier (UUID).
	ID string `json:"id"`

	// Title is a free-text label supplied by the client.
	Title string `json:"title"`

	// Amount is the sign-adjusted value of the entry.
	Amount float64 `json:"amount"`

	// SessionID is the opaque token correlating the entry to one
	// anonymous account. Never exposed as a trust boundary.
	SessionID string `json:"session_id"`

	// CreatedAt is assigned by the database on insert.
	CreatedAt time.Time `json:"created_at"`
}

// TransactionPayload is the request body for create and update.
// Pointer fields distinguish absent fields from zero values so the
// validator can reject missing or mistyped input with a field-level
// message. Unknown extra fields are ignored by the JSON decoder.
type TransactionPayload struct {
	Title  *string  `json:"title"`
	Amount *float64 `json:"amount"`
	Type   *string  `json:"type"`
}

// TransactionID is a path-supplied transaction identifier awaiting
// validation. A dedicated type lets the validator dispatch on it without
// confusing it with other string inputs.
type TransactionID string

// Summary is the aggregate balance of one session.
type Summary struct {
	Amount float64 `json:"amount"`
}
