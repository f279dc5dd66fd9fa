package models

// TransactionsResponse is the envelope for the list operation.
type TransactionsResponse struct {
	Transactions []Transaction `json:"transactions"`
}

// TransactionResponse is the envelope for the get-one operation.
type TransactionResponse struct {
	Transaction Transaction `json:"transaction"`
}

// SummaryResponse is the envelope for the summarize operation.
type SummaryResponse struct {
	Summary Summary `json:"summary"`
}

// MessageResponse carries confirmation and not-found messages.
type MessageResponse struct {
	Message string `json:"message"`
}

// ErrorResponse is the uniform body for unexpected failures. The
// original cause is never included.
type ErrorResponse struct {
	Error string `json:"error"`
}
