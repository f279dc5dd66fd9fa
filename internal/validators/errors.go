package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrInvalidTransactionID = errors.New("transaction id must be a valid UUID")
	ErrEmptyTitle           = errors.New("title is required")
	ErrAmountRequired       = errors.New("amount is required")
	ErrInvalidAmount        = errors.New("amount must be a finite number")
	ErrInvalidType          = errors.New("type must be either credit or debit")
)
