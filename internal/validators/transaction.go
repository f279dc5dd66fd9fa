package validators

import (
	"context"
	"math"

	"github.com/Cleber-Canto/transactions-api/models"
	"github.com/google/uuid"
)

const (
	FieldTransactionID = "transaction_id"
	FieldTitle         = "title"
	FieldAmount        = "amount"
	FieldType          = "type"
)

var allowedTransactionTypes = []string{
	models.TypeCredit,
	models.TypeDebit,
}

// TransactionValidator enforces the request shapes of the transactions API:
// path identifiers must be canonical UUIDs and create/update payloads must
// carry a non-empty title, a finite amount, and an enumerated type.
type TransactionValidator struct {
}

func NewTransactionValidator() Validator {
	return &TransactionValidator{}
}

func (v *TransactionValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.TransactionID:
		return v.validateTransactionID(ctx, value)

	case models.TransactionPayload:
		return v.validatePayload(ctx, value, fields...)
	case *models.TransactionPayload:
		return v.validatePayload(ctx, *value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func isValidTransactionType(t string) bool {
	for _, allowed := range allowedTransactionTypes {
		if t == allowed {
			return true
		}
	}
	return false
}

func (v *TransactionValidator) validateTransactionID(_ context.Context, id models.TransactionID) error {
	if _, err := uuid.Parse(string(id)); err != nil {
		return ErrInvalidTransactionID
	}
	return nil
}

func (v *TransactionValidator) validatePayload(_ context.Context, payload models.TransactionPayload, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldTitle, FieldAmount, FieldType}
	}

	for _, f := range fields {
		switch f {
		case FieldTitle:
			if payload.Title == nil || *payload.Title == "" {
				return ErrEmptyTitle
			}
		case FieldAmount:
			if payload.Amount == nil {
				return ErrAmountRequired
			}
			if math.IsNaN(*payload.Amount) || math.IsInf(*payload.Amount, 0) {
				return ErrInvalidAmount
			}
		case FieldType:
			if payload.Type == nil || !isValidTransactionType(*payload.Type) {
				return ErrInvalidType
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}
