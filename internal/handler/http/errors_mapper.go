package http

import (
	"errors"
	"net/http"

	"github.com/Cleber-Canto/transactions-api/internal/service"
	"github.com/Cleber-Canto/transactions-api/internal/store"
	"github.com/Cleber-Canto/transactions-api/internal/validators"
)

var errorStatusMap = map[error]int{
	ErrInvalidJSONBody: http.StatusBadRequest,

	validators.ErrInvalidTransactionID: http.StatusBadRequest,
	validators.ErrEmptyTitle:           http.StatusBadRequest,
	validators.ErrAmountRequired:       http.StatusBadRequest,
	validators.ErrInvalidAmount:        http.StatusBadRequest,
	validators.ErrInvalidType:          http.StatusBadRequest,

	service.ErrInvalidDataProvided: http.StatusBadRequest,

	store.ErrTransactionNotFound: http.StatusNotFound,
	store.ErrTransactionNotSaved: http.StatusInternalServerError,

	store.ErrBuildingSQLQuery:   http.StatusInternalServerError,
	store.ErrExecutingQuery:     http.StatusInternalServerError,
	store.ErrExecutingStatement: http.StatusInternalServerError,
	store.ErrScanningRow:        http.StatusInternalServerError,
	store.ErrScanningRows:       http.StatusInternalServerError,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}
