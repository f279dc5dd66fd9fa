package http

import (
	"encoding/json"
	"net/http"

	"github.com/Cleber-Canto/transactions-api/internal/logger"
	"github.com/Cleber-Canto/transactions-api/internal/utils"
	"github.com/Cleber-Canto/transactions-api/models"
	"github.com/go-chi/chi/v5"
)

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var payload models.TransactionPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		h.writeError(w, r, ErrInvalidJSONBody)
		return
	}

	if err := h.validator.Validate(ctx, payload); err != nil {
		log.Err(err).Msg("invalid transaction payload")
		h.writeError(w, r, err)
		return
	}

	// The session cookie is optional here: create bootstraps the session
	// when the client has none yet.
	var sessionID string
	if cookie, err := r.Cookie(h.cfg.SessionCookieName); err == nil {
		sessionID = cookie.Value
	}

	created, minted, err := h.services.TransactionService.Create(ctx, payload, sessionID)
	if err != nil {
		log.Err(err).Msg("error occurred during transaction creation")
		h.writeError(w, r, err)
		return
	}

	if minted {
		http.SetCookie(w, &http.Cookie{
			Name:   h.cfg.SessionCookieName,
			Value:  created.SessionID,
			Path:   "/",
			MaxAge: int(h.cfg.SessionTTL.Seconds()),
		})
	}

	h.writeJSON(w, r, models.MessageResponse{Message: "Transaction created successfully."}, http.StatusCreated)
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	sessionID, _ := utils.GetSessionIDFromContext(ctx)

	transactions, err := h.services.TransactionService.List(ctx, sessionID)
	if err != nil {
		log.Err(err).Msg("error occurred during listing transactions")
		h.writeError(w, r, err)
		return
	}

	h.writeJSON(w, r, models.TransactionsResponse{Transactions: transactions}, http.StatusOK)
}

func (h *Handler) getOne(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	sessionID, _ := utils.GetSessionIDFromContext(ctx)

	id := chi.URLParam(r, "id")
	if err := h.validator.Validate(ctx, models.TransactionID(id)); err != nil {
		log.Err(err).Str("id", id).Msg("invalid transaction id")
		h.writeError(w, r, err)
		return
	}

	transaction, err := h.services.TransactionService.GetOne(ctx, id, sessionID)
	if err != nil {
		log.Err(err).Str("id", id).Msg("error occurred during getting transaction")
		h.writeError(w, r, err)
		return
	}

	h.writeJSON(w, r, models.TransactionResponse{Transaction: transaction}, http.StatusOK)
}

func (h *Handler) summary(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	sessionID, _ := utils.GetSessionIDFromContext(ctx)

	summary, err := h.services.TransactionService.Summarize(ctx, sessionID)
	if err != nil {
		log.Err(err).Msg("error occurred during summarizing transactions")
		h.writeError(w, r, err)
		return
	}

	h.writeJSON(w, r, models.SummaryResponse{Summary: summary}, http.StatusOK)
}

func (h *Handler) update(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	sessionID, _ := utils.GetSessionIDFromContext(ctx)

	id := chi.URLParam(r, "id")
	if err := h.validator.Validate(ctx, models.TransactionID(id)); err != nil {
		log.Err(err).Str("id", id).Msg("invalid transaction id")
		h.writeError(w, r, err)
		return
	}

	var payload models.TransactionPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		h.writeError(w, r, ErrInvalidJSONBody)
		return
	}

	if err := h.validator.Validate(ctx, payload); err != nil {
		log.Err(err).Msg("invalid transaction payload")
		h.writeError(w, r, err)
		return
	}

	if err := h.services.TransactionService.Update(ctx, id, sessionID, payload); err != nil {
		log.Err(err).Str("id", id).Msg("error occurred during updating transaction")
		h.writeError(w, r, err)
		return
	}

	h.writeJSON(w, r, models.MessageResponse{Message: "Transaction updated successfully."}, http.StatusOK)
}

func (h *Handler) remove(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	sessionID, _ := utils.GetSessionIDFromContext(ctx)

	id := chi.URLParam(r, "id")
	if err := h.validator.Validate(ctx, models.TransactionID(id)); err != nil {
		log.Err(err).Str("id", id).Msg("invalid transaction id")
		h.writeError(w, r, err)
		return
	}

	if err := h.services.TransactionService.Delete(ctx, id, sessionID); err != nil {
		log.Err(err).Str("id", id).Msg("error occurred during deleting transaction")
		h.writeError(w, r, err)
		return
	}

	h.writeJSON(w, r, models.MessageResponse{Message: "Transaction deleted successfully."}, http.StatusOK)
}

func (h *Handler) writeJSON(w http.ResponseWriter, r *http.Request, data any, statusCode int) {
	log := logger.FromRequest(r)

	if _, err := utils.WriteJSON(w, data, statusCode); err != nil {
		log.Err(err).Msg("error occurred during writing response")
	}
}

// writeError converts err into the API's error body: 404s carry a plain
// not-found message, 400s echo the validation failure, and everything else
// collapses into a generic 500 so internal causes never leak to the client.
func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFromError(err)

	var body any
	switch status {
	case http.StatusNotFound:
		body = models.MessageResponse{Message: "Transaction not found."}
	case http.StatusBadRequest:
		body = models.MessageResponse{Message: err.Error()}
	default:
		body = models.ErrorResponse{Error: http.StatusText(http.StatusInternalServerError)}
	}

	h.writeJSON(w, r, body, status)
}
