package http

import (
	"context"
	"errors"
	"net/http"

	"github.com/Cleber-Canto/transactions-api/internal/logger"
	"github.com/Cleber-Canto/transactions-api/internal/utils"
	"github.com/Cleber-Canto/transactions-api/models"
)

// sessionAuth is an HTTP middleware that requires a session cookie.
//
// It reads the session cookie named by the configuration, rejects the
// request with HTTP 401 Unauthorized when the cookie is absent or empty,
// and otherwise stores the session ID in the request context under
// [utils.SessionIDCtxKey] before delegating to the next handler.
//
// Transaction creation deliberately bypasses this middleware: a first
// request without a cookie bootstraps a brand-new session there.
func (h *Handler) sessionAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		cookie, err := r.Cookie(h.cfg.SessionCookieName)
		if err != nil {
			if errors.Is(err, http.ErrNoCookie) {
				err = ErrMissingSessionCookie
			}
			log.Err(err).Send()
			h.writeUnauthorized(w, r)
			return
		}

		if cookie.Value == "" {
			log.Err(ErrEmptySessionCookie).Send()
			h.writeUnauthorized(w, r)
			return
		}

		ctx := context.WithValue(r.Context(), utils.SessionIDCtxKey, cookie.Value)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func (h *Handler) writeUnauthorized(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	if _, err := utils.WriteJSON(w, models.MessageResponse{Message: "Unauthorized."}, http.StatusUnauthorized); err != nil {
		log.Err(err).Msg("error occurred during writing response")
	}
}
