package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Cleber-Canto/transactions-api/internal/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// nextSpy records whether the wrapped handler was reached and what session
// ID it observed in the request context.
type nextSpy struct {
	called    bool
	sessionID string
	found     bool
}

func (s *nextSpy) handler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.called = true
		s.sessionID, s.found = utils.GetSessionIDFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	})
}

func TestSessionAuth_PassesSessionDownstream(t *testing.T) {
	h := newHandlerWithService(t, &mockTransactionService{})

	spy := &nextSpy{}
	guarded := h.sessionAuth(spy.handler())

	req := httptest.NewRequest(http.MethodGet, "/transactions", nil)
	req.AddCookie(&http.Cookie{Name: "sessionId", Value: testSessionID})
	rec := httptest.NewRecorder()

	guarded.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, spy.called)
	assert.True(t, spy.found)
	assert.Equal(t, testSessionID, spy.sessionID)
}

// TestSessionAuth_MissingCookie verifies that the guard rejects a request
// without the session cookie before the handler runs.
func TestSessionAuth_MissingCookie(t *testing.T) {
	h := newHandlerWithService(t, &mockTransactionService{})

	spy := &nextSpy{}
	guarded := h.sessionAuth(spy.handler())

	req := httptest.NewRequest(http.MethodGet, "/transactions", nil)
	rec := httptest.NewRecorder()

	guarded.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.JSONEq(t, `{"message":"Unauthorized."}`, rec.Body.String())
	assert.False(t, spy.called)
}

func TestSessionAuth_EmptyCookie(t *testing.T) {
	h := newHandlerWithService(t, &mockTransactionService{})

	spy := &nextSpy{}
	guarded := h.sessionAuth(spy.handler())

	req := httptest.NewRequest(http.MethodGet, "/transactions", nil)
	req.AddCookie(&http.Cookie{Name: "sessionId", Value: ""})
	rec := httptest.NewRecorder()

	guarded.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.False(t, spy.called)
}

// TestSessionAuth_CustomCookieName verifies that the guard honours the
// configured cookie name rather than a hard-coded one.
func TestSessionAuth_CustomCookieName(t *testing.T) {
	cfg := testAppConfig()
	cfg.SessionCookieName = "ledgerSession"

	h := newHandlerWithService(t, &mockTransactionService{})
	h.cfg = cfg

	spy := &nextSpy{}
	guarded := h.sessionAuth(spy.handler())

	req := httptest.NewRequest(http.MethodGet, "/transactions", nil)
	req.AddCookie(&http.Cookie{Name: "ledgerSession", Value: testSessionID})
	rec := httptest.NewRecorder()

	guarded.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, testSessionID, spy.sessionID)
}
