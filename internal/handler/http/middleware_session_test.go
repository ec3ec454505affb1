package http

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rapozcode/webclient/internal/config"
	"github.com/rapozcode/webclient/internal/logger"
	"github.com/rapozcode/webclient/internal/session"
	"github.com/rapozcode/webclient/internal/utils"
)

func newSessionHandler(t *testing.T) *Handler {
	t.Helper()
	return &Handler{
		logger:   logger.Nop(),
		uuids:    utils.NewUUIDGenerator(),
		sessions: session.NewStore(config.Sessions{TTL: time.Minute}, logger.Nop()),
	}
}

// executeWithSession runs one request through withSession, optionally
// carrying a session cookie, and returns the recorder plus the session ID
// the next handler saw in its context.
func executeWithSession(h *Handler, cookie *http.Cookie) (*httptest.ResponseRecorder, string) {
	var ctxID string
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctxID, _ = utils.GetSessionIDFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	})

	middleware := h.withSession(next)
	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	if cookie != nil {
		req.AddCookie(cookie)
	}

	rr := httptest.NewRecorder()
	middleware.ServeHTTP(rr, req)
	return rr, ctxID
}

func setCookie(t *testing.T, rr *httptest.ResponseRecorder) *http.Cookie {
	t.Helper()
	for _, c := range (&http.Response{Header: rr.Header()}).Cookies() {
		if c.Name == sessionCookieName {
			return c
		}
	}
	return nil
}

// ── first visit ─────────────────────────────────────────────────────────────

func TestWithSession_FirstVisitCreatesSession(t *testing.T) {
	h := newSessionHandler(t)

	rr, ctxID := executeWithSession(h, nil)

	require.NotEmpty(t, ctxID, "session ID should be stored in the request context")

	cookie := setCookie(t, rr)
	require.NotNil(t, cookie, "first visit should set the session cookie")
	assert.Equal(t, ctxID, cookie.Value)
	assert.Equal(t, "/", cookie.Path)
	assert.True(t, cookie.HttpOnly)
	assert.Equal(t, http.SameSiteLaxMode, cookie.SameSite)

	_, found := h.sessions.Get(ctxID)
	assert.True(t, found, "the created session should be in the store")
}

// ── returning visitor ───────────────────────────────────────────────────────

func TestWithSession_ReusesKnownSession(t *testing.T) {
	h := newSessionHandler(t)
	sess := h.sessions.Create()

	rr, ctxID := executeWithSession(h, &http.Cookie{Name: sessionCookieName, Value: sess.ID})

	assert.Equal(t, sess.ID, ctxID)
	assert.Nil(t, setCookie(t, rr), "a known session should not be re-issued")
}

func TestWithSession_UnknownCookieGetsFreshSession(t *testing.T) {
	h := newSessionHandler(t)

	rr, ctxID := executeWithSession(h, &http.Cookie{Name: sessionCookieName, Value: "expired-or-forged"})

	require.NotEmpty(t, ctxID)
	assert.NotEqual(t, "expired-or-forged", ctxID)

	cookie := setCookie(t, rr)
	require.NotNil(t, cookie, "a stale cookie should be replaced")
	assert.Equal(t, ctxID, cookie.Value)
}

func TestWithSession_EmptyCookieValueGetsFreshSession(t *testing.T) {
	h := newSessionHandler(t)

	_, ctxID := executeWithSession(h, &http.Cookie{Name: sessionCookieName, Value: ""})

	assert.NotEmpty(t, ctxID)
}

// Two separate browsers get two separate sessions.
func TestWithSession_DistinctVisitorsDistinctSessions(t *testing.T) {
	h := newSessionHandler(t)

	_, first := executeWithSession(h, nil)
	_, second := executeWithSession(h, nil)

	assert.NotEqual(t, first, second)
}
