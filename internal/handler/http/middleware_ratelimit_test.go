package http

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rapozcode/webclient/internal/app"
	"github.com/rapozcode/webclient/internal/config"
	"github.com/rapozcode/webclient/internal/logger"
	"github.com/rapozcode/webclient/internal/service"
	"github.com/rapozcode/webclient/internal/session"
	"github.com/rapozcode/webclient/internal/utils"
	"github.com/rapozcode/webclient/web"
)

// newRateLimitedRouter builds a router with a deliberately small per-IP
// budget. One token per minute means no refills happen within a test run.
func newRateLimitedRouter(t *testing.T, backend *stubBackend, burst int) http.Handler {
	t.Helper()

	renderer, err := web.NewRenderer()
	require.NoError(t, err)

	cfg := &config.StructuredConfig{
		App:    config.App{Version: "test"},
		Limits: config.Limits{RequestsPerMinute: 1, Burst: burst},
	}
	sessions := session.NewStore(config.Sessions{TTL: time.Minute}, logger.Nop())

	return NewHandler(service.NewServices(backend), sessions, renderer, cfg, logger.Nop()).Init()
}

func postFormAs(router http.Handler, path, ip string, form url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("X-Forwarded-For", ip)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	return rr
}

// ── middleware in isolation ─────────────────────────────────────────────────

func TestWithRateLimit_BlocksAfterBurst(t *testing.T) {
	h := &Handler{logger: logger.Nop(), limiter: utils.NewRateLimiter(1, 1)}

	nextCalls := 0
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		nextCalls++
		w.WriteHeader(http.StatusOK)
	})
	middleware := h.withRateLimit(next)

	first := httptest.NewRecorder()
	middleware.ServeHTTP(first, httptest.NewRequest(http.MethodPost, "/test", nil))
	assert.Equal(t, http.StatusOK, first.Code)

	second := httptest.NewRecorder()
	middleware.ServeHTTP(second, httptest.NewRequest(http.MethodPost, "/test", nil))
	assert.Equal(t, http.StatusTooManyRequests, second.Code)
	assert.Contains(t, second.Body.String(), app.MsgRateLimited)

	assert.Equal(t, 1, nextCalls)
}

// ── through the router ──────────────────────────────────────────────────────

func TestRateLimit_BackendActionsShareOneBudget(t *testing.T) {
	backend := newStubBackend()
	router := newRateLimitedRouter(t, backend, 2)

	form := url.Values{"topic": {"arrays"}, "difficulty": {"Beginner"}, "language": {"Any"}}

	assert.Equal(t, http.StatusOK, postFormAs(router, "/problems", "10.1.2.3", form).Code)
	assert.Equal(t, http.StatusOK, postFormAs(router, "/problems", "10.1.2.3", form).Code)

	third := postFormAs(router, "/problems", "10.1.2.3", form)
	assert.Equal(t, http.StatusTooManyRequests, third.Code)
	assert.Contains(t, third.Body.String(), app.MsgRateLimited)

	// the blocked request never reached the backend
	_, generate, _, _ := backend.calls()
	assert.Equal(t, 2, generate)
}

func TestRateLimit_PerIPBudgets(t *testing.T) {
	backend := newStubBackend()
	router := newRateLimitedRouter(t, backend, 1)

	form := url.Values{"topic": {"arrays"}, "difficulty": {"Beginner"}, "language": {"Any"}}

	assert.Equal(t, http.StatusOK, postFormAs(router, "/problems", "10.0.0.1", form).Code)
	assert.Equal(t, http.StatusTooManyRequests, postFormAs(router, "/problems", "10.0.0.1", form).Code)

	// a different client is unaffected
	assert.Equal(t, http.StatusOK, postFormAs(router, "/problems", "10.0.0.2", form).Code)
}

// Page views and the session-only save action stay outside the budget.
func TestRateLimit_DoesNotApplyToPageViews(t *testing.T) {
	backend := newStubBackend()
	router := newRateLimitedRouter(t, backend, 1)

	form := url.Values{"topic": {"arrays"}, "difficulty": {"Beginner"}, "language": {"Any"}}
	postFormAs(router, "/problems", "10.9.9.9", form)
	require.Equal(t, http.StatusTooManyRequests, postFormAs(router, "/problems", "10.9.9.9", form).Code)

	req := httptest.NewRequest(http.MethodGet, "/problems", nil)
	req.Header.Set("X-Forwarded-For", "10.9.9.9")
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	assert.Equal(t, http.StatusOK, rr.Code)

	save := postFormAs(router, "/editor/save", "10.9.9.9", url.Values{
		"language": {"python"},
		"code":     {"print(42)"},
	})
	assert.Equal(t, http.StatusOK, save.Code)
}
