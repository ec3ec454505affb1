package http

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rapozcode/webclient/internal/adapter"
)

// ── GET / ───────────────────────────────────────────────────────────────────

func TestHome_ShowsPlatformOverview(t *testing.T) {
	backend := newStubBackend()
	router := newTestRouter(t, backend)

	rr := get(router, "/")

	assert.Equal(t, http.StatusOK, rr.Code)
	body := rr.Body.String()
	assert.Contains(t, body, "AI-Powered Coding Platform")
	assert.Contains(t, body, "Problem Generator")

	// rendering the home page must not touch the backend
	health, generate, execute, review := backend.calls()
	assert.Zero(t, health)
	assert.Zero(t, generate)
	assert.Zero(t, execute)
	assert.Zero(t, review)
}

// The header pill reflects the status poller's snapshot; before the first
// probe there is nothing to show.
func TestHome_NoBackendPillBeforeFirstProbe(t *testing.T) {
	router := newTestRouter(t, newStubBackend())

	rr := get(router, "/")

	assert.NotContains(t, rr.Body.String(), "backend online")
	assert.NotContains(t, rr.Body.String(), "backend offline")
}

// ── GET /about ──────────────────────────────────────────────────────────────

func TestAbout_ProbesBackendLive(t *testing.T) {
	backend := newStubBackend()
	router := newTestRouter(t, backend)

	rr := get(router, "/about")

	assert.Equal(t, http.StatusOK, rr.Code)
	body := rr.Body.String()
	assert.Contains(t, body, `<span class="pill online">connected</span>`)
	assert.Contains(t, body, "AI Coding Platform Backend is running")

	health, _, _, _ := backend.calls()
	assert.Equal(t, 1, health)
}

func TestAbout_ShowsUnreachableBackend(t *testing.T) {
	backend := newStubBackend()
	backend.healthErr = adapter.ErrBackendUnreachable
	router := newTestRouter(t, backend)

	rr := get(router, "/about")

	// the page itself renders fine even with the backend down
	assert.Equal(t, http.StatusOK, rr.Code)
	body := rr.Body.String()
	assert.Contains(t, body, `<span class="pill offline">unreachable</span>`)
	assert.Contains(t, body, "backend unreachable")
}

// Once a probe has run, every later page render shows its outcome in the
// header without probing again.
func TestPages_HeaderPillUsesSnapshot(t *testing.T) {
	backend := newStubBackend()
	router := newTestRouter(t, backend)

	get(router, "/about")

	rr := get(router, "/")
	assert.Contains(t, rr.Body.String(), "backend online")

	health, _, _, _ := backend.calls()
	assert.Equal(t, 1, health, "the home render should reuse the cached probe")
}
