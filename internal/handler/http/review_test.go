package http

import (
	"net/http"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rapozcode/webclient/internal/adapter"
	"github.com/rapozcode/webclient/internal/app"
	"github.com/rapozcode/webclient/models"
)

// ── GET /review ─────────────────────────────────────────────────────────────

func TestReviewPage_DefaultFocusChecked(t *testing.T) {
	router := newTestRouter(t, newStubBackend())

	rr := get(router, "/review")

	assert.Equal(t, http.StatusOK, rr.Code)
	body := rr.Body.String()
	assert.Contains(t, body, `value="Code Quality" checked`)
	assert.Contains(t, body, `value="Best Practices" checked`)
	assert.Contains(t, body, `value="Performance">`)
	assert.Contains(t, body, `value="Security">`)
	assert.Contains(t, body, `value="Debugging">`)
}

// ── POST /review ────────────────────────────────────────────────────────────

func TestReviewCode_Success(t *testing.T) {
	backend := newStubBackend()
	backend.feedback = models.ReviewFeedback{
		OverallAssessment: "Clean and idiomatic.",
		Suggestions:       []string{"Add input validation."},
		Score:             9,
	}
	router := newTestRouter(t, backend)

	rr := postForm(router, "/review", url.Values{
		"language": {"python"},
		"code":     {"def add(a, b): return a + b"},
		"context":  {"Adds two integers."},
		"focus":    {"Code Quality", "Security"},
	})

	assert.Equal(t, http.StatusOK, rr.Code)
	body := rr.Body.String()
	assert.Contains(t, body, "Clean and idiomatic.")
	assert.Contains(t, body, "Add input validation.")
	assert.Contains(t, body, "9/10")

	_, _, _, review := backend.calls()
	assert.Equal(t, 1, review, "one form submission should trigger exactly one backend call")
}

// Context and focus travel to the backend inside the problem statement.
func TestReviewCode_SendsContextAndFocus(t *testing.T) {
	backend := newStubBackend()
	router := newTestRouter(t, backend)

	postForm(router, "/review", url.Values{
		"language": {"python"},
		"code":     {"print(42)"},
		"context":  {"Prints an answer."},
		"focus":    {"Performance", "Debugging"},
	})

	if assert.NotNil(t, backend.lastReview.Problem) {
		assert.Equal(t,
			"Prints an answer.\n\nReview focus: Performance, Debugging",
			backend.lastReview.Problem.ProblemStatement)
	}
}

func TestReviewCode_NoContextNoFocus_SendsNoProblem(t *testing.T) {
	backend := newStubBackend()
	router := newTestRouter(t, backend)

	postForm(router, "/review", url.Values{
		"language": {"java"},
		"code":     {"class A {}"},
	})

	assert.Nil(t, backend.lastReview.Problem)
}

func TestReviewCode_EnrichesCurrentProblem(t *testing.T) {
	backend := newStubBackend()
	router := newTestRouter(t, backend)

	first := postForm(router, "/problems", url.Values{
		"topic":      {"strings"},
		"difficulty": {"Beginner"},
		"language":   {"Any"},
	})
	cookie := sessionCookie(t, first)

	postForm(router, "/review", url.Values{
		"language": {"python"},
		"code":     {"print(42)"},
		"focus":    {"Debugging"},
	}, cookie)

	if assert.NotNil(t, backend.lastReview.Problem) {
		assert.Contains(t, backend.lastReview.Problem.ProblemStatement, "Review focus: Debugging")
	}
}

func TestReviewCode_SelectionSticksInForm(t *testing.T) {
	backend := newStubBackend()
	router := newTestRouter(t, backend)

	first := postForm(router, "/review", url.Values{
		"language": {"cpp"},
		"code":     {"int x = 1;"},
		"focus":    {"Security"},
	})
	cookie := sessionCookie(t, first)

	rr := get(router, "/review", cookie)
	body := rr.Body.String()
	assert.Contains(t, body, "int x = 1;")
	assert.Contains(t, body, `value="cpp" selected`)
	assert.Contains(t, body, `value="Security" checked`)
	assert.Contains(t, body, `value="Code Quality">`)
}

func TestReviewCode_EmptyCode_NoBackendCall(t *testing.T) {
	backend := newStubBackend()
	router := newTestRouter(t, backend)

	rr := postForm(router, "/review", url.Values{
		"language": {"python"},
		"code":     {""},
	})

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), app.MsgEmptyCode)

	_, _, _, review := backend.calls()
	assert.Equal(t, 0, review)
}

func TestReviewCode_BackendDown_RendersInlineError(t *testing.T) {
	backend := newStubBackend()
	backend.feedbackErr = adapter.ErrBackendUnreachable
	router := newTestRouter(t, backend)

	rr := postForm(router, "/review", url.Values{
		"language": {"python"},
		"code":     {"print(42)"},
	})

	assert.Equal(t, http.StatusOK, rr.Code)
	body := rr.Body.String()
	assert.Contains(t, body, `class="error-box"`)
	assert.Contains(t, body, app.MsgBackendUnreachable)
}
