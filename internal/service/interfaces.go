// Package service contains the page-facing application logic of the web
// client: composing backend requests from validated form input, and keeping a
// cached view of backend availability fresh.
//
// Services sit between the HTTP handlers and the [adapter.BackendAdapter].
// They own input validation (empty topic, empty code, unknown language) and
// request composition (enhanced topics, review context); the adapter owns the
// wire. Validation failures are reported via the sentinel errors in
// errors.go so handlers can pick user-facing wording with [errors.Is].
package service

import (
	"context"
	"time"

	"github.com/rapozcode/webclient/models"
)

// ProblemService defines the contract for AI problem generation.
type ProblemService interface {
	// Generate asks the backend for a coding problem. The topic is enriched
	// with the difficulty ("arrays - Beginner level") and, when the choice
	// is not Any, the preferred language ("... in Python") before it is
	// sent. Returns ErrEmptyTopic for a blank topic, or a wrapped
	// ErrGenerateProblem if the backend call fails.
	Generate(ctx context.Context, topic string, difficulty models.Difficulty, language models.LanguageChoice) (models.Problem, error)
}

// WorkbenchService defines the contract for running code from the editor.
type WorkbenchService interface {
	// Execute submits code for a sandboxed run with optional stdin.
	// Compilation and runtime failures come back inside the result with
	// Success=false; only transport or backend-side failures return an
	// error. Returns ErrEmptyCode for blank code, ErrUnsupportedLanguage
	// for a language the platform does not run, or a wrapped
	// ErrExecuteCode if the backend call fails.
	Execute(ctx context.Context, code string, language models.Language, stdin string) (models.ExecutionResult, error)
}

// ReviewRequest carries everything a review submission may include. Problem
// is the session's current problem, when one was generated; Context is the
// free-text description from the review page; Focus lists the selected
// review focus areas.
type ReviewRequest struct {
	Code     string
	Language models.Language
	Problem  *models.Problem
	Context  string
	Focus    []string
}

// ReviewService defines the contract for AI code review.
type ReviewService interface {
	// Review submits code for review. The optional free-text context and
	// the selected focus areas ("Review focus: Code Quality, Security")
	// are folded into the problem statement sent to the backend, so the
	// reviewer actually sees them. Returns ErrEmptyCode for blank code,
	// ErrUnsupportedLanguage for an unknown language, or a wrapped
	// ErrReviewCode if the backend call fails.
	Review(ctx context.Context, req ReviewRequest) (models.ReviewFeedback, error)
}

// StatusService defines the contract for backend availability tracking.
// Pages render the cached snapshot; the background StatusJob and the
// health endpoint refresh it.
type StatusService interface {
	// Check probes the backend health endpoint now, updates the cached
	// snapshot, and returns the fresh status. Probe failures are data
	// here: an unreachable backend yields Online=false, not an error.
	Check(ctx context.Context) models.BackendStatus

	// Snapshot returns the last known backend status without probing.
	// Before the first probe completes it reports offline with an
	// explanatory detail.
	Snapshot() models.BackendStatus
}

// StatusJob defines the lifecycle of the background availability poller.
type StatusJob interface {
	// Start launches a goroutine that calls StatusService.Check once
	// immediately and then on every interval tick. A previously running
	// job is stopped first. The goroutine exits when ctx is cancelled or
	// Stop is called.
	Start(ctx context.Context, interval time.Duration)

	// Stop cancels the background goroutine and blocks until it has fully
	// exited. Safe to call when the job is not running.
	Stop()
}
