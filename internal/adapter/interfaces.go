// Package adapter provides transport-layer abstractions for communicating
// with the AI coding platform backend.
//
// The primary abstraction is [BackendAdapter], which decouples the service
// layer from the underlying protocol. The package ships an HTTP/JSON
// implementation ([NewHTTPBackendAdapter]) speaking the backend's REST
// contract: /health, /generate-problem, /execute-code, and /review-code.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic
// error handling (e.g. [ErrBadRequest] for 400, [ErrBackendUnreachable] for
// connection failures).
package adapter

import (
	"context"

	"github.com/rapozcode/webclient/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/backend_adapter_mock.go -package=mock

// BackendAdapter defines transport-agnostic communication with the AI coding
// platform backend. Implementations are responsible for serialisation,
// timeouts, and mapping transport-level errors to the sentinel values defined
// in this package.
type BackendAdapter interface {
	// Health probes the backend health endpoint. Probes run under the
	// short health timeout rather than the full request timeout, so callers
	// learn quickly when the backend is down. Returns the decoded status
	// payload, or an error if the probe fails.
	Health(ctx context.Context) (models.HealthStatus, error)

	// GenerateProblem asks the backend's AI to produce a coding problem for
	// req.Topic. The returned problem may be the backend's built-in fallback
	// when its AI provider is not configured; models.Problem.IsFallback
	// detects that case. Returns an error if the request fails or the
	// backend responds with a non-2xx status.
	GenerateProblem(ctx context.Context, req models.GenerateProblemRequest) (models.Problem, error)

	// ExecuteCode submits source code for a sandboxed run. Compilation and
	// runtime failures are data, not errors: they arrive inside the result
	// with Success=false. Returns an error only if the request itself fails
	// or the backend responds with a non-2xx status.
	ExecuteCode(ctx context.Context, req models.ExecuteCodeRequest) (models.ExecutionResult, error)

	// ReviewCode submits source code for AI review, optionally against the
	// problem it is meant to solve. Returns the decoded feedback, or an
	// error if the request fails or the backend responds with a non-2xx
	// status.
	ReviewCode(ctx context.Context, req models.ReviewCodeRequest) (models.ReviewFeedback, error)
}
