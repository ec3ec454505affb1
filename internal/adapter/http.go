package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/rapozcode/webclient/internal/config"
	"github.com/rapozcode/webclient/internal/logger"
	"github.com/rapozcode/webclient/internal/utils"
	"github.com/rapozcode/webclient/models"
)

const traceIDHeader = "X-Trace-ID"

type httpBackendAdapter struct {
	client *utils.HTTPClient

	healthTimeout time.Duration

	logger *logger.Logger
}

// NewHTTPBackendAdapter constructs an HTTP/JSON implementation of
// [BackendAdapter]. It normalises and validates the base URL from
// backendCfg.BaseURL and configures the underlying HTTP client with the
// resolved base URL and request timeout. Health probes get their own shorter
// timeout from backendCfg.HealthTimeout.
//
// Returns an error if backendCfg.BaseURL is empty or cannot be parsed as a
// valid URL.
func NewHTTPBackendAdapter(backendCfg config.Backend, logger *logger.Logger) (BackendAdapter, error) {
	client := utils.NewHTTPClient()
	baseURL, err := normalizeBaseURL(backendCfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid backend base URL: %w", err)
	}

	client.
		SetBaseURL(baseURL).
		SetTimeout(backendCfg.RequestTimeout)

	return &httpBackendAdapter{
		client:        client,
		healthTimeout: backendCfg.HealthTimeout,
		logger:        logger,
	}, nil
}

// request starts an outbound request bound to ctx. When the inbound request
// was tagged with a trace ID it is propagated as X-Trace-ID, so backend logs
// can be correlated with this client's.
func (h *httpBackendAdapter) request(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)

	if traceID, ok := utils.GetTraceIDFromContext(ctx); ok {
		req.SetHeader(traceIDHeader, traceID)
	}

	return req
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// Health implements [BackendAdapter]. It GETs /health under the short health
// timeout and returns the decoded [models.HealthStatus]. Returns a wrapped
// [ErrBackendUnreachable] when no response arrives within the timeout.
func (h *httpBackendAdapter) Health(ctx context.Context) (models.HealthStatus, error) {
	var status models.HealthStatus

	probeCtx, cancel := context.WithTimeout(ctx, h.healthTimeout)
	defer cancel()

	resp, err := h.request(probeCtx).
		SetResult(&status).
		Get("/health")
	if err != nil {
		return models.HealthStatus{}, fmt.Errorf("health request: %w: %w", ErrBackendUnreachable, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.HealthStatus{}, err
	}

	return status, nil
}

// GenerateProblem implements [BackendAdapter]. It POSTs the topic to
// POST /generate-problem and returns the decoded [models.Problem]. The
// backend answers 200 even for its built-in fallback problem, which carries
// an explanatory Error field instead of a failing status.
func (h *httpBackendAdapter) GenerateProblem(ctx context.Context, req models.GenerateProblemRequest) (models.Problem, error) {
	var problem models.Problem

	resp, err := h.request(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		SetResult(&problem).
		Post("/generate-problem")
	if err != nil {
		return models.Problem{}, fmt.Errorf("generate problem request: %w: %w", ErrBackendUnreachable, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Problem{}, err
	}

	return problem, nil
}

// ExecuteCode implements [BackendAdapter]. It POSTs code, language, and
// optional stdin to POST /execute-code and returns the decoded
// [models.ExecutionResult]. Compilation and runtime failures arrive as
// Success=false inside the result, not as an error return.
func (h *httpBackendAdapter) ExecuteCode(ctx context.Context, req models.ExecuteCodeRequest) (models.ExecutionResult, error) {
	var result models.ExecutionResult

	resp, err := h.request(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		SetResult(&result).
		Post("/execute-code")
	if err != nil {
		return models.ExecutionResult{}, fmt.Errorf("execute code request: %w: %w", ErrBackendUnreachable, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.ExecutionResult{}, err
	}

	return result, nil
}

// ReviewCode implements [BackendAdapter]. It POSTs code, language, and the
// optional problem context to POST /review-code and returns the decoded
// [models.ReviewFeedback].
func (h *httpBackendAdapter) ReviewCode(ctx context.Context, req models.ReviewCodeRequest) (models.ReviewFeedback, error) {
	var feedback models.ReviewFeedback

	resp, err := h.request(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		SetResult(&feedback).
		Post("/review-code")
	if err != nil {
		return models.ReviewFeedback{}, fmt.Errorf("review code request: %w: %w", ErrBackendUnreachable, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.ReviewFeedback{}, err
	}

	return feedback, nil
}
