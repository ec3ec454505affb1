package adapter

import "errors"

// Sentinel errors for backend responses. mapHTTPError translates HTTP status
// codes into these values; ErrBackendUnreachable marks transport-level
// failures where no response arrived at all.
var (
	ErrBadRequest          = errors.New("backend rejected request")
	ErrNotFound            = errors.New("backend endpoint not found")
	ErrTooManyRequests     = errors.New("backend rate limit exceeded")
	ErrInternalServerError = errors.New("backend internal error")
	ErrBadGateway          = errors.New("backend bad gateway")
	ErrServiceUnavailable  = errors.New("backend unavailable")
	ErrBackendUnreachable  = errors.New("backend unreachable")
)
