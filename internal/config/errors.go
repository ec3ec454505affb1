package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidServerConfigs indicates invalid inbound server settings
	// (for example, missing HTTP address or a non-positive request timeout).
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
	// ErrInvalidBackendConfigs indicates invalid backend settings
	// (for example, empty base URL or non-positive timeouts).
	ErrInvalidBackendConfigs = errors.New("invalid backend configuration")
	// ErrInvalidLimitsConfigs indicates invalid rate limiting settings
	// (for example, a non-positive request rate or burst size).
	ErrInvalidLimitsConfigs = errors.New("invalid rate limit configuration")
	// ErrInvalidSessionConfigs indicates invalid session store settings
	// (for example, a non-positive TTL or cleanup interval).
	ErrInvalidSessionConfigs = errors.New("invalid session configuration")
	// ErrInvalidWorkerConfigs indicates invalid background worker settings
	// (for example, a non-positive health poll interval).
	ErrInvalidWorkerConfigs = errors.New("invalid worker configuration")
)
