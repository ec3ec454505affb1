package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container for the web
// client. It aggregates all sub-configurations and is populated by merging
// values from environment variables, command-line flags, an optional JSON
// file, and built-in defaults.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings such as the display name and
	// the version string shown on rendered pages.
	App App `envPrefix:"APP_"`

	// Server holds network address and timeout settings for the inbound
	// HTTP server that renders pages.
	Server Server `envPrefix:"SERVER_"`

	// Backend holds the base URL and timeout settings for the outbound
	// API backend that performs problem generation, code execution, and
	// code review.
	Backend Backend `envPrefix:"BACKEND_"`

	// Limits holds per-client rate limiting settings applied to requests
	// that trigger outbound backend calls.
	Limits Limits `envPrefix:"LIMITS_"`

	// Sessions holds lifetime settings for the in-memory browser session
	// store.
	Sessions Sessions `envPrefix:"SESSIONS_"`

	// Workers holds configuration for background worker processes such as
	// the backend availability poller.
	Workers Workers `envPrefix:"WORKERS_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged below the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level presentation settings.
type App struct {
	// Name is the product name rendered in page titles and headers.
	// Env: APP_NAME
	Name string `env:"NAME"`

	// Version is the semantic version string of the running application
	// (e.g. "1.2.3"). Rendered in the page footer and the health payload.
	// Env: APP_VERSION
	Version string `env:"VERSION"`
}

// Server holds network and timeout settings for the inbound HTTP server.
type Server struct {
	// HTTPAddress is the TCP address on which the HTTP server listens,
	// in "host:port" format (e.g. "localhost:8501").
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout is the maximum duration allowed for a single inbound
	// request before the server cancels it. Must exceed the backend
	// request timeout so slow AI calls can complete.
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Backend holds connection settings for the outbound API backend.
type Backend struct {
	// BaseURL is the root URL of the API backend
	// (e.g. "http://localhost:5000"). A missing scheme defaults to http.
	// Env: BACKEND_URL
	BaseURL string `env:"URL"`

	// RequestTimeout is the maximum duration allowed for a single outbound
	// API call (problem generation, code execution, code review). AI-backed
	// operations are slow, so this is deliberately generous.
	// Env: BACKEND_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// HealthTimeout is the maximum duration allowed for a single health
	// probe. Probes must fail fast so page rendering never stalls on an
	// unreachable backend.
	// Env: BACKEND_HEALTH_TIMEOUT
	HealthTimeout time.Duration `env:"HEALTH_TIMEOUT"`
}

// Limits holds per-client rate limiting settings for backend-bound requests.
type Limits struct {
	// RequestsPerMinute is the sustained number of backend-bound requests
	// allowed per client IP per minute.
	// Env: LIMITS_REQUESTS_PER_MINUTE
	RequestsPerMinute int `env:"REQUESTS_PER_MINUTE"`

	// Burst is the number of backend-bound requests a client IP may issue
	// in a burst above the sustained rate.
	// Env: LIMITS_BURST
	Burst int `env:"BURST"`
}

// Sessions holds lifetime settings for the in-memory session store.
type Sessions struct {
	// TTL is how long an idle browser session (and the form state and
	// generated problem it carries) is retained before expiry.
	// Env: SESSIONS_TTL
	TTL time.Duration `env:"TTL"`

	// CleanupInterval is how often expired sessions are swept from memory.
	// Env: SESSIONS_CLEANUP_INTERVAL
	CleanupInterval time.Duration `env:"CLEANUP_INTERVAL"`
}

// Workers holds configuration for background worker processes.
type Workers struct {
	// HealthInterval is how often the backend availability poller probes
	// the backend health endpoint.
	// Env: WORKERS_HEALTH_INTERVAL
	HealthInterval time.Duration `env:"HEALTH_INTERVAL"`
}

// GetConfig loads, merges, and validates the web client configuration from
// all available sources. The first source to set a field wins:
//  1. Environment variables (after loading an optional .env file)
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//  4. Built-in defaults
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation.
func GetConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withDotenv().
		withEnv().
		withFlags().
		withJSON().
		withDefaults().
		build()
}
