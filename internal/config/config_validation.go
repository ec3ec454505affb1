package config

// validate checks that the final merged [StructuredConfig] satisfies all
// invariants the web client relies on at startup.
//
// Every group carries a built-in default, so validation failures here mean
// an explicit source supplied a broken value (e.g. "-rpm 0").
//
// Returns nil if the configuration is valid, or a sentinel error from
// errors.go naming the broken group otherwise.
func (cfg *StructuredConfig) validate() error {
	if cfg.Server.HTTPAddress == "" || cfg.Server.RequestTimeout <= 0 {
		return ErrInvalidServerConfigs
	}

	if cfg.Backend.BaseURL == "" || cfg.Backend.RequestTimeout <= 0 || cfg.Backend.HealthTimeout <= 0 {
		return ErrInvalidBackendConfigs
	}

	if cfg.Limits.RequestsPerMinute <= 0 || cfg.Limits.Burst <= 0 {
		return ErrInvalidLimitsConfigs
	}

	if cfg.Sessions.TTL <= 0 || cfg.Sessions.CleanupInterval <= 0 {
		return ErrInvalidSessionConfigs
	}

	if cfg.Workers.HealthInterval <= 0 {
		return ErrInvalidWorkerConfigs
	}

	return nil
}
