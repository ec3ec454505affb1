package config

import (
	"errors"
	"fmt"
	"time"

	"dario.cat/mergo"
)

type configBuilder struct {
	configs []*StructuredConfig
	err     error
}

func newConfigBuilder() *configBuilder {
	return &configBuilder{
		configs: make([]*StructuredConfig, 0, 4),
	}
}

// build merges all collected configs in order. mergo fills only fields still
// unset, so configs appended earlier take priority over later ones.
func (b *configBuilder) build() (*StructuredConfig, error) {
	if b.err != nil {
		return nil, fmt.Errorf("error occured during building config: %w", b.err)
	}

	config := new(StructuredConfig)
	for _, cfg := range b.configs {
		if err := mergo.Merge(config, cfg); err != nil {
			return nil, fmt.Errorf("error merging configs: %w", err)
		}
	}

	return config, config.validate()
}

// withDotenv loads an optional .env file into the process environment before
// the env layer runs. Variables already present in the environment win.
func (b *configBuilder) withDotenv() *configBuilder {
	if err := loadDotenv(); err != nil {
		b.err = errors.Join(b.err, err)
	}

	return b
}

func (b *configBuilder) withEnv() *configBuilder {
	envCfg := &StructuredConfig{}
	if err := parseEnv(envCfg); err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	b.configs = append(b.configs, envCfg)
	return b
}

func (b *configBuilder) withFlags() *configBuilder {
	flags := ParseFlags()

	b.configs = append(b.configs, flags)
	return b
}

func (b *configBuilder) withJSON() *configBuilder {
	var jsonPath string
	isJSONSpecified := false

	for _, cfg := range b.configs {
		if cfg.JSONFilePath != "" {
			isJSONSpecified = true
			jsonPath = cfg.JSONFilePath
		}
	}

	if isJSONSpecified {
		jsonCfg, err := parseJSON(jsonPath)
		if err != nil {
			b.err = errors.Join(b.err, err)
			return b
		}
		b.configs = append(b.configs, jsonCfg)
	}

	return b
}

// withDefaults appends the built-in defaults last, so they fill only the
// fields no other source has set.
func (b *configBuilder) withDefaults() *configBuilder {
	b.configs = append(b.configs, defaultConfig())

	return b
}

// defaultConfig returns the built-in defaults: a page server on
// localhost:8501 talking to an API backend on localhost:5000.
func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			Name:    "RapoZCode",
			Version: "dev",
		},
		Server: Server{
			HTTPAddress:    "localhost:8501",
			RequestTimeout: 60 * time.Second,
		},
		Backend: Backend{
			BaseURL:        "http://localhost:5000",
			RequestTimeout: 30 * time.Second,
			HealthTimeout:  5 * time.Second,
		},
		Limits: Limits{
			RequestsPerMinute: 60,
			Burst:             10,
		},
		Sessions: Sessions{
			TTL:             2 * time.Hour,
			CleanupInterval: 5 * time.Minute,
		},
		Workers: Workers{
			HealthInterval: 30 * time.Second,
		},
	}
}
