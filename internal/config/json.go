package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig mirrors [StructuredConfig] for JSON decoding, using
// [Duration] so timeouts can be written as strings like "30s" or "2h".
type StructuredJSONConfig struct {
	App struct {
		Name    string `json:"name"`
		Version string `json:"version"`
	} `json:"app,omitempty"`

	Server struct {
		HTTPAddress    string   `json:"http_address"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"server,omitempty"`

	Backend struct {
		BaseURL        string   `json:"url"`
		RequestTimeout Duration `json:"request_timeout"`
		HealthTimeout  Duration `json:"health_timeout"`
	} `json:"backend,omitempty"`

	Limits struct {
		RequestsPerMinute int `json:"requests_per_minute"`
		Burst             int `json:"burst"`
	} `json:"limits,omitempty"`

	Sessions struct {
		TTL             Duration `json:"ttl"`
		CleanupInterval Duration `json:"cleanup_interval"`
	} `json:"sessions,omitempty"`

	Workers struct {
		HealthInterval Duration `json:"health_interval"`
	} `json:"workers,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		App: App{
			Name:    jsonCfg.App.Name,
			Version: jsonCfg.App.Version,
		},
		Server: Server{
			HTTPAddress:    jsonCfg.Server.HTTPAddress,
			RequestTimeout: time.Duration(jsonCfg.Server.RequestTimeout),
		},
		Backend: Backend{
			BaseURL:        jsonCfg.Backend.BaseURL,
			RequestTimeout: time.Duration(jsonCfg.Backend.RequestTimeout),
			HealthTimeout:  time.Duration(jsonCfg.Backend.HealthTimeout),
		},
		Limits: Limits{
			RequestsPerMinute: jsonCfg.Limits.RequestsPerMinute,
			Burst:             jsonCfg.Limits.Burst,
		},
		Sessions: Sessions{
			TTL:             time.Duration(jsonCfg.Sessions.TTL),
			CleanupInterval: time.Duration(jsonCfg.Sessions.CleanupInterval),
		},
		Workers: Workers{
			HealthInterval: time.Duration(jsonCfg.Workers.HealthInterval),
		},
		JSONFilePath: "",
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling from strings like "1h", "30s"
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
