package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig mirrors StructuredConfig in the layout of the JSON
// config file. Durations accept Go duration strings ("30s") or nanoseconds.
type StructuredJSONConfig struct {
	App    jsonApp    `json:"app,omitempty"`
	Server jsonServer `json:"server,omitempty"`
}

type jsonApp struct {
	Version  string `json:"version"`
	LogLevel string `json:"log_level"`
}

type jsonServer struct {
	HTTPAddress     string   `json:"http_address"`
	RequestTimeout  Duration `json:"request_timeout"`
	ShutdownTimeout Duration `json:"shutdown_timeout"`
	GRPCDisabled    bool     `json:"grpc_disabled"`
}

func (c StructuredJSONConfig) structured() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			Version:  c.App.Version,
			LogLevel: c.App.LogLevel,
		},
		Server: Server{
			HTTPAddress:     c.Server.HTTPAddress,
			RequestTimeout:  time.Duration(c.Server.RequestTimeout),
			ShutdownTimeout: time.Duration(c.Server.ShutdownTimeout),
			GRPCDisabled:    c.Server.GRPCDisabled,
		},
	}
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	data, err := os.ReadFile(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}

	var jsonCfg StructuredJSONConfig
	if err = json.Unmarshal(data, &jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	return jsonCfg.structured(), nil
}

// Duration is a time.Duration read from JSON.
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	if string(b) == "null" {
		return nil
	}

	var s string
	if err := json.Unmarshal(b, &s); err == nil {
		parsed, err := time.ParseDuration(s)
		if err != nil {
			return fmt.Errorf("invalid duration %q: %w", s, err)
		}
		*d = Duration(parsed)
		return nil
	}

	var ns int64
	if err := json.Unmarshal(b, &ns); err != nil {
		return fmt.Errorf("duration must be a string or nanoseconds: %w", err)
	}
	*d = Duration(ns)

	return nil
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
