// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"flag"
	"os"
	"time"

	"github.com/MKhiriev/go-newsletter/internal/bootstrap"
)

// Defaults applied before any other source is read.
const (
	DefaultVersion        = "N/A"
	DefaultLogLevel       = "debug"
	DefaultRequestTimeout = 30 * time.Second
)

// StructuredConfig is the top-level configuration of the newsletter server.
// It is populated by merging defaults, environment variables, command-line
// flags and an optional JSON file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings.
	App App `envPrefix:"APP_"`

	// Server holds the bind address and timeouts of the inbound transport.
	Server Server `envPrefix:"SERVER_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values.
type App struct {
	// Version is the version string reported by /api/version.
	// Env: APP_VERSION
	Version string `env:"VERSION"`

	// LogLevel is a zerolog level name ("debug", "info", ...).
	// Env: APP_LOG_LEVEL
	LogLevel string `env:"LOG_LEVEL"`
}

// Server holds network and timeout settings for the inbound transport layer.
type Server struct {
	// HTTPAddress is the "host:port" the server socket is bound to. Port 0
	// lets the operating system choose a free port.
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds reading a request and writing its response.
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// ShutdownTimeout bounds graceful shutdown after a stop signal.
	// Env: SERVER_SHUTDOWN_TIMEOUT
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT"`

	// GRPCDisabled turns off the gRPC health service that is otherwise
	// served on the same socket as HTTP.
	// Env: SERVER_GRPC_DISABLED
	GRPCDisabled bool `env:"GRPC_DISABLED"`
}

// Default returns the configuration used when no source sets a value.
func Default() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			Version:  DefaultVersion,
			LogLevel: DefaultLogLevel,
		},
		Server: Server{
			HTTPAddress:     bootstrap.DefaultBindAddress,
			RequestTimeout:  DefaultRequestTimeout,
			ShutdownTimeout: bootstrap.DefaultShutdownTimeout,
		},
	}
}

// GetStructuredConfig loads, merges, and validates the configuration from
// all sources in the following priority order (later non-zero fields win):
//  1. Defaults
//  2. Environment variables
//  3. Command-line flags
//  4. JSON file (path resolved from sources 2 and 3)
func GetStructuredConfig() (*StructuredConfig, error) {
	return LoadStructuredConfig(flag.CommandLine, os.Args[1:])
}

// LoadStructuredConfig is GetStructuredConfig with flags parsed from args on
// fs instead of the process command line.
func LoadStructuredConfig(fs *flag.FlagSet, args []string) (*StructuredConfig, error) {
	b := newConfigBuilder()
	b.flagSet = fs
	b.args = args

	return b.
		withDefaults().
		withEnv().
		withFlags().
		withJSON().
		build()
}
