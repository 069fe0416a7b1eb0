// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"time"
)

// StructuredConfig is the top-level configuration container. It is populated
// by merging values from environment variables, command-line flags, and an
// optional JSON file, then completed with defaults.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings such as the reported version and
	// the size of the in-memory history window.
	App App `envPrefix:"APP_"`

	// Server holds network address and timeout settings for the HTTP API.
	Server Server `envPrefix:"SERVER_"`

	// Adapter holds the address of a remote cipher server. When set, the
	// terminal client sends transforms there instead of running them locally.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Workers holds configuration for background workers.
	Workers Workers `envPrefix:"WORKERS_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values.
type App struct {
	// Version is the semantic version string of the running application.
	// Exposed via the /api/version/ endpoint.
	// Env: APP_VERSION
	Version string `env:"VERSION"`

	// HistoryLimit caps the rolling transform history. Zero selects
	// DefaultHistoryLimit; a negative value keeps every entry.
	// Env: APP_HISTORY_LIMIT
	HistoryLimit int `env:"HISTORY_LIMIT"`

	// LogFile is where the terminal client writes its logs.
	// Env: APP_LOG_FILE
	LogFile string `env:"LOG_FILE"`
}

// Server holds settings for the inbound HTTP transport.
type Server struct {
	// HTTPAddress is the TCP address the HTTP server listens on,
	// in "host:port" format (e.g. "0.0.0.0:8080").
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds reading a request and writing its response.
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Adapter holds settings for talking to a remote cipher server.
type Adapter struct {
	// HTTPAddress is the base address of the remote server
	// (e.g. "localhost:8080" or "http://cipher.example:8080").
	// Env: ADAPTER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout is the timeout of every outbound request.
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Workers holds configuration for background workers.
type Workers struct {
	// HistoryTTL is the maximum age of a history entry. Zero disables the
	// retention worker.
	// Env: WORKERS_HISTORY_TTL
	HistoryTTL time.Duration `env:"HISTORY_TTL"`

	// RetentionInterval is how often the retention worker runs.
	// Env: WORKERS_RETENTION_INTERVAL
	RetentionInterval time.Duration `env:"RETENTION_INTERVAL"`
}

// Defaults applied to zero values after merging.
const (
	DefaultVersion           = "dev"
	DefaultHistoryLimit      = 10
	DefaultRequestTimeout    = 10 * time.Second
	DefaultRetentionInterval = time.Minute
)

// GetStructuredConfig loads, merges, and validates the configuration from
// all available sources in the following priority order (later sources
// override non-zero fields of earlier ones):
//  1. Environment variables
//  2. Command-line flags (os.Args)
//  3. JSON file (path resolved from sources 1 and 2)
func GetStructuredConfig() (*StructuredConfig, error) {
	return load(os.Args[1:])
}

func load(args []string) (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags(args).
		withJSON().
		build()
}

// applyDefaults fills the zero values that have a sensible default.
func (cfg *StructuredConfig) applyDefaults() {
	if cfg.App.Version == "" {
		cfg.App.Version = DefaultVersion
	}
	if cfg.App.HistoryLimit == 0 {
		cfg.App.HistoryLimit = DefaultHistoryLimit
	}
	if cfg.Server.RequestTimeout == 0 {
		cfg.Server.RequestTimeout = DefaultRequestTimeout
	}
	if cfg.Adapter.RequestTimeout == 0 {
		cfg.Adapter.RequestTimeout = DefaultRequestTimeout
	}
	if cfg.Workers.RetentionInterval == 0 {
		cfg.Workers.RetentionInterval = DefaultRetentionInterval
	}
}
