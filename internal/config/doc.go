// Package config provides configuration loading, merging, and validation.
//
// Configuration is assembled from multiple sources in the following priority
// order (later sources override earlier non-zero fields):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON config file
//
// Zero values are then replaced with defaults (version "dev", a history of
// 10 entries, 10s timeouts). [GetStructuredConfig] serves the terminal client
// and [ServerConfig] the HTTP server, which also needs a listen address.
package config
