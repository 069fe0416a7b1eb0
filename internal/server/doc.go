// Package server runs the cipher HTTP API.
//
// It owns the listener lifecycle: startup, waiting for SIGINT, SIGTERM or
// SIGQUIT, and graceful shutdown of in-flight requests.
package server
