package config

import "errors"

// Validation errors returned when required configuration groups are
// incomplete or invalid.
var (
	// ErrInvalidServerConfigs indicates a missing HTTP listen address.
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
	// ErrInvalidTimeoutConfigs indicates a negative request timeout.
	ErrInvalidTimeoutConfigs = errors.New("invalid timeout configuration")
	// ErrInvalidWorkerConfigs indicates negative worker durations.
	ErrInvalidWorkerConfigs = errors.New("invalid worker configuration")
)
