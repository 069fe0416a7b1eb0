package adapter

import "errors"

// Transport errors mapped from HTTP status codes.
var (
	ErrBadRequest          = errors.New("bad request")
	ErrNotFound            = errors.New("not found")
	ErrInternalServerError = errors.New("internal server error")
	ErrServerUnavailable   = errors.New("server unavailable")

	// ErrEmptyAddress is returned by [NewHTTPServerAdapter] when no remote
	// address is configured.
	ErrEmptyAddress = errors.New("empty server address")
)
