package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")

	ErrUnknownMethod = errors.New("unknown cipher method")
	ErrInvalidMode   = errors.New("invalid mode")
	ErrInputTooLarge = errors.New("input is too large")

	ErrRecordingHistory = errors.New("error recording history")

	ErrVersionIsNotSpecified = errors.New("version is not specified")
)
