package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrUnknownMethod = errors.New("unknown cipher method")
	ErrInvalidMode   = errors.New("invalid mode")
	ErrInputTooLarge = errors.New("input is too large")
)
