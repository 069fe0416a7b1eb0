package validators

import (
	"context"

	"github.com/MKhiriev/go-cipher-lab/internal/cipher"
	"github.com/MKhiriev/go-cipher-lab/models"
)

// Field name constants used to restrict validation to a subset of fields.
const (
	// FieldMethod targets the cipher method identifier.
	FieldMethod = "method"

	// FieldMode targets the encrypt/decrypt direction. An empty mode is
	// accepted and treated as encrypt.
	FieldMode = "mode"

	// FieldInput targets the text to transform or score.
	FieldInput = "input"
)

// MaxInputLength bounds the number of bytes accepted for a single
// transform or strength request.
const MaxInputLength = 1 << 20

// CipherRequestValidator implements [Validator] for transform and strength
// requests.
type CipherRequestValidator struct {
	maxInput int
}

// NewCipherRequestValidator returns a [Validator] using [MaxInputLength].
func NewCipherRequestValidator() Validator {
	return &CipherRequestValidator{maxInput: MaxInputLength}
}

// Validate dispatches on the dynamic type of obj. Supported types are
// models.TransformRequest and models.StrengthRequest, as values or pointers.
func (v *CipherRequestValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.TransformRequest:
		return v.validateTransformRequest(ctx, value, fields...)
	case *models.TransformRequest:
		return v.validateTransformRequest(ctx, *value, fields...)

	case models.StrengthRequest:
		return v.validateStrengthRequest(ctx, value, fields...)
	case *models.StrengthRequest:
		return v.validateStrengthRequest(ctx, *value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *CipherRequestValidator) validateTransformRequest(_ context.Context, req models.TransformRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldMethod, FieldMode, FieldInput}
	}

	for _, f := range fields {
		switch f {
		case FieldMethod:
			if !cipher.IsKnown(req.Method) {
				return ErrUnknownMethod
			}
		case FieldMode:
			if !isValidMode(req.Mode) {
				return ErrInvalidMode
			}
		case FieldInput:
			if !v.inputFits(req.Input) || !v.inputFits(req.Key) {
				return ErrInputTooLarge
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// validateStrengthRequest accepts unknown methods: they simply earn no
// method bonus.
func (v *CipherRequestValidator) validateStrengthRequest(_ context.Context, req models.StrengthRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldInput}
	}

	for _, f := range fields {
		switch f {
		case FieldMethod:
			if !cipher.IsKnown(req.Method) {
				return ErrUnknownMethod
			}
		case FieldInput:
			if !v.inputFits(req.Text) {
				return ErrInputTooLarge
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *CipherRequestValidator) inputFits(s string) bool {
	return len(s) <= v.maxInput
}

func isValidMode(m models.Mode) bool {
	return m == "" || m == models.Encrypt || m == models.Decrypt
}

