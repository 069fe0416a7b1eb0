package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-cipher-lab/internal/validators"
	"github.com/MKhiriev/go-cipher-lab/models"
)

// CipherServiceWrapper defines middleware composition for CipherService.
// Implementations wrap an existing CipherService to add behavior such as
// logging or validating.
type CipherServiceWrapper interface {
	Wrap(CipherService) CipherService // returns a decorated CipherService applying additional behavior
}

// CipherValidationService checks requests before handing them to the
// wrapped [CipherService].
type CipherValidationService struct {
	inner     CipherService
	validator validators.Validator
}

func NewCipherValidationService() CipherServiceWrapper {
	return &CipherValidationService{
		validator: validators.NewCipherRequestValidator(),
	}
}

func (v *CipherValidationService) Transform(ctx context.Context, req models.TransformRequest) (models.TransformResult, error) {
	if err := v.validator.Validate(ctx, req); err != nil {
		return models.TransformResult{}, fmt.Errorf("error during transform request validation: %w", mapValidationError(err))
	}

	return v.inner.Transform(ctx, req)
}

func (v *CipherValidationService) Strength(ctx context.Context, req models.StrengthRequest) (int, error) {
	if err := v.validator.Validate(ctx, req); err != nil {
		return 0, fmt.Errorf("error during strength request validation: %w", mapValidationError(err))
	}

	return v.inner.Strength(ctx, req)
}

func (v *CipherValidationService) Methods(ctx context.Context) ([]models.MethodInfo, error) {
	return v.inner.Methods(ctx)
}

func (v *CipherValidationService) Wrap(wrapper CipherService) CipherService {
	v.inner = wrapper
	return v
}

// mapValidationError turns validator sentinels into service errors so that
// callers only need to know this package.
func mapValidationError(err error) error {
	switch {
	case errors.Is(err, validators.ErrUnknownMethod):
		return ErrUnknownMethod
	case errors.Is(err, validators.ErrInvalidMode):
		return ErrInvalidMode
	case errors.Is(err, validators.ErrInputTooLarge):
		return ErrInputTooLarge
	default:
		return fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}
}
