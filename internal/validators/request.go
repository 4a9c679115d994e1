package validators

import (
	"context"
	"errors"
	"fmt"

	"github.com/avetikov/go-places-api/internal/logger"
	"github.com/go-playground/validator/v10"
)

// RequestValidator validates decoded request payloads against their
// struct-tag rules ("validate" tags on the request DTOs).
type RequestValidator struct {
	validate *validator.Validate
	logger   *logger.Logger
}

// NewRequestValidator constructs a [RequestValidator] ready for use.
func NewRequestValidator(logger *logger.Logger) *RequestValidator {
	logger.Debug().Msg("creating request validator")
	return &RequestValidator{
		validate: validator.New(validator.WithRequiredStructEnabled()),
		logger:   logger,
	}
}

// Validate implements [Validator]. Tag violations are wrapped in
// [ErrValidation] with the offending fields listed; a non-struct input is
// an invalid use of the validator and also surfaces as [ErrValidation].
func (v *RequestValidator) Validate(ctx context.Context, input any) error {
	log := logger.FromContext(ctx)

	if err := v.validate.StructCtx(ctx, input); err != nil {
		var invalid *validator.InvalidValidationError
		if errors.As(err, &invalid) {
			log.Err(err).Str("func", "*RequestValidator.Validate").Msg("input is not a validatable struct")
			return fmt.Errorf("%w: %s", ErrValidation, invalid.Error())
		}

		log.Debug().Err(err).Str("func", "*RequestValidator.Validate").Msg("request payload failed validation")
		return fmt.Errorf("%w: %s", ErrValidation, err.Error())
	}

	return nil
}
