// Package validator adapts go-playground/validator to Echo's Validator
// interface so handlers can validate bound input structs.
package validator

import (
	domainerrors "poison/internal/domain/errors"

	playground "github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
)

// CustomValidator wraps a validator instance for Echo.
type CustomValidator struct {
	validate *playground.Validate
}

// New creates a validator configured for struct tag validation.
func New() *CustomValidator {
	return &CustomValidator{validate: playground.New(playground.WithRequiredStructEnabled())}
}

// Validate checks the struct's validation tags and converts failures into a
// single field-level error the error middleware can map to a 400 response.
func (v *CustomValidator) Validate(i any) error {
	if err := v.validate.Struct(i); err != nil {
		var invalid *playground.InvalidValidationError
		if errors.As(err, &invalid) {
			return errors.Wrap(err, "input is not validatable")
		}

		var fieldErrs playground.ValidationErrors
		if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
			first := fieldErrs[0]

			return domainerrors.ErrValidationFailed.WithDetails(
				"field " + first.Field() + " failed on rule " + first.Tag())
		}

		return errors.WithStack(err)
	}

	return nil
}
