// Package validator adapts go-playground/validator to echo's Validator
// interface.
package validator

import (
	domainerrors "mercado/internal/domain/errors"

	"github.com/go-playground/validator/v10"
)

// EchoValidator validates bound request structs by their validate tags.
type EchoValidator struct {
	validate *validator.Validate
}

// New creates the validator used by the echo server.
func New() *EchoValidator {
	return &EchoValidator{validate: validator.New()}
}

// Validate implements echo.Validator. Failures surface as the unified
// validation error so the error middleware renders them consistently.
func (v *EchoValidator) Validate(i any) error {
	if err := v.validate.Struct(i); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails(err.Error())
	}

	return nil
}
