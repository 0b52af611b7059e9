// Package validator adapts go-playground/validator to echo's Validator hook.
package validator

import (
	playground "github.com/go-playground/validator/v10"

	domainerrors "imobi/internal/domain/errors"
)

// EchoValidator validates bound request payloads via struct tags.
type EchoValidator struct {
	validate *playground.Validate
}

// New builds the validator echo calls through c.Validate.
func New() *EchoValidator {
	return &EchoValidator{
		validate: playground.New(playground.WithRequiredStructEnabled()),
	}
}

// Validate checks the struct tags and surfaces failures as the domain
// validation error so the error middleware shapes the response.
func (v *EchoValidator) Validate(i any) error {
	if err := v.validate.Struct(i); err != nil {
		return domainerrors.ErrValidationFailed.WrapMessage(err.Error())
	}

	return nil
}
