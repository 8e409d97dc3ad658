// Package validator adapts go-playground/validator to Echo's Validator
// interface.
package validator

import (
	domainerrors "pssports/internal/domain/errors"

	playground "github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

type echoValidator struct {
	validate *playground.Validate
}

// New returns an echo.Validator backed by struct-tag validation.
func New() echo.Validator {
	return &echoValidator{validate: playground.New()}
}

// Validate runs struct-tag validation. Failures surface to the client as a
// single generic validation error; field detail stays in the wrapped cause
// for server-side logs.
func (v *echoValidator) Validate(i any) error {
	if err := v.validate.Struct(i); err != nil {
		return domainerrors.ErrValidationFailed.WrapMessage(err.Error())
	}

	return nil
}
