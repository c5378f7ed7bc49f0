// Package validator adapts go-playground/validator to echo's Validator
// interface so request DTOs are checked at the boundary before reaching
// the use cases.
package validator

import (
	playground "github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	domainerrors "stash/internal/domain/errors"
)

type echoValidator struct {
	validate *playground.Validate
}

// New builds the echo.Validator used by the HTTP server.
func New() echo.Validator {
	return &echoValidator{
		validate: playground.New(playground.WithRequiredStructEnabled()),
	}
}

// Validate runs struct-tag validation and maps failures to the
// application's 400 error kind, keeping field details for the response.
func (v *echoValidator) Validate(i any) error {
	if err := v.validate.Struct(i); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails(err.Error())
	}

	return nil
}
