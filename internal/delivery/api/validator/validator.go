// Package validator adapts go-playground/validator to Echo's Validator
// interface so handlers can call c.Validate on bound requests.
package validator

import (
	playground "github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

type echoValidator struct {
	validate *playground.Validate
}

// New creates the validator used by the Echo server.
func New() echo.Validator {
	return &echoValidator{
		validate: playground.New(),
	}
}

// Validate runs struct tag validation on the bound request.
func (v *echoValidator) Validate(i any) error {
	return v.validate.Struct(i)
}
