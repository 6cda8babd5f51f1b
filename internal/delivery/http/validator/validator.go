// Package validator wires go-playground/validator as the echo request validator.
package validator

import (
	"net/http"

	validate "github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

// CustomValidator adapts go-playground/validator to echo's Validator interface.
type CustomValidator struct {
	validator *validate.Validate
}

// New creates the request validator used by the echo server.
func New() *CustomValidator {
	return &CustomValidator{
		validator: validate.New(validate.WithRequiredStructEnabled()),
	}
}

// Validate checks the struct tags of a bound request DTO.
func (cv *CustomValidator) Validate(i any) error {
	if err := cv.validator.Struct(i); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	return nil
}
