package httpserver

import (
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"github.com/openmusic/openmusic-api/internal/core/apperrors"
)

// requestValidator enforces the `validate` tags on request bodies.
type requestValidator struct {
	validate *validator.Validate
}

func (v *requestValidator) Validate(i interface{}) error {
	if err := v.validate.Struct(i); err != nil {
		return fmt.Errorf("%w: %v", apperrors.ErrValidation, err)
	}
	return nil
}

// bindAndValidate decodes the request body into req and validates it.
func bindAndValidate(c echo.Context, req interface{}) error {
	if err := (&echo.DefaultBinder{}).BindBody(c, req); err != nil {
		return fmt.Errorf("%w: invalid request body", apperrors.ErrValidation)
	}
	return c.Validate(req)
}
