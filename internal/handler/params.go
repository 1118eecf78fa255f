package handler

import (
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

// ContextUserIDKey is the echo context key holding the authenticated user ID.
const ContextUserIDKey = "userID"

func userIDFrom(c echo.Context) (string, bool) {
	id, ok := c.Get(ContextUserIDKey).(string)
	return id, ok && id != ""
}

// RequestValidator adapts go-playground/validator to echo's Validator hook.
type RequestValidator struct {
	validate *validator.Validate
}

func NewRequestValidator() *RequestValidator {
	return &RequestValidator{validate: validator.New(validator.WithRequiredStructEnabled())}
}

func (v *RequestValidator) Validate(i interface{}) error {
	return v.validate.Struct(i)
}

// bindAndValidate binds the request body into req and runs struct
// validation when a validator is registered on the echo instance.
func bindAndValidate(c echo.Context, req interface{}) error {
	if err := c.Bind(req); err != nil {
		return err
	}
	if c.Echo().Validator == nil {
		return nil
	}
	return c.Validate(req)
}
