package handlers

import (
	"expense-tracker/internal/validation"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

// requestValidator lets c.Validate apply the budget_delta and expense_window rules
type requestValidator struct {
	rules *validator.Validate
}

func NewValidator() echo.Validator {
	return requestValidator{rules: validation.GetValidator().GetValidate()}
}

func (v requestValidator) Validate(i interface{}) error {
	return v.rules.Struct(i)
}
