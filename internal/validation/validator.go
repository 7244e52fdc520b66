package validation

import (
	"encoding/json"
	"reflect"
	"strings"

	"expense-tracker/internal/models"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

// MaxBudgetDelta bounds a single adjustment in either direction
var MaxBudgetDelta = decimal.NewFromInt(1_000_000_000)

const (
	maxDeltaDigits   = 10
	maxDeltaInputLen = 32
)

// Validator wraps the go-playground validator with custom rules and error formatting
type Validator struct {
	validate *validator.Validate
}

// GetValidate returns the underlying validator.Validate instance for use with Echo
func (v *Validator) GetValidate() *validator.Validate {
	return v.validate
}

var instance *Validator

// GetValidator returns the singleton validator instance
func GetValidator() *Validator {
	if instance == nil {
		instance = NewValidator()
	}
	return instance
}

func NewValidator() *Validator {
	v := validator.New()

	_ = v.RegisterValidation("budget_delta", validateBudgetDelta)
	_ = v.RegisterValidation("expense_window", validateExpenseWindow)

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			name = strings.SplitN(fld.Tag.Get("query"), ",", 2)[0]
		}
		if name == "-" {
			return ""
		}
		return name
	})

	return &Validator{validate: v}
}

// validateBudgetDelta accepts whole numbers within MaxBudgetDelta, given as a JSON number or string
func validateBudgetDelta(fl validator.FieldLevel) bool {
	var raw string
	switch value := fl.Field().Interface().(type) {
	case json.Number:
		raw = value.String()
	case string:
		raw = value
	default:
		return false
	}

	raw = strings.TrimSpace(raw)
	if len(raw) > maxDeltaInputLen {
		return false
	}
	delta, err := decimal.NewFromString(raw)
	if err != nil {
		return false
	}
	// compare digit counts first so huge exponents never get rescaled
	if int64(delta.NumDigits())+int64(delta.Exponent()) > maxDeltaDigits {
		return false
	}
	if delta.IsZero() {
		return true
	}
	if !delta.IsInteger() {
		return false
	}
	return delta.Abs().LessThanOrEqual(MaxBudgetDelta)
}

func validateExpenseWindow(fl validator.FieldLevel) bool {
	return models.IsValidWindow(strings.ToLower(fl.Field().String()))
}

// FormatErrors turns validator errors into "field: reason" lines
func FormatErrors(err error) []string {
	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return []string{err.Error()}
	}

	details := make([]string, 0, len(validationErrors))
	for _, fe := range validationErrors {
		details = append(details, fe.Field()+": "+describe(fe))
	}
	return details
}

func describe(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "budget_delta":
		return "must be a whole number between -1000000000 and 1000000000"
	case "expense_window":
		return "must be one of daily, monthly, yearly, all"
	case "uuid":
		return "must be a valid UUID"
	case "email":
		return "must be a valid email address"
	case "min":
		return "must be at least " + fe.Param()
	case "max":
		return "must be at most " + fe.Param()
	default:
		return "failed " + fe.Tag() + " validation"
	}
}
