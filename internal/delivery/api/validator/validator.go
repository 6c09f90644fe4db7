// Package validator adapts go-playground/validator to echo and to the domain error set.
package validator

import (
	"fmt"
	"math"
	"strings"

	domainerrors "rentql/internal/domain/errors"
	"rentql/internal/errors"

	"github.com/go-playground/validator/v10"
)

// CustomValidator implements echo.Validator.
type CustomValidator struct {
	validate *validator.Validate
}

// New creates a validator that reports json-style field names.
func New() *CustomValidator {
	validate := validator.New(validator.WithRequiredStructEnabled())
	// Registration only fails on an empty tag or a nil func.
	_ = validate.RegisterValidation("cents", hasCents)

	return &CustomValidator{validate: validate}
}

// hasCents accepts amounts with at most two decimal places, the scale of the money and area columns.
func hasCents(fl validator.FieldLevel) bool {
	scaled := fl.Field().Float() * 100

	return math.Abs(scaled-math.Round(scaled)) < 1e-6
}

// Validate checks the struct tags of i. Failures are reported as ErrValidationFailed with one detail per field.
func (cv *CustomValidator) Validate(i any) error {
	err := cv.validate.Struct(i)
	if err == nil {
		return nil
	}

	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return errors.Wrap(err, "validate input")
	}

	details := make([]string, 0, len(validationErrs))
	for _, fieldErr := range validationErrs {
		details = append(details, describe(fieldErr))
	}

	return domainerrors.ErrValidationFailed.WithDetails(strings.Join(details, "; "))
}

func describe(fieldErr validator.FieldError) string {
	field := lowerFirst(fieldErr.Field())
	switch fieldErr.Tag() {
	case "required":
		return field + " is required"
	case "email":
		return field + " must be a valid email"
	case "url":
		return field + " must be a valid URL"
	case "max":
		return fmt.Sprintf("%s must be at most %s", field, fieldErr.Param())
	case "gte":
		return fmt.Sprintf("%s must be greater than or equal to %s", field, fieldErr.Param())
	case "lt":
		return fmt.Sprintf("%s must be less than %s", field, fieldErr.Param())
	case "cents":
		return field + " must have at most 2 decimal places"
	case "latitude", "longitude":
		return fmt.Sprintf("%s must be a valid %s", field, fieldErr.Tag())
	default:
		return fmt.Sprintf("%s failed on %s", field, fieldErr.Tag())
	}
}

func lowerFirst(s string) string {
	if s == "" {
		return s
	}

	return strings.ToLower(s[:1]) + s[1:]
}
