package validator

import (
	"strings"

	"github.com/go-playground/validator/v10"
)

type CustomValidator struct {
	validator *validator.Validate
}

func NewValidator() *CustomValidator {
	return &CustomValidator{
		validator: validator.New(),
	}
}

func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}

// FormatValidationErrors turns validator errors into per-field
// user-facing messages keyed by lowercased field name.
func (cv *CustomValidator) FormatValidationErrors(err error) map[string]string {
	errors := make(map[string]string)

	if validationErrors, ok := err.(validator.ValidationErrors); ok {
		for _, e := range validationErrors {
			field := strings.ToLower(e.Field())
			switch e.Tag() {
			case "required":
				errors[field] = field + " is required"
			case "email":
				errors[field] = field + " must be a valid email address"
			case "min":
				errors[field] = field + " must have at least " + e.Param() + " characters or entries"
			case "max":
				errors[field] = field + " must have at most " + e.Param() + " characters or entries"
			default:
				errors[field] = field + " is invalid"
			}
		}
	}

	return errors
}

// FirstError flattens validation errors into a single message suitable
// for a flash banner on a redirect back to the form.
func (cv *CustomValidator) FirstError(err error) string {
	if validationErrors, ok := err.(validator.ValidationErrors); ok && len(validationErrors) > 0 {
		msgs := cv.FormatValidationErrors(err)
		field := strings.ToLower(validationErrors[0].Field())
		if msg, ok := msgs[field]; ok {
			return msg
		}
	}
	return "Invalid input"
}
