// Package validator provides struct-tag validation with readable messages.
package validator

import (
	"github.com/go-playground/validator/v10"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Validator defines the interface for validation operations
type Validator interface {
	ValidateStruct(s any) map[string]string
}

// validatorImpl implements the Validator interface
type validatorImpl struct {
	validate *validator.Validate
}

// NewValidator creates a new instance of the go-playground validator
func NewValidator() Validator {
	return &validatorImpl{
		validate: validator.New(),
	}
}

// ValidateStruct validates a struct and returns field-specific errors, or
// nil when the struct is valid.
func (v *validatorImpl) ValidateStruct(s any) map[string]string {
	err := v.validate.Struct(s)
	if err == nil {
		return nil
	}

	validationErrors := make(map[string]string)
	for _, fieldErr := range err.(validator.ValidationErrors) {
		fieldName := prettifyFieldName(fieldErr.Field())
		validationErrors[fieldErr.Field()] = formatValidationError(fieldErr, fieldName)
	}

	return validationErrors
}

// ValidateStruct is the package-level convenience form
func ValidateStruct(s any) map[string]string {
	return NewValidator().ValidateStruct(s)
}

// formatValidationError returns a descriptive message based on the validation tag
func formatValidationError(err validator.FieldError, fieldName string) string {
	switch err.Tag() {
	case "required":
		return fieldName + " is required"
	case "min":
		return fieldName + " must have at least " + err.Param() + " entries or characters"
	case "max":
		return fieldName + " must have at most " + err.Param() + " entries or characters"
	case "len":
		return fieldName + " must be exactly " + err.Param() + " characters long"
	case "numeric":
		return fieldName + " must be a numeric value"
	case "oneof":
		return fieldName + " must be one of the following: " + err.Param()
	default:
		return fieldName + " is invalid"
	}
}

// prettifyFieldName turns a camelCase or PascalCase field into a human-readable string
func prettifyFieldName(field string) string {
	var result []rune
	for i, r := range field {
		if i > 0 && r >= 'A' && r <= 'Z' {
			if field[i-1] >= 'a' && field[i-1] <= 'z' {
				result = append(result, ' ')
			}
		}
		result = append(result, r)
	}
	return cases.Title(language.Und, cases.NoLower).String(string(result))
}
