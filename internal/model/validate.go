package model

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// ValidationError describes a field that failed validation. It is recoverable:
// the caller should correct the input and retry.
type ValidationError struct {
	Field string
	Rule  string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid field %s: failed %s", e.Field, e.Rule)
}

// Validate checks the fields against their constraints: name is required, the
// date fields must be YYYY-MM-DD or empty.
func (f Fields) Validate() error {
	err := validate.Struct(f)
	if err == nil {
		return nil
	}

	if errs, ok := err.(validator.ValidationErrors); ok && len(errs) > 0 {
		return &ValidationError{Field: errs[0].Field(), Rule: errs[0].Tag()}
	}
	return fmt.Errorf("validating fields: %w", err)
}
