// Package validators contains custom validator/v10 validation functions
// shared by domain entities.
package validators

import (
	"strings"

	"github.com/go-playground/validator/v10"
)

// ObjectTypePart validates one half of a Sphinx object type ("domain:role").
// Each part must be non-empty and free of whitespace and colons, so the two
// can be rejoined unambiguously.
func ObjectTypePart(fl validator.FieldLevel) bool {
	part := fl.Field().String()
	if part == "" {
		return false
	}
	if strings.ContainsAny(part, ": \t") {
		return false
	}
	return true
}
