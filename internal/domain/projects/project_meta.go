package projects

import (
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
)

// ProjectMeta entity. InvURL is the canonical inventory URL after following
// redirects; it is the project's identity.
type ProjectMeta struct {
	ID          string `validate:"required,uuid4"`
	InvURL      string `validate:"required,url"`
	Name        string
	Version     string
	LastIndexed *time.Time
}

// Validate for validating ProjectMeta struct
func (p *ProjectMeta) Validate() error {
	validate := validator.New()

	err := validate.Struct(p)
	if err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) {
			var messages []string
			for _, fieldErr := range validationErrors {
				messages = append(messages, fmt.Sprintf("Field: %s, Tag: %s", fieldErr.Field(), fieldErr.Tag()))
			}
			return fmt.Errorf("validation failed: %v", messages)
		}
		return fmt.Errorf("validation error: %w", err)
	}

	return nil
}
