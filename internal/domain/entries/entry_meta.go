package entries

import (
	"errors"
	"fmt"
	"time"

	"github.com/AstraLuma/catfind/internal/pkg/validators"
	"github.com/go-playground/validator/v10"
)

// EntryMeta entity
type EntryMeta struct {
	ID          string    `validate:"required,uuid4"`
	Domain      string    `validate:"required,objectTypePart"`
	Role        string    `validate:"required,objectTypePart"`
	Name        string    `validate:"required"`
	Dispname    string    `validate:"required"`
	URL         string    `validate:"required,url"`
	ProjectID   string    `validate:"required,uuid4"`
	LastIndexed time.Time `validate:"required"`

	// ProjectName is denormalized from the owning project when entries are
	// listed for presentation. It is not persisted on the entry itself.
	ProjectName string
}

// Kind returns the full object type, e.g. "py:function".
func (e *EntryMeta) Kind() string {
	return fmt.Sprintf("%s:%s", e.Domain, e.Role)
}

// DisplayName returns the human-readable name. Sphinx stores "-" when the
// display name equals the object name.
func (e *EntryMeta) DisplayName() string {
	if e.Dispname == "-" {
		return e.Name
	}
	return e.Dispname
}

func (e *EntryMeta) String() string {
	return e.DisplayName()
}

// Validate for validating EntryMeta struct
func (e *EntryMeta) Validate() error {
	validate := validator.New()

	if err := validate.RegisterValidation("objectTypePart", validators.ObjectTypePart); err != nil {
		return fmt.Errorf("failed to register custom validator: %w", err)
	}

	err := validate.Struct(e)
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
