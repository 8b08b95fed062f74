package application

import (
	"errors"
	"fmt"
)

// Sentinel errors for common conditions
var (
	ErrPathConflict = errors.New("path conflict")
	ErrTemplate     = errors.New("template error")
)

// ValidationError represents a validation failure with details
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// PathConflictError reports a path that exists on disk with the wrong shape:
// an expected directory that is a file, or the reverse. The walk aborts; no
// rollback of prior actions.
type PathConflictError struct {
	Path   string
	Reason string
}

func (e *PathConflictError) Error() string {
	return fmt.Sprintf("path conflict at %s: %s", e.Path, e.Reason)
}

func (e *PathConflictError) Is(target error) bool {
	return target == ErrPathConflict
}

// TemplateError reports a failed render of a configured template.
type TemplateError struct {
	Template string
	Err      error
}

func (e *TemplateError) Error() string {
	return fmt.Sprintf("template %q: %v", e.Template, e.Err)
}

func (e *TemplateError) Unwrap() error {
	return e.Err
}

func (e *TemplateError) Is(target error) bool {
	return target == ErrTemplate
}

// ValidateRequired checks if a string field is non-empty.
// Returns a ValidationError if the field is empty.
func ValidateRequired(fieldName, value string) error {
	if value == "" {
		return &ValidationError{
			Field:   fieldName,
			Message: fmt.Sprintf("%s is required", fieldName),
		}
	}
	return nil
}
