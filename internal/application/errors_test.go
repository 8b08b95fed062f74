package application

import (
	"errors"
	"fmt"
	"testing"
)

func TestValidateRequired(t *testing.T) {
	if err := ValidateRequired("name", "value"); err != nil {
		t.Errorf("unexpected error for a set field: %v", err)
	}

	err := ValidateRequired("name", "")
	var valErr *ValidationError
	if !errors.As(err, &valErr) {
		t.Fatalf("expected ValidationError, got %T", err)
	}
	if valErr.Field != "name" {
		t.Errorf("expected field name, got %s", valErr.Field)
	}
}

func TestPathConflictError_MatchesSentinel(t *testing.T) {
	err := &PathConflictError{Path: "/vault/00 Home", Reason: "expected a directory, found a file"}

	if !errors.Is(err, ErrPathConflict) {
		t.Error("PathConflictError does not match ErrPathConflict")
	}
	if errors.Is(err, ErrTemplate) {
		t.Error("PathConflictError matches the wrong sentinel")
	}

	wrapped := fmt.Errorf("planning: %w", err)
	if !errors.Is(wrapped, ErrPathConflict) {
		t.Error("wrapped PathConflictError lost its sentinel")
	}
}

func TestTemplateError_WrapsCause(t *testing.T) {
	cause := errors.New("unclosed tag")
	err := &TemplateError{Template: "{{bad", Err: cause}

	if !errors.Is(err, ErrTemplate) {
		t.Error("TemplateError does not match ErrTemplate")
	}
	if !errors.Is(err, cause) {
		t.Error("TemplateError does not unwrap to its cause")
	}
}
