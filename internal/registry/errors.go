// Where: cli/internal/registry/errors.go
// What: Error kinds returned by registry operations.
// Why: Let callers tell validation, duplicate, and missing-name failures apart.
package registry

import (
	"errors"
	"fmt"
)

var (
	ErrValidation    = errors.New("validation failed")
	ErrDuplicateName = errors.New("duplicate name")
	ErrNotFound      = errors.New("not found")
)

// ValidationError reports a missing or malformed field.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Reason
	}
	return fmt.Sprintf("%s %s", e.Field, e.Reason)
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

// DuplicateNameError reports a name collision on add.
type DuplicateNameError struct {
	Kind string
	Name string
}

func (e *DuplicateNameError) Error() string {
	return fmt.Sprintf("%s %q already exists", e.Kind, e.Name)
}

func (e *DuplicateNameError) Is(target error) bool {
	return target == ErrDuplicateName
}

// NotFoundError reports a reference to a name that is not registered.
type NotFoundError struct {
	Kind string
	Name string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %q not found", e.Kind, e.Name)
}

func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

func required(field string) error {
	return &ValidationError{Field: field, Reason: "is required"}
}
