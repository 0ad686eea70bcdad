package domain

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrNotFound covers both a missing entity and, for applications, an
	// entity owned by someone else. The decide path deliberately does not
	// distinguish the two so that faculty cannot probe for other faculty's
	// applications.
	ErrNotFound = errors.New("not found")

	ErrForbidden = errors.New("forbidden")

	// ErrConflict is returned when re-deciding an already-decided
	// application with a different status, and when assigning a role to an
	// account that already has one.
	ErrConflict = errors.New("conflict")

	// ErrProfileMissing signals an account with no role record. The profile
	// service recovers from it by provisioning a default student profile;
	// it never reaches the transport layer.
	ErrProfileMissing = errors.New("profile missing")
)

// ValidationError reports malformed input attributes, keyed by field.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for field, msg := range e.Fields {
		parts = append(parts, fmt.Sprintf("%s: %s", field, msg))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Fields: map[string]string{field: message}}
}
