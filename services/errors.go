package services

import (
	"errors"
	"strings"
)

// Error kinds returned by the services. Controllers translate these to
// HTTP status codes via errors.Is.
var (
	ErrValidation      = errors.New("validation error")
	ErrUnauthenticated = errors.New("unauthenticated")
	ErrNotFound        = errors.New("not found")
	ErrConflict        = errors.New("conflict")
)

// FieldErrors is a validation failure listing the missing or invalid
// field names. It matches ErrValidation under errors.Is.
type FieldErrors struct {
	Fields []string
}

func (e *FieldErrors) Error() string {
	return "invalid fields: " + strings.Join(e.Fields, ", ")
}

func (e *FieldErrors) Unwrap() error { return ErrValidation }
