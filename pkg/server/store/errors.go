package store

import "errors"

var (
	// ErrNotFound is returned when a record doesn't exist or is outside
	// the caller's organization.
	ErrNotFound = errors.New("record not found")

	// ErrConflict is returned when a uniqueness constraint rejects a write.
	ErrConflict = errors.New("record already exists")

	// ErrValidation is returned when a write is structurally invalid.
	ErrValidation = errors.New("validation failed")
)
