// Package store defines the storage interfaces the server endpoints and
// the CLI depend on. The gorm subpackage holds the PostgreSQL
// implementations; tests substitute mocks.
//
// Store methods return the package sentinel errors (ErrNotFound,
// ErrConflict, ErrValidation) wrapped with context so callers can decide
// status codes with errors.Is.
package store
