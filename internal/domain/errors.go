package domain

import "errors"

// Sentinel errors shared across entities. Repositories and services
// return these so the HTTP layer can map them to status codes with
// errors.Is.
var (
	// ErrNotFound is returned when a requested resource does not exist.
	ErrNotFound = errors.New("resource not found")

	// ErrForbidden is returned when the caller is authenticated but not
	// allowed to act on the resource, e.g. mutating an event they do
	// not own.
	ErrForbidden = errors.New("forbidden")

	// ErrInvalidInput is returned when a request is well formed but its
	// values are unusable, e.g. a paid event without a positive price.
	ErrInvalidInput = errors.New("invalid input")
)
