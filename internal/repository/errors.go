package repository

import "errors"

var (
	// ErrNotFound signals that no document matched the lookup.
	ErrNotFound = errors.New("not found")
	// ErrDuplicate signals a unique-index violation.
	ErrDuplicate = errors.New("duplicate key")
	// ErrInvalidID signals a caller-supplied ID that is not a valid ObjectID hex.
	ErrInvalidID = errors.New("invalid identifier")
)
