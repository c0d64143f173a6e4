// Package store holds the errors shared by every document store backend.
package store

import "errors"

var (
	// ErrNotFound is returned when a lookup by id matches no document.
	ErrNotFound = errors.New("document not found")
	// ErrInvalidID is returned when an id does not have the backend's identifier format.
	ErrInvalidID = errors.New("invalid document id")
	// ErrAlreadyExists is returned when a uniqueness constraint (the portfolio singleton) rejects a write.
	ErrAlreadyExists = errors.New("document already exists")
)
