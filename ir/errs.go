package ir

import "errors"

var (
	// ErrNotFound indicates an absent object key.
	ErrNotFound = errors.New("not found")
	// ErrType indicates a field access on a non-object or an index access
	// on a non-array, or a non-container root where one is required.
	ErrType = errors.New("type mismatch")
	// ErrRange indicates an array index beyond the current bounds.
	ErrRange = errors.New("index out of range")
)
