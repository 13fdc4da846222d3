package types

import "errors"

// Store lifecycle errors.
var (
	ErrStoreClosed = errors.New("store is closed")
	ErrAlreadyOpen = errors.New("store is already open")
)

// Entity validation errors.
var (
	ErrNotFound         = errors.New("entity not found")
	ErrInvalidID        = errors.New("invalid entity ID")
	ErrInvalidTitle     = errors.New("title must not be empty")
	ErrInvalidDate      = errors.New("date must not be empty")
	ErrInvalidSlotRange = errors.New("start slot must be before end slot")
	ErrInvalidKey       = errors.New("setting key must not be empty")
	ErrDateMismatch     = errors.New("block date does not match the target date")
)

// StorageError wraps an underlying database failure with the operation
// that produced it. The engine's diagnostic text is preserved through
// Unwrap so callers can report or match it.
type StorageError struct {
	Op  string // operation, e.g. "save task"
	Err error  // underlying driver error
}

// Error returns the operation and the engine diagnostic.
func (e *StorageError) Error() string {
	return e.Op + ": " + e.Err.Error()
}

// Unwrap returns the underlying driver error.
func (e *StorageError) Unwrap() error {
	return e.Err
}
