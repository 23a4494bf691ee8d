package appointment

import (
	"errors"
)

var (
	// ErrValidation is returned when a required appointment field is missing.
	ErrValidation = errors.New("missing required fields")
	// ErrNotFound is returned when the appointment does not exist.
	ErrNotFound = errors.New("appointment not found")
)

// StorageError wraps a failure of the record store.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return e.Op + ": " + e.Err.Error()
}

// Unwrap returns the underlying driver error.
func (e *StorageError) Unwrap() error {
	return e.Err
}

func storageError(op string, err error) error {
	return &StorageError{Op: op, Err: err}
}
