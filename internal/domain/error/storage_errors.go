package error

import "errors"

// ErrStorageFailure marks an underlying query or transaction failure. It is
// retryable from the caller's point of view and is never swallowed.
var ErrStorageFailure = errors.New("storage failure")

// StorageErrorCode defines error codes for storage failures.
type StorageErrorCode string

const (
	ErrCodeStorageFailure StorageErrorCode = "STO-990001"
)

// StorageError wraps a storage-layer failure with the operation that failed.
type StorageError struct {
	Op  string
	Err error
}

// Error implements the error interface.
func (e *StorageError) Error() string {
	return e.Op + ": " + e.Err.Error()
}

// Unwrap returns the underlying error.
func (e *StorageError) Unwrap() error {
	return e.Err
}

// Is reports whether target is ErrStorageFailure.
func (e *StorageError) Is(target error) bool {
	return target == ErrStorageFailure
}

// NewStorageError creates a new StorageError for the given operation.
func NewStorageError(op string, err error) *StorageError {
	return &StorageError{Op: op, Err: err}
}
