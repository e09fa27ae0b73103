package error

import "errors"

// Classification (class/genre) domain errors.
var (
	// ErrClassificationNameRequired is returned when a class or genre is
	// created without a name.
	ErrClassificationNameRequired = errors.New("name is required")

	// ErrClassificationExists is returned when a class or genre name is
	// already taken. Names are unique per kind.
	ErrClassificationExists = errors.New("name already exists")

	// ErrClassificationNotFound is returned when a class or genre does not exist.
	ErrClassificationNotFound = errors.New("classification not found")
)

// ClassificationErrorCode defines error codes for class/genre errors.
// Format: CLS-XXYYYY where XX is category and YYYY is specific error.
type ClassificationErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeClassificationNameRequired ClassificationErrorCode = "CLS-010001"

	// Not found errors (02XXXX)
	ErrCodeClassificationNotFound ClassificationErrorCode = "CLS-020001"

	// Conflict errors (03XXXX)
	ErrCodeClassificationExists ClassificationErrorCode = "CLS-030001"
)

// ClassificationError represents a class/genre error with code and message.
type ClassificationError struct {
	Code    ClassificationErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *ClassificationError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *ClassificationError) Unwrap() error {
	return e.Err
}

// NewClassificationError creates a new ClassificationError with the given code and message.
func NewClassificationError(code ClassificationErrorCode, message string, err error) *ClassificationError {
	return &ClassificationError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
