package error

import "errors"

// Product domain errors.
var (
	// ErrProductNotFound is returned when a referenced product does not exist.
	ErrProductNotFound = errors.New("product not found")

	// ErrProductNameRequired is returned when a product is created without a name.
	ErrProductNameRequired = errors.New("name is required")

	// ErrInvalidUnitPrice is returned when pricePerUnit is negative.
	ErrInvalidUnitPrice = errors.New("pricePerUnit must not be negative")
)

// ProductErrorCode defines error codes for product errors.
// Format: PRD-XXYYYY where XX is category and YYYY is specific error.
type ProductErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeProductNameRequired ProductErrorCode = "PRD-010001"
	ErrCodeInvalidUnitPrice    ProductErrorCode = "PRD-010002"

	// Not found errors (02XXXX)
	ErrCodeProductNotFound ProductErrorCode = "PRD-020001"
)

// ProductError represents a product error with code and message.
type ProductError struct {
	Code    ProductErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *ProductError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *ProductError) Unwrap() error {
	return e.Err
}

// NewProductError creates a new ProductError with the given code and message.
func NewProductError(code ProductErrorCode, message string, err error) *ProductError {
	return &ProductError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
