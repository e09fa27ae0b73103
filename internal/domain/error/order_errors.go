package error

import "errors"

// Order domain errors.
var (
	// ErrOrderNotFound is returned when an order is not found in the ledger.
	ErrOrderNotFound = errors.New("order not found")

	// ErrInvalidQuantity is returned when pagesOrSlides is not a positive integer.
	ErrInvalidQuantity = errors.New("pagesOrSlides must be a positive integer")

	// ErrInvalidOrderDate is returned when a supplied order date cannot be parsed.
	ErrInvalidOrderDate = errors.New("invalid order date")
)

// OrderErrorCode defines error codes for order errors.
// Format: ORD-XXYYYY where XX is category and YYYY is specific error.
type OrderErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeInvalidQuantity  OrderErrorCode = "ORD-010001"
	ErrCodeInvalidOrderDate OrderErrorCode = "ORD-010002"

	// Not found errors (02XXXX)
	ErrCodeOrderNotFound OrderErrorCode = "ORD-020001"
)

// OrderError represents an order error with code and message.
type OrderError struct {
	Code    OrderErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *OrderError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *OrderError) Unwrap() error {
	return e.Err
}

// NewOrderError creates a new OrderError with the given code and message.
func NewOrderError(code OrderErrorCode, message string, err error) *OrderError {
	return &OrderError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
