package error

// Invoice domain errors. Invoice range validation reuses the shared
// ErrInvalidRange sentinel; the codes below keep the failing parameter
// identifiable to the caller.

// InvoiceErrorCode defines error codes for invoice errors.
// Format: INV-XXYYYY where XX is category and YYYY is specific error.
type InvoiceErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeInvoiceMissingClient InvoiceErrorCode = "INV-010001"
	ErrCodeInvoiceMissingBound  InvoiceErrorCode = "INV-010002"
	ErrCodeInvoiceInvalidRange  InvoiceErrorCode = "INV-010003"
)

// InvoiceError represents an invoice error with code and message.
type InvoiceError struct {
	Code    InvoiceErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *InvoiceError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *InvoiceError) Unwrap() error {
	return e.Err
}

// NewInvoiceError creates a new InvoiceError with the given code and message.
func NewInvoiceError(code InvoiceErrorCode, message string, err error) *InvoiceError {
	return &InvoiceError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
