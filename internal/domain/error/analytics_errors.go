// Package error defines domain-specific errors for the Scribe Ops backend.
package error

import "errors"

// Analytics domain errors.
var (
	// ErrInvalidPeriod is returned when a symbolic period name is not recognized.
	ErrInvalidPeriod = errors.New("invalid period")

	// ErrInvalidRange is returned when a custom range is missing a bound,
	// malformed, or has start >= end.
	ErrInvalidRange = errors.New("invalid date range")
)

// AnalyticsErrorCode defines error codes for analytics errors.
// Format: ANL-XXYYYY where XX is category and YYYY is specific error.
type AnalyticsErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeInvalidPeriod    AnalyticsErrorCode = "ANL-010001"
	ErrCodeMissingRangeForm AnalyticsErrorCode = "ANL-010002"
	ErrCodeInvalidRange     AnalyticsErrorCode = "ANL-010003"
	ErrCodeInvalidDateInput AnalyticsErrorCode = "ANL-010004"
)

// AnalyticsError represents an analytics error with code and message.
type AnalyticsError struct {
	Code    AnalyticsErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *AnalyticsError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *AnalyticsError) Unwrap() error {
	return e.Err
}

// NewAnalyticsError creates a new AnalyticsError with the given code and message.
func NewAnalyticsError(code AnalyticsErrorCode, message string, err error) *AnalyticsError {
	return &AnalyticsError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
