// Package dto defines data transfer objects for API requests and responses.
// All JSON field names are camelCase; decimal values become float64 only at
// this boundary.
package dto

// ErrorResponse represents an error response.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code,omitempty"`
}

// MessageResponse represents a generic message response.
type MessageResponse struct {
	Message string `json:"message"`
}
