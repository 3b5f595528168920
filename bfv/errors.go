package bfv

import (
	"errors"
	"fmt"
)

// Common errors returned by the client.
var (
	// ErrInvalidConfig indicates invalid client configuration.
	ErrInvalidConfig = errors.New("invalid bfv client configuration")

	// ErrNoData indicates the API answered successfully but without a payload.
	ErrNoData = errors.New("no data in response")

	// ErrInvalidResult indicates a result string that cannot be parsed.
	ErrInvalidResult = errors.New("invalid result string")
)

// APIError represents a non-OK answer from the widget API.
type APIError struct {
	StatusCode int
	Message    string
	Body       string
}

// Error implements the error interface.
func (e *APIError) Error() string {
	return fmt.Sprintf("bfv API error: status %d: %s", e.StatusCode, e.Message)
}

// IsNotFound checks if the error indicates a not found response.
func (e *APIError) IsNotFound() bool {
	return e.StatusCode == 404
}

// IsServerError checks if the error indicates a server-side failure.
func (e *APIError) IsServerError() bool {
	return e.StatusCode >= 500
}

// InvalidIDError indicates an identifier or parameter the API would reject.
type InvalidIDError struct {
	Kind  string
	Value string
}

// Error implements the error interface.
func (e *InvalidIDError) Error() string {
	return fmt.Sprintf("invalid %s: %q", e.Kind, e.Value)
}
