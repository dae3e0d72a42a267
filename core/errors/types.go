// ABOUTME: Custom error types for the core business logic
// ABOUTME: Provides structured errors for fetch failures, malformed payloads and API responses

package errors

import (
	"errors"
	"fmt"
	"net/http"
)

// Messages surfaced to the rendering layer
const (
	MsgInvalidResponse = "Received invalid response from server"
	MsgFetchFailed     = "Failed to fetch results"
)

// NotFoundError represents a resource not found error
type NotFoundError struct {
	Resource string
	ID       string
}

// Error implements the error interface
func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found: %s", e.Resource, e.ID)
}

// ValidationError represents a validation error
type ValidationError struct {
	Field   string
	Message string
}

// Error implements the error interface
func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error on field '%s': %s", e.Field, e.Message)
}

// ExternalAPIError represents a non-2xx answer from the catalog backend.
// Message holds the backend-supplied message when the body carried one.
type ExternalAPIError struct {
	StatusCode int
	Message    string
	API        string
}

// Error implements the error interface
func (e *ExternalAPIError) Error() string {
	return fmt.Sprintf("external API error from %s: %d - %s", e.API, e.StatusCode, e.Message)
}

// NetworkError represents a rejected request or transport failure
type NetworkError struct {
	Op  string
	Err error
}

// Error implements the error interface
func (e *NetworkError) Error() string {
	if e.Op == "" {
		return e.Err.Error()
	}
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

// Unwrap returns the underlying transport error
func (e *NetworkError) Unwrap() error {
	return e.Err
}

// MalformedResponseError represents a response missing the expected shape
type MalformedResponseError struct {
	Reason string
	Err    error
}

// Error implements the error interface
func (e *MalformedResponseError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("malformed response: %s: %v", e.Reason, e.Err)
	}
	return fmt.Sprintf("malformed response: %s", e.Reason)
}

// Unwrap returns the decoding error, if any
func (e *MalformedResponseError) Unwrap() error {
	return e.Err
}

// TransformError represents a single course record that could not be normalized.
// It is logged and the record dropped; it never reaches the user.
type TransformError struct {
	Index  int
	Field  string
	Reason string
}

// Error implements the error interface
func (e *TransformError) Error() string {
	return fmt.Sprintf("course %d: cannot normalize field '%s': %s", e.Index, e.Field, e.Reason)
}

// IsNotFound checks if an error is a NotFoundError
func IsNotFound(err error) bool {
	var notFoundErr *NotFoundError
	return errors.As(err, &notFoundErr)
}

// IsValidation checks if an error is a ValidationError
func IsValidation(err error) bool {
	var validationErr *ValidationError
	return errors.As(err, &validationErr)
}

// IsExternalAPI checks if an error is an ExternalAPIError
func IsExternalAPI(err error) bool {
	var apiErr *ExternalAPIError
	return errors.As(err, &apiErr)
}

// IsNetwork checks if an error is a NetworkError
func IsNetwork(err error) bool {
	var netErr *NetworkError
	return errors.As(err, &netErr)
}

// IsMalformedResponse checks if an error is a MalformedResponseError
func IsMalformedResponse(err error) bool {
	var malformed *MalformedResponseError
	return errors.As(err, &malformed)
}

// IsTransform checks if an error is a TransformError
func IsTransform(err error) bool {
	var transformErr *TransformError
	return errors.As(err, &transformErr)
}

// Kind returns a short label for metrics and logs
func Kind(err error) string {
	switch {
	case err == nil:
		return "none"
	case IsNetwork(err):
		return "network"
	case IsMalformedResponse(err):
		return "malformed_response"
	case IsExternalAPI(err):
		return "external_api"
	case IsTransform(err):
		return "transform"
	default:
		return "unknown"
	}
}

// UserMessage converts a fetch failure into the human-readable message shown
// in place of results. A backend-supplied message wins over generic text.
func UserMessage(err error) string {
	if err == nil {
		return ""
	}

	var apiErr *ExternalAPIError
	if errors.As(err, &apiErr) {
		if apiErr.Message != "" {
			return apiErr.Message
		}
		return fmt.Sprintf("%s: %d %s", MsgFetchFailed, apiErr.StatusCode, http.StatusText(apiErr.StatusCode))
	}

	if IsMalformedResponse(err) {
		return MsgInvalidResponse
	}

	var netErr *NetworkError
	if errors.As(err, &netErr) {
		return fmt.Sprintf("%s: %v", MsgFetchFailed, netErr.Err)
	}

	return fmt.Sprintf("%s: %v", MsgFetchFailed, err)
}

// WrapError wraps an error with additional context
func WrapError(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}
