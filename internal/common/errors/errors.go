// Package errors provides standardized error handling for the prediction pipeline.
package errors

import (
	"fmt"
	"time"
)

// ErrorCode represents standardized internal error codes.
type ErrorCode string

const (
	// Client-side codes.
	ErrCodeInputParseFailed     ErrorCode = "INPUT_PARSE_FAILED"
	ErrCodeServerReported       ErrorCode = "SERVER_REPORTED_ERROR"
	ErrCodeUnexpectedStatus     ErrorCode = "UNEXPECTED_STATUS"
	ErrCodeTransportFailed      ErrorCode = "TRANSPORT_FAILED"
	ErrCodeResponseDecodeFailed ErrorCode = "RESPONSE_DECODE_FAILED"

	// Server-side codes.
	ErrCodeInvalidHorizon         ErrorCode = "INVALID_HORIZON"
	ErrCodeSchemaValidationFailed ErrorCode = "SCHEMA_VALIDATION_FAILED"
	ErrCodeModelUnavailable       ErrorCode = "MODEL_UNAVAILABLE"
)

// StandardError represents a structured application error. Message is the
// user-facing text; Details carries the underlying cause for logs.
type StandardError struct {
	Code      ErrorCode `json:"code"`
	Message   string    `json:"message"`
	Details   string    `json:"details,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

func (e *StandardError) Error() string {
	return fmt.Sprintf("StandardError[%s]: %s", e.Code, e.Message)
}

// DisplayMessage extracts the user-facing message from an error, falling
// back to the raw error string for non-standard errors.
func DisplayMessage(err error) string {
	if se, ok := err.(*StandardError); ok {
		return se.Message
	}
	return err.Error()
}

// NewInputParseFailedError reports a form field that failed numeric parsing.
// No request is issued for inputs that produce this error.
func NewInputParseFailedError(field, value string) *StandardError {
	return &StandardError{
		Code:      ErrCodeInputParseFailed,
		Message:   fmt.Sprintf("Invalid value for %s: %q", field, value),
		Details:   fmt.Sprintf("field: %s", field),
		Timestamp: time.Now().UTC(),
	}
}

// NewServerReportedError wraps an application error the server placed in
// the response body. The message is surfaced verbatim.
func NewServerReportedError(message string) *StandardError {
	return &StandardError{
		Code:      ErrCodeServerReported,
		Message:   message,
		Timestamp: time.Now().UTC(),
	}
}

// NewUnexpectedStatusError reports a non-200 response. The message carries
// both the status code and the server's error text when one was parseable.
func NewUnexpectedStatusError(status int, message string) *StandardError {
	return &StandardError{
		Code:      ErrCodeUnexpectedStatus,
		Message:   fmt.Sprintf("Server error %d: %s", status, message),
		Details:   fmt.Sprintf("status: %d", status),
		Timestamp: time.Now().UTC(),
	}
}

// NewTransportFailedError reports a network-level failure. The message
// names the endpoint that was attempted.
func NewTransportFailedError(endpoint string, err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeTransportFailed,
		Message:   fmt.Sprintf("Request to %s failed: %v", endpoint, err),
		Details:   err.Error(),
		Timestamp: time.Now().UTC(),
	}
}

// NewResponseDecodeFailedError reports a response body that could not be
// mapped onto the success contract.
func NewResponseDecodeFailedError(endpoint string, err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeResponseDecodeFailed,
		Message:   fmt.Sprintf("Invalid response from %s: %v", endpoint, err),
		Details:   err.Error(),
		Timestamp: time.Now().UTC(),
	}
}

// NewInvalidHorizonError rejects a projection horizon outside the accepted set.
func NewInvalidHorizonError() *StandardError {
	return &StandardError{
		Code:      ErrCodeInvalidHorizon,
		Message:   "Invalid 'projection_months'. Must be 6, 24, or 60.",
		Timestamp: time.Now().UTC(),
	}
}

// NewSchemaValidationFailedError reports a user_data payload that does not
// match the wire contract.
func NewSchemaValidationFailedError(details string) *StandardError {
	return &StandardError{
		Code:      ErrCodeSchemaValidationFailed,
		Message:   fmt.Sprintf("Invalid 'user_data': %s", details),
		Details:   details,
		Timestamp: time.Now().UTC(),
	}
}

// NewModelUnavailableError reports a career model that failed to load or score.
func NewModelUnavailableError(model string, err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeModelUnavailable,
		Message:   fmt.Sprintf("Prediction model '%s' unavailable", model),
		Details:   err.Error(),
		Timestamp: time.Now().UTC(),
	}
}
