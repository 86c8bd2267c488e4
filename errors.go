package bunnydns

import "fmt"

// ValidationError reports a locally-invalid argument, detected before any
// network call is made.
type ValidationError struct {
	msg string
}

func (e *ValidationError) Error() string { return e.msg }

// AuthenticationError reports an HTTP 401 response from the API.
type AuthenticationError struct {
	Message string
}

func (e *AuthenticationError) Error() string {
	if e.Message == "" {
		return "authentication failed (HTTP 401)"
	}
	return fmt.Sprintf("authentication failed (HTTP 401): %s", e.Message)
}

// NotFoundError reports an HTTP 404 response from the API.
type NotFoundError struct {
	Message string
}

func (e *NotFoundError) Error() string {
	if e.Message == "" {
		return "not found (HTTP 404)"
	}
	return fmt.Sprintf("not found (HTTP 404): %s", e.Message)
}

// APIError reports any other non-success HTTP response. StatusCode carries
// the numeric status and Message the raw response body.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("HTTP %d", e.StatusCode)
	}
	return fmt.Sprintf("HTTP %d: %s", e.StatusCode, e.Message)
}

// DecodeError reports a response payload that could not be converted into a
// typed value: an unrecognized enum value or integer code, a malformed
// timestamp, or a value of an unconvertible type.
type DecodeError struct {
	msg string
}

func (e *DecodeError) Error() string { return e.msg }

// EncodeError reports a value that could not be converted to its wire
// representation, such as an enum member with no integer code assignment.
// It signals a programming error on the caller's side.
type EncodeError struct {
	msg string
}

func (e *EncodeError) Error() string { return e.msg }
