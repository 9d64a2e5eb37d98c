package client

import (
	"fmt"
	"net/http"
)

// ErrorKind classifies a vendor API failure by HTTP status.
type ErrorKind string

const (
	// KindBadRequest maps HTTP 400.
	KindBadRequest ErrorKind = "bad_request"

	// KindNotAuthorized maps HTTP 401.
	KindNotAuthorized ErrorKind = "not_authorized"

	// KindNotFound maps HTTP 404.
	KindNotFound ErrorKind = "not_found"

	// KindNotAllowed maps HTTP 405.
	KindNotAllowed ErrorKind = "not_allowed"

	// KindConflict maps HTTP 409.
	KindConflict ErrorKind = "conflict"

	// KindGeneric covers every other non-2xx status.
	KindGeneric ErrorKind = "generic"
)

// kindForStatus maps the statuses Zoom documents to dedicated kinds.
var kindForStatus = map[int]ErrorKind{
	http.StatusBadRequest:       KindBadRequest,
	http.StatusUnauthorized:     KindNotAuthorized,
	http.StatusNotFound:         KindNotFound,
	http.StatusMethodNotAllowed: KindNotAllowed,
	http.StatusConflict:         KindConflict,
}

// KindForStatus returns the error kind for an HTTP status code.
func KindForStatus(status int) ErrorKind {
	if kind, ok := kindForStatus[status]; ok {
		return kind
	}
	return KindGeneric
}

// APIError represents a Zoom API failure with additional context.
type APIError struct {
	StatusCode int
	Kind       ErrorKind
	Message    string
	Err        error
}

// Error implements the error interface.
func (e *APIError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("zoom %s error (status %d): %s: %v",
			e.Kind, e.StatusCode, e.Message, e.Err)
	}
	return fmt.Sprintf("zoom %s error (status %d): %s",
		e.Kind, e.StatusCode, e.Message)
}

// Unwrap implements error unwrapping for errors.Is/As.
func (e *APIError) Unwrap() error {
	return e.Err
}

// InvalidMethodError is returned before any network I/O when a disallowed
// HTTP verb is passed to MakeRequest.
type InvalidMethodError struct {
	Method string
}

// Error implements the error interface.
func (e *InvalidMethodError) Error() string {
	return fmt.Sprintf("invalid method: %s. Must be one of GET, POST, PATCH, PUT, DELETE", e.Method)
}

// InvalidDataError reports a payload that does not match the expected record
// shape (missing required field, wrong JSON type).
type InvalidDataError struct {
	Record string
	Reason string
}

// Error implements the error interface.
func (e *InvalidDataError) Error() string {
	return fmt.Sprintf("invalid %s data: %s", e.Record, e.Reason)
}
