// Package domain contains business logic types and errors.
// Every failed quote API operation yields exactly one of the request errors below.
// They are transport-agnostic and are mapped to HTTP responses by adapters.
package domain

import (
	"errors"
	"fmt"
	"net/http"
)

// DuplicateQuoteMessage is shown when a submitted quote already exists.
const DuplicateQuoteMessage = "Thanks for submitting a quote.\n\n" +
	"It happens to already exist in the database, though. Great minds think alike."

// Sentinel errors for use with errors.Is().
var (
	// ErrInvalidURL indicates the request URL could not be composed.
	ErrInvalidURL = errors.New("invalid url")

	// ErrNetwork indicates the request never produced a response.
	ErrNetwork = errors.New("network error")

	// ErrHTTP indicates the server answered with a non-2xx status.
	ErrHTTP = errors.New("http error")

	// ErrNotFound matches HTTP errors carrying status 404.
	ErrNotFound = errors.New("not found")

	// ErrConflict indicates a duplicate quote submission.
	ErrConflict = errors.New("conflict")

	// ErrNoData indicates a 2xx response with an empty body.
	ErrNoData = errors.New("no data")

	// ErrDecoding indicates the response body did not match the expected shape.
	ErrDecoding = errors.New("decoding error")

	// ErrJSONParsing indicates the request body could not be serialized.
	ErrJSONParsing = errors.New("json parsing error")

	// ErrValidation indicates local input checks failed before any request was sent.
	ErrValidation = errors.New("validation failed")
)

// ErrorKind names a request error category for logs and metrics.
type ErrorKind string

// Error kinds reported by Kind.
const (
	KindInvalidURL  ErrorKind = "invalid_url"
	KindNetwork     ErrorKind = "network"
	KindHTTP        ErrorKind = "http"
	KindConflict    ErrorKind = "conflict"
	KindNoData      ErrorKind = "no_data"
	KindDecoding    ErrorKind = "decoding"
	KindJSONParsing ErrorKind = "json_parsing"
	KindValidation  ErrorKind = "validation"
	KindUnknown     ErrorKind = "unknown"
)

// InvalidURLError reports a URL composition failure.
type InvalidURLError struct {
	Path  string
	Cause error
}

// Error implements the error interface.
func (e *InvalidURLError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("invalid url for %q: %v", e.Path, e.Cause)
	}
	return fmt.Sprintf("invalid url for %q", e.Path)
}

// Unwrap returns the sentinel and the cause for errors.Is() and errors.As() support.
func (e *InvalidURLError) Unwrap() []error {
	return withCause(ErrInvalidURL, e.Cause)
}

// NewInvalidURLError creates an invalid URL error.
func NewInvalidURLError(path string, cause error) error {
	return &InvalidURLError{Path: path, Cause: cause}
}

// NetworkError reports a transport failure: no connection, timeout, cancellation or an open circuit.
type NetworkError struct {
	Operation string
	Cause     error
}

// Error implements the error interface.
func (e *NetworkError) Error() string {
	return fmt.Sprintf("%s: network error: %v", e.Operation, e.Cause)
}

// Unwrap returns the sentinel and the cause for errors.Is() and errors.As() support.
func (e *NetworkError) Unwrap() []error {
	return withCause(ErrNetwork, e.Cause)
}

// NewNetworkError creates a network error.
func NewNetworkError(operation string, cause error) error {
	return &NetworkError{Operation: operation, Cause: cause}
}

// HTTPError reports a non-2xx response. StatusCode is 0 when no response object was produced.
type HTTPError struct {
	StatusCode int
}

// Error implements the error interface.
func (e *HTTPError) Error() string {
	if e.StatusCode == 0 {
		return "http error: no response"
	}
	return fmt.Sprintf("http error: %d %s", e.StatusCode, http.StatusText(e.StatusCode))
}

// Unwrap returns ErrHTTP, plus ErrNotFound for status 404.
func (e *HTTPError) Unwrap() []error {
	if e.StatusCode == http.StatusNotFound {
		return []error{ErrHTTP, ErrNotFound}
	}
	return []error{ErrHTTP}
}

// NewHTTPError creates an HTTP error for the given status.
func NewHTTPError(statusCode int) error {
	return &HTTPError{StatusCode: statusCode}
}

// ConflictError reports a duplicate submission. Message is shown to the user verbatim.
type ConflictError struct {
	Message string
}

// Error implements the error interface.
func (e *ConflictError) Error() string {
	return e.Message
}

// Unwrap returns the sentinel error for errors.Is() support.
func (e *ConflictError) Unwrap() error {
	return ErrConflict
}

// NewConflictError creates a conflict error. An empty message falls back to DuplicateQuoteMessage.
func NewConflictError(message string) error {
	if message == "" {
		message = DuplicateQuoteMessage
	}
	return &ConflictError{Message: message}
}

// NoDataError reports a successful response without a body.
type NoDataError struct {
	Operation string
}

// Error implements the error interface.
func (e *NoDataError) Error() string {
	return e.Operation + ": response contained no data"
}

// Unwrap returns the sentinel error for errors.Is() support.
func (e *NoDataError) Unwrap() error {
	return ErrNoData
}

// NewNoDataError creates a no data error.
func NewNoDataError(operation string) error {
	return &NoDataError{Operation: operation}
}

// DecodingError reports a response body that could not be decoded.
type DecodingError struct {
	Operation string
	Cause     error
}

// Error implements the error interface.
func (e *DecodingError) Error() string {
	return fmt.Sprintf("%s: decoding response: %v", e.Operation, e.Cause)
}

// Unwrap returns the sentinel and the cause for errors.Is() and errors.As() support.
func (e *DecodingError) Unwrap() []error {
	return withCause(ErrDecoding, e.Cause)
}

// NewDecodingError creates a decoding error.
func NewDecodingError(operation string, cause error) error {
	return &DecodingError{Operation: operation, Cause: cause}
}

// JSONParsingError reports a request body that could not be serialized.
type JSONParsingError struct {
	Operation string
	Cause     error
}

// Error implements the error interface.
func (e *JSONParsingError) Error() string {
	return fmt.Sprintf("%s: encoding request body: %v", e.Operation, e.Cause)
}

// Unwrap returns the sentinel and the cause for errors.Is() and errors.As() support.
func (e *JSONParsingError) Unwrap() []error {
	return withCause(ErrJSONParsing, e.Cause)
}

// NewJSONParsingError creates a JSON parsing error.
func NewJSONParsingError(operation string, cause error) error {
	return &JSONParsingError{Operation: operation, Cause: cause}
}

// ValidationError reports invalid caller input.
type ValidationError struct {
	Field   string
	Message string
	Value   any
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation failed for %s: %s", e.Field, e.Message)
	}

	return "validation failed: " + e.Message
}

// Unwrap returns the sentinel error for errors.Is() support.
func (e *ValidationError) Unwrap() error {
	return ErrValidation
}

// NewValidationError creates a validation error with context.
func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// NewValidationErrorWithValue creates a validation error including the invalid value.
func NewValidationErrorWithValue(field, message string, value any) error {
	return &ValidationError{Field: field, Message: message, Value: value}
}

// IsNotFound checks if an error is an HTTP 404.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsConflict checks if an error is a duplicate submission.
func IsConflict(err error) bool {
	return errors.Is(err, ErrConflict)
}

// IsValidation checks if an error is a validation error.
func IsValidation(err error) bool {
	return errors.Is(err, ErrValidation)
}

// IsNetwork checks if an error is a transport failure.
func IsNetwork(err error) bool {
	return errors.Is(err, ErrNetwork)
}

// IsEmptyResponse checks if an error only says the 2xx response body was absent or unreadable.
// Fire-and-forget operations treat these as success.
func IsEmptyResponse(err error) bool {
	return errors.Is(err, ErrNoData) || errors.Is(err, ErrDecoding)
}

// StatusCode returns the HTTP status carried by err, or 0.
func StatusCode(err error) int {
	var httpErr *HTTPError
	if errors.As(err, &httpErr) {
		return httpErr.StatusCode
	}
	return 0
}

// Kind classifies err into one of the request error kinds.
func Kind(err error) ErrorKind {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrValidation):
		return KindValidation
	case errors.Is(err, ErrConflict):
		return KindConflict
	case errors.Is(err, ErrInvalidURL):
		return KindInvalidURL
	case errors.Is(err, ErrJSONParsing):
		return KindJSONParsing
	case errors.Is(err, ErrNetwork):
		return KindNetwork
	case errors.Is(err, ErrHTTP):
		return KindHTTP
	case errors.Is(err, ErrNoData):
		return KindNoData
	case errors.Is(err, ErrDecoding):
		return KindDecoding
	default:
		return KindUnknown
	}
}

func withCause(sentinel, cause error) []error {
	if cause == nil {
		return []error{sentinel}
	}
	return []error{sentinel, cause}
}
