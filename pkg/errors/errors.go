// Package errors defines the typed error taxonomy shared by all Gamma SDK
// clients. Every failure surfaced by the SDK is exactly one of
// ConfigurationError, TransportError, StatusError, or DecodeError; callers
// classify with errors.As or the helpers in this package.
package errors

import (
	stderrors "errors"
	"fmt"
	"net/http"
)

// NotFoundMessage is the body carried by the StatusError synthesized when a
// successful response decodes to JSON null. The Gamma service reports "found
// nothing" as a 2xx with a null payload; the SDK surfaces that as a 404.
const NotFoundMessage = "Unable to find requested resource"

// ConfigurationError reports an invalid client configuration detected at
// construction time, such as a malformed base URL. It never occurs once a
// client has been built.
type ConfigurationError struct {
	Field  string
	Reason string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// TransportError wraps a network-level failure: DNS resolution, connection,
// TLS, timeout, or context cancellation. The request never produced an HTTP
// status line. Unwrap exposes the cause, so errors.Is(err,
// context.DeadlineExceeded) and friends keep working.
type TransportError struct {
	Method string
	Path   string
	Err    error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Method, e.Path, e.Err)
}

func (e *TransportError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// StatusError reports a response the service rejected: a non-2xx status, or
// the not-found condition synthesized from a 2xx response whose body is JSON
// null. Body holds the raw response text, empty when the server sent none.
type StatusError struct {
	StatusCode int
	Method     string
	Path       string
	Body       string
}

func (e *StatusError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("%s %s: http %d", e.Method, e.Path, e.StatusCode)
	}
	return fmt.Sprintf("%s %s: http %d: %s", e.Method, e.Path, e.StatusCode, e.Body)
}

// DecodeError reports a 2xx response whose body could not be decoded into the
// expected type. Unwrap exposes the underlying json error.
type DecodeError struct {
	Method string
	Path   string
	Err    error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("%s %s: decode response: %v", e.Method, e.Path, e.Err)
}

func (e *DecodeError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// NewNotFound builds the StatusError used when a successful response carries a
// JSON null body.
func NewNotFound(method, path string) *StatusError {
	return &StatusError{
		StatusCode: http.StatusNotFound,
		Method:     method,
		Path:       path,
		Body:       NotFoundMessage,
	}
}

// AsStatus extracts a *StatusError from err's chain.
func AsStatus(err error) (*StatusError, bool) {
	var se *StatusError
	if stderrors.As(err, &se) {
		return se, true
	}
	return nil, false
}

// IsStatus reports whether err carries a StatusError with the given code.
func IsStatus(err error, code int) bool {
	se, ok := AsStatus(err)
	return ok && se.StatusCode == code
}

// IsNotFound reports whether err is a not-found condition: an explicit 404
// from the service, or the synthesized one for null bodies.
func IsNotFound(err error) bool {
	return IsStatus(err, http.StatusNotFound)
}
