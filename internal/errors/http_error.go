package errors

import (
	"errors"
	"net/http"
)

// HTTPError represents an error with an associated HTTP status code.
type HTTPError struct {
	Code    int
	Message string
}

func (e *HTTPError) Error() string {
	return e.Message
}

// NewHTTPError creates a new HTTPError with the given code and message.
func NewHTTPError(code int, message string) *HTTPError {
	return &HTTPError{
		Code:    code,
		Message: message,
	}
}

// ErrNoSpotsAvailable is the capacity-exhausted outcome: every spot in the
// lot conflicts with the requested interval. It is an expected result, not a
// fault, so callers can offer alternate times.
var ErrNoSpotsAvailable = errors.New("no spots available for the requested time range")

// Validation creates a rejection for malformed or missing input. These are
// raised before any store access.
func Validation(message string) *HTTPError {
	return NewHTTPError(http.StatusBadRequest, message)
}

// IsValidation reports whether err is an input rejection.
func IsValidation(err error) bool {
	var he *HTTPError
	return errors.As(err, &he) && he.Code == http.StatusBadRequest
}

// Helper for common errors
var (
	ErrUnauthorized = func(msg string) *HTTPError { return NewHTTPError(http.StatusUnauthorized, msg) }
)
