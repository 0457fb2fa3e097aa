package errors

import (
	stdErrors "errors"
	"fmt"
	"net/http"
)

// StatusError is returned when the catalog answers with a non-2xx status.
type StatusError struct {
	Endpoint   string
	StatusCode int
	Body       string // first bytes of the response body, if any
}

func (e *StatusError) Error() string {
	if e.Body != "" {
		return fmt.Sprintf("%s: unexpected status %d: %s", e.Endpoint, e.StatusCode, e.Body)
	}
	return fmt.Sprintf("%s: unexpected status %d", e.Endpoint, e.StatusCode)
}

// NewStatusError creates a StatusError for the given endpoint and status code
func NewStatusError(endpoint string, statusCode int, body string) *StatusError {
	return &StatusError{
		Endpoint:   endpoint,
		StatusCode: statusCode,
		Body:       body,
	}
}

// IsStatusError checks if error is a StatusError
func IsStatusError(err error) bool {
	var statusErr *StatusError
	return stdErrors.As(err, &statusErr)
}

// IsNotFound reports whether err is a StatusError with HTTP 404.
func IsNotFound(err error) bool {
	var statusErr *StatusError
	if stdErrors.As(err, &statusErr) {
		return statusErr.StatusCode == http.StatusNotFound
	}
	return false
}
