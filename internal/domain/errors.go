package domain

import (
	"fmt"
	"strings"
)

// ValidationError is a local failure detected before any network call.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// HTTPError is a completed call with a status outside 200-299. Body holds the
// parsed response, or its raw text when it was not JSON.
type HTTPError struct {
	StatusCode int
	Body       Body
}

func (e *HTTPError) Error() string {
	if msg := e.Message(); msg != "" {
		return fmt.Sprintf("HTTP %d: %s", e.StatusCode, msg)
	}
	return fmt.Sprintf("HTTP %d", e.StatusCode)
}

// Message extracts the backend's message/error field, or the raw text.
func (e *HTTPError) Message() string {
	if msg := e.Body.Field("message", "error"); msg != "" {
		return msg
	}
	if e.Body.JSON {
		return ""
	}
	return strings.TrimSpace(e.Body.Raw)
}

// NetworkError is a transport-level failure: unreachable host, refused
// connection, cancelled context.
type NetworkError struct {
	Err error
}

func (e *NetworkError) Error() string {
	return "network error: " + e.Err.Error()
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}
