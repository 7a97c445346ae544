package api

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	// ErrUnavailable is a transport-level failure: the request never reached
	// the server or no response came back (timeouts included). Distinct from
	// a server-reported rejection so callers can tell the two apart.
	ErrUnavailable = errors.New("server unavailable")

	// ErrUnauthorized matches server-reported 401/403 responses.
	ErrUnauthorized = errors.New("unauthorized")
)

// APIError is a server-reported failure: the server answered with a non-2xx
// status. Message is taken from the error body when one is present and
// parseable, otherwise it is a generic status-based fallback.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return e.Message
}

func (e *APIError) Unwrap() error {
	if e.Status == http.StatusUnauthorized || e.Status == http.StatusForbidden {
		return ErrUnauthorized
	}
	return nil
}

func newAPIError(status int, msg string) *APIError {
	if msg == "" {
		msg = fmt.Sprintf("server returned %d %s", status, http.StatusText(status))
	}
	return &APIError{Status: status, Message: msg}
}
