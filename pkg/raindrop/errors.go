package raindrop

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrMissingToken is returned before any network I/O when the client was
// constructed without an API token. It counts as an authentication failure,
// not a transport failure.
var ErrMissingToken = errors.New("raindrop: API token is not set")

// APIError is a request the remote service answered but rejected. Message
// carries the service's errorMessage verbatim when one was provided.
type APIError struct {
	StatusCode int
	Endpoint   string
	Message    string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("raindrop: %s: %s (status %d)", e.Endpoint, e.Message, e.StatusCode)
	}
	return fmt.Sprintf("raindrop: %s: status %d", e.Endpoint, e.StatusCode)
}

// IsAuthError reports whether err is an authentication or authorization
// failure: a missing token, or a 401/403 answer from the remote service.
func IsAuthError(err error) bool {
	if errors.Is(err, ErrMissingToken) {
		return true
	}
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode == http.StatusUnauthorized || apiErr.StatusCode == http.StatusForbidden
	}
	return false
}

// IsNotFound reports whether err means the referenced id does not exist on
// the remote service.
func IsNotFound(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusNotFound
}
