package backend

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidCredentials covers every 4xx from a login endpoint.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrUnauthorized means the backend rejected the bearer token.
	ErrUnauthorized = errors.New("unauthorized")
)

// APIError is a non-2xx backend reply outside the auth cases, with the
// backend's own message when it sent one.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("backend returned %d: %s", e.Status, e.Message)
	}
	return fmt.Sprintf("backend returned %d", e.Status)
}
