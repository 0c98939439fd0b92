package domain

import (
	"errors"
	"fmt"
	"net/http"
)

// APIError is the uniform error shape returned by the GitHub gateway.
// It carries a display-ready message and the upstream HTTP status, so
// callers can match on it instead of probing for marker fields.
type APIError struct {
	// StatusCode is the upstream HTTP status.
	StatusCode int

	// Message is human-readable and safe to show verbatim.
	Message string

	// URL is the request URL that failed, when known.
	URL string
}

func (e *APIError) Error() string {
	if e.URL != "" {
		return fmt.Sprintf("github: API error %d: %s (URL: %s)", e.StatusCode, e.Message, e.URL)
	}
	return fmt.Sprintf("github: API error %d: %s", e.StatusCode, e.Message)
}

// Unwrap maps well-known statuses onto domain sentinel errors so
// errors.Is works alongside errors.As.
func (e *APIError) Unwrap() error {
	switch e.StatusCode {
	case http.StatusNotFound:
		return ErrNotFound
	case http.StatusForbidden:
		return ErrRateLimited
	case http.StatusUnprocessableEntity:
		return ErrInvalidQuery
	default:
		return nil
	}
}

// AsAPIError extracts a typed gateway error from an error chain.
func AsAPIError(err error) (*APIError, bool) {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr, true
	}
	return nil, false
}

// IsNotFound checks if the error indicates a missing user or repository.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsRateLimited checks if the error indicates API rate limiting.
func IsRateLimited(err error) bool {
	return errors.Is(err, ErrRateLimited)
}
