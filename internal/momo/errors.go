package momo

import "fmt"

// APIError is returned for any non-2xx provider response. Body holds the raw
// response so callers can inspect provider error details.
type APIError struct {
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("momo api error: status %d: %s", e.StatusCode, e.Body)
}
