package api

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrMalformedResponse marks a response body that could not be decoded
var ErrMalformedResponse = errors.New("malformed schedule response")

// FetchError describes a failed schedule request
type FetchError struct {
	URL        string
	StatusCode int // 0 when no response was received
	Err        error
}

func (e *FetchError) Error() string {
	if e.StatusCode != 0 && e.StatusCode != http.StatusOK {
		return fmt.Sprintf("schedule request failed: HTTP %d", e.StatusCode)
	}
	return fmt.Sprintf("schedule request failed: %v", e.Err)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

// Temporary reports whether repeating the request may succeed
func (e *FetchError) Temporary() bool {
	return e.StatusCode == 0 || e.StatusCode >= 500
}
