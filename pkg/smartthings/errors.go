package smartthings

import (
	"errors"
	"fmt"
)

var (
	// ErrConfig indicates missing or malformed client configuration.
	// It is fatal at startup and raised before any network call.
	ErrConfig = errors.New("configuration error")

	// ErrUnauthorized indicates the API rejected the bearer token
	ErrUnauthorized = errors.New("smartthings rejected the access token")

	// ErrDeviceNotFound indicates the device id did not resolve
	ErrDeviceNotFound = errors.New("device not found")

	// ErrNetwork indicates a connectivity failure or timeout
	ErrNetwork = errors.New("network error")
)

// APIError carries the error body the SmartThings API returns on a
// non-2xx response that does not map to a sentinel above.
type APIError struct {
	StatusCode int
	RequestID  string
	Code       string
	Message    string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("smartthings api error (status %d, code %s): %s", e.StatusCode, e.Code, e.Message)
	}
	return fmt.Sprintf("smartthings api error (status %d)", e.StatusCode)
}
