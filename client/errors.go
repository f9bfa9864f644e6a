package client

import "fmt"

// ErrorCode represents the type of error that occurred.
type ErrorCode int

const (
	// ErrUnknown is an unknown error.
	ErrUnknown ErrorCode = iota
	// ErrEmptyContent is returned when trying to create a paste with empty content.
	ErrEmptyContent
	// ErrPayloadTooLarge is returned when the content exceeds the maximum size.
	ErrPayloadTooLarge
	// ErrRateLimited is returned when rate limited by the service.
	ErrRateLimited
	// ErrNotFound is returned when a paste doesn't exist or has expired.
	ErrNotFound
	// ErrUnauthorized is returned when the API key is missing or invalid.
	ErrUnauthorized
	// ErrBadRequest is returned for requests the service rejects as invalid.
	ErrBadRequest
	// ErrServer is returned for server-side errors.
	ErrServer
)

// Error represents an error from the Pastery API.
type Error struct {
	Code    ErrorCode
	Message string
}

func (e *Error) Error() string {
	return fmt.Sprintf("pastery: %s", e.Message)
}

// IsNotFound returns true if the error indicates the paste was not found.
func IsNotFound(err error) bool {
	if e, ok := err.(*Error); ok {
		return e.Code == ErrNotFound
	}
	return false
}

// IsRateLimited returns true if the error indicates rate limiting.
func IsRateLimited(err error) bool {
	if e, ok := err.(*Error); ok {
		return e.Code == ErrRateLimited
	}
	return false
}

// IsUnauthorized returns true if the error indicates a bad or missing API key.
func IsUnauthorized(err error) bool {
	if e, ok := err.(*Error); ok {
		return e.Code == ErrUnauthorized
	}
	return false
}

// IsPayloadTooLarge returns true if the error indicates the payload was too large.
func IsPayloadTooLarge(err error) bool {
	if e, ok := err.(*Error); ok {
		return e.Code == ErrPayloadTooLarge
	}
	return false
}
