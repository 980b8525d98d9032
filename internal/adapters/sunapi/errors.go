package sunapi

import "fmt"

// APIError represents an error reported by the sunrise-sunset API, either as
// an HTTP status or as a non-OK "status" field.
type APIError struct {
	StatusCode int
	Status     string
	Message    string
}

func (e *APIError) Error() string {
	if e.Status != "" {
		return fmt.Sprintf("sunapi: %s (api status %q)", e.Message, e.Status)
	}
	return fmt.Sprintf("sunapi: %s (status %d)", e.Message, e.StatusCode)
}

// DataError marks a response that came back OK but could not be decoded into
// a usable solar day.
type DataError struct {
	Field string
	Err   error
}

func (e *DataError) Error() string {
	return fmt.Sprintf("sunapi: invalid %s: %v", e.Field, e.Err)
}

func (e *DataError) Unwrap() error {
	return e.Err
}

// ClientError wraps transport-level failures for external consumers.
type ClientError struct {
	Message string
	Err     error
}

func (e *ClientError) Error() string {
	return fmt.Sprintf("sunapi client: %s: %v", e.Message, e.Err)
}

func (e *ClientError) Unwrap() error {
	return e.Err
}
