package api

import "fmt"

// NetworkError means the request never produced an HTTP response (refused
// connection, DNS failure, timeout).
type NetworkError struct {
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("network error: %v", e.Err)
}

func (e *NetworkError) Unwrap() error { return e.Err }

// ServerError is a non-2xx response. Message carries the server's own
// message when the body had one, otherwise the HTTP status text, so it can
// be shown to the user as-is.
type ServerError struct {
	StatusCode int
	Message    string
}

func (e *ServerError) Error() string { return e.Message }

// MalformedResponseError is a 2xx response whose body could not be parsed as
// the expected JSON shape.
type MalformedResponseError struct {
	Err error
}

func (e *MalformedResponseError) Error() string {
	return fmt.Sprintf("malformed server response: %v", e.Err)
}

func (e *MalformedResponseError) Unwrap() error { return e.Err }
