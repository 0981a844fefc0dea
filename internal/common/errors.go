// Package common defines shared constants and sentinel errors used across
// the client and server layers. Callers should use errors.Is to match these
// values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrNotFound  = errors.New("user not found")
	ErrDuplicate = errors.New("duplicate key")

	// Generic internal flow control.
	ErrInternal = errors.New("internal error")

	// ErrMutationInFlight is returned by the session when a create, update
	// or delete is requested while another mutation has not finished yet.
	ErrMutationInFlight = errors.New("another operation is still in progress")
)
