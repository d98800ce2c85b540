// Package common defines shared constants and sentinel errors used across
// the ScinDN gateway layers. Callers should use errors.Is to match these
// values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound = errors.New("not found")

	// Service-level errors (generic/internal flow control).
	ErrorInternal     = errors.New("internal error")
	ErrorUnauthorized = errors.New("unauthorized")

	// Request validation errors (malformed origin, missing field, oversized TTL).
	ErrorValidation = errors.New("validation error")

	// Auth errors (invalid or malformed collaborator token).
	ErrInvalidToken = errors.New("invalid token")
)
