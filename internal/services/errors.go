// internal/services/errors.go
package services

import "errors"

// Sentinel errors shared by all services. Handlers translate them into the
// HTTP error envelope; anything unwrapped falls back to a 500.
var (
	ErrNotFound          = errors.New("not found")
	ErrConflict          = errors.New("already exists")
	ErrInsufficientStock = errors.New("insufficient stock")
	ErrForbidden         = errors.New("forbidden")
	ErrInvalidTransition = errors.New("invalid status transition")
)
