package storage

import "errors"

// Common storage errors
var (
	// ErrProfileNotFound indicates that profile was not found in storage
	ErrProfileNotFound = errors.New("profile not found")
)
