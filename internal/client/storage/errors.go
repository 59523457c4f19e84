package storage

import "errors"

// Common client storage errors
var (
	// ErrStorageClosed indicates that the backing store is unavailable.
	// Callers must treat this as retryable, not fatal.
	ErrStorageClosed = errors.New("storage is closed")

	// ErrUpdateNotFound indicates that pending update was not found
	ErrUpdateNotFound = errors.New("pending update not found")

	// ErrCacheMiss indicates that no cached profile exists for the owner
	ErrCacheMiss = errors.New("cached profile not found")
)
