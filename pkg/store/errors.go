package store

import "errors"

// Common errors returned by stores.
var (
	// ErrNotFound is returned when a key has no value.
	ErrNotFound = errors.New("key not found")

	// ErrEmptyKey is returned when an empty key is used.
	ErrEmptyKey = errors.New("key cannot be empty")

	// ErrClosed is returned when a closed store is used.
	ErrClosed = errors.New("store is closed")

	// ErrUnknownDriver is returned for an unsupported driver name.
	ErrUnknownDriver = errors.New("unknown storage driver")

	// ErrEmptyPath is returned when a file-backed driver has no path.
	ErrEmptyPath = errors.New("database path cannot be empty")
)
