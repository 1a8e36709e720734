package timer

import "errors"

// Common errors returned by the engine.
var (
	// ErrClosed is returned by operations on a closed engine.
	ErrClosed = errors.New("engine closed")
)
