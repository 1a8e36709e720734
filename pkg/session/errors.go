package session

import "errors"

// Common errors returned by the session log.
var (
	// ErrInvalidSession is returned when a record fails validation.
	ErrInvalidSession = errors.New("invalid session")

	// ErrInvalidMode is returned for an unknown mode name.
	ErrInvalidMode = errors.New("invalid mode: must be focus or break")

	// ErrPersist is returned when the log could not be written to the store.
	// The appended session is still kept in memory.
	ErrPersist = errors.New("failed to persist session log")
)
