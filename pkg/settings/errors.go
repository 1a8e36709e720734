package settings

import "errors"

// Common errors returned by the settings package.
var (
	// ErrCorruptSettings is returned when a persisted payload is not a JSON object.
	ErrCorruptSettings = errors.New("corrupt settings payload")

	// ErrUnknownPreset is returned when a preset name is not recognized.
	ErrUnknownPreset = errors.New("unknown preset: must be traditional, extended, or short")
)
