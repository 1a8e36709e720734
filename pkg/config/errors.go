package config

import "errors"

// Common errors returned by the config package.
var (
	// ErrInvalidStorageDriver is returned when the storage driver is not recognized.
	ErrInvalidStorageDriver = errors.New("invalid storage driver: must be bolt, sqlite, or memory")

	// ErrEmptyDBPath is returned when a file-backed driver has no database path.
	ErrEmptyDBPath = errors.New("database path is required for bolt and sqlite")

	// ErrInvalidTickInterval is returned when tick interval is <= 0.
	ErrInvalidTickInterval = errors.New("invalid tick interval: must be > 0")

	// ErrInvalidNearEndSeconds is returned when the near-end window is negative.
	ErrInvalidNearEndSeconds = errors.New("invalid near-end window: must be >= 0")

	// ErrInvalidRotationInterval is returned when rotation interval is <= 0.
	ErrInvalidRotationInterval = errors.New("invalid quote rotation interval: must be > 0")

	// ErrInvalidQuoteCategory is returned when the quote category is not recognized.
	ErrInvalidQuoteCategory = errors.New("invalid quote category: must be productivity, focus, success, or motivation")

	// ErrInvalidWeeklyGoal is returned when the weekly session goal is <= 0.
	ErrInvalidWeeklyGoal = errors.New("invalid weekly goal: must be > 0")

	// ErrInvalidDisplayFormat is returned when display format is not recognized.
	ErrInvalidDisplayFormat = errors.New("invalid display format: must be table, json, or simple")

	// ErrInvalidRefreshRate is returned when refresh rate is <= 0.
	ErrInvalidRefreshRate = errors.New("invalid refresh rate: must be > 0")

	// ErrInvalidLogLevel is returned when log level is not recognized.
	ErrInvalidLogLevel = errors.New("invalid log level: must be debug, info, warn, or error")

	// ErrInvalidLogFormat is returned when log format is not recognized.
	ErrInvalidLogFormat = errors.New("invalid log format: must be text or json")

	// ErrConfigNotFound is returned when config file is not found.
	ErrConfigNotFound = errors.New("config file not found")

	// ErrInvalidYAML is returned when config file has invalid YAML syntax.
	ErrInvalidYAML = errors.New("invalid YAML syntax in config file")
)
