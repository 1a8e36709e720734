package monitor

import "errors"

var (
	// ErrMonitorClosed is returned when operations are attempted on a closed session.
	ErrMonitorClosed = errors.New("monitor is closed")

	// ErrMonitorRunning is returned when trying to start an already running session.
	ErrMonitorRunning = errors.New("monitor is already running")

	// ErrMonitorNotRunning is returned when trying to stop a non-running session.
	ErrMonitorNotRunning = errors.New("monitor is not running")

	// ErrInvalidConfig is returned when a required collaborator is missing.
	ErrInvalidConfig = errors.New("invalid monitor configuration")
)
