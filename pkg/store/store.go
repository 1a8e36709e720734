package store

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/0xmhha/pomodoro/pkg/logger"
)

// New opens the store selected by cfg.Driver.
//
// Returns ErrUnknownDriver for unsupported drivers and ErrEmptyPath when a
// file-backed driver is given no path.
func New(cfg Config, log logger.Logger) (Store, error) {
	if cfg.Driver == "" {
		cfg.Driver = DriverBolt
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = time.Second
	}

	switch cfg.Driver {
	case DriverMemory:
		return NewMemory(), nil
	case DriverBolt, DriverSQLite:
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownDriver, cfg.Driver)
	}

	if cfg.Path == "" {
		return nil, ErrEmptyPath
	}

	path := ExpandHome(cfg.Path)
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return nil, fmt.Errorf("failed to create database directory: %w", err)
	}

	if cfg.Driver == DriverSQLite {
		return openSQLite(path, log)
	}
	return openBolt(path, cfg.Timeout, log)
}

// ExpandHome expands a leading ~ to the user's home directory.
func ExpandHome(path string) string {
	if !strings.HasPrefix(path, "~") {
		return path
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return path
	}

	if path == "~" {
		return homeDir
	}

	return filepath.Join(homeDir, path[2:])
}
