// Package store provides the key-value persistence used by the pomodoro timer.
//
// The timer persists exactly two JSON documents, "sessions" and "settings",
// so the contract is a flat string-keyed byte store. Three backends are
// available: BoltDB (default), SQLite and an in-memory map for tests.
//
// Example usage:
//
//	kv, err := store.New(store.Config{
//	    Driver: store.DriverBolt,
//	    Path:   "~/.config/pomodoro/pomodoro.db",
//	}, logger.Default())
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer kv.Close()
//
//	if err := kv.Put("settings", data); err != nil {
//	    log.Printf("persist failed: %v", err)
//	}
package store

import "time"

// Driver names a storage backend.
type Driver string

// Supported drivers.
const (
	DriverBolt   Driver = "bolt"
	DriverSQLite Driver = "sqlite"
	DriverMemory Driver = "memory"
)

// Store is a minimal key-value store.
type Store interface {
	// Get returns the value stored under key.
	//
	// Returns ErrNotFound if the key has never been written.
	Get(key string) ([]byte, error)

	// Put stores value under key, replacing any previous value.
	Put(key string, value []byte) error

	// Delete removes key. Deleting a missing key is not an error.
	Delete(key string) error

	// Keys returns all stored keys in ascending order.
	Keys() ([]string, error)

	// Close releases the underlying resources.
	Close() error
}

// Config contains store configuration.
type Config struct {
	// Driver selects the backend (default: bolt).
	Driver Driver

	// Path is the database file path for bolt and sqlite. A leading ~ is
	// expanded to the user's home directory.
	Path string

	// Timeout is how long bolt waits for the file lock (default: 1 second).
	Timeout time.Duration
}
