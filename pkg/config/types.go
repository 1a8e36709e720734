// Package config provides configuration management for the pomodoro CLI.
//
// Configuration is loaded from multiple sources with the following precedence:
// 1. Environment variables (highest priority)
// 2. Configuration file
// 3. Default values (lowest priority)
//
// The optional settings section overrides the persisted timer settings; it
// is applied through the engine on start-up and whenever the file changes
// while the timer is running.
//
// Example usage:
//
//	cfg, err := config.Load()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Printf("Database: %s (%s)\n", cfg.Storage.DBPath, cfg.Storage.Driver)
package config

import (
	"time"

	"github.com/0xmhha/pomodoro/pkg/quotes"
	"github.com/0xmhha/pomodoro/pkg/settings"
	"github.com/0xmhha/pomodoro/pkg/store"
)

// Config represents the complete application configuration.
//
// Invariants:
// - Storage.Driver is bolt, sqlite or memory
// - Storage.DBPath is set unless Driver is memory
// - Timer.TickInterval, Quotes.RotationInterval and Display.RefreshRate must be > 0
// - Timer.NearEndSeconds must be >= 0
// - Goals.WeeklySessions must be > 0.
type Config struct {
	// Storage settings
	Storage StorageConfig `yaml:"storage" json:"storage"`

	// Timer engine settings
	Timer TimerConfig `yaml:"timer" json:"timer"`

	// Quote rotation settings
	Quotes QuotesConfig `yaml:"quotes" json:"quotes"`

	// Goal settings
	Goals GoalsConfig `yaml:"goals" json:"goals"`

	// Display settings
	Display DisplayConfig `yaml:"display" json:"display"`

	// Logging settings
	Logging LoggingConfig `yaml:"logging" json:"logging"`

	// Settings overrides the persisted durations and sound flag.
	// Unset fields leave the persisted value alone.
	Settings settings.Update `yaml:"settings,omitempty" json:"settings,omitempty"`
}

// StorageConfig contains storage-related settings.
type StorageConfig struct {
	// Backend driver (bolt, sqlite, memory)
	Driver string `yaml:"driver" json:"driver"`

	// Path to the database file
	DBPath string `yaml:"db_path" json:"db_path"`

	// How long to wait for the bolt file lock
	Timeout time.Duration `yaml:"timeout" json:"timeout"`
}

// TimerConfig contains timer engine settings.
type TimerConfig struct {
	// Wall-clock length of one countdown second
	TickInterval time.Duration `yaml:"tick_interval" json:"tick_interval"`

	// Size of the near-end notification window, in seconds
	NearEndSeconds int `yaml:"near_end_seconds" json:"near_end_seconds"`
}

// QuotesConfig contains quote rotation settings.
type QuotesConfig struct {
	// How often the displayed quote changes
	RotationInterval time.Duration `yaml:"rotation_interval" json:"rotation_interval"`

	// Restrict rotation to one category (empty for all)
	Category string `yaml:"category" json:"category"`
}

// GoalsConfig contains productivity goals.
type GoalsConfig struct {
	// Target number of sessions per week
	WeeklySessions int `yaml:"weekly_sessions" json:"weekly_sessions"`
}

// DisplayConfig contains display-related settings.
type DisplayConfig struct {
	// Output format (table, json, simple)
	Format string `yaml:"format" json:"format"`

	// Compact statistics output
	Compact bool `yaml:"compact" json:"compact"`

	// Clear the screen between frames of the interactive timer
	ClearScreen bool `yaml:"clear_screen" json:"clear_screen"`

	// Interactive timer redraw rate
	RefreshRate time.Duration `yaml:"refresh_rate" json:"refresh_rate"`
}

// LoggingConfig contains logging settings.
type LoggingConfig struct {
	// Log level (debug, info, warn, error)
	Level string `yaml:"level" json:"level"`

	// Log output destination (stdout, stderr, file path)
	Output string `yaml:"output" json:"output"`

	// Log format (text, json)
	Format string `yaml:"format" json:"format"`
}

// Validate checks if the configuration satisfies all invariants.
//
// Thread-safety: This method is read-only and thread-safe.
func (c *Config) Validate() error {
	// Validate storage config
	switch store.Driver(c.Storage.Driver) {
	case store.DriverBolt, store.DriverSQLite:
		if c.Storage.DBPath == "" {
			return ErrEmptyDBPath
		}
	case store.DriverMemory:
	default:
		return ErrInvalidStorageDriver
	}

	// Validate timer config
	if c.Timer.TickInterval <= 0 {
		return ErrInvalidTickInterval
	}
	if c.Timer.NearEndSeconds < 0 {
		return ErrInvalidNearEndSeconds
	}

	// Validate quotes config
	if c.Quotes.RotationInterval <= 0 {
		return ErrInvalidRotationInterval
	}
	validCategories := map[quotes.Category]bool{
		"":                          true,
		quotes.CategoryProductivity: true,
		quotes.CategoryFocus:        true,
		quotes.CategorySuccess:      true,
		quotes.CategoryMotivation:   true,
	}
	if !validCategories[quotes.Category(c.Quotes.Category)] {
		return ErrInvalidQuoteCategory
	}

	if c.Goals.WeeklySessions <= 0 {
		return ErrInvalidWeeklyGoal
	}

	// Validate display config
	validFormats := map[string]bool{
		"table":  true,
		"json":   true,
		"simple": true,
	}
	if !validFormats[c.Display.Format] {
		return ErrInvalidDisplayFormat
	}
	if c.Display.RefreshRate <= 0 {
		return ErrInvalidRefreshRate
	}

	// Validate logging config
	validLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	if !validLevels[c.Logging.Level] {
		return ErrInvalidLogLevel
	}

	validLogFormats := map[string]bool{
		"text": true,
		"json": true,
	}
	if !validLogFormats[c.Logging.Format] {
		return ErrInvalidLogFormat
	}

	return nil
}

// Default returns a configuration with default values.
func Default() *Config {
	return &Config{
		Storage: StorageConfig{
			Driver:  string(store.DriverBolt),
			DBPath:  defaultDBPath(),
			Timeout: time.Second,
		},
		Timer: TimerConfig{
			TickInterval:   time.Second,
			NearEndSeconds: 10,
		},
		Quotes: QuotesConfig{
			RotationInterval: 30 * time.Second,
		},
		Goals: GoalsConfig{
			WeeklySessions: 35,
		},
		Display: DisplayConfig{
			Format:      "table",
			ClearScreen: true,
			RefreshRate: 250 * time.Millisecond,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Output: "stderr",
			Format: "text",
		},
	}
}
