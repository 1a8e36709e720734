// Package monitor runs a live timer session for an interactive display.
//
// A LiveSession combines the timer engine, the quote rotator and an
// optional config-file watcher into one stream of Updates. It forwards
// engine events as they happen, emits a periodic refresh, and re-applies
// the settings overrides of the config file whenever the file changes.
//
// Example usage:
//
//	live, err := monitor.New(monitor.Config{
//	    RefreshInterval: 250 * time.Millisecond,
//	    ConfigPath:      loader.Path(),
//	}, engine, rotator, w, loader, log)
//	if err != nil {
//	    return err
//	}
//	defer live.Close()
//
//	if err := live.Start(ctx); err != nil {
//	    return err
//	}
//	for update := range live.Updates() {
//	    render(update)
//	}
package monitor

import (
	"context"
	"time"

	"github.com/0xmhha/pomodoro/pkg/aggregator"
	"github.com/0xmhha/pomodoro/pkg/config"
	"github.com/0xmhha/pomodoro/pkg/quotes"
	"github.com/0xmhha/pomodoro/pkg/settings"
	"github.com/0xmhha/pomodoro/pkg/timer"
)

// Config holds the configuration for the live session.
type Config struct {
	// RefreshInterval is the interval between periodic updates.
	// Default: 1s.
	RefreshInterval time.Duration

	// ConfigPath is the config file to watch for settings overrides.
	// Empty disables reloading.
	ConfigPath string

	// WeeklyGoal is the session target used for WeeklyProgress.
	// Default: aggregator.DefaultWeeklyGoal.
	WeeklyGoal int
}

// Timer is the part of the timer engine the live session drives.
type Timer interface {
	State() timer.State
	Stats() aggregator.Statistics
	Subscribe(buffer int) <-chan timer.Event
	UpdateSettings(u settings.Update) settings.Settings
}

// QuoteSource supplies the displayed quote and rotates it in the background.
type QuoteSource interface {
	Current() quotes.Quote
	Run(ctx context.Context, onRotate func(quotes.Quote))
}

// ConfigLoader reloads the configuration file.
type ConfigLoader interface {
	Load() (*config.Config, error)
}

// Update represents a live session update.
type Update struct {
	// Timestamp of the update
	Timestamp time.Time

	// State is the engine snapshot
	State timer.State

	// Quote is the current quote
	Quote quotes.Quote

	// Stats are the statistics derived from the session log
	Stats aggregator.Statistics

	// WeeklyProgress is SessionsThisWeek as a percentage of the weekly goal
	WeeklyProgress float64

	// Event is the engine event that triggered the update, nil for
	// periodic refreshes, quote rotations and reloads
	Event *timer.Event

	// Reloaded is set when the update follows a config reload
	Reloaded bool
}
