// Package timer implements the Pomodoro countdown engine.
//
// An Engine alternates between focus and break countdowns. Each countdown
// that reaches zero while running is recorded as exactly one session in
// the session log, after which the engine arms the opposite mode without
// starting it. Observers receive events through Subscribe.
//
// Example usage:
//
//	engine := timer.New(timer.Config{}, kv, sound.NewBell(os.Stdout), log)
//	defer engine.Close()
//
//	events := engine.Subscribe(16)
//	engine.Start()
//
//	for ev := range events {
//	    fmt.Println(ev.State.FormattedTime())
//	}
package timer

import (
	"fmt"
	"time"

	"github.com/0xmhha/pomodoro/pkg/session"
	"github.com/0xmhha/pomodoro/pkg/settings"
)

// Default engine options.
const (
	DefaultTickInterval   = time.Second
	DefaultNearEndSeconds = 10
)

// Config contains runtime options for the Engine.
type Config struct {
	// TickInterval is the wall-clock period of one countdown second.
	// Default: 1s.
	TickInterval time.Duration

	// NearEndSeconds is the size of the near-end window. Ticks leaving
	// between 1 and NearEndSeconds seconds emit EventNearEnd.
	// Default: 10.
	NearEndSeconds int

	// Now returns the current time. Used for session dates and statistics.
	// Default: time.Now.
	Now func() time.Time
}

// EventType defines the type of engine event.
type EventType string

const (
	// EventStateChange is emitted by Start, Pause, Reset and SwitchMode.
	EventStateChange EventType = "state_change"

	// EventTick is emitted after every countdown decrement.
	EventTick EventType = "tick"

	// EventNearEnd is emitted after a decrement into the near-end window.
	EventNearEnd EventType = "near_end"

	// EventCompleted is emitted when a countdown completes and its
	// session has been appended.
	EventCompleted EventType = "completed"

	// EventSettingsChange is emitted after settings were updated.
	EventSettingsChange EventType = "settings_change"
)

// State is a snapshot of the engine.
type State struct {
	Mode             session.Mode      `json:"mode"`
	SecondsRemaining int               `json:"secondsRemaining"`
	Running          bool              `json:"running"`
	Settings         settings.Settings `json:"settings"`
}

// DurationSeconds returns the configured countdown length of the mode.
func (s State) DurationSeconds() int {
	return s.Settings.DurationSeconds(s.Mode)
}

// FormattedTime renders the remaining time as zero-padded MM:SS.
func (s State) FormattedTime() string {
	return FormatClock(s.SecondsRemaining)
}

// Progress returns the completed share of the countdown in percent.
func (s State) Progress() float64 {
	d := s.DurationSeconds()
	if d <= 0 {
		return 0
	}
	return float64(d-s.SecondsRemaining) / float64(d) * 100
}

// FormatClock renders seconds as MM:SS. Minutes are not wrapped at 60.
func FormatClock(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	return fmt.Sprintf("%02d:%02d", seconds/60, seconds%60)
}

// Event represents an engine update for observers.
type Event struct {
	Type  EventType
	State State

	// Session is set on EventCompleted.
	Session *session.Session

	At time.Time
}
