// Package settings holds the user-configurable timer durations and the
// sound flag, validated and persisted under the "settings" key.
//
// Values are never rejected: durations outside their range are clamped,
// and anything missing or of the wrong type falls back to its default.
//
// Example usage:
//
//	prefs := settings.NewStore(kv, logger.Default())
//
//	focus := 200
//	current := prefs.Update(settings.Update{FocusDurationMinutes: &focus})
//	fmt.Println(current.FocusDurationMinutes) // 120
package settings

import (
	"time"

	"github.com/0xmhha/pomodoro/pkg/session"
)

// Key is the store key holding the settings record.
const Key = "settings"

// Duration limits and defaults, in minutes.
const (
	MinFocusMinutes     = 1
	MaxFocusMinutes     = 120
	DefaultFocusMinutes = 25

	MinBreakMinutes     = 1
	MaxBreakMinutes     = 60
	DefaultBreakMinutes = 5

	DefaultSoundEnabled = true
)

// Settings is the persisted user configuration.
type Settings struct {
	// FocusDurationMinutes is the focus countdown length, in [1,120].
	FocusDurationMinutes int `json:"focusDuration" yaml:"focus_minutes"`

	// BreakDurationMinutes is the break countdown length, in [1,60].
	BreakDurationMinutes int `json:"breakDuration" yaml:"break_minutes"`

	// SoundEnabled toggles the near-end and completion tones.
	SoundEnabled bool `json:"soundEnabled" yaml:"sound_enabled"`
}

// Default returns the default settings (25 / 5 minutes, sound on).
func Default() Settings {
	return Settings{
		FocusDurationMinutes: DefaultFocusMinutes,
		BreakDurationMinutes: DefaultBreakMinutes,
		SoundEnabled:         DefaultSoundEnabled,
	}
}

// DurationSeconds returns the configured countdown length for mode.
func (s Settings) DurationSeconds(mode session.Mode) int {
	if mode == session.ModeBreak {
		return s.BreakDurationMinutes * 60
	}
	return s.FocusDurationMinutes * 60
}

// Duration returns the configured countdown length for mode as a time.Duration.
func (s Settings) Duration(mode session.Mode) time.Duration {
	return time.Duration(s.DurationSeconds(mode)) * time.Second
}

// Update is a partial settings change; nil fields are left untouched.
type Update struct {
	FocusDurationMinutes *int  `json:"focusDuration,omitempty" yaml:"focus_minutes,omitempty"`
	BreakDurationMinutes *int  `json:"breakDuration,omitempty" yaml:"break_minutes,omitempty"`
	SoundEnabled         *bool `json:"soundEnabled,omitempty" yaml:"sound_enabled,omitempty"`
}

// Empty reports whether u changes nothing.
func (u Update) Empty() bool {
	return u.FocusDurationMinutes == nil && u.BreakDurationMinutes == nil && u.SoundEnabled == nil
}

// Apply returns s with the fields of u merged in, each clamped to range.
func (s Settings) Apply(u Update) Settings {
	if u.FocusDurationMinutes != nil {
		s.FocusDurationMinutes = ClampFocus(*u.FocusDurationMinutes)
	}
	if u.BreakDurationMinutes != nil {
		s.BreakDurationMinutes = ClampBreak(*u.BreakDurationMinutes)
	}
	if u.SoundEnabled != nil {
		s.SoundEnabled = *u.SoundEnabled
	}
	return s
}

// ClampFocus limits a focus duration to [1,120] minutes.
func ClampFocus(minutes int) int {
	return clamp(minutes, MinFocusMinutes, MaxFocusMinutes)
}

// ClampBreak limits a break duration to [1,60] minutes.
func ClampBreak(minutes int) int {
	return clamp(minutes, MinBreakMinutes, MaxBreakMinutes)
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
