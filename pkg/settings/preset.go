package settings

import (
	"fmt"
	"strings"
)

// Preset is a named focus/break pair.
type Preset struct {
	Name         string
	Description  string
	FocusMinutes int
	BreakMinutes int
}

var presets = []Preset{
	{Name: "traditional", Description: "classic Pomodoro", FocusMinutes: 25, BreakMinutes: 5},
	{Name: "extended", Description: "deep work", FocusMinutes: 45, BreakMinutes: 15},
	{Name: "short", Description: "quick sprints", FocusMinutes: 15, BreakMinutes: 3},
}

// Presets returns the built-in presets.
func Presets() []Preset {
	out := make([]Preset, len(presets))
	copy(out, presets)
	return out
}

// LookupPreset finds a preset by name (case-insensitive).
func LookupPreset(name string) (Preset, error) {
	for _, p := range presets {
		if strings.EqualFold(p.Name, strings.TrimSpace(name)) {
			return p, nil
		}
	}
	return Preset{}, fmt.Errorf("%w: %q", ErrUnknownPreset, name)
}

// Update returns the durations of p as a partial update; the sound flag is
// left alone.
func (p Preset) Update() Update {
	focus, brk := p.FocusMinutes, p.BreakMinutes
	return Update{
		FocusDurationMinutes: &focus,
		BreakDurationMinutes: &brk,
	}
}
