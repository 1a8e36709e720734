package settings

import (
	"encoding/json"
	"fmt"
	"math"
)

// Decode parses a persisted settings record field by field.
//
// A field that is absent or has the wrong JSON type takes its default; a
// numeric duration out of range is clamped. ErrCorruptSettings is returned
// together with Default() when data is not a JSON object.
func Decode(data []byte) (Settings, error) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil || fields == nil {
		return Default(), fmt.Errorf("%w: %v", ErrCorruptSettings, err)
	}

	s := Default()
	if minutes, ok := decodeMinutes(fields["focusDuration"]); ok {
		s.FocusDurationMinutes = ClampFocus(minutes)
	}
	if minutes, ok := decodeMinutes(fields["breakDuration"]); ok {
		s.BreakDurationMinutes = ClampBreak(minutes)
	}
	if raw, ok := fields["soundEnabled"]; ok {
		var enabled bool
		if err := json.Unmarshal(raw, &enabled); err == nil {
			s.SoundEnabled = enabled
		}
	}

	return s, nil
}

// decodeMinutes accepts any JSON number, rounding fractions.
func decodeMinutes(raw json.RawMessage) (int, bool) {
	if raw == nil {
		return 0, false
	}

	var f float64
	if err := json.Unmarshal(raw, &f); err != nil {
		return 0, false
	}
	if f > math.MaxInt32 {
		f = math.MaxInt32
	}
	if f < math.MinInt32 {
		f = math.MinInt32
	}
	return int(math.Round(f)), true
}
