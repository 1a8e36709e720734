// Package session provides the append-only log of completed Pomodoro sessions.
//
// The log is the single source of truth for every statistic. It is stored
// as one JSON array under the "sessions" key and rewritten as a whole on
// every append; records are never edited or deleted.
//
// Example usage:
//
//	sessions := session.NewLog(kv, logger.Default())
//
//	s := session.NewSession(session.ModeFocus, 25*60, time.Now())
//	if err := sessions.Append(s); err != nil {
//	    log.Printf("session kept in memory only: %v", err)
//	}
//
//	for _, s := range sessions.All() {
//	    fmt.Println(s.Date, s.Type, s.DurationSeconds)
//	}
package session

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Key is the store key holding the session log.
const Key = "sessions"

// DateLayout is the calendar-day format of Session.Date.
const DateLayout = "2006-01-02"

// Mode is the kind of countdown a session measured.
type Mode string

// Timer modes.
const (
	ModeFocus Mode = "focus"
	ModeBreak Mode = "break"
)

// Opposite returns the mode that follows m (focus -> break -> focus).
func (m Mode) Opposite() Mode {
	if m == ModeFocus {
		return ModeBreak
	}
	return ModeFocus
}

// Valid reports whether m is a known mode.
func (m Mode) Valid() bool {
	return m == ModeFocus || m == ModeBreak
}

// String returns the mode name.
func (m Mode) String() string {
	return string(m)
}

// ParseMode converts a user-supplied name into a Mode.
func ParseMode(s string) (Mode, error) {
	m := Mode(strings.ToLower(strings.TrimSpace(s)))
	if !m.Valid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidMode, s)
	}
	return m, nil
}

// Session is one completed countdown.
type Session struct {
	// ID is an opaque unique identifier.
	ID string `json:"id"`

	// Type is the mode that was completed.
	Type Mode `json:"type"`

	// DurationSeconds is the full configured duration of the countdown,
	// not the wall-clock time it took.
	DurationSeconds int `json:"duration"`

	// CompletedAt is when the countdown reached zero.
	CompletedAt time.Time `json:"completedAt"`

	// Date is the local calendar day of CompletedAt (YYYY-MM-DD).
	Date string `json:"date"`
}

// NewSession creates a session record completed at now.
//
// The date is taken from now's own location, so pass a local time.
func NewSession(mode Mode, durationSeconds int, now time.Time) Session {
	return Session{
		ID:              uuid.NewString(),
		Type:            mode,
		DurationSeconds: durationSeconds,
		CompletedAt:     now,
		Date:            now.Format(DateLayout),
	}
}

// Validate checks that a record can be appended to the log.
func (s Session) Validate() error {
	if s.ID == "" {
		return fmt.Errorf("%w: empty id", ErrInvalidSession)
	}
	if !s.Type.Valid() {
		return fmt.Errorf("%w: unknown type %q", ErrInvalidSession, s.Type)
	}
	if s.DurationSeconds <= 0 {
		return fmt.Errorf("%w: duration must be > 0", ErrInvalidSession)
	}
	if _, err := time.Parse(DateLayout, s.Date); err != nil {
		return fmt.Errorf("%w: bad date %q", ErrInvalidSession, s.Date)
	}
	return nil
}

// Day parses Date as a local midnight.
func (s Session) Day() (time.Time, error) {
	return time.ParseInLocation(DateLayout, s.Date, time.Local)
}
