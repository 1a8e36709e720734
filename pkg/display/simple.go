package display

import (
	"fmt"
	"io"

	"github.com/0xmhha/pomodoro/pkg/aggregator"
	"github.com/0xmhha/pomodoro/pkg/session"
)

// simpleFormatter formats output as simple text.
type simpleFormatter struct {
	config Config
}

// FormatStats implements Formatter.FormatStats.
func (f *simpleFormatter) FormatStats(w io.Writer, report Report) error {
	stats := report.Stats
	if _, err := fmt.Fprintf(w, "Today: %d sessions, %s focus | Week: %d/%d (%.0f%%) | Streak: %d (best %d) | Total: %d sessions, %s focus\n",
		stats.SessionsToday,
		FormatDuration(stats.FocusSecondsToday),
		stats.SessionsThisWeek,
		report.WeeklyGoal,
		report.WeeklyProgress,
		stats.CurrentStreak,
		stats.LongestStreak,
		stats.TotalSessions,
		FormatDuration(stats.TotalFocusSeconds)); err != nil {
		return err
	}

	if f.config.Compact || len(report.Achievements) == 0 {
		return nil
	}

	for _, a := range report.Achievements {
		if _, err := fmt.Fprintf(w, "* %s: %s\n", a.Title, a.Description); err != nil {
			return err
		}
	}
	return nil
}

// FormatGroupedStats implements Formatter.FormatGroupedStats.
func (f *simpleFormatter) FormatGroupedStats(w io.Writer, groups []aggregator.Group, dim aggregator.Dimension) error {
	for _, g := range groups {
		if _, err := fmt.Fprintf(w, "%s: %d sessions (%d focus, %d break), %s focus\n",
			g.Key,
			g.Sessions,
			g.FocusSessions,
			g.BreakSessions,
			FormatDuration(g.FocusSeconds)); err != nil {
			return err
		}
	}

	return nil
}

// FormatSessions implements Formatter.FormatSessions.
func (f *simpleFormatter) FormatSessions(w io.Writer, sessions []session.Session) error {
	for _, s := range sessions {
		if _, err := fmt.Fprintf(w, "%s %s %s %s\n",
			s.Date,
			s.CompletedAt.Local().Format("15:04"),
			s.Type,
			FormatDuration(s.DurationSeconds)); err != nil {
			return err
		}
	}

	return nil
}
