package aggregator

import (
	"fmt"
	"sort"
	"time"

	"github.com/0xmhha/pomodoro/pkg/session"
)

// Summarize computes all statistics for sessions as of now.
func Summarize(sessions []session.Session, now time.Time) Statistics {
	today := now.Format(session.DateLayout)
	weekStart := WeekStart(now)

	var stats Statistics
	stats.TotalSessions = len(sessions)

	for _, s := range sessions {
		isFocus := s.Type == session.ModeFocus
		if isFocus {
			stats.FocusSessions++
			stats.TotalFocusSeconds += s.DurationSeconds
		} else {
			stats.BreakSessions++
		}

		if s.Date == today {
			stats.SessionsToday++
			if isFocus {
				stats.FocusSecondsToday += s.DurationSeconds
			}
		}

		if onOrAfter(s.Date, weekStart) {
			stats.SessionsThisWeek++
		}
	}

	stats.CurrentStreak = CurrentStreak(sessions, now)
	stats.LongestStreak = LongestStreak(sessions)

	return stats
}

// WeekStart returns local midnight of the most recent Sunday (weekday 0)
// on or before now.
func WeekStart(now time.Time) time.Time {
	y, m, d := now.Date()
	return time.Date(y, m, d-int(now.Weekday()), 0, 0, 0, 0, now.Location())
}

// onOrAfter reports whether the calendar day date is at or after boundary.
// Unparseable dates never count.
func onOrAfter(date string, boundary time.Time) bool {
	day, err := time.ParseInLocation(session.DateLayout, date, boundary.Location())
	if err != nil {
		return false
	}
	return !day.Before(boundary)
}

// FocusDates returns the distinct dates bearing at least one focus
// session, sorted ascending.
func FocusDates(sessions []session.Session) []string {
	seen := make(map[string]bool)
	dates := make([]string, 0)

	for _, s := range sessions {
		if s.Type != session.ModeFocus || seen[s.Date] {
			continue
		}
		seen[s.Date] = true
		dates = append(dates, s.Date)
	}

	sort.Strings(dates)
	return dates
}

// CurrentStreak counts consecutive calendar days, walking back from the
// day of now, that have at least one focus session. A day without focus,
// today included, ends the walk.
func CurrentStreak(sessions []session.Session, now time.Time) int {
	focusDays := make(map[string]bool)
	for _, s := range sessions {
		if s.Type == session.ModeFocus {
			focusDays[s.Date] = true
		}
	}

	// Noon keeps AddDate away from DST midnight edges.
	y, m, d := now.Date()
	day := time.Date(y, m, d, 12, 0, 0, 0, now.Location())

	streak := 0
	for focusDays[day.Format(session.DateLayout)] {
		streak++
		day = day.AddDate(0, 0, -1)
	}

	return streak
}

// LongestStreak returns the longest run of focus dates each exactly one
// calendar day after the previous. A lone date is a streak of 1.
func LongestStreak(sessions []session.Session) int {
	dates := FocusDates(sessions)

	longest, current := 0, 0
	var prev string
	for _, date := range dates {
		if prev != "" && nextDay(prev) == date {
			current++
		} else {
			current = 1
		}
		if current > longest {
			longest = current
		}
		prev = date
	}

	return longest
}

// nextDay returns the calendar day after date, or "" if date is malformed.
func nextDay(date string) string {
	day, err := time.Parse(session.DateLayout, date)
	if err != nil {
		return ""
	}
	return day.AddDate(0, 0, 1).Format(session.DateLayout)
}

// WeeklyProgress returns sessionsThisWeek as a percentage of goal, capped
// at 100. A non-positive goal falls back to DefaultWeeklyGoal.
func WeeklyProgress(sessionsThisWeek, goal int) float64 {
	if goal <= 0 {
		goal = DefaultWeeklyGoal
	}
	progress := float64(sessionsThisWeek) / float64(goal) * 100
	if progress > 100 {
		return 100
	}
	return progress
}

// GroupBy totals sessions per value of dim, sorted by key.
func GroupBy(sessions []session.Session, dim Dimension) ([]Group, error) {
	groups := make(map[string]*Group)

	for _, s := range sessions {
		var key string
		switch dim {
		case DimDate:
			key = s.Date
		case DimType:
			key = string(s.Type)
		default:
			return nil, fmt.Errorf("invalid dimension: %s", dim)
		}

		g, ok := groups[key]
		if !ok {
			g = &Group{Key: key}
			groups[key] = g
		}

		g.Sessions++
		if s.Type == session.ModeFocus {
			g.FocusSessions++
			g.FocusSeconds += s.DurationSeconds
		} else {
			g.BreakSessions++
			g.BreakSeconds += s.DurationSeconds
		}
	}

	result := make([]Group, 0, len(groups))
	for _, g := range groups {
		result = append(result, *g)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].Key < result[j].Key
	})

	return result, nil
}
