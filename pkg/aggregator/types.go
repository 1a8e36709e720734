// Package aggregator derives productivity statistics from the session log.
//
// Every figure is recomputed from the log on demand; nothing here keeps
// state between calls. All calendar arithmetic happens in the location of
// the reference time passed in, which callers set to local time.
//
// Example usage:
//
//	stats := aggregator.Summarize(log.All(), time.Now())
//	fmt.Printf("Today: %d sessions, streak %d days\n",
//	    stats.SessionsToday, stats.CurrentStreak)
//
//	for _, a := range aggregator.Achievements(stats) {
//	    fmt.Println(a.Title)
//	}
package aggregator

// Dimension represents a grouping dimension for history reports.
type Dimension string

const (
	// DimDate groups by calendar day (YYYY-MM-DD).
	DimDate Dimension = "date"

	// DimType groups by session type (focus, break).
	DimType Dimension = "type"
)

// DefaultWeeklyGoal is the weekly session target (5 a day, 7 days).
const DefaultWeeklyGoal = 35

// Statistics summarizes the session log relative to a reference day.
type Statistics struct {
	// TotalSessions counts every session in the log.
	TotalSessions int `json:"totalSessions"`

	// FocusSessions and BreakSessions split TotalSessions by type.
	FocusSessions int `json:"focusSessions"`
	BreakSessions int `json:"breakSessions"`

	// TotalFocusSeconds sums the durations of all focus sessions.
	TotalFocusSeconds int `json:"totalFocusSeconds"`

	// SessionsToday counts sessions of any type dated today.
	SessionsToday int `json:"sessionsToday"`

	// FocusSecondsToday sums today's focus session durations.
	FocusSecondsToday int `json:"focusSecondsToday"`

	// SessionsThisWeek counts sessions dated on or after the week start.
	SessionsThisWeek int `json:"sessionsThisWeek"`

	// CurrentStreak is the run of consecutive focus days ending today.
	CurrentStreak int `json:"currentStreak"`

	// LongestStreak is the longest run of consecutive focus days.
	LongestStreak int `json:"longestStreak"`
}

// Group holds totals for one value of a Dimension.
type Group struct {
	Key           string `json:"key"`
	Sessions      int    `json:"sessions"`
	FocusSessions int    `json:"focusSessions"`
	BreakSessions int    `json:"breakSessions"`
	FocusSeconds  int    `json:"focusSeconds"`
	BreakSeconds  int    `json:"breakSeconds"`
}

// AchievementCategory classifies achievements.
type AchievementCategory string

// Achievement categories.
const (
	CategoryMilestone  AchievementCategory = "milestone"
	CategoryStreak     AchievementCategory = "streak"
	CategoryDedication AchievementCategory = "dedication"
)

// Achievement is a badge unlocked by the statistics.
type Achievement struct {
	ID          string              `json:"id"`
	Title       string              `json:"title"`
	Description string              `json:"description"`
	Category    AchievementCategory `json:"category"`
}
