package aggregator

type achievementRule struct {
	achievement Achievement
	unlocked    func(Statistics) bool
}

var achievementRules = []achievementRule{
	{
		achievement: Achievement{ID: "first-session", Title: "Getting Started", Description: "Completed your first Pomodoro session!", Category: CategoryMilestone},
		unlocked:    func(s Statistics) bool { return s.TotalSessions >= 1 },
	},
	{
		achievement: Achievement{ID: "ten-sessions", Title: "Focused Beginner", Description: "Completed 10 Pomodoro sessions", Category: CategoryMilestone},
		unlocked:    func(s Statistics) bool { return s.TotalSessions >= 10 },
	},
	{
		achievement: Achievement{ID: "fifty-sessions", Title: "Productivity Pro", Description: "Completed 50 Pomodoro sessions", Category: CategoryMilestone},
		unlocked:    func(s Statistics) bool { return s.TotalSessions >= 50 },
	},
	{
		achievement: Achievement{ID: "hundred-sessions", Title: "Focus Master", Description: "Completed 100 Pomodoro sessions", Category: CategoryMilestone},
		unlocked:    func(s Statistics) bool { return s.TotalSessions >= 100 },
	},
	{
		achievement: Achievement{ID: "week-streak", Title: "Week Warrior", Description: "Maintained a 7-day streak", Category: CategoryStreak},
		unlocked:    func(s Statistics) bool { return s.LongestStreak >= 7 },
	},
	{
		achievement: Achievement{ID: "month-streak", Title: "Consistency Champion", Description: "Maintained a 30-day streak", Category: CategoryStreak},
		unlocked:    func(s Statistics) bool { return s.LongestStreak >= 30 },
	},
	{
		achievement: Achievement{ID: "five-hours", Title: "Deep Focus", Description: "Accumulated 5 hours of focus time", Category: CategoryDedication},
		unlocked:    func(s Statistics) bool { return s.TotalFocusSeconds >= 5*3600 },
	},
	{
		achievement: Achievement{ID: "twentyfive-hours", Title: "Work Week Champion", Description: "Accumulated 25 hours of focus time", Category: CategoryDedication},
		unlocked:    func(s Statistics) bool { return s.TotalFocusSeconds >= 25*3600 },
	},
}

// Achievements returns the unlocked achievements in a fixed order:
// milestones, streaks, then dedication.
func Achievements(stats Statistics) []Achievement {
	unlocked := make([]Achievement, 0, len(achievementRules))
	for _, rule := range achievementRules {
		if rule.unlocked(stats) {
			unlocked = append(unlocked, rule.achievement)
		}
	}
	return unlocked
}
