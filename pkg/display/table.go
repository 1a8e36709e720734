package display

import (
	"fmt"
	"io"
	"strings"

	"github.com/0xmhha/pomodoro/pkg/aggregator"
	"github.com/0xmhha/pomodoro/pkg/session"
)

// tableFormatter formats output as tables.
type tableFormatter struct {
	config Config
}

// FormatStats implements Formatter.FormatStats.
func (f *tableFormatter) FormatStats(w io.Writer, report Report) error {
	if err := writeHeader(w, "Pomodoro Statistics", f.config.Compact); err != nil {
		return err
	}

	stats := report.Stats
	rows := [][]string{
		{"Sessions Today", formatNumber(stats.SessionsToday)},
		{"Focus Time Today", FormatDuration(stats.FocusSecondsToday)},
		{"Sessions This Week", formatNumber(stats.SessionsThisWeek)},
		{"Current Streak", plural(stats.CurrentStreak, "day")},
		{"Longest Streak", plural(stats.LongestStreak, "day")},
		{"Total Sessions", formatNumber(stats.TotalSessions)},
		{"Focus / Break", fmt.Sprintf("%s / %s", formatNumber(stats.FocusSessions), formatNumber(stats.BreakSessions))},
		{"Total Focus Time", FormatDuration(stats.TotalFocusSeconds)},
	}

	if err := f.writeTable(w, []string{"Metric", "Value"}, rows); err != nil {
		return err
	}

	if _, err := fmt.Fprintf(w, "Weekly goal  %s %.0f%% of %d sessions\n",
		ProgressBar(report.WeeklyProgress, 20), report.WeeklyProgress, report.WeeklyGoal); err != nil {
		return err
	}

	if len(report.Achievements) == 0 {
		return nil
	}

	if err := writeHeader(w, "Achievements", f.config.Compact); err != nil {
		return err
	}

	achievementRows := make([][]string, len(report.Achievements))
	for i, a := range report.Achievements {
		achievementRows[i] = []string{a.Title, string(a.Category), a.Description}
	}
	return f.writeTable(w, []string{"Title", "Category", "Description"}, achievementRows)
}

// FormatGroupedStats implements Formatter.FormatGroupedStats.
func (f *tableFormatter) FormatGroupedStats(w io.Writer, groups []aggregator.Group, dim aggregator.Dimension) error {
	title := "History"
	if dim != "" {
		title = "History by " + strings.ToUpper(string(dim[:1])) + string(dim[1:])
	}
	if err := writeHeader(w, title, f.config.Compact); err != nil {
		return err
	}

	header := []string{string(dim), "Sessions", "Focus", "Break", "Focus Time", "Break Time"}

	rows := make([][]string, len(groups))
	for i, g := range groups {
		rows[i] = []string{
			g.Key,
			formatNumber(g.Sessions),
			formatNumber(g.FocusSessions),
			formatNumber(g.BreakSessions),
			FormatDuration(g.FocusSeconds),
			FormatDuration(g.BreakSeconds),
		}
	}

	return f.writeTable(w, header, rows)
}

// FormatSessions implements Formatter.FormatSessions.
func (f *tableFormatter) FormatSessions(w io.Writer, sessions []session.Session) error {
	if err := writeHeader(w, "Completed Sessions", f.config.Compact); err != nil {
		return err
	}

	header := []string{"#", "Date", "Completed", "Type", "Duration"}

	rows := make([][]string, len(sessions))
	for i, s := range sessions {
		rows[i] = []string{
			fmt.Sprintf("%d", i+1),
			s.Date,
			s.CompletedAt.Local().Format("15:04:05"),
			string(s.Type),
			FormatDuration(s.DurationSeconds),
		}
	}

	return f.writeTable(w, header, rows)
}

// writeTable writes a formatted table.
func (f *tableFormatter) writeTable(w io.Writer, header []string, rows [][]string) error {
	if len(rows) == 0 {
		_, err := fmt.Fprintln(w, "No data")
		return err
	}

	widths := make([]int, len(header))
	for i, h := range header {
		widths[i] = len(h)
	}

	for _, row := range rows {
		for i, cell := range row {
			if i < len(widths) && len(cell) > widths[i] {
				widths[i] = len(cell)
			}
		}
	}

	if err := f.writeRow(w, header, widths); err != nil {
		return err
	}

	if !f.config.Compact {
		separator := make([]string, len(header))
		for i, width := range widths {
			separator[i] = strings.Repeat("-", width)
		}
		if err := f.writeRow(w, separator, widths); err != nil {
			return err
		}
	}

	for _, row := range rows {
		if err := f.writeRow(w, row, widths); err != nil {
			return err
		}
	}

	if !f.config.Compact {
		_, err := fmt.Fprintln(w)
		return err
	}

	return nil
}

// writeRow writes a single table row.
func (f *tableFormatter) writeRow(w io.Writer, cells []string, widths []int) error {
	gap := "  "
	if f.config.Compact {
		gap = " "
	}

	for i, cell := range cells {
		if i > 0 {
			if _, err := fmt.Fprint(w, gap); err != nil {
				return err
			}
		}

		if _, err := fmt.Fprintf(w, "%-*s", widths[i], cell); err != nil {
			return err
		}
	}

	_, err := fmt.Fprintln(w)
	return err
}
