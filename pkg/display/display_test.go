package display

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/0xmhha/pomodoro/pkg/aggregator"
	"github.com/0xmhha/pomodoro/pkg/session"
)

func sampleReport() Report {
	stats := aggregator.Statistics{
		TotalSessions:     12,
		FocusSessions:     8,
		BreakSessions:     4,
		TotalFocusSeconds: 8 * 1500,
		SessionsToday:     3,
		FocusSecondsToday: 2 * 1500,
		SessionsThisWeek:  7,
		CurrentStreak:     2,
		LongestStreak:     1,
	}
	return Report{
		Stats:          stats,
		WeeklyGoal:     35,
		WeeklyProgress: aggregator.WeeklyProgress(stats.SessionsThisWeek, 35),
		Achievements:   aggregator.Achievements(stats),
	}
}

func sampleSessions() []session.Session {
	at := time.Date(2024, 3, 12, 9, 30, 0, 0, time.Local)
	return []session.Session{
		{ID: "a", Type: session.ModeFocus, DurationSeconds: 1500, CompletedAt: at, Date: "2024-03-12"},
		{ID: "b", Type: session.ModeBreak, DurationSeconds: 300, CompletedAt: at.Add(5 * time.Minute), Date: "2024-03-12"},
	}
}

func TestNew(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		config Config
		want   string // Type name
	}{
		{name: "default format (table)", config: Config{}, want: "*display.tableFormatter"},
		{name: "table format", config: Config{Format: FormatTable}, want: "*display.tableFormatter"},
		{name: "json format", config: Config{Format: FormatJSON}, want: "*display.jsonFormatter"},
		{name: "simple format", config: Config{Format: FormatSimple}, want: "*display.simpleFormatter"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			formatter := New(tt.config)
			if formatter == nil {
				t.Fatal("New() returned nil")
			}

			got := fmt.Sprintf("%T", formatter)
			if got != tt.want {
				t.Errorf("New() type = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestParseFormat(t *testing.T) {
	t.Parallel()

	if f, err := ParseFormat("JSON"); err != nil || f != FormatJSON {
		t.Errorf("ParseFormat(JSON) = %v, %v", f, err)
	}
	if _, err := ParseFormat("html"); err == nil {
		t.Error("ParseFormat(html) expected error")
	}
}

func TestTableFormatter_FormatStats(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	if err := New(Config{Format: FormatTable}).FormatStats(&buf, sampleReport()); err != nil {
		t.Fatalf("FormatStats() error = %v", err)
	}

	output := buf.String()
	expected := []string{
		"Pomodoro Statistics",
		"Sessions Today",
		"50m",    // focus today
		"3h 20m", // total focus
		"2 days", // current streak
		"1 day",  // longest streak
		"8 / 4",  // focus / break
		"20% of 35 sessions",
		"Achievements",
		"Getting Started",
		"Focused Beginner",
	}
	for _, want := range expected {
		if !strings.Contains(output, want) {
			t.Errorf("FormatStats() output missing %q\n%s", want, output)
		}
	}
}

func TestTableFormatter_NoAchievements(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	if err := New(Config{}).FormatStats(&buf, Report{WeeklyGoal: 35}); err != nil {
		t.Fatalf("FormatStats() error = %v", err)
	}
	if strings.Contains(buf.String(), "Achievements") {
		t.Errorf("empty report should not list achievements:\n%s", buf.String())
	}
}

func TestTableFormatter_FormatGroupedStats(t *testing.T) {
	t.Parallel()

	groups, err := aggregator.GroupBy(sampleSessions(), aggregator.DimType)
	if err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	if err := New(Config{}).FormatGroupedStats(&buf, groups, aggregator.DimType); err != nil {
		t.Fatalf("FormatGroupedStats() error = %v", err)
	}

	output := buf.String()
	for _, want := range []string{"History by Type", "break", "focus", "25m", "5m"} {
		if !strings.Contains(output, want) {
			t.Errorf("output missing %q\n%s", want, output)
		}
	}
}

func TestTableFormatter_FormatSessions(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	if err := New(Config{}).FormatSessions(&buf, sampleSessions()); err != nil {
		t.Fatalf("FormatSessions() error = %v", err)
	}

	output := buf.String()
	for _, want := range []string{"Completed Sessions", "2024-03-12", "09:30:00", "focus", "break", "25m"} {
		if !strings.Contains(output, want) {
			t.Errorf("output missing %q\n%s", want, output)
		}
	}
}

func TestJSONFormatter_FormatStats(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	if err := New(Config{Format: FormatJSON}).FormatStats(&buf, sampleReport()); err != nil {
		t.Fatalf("FormatStats() error = %v", err)
	}

	var decoded struct {
		Stats struct {
			TotalSessions int `json:"totalSessions"`
			CurrentStreak int `json:"currentStreak"`
		} `json:"stats"`
		WeeklyProgress float64 `json:"weeklyProgress"`
		Achievements   []struct {
			ID string `json:"id"`
		} `json:"achievements"`
	}
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}

	if decoded.Stats.TotalSessions != 12 || decoded.Stats.CurrentStreak != 2 {
		t.Errorf("stats = %+v", decoded.Stats)
	}
	if decoded.WeeklyProgress != 20 {
		t.Errorf("weeklyProgress = %v, want 20", decoded.WeeklyProgress)
	}
	if len(decoded.Achievements) != 2 || decoded.Achievements[0].ID != "first-session" {
		t.Errorf("achievements = %+v", decoded.Achievements)
	}
}

func TestJSONFormatter_EmptyCollections(t *testing.T) {
	t.Parallel()

	f := New(Config{Format: FormatJSON, Compact: true})

	var buf bytes.Buffer
	if err := f.FormatSessions(&buf, nil); err != nil {
		t.Fatal(err)
	}
	if strings.TrimSpace(buf.String()) != "[]" {
		t.Errorf("FormatSessions(nil) = %q, want []", buf.String())
	}

	buf.Reset()
	if err := f.FormatStats(&buf, Report{}); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), `"achievements":[]`) {
		t.Errorf("FormatStats() = %q, want empty achievements array", buf.String())
	}

	buf.Reset()
	if err := f.FormatGroupedStats(&buf, nil, aggregator.DimDate); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), `"groups":[]`) || !strings.Contains(buf.String(), `"dimension":"date"`) {
		t.Errorf("FormatGroupedStats() = %q", buf.String())
	}
}

func TestSimpleFormatter(t *testing.T) {
	t.Parallel()

	f := New(Config{Format: FormatSimple})

	var buf bytes.Buffer
	if err := f.FormatStats(&buf, sampleReport()); err != nil {
		t.Fatal(err)
	}
	output := buf.String()
	for _, want := range []string{"Today: 3 sessions", "Week: 7/35 (20%)", "Streak: 2 (best 1)", "* Getting Started"} {
		if !strings.Contains(output, want) {
			t.Errorf("FormatStats() missing %q\n%s", want, output)
		}
	}

	buf.Reset()
	if err := f.FormatSessions(&buf, sampleSessions()); err != nil {
		t.Fatal(err)
	}
	if lines := strings.Count(buf.String(), "\n"); lines != 2 {
		t.Errorf("FormatSessions() wrote %d lines, want 2", lines)
	}

	buf.Reset()
	groups, _ := aggregator.GroupBy(sampleSessions(), aggregator.DimDate)
	if err := f.FormatGroupedStats(&buf, groups, aggregator.DimDate); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), "2024-03-12: 2 sessions (1 focus, 1 break), 25m focus") {
		t.Errorf("FormatGroupedStats() = %q", buf.String())
	}
}

func TestFormatDuration(t *testing.T) {
	t.Parallel()

	tests := []struct {
		seconds int
		want    string
	}{
		{0, "0m"},
		{59, "0m"},
		{1500, "25m"},
		{3600, "1h 0m"},
		{5400, "1h 30m"},
		{90000, "25h 0m"},
		{-10, "0m"},
	}

	for _, tt := range tests {
		if got := FormatDuration(tt.seconds); got != tt.want {
			t.Errorf("FormatDuration(%d) = %q, want %q", tt.seconds, got, tt.want)
		}
	}
}

func TestProgressBar(t *testing.T) {
	t.Parallel()

	tests := []struct {
		percent float64
		width   int
		want    string
	}{
		{0, 10, "[----------]"},
		{50, 10, "[#####-----]"},
		{100, 10, "[##########]"},
		{150, 4, "[####]"},
		{-5, 4, "[----]"},
		{50, 0, ""},
	}

	for _, tt := range tests {
		if got := ProgressBar(tt.percent, tt.width); got != tt.want {
			t.Errorf("ProgressBar(%v, %d) = %q, want %q", tt.percent, tt.width, got, tt.want)
		}
	}
}

func TestFormatNumber(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input int
		want  string
	}{
		{0, "0"},
		{999, "999"},
		{1000, "1,000"},
		{1234567, "1,234,567"},
		{-1500, "-1,500"},
	}

	for _, tt := range tests {
		if got := formatNumber(tt.input); got != tt.want {
			t.Errorf("formatNumber(%d) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestCompactMode(t *testing.T) {
	t.Parallel()

	var normal, compact bytes.Buffer
	if err := New(Config{}).FormatStats(&normal, sampleReport()); err != nil {
		t.Fatal(err)
	}
	if err := New(Config{Compact: true}).FormatStats(&compact, sampleReport()); err != nil {
		t.Fatal(err)
	}

	if compact.Len() >= normal.Len() {
		t.Errorf("compact output (%d bytes) not shorter than normal (%d bytes)", compact.Len(), normal.Len())
	}
	if strings.Contains(compact.String(), "====") {
		t.Error("compact output contains header underline")
	}
}

func TestEmptyData(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	if err := New(Config{}).FormatSessions(&buf, nil); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), "No data") {
		t.Errorf("FormatSessions(nil) = %q, want No data", buf.String())
	}
}
