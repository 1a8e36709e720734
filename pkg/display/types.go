// Package display provides output formatting for pomodoro statistics.
//
// It supports multiple output formats (table, JSON, simple text) for the
// statistics report, grouped history and the raw session list.
package display

import (
	"io"

	"github.com/0xmhha/pomodoro/pkg/aggregator"
	"github.com/0xmhha/pomodoro/pkg/session"
)

// Format represents an output format.
type Format string

const (
	// FormatTable displays statistics in a formatted table.
	FormatTable Format = "table"

	// FormatJSON displays statistics as JSON.
	FormatJSON Format = "json"

	// FormatSimple displays statistics in simple text format.
	FormatSimple Format = "simple"
)

// Report is the content of the stats view.
type Report struct {
	Stats          aggregator.Statistics    `json:"stats"`
	WeeklyGoal     int                      `json:"weeklyGoal"`
	WeeklyProgress float64                  `json:"weeklyProgress"`
	Achievements   []aggregator.Achievement `json:"achievements"`
}

// Formatter formats and displays pomodoro statistics.
type Formatter interface {
	// FormatStats formats the statistics report.
	FormatStats(w io.Writer, report Report) error

	// FormatGroupedStats formats history totals grouped by dim.
	FormatGroupedStats(w io.Writer, groups []aggregator.Group, dim aggregator.Dimension) error

	// FormatSessions formats individual session records.
	FormatSessions(w io.Writer, sessions []session.Session) error
}

// Config contains formatter configuration.
type Config struct {
	// Format specifies the output format.
	// Default: FormatTable.
	Format Format

	// Compact enables compact output (less whitespace).
	// Default: false.
	Compact bool
}
