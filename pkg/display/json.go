package display

import (
	"encoding/json"
	"io"

	"github.com/0xmhha/pomodoro/pkg/aggregator"
	"github.com/0xmhha/pomodoro/pkg/session"
)

// jsonFormatter formats output as JSON.
type jsonFormatter struct {
	config Config
}

func (f *jsonFormatter) encode(w io.Writer, v interface{}) error {
	encoder := json.NewEncoder(w)
	if !f.config.Compact {
		encoder.SetIndent("", "  ")
	}
	return encoder.Encode(v)
}

// FormatStats implements Formatter.FormatStats.
func (f *jsonFormatter) FormatStats(w io.Writer, report Report) error {
	if report.Achievements == nil {
		report.Achievements = []aggregator.Achievement{}
	}
	return f.encode(w, report)
}

// FormatGroupedStats implements Formatter.FormatGroupedStats.
func (f *jsonFormatter) FormatGroupedStats(w io.Writer, groups []aggregator.Group, dim aggregator.Dimension) error {
	if groups == nil {
		groups = []aggregator.Group{}
	}
	return f.encode(w, struct {
		Dimension aggregator.Dimension `json:"dimension"`
		Groups    []aggregator.Group   `json:"groups"`
	}{dim, groups})
}

// FormatSessions implements Formatter.FormatSessions.
func (f *jsonFormatter) FormatSessions(w io.Writer, sessions []session.Session) error {
	if sessions == nil {
		sessions = []session.Session{}
	}
	return f.encode(w, sessions)
}
