package main

import (
	"fmt"
	"io"
	"time"

	"github.com/0xmhha/pomodoro/pkg/aggregator"
	"github.com/0xmhha/pomodoro/pkg/config"
	"github.com/0xmhha/pomodoro/pkg/display"
	"github.com/0xmhha/pomodoro/pkg/logger"
	"github.com/0xmhha/pomodoro/pkg/quotes"
	"github.com/0xmhha/pomodoro/pkg/session"
	"github.com/0xmhha/pomodoro/pkg/sound"
	"github.com/0xmhha/pomodoro/pkg/store"
	"github.com/0xmhha/pomodoro/pkg/timer"
)

// environment holds the components shared by every command.
type environment struct {
	config *config.Config
	logger logger.Logger
	store  store.Store
}

// loadConfig loads configuration from configPath, or from the default
// search paths when it is empty.
func loadConfig(configPath string) (*config.Config, error) {
	var (
		cfg *config.Config
		err error
	)
	if configPath != "" {
		cfg, err = config.LoadFromFile(configPath)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	return cfg, nil
}

// newLogger builds the logger described by cfg. Quiet mode only lets
// errors through so log lines do not tear the interactive frame.
func newLogger(cfg *config.Config, quiet bool) logger.Logger {
	level := cfg.Logging.Level
	if quiet {
		level = "error"
	}
	return logger.New(logger.Config{
		Level:  level,
		Format: cfg.Logging.Format,
		Output: cfg.Logging.Output,
	})
}

// openEnvironment loads configuration and opens the store.
func openEnvironment(configPath string, quiet bool) (*environment, error) {
	cfg, err := loadConfig(configPath)
	if err != nil {
		return nil, err
	}

	log := newLogger(cfg, quiet)

	kv, err := store.New(store.Config{
		Driver:  store.Driver(cfg.Storage.Driver),
		Path:    cfg.Storage.DBPath,
		Timeout: cfg.Storage.Timeout,
	}, log)
	if err != nil {
		return nil, fmt.Errorf("failed to open store: %w", err)
	}

	return &environment{
		config: cfg,
		logger: log,
		store:  kv,
	}, nil
}

// newEngine creates a timer engine over the environment's store.
func (e *environment) newEngine(player sound.Player) *timer.Engine {
	return timer.New(timer.Config{
		TickInterval:   e.config.Timer.TickInterval,
		NearEndSeconds: e.config.Timer.NearEndSeconds,
	}, e.store, player, e.logger)
}

// Close closes the store.
func (e *environment) Close() {
	if err := e.store.Close(); err != nil {
		e.logger.Error("failed to close store", "error", err)
	}
}

// newFormatter picks the flag format, falling back to the configured one.
func newFormatter(flagFormat string, cfg config.DisplayConfig, compact bool) (display.Formatter, error) {
	name := flagFormat
	if name == "" {
		name = cfg.Format
	}

	format, err := display.ParseFormat(name)
	if err != nil {
		return nil, err
	}

	return display.New(display.Config{
		Format:  format,
		Compact: compact || cfg.Compact,
	}), nil
}

// buildReport derives the statistics report as of now.
func buildReport(sessions []session.Session, weeklyGoal int, now time.Time) display.Report {
	if weeklyGoal <= 0 {
		weeklyGoal = aggregator.DefaultWeeklyGoal
	}

	stats := aggregator.Summarize(sessions, now)
	return display.Report{
		Stats:          stats,
		WeeklyGoal:     weeklyGoal,
		WeeklyProgress: aggregator.WeeklyProgress(stats.SessionsThisWeek, weeklyGoal),
		Achievements:   aggregator.Achievements(stats),
	}
}

// statsCommand displays productivity statistics.
type statsCommand struct {
	format     string
	compact    bool
	configPath string
}

// Execute runs the stats command.
func (c *statsCommand) Execute(w io.Writer) error {
	env, err := openEnvironment(c.configPath, false)
	if err != nil {
		return err
	}
	defer env.Close()

	formatter, err := newFormatter(c.format, env.config.Display, c.compact)
	if err != nil {
		return err
	}

	sessions := session.NewLog(env.store, env.logger).All()
	report := buildReport(sessions, env.config.Goals.WeeklySessions, time.Now())

	return formatter.FormatStats(w, report)
}

// historyCommand lists completed sessions.
type historyCommand struct {
	groupBy    string
	limit      int
	format     string
	configPath string
}

// Execute runs the history command.
func (c *historyCommand) Execute(w io.Writer) error {
	env, err := openEnvironment(c.configPath, false)
	if err != nil {
		return err
	}
	defer env.Close()

	formatter, err := newFormatter(c.format, env.config.Display, false)
	if err != nil {
		return err
	}

	sessions := session.NewLog(env.store, env.logger).All()

	if c.groupBy != "" {
		dim := aggregator.Dimension(c.groupBy)
		groups, err := aggregator.GroupBy(sessions, dim)
		if err != nil {
			return err
		}
		return formatter.FormatGroupedStats(w, groups, dim)
	}

	return formatter.FormatSessions(w, recentSessions(sessions, c.limit))
}

// recentSessions returns the last limit sessions in log order.
// A limit of 0 returns all of them.
func recentSessions(sessions []session.Session, limit int) []session.Session {
	if limit <= 0 || limit >= len(sessions) {
		return sessions
	}
	return sessions[len(sessions)-limit:]
}

// quoteCommand prints motivational quotes.
type quoteCommand struct {
	category   string
	count      int
	configPath string
}

// Execute runs the quote command.
func (c *quoteCommand) Execute(w io.Writer) error {
	cfg, err := loadConfig(c.configPath)
	if err != nil {
		return err
	}

	rotator, err := quotes.New(quotes.Config{}, newLogger(cfg, false))
	if err != nil {
		return fmt.Errorf("failed to create quote rotator: %w", err)
	}

	return c.print(w, rotator)
}

// print writes c.count quotes: random picks within the category when one
// is set, otherwise consecutive quotes from the current one.
func (c *quoteCommand) print(w io.Writer, rotator *quotes.Rotator) error {
	for i := 0; i < c.count; i++ {
		var q quotes.Quote
		switch {
		case c.category != "":
			var err error
			q, err = rotator.ByCategory(quotes.Category(c.category))
			if err != nil {
				return err
			}
		case i == 0:
			q = rotator.Current()
		default:
			q = rotator.Next()
		}

		if err := writeQuote(w, q); err != nil {
			return err
		}
	}
	return nil
}

// writeQuote writes q as a quoted line followed by its attribution.
func writeQuote(w io.Writer, q quotes.Quote) error {
	_, err := fmt.Fprintf(w, "\"%s\"\n    -- %s (%s)\n", q.Text, q.Author, q.Category)
	return err
}
