package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/0xmhha/pomodoro/pkg/config"
	"github.com/0xmhha/pomodoro/pkg/display"
	"github.com/0xmhha/pomodoro/pkg/monitor"
	"github.com/0xmhha/pomodoro/pkg/quotes"
	"github.com/0xmhha/pomodoro/pkg/session"
	"github.com/0xmhha/pomodoro/pkg/sound"
	"github.com/0xmhha/pomodoro/pkg/timer"
	"github.com/0xmhha/pomodoro/pkg/watcher"
	"golang.org/x/term"
)

const keyCtrlC = 3

// runCommand drives the interactive timer.
type runCommand struct {
	mode       string
	start      bool
	format     string
	configPath string
}

// Execute runs the interactive timer until the user quits.
func (c *runCommand) Execute() error {
	env, err := openEnvironment(c.configPath, true)
	if err != nil {
		return err
	}
	defer env.Close()
	cfg := env.config

	engine := env.newEngine(sound.NewBell(os.Stdout))
	defer func() {
		if err := engine.Close(); err != nil {
			env.logger.Error("failed to close engine", "error", err)
		}
	}()

	if !cfg.Settings.Empty() {
		engine.UpdateSettings(cfg.Settings)
	}
	if c.mode != "" {
		mode, err := session.ParseMode(c.mode)
		if err != nil {
			return err
		}
		if err := engine.SwitchMode(mode); err != nil {
			return fmt.Errorf("failed to switch mode: %w", err)
		}
	}

	rotator, err := quotes.New(quotes.Config{
		RotationInterval: cfg.Quotes.RotationInterval,
		Category:         quotes.Category(cfg.Quotes.Category),
	}, env.logger)
	if err != nil {
		return fmt.Errorf("failed to create quote rotator: %w", err)
	}

	// Watch the config file for settings overrides.
	configFile := c.configPath
	if configFile == "" {
		configFile = config.FindConfigFile()
	}
	var w watcher.Watcher
	if configFile != "" {
		fw, err := watcher.New(watcher.Config{}, env.logger)
		if err != nil {
			env.logger.Warn("config reload disabled", "error", err)
		} else {
			w = fw
			defer func() {
				if err := fw.Close(); err != nil {
					env.logger.Error("failed to close watcher", "error", err)
				}
			}()
		}
	}

	live, err := monitor.New(monitor.Config{
		RefreshInterval: cfg.Display.RefreshRate,
		ConfigPath:      configFile,
		WeeklyGoal:      cfg.Goals.WeeklySessions,
	}, engine, rotator, w, config.NewLoader(c.configPath), env.logger)
	if err != nil {
		return fmt.Errorf("failed to create live session: %w", err)
	}
	defer func() {
		if err := live.Close(); err != nil {
			env.logger.Error("failed to close live session", "error", err)
		}
	}()

	// Raw mode delivers single key presses; ctrl-c then arrives as a key.
	fd := int(os.Stdin.Fd())
	if term.IsTerminal(fd) {
		oldState, err := term.MakeRaw(fd)
		if err != nil {
			return fmt.Errorf("failed to enter raw mode: %w", err)
		}
		defer func() {
			if err := term.Restore(fd, oldState); err != nil {
				env.logger.Error("failed to restore terminal", "error", err)
			}
		}()
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	keys := make(chan byte, 8)
	go readKeys(os.Stdin, keys)

	if err := live.Start(ctx); err != nil {
		return fmt.Errorf("failed to start live session: %w", err)
	}
	if c.start {
		engine.Start()
	}

	scr := &screen{
		out:    os.Stdout,
		format: c.frameFormat(cfg.Display.Format),
		clear:  cfg.Display.ClearScreen,
		width:  terminalWidth,
	}

	for {
		select {
		case <-ctx.Done():
			scr.finish()
			return nil

		case key, ok := <-keys:
			if !ok {
				// Stdin closed: keep running until a signal arrives.
				keys = nil
				continue
			}
			if handleKey(key, engine, rotator) {
				scr.finish()
				return nil
			}
			scr.draw(live.Snapshot())

		case update, ok := <-live.Updates():
			if !ok {
				return nil
			}
			scr.draw(update)
		}
	}
}

// frameFormat returns the flag format, else the configured display format.
// Formats other than simple render the full frame.
func (c *runCommand) frameFormat(configured string) string {
	format := c.format
	if format == "" {
		format = configured
	}
	if format == string(display.FormatSimple) {
		return format
	}
	return string(display.FormatTable)
}

// readKeys forwards bytes from r to keys until r fails.
func readKeys(r io.Reader, keys chan<- byte) {
	defer close(keys)
	buf := make([]byte, 1)
	for {
		n, err := r.Read(buf)
		if n == 1 {
			keys <- buf[0]
		}
		if err != nil {
			return
		}
	}
}

// handleKey applies one key press and reports whether to quit.
func handleKey(key byte, engine *timer.Engine, rotator *quotes.Rotator) bool {
	switch key {
	case ' ', '\r':
		if engine.State().Running {
			engine.Pause()
		} else {
			engine.Start()
		}
	case 'r':
		engine.Reset()
	case '1', '2':
		if engine.State().Running {
			return false
		}
		mode := session.ModeFocus
		if key == '2' {
			mode = session.ModeBreak
		}
		// Only fails once the engine is closed.
		_ = engine.SwitchMode(mode)
	case 'q':
		rotator.Next()
	case 'Q':
		rotator.Previous()
	case 'x', keyCtrlC:
		return true
	}
	return false
}

// terminalWidth returns the stdout width, or 80 when it is not a terminal.
func terminalWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 {
		return 80
	}
	return width
}

// screen renders live updates.
type screen struct {
	out    io.Writer
	format string
	clear  bool
	width  func() int

	message string
}

// draw renders u, remembering the last completion message.
func (s *screen) draw(u monitor.Update) {
	if u.Event != nil && u.Event.Type == timer.EventCompleted && u.Event.Session != nil {
		s.message = completionMessage(*u.Event.Session)
	}

	frame := renderFrame(u, s.format, s.width(), s.message)
	if s.clear {
		fmt.Fprint(s.out, "\033[H\033[2J"+frame)
		return
	}
	fmt.Fprint(s.out, frame+"\r\n")
}

// finish moves the cursor below the last frame.
func (s *screen) finish() {
	fmt.Fprint(s.out, "\r\n")
}

// completionMessage announces a finished session.
func completionMessage(s session.Session) string {
	if s.Type == session.ModeBreak {
		return "Break over. Time to focus!"
	}
	return fmt.Sprintf("Focus session complete (%s). Take a break!", display.FormatDuration(s.DurationSeconds))
}

// renderFrame renders one update. Lines end in CRLF because the terminal
// is in raw mode.
func renderFrame(u monitor.Update, format string, width int, message string) string {
	st := u.State
	status := "paused"
	if st.Running {
		status = "running"
	}
	stats := u.Stats

	if format == string(display.FormatSimple) {
		line := fmt.Sprintf("%s %s %s | today %d | week %d (%.0f%%) | %q",
			strings.ToUpper(string(st.Mode)), st.FormattedTime(), status,
			stats.SessionsToday, stats.SessionsThisWeek, u.WeeklyProgress, u.Quote.Text)
		if message != "" {
			line += " | " + message
		}
		return line
	}

	barWidth := width - 10
	if barWidth > 60 {
		barWidth = 60
	}
	if barWidth < 10 {
		barWidth = 10
	}

	lines := []string{
		fmt.Sprintf("%s  %s  [%s]", strings.ToUpper(string(st.Mode)), st.FormattedTime(), status),
		fmt.Sprintf("%s %3.0f%%", display.ProgressBar(st.Progress(), barWidth), st.Progress()),
		"",
		fmt.Sprintf("\"%s\"", u.Quote.Text),
		"    -- " + u.Quote.Author,
		"",
		fmt.Sprintf("Today: %d sessions, %s focus | Week: %d (%.0f%%) | Streak: %d",
			stats.SessionsToday, display.FormatDuration(stats.FocusSecondsToday),
			stats.SessionsThisWeek, u.WeeklyProgress, stats.CurrentStreak),
		"",
		"space start/pause  r reset  1 focus  2 break  q/Q quote  x quit",
	}
	if message != "" {
		lines = append(lines, "", message)
	}
	return strings.Join(lines, "\r\n")
}
