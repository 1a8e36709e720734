package main

import (
	"errors"
	"flag"
	"fmt"
	"io"

	"github.com/0xmhha/pomodoro/pkg/settings"
	"github.com/0xmhha/pomodoro/pkg/sound"
	"github.com/0xmhha/pomodoro/pkg/timer"
)

// errNothingToUpdate is returned by settings set without flags.
var errNothingToUpdate = errors.New("nothing to update: use -focus, -break or -sound")

// settingsCommand handles timer settings subcommands.
type settingsCommand struct {
	configPath string
}

// Execute runs the settings command with given arguments.
func (c *settingsCommand) Execute(w io.Writer, args []string) error {
	if len(args) == 0 {
		return c.showHelp(w)
	}

	subcommand := args[0]
	subargs := args[1:]

	switch subcommand {
	case "show":
		return c.withEngine(func(engine *timer.Engine) error {
			return writeSettings(w, engine.Settings())
		})
	case "set":
		update, err := parseSettingsUpdate(subargs)
		if err != nil {
			return err
		}
		return c.withEngine(func(engine *timer.Engine) error {
			return writeSettings(w, engine.UpdateSettings(update))
		})
	case "preset":
		if len(subargs) == 0 {
			return writePresets(w)
		}
		preset, err := settings.LookupPreset(subargs[0])
		if err != nil {
			return err
		}
		return c.withEngine(func(engine *timer.Engine) error {
			return writeSettings(w, engine.UpdateSettings(preset.Update()))
		})
	case "reset":
		return c.withEngine(func(engine *timer.Engine) error {
			return writeSettings(w, engine.ResetSettings())
		})
	case "help":
		return c.showHelp(w)
	default:
		return fmt.Errorf("unknown settings subcommand: %s", subcommand)
	}
}

// withEngine opens the store and runs fn against an idle engine.
func (c *settingsCommand) withEngine(fn func(engine *timer.Engine) error) error {
	env, err := openEnvironment(c.configPath, false)
	if err != nil {
		return err
	}
	defer env.Close()

	engine := env.newEngine(sound.Noop())
	defer func() {
		if err := engine.Close(); err != nil {
			env.logger.Error("failed to close engine", "error", err)
		}
	}()

	return fn(engine)
}

// parseSettingsUpdate builds an update from the flags that were given.
// Out-of-range durations are clamped by the engine.
func parseSettingsUpdate(args []string) (settings.Update, error) {
	fs := flag.NewFlagSet("settings set", flag.ContinueOnError)
	focus := fs.Int("focus", 0, "focus duration in minutes (1-120)")
	brk := fs.Int("break", 0, "break duration in minutes (1-60)")
	soundOn := fs.Bool("sound", true, "enable near-end and completion tones")

	if err := fs.Parse(args); err != nil {
		return settings.Update{}, err
	}

	var update settings.Update
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "focus":
			update.FocusDurationMinutes = focus
		case "break":
			update.BreakDurationMinutes = brk
		case "sound":
			update.SoundEnabled = soundOn
		}
	})

	if update.Empty() {
		return settings.Update{}, errNothingToUpdate
	}
	return update, nil
}

// writeSettings prints the active settings.
func writeSettings(w io.Writer, s settings.Settings) error {
	tones := "off"
	if s.SoundEnabled {
		tones = "on"
	}
	_, err := fmt.Fprintf(w, "Focus:  %d min\nBreak:  %d min\nSound:  %s\n",
		s.FocusDurationMinutes, s.BreakDurationMinutes, tones)
	return err
}

// writePresets lists the built-in presets.
func writePresets(w io.Writer) error {
	for _, p := range settings.Presets() {
		if _, err := fmt.Fprintf(w, "  %-12s %3d / %-3d min  %s\n",
			p.Name, p.FocusMinutes, p.BreakMinutes, p.Description); err != nil {
			return err
		}
	}
	return nil
}

// showHelp displays help for settings command.
func (c *settingsCommand) showHelp(w io.Writer) error {
	help := `Settings - Timer settings

Usage:
  pomodoro settings <subcommand> [flags]

Subcommands:
  show             Display current settings
  set              Change durations or the sound flag
  preset [name]    Apply a preset, or list presets without a name
  reset            Restore the default settings (25/5 min, sound on)

Set Flags:
  -focus    Focus duration in minutes (1-120)
  -break    Break duration in minutes (1-60)
  -sound    Enable tones (true, false)

Examples:
  # Show current settings
  pomodoro settings show

  # 50 minute focus sessions
  pomodoro settings set -focus 50

  # Mute the tones
  pomodoro settings set -sound=false

  # Apply the 45/15 preset
  pomodoro settings preset extended
`
	_, err := fmt.Fprint(w, help)
	return err
}
