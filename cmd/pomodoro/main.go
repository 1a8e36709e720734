// Package main provides the pomodoro CLI application.
//
// Pomodoro is a terminal focus timer. It alternates focus and break
// countdowns, records completed sessions and reports productivity
// statistics from the persisted session log.
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"
)

// version is set during build time.
var version = "dev"

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// run executes the main application logic.
func run() error {
	// Define global flags.
	configPath := flag.String("config", "", "path to configuration file")
	showVersion := flag.Bool("version", false, "show version information")

	// Parse command.
	flag.Parse()

	// Handle version flag.
	if *showVersion {
		fmt.Printf("pomodoro %s\n", version)
		return nil
	}

	args := flag.Args()
	if len(args) == 0 {
		return showUsage()
	}

	command := args[0]

	switch command {
	case "run":
		cmd, err := parseRunFlags(*configPath, args[1:])
		if err != nil {
			return err
		}
		return cmd.Execute()
	case "stats":
		cmd, err := parseStatsFlags(*configPath, args[1:])
		if err != nil {
			return err
		}
		return cmd.Execute(os.Stdout)
	case "history":
		cmd, err := parseHistoryFlags(*configPath, args[1:])
		if err != nil {
			return err
		}
		return cmd.Execute(os.Stdout)
	case "settings":
		cmd := &settingsCommand{configPath: *configPath}
		return cmd.Execute(os.Stdout, args[1:])
	case "quote":
		cmd, err := parseQuoteFlags(*configPath, args[1:])
		if err != nil {
			return err
		}
		return cmd.Execute(os.Stdout)
	case "config":
		cmd := &configCommand{configPath: *configPath}
		return cmd.Execute(args[1:])
	case "help":
		return showUsage()
	default:
		return fmt.Errorf("unknown command: %s", command)
	}
}

// parseRunFlags parses the run command flags.
func parseRunFlags(configPath string, args []string) (*runCommand, error) {
	fs := flag.NewFlagSet("run", flag.ContinueOnError)
	mode := fs.String("mode", "", "initial mode (focus, break)")
	start := fs.Bool("start", false, "start counting down immediately")
	format := fs.String("format", "", "frame format (table, simple)")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	switch *format {
	case "", "table", "simple":
	default:
		return nil, fmt.Errorf("invalid format %q: must be table or simple", *format)
	}

	return &runCommand{
		mode:       strings.ToLower(strings.TrimSpace(*mode)),
		start:      *start,
		format:     *format,
		configPath: configPath,
	}, nil
}

// parseStatsFlags parses the stats command flags.
func parseStatsFlags(configPath string, args []string) (*statsCommand, error) {
	fs := flag.NewFlagSet("stats", flag.ContinueOnError)
	format := fs.String("format", "", "output format (table, json, simple)")
	compact := fs.Bool("compact", false, "compact output")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	return &statsCommand{
		format:     *format,
		compact:    *compact,
		configPath: configPath,
	}, nil
}

// parseHistoryFlags parses the history command flags.
func parseHistoryFlags(configPath string, args []string) (*historyCommand, error) {
	fs := flag.NewFlagSet("history", flag.ContinueOnError)
	groupBy := fs.String("group-by", "", "group sessions (date, type)")
	limit := fs.Int("limit", 20, "show the N most recent sessions (0 for all)")
	format := fs.String("format", "", "output format (table, json, simple)")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	if *limit < 0 {
		return nil, fmt.Errorf("invalid limit %d: must be >= 0", *limit)
	}

	return &historyCommand{
		groupBy:    strings.ToLower(strings.TrimSpace(*groupBy)),
		limit:      *limit,
		format:     *format,
		configPath: configPath,
	}, nil
}

// parseQuoteFlags parses the quote command flags.
func parseQuoteFlags(configPath string, args []string) (*quoteCommand, error) {
	fs := flag.NewFlagSet("quote", flag.ContinueOnError)
	category := fs.String("category", "", "quote category (productivity, focus, success, motivation)")
	count := fs.Int("next", 1, "number of quotes to print")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	if *count < 1 {
		return nil, fmt.Errorf("invalid count %d: must be >= 1", *count)
	}

	return &quoteCommand{
		category:   strings.ToLower(strings.TrimSpace(*category)),
		count:      *count,
		configPath: configPath,
	}, nil
}

// showUsage displays usage information.
func showUsage() error {
	usage := `Pomodoro - terminal focus timer

Usage:
  pomodoro [flags] <command> [command flags]

Commands:
  run         Interactive focus/break timer
  stats       Show statistics, weekly goal progress and achievements
  history     List completed sessions
  settings    Timer settings (show, set, preset, reset)
  quote       Print motivational quotes
  config      Configuration management (show, path, reset)
  help        Show this help message

Global Flags:
  -config     Path to configuration file
  -version    Show version information

Run Command Flags:
  -mode       Initial mode (focus, break)
  -start      Start counting down immediately
  -format     Frame format (table, simple)

Run Command Keys:
  space, enter   Start / pause
  r              Reset the current countdown
  1 / 2          Switch to focus / break (while paused)
  q / Q          Next / previous quote
  x, ctrl-c      Quit

Stats Command Flags:
  -format     Output format (table, json, simple)
  -compact    Compact output

History Command Flags:
  -group-by   Group sessions (date, type)
  -limit      Show the N most recent sessions (default: 20, 0 for all)
  -format     Output format (table, json, simple)

Quote Command Flags:
  -category   Quote category (productivity, focus, success, motivation)
  -next       Number of quotes to print (default: 1)

Examples:
  # Start a focus countdown right away
  pomodoro run -start

  # Start in break mode with a compact frame
  pomodoro run -mode break -format simple

  # Show statistics in JSON format
  pomodoro stats -format json

  # Show focus time per day
  pomodoro history -group-by date

  # Switch to 45/15 minute sessions
  pomodoro settings preset extended

  # Set a custom focus length and mute the tones
  pomodoro settings set -focus 30 -sound=false

  # Print three focus quotes
  pomodoro quote -category focus -next 3

Version: %s
`

	fmt.Printf(usage, version)
	return nil
}
