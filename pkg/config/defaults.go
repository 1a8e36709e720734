package config

import (
	"os"
	"path/filepath"
)

// configDir returns ~/.config/pomodoro, or "." without a home directory.
func configDir() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "."
	}

	return filepath.Join(homeDir, ".config", "pomodoro")
}

// defaultDBPath returns the default database file path.
//
// Returns: ~/.config/pomodoro/pomodoro.db.
func defaultDBPath() string {
	return filepath.Join(configDir(), "pomodoro.db")
}

// DefaultConfigPath returns the default configuration file path.
//
// Returns: ~/.config/pomodoro/config.yaml.
func DefaultConfigPath() string {
	return filepath.Join(configDir(), "config.yaml")
}

// SearchPaths returns the configuration file candidates in order of
// precedence.
func SearchPaths() []string {
	return []string{
		"./config.yaml",
		DefaultConfigPath(),
	}
}

// FindConfigFile returns the config file that Load would use: the path in
// POMODORO_CONFIG, else the first existing search path, else "".
func FindConfigFile() string {
	if path := os.Getenv("POMODORO_CONFIG"); path != "" {
		return path
	}

	for _, path := range SearchPaths() {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}

	return ""
}
