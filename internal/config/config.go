// Package config resolves the user-level data paths and the per-project
// .hassha/config.toml that maps hook events to melodies.
package config

import (
	"os"
	"path/filepath"
)

// HomeEnv overrides the data directory (default ~/.hassha).
const HomeEnv = "HASSHA_HOME"

// Config holds base paths used by the player.
type Config struct {
	Home string
}

// Default returns a Config rooted at $HASSHA_HOME, or ~/.hassha when unset.
func Default() Config {
	if h := os.Getenv(HomeEnv); h != "" {
		return Config{Home: h}
	}
	home, err := os.UserHomeDir()
	if err != nil {
		home = os.Getenv("HOME")
	}
	return Config{Home: filepath.Join(home, ".hassha")}
}

// CacheDir returns the directory holding downloaded audio files.
func (c Config) CacheDir() string {
	return filepath.Join(c.Home, "audio")
}

// HistoryPath returns the JSON history file path.
func (c Config) HistoryPath() string {
	return filepath.Join(c.Home, "history.json")
}

// JournalPath returns the DuckDB play journal path.
func (c Config) JournalPath() string {
	return filepath.Join(c.Home, "journal.duckdb")
}
