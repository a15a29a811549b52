package config

import (
	"path/filepath"
	"strings"
	"testing"
)

// --- Default ---

func TestDefault_WhenHomeEnvSet_ShouldUseIt(t *testing.T) {
	t.Setenv(HomeEnv, "/var/hassha")
	c := Default()
	if c.Home != "/var/hassha" {
		t.Errorf("expected Home %q, got %q", "/var/hassha", c.Home)
	}
}

func TestDefault_WhenHomeEnvUnset_ShouldUseDotHasshaUnderUserHome(t *testing.T) {
	t.Setenv(HomeEnv, "")
	t.Setenv("HOME", "/home/alice")
	c := Default()
	if !strings.HasSuffix(c.Home, ".hassha") {
		t.Errorf("expected Home to end with .hassha, got %q", c.Home)
	}
}

// --- derived paths ---

func TestCacheDir_ShouldBeAudioUnderHome(t *testing.T) {
	c := Config{Home: "/tmp/h"}
	if got := c.CacheDir(); got != filepath.Join("/tmp/h", "audio") {
		t.Errorf("expected audio dir, got %q", got)
	}
}

func TestHistoryPath_ShouldBeHistoryJSONUnderHome(t *testing.T) {
	c := Config{Home: "/tmp/h"}
	if got := c.HistoryPath(); got != filepath.Join("/tmp/h", "history.json") {
		t.Errorf("expected history.json, got %q", got)
	}
}

func TestJournalPath_ShouldBeDuckDBFileUnderHome(t *testing.T) {
	c := Config{Home: "/tmp/h"}
	if got := c.JournalPath(); !strings.HasSuffix(got, "journal.duckdb") {
		t.Errorf("expected path ending in journal.duckdb, got %q", got)
	}
}
