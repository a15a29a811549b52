package config

import (
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// ProjectFile is the config location relative to a project directory.
const ProjectFile = ".hassha/config.toml"

// DefaultVolume applies when a rule omits volume.
const DefaultVolume = 1.0

// HasshaConfig is the decoded project configuration.
type HasshaConfig struct {
	Hooks map[string]HookConfig `toml:"hooks"`
}

// HookConfig is the rule for a single hook event.
type HookConfig struct {
	// Melody is a registry id, an http(s) URL or a local file path.
	Melody  string  `toml:"melody"`
	Volume  float64 `toml:"volume"`
	Matcher *string `toml:"matcher"`
}

// Rule returns the rule configured for event.
func (c *HasshaConfig) Rule(event string) (HookConfig, bool) {
	if c == nil {
		return HookConfig{}, false
	}
	h, ok := c.Hooks[event]
	return h, ok
}

// ParseError reports a config file that exists but cannot be used.
type ParseError struct {
	Path string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse config %s: %v", e.Path, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// FindProjectConfig walks from startDir up to the filesystem root and returns
// the first ProjectFile found.
func FindProjectConfig(startDir string) (string, bool) {
	dir, err := filepath.Abs(startDir)
	if err != nil {
		dir = filepath.Clean(startDir)
	}
	for {
		candidate := filepath.Join(dir, ProjectFile)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, true
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", false
		}
		dir = parent
	}
}

// LoadProject finds and decodes the nearest project config. A missing config
// returns (nil, "", nil).
func LoadProject(startDir string) (*HasshaConfig, string, error) {
	path, ok := FindProjectConfig(startDir)
	if !ok {
		return nil, "", nil
	}
	cfg, err := ParseFile(path)
	if err != nil {
		return nil, path, err
	}
	return cfg, path, nil
}

// ParseFile decodes a config file and applies rule defaults.
func ParseFile(path string) (*HasshaConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &ParseError{Path: path, Err: err}
	}
	cfg, err := Parse(data)
	if err != nil {
		return nil, &ParseError{Path: path, Err: err}
	}
	return cfg, nil
}

// Parse decodes TOML config bytes.
func Parse(data []byte) (*HasshaConfig, error) {
	var raw struct {
		Hooks map[string]struct {
			Melody  string   `toml:"melody"`
			Volume  *float64 `toml:"volume"`
			Matcher *string  `toml:"matcher"`
		} `toml:"hooks"`
	}
	if _, err := toml.Decode(string(data), &raw); err != nil {
		return nil, err
	}

	cfg := &HasshaConfig{Hooks: make(map[string]HookConfig, len(raw.Hooks))}
	for event, h := range raw.Hooks {
		if h.Melody == "" {
			return nil, errors.New("hooks." + event + ": melody is required")
		}
		hc := HookConfig{Melody: h.Melody, Volume: DefaultVolume, Matcher: h.Matcher}
		if h.Volume != nil {
			if math.IsNaN(*h.Volume) || math.IsInf(*h.Volume, 0) {
				return nil, fmt.Errorf("hooks.%s: volume must be a finite number", event)
			}
			hc.Volume = *h.Volume
		}
		cfg.Hooks[event] = hc
	}
	return cfg, nil
}
