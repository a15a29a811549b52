// Package history keeps the last few dispatches in a small JSON file so the
// user can see what played and why.
package history

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// MaxEntries is the number of entries kept; older ones are dropped.
const MaxEntries = 10

// EmptyMessage is what Format renders for an empty log.
const EmptyMessage = "No melody history yet."

// Entry is one dispatch.
type Entry struct {
	Timestamp  string  `json:"timestamp"`
	Event      string  `json:"event"`
	Melody     string  `json:"melody"`
	ProjectDir string  `json:"project_dir"`
	ToolName   *string `json:"tool_name,omitempty"`
	Matcher    *string `json:"matcher,omitempty"`
}

// History is the persisted document, newest entry first.
type History struct {
	Entries []Entry `json:"entries"`
}

// Log reads and writes the history file.
type Log struct {
	path string
	now  func() time.Time
}

// New returns a Log backed by path.
func New(path string) *Log {
	return &Log{path: path, now: time.Now}
}

// Path returns the backing file.
func (l *Log) Path() string { return l.path }

// Load reads the history file. A missing file is an empty history.
func (l *Log) Load() (*History, error) {
	data, err := os.ReadFile(l.path)
	if err != nil {
		if os.IsNotExist(err) {
			return &History{}, nil
		}
		return nil, fmt.Errorf("read history %s: %w", l.path, err)
	}
	var h History
	if err := json.Unmarshal(data, &h); err != nil {
		return nil, fmt.Errorf("parse history %s: %w", l.path, err)
	}
	return &h, nil
}

// Append records a dispatch at the front of the log and rewrites the file.
// An unreadable existing file is treated as empty.
func (l *Log) Append(event, melody, projectDir string, toolName, matcher *string) error {
	h, err := l.Load()
	if err != nil {
		h = &History{}
	}

	entry := Entry{
		Timestamp:  Timestamp(l.now().Unix()),
		Event:      event,
		Melody:     melody,
		ProjectDir: projectDir,
		ToolName:   toolName,
		Matcher:    matcher,
	}
	h.Entries = append([]Entry{entry}, h.Entries...)
	if len(h.Entries) > MaxEntries {
		h.Entries = h.Entries[:MaxEntries]
	}
	return l.save(h)
}

// Clear removes the history file.
func (l *Log) Clear() error {
	if err := os.Remove(l.path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("remove history %s: %w", l.path, err)
	}
	return nil
}

func (l *Log) save(h *History) error {
	if err := os.MkdirAll(filepath.Dir(l.path), 0o755); err != nil {
		return fmt.Errorf("create history dir: %w", err)
	}
	data, err := json.MarshalIndent(h, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal history: %w", err)
	}
	if err := os.WriteFile(l.path, data, 0o644); err != nil {
		return fmt.Errorf("write history %s: %w", l.path, err)
	}
	return nil
}

// Format renders up to MaxEntries entries, most recent first.
func Format(h *History) string {
	if h == nil || len(h.Entries) == 0 {
		return EmptyMessage
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Recent melody history (last %d):\n\n", MaxEntries)
	for i, e := range h.Entries {
		if i == MaxEntries {
			break
		}
		fmt.Fprintf(&b, "%d. [%s] %s\n", i+1, e.Timestamp, e.Event)
		fmt.Fprintf(&b, "   Melody: %s\n", e.Melody)
		fmt.Fprintf(&b, "   Project: %s\n", e.ProjectDir)
		if e.ToolName != nil {
			fmt.Fprintf(&b, "   Tool: %s\n", *e.ToolName)
		}
		if e.Matcher != nil {
			fmt.Fprintf(&b, "   Matcher: %s\n", *e.Matcher)
		}
		b.WriteByte('\n')
	}
	return b.String()
}
