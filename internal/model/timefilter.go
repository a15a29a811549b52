package model

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// TimeFilter bounds journal queries. Nil fields are open ends.
type TimeFilter struct {
	Since *time.Time
	Until *time.Time
}

var relativeUnits = map[byte]time.Duration{
	'm': time.Minute,
	'h': time.Hour,
	'd': 24 * time.Hour,
	'w': 7 * 24 * time.Hour,
}

var absoluteLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04",
	"2006-01-02",
}

// ParseTimeFilter builds a filter from --since/--until flag values.
// Both empty yields nil.
func ParseTimeFilter(since, until string, now time.Time) (*TimeFilter, error) {
	if since == "" && until == "" {
		return nil, nil
	}
	tf := &TimeFilter{}
	for _, b := range []struct {
		flag, value string
		dst         **time.Time
	}{
		{"--since", since, &tf.Since},
		{"--until", until, &tf.Until},
	} {
		if b.value == "" {
			continue
		}
		t, err := parseTimeArg(b.value, now)
		if err != nil {
			return nil, fmt.Errorf("invalid %s value %q: %w", b.flag, b.value, err)
		}
		*b.dst = &t
	}
	return tf, nil
}

// parseTimeArg accepts a relative age ("30m", "2h", "1d", "1w") measured back
// from now, or an absolute timestamp.
func parseTimeArg(s string, now time.Time) (time.Time, error) {
	if d, ok := parseRelativeDuration(s); ok {
		return now.Add(-d), nil
	}
	for _, layout := range absoluteLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("expected relative age (30m, 2h, 1d, 1w) or timestamp (2006-01-02, 2006-01-02T15:04, RFC3339)")
}

func parseRelativeDuration(s string) (time.Duration, bool) {
	if len(s) < 2 {
		return 0, false
	}
	unit, ok := relativeUnits[s[len(s)-1]]
	if !ok {
		return 0, false
	}
	n, err := strconv.Atoi(strings.TrimSpace(s[:len(s)-1]))
	if err != nil || n <= 0 {
		return 0, false
	}
	return time.Duration(n) * unit, true
}
