package model

import (
	"testing"
	"time"
)

var refNow = time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)

// --- parseRelativeDuration ---

func TestParseRelativeDuration_WhenGivenKnownSuffixes_ShouldReturnDuration(t *testing.T) {
	cases := map[string]time.Duration{
		"30m": 30 * time.Minute,
		"2h":  2 * time.Hour,
		"1d":  24 * time.Hour,
		"1w":  7 * 24 * time.Hour,
	}
	for in, want := range cases {
		got, ok := parseRelativeDuration(in)
		if !ok || got != want {
			t.Errorf("%s: expected %v, got %v (ok=%v)", in, want, got, ok)
		}
	}
}

func TestParseRelativeDuration_WhenGivenInvalidValues_ShouldReturnFalse(t *testing.T) {
	for _, in := range []string{"", "h", "-3h", "0d", "5x", "abch"} {
		if _, ok := parseRelativeDuration(in); ok {
			t.Errorf("%q: expected ok=false", in)
		}
	}
}

// --- parseTimeArg ---

func TestParseTimeArg_WhenGivenRelativeDuration_ShouldCountBackFromNow(t *testing.T) {
	got, err := parseTimeArg("2h", refNow)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !got.Equal(refNow.Add(-2 * time.Hour)) {
		t.Errorf("expected 2h before now, got %v", got)
	}
}

func TestParseTimeArg_WhenGivenAbsoluteFormats_ShouldParseThem(t *testing.T) {
	cases := map[string]time.Time{
		"2024-06-15":           time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC),
		"2024-06-15T14:30":     time.Date(2024, 6, 15, 14, 30, 0, 0, time.UTC),
		"2024-06-15T14:30:00Z": time.Date(2024, 6, 15, 14, 30, 0, 0, time.UTC),
	}
	for in, want := range cases {
		got, err := parseTimeArg(in, refNow)
		if err != nil {
			t.Fatalf("%s: unexpected error: %v", in, err)
		}
		if !got.Equal(want) {
			t.Errorf("%s: expected %v, got %v", in, want, got)
		}
	}
}

func TestParseTimeArg_WhenGivenGarbage_ShouldReturnError(t *testing.T) {
	if _, err := parseTimeArg("yesterday", refNow); err == nil {
		t.Error("expected error for unparseable value")
	}
}

// --- ParseTimeFilter ---

func TestParseTimeFilter_WhenBothEmpty_ShouldReturnNil(t *testing.T) {
	tf, err := ParseTimeFilter("", "", refNow)
	if err != nil || tf != nil {
		t.Errorf("expected nil filter and nil error, got %v %v", tf, err)
	}
}

func TestParseTimeFilter_WhenOnlySinceSet_ShouldLeaveUntilOpen(t *testing.T) {
	tf, err := ParseTimeFilter("1d", "", refNow)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tf.Since == nil || !tf.Since.Equal(refNow.Add(-24*time.Hour)) {
		t.Errorf("unexpected since %v", tf.Since)
	}
	if tf.Until != nil {
		t.Errorf("expected open until, got %v", tf.Until)
	}
}

func TestParseTimeFilter_WhenUntilInvalid_ShouldNameTheFlag(t *testing.T) {
	_, err := ParseTimeFilter("", "nope", refNow)
	if err == nil {
		t.Fatal("expected error")
	}
	if want := `invalid --until value "nope"`; len(err.Error()) < len(want) || err.Error()[:len(want)] != want {
		t.Errorf("expected error to start with %q, got %q", want, err.Error())
	}
}
