package store

import (
	"path/filepath"
	"testing"
	"time"

	"hassha/internal/model"
)

// --- appendTimeClauses ---

func TestAppendTimeClauses_WhenFilterIsNil_ShouldReturnEmptyStringAndUnchangedParams(t *testing.T) {
	params := []any{"existing"}
	clause, out := appendTimeClauses(nil, "played_at", true, params)

	if clause != "" {
		t.Errorf("expected empty clause, got %q", clause)
	}
	if len(out) != 1 {
		t.Errorf("expected params unchanged (len=1), got len=%d", len(out))
	}
}

func TestAppendTimeClauses_WhenOnlySinceSet_ShouldReturnSingleAndClause(t *testing.T) {
	since := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	tf := &model.TimeFilter{Since: &since}

	clause, out := appendTimeClauses(tf, "played_at", true, []any{"existing"})

	if clause != " AND played_at >= ?" {
		t.Errorf("expected ' AND played_at >= ?', got %q", clause)
	}
	if len(out) != 2 {
		t.Fatalf("expected 2 params, got %d", len(out))
	}
	if !out[1].(time.Time).Equal(since) {
		t.Errorf("expected since param, got %v", out[1])
	}
}

func TestAppendTimeClauses_WhenHasWhereIsFalseAndBothSet_ShouldUseWhereForFirstThenAnd(t *testing.T) {
	since := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	until := time.Date(2025, 12, 31, 0, 0, 0, 0, time.UTC)
	tf := &model.TimeFilter{Since: &since, Until: &until}

	clause, out := appendTimeClauses(tf, "ts", false, nil)

	expected := " WHERE ts >= ? AND ts <= ?"
	if clause != expected {
		t.Errorf("expected %q, got %q", expected, clause)
	}
	if len(out) != 2 {
		t.Errorf("expected 2 params, got %d", len(out))
	}
}

func TestAppendTimeClauses_WhenFilterHasNoFields_ShouldReturnEmpty(t *testing.T) {
	clause, out := appendTimeClauses(&model.TimeFilter{}, "ts", false, []any{"x"})

	if clause != "" {
		t.Errorf("expected empty clause, got %q", clause)
	}
	if len(out) != 1 {
		t.Errorf("expected params unchanged, got len=%d", len(out))
	}
}

func TestAppendTimeClauses_ShouldNormalizeParamsToUTC(t *testing.T) {
	tokyo := time.FixedZone("JST", 9*3600)
	since := time.Date(2025, 6, 1, 9, 0, 0, 0, tokyo)

	_, out := appendTimeClauses(&model.TimeFilter{Since: &since}, "ts", false, nil)

	got := out[0].(time.Time)
	if got.Location() != time.UTC || got.Hour() != 0 {
		t.Errorf("expected 00:00 UTC, got %v", got)
	}
}

// --- Integration tests with DuckDB ---

// openTestStore creates a journal in a temp dir with the schema initialized.
func openTestStore(t *testing.T) *Store {
	t.Helper()
	st, err := Open(filepath.Join(t.TempDir(), "journal.duckdb"))
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	if err := st.InitSchema(); err != nil {
		t.Fatalf("init schema: %v", err)
	}
	t.Cleanup(func() { st.Close() })
	return st
}

var base = time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

// seedPlays records five plays over four days:
// JY-Tokyo x3 (Stop), JY-Shibuya x1 (PostToolUse/Bash), ./ding.mp3 x1 (Notification).
func seedPlays(t *testing.T, st *Store) {
	t.Helper()
	plays := []model.Play{
		{Event: "Stop", Melody: "JY-Tokyo", ProjectDir: "/p", Volume: 1, PlayedAt: base},
		{Event: "Stop", Melody: "JY-Tokyo", ProjectDir: "/p", Volume: 1, PlayedAt: base.Add(24 * time.Hour)},
		{Event: "PostToolUse", Melody: "JY-Shibuya", ProjectDir: "/p", ToolName: "Bash", SessionID: "s1", Volume: 0.5, PlayedAt: base.Add(48 * time.Hour)},
		{Event: "Stop", Melody: "JY-Tokyo", ProjectDir: "/q", Volume: 1, PlayedAt: base.Add(72 * time.Hour)},
		{Event: "Notification", Melody: "./ding.mp3", ProjectDir: "/q", Volume: 0.8, PlayedAt: base.Add(72 * time.Hour)},
	}
	for _, p := range plays {
		if err := st.RecordPlay(p); err != nil {
			t.Fatalf("record play: %v", err)
		}
	}
}

func TestOpen_WhenParentDirMissing_ShouldCreateIt(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "journal.duckdb")
	st, err := Open(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer st.Close()
	if err := st.InitSchema(); err != nil {
		t.Fatalf("init schema: %v", err)
	}
}

func TestInitSchema_WhenCalledTwice_ShouldBeIdempotent(t *testing.T) {
	st := openTestStore(t)
	if err := st.InitSchema(); err != nil {
		t.Fatalf("expected idempotent schema init, got error: %v", err)
	}
}

func TestRecordPlay_WhenOptionalFieldsEmpty_ShouldStoreNull(t *testing.T) {
	st := openTestStore(t)
	if err := st.RecordPlay(model.Play{Event: "Stop", Melody: "JY-Tokyo", ProjectDir: "/p", Volume: 1, PlayedAt: base}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var nulls int
	if err := st.db.QueryRow(`SELECT count(*) FROM plays WHERE session_id IS NULL AND tool_name IS NULL`).Scan(&nulls); err != nil {
		t.Fatal(err)
	}
	if nulls != 1 {
		t.Errorf("expected optional fields stored as NULL, got %d matching rows", nulls)
	}
}

func TestRecordPlay_WhenMultiplePlays_ShouldAssignDistinctIDs(t *testing.T) {
	st := openTestStore(t)
	seedPlays(t, st)

	var distinct int
	if err := st.db.QueryRow(`SELECT count(DISTINCT id) FROM plays`).Scan(&distinct); err != nil {
		t.Fatal(err)
	}
	if distinct != 5 {
		t.Errorf("expected 5 distinct ids, got %d", distinct)
	}
}

func TestTotal_WhenNoFilter_ShouldCountEverything(t *testing.T) {
	st := openTestStore(t)
	seedPlays(t, st)

	n, err := st.Total(nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if n != 5 {
		t.Errorf("expected 5, got %d", n)
	}
}

func TestTotal_WhenJournalEmpty_ShouldReturnZero(t *testing.T) {
	st := openTestStore(t)
	n, err := st.Total(nil)
	if err != nil || n != 0 {
		t.Errorf("expected (0, nil), got (%d, %v)", n, err)
	}
}

func TestMelodyCounts_ShouldOrderByPlaysThenName(t *testing.T) {
	st := openTestStore(t)
	seedPlays(t, st)

	counts, err := st.MelodyCounts(10, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(counts) != 3 {
		t.Fatalf("expected 3 melodies, got %d", len(counts))
	}
	if counts[0].Key != "JY-Tokyo" || counts[0].Plays != 3 {
		t.Errorf("expected JY-Tokyo x3 first, got %+v", counts[0])
	}
	if !counts[0].LastPlay.Equal(base.Add(72 * time.Hour)) {
		t.Errorf("expected last play %v, got %v", base.Add(72*time.Hour), counts[0].LastPlay)
	}
	// ties broken alphabetically
	if counts[1].Key != "./ding.mp3" || counts[2].Key != "JY-Shibuya" {
		t.Errorf("unexpected tie order: %q, %q", counts[1].Key, counts[2].Key)
	}
}

func TestMelodyCounts_ShouldRespectLimit(t *testing.T) {
	st := openTestStore(t)
	seedPlays(t, st)

	counts, err := st.MelodyCounts(1, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(counts) != 1 {
		t.Errorf("expected 1 row, got %d", len(counts))
	}
}

func TestMelodyCounts_WhenSinceFilterSet_ShouldExcludeOlderPlays(t *testing.T) {
	st := openTestStore(t)
	seedPlays(t, st)

	since := base.Add(36 * time.Hour)
	counts, err := st.MelodyCounts(10, &model.TimeFilter{Since: &since})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, c := range counts {
		if c.Key == "JY-Tokyo" && c.Plays != 1 {
			t.Errorf("expected only the last JY-Tokyo play, got %d", c.Plays)
		}
	}
	if len(counts) != 3 {
		t.Errorf("expected 3 melodies in range, got %d", len(counts))
	}
}

func TestEventCounts_WhenUntilFilterSet_ShouldExcludeNewerPlays(t *testing.T) {
	st := openTestStore(t)
	seedPlays(t, st)

	until := base.Add(36 * time.Hour)
	counts, err := st.EventCounts(10, &model.TimeFilter{Until: &until})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(counts) != 1 || counts[0].Key != "Stop" || counts[0].Plays != 2 {
		t.Errorf("expected Stop x2 only, got %+v", counts)
	}
}

func TestEventCounts_WhenTimeRangeExcludesAll_ShouldReturnNoResults(t *testing.T) {
	st := openTestStore(t)
	seedPlays(t, st)

	since := base.Add(-48 * time.Hour)
	until := base.Add(-24 * time.Hour)
	counts, err := st.EventCounts(10, &model.TimeFilter{Since: &since, Until: &until})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(counts) != 0 {
		t.Errorf("expected no results, got %d", len(counts))
	}
}

// --- helpers ---

func TestNullStr_WhenGivenEmptyString_ShouldReturnNil(t *testing.T) {
	if got := nullStr(""); got != nil {
		t.Errorf("expected nil, got %v", got)
	}
}

func TestNullStr_WhenGivenNonEmptyString_ShouldReturnString(t *testing.T) {
	if got := nullStr("Bash"); got != "Bash" {
		t.Errorf("expected Bash, got %v", got)
	}
}
