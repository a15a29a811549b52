// Package store keeps the play journal: one DuckDB row per melody actually
// played, queried by the stats command.
package store

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"hassha/internal/model"

	_ "github.com/duckdb/duckdb-go/v2"
)

// Store wraps a DuckDB connection.
type Store struct {
	db *sql.DB
}

// Open connects to the journal at dbPath, creating its directory if needed.
func Open(dbPath string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return nil, fmt.Errorf("create journal directory: %w", err)
	}
	db, err := sql.Open("duckdb", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open duckdb %s: %w", dbPath, err)
	}
	return &Store{db: db}, nil
}

// Close releases the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// InitSchema creates the plays table and its indexes if they don't exist.
func (s *Store) InitSchema() error {
	if _, err := s.db.Exec(journalSchema); err != nil {
		return fmt.Errorf("init journal schema: %w", err)
	}
	return nil
}

// RecordPlay appends one play to the journal.
func (s *Store) RecordPlay(p model.Play) error {
	_, err := s.db.Exec(`
		INSERT INTO plays (event, melody, project_dir, session_id, tool_name, volume, played_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`, p.Event, p.Melody, p.ProjectDir, nullStr(p.SessionID), nullStr(p.ToolName), p.Volume, p.PlayedAt.UTC())
	if err != nil {
		return fmt.Errorf("record play: %w", err)
	}
	return nil
}

// Total returns the number of plays inside the time filter.
func (s *Store) Total(tf *model.TimeFilter) (int64, error) {
	timeClause, params := appendTimeClauses(tf, "played_at", false, nil)
	var n int64
	err := s.db.QueryRow(`SELECT count(*) FROM plays`+timeClause, params...).Scan(&n)
	return n, err
}

// MelodyCounts tallies plays per melody reference, most played first.
func (s *Store) MelodyCounts(limit int, tf *model.TimeFilter) ([]model.Count, error) {
	return s.countBy("melody", limit, tf)
}

// EventCounts tallies plays per hook event, most played first.
func (s *Store) EventCounts(limit int, tf *model.TimeFilter) ([]model.Count, error) {
	return s.countBy("event", limit, tf)
}

// countBy groups on col, which must be a trusted column name.
func (s *Store) countBy(col string, limit int, tf *model.TimeFilter) ([]model.Count, error) {
	timeClause, params := appendTimeClauses(tf, "played_at", false, nil)

	query := fmt.Sprintf(`
		SELECT %[1]s, count(*) AS plays, max(played_at) AS last_play
		FROM plays
		%[2]s
		GROUP BY %[1]s
		ORDER BY plays DESC, %[1]s ASC
		LIMIT ?
	`, col, timeClause)

	params = append(params, limit)
	rows, err := s.db.Query(query, params...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.Count
	for rows.Next() {
		var c model.Count
		if err := rows.Scan(&c.Key, &c.Plays, &c.LastPlay); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

// --- helpers ---

// appendTimeClauses builds SQL fragments for time filtering.
// If hasWhere is true, clauses use "AND"; otherwise the first clause uses "WHERE".
func appendTimeClauses(tf *model.TimeFilter, tsCol string, hasWhere bool, params []any) (string, []any) {
	if tf == nil {
		return "", params
	}

	var clauses []string
	if tf.Since != nil {
		clauses = append(clauses, tsCol+" >= ?")
		params = append(params, tf.Since.UTC())
	}
	if tf.Until != nil {
		clauses = append(clauses, tsCol+" <= ?")
		params = append(params, tf.Until.UTC())
	}

	var sb strings.Builder
	for i, c := range clauses {
		if i == 0 && !hasWhere {
			sb.WriteString(" WHERE ")
		} else {
			sb.WriteString(" AND ")
		}
		sb.WriteString(c)
	}
	return sb.String(), params
}

func nullStr(s string) any {
	if s == "" {
		return nil
	}
	return s
}
