// Package storage keeps the session match journal in an in-memory SQLite
// database. Uses the pure-Go modernc.org/sqlite driver to avoid CGO
// dependencies. Nothing is written to disk; the journal lives as long as
// the process.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// Store manages the SQLite connection holding the match journal.
type Store struct {
	db *sql.DB
}

// MatchRecord is one finished match.
type MatchRecord struct {
	ID           int64
	MatchID      string
	Winner       string // "left" or "right"
	ScoreLeft    int
	ScoreRight   int
	LeftHuman    bool
	RightHuman   bool
	Hits         int // Paddle hits over the whole match
	LongestRally int // Most paddle hits between two serves
	DurationMs   int64
	CreatedAt    time.Time
}

// WinnerHuman reports whether the winning side was human-controlled.
func (m MatchRecord) WinnerHuman() bool {
	if m.Winner == "left" {
		return m.LeftHuman
	}
	return m.RightHuman
}

// Summary aggregates the journal.
type Summary struct {
	Matches       int
	LeftWins      int
	RightWins     int
	HumanWins     int
	TotalHits     int
	LongestRally  int
	AvgDurationMs float64
}

// OpenMemory creates a fresh in-memory journal and runs migrations.
func OpenMemory() (*Store, error) {
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	// Every connection to :memory: is a separate database.
	db.SetMaxOpenConns(1)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}

	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS matches (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			match_id TEXT NOT NULL UNIQUE,
			winner TEXT NOT NULL,
			score_left INTEGER NOT NULL DEFAULT 0,
			score_right INTEGER NOT NULL DEFAULT 0,
			left_human INTEGER NOT NULL DEFAULT 0,
			right_human INTEGER NOT NULL DEFAULT 0,
			hits INTEGER NOT NULL DEFAULT 0,
			longest_rally INTEGER NOT NULL DEFAULT 0,
			duration_ms INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_matches_winner ON matches(winner);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection, discarding the journal.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// SaveMatch records a finished match.
// Returns the ID of the inserted record.
func (s *Store) SaveMatch(m MatchRecord) (int64, error) {
	result, err := s.db.Exec(
		`INSERT INTO matches
		 (match_id, winner, score_left, score_right, left_human, right_human, hits, longest_rally, duration_ms)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		m.MatchID,
		m.Winner,
		m.ScoreLeft,
		m.ScoreRight,
		m.LeftHuman,
		m.RightHuman,
		m.Hits,
		m.LongestRally,
		m.DurationMs,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save match: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

const matchColumns = `id, match_id, winner, score_left, score_right, left_human, right_human,
		        hits, longest_rally, duration_ms, created_at`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanMatch(row rowScanner) (MatchRecord, error) {
	var m MatchRecord
	var createdAt any
	err := row.Scan(
		&m.ID,
		&m.MatchID,
		&m.Winner,
		&m.ScoreLeft,
		&m.ScoreRight,
		&m.LeftHuman,
		&m.RightHuman,
		&m.Hits,
		&m.LongestRally,
		&m.DurationMs,
		&createdAt,
	)
	if err != nil {
		return m, err
	}

	// Parse the datetime - handle both time.Time and string
	switch v := createdAt.(type) {
	case time.Time:
		m.CreatedAt = v
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", v); err == nil {
			m.CreatedAt = parsed
		}
	}
	return m, nil
}

// MatchByID retrieves a match by its match ID.
// Returns nil without error when no such match exists.
func (s *Store) MatchByID(matchID string) (*MatchRecord, error) {
	row := s.db.QueryRow(
		`SELECT `+matchColumns+`
		 FROM matches
		 WHERE match_id = ?`,
		matchID,
	)

	m, err := scanMatch(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query match: %w", err)
	}
	return &m, nil
}

// RecentMatches retrieves the most recent matches, newest first.
func (s *Store) RecentMatches(limit int) ([]MatchRecord, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT `+matchColumns+`
		 FROM matches
		 ORDER BY id DESC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query matches: %w", err)
	}
	defer rows.Close()

	var matches []MatchRecord
	for rows.Next() {
		m, err := scanMatch(rows)
		if err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		matches = append(matches, m)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return matches, nil
}

// Summary aggregates every match in the journal.
func (s *Store) Summary() (Summary, error) {
	var sum Summary
	err := s.db.QueryRow(
		`SELECT COUNT(*),
		        COALESCE(SUM(winner = 'left'), 0),
		        COALESCE(SUM(winner = 'right'), 0),
		        COALESCE(SUM((winner = 'left' AND left_human) OR (winner = 'right' AND right_human)), 0),
		        COALESCE(SUM(hits), 0),
		        COALESCE(MAX(longest_rally), 0),
		        COALESCE(AVG(duration_ms), 0)
		 FROM matches`,
	).Scan(
		&sum.Matches,
		&sum.LeftWins,
		&sum.RightWins,
		&sum.HumanWins,
		&sum.TotalHits,
		&sum.LongestRally,
		&sum.AvgDurationMs,
	)
	if err != nil {
		return Summary{}, fmt.Errorf("storage: cannot get summary: %w", err)
	}
	return sum, nil
}
