// Package storage keeps the history of finished rounds for the current
// process in an in-memory SQLite database. Nothing is written to disk: the
// history and the best scores are gone when the process exits.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/vovakirdan/term2048/internal/core"
)

// ErrDuplicateRound is returned by SaveRound when the round ID was already
// recorded.
var ErrDuplicateRound = errors.New("storage: round already recorded")

// Store manages the in-memory round history.
type Store struct {
	db *sql.DB
}

// Round is a single recorded round.
type Round struct {
	ID        int64
	RoundID   string
	Variant   string
	Score     int
	MaxTile   int
	Moves     int
	Outcome   string
	CreatedAt time.Time
}

// Stats aggregates the rounds of one variant.
type Stats struct {
	Rounds     int
	Wins       int
	BestScore  int
	BestTile   int
	TotalMoves int
}

// Open creates an empty in-memory database and runs migrations.
func Open() (*Store, error) {
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	// Every connection to ":memory:" is a separate database.
	db.SetMaxOpenConns(1)

	// Test connection
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}

	// Run migrations
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS rounds (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			round_id TEXT NOT NULL UNIQUE,
			variant TEXT NOT NULL,
			score INTEGER NOT NULL,
			max_tile INTEGER NOT NULL,
			moves INTEGER NOT NULL,
			outcome TEXT NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_rounds_variant ON rounds(variant);
		CREATE INDEX IF NOT EXISTS idx_rounds_top ON rounds(variant, score DESC);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection, discarding the history.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// SaveRound records a finished round.
// Returns the ID of the inserted record.
func (s *Store) SaveRound(r core.RoundSummary) (int64, error) {
	if r.ID == "" {
		return 0, errors.New("storage: round has no ID")
	}

	var exists int
	err := s.db.QueryRow("SELECT COUNT(*) FROM rounds WHERE round_id = ?", r.ID).Scan(&exists)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot check round: %w", err)
	}
	if exists > 0 {
		return 0, fmt.Errorf("%w: %s", ErrDuplicateRound, r.ID)
	}

	result, err := s.db.Exec(
		`INSERT INTO rounds (round_id, variant, score, max_tile, moves, outcome)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		r.ID, r.Variant, r.Score, r.MaxTile, r.Moves, r.Outcome,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save round: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

const roundColumns = `id, round_id, variant, score, max_tile, moves, outcome, created_at`

// TopRounds retrieves the best N rounds for the given variant, or across all
// variants when variant is empty. Results are ordered by score descending,
// earliest first among equal scores.
func (s *Store) TopRounds(variant string, limit int) ([]Round, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT `+roundColumns+`
		 FROM rounds
		 WHERE ? = '' OR variant = ?
		 ORDER BY score DESC, id ASC
		 LIMIT ?`,
		variant, variant, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query rounds: %w", err)
	}
	return scanRounds(rows)
}

// RecentRounds retrieves the most recently recorded rounds, newest first.
func (s *Store) RecentRounds(limit int) ([]Round, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT `+roundColumns+`
		 FROM rounds
		 ORDER BY id DESC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query rounds: %w", err)
	}
	return scanRounds(rows)
}

func scanRounds(rows *sql.Rows) ([]Round, error) {
	defer rows.Close()

	var rounds []Round
	for rows.Next() {
		var r Round
		var createdAt any
		if err := rows.Scan(&r.ID, &r.RoundID, &r.Variant, &r.Score, &r.MaxTile, &r.Moves, &r.Outcome, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}

		// Parse the datetime - handle both time.Time and string
		switch v := createdAt.(type) {
		case time.Time:
			r.CreatedAt = v
		case string:
			if parsed, err := time.Parse("2006-01-02 15:04:05", v); err == nil {
				r.CreatedAt = parsed
			}
		}
		rounds = append(rounds, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return rounds, nil
}

// HighScore returns the highest score recorded for the given variant.
// Returns 0 if no rounds exist.
func (s *Store) HighScore(variant string) (int, error) {
	var score sql.NullInt64
	err := s.db.QueryRow(
		"SELECT MAX(score) FROM rounds WHERE variant = ?",
		variant,
	).Scan(&score)

	if err != nil {
		return 0, fmt.Errorf("storage: cannot query high score: %w", err)
	}

	if !score.Valid {
		return 0, nil
	}

	return int(score.Int64), nil
}

// VariantStats aggregates the rounds recorded for the given variant.
func (s *Store) VariantStats(variant string) (Stats, error) {
	var st Stats
	err := s.db.QueryRow(
		`SELECT COUNT(*),
		        COALESCE(SUM(CASE WHEN outcome = 'win' THEN 1 ELSE 0 END), 0),
		        COALESCE(MAX(score), 0),
		        COALESCE(MAX(max_tile), 0),
		        COALESCE(SUM(moves), 0)
		 FROM rounds
		 WHERE variant = ?`,
		variant,
	).Scan(&st.Rounds, &st.Wins, &st.BestScore, &st.BestTile, &st.TotalMoves)
	if err != nil {
		return Stats{}, fmt.Errorf("storage: cannot query stats: %w", err)
	}
	return st, nil
}

// ClearRounds deletes all rounds for the given variant.
func (s *Store) ClearRounds(variant string) error {
	_, err := s.db.Exec("DELETE FROM rounds WHERE variant = ?", variant)
	if err != nil {
		return fmt.Errorf("storage: cannot clear rounds: %w", err)
	}
	return nil
}
