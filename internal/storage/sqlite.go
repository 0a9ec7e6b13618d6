// Package storage provides SQLite-based persistence for game results.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// Store manages the SQLite database connection for result persistence.
type Store struct {
	db *sql.DB
}

// RunEntry represents a single recorded game.
type RunEntry struct {
	ID        int64
	Agent     string
	Size      int
	Mode      string
	Score     int
	MaxTile   int
	Moves     int
	Won       bool
	Duration  time.Duration
	CreatedAt time.Time
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	// Expand ~ to home directory
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	// Create parent directories
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	// Open database
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

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

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS runs (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			agent TEXT NOT NULL,
			board_size INTEGER NOT NULL,
			mode TEXT NOT NULL,
			score INTEGER NOT NULL,
			max_tile INTEGER NOT NULL,
			moves INTEGER NOT NULL,
			won INTEGER NOT NULL DEFAULT 0,
			duration_ms INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_runs_agent ON runs(agent);
		CREATE INDEX IF NOT EXISTS idx_runs_best ON runs(agent, score DESC);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// SaveRun records a finished game.
// Returns the ID of the inserted record.
func (s *Store) SaveRun(entry RunEntry) (int64, error) {
	result, err := s.db.Exec(
		`INSERT INTO runs (agent, board_size, mode, score, max_tile, moves, won, duration_ms)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		entry.Agent,
		entry.Size,
		entry.Mode,
		entry.Score,
		entry.MaxTile,
		entry.Moves,
		entry.Won,
		entry.Duration.Milliseconds(),
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save run: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// RecentRuns retrieves the most recently recorded games, newest first.
func (s *Store) RecentRuns(limit int) ([]RunEntry, error) {
	if limit <= 0 {
		limit = 20
	}

	return s.queryRuns(
		`SELECT id, agent, board_size, mode, score, max_tile, moves, won, duration_ms, created_at
		 FROM runs
		 ORDER BY created_at DESC, id DESC
		 LIMIT ?`,
		limit,
	)
}

// BestRuns retrieves the top N games for the given agent.
// Results are ordered by score descending.
func (s *Store) BestRuns(agent string, limit int) ([]RunEntry, error) {
	if limit <= 0 {
		limit = 10
	}

	return s.queryRuns(
		`SELECT id, agent, board_size, mode, score, max_tile, moves, won, duration_ms, created_at
		 FROM runs
		 WHERE agent = ?
		 ORDER BY score DESC
		 LIMIT ?`,
		agent, limit,
	)
}

// queryRuns runs a SELECT over the runs table and scans the rows.
func (s *Store) queryRuns(query string, args ...any) ([]RunEntry, error) {
	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query runs: %w", err)
	}
	defer rows.Close()

	var entries []RunEntry
	for rows.Next() {
		var e RunEntry
		var durationMS int64
		var createdAt any
		if err := rows.Scan(&e.ID, &e.Agent, &e.Size, &e.Mode, &e.Score,
			&e.MaxTile, &e.Moves, &e.Won, &durationMS, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}

		e.Duration = time.Duration(durationMS) * time.Millisecond
		e.CreatedAt = parseTimestamp(createdAt)
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return entries, nil
}

// parseTimestamp handles the driver returning either time.Time or string.
func parseTimestamp(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", t); err == nil {
			return parsed
		}
	}
	return time.Time{}
}

// HighScore returns the highest score recorded for the given agent.
// Returns 0 if no runs exist.
func (s *Store) HighScore(agent string) (int, error) {
	var score sql.NullInt64
	err := s.db.QueryRow(
		"SELECT MAX(score) FROM runs WHERE agent = ?",
		agent,
	).Scan(&score)

	if err != nil {
		return 0, fmt.Errorf("storage: cannot query high score: %w", err)
	}

	if !score.Valid {
		return 0, nil
	}

	return int(score.Int64), nil
}

// ClearRuns deletes all recorded games for the given agent.
func (s *Store) ClearRuns(agent string) error {
	_, err := s.db.Exec("DELETE FROM runs WHERE agent = ?", agent)
	if err != nil {
		return fmt.Errorf("storage: cannot clear runs: %w", err)
	}
	return nil
}

// AgentStats contains aggregated statistics for one agent.
type AgentStats struct {
	Agent      string
	GamesCount int
	HighScore  int
	AvgScore   float64
	AvgMoves   float64
	BestTile   int
	Wins       int
	LastPlayed time.Time
}

// GetAgentStats retrieves aggregated statistics for a specific agent.
func (s *Store) GetAgentStats(agent string) (*AgentStats, error) {
	stats := &AgentStats{Agent: agent}

	err := s.db.QueryRow(
		`SELECT COUNT(*), COALESCE(MAX(score), 0), COALESCE(AVG(score), 0),
		        COALESCE(AVG(moves), 0), COALESCE(MAX(max_tile), 0), COALESCE(SUM(won), 0)
		 FROM runs WHERE agent = ?`,
		agent,
	).Scan(&stats.GamesCount, &stats.HighScore, &stats.AvgScore,
		&stats.AvgMoves, &stats.BestTile, &stats.Wins)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get agent stats: %w", err)
	}

	// Get last played
	var lastPlayed any
	err = s.db.QueryRow(
		`SELECT created_at FROM runs WHERE agent = ? ORDER BY created_at DESC LIMIT 1`,
		agent,
	).Scan(&lastPlayed)
	if err != nil && err != sql.ErrNoRows {
		return nil, fmt.Errorf("storage: cannot get last played: %w", err)
	}
	if err == nil {
		stats.LastPlayed = parseTimestamp(lastPlayed)
	}

	return stats, nil
}

// GetAllAgentStats retrieves statistics for every agent that has runs.
func (s *Store) GetAllAgentStats() (map[string]*AgentStats, error) {
	rows, err := s.db.Query(
		`SELECT agent, COUNT(*), MAX(score), AVG(score), AVG(moves), MAX(max_tile), SUM(won), MAX(created_at)
		 FROM runs
		 GROUP BY agent`,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get all agent stats: %w", err)
	}
	defer rows.Close()

	stats := make(map[string]*AgentStats)
	for rows.Next() {
		var a AgentStats
		var lastPlayed any
		if err := rows.Scan(&a.Agent, &a.GamesCount, &a.HighScore, &a.AvgScore,
			&a.AvgMoves, &a.BestTile, &a.Wins, &lastPlayed); err != nil {
			return nil, fmt.Errorf("storage: cannot scan stats row: %w", err)
		}

		a.LastPlayed = parseTimestamp(lastPlayed)
		stats[a.Agent] = &a
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return stats, nil
}
