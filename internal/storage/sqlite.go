// Package storage provides SQLite-based persistence for finished runs and
// saved game states. Uses the pure-Go modernc.org/sqlite driver to avoid CGO
// dependencies.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// ErrNotFound is returned when a requested record does not exist.
var ErrNotFound = errors.New("storage: not found")

// Store manages the SQLite database connection.
type Store struct {
	db *sql.DB
}

// Run is the record of one played game.
type Run struct {
	ID         string
	Controller string
	Seed       int64
	Ticks      int
	Earned     float64 // all tips ever collected
	Tips       float64 // funds left at the end
	Floors     int
	Elevators  int
	CreatedAt  time.Time
}

// Snapshot is a saved game state.
type Snapshot struct {
	ID        int64
	RunID     string
	Tick      int
	State     string // snapshot JSON
	CreatedAt time.Time
}

// Stats contains aggregated statistics over all runs.
type Stats struct {
	RunsCount  int
	BestEarned float64
	AvgEarned  float64
	TotalTicks int64
	LastPlayed time.Time
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

	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

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

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS runs (
			id TEXT PRIMARY KEY,
			controller TEXT NOT NULL,
			seed INTEGER NOT NULL DEFAULT 0,
			ticks INTEGER NOT NULL DEFAULT 0,
			earned REAL NOT NULL DEFAULT 0,
			tips REAL NOT NULL DEFAULT 0,
			floors INTEGER NOT NULL,
			elevators INTEGER NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_runs_earned ON runs(earned DESC);

		CREATE TABLE IF NOT EXISTS snapshots (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			run_id TEXT NOT NULL,
			tick INTEGER NOT NULL,
			state TEXT NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_snapshots_run ON snapshots(run_id, tick DESC);
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

// SaveRun records a run. Saving the same ID again overwrites the record.
func (s *Store) SaveRun(run Run) error {
	_, err := s.db.Exec(
		`INSERT INTO runs (id, controller, seed, ticks, earned, tips, floors, elevators)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		 ON CONFLICT(id) DO UPDATE SET
		   ticks = excluded.ticks,
		   earned = excluded.earned,
		   tips = excluded.tips,
		   floors = excluded.floors,
		   elevators = excluded.elevators`,
		run.ID, run.Controller, run.Seed, run.Ticks, run.Earned, run.Tips, run.Floors, run.Elevators,
	)
	if err != nil {
		return fmt.Errorf("storage: cannot save run: %w", err)
	}
	return nil
}

const runColumns = `id, controller, seed, ticks, earned, tips, floors, elevators, created_at`

type scanner interface {
	Scan(dest ...any) error
}

func scanRun(row scanner) (Run, error) {
	var r Run
	var createdAt any
	err := row.Scan(&r.ID, &r.Controller, &r.Seed, &r.Ticks, &r.Earned, &r.Tips, &r.Floors, &r.Elevators, &createdAt)
	r.CreatedAt = parseTime(createdAt)
	return r, err
}

// TopRuns retrieves the N runs that earned the most.
func (s *Store) TopRuns(limit int) ([]Run, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT `+runColumns+`
		 FROM runs
		 ORDER BY earned DESC, ticks ASC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		r, err := scanRun(rows)
		if err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		runs = append(runs, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return runs, nil
}

// RunByID retrieves one run.
func (s *Store) RunByID(id string) (Run, error) {
	r, err := scanRun(s.db.QueryRow(`SELECT `+runColumns+` FROM runs WHERE id = ?`, id))
	if errors.Is(err, sql.ErrNoRows) {
		return Run{}, fmt.Errorf("%w: run %s", ErrNotFound, id)
	}
	if err != nil {
		return Run{}, fmt.Errorf("storage: cannot query run: %w", err)
	}
	return r, nil
}

// SaveSnapshot stores a game state of the given run.
// Returns the ID of the inserted record.
func (s *Store) SaveSnapshot(runID string, tick int, state string) (int64, error) {
	result, err := s.db.Exec(
		"INSERT INTO snapshots (run_id, tick, state) VALUES (?, ?, ?)",
		runID, tick, state,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save snapshot: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// LatestSnapshot returns the most recent saved state of a run.
func (s *Store) LatestSnapshot(runID string) (Snapshot, error) {
	var snap Snapshot
	var createdAt any

	err := s.db.QueryRow(
		`SELECT id, run_id, tick, state, created_at
		 FROM snapshots
		 WHERE run_id = ?
		 ORDER BY tick DESC, id DESC
		 LIMIT 1`,
		runID,
	).Scan(&snap.ID, &snap.RunID, &snap.Tick, &snap.State, &createdAt)

	if errors.Is(err, sql.ErrNoRows) {
		return Snapshot{}, fmt.Errorf("%w: no snapshot for run %s", ErrNotFound, runID)
	}
	if err != nil {
		return Snapshot{}, fmt.Errorf("storage: cannot query snapshot: %w", err)
	}

	snap.CreatedAt = parseTime(createdAt)
	return snap, nil
}

// ClearRuns deletes every run and saved state.
func (s *Store) ClearRuns() error {
	if _, err := s.db.Exec("DELETE FROM snapshots; DELETE FROM runs;"); err != nil {
		return fmt.Errorf("storage: cannot clear runs: %w", err)
	}
	return nil
}

// GetStats retrieves aggregated statistics over all runs.
func (s *Store) GetStats() (Stats, error) {
	var stats Stats
	var lastPlayed any

	err := s.db.QueryRow(
		`SELECT COUNT(*), COALESCE(MAX(earned), 0), COALESCE(AVG(earned), 0),
		        COALESCE(SUM(ticks), 0), MAX(created_at)
		 FROM runs`,
	).Scan(&stats.RunsCount, &stats.BestEarned, &stats.AvgEarned, &stats.TotalTicks, &lastPlayed)
	if err != nil {
		return Stats{}, fmt.Errorf("storage: cannot get stats: %w", err)
	}

	stats.LastPlayed = parseTime(lastPlayed)
	return stats, nil
}

// parseTime handles both time.Time and string datetimes.
func parseTime(v any) time.Time {
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
