// Package store persists sieve checkpoint metadata -- a segment boundary
// and a prime count per run ID. cmd/primesieve saves a checkpoint only
// when a run completes (with the run's stop as the boundary) and uses it
// to skip a later run whose checkpoint already reaches its stop; a run
// interrupted part-way is not resumed. It never persists sieve bitmaps: spec.md's non-goals
// explicitly exclude "persistent/serialized sieve state", which refers to
// the bit layout itself, not bookkeeping about where the run left off.
//
// Grounded on huge_mersenne/db.go's createDBAndCreateTableIfNotExist /
// insertIntoDB / findNextWork pattern, repurposed from Mersenne-candidate
// bookkeeping to sieve-segment checkpoints.
package store

import (
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"
)

// Checkpoint records how far a sieve run has progressed.
type Checkpoint struct {
	SegmentLow uint64
	PrimeCount uint64
}

// Store wraps a SQLite-backed checkpoint table.
type Store struct {
	db *sql.DB
}

// Open opens (creating if necessary) the checkpoint database at path.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("store: failed to open database: %w", err)
	}

	if _, err := db.Exec(`CREATE TABLE IF NOT EXISTS checkpoints (
		run_id TEXT PRIMARY KEY,
		segment_low INTEGER NOT NULL,
		prime_count INTEGER NOT NULL
	)`); err != nil {
		db.Close()
		return nil, fmt.Errorf("store: failed to create checkpoints table: %w", err)
	}

	if _, err := db.Exec(`PRAGMA journal_mode=WAL`); err != nil {
		db.Close()
		return nil, fmt.Errorf("store: failed to set journal mode: %w", err)
	}

	return &Store{db: db}, nil
}

// Close releases the underlying database handle.
func (s *Store) Close() error {
	return s.db.Close()
}

// Save upserts the checkpoint for runID.
func (s *Store) Save(runID string, cp Checkpoint) error {
	_, err := s.db.Exec(`INSERT INTO checkpoints (run_id, segment_low, prime_count)
		VALUES (?, ?, ?)
		ON CONFLICT(run_id) DO UPDATE SET segment_low = excluded.segment_low, prime_count = excluded.prime_count`,
		runID, cp.SegmentLow, cp.PrimeCount)
	if err != nil {
		return fmt.Errorf("store: failed to save checkpoint for %q: %w", runID, err)
	}
	return nil
}

// Load returns the saved checkpoint for runID, and false if none exists.
func (s *Store) Load(runID string) (Checkpoint, bool, error) {
	var cp Checkpoint
	row := s.db.QueryRow(`SELECT segment_low, prime_count FROM checkpoints WHERE run_id = ?`, runID)
	err := row.Scan(&cp.SegmentLow, &cp.PrimeCount)
	if err == sql.ErrNoRows {
		return Checkpoint{}, false, nil
	}
	if err != nil {
		return Checkpoint{}, false, fmt.Errorf("store: failed to load checkpoint for %q: %w", runID, err)
	}
	return cp, true, nil
}
