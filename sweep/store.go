// store.go
// SQLite-backed accumulation of sweep results, so repeated sweeps over
// days of tuning can be queried together instead of living in loose
// CSV files.

package sweep

import (
	"context"
	"database/sql"
	"errors"
	"sync"
	"time"

	_ "modernc.org/sqlite"
)

// SQLiteStore appends sweep results to a single-file database.
type SQLiteStore struct {
	path string

	mu sync.Mutex
	db *sql.DB
}

func NewSQLiteStore(path string) *SQLiteStore {
	return &SQLiteStore{path: path}
}

// Init opens the database and creates the results table when missing.
func (s *SQLiteStore) Init(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.path == "" {
		return errors.New("sweep: sqlite path is required")
	}
	if s.db != nil {
		return nil
	}

	db, err := sql.Open("sqlite", s.path)
	if err != nil {
		return err
	}
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return err
	}

	_, err = db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS sweep_results (
			id          INTEGER PRIMARY KEY AUTOINCREMENT,
			created_at  TEXT NOT NULL,
			sequence    TEXT NOT NULL,
			param       TEXT NOT NULL,
			value       REAL NOT NULL,
			final_rg    REAL,
			steps       INTEGER,
			status      TEXT NOT NULL
		)
	`)
	if err != nil {
		_ = db.Close()
		return err
	}

	s.db = db
	return nil
}

// SaveSweep appends every successful point of one sweep; failed points
// are recorded with their error string as status so gaps are visible.
func (s *SQLiteStore) SaveSweep(ctx context.Context, sequence, param string, results []RunResult) error {
	s.mu.Lock()
	db := s.db
	s.mu.Unlock()
	if db == nil {
		return errors.New("sweep: store not initialized")
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	now := time.Now().UTC().Format(time.RFC3339)
	for _, r := range results {
		status := string(r.Status)
		var finalRg, steps any
		if r.Err != nil {
			status = "error: " + r.Err.Error()
		} else {
			finalRg = r.FinalRg
			steps = r.Steps
		}
		_, err := tx.ExecContext(ctx, `
			INSERT INTO sweep_results (created_at, sequence, param, value, final_rg, steps, status)
			VALUES (?, ?, ?, ?, ?, ?, ?)
		`, now, sequence, param, r.Value, finalRg, steps, status)
		if err != nil {
			return err
		}
	}
	return tx.Commit()
}

// Close releases the database handle.
func (s *SQLiteStore) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.db == nil {
		return nil
	}
	err := s.db.Close()
	s.db = nil
	return err
}
