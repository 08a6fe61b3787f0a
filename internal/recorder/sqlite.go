package recorder

import (
	"database/sql"
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sync"

	_ "modernc.org/sqlite"

	"BlackjackOdds/internal/model"
)

// SQLiteRecorder persists sweep history to a SQLite database.
type SQLiteRecorder struct {
	db *sql.DB
	mu sync.Mutex
}

// NewSQLiteRecorder opens (or creates) the SQLite database and runs migrations.
func NewSQLiteRecorder(dbPath string) (*SQLiteRecorder, error) {
	if dir := filepath.Dir(dbPath); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("create db dir: %w", err)
		}
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	// WAL mode lets readers query history while a sweep is being written.
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("set WAL mode: %w", err)
	}

	r := &SQLiteRecorder{db: db}
	if err := r.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	log.Printf("[INFO] sqlite recorder opened: %s", dbPath)
	return r, nil
}

func (r *SQLiteRecorder) migrate() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS sweep_runs (
			id          TEXT PRIMARY KEY,
			timestamp   INTEGER NOT NULL,
			duration_ms INTEGER,
			min_hand    INTEGER,
			max_hand    INTEGER,
			cells       INTEGER,
			csv_path    TEXT,
			csv_bytes   INTEGER
		)`,
		`CREATE INDEX IF NOT EXISTS idx_sweep_ts ON sweep_runs(timestamp)`,

		`CREATE TABLE IF NOT EXISTS option_rows (
			run_id        TEXT NOT NULL REFERENCES sweep_runs(id),
			hand_score    INTEGER NOT NULL,
			dealer_upcard INTEGER NOT NULL,
			stand_win     REAL,
			stand_loss    REAL,
			hit_win       REAL,
			hit_loss      REAL,
			opt_win       REAL,
			opt_loss      REAL,
			best_action   TEXT,
			PRIMARY KEY (run_id, hand_score, dealer_upcard)
		)`,
	}

	for _, s := range stmts {
		if _, err := r.db.Exec(s); err != nil {
			return fmt.Errorf("exec %q: %w", s[:40], err)
		}
	}
	return nil
}

// RecordSweep stores the run and every cell of its table in one transaction.
func (r *SQLiteRecorder) RecordSweep(run *model.SweepRun) error {
	if run.Table == nil {
		return errors.New("sweep run has no table")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	tx, err := r.db.Begin()
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	t := run.Table
	if _, err := tx.Exec(`INSERT INTO sweep_runs
		(id, timestamp, duration_ms, min_hand, max_hand, cells, csv_path, csv_bytes)
		VALUES (?,?,?,?,?,?,?,?)`,
		run.ID, run.StartedAt.Unix(), run.Duration.Milliseconds(),
		t.MinHand, t.MaxHand, len(t.Rows), run.CSVPath, run.CSVBytes,
	); err != nil {
		return fmt.Errorf("insert sweep run: %w", err)
	}

	stmt, err := tx.Prepare(`INSERT INTO option_rows
		(run_id, hand_score, dealer_upcard, stand_win, stand_loss, hit_win, hit_loss, opt_win, opt_loss, best_action)
		VALUES (?,?,?,?,?,?,?,?,?,?)`)
	if err != nil {
		return fmt.Errorf("prepare option rows: %w", err)
	}
	defer stmt.Close()

	for _, o := range t.Rows {
		if _, err := stmt.Exec(run.ID, o.HandScore, o.DealerUpcard,
			o.StandWin, o.StandLoss, o.HitWin, o.HitLoss, o.OptWin, o.OptLoss,
			string(o.BestAction),
		); err != nil {
			return fmt.Errorf("insert option row %d/%d: %w", o.HandScore, o.DealerUpcard, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}

func (r *SQLiteRecorder) Close() error {
	log.Println("[INFO] closing sqlite recorder")
	return r.db.Close()
}
