package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"
)

const schema = `
CREATE TABLE IF NOT EXISTS runs (
	run_id          TEXT PRIMARY KEY,
	created_at      TEXT NOT NULL,
	seed            INTEGER NOT NULL,
	strategy        TEXT NOT NULL,
	pool            TEXT NOT NULL,
	config_json     TEXT NOT NULL,
	generations     INTEGER NOT NULL,
	races_simulated INTEGER NOT NULL,
	best_fitness    REAL NOT NULL,
	best_compact    TEXT NOT NULL,
	best_tree       TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS fitness_history (
	run_id       TEXT NOT NULL,
	generation   INTEGER NOT NULL,
	best_fitness REAL NOT NULL,
	PRIMARY KEY (run_id, generation),
	FOREIGN KEY (run_id) REFERENCES runs(run_id) ON DELETE CASCADE
);
`

// timeLayout is fixed width so created_at sorts as text.
const timeLayout = "2006-01-02T15:04:05.000000000Z07:00"

// Run is the summary of one finished evolution run.
type Run struct {
	ID             string
	CreatedAt      time.Time
	Seed           int64
	Strategy       string
	Pool           string
	Config         string // JSON
	Generations    int
	RacesSimulated int64
	BestFitness    float64
	BestCompact    string
	BestTree       string
	History        []float64
}

// SQLiteStore keeps run summaries in a SQLite database.
type SQLiteStore struct {
	db *sql.DB
}

// Open opens the database at path and creates the tables if needed.
func Open(ctx context.Context, path string) (*SQLiteStore, error) {
	if path == "" {
		return nil, errors.New("sqlite path is required")
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping db: %w", err)
	}
	for _, pragma := range []string{"PRAGMA journal_mode=WAL", "PRAGMA foreign_keys=ON"} {
		if _, err := db.ExecContext(ctx, pragma); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("pragma: %w", err)
		}
	}
	if _, err := db.ExecContext(ctx, schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return &SQLiteStore{db: db}, nil
}

// Close closes the underlying database connection.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// SaveRun writes run and its fitness history in one transaction and returns
// the run ID, generating one when run.ID is empty.
func (s *SQLiteStore) SaveRun(ctx context.Context, run Run) (string, error) {
	if run.ID == "" {
		run.ID = uuid.New().String()
	}
	if run.CreatedAt.IsZero() {
		run.CreatedAt = time.Now().UTC()
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return "", fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx,
		`INSERT INTO runs (run_id, created_at, seed, strategy, pool, config_json, generations,
		                   races_simulated, best_fitness, best_compact, best_tree)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		run.ID, run.CreatedAt.UTC().Format(timeLayout), run.Seed, run.Strategy, run.Pool,
		run.Config, run.Generations, run.RacesSimulated, run.BestFitness, run.BestCompact, run.BestTree,
	)
	if err != nil {
		return "", fmt.Errorf("insert run: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx,
		`INSERT INTO fitness_history (run_id, generation, best_fitness) VALUES (?, ?, ?)`)
	if err != nil {
		return "", fmt.Errorf("prepare history: %w", err)
	}
	defer stmt.Close()
	for gen, f := range run.History {
		if _, err := stmt.ExecContext(ctx, run.ID, gen, f); err != nil {
			return "", fmt.Errorf("insert history gen %d: %w", gen, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return "", fmt.Errorf("commit: %w", err)
	}
	return run.ID, nil
}

const runColumns = `run_id, created_at, seed, strategy, pool, config_json, generations,
	races_simulated, best_fitness, best_compact, best_tree`

type scanner interface {
	Scan(dest ...any) error
}

func scanRun(row scanner) (Run, error) {
	var r Run
	var created string
	err := row.Scan(&r.ID, &created, &r.Seed, &r.Strategy, &r.Pool, &r.Config, &r.Generations,
		&r.RacesSimulated, &r.BestFitness, &r.BestCompact, &r.BestTree)
	if err != nil {
		return Run{}, err
	}
	r.CreatedAt, err = time.Parse(timeLayout, created)
	if err != nil {
		return Run{}, fmt.Errorf("parse created_at: %w", err)
	}
	return r, nil
}

// GetRun loads a run and its history. The bool is false when no run has that ID.
func (s *SQLiteStore) GetRun(ctx context.Context, id string) (Run, bool, error) {
	row := s.db.QueryRowContext(ctx, `SELECT `+runColumns+` FROM runs WHERE run_id = ?`, id)
	r, err := scanRun(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Run{}, false, nil
		}
		return Run{}, false, fmt.Errorf("get run %s: %w", id, err)
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT best_fitness FROM fitness_history WHERE run_id = ? ORDER BY generation`, id)
	if err != nil {
		return Run{}, false, fmt.Errorf("query history: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var f float64
		if err := rows.Scan(&f); err != nil {
			return Run{}, false, fmt.Errorf("scan history: %w", err)
		}
		r.History = append(r.History, f)
	}
	if err := rows.Err(); err != nil {
		return Run{}, false, fmt.Errorf("history rows: %w", err)
	}
	return r, true, nil
}

// ListRuns returns up to limit runs, newest first, without their history.
// A non-positive limit returns every run.
func (s *SQLiteStore) ListRuns(ctx context.Context, limit int) ([]Run, error) {
	if limit <= 0 {
		limit = -1
	}
	rows, err := s.db.QueryContext(ctx,
		`SELECT `+runColumns+` FROM runs ORDER BY created_at DESC, run_id LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("list runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		r, err := scanRun(rows)
		if err != nil {
			return nil, fmt.Errorf("scan run: %w", err)
		}
		runs = append(runs, r)
	}
	return runs, rows.Err()
}
