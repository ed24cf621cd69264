package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	_ "modernc.org/sqlite"

	"github.com/cognicore/bagh/pkg/bagh/internalerr"
	"github.com/cognicore/bagh/pkg/bagh/series"
	"github.com/cognicore/bagh/pkg/bagh/store"
)

// timeLayout is fixed-width so created_at sorts lexically.
const timeLayout = "2006-01-02T15:04:05.000000000Z07:00"

// sqliteStore implements the Store interface using SQLite
type sqliteStore struct {
	db *sql.DB
}

// OpenSQLite opens a SQLite database with WAL mode enabled. Failures wrap
// internalerr.ErrStoreUnavailable.
func OpenSQLite(ctx context.Context, path string) (store.Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", internalerr.ErrStoreUnavailable, err)
	}

	// Enable WAL mode for better concurrency
	if _, err := db.ExecContext(ctx, "PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("%w: %v", internalerr.ErrStoreUnavailable, err)
	}

	if err := initSchema(ctx, db); err != nil {
		db.Close()
		return nil, fmt.Errorf("%w: init schema: %v", internalerr.ErrStoreUnavailable, err)
	}

	return &sqliteStore{db: db}, nil
}

// Close closes the database connection
func (s *sqliteStore) Close() error {
	return s.db.Close()
}

// initSchema creates tables if they don't exist
func initSchema(ctx context.Context, db *sql.DB) error {
	schema := `
CREATE TABLE IF NOT EXISTS runs (
	id TEXT PRIMARY KEY,
	key TEXT UNIQUE NOT NULL,
	language TEXT NOT NULL,
	docs INTEGER NOT NULL DEFAULT 0,
	labels TEXT NOT NULL,
	points TEXT NOT NULL,
	created_at TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_runs_created ON runs(created_at DESC);
`
	_, err := db.ExecContext(ctx, schema)
	return err
}

// PutRun inserts a run or replaces the run with the same key.
func (s *sqliteStore) PutRun(ctx context.Context, r store.Run) error {
	if r.Key == "" {
		return nil
	}
	if r.ID == "" {
		r.ID = store.NewRunID()
	}
	labels, err := json.Marshal(r.Series.Labels)
	if err != nil {
		return fmt.Errorf("encode labels: %w", err)
	}
	points, err := json.Marshal(r.Series.Points)
	if err != nil {
		return fmt.Errorf("encode points: %w", err)
	}

	_, err = s.db.ExecContext(ctx, `
INSERT INTO runs(id, key, language, docs, labels, points, created_at)
VALUES(?, ?, ?, ?, ?, ?, ?)
ON CONFLICT(key) DO UPDATE SET
	id=excluded.id,
	language=excluded.language,
	docs=excluded.docs,
	labels=excluded.labels,
	points=excluded.points,
	created_at=excluded.created_at;
`,
		r.ID,
		r.Key,
		r.Language,
		r.Docs,
		string(labels),
		string(points),
		r.CreatedAt.UTC().Format(timeLayout),
	)
	return err
}

// GetRun returns the run stored under key.
func (s *sqliteStore) GetRun(ctx context.Context, key string) (store.Run, bool, error) {
	row := s.db.QueryRowContext(ctx, `
SELECT id, key, language, docs, labels, points, created_at
FROM runs WHERE key = ?`, key)

	r, err := scanRun(row)
	if errors.Is(err, sql.ErrNoRows) {
		return store.Run{}, false, nil
	}
	if err != nil {
		return store.Run{}, false, err
	}
	return r, true, nil
}

// ListRuns returns up to limit runs, newest first. limit <= 0 returns all.
func (s *sqliteStore) ListRuns(ctx context.Context, limit int) ([]store.Run, error) {
	if limit <= 0 {
		limit = -1
	}
	rows, err := s.db.QueryContext(ctx, `
SELECT id, key, language, docs, labels, points, created_at
FROM runs ORDER BY created_at DESC, id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []store.Run
	for rows.Next() {
		r, err := scanRun(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

// DeleteRun removes the run stored under key.
func (s *sqliteStore) DeleteRun(ctx context.Context, key string) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM runs WHERE key = ?`, key)
	return err
}

type scanner interface {
	Scan(dest ...any) error
}

func scanRun(sc scanner) (store.Run, error) {
	var (
		r                  store.Run
		labels, points, at string
	)
	if err := sc.Scan(&r.ID, &r.Key, &r.Language, &r.Docs, &labels, &points, &at); err != nil {
		return store.Run{}, err
	}

	r.Series = series.Series{Labels: []string{}, Points: []series.Point{}}
	if err := json.Unmarshal([]byte(labels), &r.Series.Labels); err != nil {
		return store.Run{}, fmt.Errorf("decode labels for run %s: %w", r.ID, err)
	}
	if err := json.Unmarshal([]byte(points), &r.Series.Points); err != nil {
		return store.Run{}, fmt.Errorf("decode points for run %s: %w", r.ID, err)
	}
	created, err := time.Parse(timeLayout, at)
	if err != nil {
		return store.Run{}, fmt.Errorf("decode created_at for run %s: %w", r.ID, err)
	}
	r.CreatedAt = created
	return r, nil
}
