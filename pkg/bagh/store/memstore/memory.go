package memstore

import (
	"context"
	"sort"
	"sync"

	"github.com/cognicore/bagh/pkg/bagh/series"
	"github.com/cognicore/bagh/pkg/bagh/store"
)

// Store is an in-memory implementation of store.Store.
type Store struct {
	mu   sync.RWMutex
	runs map[string]store.Run // key → run
}

// New creates a new in-memory store.
func New() *Store {
	return &Store{runs: make(map[string]store.Run)}
}

// Close implements store.Store.
func (s *Store) Close() error { return nil }

// GetRun returns the cached run for key.
func (s *Store) GetRun(ctx context.Context, key string) (store.Run, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	r, ok := s.runs[key]
	if !ok {
		return store.Run{}, false, nil
	}
	return copyRun(r), true, nil
}

// PutRun inserts or replaces the run for r.Key.
func (s *Store) PutRun(ctx context.Context, r store.Run) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if r.Key == "" {
		return nil
	}
	s.runs[r.Key] = copyRun(r)
	return nil
}

// ListRuns returns up to limit runs, newest first. limit <= 0 returns all.
func (s *Store) ListRuns(ctx context.Context, limit int) ([]store.Run, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]store.Run, 0, len(s.runs))
	for _, r := range s.runs {
		out = append(out, copyRun(r))
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.After(out[j].CreatedAt)
		}
		return out[i].ID > out[j].ID
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

// DeleteRun removes the run for key, if any.
func (s *Store) DeleteRun(ctx context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.runs, key)
	return nil
}

func copyRun(r store.Run) store.Run {
	cp := r
	cp.Series = series.Series{
		Labels: append([]string{}, r.Series.Labels...),
		Points: make([]series.Point, len(r.Series.Points)),
	}
	for i, p := range r.Series.Points {
		counts := make(map[string]int, len(p.Counts))
		for k, v := range p.Counts {
			counts[k] = v
		}
		cp.Series.Points[i] = series.Point{Year: p.Year, Counts: counts}
	}
	return cp
}
