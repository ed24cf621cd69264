package memstore

import (
	"context"
	"testing"
	"time"

	"github.com/cognicore/bagh/pkg/bagh/series"
	"github.com/cognicore/bagh/pkg/bagh/store"
)

func sampleRun(key string, created time.Time) store.Run {
	c := series.NewCounts([]string{"Design", "Botany"})
	c.Add([]int{1571}, []string{"Botany"})
	return store.Run{
		ID:        store.NewRunID(),
		Key:       key,
		Language:  "en",
		Docs:      1,
		Series:    series.Build(c),
		CreatedAt: created,
	}
}

func TestRun_PutAndGet(t *testing.T) {
	s := New()
	ctx := context.Background()

	if _, ok, err := s.GetRun(ctx, "k1"); err != nil || ok {
		t.Fatalf("expected miss on empty store, got ok=%v err=%v", ok, err)
	}

	run := sampleRun("k1", time.Now())
	if err := s.PutRun(ctx, run); err != nil {
		t.Fatalf("PutRun: %v", err)
	}

	got, ok, err := s.GetRun(ctx, "k1")
	if err != nil || !ok {
		t.Fatalf("expected hit, got ok=%v err=%v", ok, err)
	}
	if got.ID != run.ID || got.Series.Len() != 1 {
		t.Errorf("unexpected run %+v", got)
	}
}

func TestRun_GetReturnsCopy(t *testing.T) {
	s := New()
	ctx := context.Background()
	s.PutRun(ctx, sampleRun("k1", time.Now()))

	got, _, _ := s.GetRun(ctx, "k1")
	got.Series.Points[0].Counts["Botany"] = 99

	again, _, _ := s.GetRun(ctx, "k1")
	if again.Series.Points[0].Counts["Botany"] != 1 {
		t.Error("mutating a returned run must not affect the store")
	}
}

func TestRun_EmptyKeyIgnored(t *testing.T) {
	s := New()
	ctx := context.Background()
	s.PutRun(ctx, sampleRun("", time.Now()))

	runs, _ := s.ListRuns(ctx, 0)
	if len(runs) != 0 {
		t.Errorf("expected no runs, got %d", len(runs))
	}
}

func TestRun_ListNewestFirst(t *testing.T) {
	s := New()
	ctx := context.Background()
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	s.PutRun(ctx, sampleRun("old", base))
	s.PutRun(ctx, sampleRun("new", base.Add(time.Hour)))
	s.PutRun(ctx, sampleRun("mid", base.Add(time.Minute)))

	runs, err := s.ListRuns(ctx, 2)
	if err != nil {
		t.Fatal(err)
	}
	if len(runs) != 2 {
		t.Fatalf("expected 2 runs, got %d", len(runs))
	}
	if runs[0].Key != "new" || runs[1].Key != "mid" {
		t.Errorf("unexpected order: %v", []string{runs[0].Key, runs[1].Key})
	}
}

func TestRun_Delete(t *testing.T) {
	s := New()
	ctx := context.Background()
	s.PutRun(ctx, sampleRun("k1", time.Now()))

	if err := s.DeleteRun(ctx, "k1"); err != nil {
		t.Fatal(err)
	}
	if _, ok, _ := s.GetRun(ctx, "k1"); ok {
		t.Error("run should be gone after delete")
	}
}
