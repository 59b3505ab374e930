package retention

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"topofix-hq/topofix/pkg/archive"
	"topofix-hq/topofix/pkg/archive/storage"
)

// failingStorage fails DeleteOlderThan for error path tests.
type failingStorage struct {
	*storage.MemoryStorage
	deleteErr error
}

func (s *failingStorage) DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	return 0, s.deleteErr
}

// storeRuns seeds the storage with runs started at the given ages.
func storeRuns(t *testing.T, store archive.Storage, ages map[string]time.Time) {
	t.Helper()

	for id, started := range ages {
		run := &archive.Run{
			ID:           id,
			StartedAt:    started,
			CompletedAt:  started.Add(time.Second),
			ErrorFile:    "input/errors.txt",
			TopologyFile: "input/topol.top",
			Status:       archive.StatusSuccess,
		}
		if err := store.Store(context.Background(), run); err != nil {
			t.Fatalf("Store() failed: %v", err)
		}
	}
}

func TestPruner_Prune(t *testing.T) {
	store := storage.NewMemoryStorage()
	pruner := NewPruner(store, &Config{RetentionDays: 7})

	ctx := context.Background()
	now := time.Now()

	storeRuns(t, store, map[string]time.Time{
		"old-1":    now.AddDate(0, 0, -10),
		"old-2":    now.AddDate(0, 0, -8),
		"recent-1": now.AddDate(0, 0, -5),
		"recent-2": now.AddDate(0, 0, -3),
	})

	deleted, err := pruner.Prune(ctx)
	if err != nil {
		t.Fatalf("Prune() failed: %v", err)
	}
	if deleted != 2 {
		t.Errorf("Prune() = %d, want 2", deleted)
	}

	count, err := store.Count(ctx)
	if err != nil {
		t.Fatalf("Count() failed: %v", err)
	}
	if count != 2 {
		t.Errorf("Count() = %d after pruning, want 2", count)
	}

	for _, id := range []string{"old-1", "old-2"} {
		if _, err := store.Get(ctx, id); !errors.Is(err, archive.ErrNotFound) {
			t.Errorf("run %s should have been pruned, Get() error = %v", id, err)
		}
	}
}

func TestPruner_Prune_RetentionDisabled(t *testing.T) {
	store := storage.NewMemoryStorage()
	pruner := NewPruner(store, &Config{RetentionDays: 0})

	ctx := context.Background()

	storeRuns(t, store, map[string]time.Time{
		"very-old": time.Now().AddDate(0, 0, -1000),
	})

	deleted, err := pruner.Prune(ctx)
	if err != nil {
		t.Fatalf("Prune() failed: %v", err)
	}
	if deleted != 0 {
		t.Errorf("Prune() = %d with retention disabled, want 0", deleted)
	}

	count, _ := store.Count(ctx)
	if count != 1 {
		t.Errorf("Count() = %d, want 1", count)
	}
}

func TestPruner_PruneBefore(t *testing.T) {
	store := storage.NewMemoryStorage()
	pruner := NewPruner(store, DefaultConfig())

	ctx := context.Background()
	now := time.Now()

	storeRuns(t, store, map[string]time.Time{
		"month-old": now.AddDate(0, -1, 0),
		"week-old":  now.AddDate(0, 0, -7),
		"fresh":     now,
	})

	deleted, err := pruner.PruneBefore(ctx, now.AddDate(0, 0, -14))
	if err != nil {
		t.Fatalf("PruneBefore() failed: %v", err)
	}
	if deleted != 1 {
		t.Errorf("PruneBefore() = %d, want 1", deleted)
	}

	if _, err := store.Get(ctx, "month-old"); !errors.Is(err, archive.ErrNotFound) {
		t.Errorf("month-old run should be gone, Get() error = %v", err)
	}
	if _, err := store.Get(ctx, "week-old"); err != nil {
		t.Errorf("week-old run should survive: %v", err)
	}
}

func TestPruner_Prune_StorageError(t *testing.T) {
	store := &failingStorage{
		MemoryStorage: storage.NewMemoryStorage(),
		deleteErr:     fmt.Errorf("database is locked"),
	}
	pruner := NewPruner(store, &Config{RetentionDays: 30})

	_, err := pruner.Prune(context.Background())
	if err == nil {
		t.Fatal("Prune() expected error, got nil")
	}

	var retentionErr *archive.RetentionError
	if !errors.As(err, &retentionErr) {
		t.Errorf("Prune() error = %v, want *archive.RetentionError", err)
	}
	if retentionErr.RetentionDays != 30 {
		t.Errorf("RetentionDays = %d, want 30", retentionErr.RetentionDays)
	}
}

func TestPruner_NilConfig(t *testing.T) {
	pruner := NewPruner(storage.NewMemoryStorage(), nil)

	if pruner.config.RetentionDays != 90 {
		t.Errorf("default RetentionDays = %d, want 90", pruner.config.RetentionDays)
	}
	if pruner.config.PruneSchedule != "0 3 * * *" {
		t.Errorf("default PruneSchedule = %q, want %q", pruner.config.PruneSchedule, "0 3 * * *")
	}
}
