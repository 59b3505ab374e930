package archive

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
)

// stubStorage captures stored runs for recorder tests.
type stubStorage struct {
	stored   []*Run
	storeErr error
}

func (s *stubStorage) Store(ctx context.Context, run *Run) error {
	if s.storeErr != nil {
		return s.storeErr
	}
	s.stored = append(s.stored, run)
	return nil
}

func (s *stubStorage) Get(ctx context.Context, id string) (*Run, error) {
	for _, run := range s.stored {
		if run.ID == id {
			return run, nil
		}
	}
	return nil, ErrNotFound
}

func (s *stubStorage) List(ctx context.Context, filter *Filter) ([]*Run, error) {
	return s.stored, nil
}

func (s *stubStorage) Delete(ctx context.Context, id string) error { return nil }

func (s *stubStorage) DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	return 0, nil
}

func (s *stubStorage) Count(ctx context.Context) (int64, error) {
	return int64(len(s.stored)), nil
}

func (s *stubStorage) Close() error { return nil }

func TestRun_Duration(t *testing.T) {
	started := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		run  Run
		want time.Duration
	}{
		{
			name: "completed run",
			run: Run{
				StartedAt:   started,
				CompletedAt: started.Add(250 * time.Millisecond),
			},
			want: 250 * time.Millisecond,
		},
		{
			name: "missing completion time",
			run:  Run{StartedAt: started},
			want: 0,
		},
		{
			name: "empty run",
			run:  Run{},
			want: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.run.Duration(); got != tt.want {
				t.Errorf("Duration() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestRecorder_Begin(t *testing.T) {
	recorder := NewRecorder(&stubStorage{})

	before := time.Now()
	run := recorder.Begin("input/errors.txt", "input/topol.top")
	after := time.Now()

	if _, err := uuid.Parse(run.ID); err != nil {
		t.Errorf("Begin() ID = %q, not a valid UUID: %v", run.ID, err)
	}
	if run.StartedAt.Before(before) || run.StartedAt.After(after) {
		t.Errorf("Begin() StartedAt = %v, want between %v and %v", run.StartedAt, before, after)
	}
	if run.ErrorFile != "input/errors.txt" {
		t.Errorf("Begin() ErrorFile = %q, want %q", run.ErrorFile, "input/errors.txt")
	}
	if run.TopologyFile != "input/topol.top" {
		t.Errorf("Begin() TopologyFile = %q, want %q", run.TopologyFile, "input/topol.top")
	}
	if !run.CompletedAt.IsZero() {
		t.Errorf("Begin() CompletedAt = %v, want zero", run.CompletedAt)
	}
}

func TestRecorder_Begin_UniqueIDs(t *testing.T) {
	recorder := NewRecorder(&stubStorage{})

	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		run := recorder.Begin("a", "b")
		if seen[run.ID] {
			t.Fatalf("Begin() produced duplicate ID %q", run.ID)
		}
		seen[run.ID] = true
	}
}

func TestRecorder_Record(t *testing.T) {
	store := &stubStorage{}
	recorder := NewRecorder(store)
	ctx := context.Background()

	run := recorder.Begin("input/errors.txt", "input/topol.top")
	run.TotalErrors = 7
	run.ProcessedErrors = 5
	run.AngleDummies = 3
	run.DihedralDummies = 2
	run.Status = StatusSuccess

	if err := recorder.Record(ctx, run); err != nil {
		t.Fatalf("Record() failed: %v", err)
	}

	if len(store.stored) != 1 {
		t.Fatalf("expected 1 stored run, got %d", len(store.stored))
	}
	if store.stored[0].ID != run.ID {
		t.Errorf("stored run ID = %q, want %q", store.stored[0].ID, run.ID)
	}
	if run.CompletedAt.IsZero() {
		t.Error("Record() did not stamp CompletedAt")
	}
	if run.CompletedAt.Before(run.StartedAt) {
		t.Errorf("CompletedAt %v before StartedAt %v", run.CompletedAt, run.StartedAt)
	}
}

func TestRecorder_Record_KeepsExplicitCompletion(t *testing.T) {
	store := &stubStorage{}
	recorder := NewRecorder(store)

	completed := time.Date(2025, 6, 1, 12, 0, 1, 0, time.UTC)
	run := &Run{
		ID:          "explicit-completion",
		StartedAt:   completed.Add(-time.Second),
		CompletedAt: completed,
		Status:      StatusFailed,
	}

	if err := recorder.Record(context.Background(), run); err != nil {
		t.Fatalf("Record() failed: %v", err)
	}

	if !run.CompletedAt.Equal(completed) {
		t.Errorf("CompletedAt = %v, want %v", run.CompletedAt, completed)
	}
}

func TestRecorder_Record_StorageError(t *testing.T) {
	storeErr := NewStorageError("memory", "store", errors.New("disk full"))
	recorder := NewRecorder(&stubStorage{storeErr: storeErr})

	run := recorder.Begin("a", "b")
	err := recorder.Record(context.Background(), run)
	if err == nil {
		t.Fatal("Record() expected error, got nil")
	}

	var se *StorageError
	if !errors.As(err, &se) {
		t.Errorf("Record() error = %v, want *StorageError", err)
	}
}

func TestStorageError(t *testing.T) {
	cause := errors.New("database is locked")
	err := NewStorageError("sqlite", "store", cause)

	want := "archive storage error [backend=sqlite, operation=store]: database is locked"
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
	if !errors.Is(err, cause) {
		t.Error("errors.Is() did not match the cause")
	}
}

func TestExportError(t *testing.T) {
	cause := errors.New("broken pipe")
	err := NewExportError("csv", 42, cause)

	want := "archive export error [format=csv, run_count=42]: broken pipe"
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
	if !errors.Is(err, cause) {
		t.Error("errors.Is() did not match the cause")
	}
}

func TestRetentionError(t *testing.T) {
	cause := errors.New("delete failed")
	err := NewRetentionError(90, cause)

	want := "archive retention error [retention_days=90]: delete failed"
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
	if !errors.Is(err, cause) {
		t.Error("errors.Is() did not match the cause")
	}
}
