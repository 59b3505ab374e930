package archive

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
)

// Recorder writes completed analysis runs into the archive.
type Recorder struct {
	storage Storage
	logger  *slog.Logger
}

// NewRecorder creates a recorder backed by the given storage.
func NewRecorder(storage Storage) *Recorder {
	return &Recorder{
		storage: storage,
		logger:  slog.Default().With("component", "archive"),
	}
}

// Begin opens a run for the given input files. The run receives a
// fresh UUID and the current time as its start timestamp; the caller
// fills in counts and status as the analysis progresses.
func (r *Recorder) Begin(errorFile, topologyFile string) *Run {
	return &Run{
		ID:           uuid.New().String(),
		StartedAt:    time.Now(),
		ErrorFile:    errorFile,
		TopologyFile: topologyFile,
	}
}

// Record stamps the completion time if unset and persists the run.
func (r *Recorder) Record(ctx context.Context, run *Run) error {
	if run.CompletedAt.IsZero() {
		run.CompletedAt = time.Now()
	}

	if err := r.storage.Store(ctx, run); err != nil {
		r.logger.Error("failed to archive run",
			"run_id", run.ID,
			"error", err,
		)
		return err
	}

	r.logger.Debug("run archived",
		"run_id", run.ID,
		"status", run.Status,
		"total_errors", run.TotalErrors,
		"processed_errors", run.ProcessedErrors,
		"angle_dummies", run.AngleDummies,
		"dihedral_dummies", run.DihedralDummies,
		"duration_ms", run.Duration().Milliseconds(),
	)

	return nil
}
