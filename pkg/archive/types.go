package archive

import (
	"context"
	"errors"
	"io"
	"time"
)

// Run statuses recorded by the analysis runner.
const (
	// StatusSuccess means both inputs were read and the analysis
	// completed.
	StatusSuccess = "success"

	// StatusDegraded means an input was unreadable and the analysis
	// completed on partial data.
	StatusDegraded = "degraded"

	// StatusFailed means the analysis did not produce its outputs.
	StatusFailed = "failed"
)

// ErrNotFound is returned when no archived run matches the requested ID.
var ErrNotFound = errors.New("run not found")

// Run summarizes a single analysis over one pair of input files.
// Runs are immutable once recorded.
type Run struct {
	// Identity
	ID string `json:"id"` // UUID v4

	// Timestamps
	StartedAt   time.Time `json:"started_at"`   // When the analysis began
	CompletedAt time.Time `json:"completed_at"` // When the analysis finished

	// Inputs
	ErrorFile    string `json:"error_file"`    // Diagnostic file path
	TopologyFile string `json:"topology_file"` // Topology file path

	// Counts
	TotalErrors     int `json:"total_errors"`     // Errors parsed from the diagnostic file
	ProcessedErrors int `json:"processed_errors"` // Errors that contributed dummy parameters
	AngleDummies    int `json:"angle_dummies"`    // Distinct dummy angle rows synthesized
	DihedralDummies int `json:"dihedral_dummies"` // Distinct dummy dihedral rows synthesized

	// Outcome
	Status string `json:"status"` // "success", "degraded", "failed"
}

// Duration returns the wall-clock duration of the run, or zero if
// either timestamp is unset.
func (r *Run) Duration() time.Duration {
	if r.StartedAt.IsZero() || r.CompletedAt.IsZero() {
		return 0
	}
	return r.CompletedAt.Sub(r.StartedAt)
}

// Filter narrows the runs returned by Storage.List.
type Filter struct {
	// Since restricts results to runs started at or after this time.
	Since *time.Time `json:"since,omitempty"`

	// Status restricts results to runs with this status.
	// Empty matches all statuses.
	Status string `json:"status,omitempty"`

	// Limit is the maximum number of runs to return. 0 means unlimited.
	Limit int `json:"limit,omitempty"`
}

// Storage defines the interface for archive storage backends.
// Implementations must be thread-safe and support concurrent access.
type Storage interface {
	// Store persists a run. Storing a run with an existing ID
	// overwrites the stored run.
	Store(ctx context.Context, run *Run) error

	// Get retrieves a run by ID.
	// Returns ErrNotFound if no run has the ID.
	Get(ctx context.Context, id string) (*Run, error)

	// List retrieves runs matching the filter, newest first.
	// Returns an empty slice if no runs match.
	List(ctx context.Context, filter *Filter) ([]*Run, error)

	// Delete removes a run by ID.
	// Returns ErrNotFound if no run has the ID.
	Delete(ctx context.Context, id string) error

	// DeleteOlderThan removes runs started before the cutoff.
	// Returns the number of runs deleted.
	// Used for retention policy enforcement.
	DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error)

	// Count returns the total number of archived runs.
	Count(ctx context.Context) (int64, error)

	// Close releases any resources held by the storage backend.
	Close() error
}

// Exporter defines the interface for writing runs in an output format.
type Exporter interface {
	// Export writes runs to the provided writer in the exporter's
	// format. Returns an error if the export fails.
	Export(ctx context.Context, runs []*Run, w io.Writer) error
}
