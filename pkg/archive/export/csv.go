package export

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"time"

	"topofix-hq/topofix/pkg/archive"
)

// CSVExporter exports runs to CSV format.
type CSVExporter struct {
	// IncludeHeader includes a header row with column names.
	IncludeHeader bool
}

// NewCSVExporter creates a new CSV exporter.
func NewCSVExporter(includeHeader bool) *CSVExporter {
	return &CSVExporter{
		IncludeHeader: includeHeader,
	}
}

// Export writes runs to the provided writer in CSV format, one row per
// run. Rows are written as they are produced and flushed periodically,
// so large exports never hold the whole output in memory.
func (e *CSVExporter) Export(ctx context.Context, runs []*archive.Run, w io.Writer) error {
	writer := csv.NewWriter(w)

	// Write header row if configured
	if e.IncludeHeader {
		if err := writer.Write(headerRow()); err != nil {
			return archive.NewExportError("csv", len(runs), err)
		}
	}

	// Write data rows
	for i, run := range runs {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		if err := writer.Write(runToRow(run)); err != nil {
			return archive.NewExportError("csv", len(runs), err)
		}

		// Flush periodically (every 100 runs)
		if (i+1)%100 == 0 {
			writer.Flush()
			if err := writer.Error(); err != nil {
				return archive.NewExportError("csv", len(runs), err)
			}
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return archive.NewExportError("csv", len(runs), err)
	}

	return nil
}

// headerRow returns the CSV header row.
func headerRow() []string {
	return []string{
		"id",
		"started_at", "completed_at", "duration_ms",
		"error_file", "topology_file",
		"total_errors", "processed_errors",
		"angle_dummies", "dihedral_dummies",
		"status",
	}
}

// runToRow converts a run to a CSV row.
func runToRow(run *archive.Run) []string {
	formatTime := func(t time.Time) string {
		if t.IsZero() {
			return ""
		}
		return t.Format(time.RFC3339)
	}

	return []string{
		run.ID,
		formatTime(run.StartedAt),
		formatTime(run.CompletedAt),
		fmt.Sprintf("%d", run.Duration().Milliseconds()),
		run.ErrorFile,
		run.TopologyFile,
		fmt.Sprintf("%d", run.TotalErrors),
		fmt.Sprintf("%d", run.ProcessedErrors),
		fmt.Sprintf("%d", run.AngleDummies),
		fmt.Sprintf("%d", run.DihedralDummies),
		run.Status,
	}
}
