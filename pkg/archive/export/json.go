package export

import (
	"context"
	"encoding/json"
	"io"

	"topofix-hq/topofix/pkg/archive"
)

// JSONExporter exports runs to JSON format.
type JSONExporter struct {
	// Pretty enables pretty-printing with indentation.
	Pretty bool
}

// NewJSONExporter creates a new JSON exporter.
func NewJSONExporter(pretty bool) *JSONExporter {
	return &JSONExporter{
		Pretty: pretty,
	}
}

// Export writes runs to the provided writer as a JSON array. Runs are
// serialized one at a time so large exports never buffer the whole
// array in memory. An empty run list produces "[]".
func (e *JSONExporter) Export(ctx context.Context, runs []*archive.Run, w io.Writer) error {
	if _, err := w.Write([]byte("[")); err != nil {
		return archive.NewExportError("json", len(runs), err)
	}

	for i, run := range runs {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		// Separator before all but the first run
		if i > 0 {
			if _, err := w.Write([]byte(",")); err != nil {
				return archive.NewExportError("json", len(runs), err)
			}
			if e.Pretty {
				if _, err := w.Write([]byte("\n")); err != nil {
					return archive.NewExportError("json", len(runs), err)
				}
			}
		}

		data, err := e.serializeRun(run)
		if err != nil {
			return archive.NewExportError("json", len(runs), err)
		}
		if _, err := w.Write(data); err != nil {
			return archive.NewExportError("json", len(runs), err)
		}
	}

	if _, err := w.Write([]byte("]")); err != nil {
		return archive.NewExportError("json", len(runs), err)
	}

	return nil
}

// serializeRun serializes a single run to JSON.
func (e *JSONExporter) serializeRun(run *archive.Run) ([]byte, error) {
	if e.Pretty {
		return json.MarshalIndent(run, "", "  ")
	}
	return json.Marshal(run)
}
