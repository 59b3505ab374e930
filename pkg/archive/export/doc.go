// Package export provides run exporters for various formats.
//
// # Export Formats
//
// The export package provides exporters for:
//
//   - JSON: Array of run objects, with optional pretty-printing
//   - CSV: One row per run with header row and proper escaping
//
// # JSON Export
//
// The JSON exporter writes runs as a JSON array:
//
//	// Create JSON exporter with pretty-printing
//	exporter := export.NewJSONExporter(true)
//
//	// Export runs to stdout
//	err := exporter.Export(ctx, runs, os.Stdout)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// # CSV Export
//
// The CSV exporter writes runs in CSV format with proper escaping:
//
//	// Create CSV exporter with header row
//	exporter := export.NewCSVExporter(true)
//
//	// Export runs to file
//	f, _ := os.Create("runs.csv")
//	defer f.Close()
//
//	err := exporter.Export(ctx, runs, f)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// # Streaming
//
// Both exporters write runs to the output writer one at a time, so
// large exports never buffer the whole serialized output in memory.
//
// # Error Handling
//
// Exporters return ExportError if the export fails:
//
//   - JSON encoding errors
//   - CSV escaping errors
//   - Writer errors
package export
