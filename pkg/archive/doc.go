// Package archive provides persistent records of analysis runs. Every
// analysis stores one Run summarizing what was read, how many errors
// were correlated, and how many dummy parameters came out, so that
// repeated runs over a changing topology leave an inspectable history.
//
// # Architecture
//
// The archive consists of three layers:
//
//  1. Recorder - Opens and persists Run records around an analysis
//  2. Storage Backend - Persists runs (SQLite, in-memory)
//  3. Exporters - Write stored runs as CSV or JSON
//
// # Run Records
//
// Each run captures:
//   - Input paths (diagnostic file, topology file)
//   - Timestamps (started, completed)
//   - Counts (errors parsed, errors processed, dummy rows by kind)
//   - Outcome status (success, degraded, failed)
//
// # Basic Usage
//
//	// Initialize storage backend
//	store, err := storage.NewSQLiteStorage(&storage.SQLiteConfig{
//	    Path: "output/archive.db",
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer store.Close()
//
//	// Record a run around an analysis
//	recorder := archive.NewRecorder(store)
//	run := recorder.Begin("input/errors.txt", "input/topol.top")
//	// ... analysis fills in counts and status ...
//	run.Status = archive.StatusSuccess
//	if err := recorder.Record(ctx, run); err != nil {
//	    log.Fatal(err)
//	}
//
// # Inspecting History
//
//	// List the ten most recent runs
//	runs, err := store.List(ctx, &archive.Filter{Limit: 10})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	// Export to JSON
//	exporter := export.NewJSONExporter(true) // pretty-print
//	exporter.Export(ctx, runs, os.Stdout)
//
// # Retention
//
// Runs can be automatically pruned based on age:
//
//	pruner := retention.NewPruner(store, &retention.Config{
//	    RetentionDays: 90,
//	    PruneSchedule: "0 3 * * *", // Daily at 3 AM
//	})
//
//	// Start background pruning (watch mode)
//	pruner.Start(ctx)
//	defer pruner.Stop()
//
// # Thread Safety
//
// All archive types are safe for concurrent use:
//   - Storage: thread-safe; SQLite uses WAL mode so history reads do
//     not block run writes
//   - Exporters: stateless, can be used concurrently
//
// # Storage Backends
//
// The archive supports multiple storage backends via the Storage
// interface:
//   - SQLite: durable single-file database (default)
//   - Memory: ephemeral storage for tests and archive-less runs
//
// Custom backends can be implemented by satisfying the Storage
// interface.
package archive
