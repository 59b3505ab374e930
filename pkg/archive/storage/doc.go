// Package storage provides storage backends for archived runs.
//
// # Storage Backends
//
// The package provides two implementations of the archive.Storage
// interface:
//
//   - SQLite: durable single-file database (default)
//   - Memory: in-memory storage for tests and archive-less runs
//
// # SQLite Backend
//
// The SQLite backend uses the cgo-free modernc.org/sqlite driver and
// provides durable storage with:
//
//   - WAL mode so history reads do not block run writes
//   - A busy timeout for handling locks
//   - Indexes on started_at and status for history queries
//   - Schema versioning via the schema_migrations table
//
// # Basic Usage
//
//	store, err := storage.NewSQLiteStorage(&storage.SQLiteConfig{
//	    Path: "output/archive.db",
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer store.Close()
//
//	// Store a run
//	if err := store.Store(ctx, run); err != nil {
//	    log.Fatal(err)
//	}
//
//	// List recent failed runs
//	runs, err := store.List(ctx, &archive.Filter{
//	    Status: archive.StatusFailed,
//	    Limit:  20,
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// # Thread Safety
//
// Both backends are thread-safe. The SQLite backend holds a single
// connection since SQLite supports only one writer at a time; the
// memory backend serializes access with a read-write mutex.
//
// # Schema Migration
//
// The SQLite backend initializes the schema on first open and records
// the schema version in the schema_migrations table. Opening a
// database written by a newer schema version fails instead of reading
// it wrong.
package storage
