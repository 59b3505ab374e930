package storage

// SchemaVersion is the current version of the archive database schema.
// Bump it when the runs table layout changes, and add a migration.
const SchemaVersion = 1

// schema creates the archive tables and indexes. Every statement is
// idempotent so reopening an existing database is safe.
//
// Timestamps are stored as integer Unix nanoseconds; the zero time is
// stored as 0.
const schema = `
CREATE TABLE IF NOT EXISTS runs (
    id               TEXT PRIMARY KEY,
    started_at       INTEGER NOT NULL,
    completed_at     INTEGER NOT NULL,
    error_file       TEXT NOT NULL,
    topology_file    TEXT NOT NULL,
    total_errors     INTEGER NOT NULL,
    processed_errors INTEGER NOT NULL,
    angle_dummies    INTEGER NOT NULL,
    dihedral_dummies INTEGER NOT NULL,
    status           TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_runs_started_at ON runs(started_at);
CREATE INDEX IF NOT EXISTS idx_runs_status ON runs(status);

CREATE TABLE IF NOT EXISTS schema_migrations (
    version    INTEGER PRIMARY KEY,
    applied_at TEXT NOT NULL
);
`

// insertSchemaVersion records the current schema version. Re-applying
// an already recorded version is a no-op.
const insertSchemaVersion = `
INSERT INTO schema_migrations (version, applied_at)
VALUES (?, datetime('now'))
ON CONFLICT(version) DO NOTHING;
`

// selectSchemaVersion returns the highest applied schema version.
const selectSchemaVersion = `
SELECT version FROM schema_migrations ORDER BY version DESC LIMIT 1;
`
