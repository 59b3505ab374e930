package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	_ "modernc.org/sqlite" // SQLite driver

	"topofix-hq/topofix/pkg/archive"
)

// SQLiteConfig configures the SQLite storage backend.
type SQLiteConfig struct {
	// Path is the path to the SQLite database file.
	// The file is created if it does not exist.
	Path string

	// BusyTimeout is how long to wait for locks before failing.
	// Default: 5 seconds
	BusyTimeout time.Duration
}

// SQLiteStorage implements the archive.Storage interface on a local
// SQLite database. WAL mode keeps history reads from blocking run
// writes.
type SQLiteStorage struct {
	db        *sql.DB
	path      string
	closeOnce sync.Once
}

const insertRun = `
INSERT INTO runs (id, started_at, completed_at, error_file, topology_file,
                  total_errors, processed_errors, angle_dummies, dihedral_dummies, status)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
ON CONFLICT(id) DO UPDATE SET
    started_at       = excluded.started_at,
    completed_at     = excluded.completed_at,
    error_file       = excluded.error_file,
    topology_file    = excluded.topology_file,
    total_errors     = excluded.total_errors,
    processed_errors = excluded.processed_errors,
    angle_dummies    = excluded.angle_dummies,
    dihedral_dummies = excluded.dihedral_dummies,
    status           = excluded.status
`

const selectRuns = `
SELECT id, started_at, completed_at, error_file, topology_file,
       total_errors, processed_errors, angle_dummies, dihedral_dummies, status
FROM runs
`

// NewSQLiteStorage opens the archive database at cfg.Path, creating
// the file and schema if necessary.
func NewSQLiteStorage(cfg *SQLiteConfig) (*SQLiteStorage, error) {
	if cfg == nil || cfg.Path == "" {
		return nil, archive.NewStorageError("sqlite", "open", fmt.Errorf("database path cannot be empty"))
	}

	busyTimeout := cfg.BusyTimeout
	if busyTimeout == 0 {
		busyTimeout = 5 * time.Second
	}

	// Open database with WAL mode and busy timeout
	dsn := fmt.Sprintf("%s?_journal_mode=WAL&_busy_timeout=%d",
		cfg.Path, int(busyTimeout.Milliseconds()))

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, archive.NewStorageError("sqlite", "open", err)
	}

	// SQLite only supports a single writer
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	s := &SQLiteStorage{
		db:   db,
		path: cfg.Path,
	}

	if err := s.initialize(); err != nil {
		db.Close()
		return nil, archive.NewStorageError("sqlite", "initialize", err)
	}

	return s, nil
}

// initialize creates the schema and verifies its version.
func (s *SQLiteStorage) initialize() error {
	if _, err := s.db.Exec(schema); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	if _, err := s.db.Exec(insertSchemaVersion, SchemaVersion); err != nil {
		return fmt.Errorf("failed to record schema version: %w", err)
	}

	var version int
	if err := s.db.QueryRow(selectSchemaVersion).Scan(&version); err != nil {
		return fmt.Errorf("failed to read schema version: %w", err)
	}
	if version != SchemaVersion {
		return fmt.Errorf("schema version mismatch: database has %d, expected %d", version, SchemaVersion)
	}

	return nil
}

// Store persists a run.
func (s *SQLiteStorage) Store(ctx context.Context, run *archive.Run) error {
	if run == nil {
		return archive.NewStorageError("sqlite", "store", fmt.Errorf("run cannot be nil"))
	}
	if run.ID == "" {
		return archive.NewStorageError("sqlite", "store", fmt.Errorf("run ID cannot be empty"))
	}

	_, err := s.db.ExecContext(ctx, insertRun,
		run.ID,
		timeToNanos(run.StartedAt),
		timeToNanos(run.CompletedAt),
		run.ErrorFile,
		run.TopologyFile,
		run.TotalErrors,
		run.ProcessedErrors,
		run.AngleDummies,
		run.DihedralDummies,
		run.Status,
	)
	if err != nil {
		return archive.NewStorageError("sqlite", "store", err)
	}

	return nil
}

// Get retrieves a run by ID.
func (s *SQLiteStorage) Get(ctx context.Context, id string) (*archive.Run, error) {
	row := s.db.QueryRowContext(ctx, selectRuns+"WHERE id = ?", id)

	run, err := scanRun(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, archive.ErrNotFound
	}
	if err != nil {
		return nil, archive.NewStorageError("sqlite", "get", err)
	}

	return run, nil
}

// List retrieves runs matching the filter, newest first.
func (s *SQLiteStorage) List(ctx context.Context, filter *archive.Filter) ([]*archive.Run, error) {
	query, args := buildListQuery(filter)

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, archive.NewStorageError("sqlite", "list", err)
	}
	defer rows.Close()

	runs := []*archive.Run{}
	for rows.Next() {
		run, err := scanRun(rows)
		if err != nil {
			return nil, archive.NewStorageError("sqlite", "list", err)
		}
		runs = append(runs, run)
	}
	if err := rows.Err(); err != nil {
		return nil, archive.NewStorageError("sqlite", "list", err)
	}

	return runs, nil
}

// Delete removes a run by ID.
func (s *SQLiteStorage) Delete(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, "DELETE FROM runs WHERE id = ?", id)
	if err != nil {
		return archive.NewStorageError("sqlite", "delete", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return archive.NewStorageError("sqlite", "delete", err)
	}
	if affected == 0 {
		return archive.ErrNotFound
	}

	return nil
}

// DeleteOlderThan removes runs started before the cutoff.
func (s *SQLiteStorage) DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	result, err := s.db.ExecContext(ctx, "DELETE FROM runs WHERE started_at < ?", cutoff.UnixNano())
	if err != nil {
		return 0, archive.NewStorageError("sqlite", "delete", err)
	}

	deleted, err := result.RowsAffected()
	if err != nil {
		return 0, archive.NewStorageError("sqlite", "delete", err)
	}

	return deleted, nil
}

// Count returns the total number of archived runs.
func (s *SQLiteStorage) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM runs").Scan(&count); err != nil {
		return 0, archive.NewStorageError("sqlite", "count", err)
	}

	return count, nil
}

// Close closes the database. Close is idempotent and safe to call
// multiple times.
func (s *SQLiteStorage) Close() error {
	var closeErr error

	s.closeOnce.Do(func() {
		// Fold the WAL back into the main database file
		_, _ = s.db.Exec("PRAGMA wal_checkpoint(TRUNCATE)")
		closeErr = s.db.Close()
	})

	return closeErr
}

// buildListQuery assembles the SELECT statement for a filter.
func buildListQuery(filter *archive.Filter) (string, []any) {
	var (
		conditions []string
		args       []any
	)

	if filter != nil {
		if filter.Since != nil {
			conditions = append(conditions, "started_at >= ?")
			args = append(args, filter.Since.UnixNano())
		}
		if filter.Status != "" {
			conditions = append(conditions, "status = ?")
			args = append(args, filter.Status)
		}
	}

	query := selectRuns
	if len(conditions) > 0 {
		query += "WHERE " + strings.Join(conditions, " AND ") + "\n"
	}
	query += "ORDER BY started_at DESC, id"

	if filter != nil && filter.Limit > 0 {
		query += " LIMIT ?"
		args = append(args, filter.Limit)
	}

	return query, args
}

// scanner covers both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

// scanRun reads one runs row.
func scanRun(row scanner) (*archive.Run, error) {
	var (
		run         archive.Run
		startedAt   int64
		completedAt int64
	)

	err := row.Scan(
		&run.ID,
		&startedAt,
		&completedAt,
		&run.ErrorFile,
		&run.TopologyFile,
		&run.TotalErrors,
		&run.ProcessedErrors,
		&run.AngleDummies,
		&run.DihedralDummies,
		&run.Status,
	)
	if err != nil {
		return nil, err
	}

	run.StartedAt = nanosToTime(startedAt)
	run.CompletedAt = nanosToTime(completedAt)

	return &run, nil
}

// timeToNanos converts a time to its column value, mapping the zero
// time to 0. The zero time is outside the range UnixNano can represent.
func timeToNanos(t time.Time) int64 {
	if t.IsZero() {
		return 0
	}
	return t.UnixNano()
}

// nanosToTime is the inverse of timeToNanos.
func nanosToTime(n int64) time.Time {
	if n == 0 {
		return time.Time{}
	}
	return time.Unix(0, n)
}
