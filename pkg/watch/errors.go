package watch

import "fmt"

// WatchError describes a failure in the file watching layer.
type WatchError struct {
	// Operation is the watcher operation that failed (create, resolve,
	// add, start, close).
	Operation string

	// Path is the file or directory involved, when known.
	Path string

	// Cause is the underlying error.
	Cause error
}

// Error implements the error interface.
func (e *WatchError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("watch error [operation=%s]: %v", e.Operation, e.Cause)
	}
	return fmt.Sprintf("watch error [operation=%s, path=%s]: %v", e.Operation, e.Path, e.Cause)
}

// Unwrap returns the underlying cause.
func (e *WatchError) Unwrap() error {
	return e.Cause
}

// NewWatchError creates a new WatchError.
func NewWatchError(operation, path string, cause error) *WatchError {
	return &WatchError{
		Operation: operation,
		Path:      path,
		Cause:     cause,
	}
}
