// Package watch drives automatic re-analysis when the input files change
// on disk.
//
// # Architecture
//
// The package provides two components:
//
//   - FileWatcher: registers the parent directories of the input files
//     with fsnotify and filters the event stream down to the watched
//     paths. Parent directories are watched instead of the files
//     themselves because editors and simulation tooling typically
//     replace files via rename, which silently drops a watch registered
//     on the old inode.
//   - Debouncer: collapses bursts of events into a single callback after
//     a configurable quiet period.
//
// # Basic Usage
//
//	watcher, err := watch.NewFileWatcher(&watch.Config{
//		Paths:            []string{"errors.log", "topol.top"},
//		DebounceInterval: 500 * time.Millisecond,
//	}, nil)
//	if err != nil {
//		return err
//	}
//	defer watcher.Close()
//
//	err = watcher.Watch(ctx, func(paths []string) error {
//		return rerunAnalysis(paths)
//	})
//
// # Event Semantics
//
// Only Write, Create and Rename events on the configured paths trigger
// the callback. Chmod events and events for other files in the same
// directories are ignored. Changes landing inside one debounce window
// are batched: the callback receives the union of changed paths, sorted.
// Callback errors are logged and never stop the watch loop.
//
// # Shutdown
//
// Watch blocks until its context is cancelled or Close is called. Close
// is safe to call multiple times.
package watch
