package watch

import (
	"context"
	"errors"
	"log/slog"
	"path/filepath"
	"sort"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// DefaultDebounceInterval is the quiet period applied to file events
// before the change callback fires.
const DefaultDebounceInterval = 500 * time.Millisecond

// Config contains configuration for the input file watcher.
type Config struct {
	// Paths are the input files to watch. The watcher registers each
	// file's parent directory with fsnotify; events are filtered back
	// down to these paths.
	Paths []string

	// DebounceInterval is the quiet period to wait after a file event
	// before invoking the change callback (default: 500ms).
	DebounceInterval time.Duration
}

// DefaultConfig returns the default watcher configuration.
func DefaultConfig() *Config {
	return &Config{
		DebounceInterval: DefaultDebounceInterval,
	}
}

// FileWatcher watches the analysis input files for changes and invokes a
// callback with the batch of changed paths after a debounce window.
type FileWatcher struct {
	watcher  *fsnotify.Watcher
	logger   *slog.Logger
	config   *Config
	debounce *Debouncer

	// targets maps absolute input paths to their configured form so the
	// callback reports the paths the caller passed in.
	targets map[string]string
	dirs    []string

	mu      sync.RWMutex
	running bool
	stopCh  chan struct{}
	doneCh  chan struct{}

	closeOnce sync.Once
	closeErr  error

	pendingMu sync.Mutex
	pending   map[string]struct{}
}

// NewFileWatcher creates a new file watcher for the configured paths.
func NewFileWatcher(config *Config, logger *slog.Logger) (*FileWatcher, error) {
	if config == nil {
		config = DefaultConfig()
	}
	if config.DebounceInterval <= 0 {
		config.DebounceInterval = DefaultDebounceInterval
	}
	if len(config.Paths) == 0 {
		return nil, NewWatchError("create", "", errors.New("no paths to watch"))
	}

	if logger == nil {
		logger = slog.Default().With("component", "watch")
	}

	targets := make(map[string]string, len(config.Paths))
	var dirs []string
	seen := make(map[string]struct{})
	for _, p := range config.Paths {
		abs, err := filepath.Abs(p)
		if err != nil {
			return nil, NewWatchError("resolve", p, err)
		}
		targets[abs] = p

		dir := filepath.Dir(abs)
		if _, ok := seen[dir]; !ok {
			seen[dir] = struct{}{}
			dirs = append(dirs, dir)
		}
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, NewWatchError("create", "", err)
	}

	return &FileWatcher{
		watcher:  watcher,
		logger:   logger,
		config:   config,
		debounce: NewDebouncer(config.DebounceInterval),
		targets:  targets,
		dirs:     dirs,
		stopCh:   make(chan struct{}),
		doneCh:   make(chan struct{}),
		pending:  make(map[string]struct{}),
	}, nil
}

// Watch starts watching for input changes and invokes onChange with the
// batch of changed paths after each debounce window. It blocks until the
// context is cancelled or Close is called. Callback errors are logged
// and never stop the watch loop.
func (fw *FileWatcher) Watch(ctx context.Context, onChange func(paths []string) error) error {
	fw.mu.Lock()
	if fw.running {
		fw.mu.Unlock()
		return NewWatchError("start", "", errors.New("watcher already running"))
	}
	fw.running = true
	fw.mu.Unlock()

	defer func() {
		fw.mu.Lock()
		fw.running = false
		fw.mu.Unlock()
		close(fw.doneCh)
	}()

	for _, dir := range fw.dirs {
		if err := fw.watcher.Add(dir); err != nil {
			return NewWatchError("add", dir, err)
		}
		fw.logger.Debug("watching directory", "path", dir)
	}

	fw.logger.Info("file watcher started",
		"paths", fw.config.Paths,
		"debounce_ms", fw.config.DebounceInterval.Milliseconds(),
	)

	for {
		select {
		case <-ctx.Done():
			fw.logger.Info("file watcher stopped (context cancelled)")
			return nil

		case <-fw.stopCh:
			fw.logger.Info("file watcher stopped")
			return nil

		case event, ok := <-fw.watcher.Events:
			if !ok {
				return NewWatchError("events", "", errors.New("events channel closed"))
			}

			path, ok := fw.targetFor(event)
			if !ok {
				continue
			}

			fw.logger.Debug("input change detected",
				"path", path,
				"op", event.Op.String(),
			)

			fw.pendingMu.Lock()
			fw.pending[path] = struct{}{}
			fw.pendingMu.Unlock()

			fw.debounce.Trigger(func() {
				changed := fw.drainPending()
				if len(changed) == 0 {
					return
				}

				fw.logger.Info("triggering re-analysis", "paths", changed)

				if err := onChange(changed); err != nil {
					fw.logger.Error("re-analysis failed", "error", err)
				}
			})

		case err, ok := <-fw.watcher.Errors:
			if !ok {
				return NewWatchError("errors", "", errors.New("errors channel closed"))
			}

			fw.logger.Error("file watcher error", "error", err)
			// Continue watching despite errors
		}
	}
}

// Close stops the watcher and releases the fsnotify handle. It is safe
// to call multiple times.
func (fw *FileWatcher) Close() error {
	fw.closeOnce.Do(func() {
		close(fw.stopCh)

		fw.mu.RLock()
		running := fw.running
		fw.mu.RUnlock()
		if running {
			<-fw.doneCh
		}

		fw.debounce.Stop()

		if err := fw.watcher.Close(); err != nil {
			fw.closeErr = NewWatchError("close", "", err)
		}
	})

	return fw.closeErr
}

// targetFor reports whether an event touches one of the watched inputs,
// returning the path as originally configured. Only Write, Create and
// Rename events count; editors that replace files via rename surface the
// new content as Create or Rename on the target path.
func (fw *FileWatcher) targetFor(event fsnotify.Event) (string, bool) {
	if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
		return "", false
	}

	orig, ok := fw.targets[filepath.Clean(event.Name)]
	return orig, ok
}

// drainPending returns the accumulated changed paths, sorted, and resets
// the pending set.
func (fw *FileWatcher) drainPending() []string {
	fw.pendingMu.Lock()
	defer fw.pendingMu.Unlock()

	paths := make([]string, 0, len(fw.pending))
	for p := range fw.pending {
		paths = append(paths, p)
	}
	fw.pending = make(map[string]struct{})

	sort.Strings(paths)
	return paths
}

// Debouncer collapses rapid event bursts into a single callback after a
// quiet period.
type Debouncer struct {
	interval time.Duration
	timer    *time.Timer
	mu       sync.Mutex
	callback func()
	stopCh   chan struct{}
}

// NewDebouncer creates a new debouncer.
func NewDebouncer(interval time.Duration) *Debouncer {
	return &Debouncer{
		interval: interval,
		stopCh:   make(chan struct{}),
	}
}

// Trigger arms the debouncer with a new event. The callback will be
// called after the debounce interval if no new events occur.
func (d *Debouncer) Trigger(callback func()) {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.callback = callback

	if d.timer != nil {
		d.timer.Stop()
	}

	d.timer = time.AfterFunc(d.interval, func() {
		select {
		case <-d.stopCh:
			return
		default:
			d.mu.Lock()
			cb := d.callback
			d.mu.Unlock()

			if cb != nil {
				cb()
			}
		}
	})
}

// Stop stops the debouncer and cancels any pending callback.
func (d *Debouncer) Stop() {
	close(d.stopCh)

	d.mu.Lock()
	defer d.mu.Unlock()

	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
	d.callback = nil
}
