// Package watch monitors a drop folder for legal document files and
// invokes a handler once a matching file has settled.
package watch

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"sync"
	"time"

	"gopkg.in/fsnotify.v1"
)

// DefaultDebounce is the default quiet period after the last write
// before a file is handed to the handler.
const DefaultDebounce = 500 * time.Millisecond

// DefaultPatterns are the glob patterns matched against file names when
// none are configured.
var DefaultPatterns = []string{"*.txt", "*.html", "*.htm"}

// Handler is called with the path of a settled document file.
type Handler func(path string)

// Config holds configuration for a Watcher.
type Config struct {
	// Patterns are glob patterns matched against file base names.
	Patterns []string

	// Debounce is the quiet period after the last create or write
	// event before the handler fires. Editors and downloads often
	// produce several writes for one file.
	Debounce time.Duration

	// Logger receives structured watch events. Defaults to
	// slog.Default().
	Logger *slog.Logger
}

// Watcher watches a single directory for created or modified files
// matching the configured patterns.
type Watcher struct {
	dir      string
	patterns []string
	debounce time.Duration
	handler  Handler
	logger   *slog.Logger

	pendingMu sync.Mutex
	pending   map[string]*time.Timer
}

// New creates a Watcher for the given directory and handler.
func New(dir string, handler Handler, config Config) *Watcher {
	patterns := config.Patterns
	if len(patterns) == 0 {
		patterns = DefaultPatterns
	}

	debounce := config.Debounce
	if debounce == 0 {
		debounce = DefaultDebounce
	}

	logger := config.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &Watcher{
		dir:      dir,
		patterns: patterns,
		debounce: debounce,
		handler:  handler,
		logger:   logger,
		pending:  make(map[string]*time.Timer),
	}
}

// Run watches the directory until the context is cancelled or the
// underlying watcher fails.
func (watcher *Watcher) Run(ctx context.Context) error {
	fsWatcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("creating watcher: %w", err)
	}
	defer fsWatcher.Close()

	if err := fsWatcher.Add(watcher.dir); err != nil {
		return fmt.Errorf("watching directory %s: %w", watcher.dir, err)
	}

	watcher.logger.Info("watching directory",
		"dir", watcher.dir,
		"patterns", watcher.patterns,
		"debounce", watcher.debounce)

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case event, ok := <-fsWatcher.Events:
			if !ok {
				return nil
			}

			isCreate := event.Op&fsnotify.Create == fsnotify.Create
			isWrite := event.Op&fsnotify.Write == fsnotify.Write
			if !isCreate && !isWrite {
				continue
			}
			if !watcher.matchesPatterns(filepath.Base(event.Name)) {
				continue
			}

			watcher.logger.Debug("document event", "event", event.String())
			watcher.scheduleHandle(event.Name)

		case watchErr, ok := <-fsWatcher.Errors:
			if !ok {
				return nil
			}
			watcher.logger.Warn("watch error", "error", watchErr)
		}
	}
}

// scheduleHandle arms the debounce timer for a path, resetting it if
// the path is already pending.
func (watcher *Watcher) scheduleHandle(path string) {
	watcher.pendingMu.Lock()
	defer watcher.pendingMu.Unlock()

	if pendingTimer, exists := watcher.pending[path]; exists {
		pendingTimer.Reset(watcher.debounce)
		return
	}

	watcher.pending[path] = time.AfterFunc(watcher.debounce, func() {
		watcher.pendingMu.Lock()
		delete(watcher.pending, path)
		watcher.pendingMu.Unlock()

		watcher.logger.Info("document settled", "path", path)
		watcher.handler(path)
	})
}

// matchesPatterns reports whether a file name matches any configured
// glob pattern.
func (watcher *Watcher) matchesPatterns(name string) bool {
	for _, pattern := range watcher.patterns {
		if matched, _ := filepath.Match(pattern, name); matched {
			return true
		}
	}
	return false
}
