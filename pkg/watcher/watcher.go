// Package watcher reruns work when tap script files change on disk.
package watcher

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog"
)

// DefaultDebounce is the quiet period before a change is reported
const DefaultDebounce = 200 * time.Millisecond

// Watcher reports changes of individual files. The parent directories are watched so
// that editors that save by renaming a temp file are picked up too.
type Watcher struct {
	watcher  *fsnotify.Watcher
	log      zerolog.Logger
	debounce time.Duration

	mu     sync.Mutex
	files  map[string]func(string)
	timers map[string]*time.Timer
}

// New creates a watcher
func New(debounce time.Duration, log zerolog.Logger) (*Watcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create watcher: %w", err)
	}

	return &Watcher{
		watcher:  w,
		log:      log,
		debounce: debounce,
		files:    make(map[string]func(string)),
		timers:   make(map[string]*time.Timer),
	}, nil
}

// Watch registers files; onChange is called with the absolute path of a changed file
func (w *Watcher) Watch(files []string, onChange func(string)) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	dirs := make(map[string]bool)
	for _, file := range files {
		absPath, err := filepath.Abs(file)
		if err != nil {
			return fmt.Errorf("failed to resolve path %s: %w", file, err)
		}
		w.files[absPath] = onChange
		dirs[filepath.Dir(absPath)] = true
	}

	for dir := range dirs {
		if err := w.watcher.Add(dir); err != nil {
			return fmt.Errorf("failed to watch %s: %w", dir, err)
		}
	}

	return nil
}

// Run dispatches change events until the context is done or the watcher is closed
func (w *Watcher) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			w.stopTimers()
			return ctx.Err()

		case event, ok := <-w.watcher.Events:
			if !ok {
				return nil
			}
			if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) || event.Has(fsnotify.Rename) {
				w.changed(event.Name)
			}

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return nil
			}
			w.log.Warn().Err(err).Msg("Watcher error")
		}
	}
}

func (w *Watcher) changed(path string) {
	w.mu.Lock()
	defer w.mu.Unlock()

	onChange, ok := w.files[filepath.Clean(path)]
	if !ok {
		return
	}

	if timer, ok := w.timers[path]; ok {
		timer.Stop()
	}

	w.log.Debug().Str("file", path).Msg("File changed")
	w.timers[path] = time.AfterFunc(w.debounce, func() {
		onChange(path)
	})
}

func (w *Watcher) stopTimers() {
	w.mu.Lock()
	defer w.mu.Unlock()

	for path, timer := range w.timers {
		timer.Stop()
		delete(w.timers, path)
	}
}

// Close stops the watcher
func (w *Watcher) Close() error {
	w.stopTimers()
	return w.watcher.Close()
}
