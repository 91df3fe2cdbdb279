package content

import (
	"fmt"
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog/log"

	"lasso/internal/eventbus"
)

// Watcher publishes a ContentChangedEvent whenever the open document is
// rewritten on disk. The parent directory is watched rather than the file
// itself so editors that replace the file (write temp + rename) still
// trigger.
type Watcher struct {
	bus eventbus.EventBus
	fw  *fsnotify.Watcher

	mu       sync.Mutex
	path     string // absolute path of the watched document
	watchDir string
}

// NewWatcher creates a watcher and starts its event loop
func NewWatcher(bus eventbus.EventBus) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create file watcher: %w", err)
	}

	w := &Watcher{bus: bus, fw: fw}
	go w.loop()
	return w, nil
}

// Watch switches the watcher to the given document path
func (w *Watcher) Watch(path string) error {
	abs, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("failed to resolve watch path: %w", err)
	}
	dir := filepath.Dir(abs)

	w.mu.Lock()
	defer w.mu.Unlock()

	if w.watchDir == dir {
		w.path = abs
		return nil
	}

	if w.watchDir != "" {
		if err := w.fw.Remove(w.watchDir); err != nil {
			log.Debug().Err(err).Str("dir", w.watchDir).Msg("failed to unwatch directory")
		}
	}
	if err := w.fw.Add(dir); err != nil {
		return fmt.Errorf("failed to watch directory: %w", err)
	}

	w.path = abs
	w.watchDir = dir
	return nil
}

// Close stops the watcher
func (w *Watcher) Close() error {
	return w.fw.Close()
}

func (w *Watcher) loop() {
	for {
		select {
		case event, ok := <-w.fw.Events:
			if !ok {
				return
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}

			w.mu.Lock()
			target := w.path
			w.mu.Unlock()

			if target == "" || filepath.Clean(event.Name) != target {
				continue
			}
			w.bus.Publish(eventbus.ContentChangedEvent{Path: target})

		case err, ok := <-w.fw.Errors:
			if !ok {
				return
			}
			log.Warn().Err(err).Msg("file watcher error")
		}
	}
}
