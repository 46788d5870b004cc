// Package watch monitors the items file backing the demo list and delivers
// reload signals when it changes on disk.
package watch

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"dragd/internal/log"

	"github.com/fsnotify/fsnotify"
)

// ItemsModification represents a change to the watched items file
type ItemsModification struct {
	Path      string
	Timestamp time.Time
	Op        fsnotify.Op
}

// ItemsWatcher monitors one items file using fsnotify. It watches the
// file's directory rather than the file itself, since editors typically
// replace the file on save.
type ItemsWatcher struct {
	// Absolute path of the watched file
	path string

	// Channel to receive reload signals
	modChan chan ItemsModification

	// Channel to signal stop
	stopChan chan struct{}

	// fsnotify watcher instance
	fsWatcher *fsnotify.Watcher

	// Lock for the running state
	mutex sync.RWMutex

	// Whether the watcher is running
	running bool
}

// New creates a watcher for the given items file. The file's directory
// must exist; the file itself may not yet.
func New(path string) (*ItemsWatcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve items path: %w", err)
	}

	dir := filepath.Dir(abs)
	info, err := os.Stat(dir)
	if err != nil {
		return nil, fmt.Errorf("error accessing items directory: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%s is not a directory", dir)
	}

	fsWatcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create fsnotify watcher: %w", err)
	}
	if err := fsWatcher.Add(dir); err != nil {
		fsWatcher.Close()
		return nil, fmt.Errorf("failed to watch %s: %w", dir, err)
	}

	return &ItemsWatcher{
		path:      abs,
		modChan:   make(chan ItemsModification, 10),
		stopChan:  make(chan struct{}),
		fsWatcher: fsWatcher,
	}, nil
}

// Path returns the absolute path of the watched file.
func (w *ItemsWatcher) Path() string {
	return w.path
}

// Channel returns the channel that delivers reload signals.
func (w *ItemsWatcher) Channel() <-chan ItemsModification {
	return w.modChan
}

// Start begins delivering reload signals.
func (w *ItemsWatcher) Start() error {
	w.mutex.Lock()
	if w.running {
		w.mutex.Unlock()
		return fmt.Errorf("watcher already running")
	}
	w.running = true
	w.stopChan = make(chan struct{})
	w.mutex.Unlock()

	go func() {
		log.WithFields(map[string]interface{}{"path": w.path}).Info("watching items file")

		for {
			select {
			case event, ok := <-w.fsWatcher.Events:
				if !ok {
					return
				}
				// Only the watched file matters; the directory watch sees
				// every sibling.
				if filepath.Clean(event.Name) != w.path {
					continue
				}
				if !event.Op.Has(fsnotify.Create) && !event.Op.Has(fsnotify.Write) && !event.Op.Has(fsnotify.Rename) {
					continue
				}
				mod := ItemsModification{
					Path:      w.path,
					Timestamp: time.Now(),
					Op:        event.Op,
				}
				// Send non-blockingly so a slow consumer cannot wedge the
				// event loop
				select {
				case w.modChan <- mod:
				default:
					log.Warnf("items watcher: reload channel full, dropped event")
				}

			case err, ok := <-w.fsWatcher.Errors:
				if !ok {
					return
				}
				log.Errorf("items watcher error: %v", err)

			case <-w.stopChan:
				return
			}
		}
	}()

	return nil
}

// Stop halts the watcher and closes its channels.
func (w *ItemsWatcher) Stop() {
	w.mutex.Lock()
	defer w.mutex.Unlock()

	if !w.running {
		return
	}

	close(w.stopChan)

	if err := w.fsWatcher.Close(); err != nil {
		log.Errorf("error closing fsnotify watcher: %v", err)
	}

	w.running = false

	close(w.modChan)

	log.Debugf("items watcher stopped")
}

// IsRunning returns whether the watcher is currently active.
func (w *ItemsWatcher) IsRunning() bool {
	w.mutex.RLock()
	defer w.mutex.RUnlock()
	return w.running
}
