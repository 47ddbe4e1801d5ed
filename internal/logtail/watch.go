package logtail

import (
	"fmt"
	"log"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
)

// Watch signals when a followed file changes so callers can poll right away
// instead of waiting for the next tick. The parent directory is watched, so
// a file that is created later or replaced by rotation keeps signalling.
type Watch struct {
	watcher *fsnotify.Watcher
	path    string
	wake    chan struct{}
}

// NewWatch watches path. Close releases the watcher.
func NewWatch(path string) (*Watch, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolve log path: %w", err)
	}
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}
	if err := watcher.Add(filepath.Dir(abs)); err != nil {
		_ = watcher.Close()
		return nil, fmt.Errorf("watch %s: %w", filepath.Dir(abs), err)
	}

	w := &Watch{watcher: watcher, path: abs, wake: make(chan struct{}, 1)}
	go w.run()
	return w, nil
}

// Wake receives a value after the file changes. Bursts of changes collapse
// into one pending signal.
func (w *Watch) Wake() <-chan struct{} { return w.wake }

// Close stops watching.
func (w *Watch) Close() error { return w.watcher.Close() }

func (w *Watch) run() {
	for {
		select {
		case ev, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(ev.Name) != w.path {
				continue
			}
			if ev.Has(fsnotify.Write) || ev.Has(fsnotify.Create) || ev.Has(fsnotify.Rename) || ev.Has(fsnotify.Remove) {
				select {
				case w.wake <- struct{}{}:
				default:
				}
			}
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			log.Printf("watch %s: %v", w.path, err)
		}
	}
}
