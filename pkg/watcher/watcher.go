// Package watcher reloads the settings file when it changes on disk, so
// drift and zoom tuning can be edited while the viewer is running.
package watcher

import (
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// SettingsWatcher watches a single settings file and triggers a callback
// after changes settle. The parent directory is watched rather than the
// file itself, since editors commonly replace the file via rename.
type SettingsWatcher struct {
	watcher  *fsnotify.Watcher
	path     string
	callback func()
	debounce time.Duration

	mu    sync.Mutex
	timer *time.Timer
}

// NewSettingsWatcher creates a watcher for the settings file at path
func NewSettingsWatcher(path string, debounce time.Duration, callback func()) (*SettingsWatcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve path %s: %w", path, err)
	}

	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create watcher: %w", err)
	}

	if err := w.Add(filepath.Dir(abs)); err != nil {
		w.Close()
		return nil, fmt.Errorf("failed to watch %s: %w", filepath.Dir(abs), err)
	}

	return &SettingsWatcher{
		watcher:  w,
		path:     abs,
		callback: callback,
		debounce: debounce,
	}, nil
}

// Start begins watching for changes
func (sw *SettingsWatcher) Start() {
	go func() {
		for {
			select {
			case event, ok := <-sw.watcher.Events:
				if !ok {
					return
				}

				if event.Name != sw.path {
					continue
				}
				if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) != 0 {
					sw.scheduleReload()
				}

			case err, ok := <-sw.watcher.Errors:
				if !ok {
					return
				}
				fmt.Printf("Watcher error: %v\n", err)
			}
		}
	}()
}

// scheduleReload collapses a burst of events into a single callback
func (sw *SettingsWatcher) scheduleReload() {
	sw.mu.Lock()
	defer sw.mu.Unlock()

	if sw.timer != nil {
		sw.timer.Stop()
	}
	sw.timer = time.AfterFunc(sw.debounce, sw.callback)
}

// Close stops the watcher
func (sw *SettingsWatcher) Close() error {
	sw.mu.Lock()
	if sw.timer != nil {
		sw.timer.Stop()
	}
	sw.mu.Unlock()
	return sw.watcher.Close()
}
