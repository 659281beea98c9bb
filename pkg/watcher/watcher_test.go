package watcher

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestWatcherFiresAfterWrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.json")
	if err := os.WriteFile(path, []byte("{}"), 0644); err != nil {
		t.Fatal(err)
	}

	fired := make(chan struct{}, 1)
	sw, err := NewSettingsWatcher(path, 20*time.Millisecond, func() {
		fired <- struct{}{}
	})
	if err != nil {
		t.Fatalf("failed to create watcher: %v", err)
	}
	defer sw.Close()
	sw.Start()

	if err := os.WriteFile(path, []byte(`{"zoom_level":1}`), 0644); err != nil {
		t.Fatal(err)
	}

	select {
	case <-fired:
	case <-time.After(2 * time.Second):
		t.Error("expected callback after settings write")
	}
}

func TestWatcherIgnoresSiblingFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "settings.json")
	if err := os.WriteFile(path, []byte("{}"), 0644); err != nil {
		t.Fatal(err)
	}

	fired := make(chan struct{}, 1)
	sw, err := NewSettingsWatcher(path, 20*time.Millisecond, func() {
		fired <- struct{}{}
	})
	if err != nil {
		t.Fatalf("failed to create watcher: %v", err)
	}
	defer sw.Close()
	sw.Start()

	if err := os.WriteFile(filepath.Join(dir, "other.json"), []byte("{}"), 0644); err != nil {
		t.Fatal(err)
	}

	select {
	case <-fired:
		t.Error("expected no callback for a sibling file")
	case <-time.After(200 * time.Millisecond):
	}
}
