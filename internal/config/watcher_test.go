// ABOUTME: Tests for the polling config watcher
// ABOUTME: Uses explicit mtimes so change detection does not depend on filesystem timing

package config

import (
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

func writeConfig(t *testing.T, path, content string, mod time.Time) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
	if err := os.Chtimes(path, mod, mod); err != nil {
		t.Fatal(err)
	}
}

func TestWatcher_Check(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	writeConfig(t, path, "debug: false\n", base)

	var called atomic.Int32
	w := NewWatcher([]string{path}, func() { called.Add(1) })

	if w.Check() {
		t.Error("Check reported a change on an untouched file")
	}

	writeConfig(t, path, "debug: true\n", base.Add(time.Second))
	if !w.Check() {
		t.Error("Check missed a modification")
	}
	if w.Check() {
		t.Error("Check reported the same modification twice")
	}

	if err := os.Remove(path); err != nil {
		t.Fatal(err)
	}
	if !w.Check() {
		t.Error("Check missed a removal")
	}

	writeConfig(t, path, "debug: true\n", base)
	if !w.Check() {
		t.Error("Check missed a creation")
	}
	if got := called.Load(); got != 3 {
		t.Errorf("onChange called %d times, want 3", got)
	}
}

func TestWatcher_SameMtimeDifferentSize(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, ".charflow.yaml")
	mod := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	writeConfig(t, path, "a: 1\n", mod)

	w := NewWatcher([]string{path}, func() {})
	writeConfig(t, path, "a: 12345\n", mod)
	if !w.Check() {
		t.Error("size change not detected")
	}
}

func TestWatcher_Polls(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	writeConfig(t, path, "debug: false\n", base)

	changed := make(chan struct{}, 1)
	w := NewWatcher([]string{path}, func() {
		select {
		case changed <- struct{}{}:
		default:
		}
	})
	w.SetInterval(10 * time.Millisecond)
	w.Start()
	defer w.Stop()

	writeConfig(t, path, "debug: true\n", base.Add(time.Minute))

	select {
	case <-changed:
	case <-time.After(2 * time.Second):
		t.Fatal("polling never reported the change")
	}
}

func TestWatcher_MissingFile(t *testing.T) {
	t.Parallel()

	w := NewWatcher([]string{"/nonexistent/charflow.yaml"}, func() {
		t.Error("onChange called for a file that never existed")
	})
	if w.Check() {
		t.Error("Check reported a change")
	}
}

func TestWatcher_StartStopIdempotent(t *testing.T) {
	t.Parallel()

	w := NewWatcher(nil, func() {})
	w.Start()
	w.Start()

	var wg sync.WaitGroup
	for range 10 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			w.Stop()
		}()
	}
	wg.Wait()
}
