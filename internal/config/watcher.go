// ABOUTME: Polling watcher that reports when config files appear, change or disappear
// ABOUTME: Compares mtime and size at a fixed interval; Check runs one comparison synchronously

package config

import (
	"os"
	"sync"
	"time"
)

// stamp identifies one version of a file.
type stamp struct {
	mod  time.Time
	size int64
}

// Watcher polls a fixed set of files and calls onChange after any of them
// is created, modified or removed.
type Watcher struct {
	paths    []string
	onChange func()

	mu       sync.Mutex
	interval time.Duration
	stamps   map[string]stamp
	running  bool

	stop     chan struct{}
	stopOnce sync.Once
}

// NewWatcher records the current state of paths. Nothing is polled until
// Start.
func NewWatcher(paths []string, onChange func()) *Watcher {
	w := &Watcher{
		paths:    paths,
		onChange: onChange,
		interval: 2 * time.Second,
		stamps:   make(map[string]stamp, len(paths)),
		stop:     make(chan struct{}),
	}
	w.stamps = w.scan()
	return w
}

// SetInterval overrides the default polling interval (2s). It takes effect
// on the next Start.
func (w *Watcher) SetInterval(d time.Duration) {
	w.mu.Lock()
	w.interval = d
	w.mu.Unlock()
}

// Start begins polling in a goroutine. Later calls are no-ops.
func (w *Watcher) Start() {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.running {
		return
	}
	w.running = true
	go w.loop(w.interval)
}

// Stop halts polling. Safe to call repeatedly and concurrently.
func (w *Watcher) Stop() {
	w.stopOnce.Do(func() { close(w.stop) })
}

// Check compares the files against the last recorded state, calls
// onChange on the calling goroutine if anything differs, and reports
// whether it did.
func (w *Watcher) Check() bool {
	w.mu.Lock()
	now := w.scan()
	changed := !sameStamps(w.stamps, now)
	w.stamps = now
	w.mu.Unlock()

	if changed {
		w.onChange()
	}
	return changed
}

func (w *Watcher) loop(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-w.stop:
			return
		case <-ticker.C:
			w.Check()
		}
	}
}

func (w *Watcher) scan() map[string]stamp {
	out := make(map[string]stamp, len(w.paths))
	for _, path := range w.paths {
		info, err := os.Stat(path)
		if err != nil {
			continue
		}
		out[path] = stamp{mod: info.ModTime(), size: info.Size()}
	}
	return out
}

func sameStamps(a, b map[string]stamp) bool {
	if len(a) != len(b) {
		return false
	}
	for path, s := range a {
		t, ok := b[path]
		if !ok || !s.mod.Equal(t.mod) || s.size != t.size {
			return false
		}
	}
	return true
}
