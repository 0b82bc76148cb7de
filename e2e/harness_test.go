//go:build unix

// ABOUTME: Test harness that runs a scene and input pipeline on the slave side of a real pty
// ABOUTME: The master side plays the user: it types bytes and feeds output into a vt10x screen

package e2e

import (
	"io"
	"os"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/creack/pty"
	"github.com/hinshun/vt10x"

	"github.com/mauromedda/charflow-go/pkg/tui"
	"github.com/mauromedda/charflow-go/pkg/tui/input"
	"github.com/mauromedda/charflow-go/pkg/tui/key"
	"github.com/mauromedda/charflow-go/pkg/tui/terminal"
)

const (
	cols  = 80
	rows  = 24
	frame = 10 * time.Millisecond
)

type session struct {
	master *os.File
	tty    *os.File
	screen vt10x.Terminal
	pipe   *input.Pipeline
	scene  *tui.TUI

	mu       sync.Mutex
	exitCode int
	exited   bool
	copied   chan struct{}
}

func start(t *testing.T, next, prev uint8) *session {
	t.Helper()
	if testing.Short() {
		t.Skip("e2e tests skipped in short mode")
	}

	master, tty, err := pty.Open()
	if err != nil {
		t.Skipf("no pty available: %v", err)
	}
	if err := pty.Setsize(master, &pty.Winsize{Cols: cols, Rows: rows}); err != nil {
		t.Fatalf("Setsize: %v", err)
	}

	s := &session{
		master: master,
		tty:    tty,
		screen: vt10x.New(vt10x.WithWriter(io.Discard), vt10x.WithSize(cols, rows)),
		copied: make(chan struct{}),
	}
	go func() {
		defer close(s.copied)
		_, _ = io.Copy(s.screen, master)
	}()

	term := terminal.NewFileTerminal(tty, tty)
	s.pipe, err = input.New(input.Options{
		Terminal: term,
		Exit: func(code int) {
			s.mu.Lock()
			s.exitCode, s.exited = code, true
			s.mu.Unlock()
		},
	})
	if err != nil {
		t.Fatalf("input.New: %v", err)
	}
	s.scene = tui.NewReactive(s.pipe.Terminal(), next, prev)
	s.pipe.AddKeyObserver(s.scene)
	s.pipe.AddMouseObserver(s.scene)

	t.Cleanup(func() {
		_ = s.pipe.Close()
		_ = tty.Close()
		_ = master.Close()
		<-s.copied
	})
	return s
}

// frame runs one render pass and one input frame.
func (s *session) frame(t *testing.T) {
	t.Helper()
	if err := s.scene.Update(); err != nil {
		t.Fatalf("Update: %v", err)
	}
	s.pipe.Update(frame)
}

// pumpUntil runs frames until cond holds or the deadline passes.
func (s *session) pumpUntil(t *testing.T, what string, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(5 * time.Second)
	for time.Now().Before(deadline) {
		s.frame(t)
		if cond() {
			return
		}
	}
	t.Fatalf("timed out waiting for %s; screen:\n%s", what, s.screen.String())
}

func (s *session) send(t *testing.T, b string) {
	t.Helper()
	if _, err := s.master.WriteString(b); err != nil {
		t.Fatalf("write to pty: %v", err)
	}
}

// click sends a left press report for cell (x, y) in scene coordinates.
func (s *session) click(t *testing.T, x, y int) {
	t.Helper()
	s.send(t, string([]byte{0x1b, '[', 'M', key.MouseLeftPress, byte(x + 32), byte(y + 32)}))
}

func (s *session) shows(text string) bool {
	return strings.Contains(s.screen.String(), text)
}

func (s *session) hasExited() (int, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.exitCode, s.exited
}
