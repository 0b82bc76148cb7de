// ABOUTME: Tests for the background reader goroutine
// ABOUTME: Covers byte forwarding, close on error and terminal release on panic

package input

import (
	"strings"
	"testing"

	"github.com/mauromedda/charflow-go/pkg/tui/terminal"
)

type panickingReader struct{}

func (panickingReader) Read([]byte) (int, error) {
	panic("read exploded")
}

func acquire(t *testing.T) (*terminal.VirtualTerminal, *terminal.Session) {
	t.Helper()
	vt := terminal.NewVirtualTerminal(80, 24)
	s, err := terminal.Acquire(vt)
	if err != nil {
		t.Fatalf("Acquire() error: %v", err)
	}
	return vt, s
}

func TestReadLoop_ForwardsUntilError(t *testing.T) {
	t.Parallel()
	vt, s := acquire(t)

	ch := make(chan byte, 8)
	readLoop(strings.NewReader("ab"), ch, s)

	var got []byte
	for b := range ch {
		got = append(got, b)
	}
	if string(got) != "ab" {
		t.Errorf("forwarded %q, want %q", got, "ab")
	}
	if !vt.IsRawMode() {
		t.Error("a plain read error must not release the terminal")
	}
}

func TestReadLoop_PanicReleasesTerminal(t *testing.T) {
	t.Parallel()
	vt, s := acquire(t)

	ch := make(chan byte, 1)
	done := make(chan struct{})
	go func() {
		defer close(done)
		readLoop(panickingReader{}, ch, s)
	}()
	<-done

	if vt.IsRawMode() {
		t.Error("terminal still raw after reader panic")
	}
	if vt.ExitCount() != 1 {
		t.Errorf("ExitRawMode called %d times, want 1", vt.ExitCount())
	}
	select {
	case <-s.Released():
	default:
		t.Error("session not released")
	}
	if _, ok := <-ch; ok {
		t.Error("byte channel left open")
	}
	if err := s.Release(); err != nil {
		t.Errorf("second Release: %v", err)
	}
}
