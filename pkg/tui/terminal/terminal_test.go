// ABOUTME: Tests for VirtualTerminal verifying raw mode tracking, output capture, and scripted input.
// ABOUTME: Uses table-driven and parallel sub-tests for thorough coverage.

package terminal

import (
	"errors"
	"io"
	"sync"
	"testing"
)

// compile-time checks: both implementations must satisfy Terminal.
var (
	_ Terminal = (*VirtualTerminal)(nil)
	_ Terminal = (*ProcessTerminal)(nil)
)

func TestVirtualTerminal_Size(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		width      int
		height     int
		wantWidth  int
		wantHeight int
	}{
		{name: "standard 80x24", width: 80, height: 24, wantWidth: 80, wantHeight: 24},
		{name: "wide 200x50", width: 200, height: 50, wantWidth: 200, wantHeight: 50},
		{name: "zero dimensions", width: 0, height: 0, wantWidth: 0, wantHeight: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			vt := NewVirtualTerminal(tt.width, tt.height)

			w, h, err := vt.Size()
			if err != nil {
				t.Fatalf("Size() unexpected error: %v", err)
			}
			if w != tt.wantWidth || h != tt.wantHeight {
				t.Errorf("Size() = (%d, %d), want (%d, %d)", w, h, tt.wantWidth, tt.wantHeight)
			}
		})
	}
}

func TestVirtualTerminal_RawMode(t *testing.T) {
	t.Parallel()
	vt := NewVirtualTerminal(80, 24)

	if vt.IsRawMode() {
		t.Fatal("expected raw mode to be off initially")
	}

	if err := vt.EnterRawMode(); err != nil {
		t.Fatalf("EnterRawMode() unexpected error: %v", err)
	}
	if !vt.IsRawMode() {
		t.Fatal("expected raw mode to be on after EnterRawMode")
	}
	if vt.EnterCount() != 1 {
		t.Errorf("EnterCount() = %d, want 1", vt.EnterCount())
	}

	if err := vt.ExitRawMode(); err != nil {
		t.Fatalf("ExitRawMode() unexpected error: %v", err)
	}
	if vt.IsRawMode() {
		t.Fatal("expected raw mode to be off after ExitRawMode")
	}
	if vt.ExitCount() != 1 {
		t.Errorf("ExitCount() = %d, want 1", vt.ExitCount())
	}
}

func TestVirtualTerminal_FailRawMode(t *testing.T) {
	t.Parallel()
	vt := NewVirtualTerminal(80, 24)
	boom := errors.New("boom")
	vt.FailRawMode(boom)

	if err := vt.EnterRawMode(); !errors.Is(err, boom) {
		t.Fatalf("EnterRawMode() = %v, want %v", err, boom)
	}
	if vt.IsRawMode() || vt.EnterCount() != 0 {
		t.Error("failed EnterRawMode must not change state")
	}
}

func TestVirtualTerminal_OutputAndFlush(t *testing.T) {
	t.Parallel()
	vt := NewVirtualTerminal(80, 24)

	_, _ = vt.Write([]byte("hello "))
	_, _ = vt.Write([]byte("world"))
	_ = vt.Flush()

	if got := vt.Output(); got != "hello world" {
		t.Errorf("Output() = %q, want %q", got, "hello world")
	}
	if vt.FlushCount() != 1 {
		t.Errorf("FlushCount() = %d, want 1", vt.FlushCount())
	}

	vt.Reset()
	if got := vt.Output(); got != "" {
		t.Errorf("Output() after Reset = %q, want empty", got)
	}
}

func TestVirtualTerminal_FeedAndRead(t *testing.T) {
	t.Parallel()
	vt := NewVirtualTerminal(80, 24)

	go func() {
		vt.Feed([]byte("ab"))
		vt.CloseInput()
	}()

	got, err := io.ReadAll(vt)
	if err != nil {
		t.Fatalf("ReadAll: %v", err)
	}
	if string(got) != "ab" {
		t.Errorf("read %q, want %q", got, "ab")
	}
}

func TestVirtualTerminal_SetSize(t *testing.T) {
	t.Parallel()
	vt := NewVirtualTerminal(80, 24)

	vt.SetSize(100, 50)

	w, h, err := vt.Size()
	if err != nil {
		t.Fatalf("Size() unexpected error: %v", err)
	}
	if w != 100 || h != 50 {
		t.Errorf("Size() = (%d, %d), want (100, 50)", w, h)
	}
}

func TestVirtualTerminal_ConcurrentAccess(t *testing.T) {
	t.Parallel()
	vt := NewVirtualTerminal(80, 24)

	var wg sync.WaitGroup
	const goroutines = 10

	wg.Add(goroutines * 3)
	for range goroutines {
		go func() {
			defer wg.Done()
			_, _ = vt.Write([]byte("x"))
		}()
		go func() {
			defer wg.Done()
			_, _, _ = vt.Size()
		}()
		go func() {
			defer wg.Done()
			_ = vt.EnterRawMode()
			_ = vt.ExitRawMode()
		}()
	}

	wg.Wait()

	if len(vt.Output()) != goroutines {
		t.Errorf("Output length = %d, want %d", len(vt.Output()), goroutines)
	}
}

func TestMoveTo(t *testing.T) {
	t.Parallel()

	tests := []struct {
		x, y int
		want string
	}{
		{x: 1, y: 1, want: "\x1b[1;1H"},
		{x: 61, y: 5, want: "\x1b[5;61H"},
		{x: 0, y: 24, want: "\x1b[24;0H"},
	}
	for _, tt := range tests {
		if got := MoveTo(tt.x, tt.y); got != tt.want {
			t.Errorf("MoveTo(%d, %d) = %q, want %q", tt.x, tt.y, got, tt.want)
		}
	}
}
