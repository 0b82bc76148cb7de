// ABOUTME: VirtualTerminal implements Terminal for testing without a real TTY.
// ABOUTME: Captures output, feeds scripted input, and tracks raw-mode and flush calls.

package terminal

import (
	"bytes"
	"fmt"
	"io"
	"sync"
)

// VirtualTerminal is a fake Terminal for unit tests.
// It records written output and tracks raw-mode transitions. Input is
// supplied with Feed and read back by Read.
type VirtualTerminal struct {
	mu         sync.Mutex
	buf        bytes.Buffer
	width      int
	height     int
	rawMode    bool
	enterCount int
	exitCount  int
	flushCount int
	enterErr   error

	inR *io.PipeReader
	inW *io.PipeWriter
}

// NewVirtualTerminal returns a VirtualTerminal with the given dimensions.
func NewVirtualTerminal(width, height int) *VirtualTerminal {
	r, w := io.Pipe()
	return &VirtualTerminal{
		width:  width,
		height: height,
		inR:    r,
		inW:    w,
	}
}

// EnterRawMode records a raw-mode entry.
func (v *VirtualTerminal) EnterRawMode() error {
	v.mu.Lock()
	defer v.mu.Unlock()

	if v.enterErr != nil {
		return v.enterErr
	}
	v.rawMode = true
	v.enterCount++
	return nil
}

// ExitRawMode records a raw-mode exit.
func (v *VirtualTerminal) ExitRawMode() error {
	v.mu.Lock()
	defer v.mu.Unlock()

	v.rawMode = false
	v.exitCount++
	return nil
}

// Size returns the configured terminal dimensions.
func (v *VirtualTerminal) Size() (width, height int, err error) {
	v.mu.Lock()
	defer v.mu.Unlock()

	return v.width, v.height, nil
}

// Read blocks until Feed supplies bytes or CloseInput is called.
func (v *VirtualTerminal) Read(p []byte) (int, error) {
	return v.inR.Read(p)
}

// Write appends data to the internal buffer.
func (v *VirtualTerminal) Write(p []byte) (int, error) {
	v.mu.Lock()
	defer v.mu.Unlock()

	n, err := v.buf.Write(p)
	if err != nil {
		return n, fmt.Errorf("writing to virtual buffer: %w", err)
	}
	return n, nil
}

// Flush records a flush.
func (v *VirtualTerminal) Flush() error {
	v.mu.Lock()
	defer v.mu.Unlock()

	v.flushCount++
	return nil
}

// --- Test helpers (not part of Terminal interface) ---

// Feed makes p available to Read. It blocks until the bytes are consumed.
func (v *VirtualTerminal) Feed(p []byte) {
	_, _ = v.inW.Write(p)
}

// CloseInput makes pending and future Reads return io.EOF.
func (v *VirtualTerminal) CloseInput() {
	_ = v.inW.Close()
}

// FailRawMode makes the next EnterRawMode calls return err.
func (v *VirtualTerminal) FailRawMode(err error) {
	v.mu.Lock()
	defer v.mu.Unlock()

	v.enterErr = err
}

// Output returns everything written so far.
func (v *VirtualTerminal) Output() string {
	v.mu.Lock()
	defer v.mu.Unlock()

	return v.buf.String()
}

// Reset clears the output buffer.
func (v *VirtualTerminal) Reset() {
	v.mu.Lock()
	defer v.mu.Unlock()

	v.buf.Reset()
}

// IsRawMode reports whether raw mode is currently active.
func (v *VirtualTerminal) IsRawMode() bool {
	v.mu.Lock()
	defer v.mu.Unlock()

	return v.rawMode
}

// EnterCount returns how many times EnterRawMode succeeded.
func (v *VirtualTerminal) EnterCount() int {
	v.mu.Lock()
	defer v.mu.Unlock()

	return v.enterCount
}

// ExitCount returns how many times ExitRawMode was called.
func (v *VirtualTerminal) ExitCount() int {
	v.mu.Lock()
	defer v.mu.Unlock()

	return v.exitCount
}

// FlushCount returns how many times Flush was called.
func (v *VirtualTerminal) FlushCount() int {
	v.mu.Lock()
	defer v.mu.Unlock()

	return v.flushCount
}

// SetSize updates the terminal dimensions.
func (v *VirtualTerminal) SetSize(width, height int) {
	v.mu.Lock()
	defer v.mu.Unlock()

	v.width = width
	v.height = height
}
