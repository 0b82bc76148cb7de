// ABOUTME: ProcessTerminal implements Terminal over a pair of files using golang.org/x/term.
// ABOUTME: Output is buffered until Flush; raw mode state is saved for exactly one restore.

package terminal

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"sync"

	"golang.org/x/term"
)

// ErrNotTerminal is returned by EnterRawMode when the input is not a TTY.
var ErrNotTerminal = errors.New("not a terminal")

// ProcessTerminal is a real terminal backed by an input and output file.
type ProcessTerminal struct {
	mu       sync.Mutex
	in       *os.File
	out      *os.File
	w        *bufio.Writer
	oldState *term.State
}

// NewProcessTerminal returns a ProcessTerminal on os.Stdin and os.Stdout.
func NewProcessTerminal() *ProcessTerminal {
	return NewFileTerminal(os.Stdin, os.Stdout)
}

// NewFileTerminal returns a ProcessTerminal reading in and writing out.
func NewFileTerminal(in, out *os.File) *ProcessTerminal {
	return &ProcessTerminal{
		in:  in,
		out: out,
		w:   bufio.NewWriterSize(out, 16*1024),
	}
}

// EnterRawMode switches the input to raw mode, saving the previous state.
func (t *ProcessTerminal) EnterRawMode() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	fd := int(t.in.Fd())
	if !term.IsTerminal(fd) {
		return fmt.Errorf("entering raw mode: %w", ErrNotTerminal)
	}
	state, err := term.MakeRaw(fd)
	if err != nil {
		return fmt.Errorf("entering raw mode: %w", err)
	}
	t.oldState = state
	return nil
}

// ExitRawMode restores the terminal to its previous state.
func (t *ProcessTerminal) ExitRawMode() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.oldState == nil {
		return nil
	}
	if err := term.Restore(int(t.in.Fd()), t.oldState); err != nil {
		return fmt.Errorf("exiting raw mode: %w", err)
	}
	t.oldState = nil
	return nil
}

// Size returns the current terminal dimensions.
func (t *ProcessTerminal) Size() (width, height int, err error) {
	w, h, err := size(t.out)
	if err != nil {
		return 0, 0, fmt.Errorf("getting terminal size: %w", err)
	}
	return w, h, nil
}

// Read reads raw bytes from the input file. Not guarded by mu: only the
// reader goroutine calls it.
func (t *ProcessTerminal) Read(p []byte) (int, error) {
	return t.in.Read(p)
}

// Write buffers bytes for the output file.
func (t *ProcessTerminal) Write(p []byte) (int, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	return t.w.Write(p)
}

// Flush sends buffered output to the output file.
func (t *ProcessTerminal) Flush() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if err := t.w.Flush(); err != nil {
		return fmt.Errorf("flushing output: %w", err)
	}
	return nil
}
