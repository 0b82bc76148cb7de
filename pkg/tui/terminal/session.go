// ABOUTME: Session owns raw mode for the lifetime of the program
// ABOUTME: Acquire enters raw mode and hides the cursor; Release undoes it exactly once

package terminal

import (
	"errors"
	"fmt"
	"io"
	"sync"
)

// Session is the guarded raw-mode resource. Every exit path calls Release;
// only the first call touches the terminal.
type Session struct {
	term     Terminal
	once     sync.Once
	err      error
	released chan struct{}
}

// Acquire enters raw mode on t, clears the screen, hides the cursor and
// enables any-event mouse tracking.
func Acquire(t Terminal) (*Session, error) {
	if err := t.EnterRawMode(); err != nil {
		return nil, fmt.Errorf("acquiring terminal: %w", err)
	}
	s := &Session{term: t, released: make(chan struct{})}
	if _, err := io.WriteString(t, StartupScreen); err != nil {
		return nil, errors.Join(fmt.Errorf("writing startup sequence: %w", err), t.ExitRawMode())
	}
	if err := t.Flush(); err != nil {
		return nil, errors.Join(fmt.Errorf("writing startup sequence: %w", err), t.ExitRawMode())
	}
	return s, nil
}

// Terminal returns the terminal the session controls.
func (s *Session) Terminal() Terminal {
	return s.term
}

// Release restores the saved terminal state, shows the cursor, disables
// mouse tracking and flushes. Later calls return the first call's error.
func (s *Session) Release() error {
	s.once.Do(func() {
		restoreErr := s.term.ExitRawMode()
		_, writeErr := io.WriteString(s.term, ShutdownScreen)
		flushErr := s.term.Flush()
		s.err = errors.Join(restoreErr, writeErr, flushErr)
		close(s.released)
	})
	return s.err
}

// Released is closed once Release has run.
func (s *Session) Released() <-chan struct{} {
	return s.released
}
