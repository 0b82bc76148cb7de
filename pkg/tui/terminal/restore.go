// ABOUTME: RestoreOnPanic recovers from panics, releases the terminal session, and prints the stack trace.
// ABOUTME: Intended for use as a deferred call in the main goroutine.

package terminal

import (
	"fmt"
	"io"
	"os"
	"runtime/debug"
)

// exit and stderr are swapped out by tests.
var (
	exit             = os.Exit
	stderr io.Writer = os.Stderr
)

// RestoreOnPanic should be deferred at the top of main. On panic it
// releases the session, prints the panic value and stack trace, then
// exits with code 1.
func RestoreOnPanic(s *Session) {
	r := recover()
	if r == nil {
		return
	}

	_ = s.Release()

	fmt.Fprintf(stderr, "\npanic: %v\n\n%s\n", r, debug.Stack())
	exit(1)
}

// RecoverGoroutine should be deferred at the top of background goroutines
// that run while the terminal is in raw mode. Unlike RestoreOnPanic it
// does NOT exit, allowing the main goroutine to handle shutdown.
func RecoverGoroutine(s *Session) {
	r := recover()
	if r == nil {
		return
	}

	_ = s.Release()

	fmt.Fprintf(stderr, "\ngoroutine panic: %v\n\n%s\n", r, debug.Stack())
}
