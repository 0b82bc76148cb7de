// ABOUTME: Background byte reader feeding the pipeline's input channel.
// ABOUTME: One-byte blocking reads; the channel closes when the reader fails.

package input

import (
	"io"

	pilog "github.com/mauromedda/charflow-go/internal/log"
	"github.com/mauromedda/charflow-go/pkg/tui/terminal"
)

const byteQueueSize = 1024

// readLoop forwards every byte read from r to ch and closes ch on the first
// read error. It is the only goroutine that touches r. A panic while
// reading releases s before the goroutine dies.
func readLoop(r io.Reader, ch chan<- byte, s *terminal.Session) {
	defer terminal.RecoverGoroutine(s)
	defer close(ch)
	var b [1]byte
	for {
		n, err := r.Read(b[:])
		if n == 1 {
			ch <- b[0]
		}
		if err != nil {
			pilog.Debug("input: reader stopped: %v", err)
			return
		}
	}
}
