// ABOUTME: Pooled byte buffer that elements draw into; recycled via sync.Pool
// ABOUTME: One buffer holds one element's escape sequences for a single write

package tui

import (
	"sync"

	"github.com/mauromedda/charflow-go/pkg/tui/color"
	"github.com/mauromedda/charflow-go/pkg/tui/terminal"
)

var bufferPool = sync.Pool{
	New: func() any {
		return &RenderBuffer{
			buf: make([]byte, 0, 4096),
		}
	},
}

// AcquireBuffer gets a RenderBuffer from the pool.
func AcquireBuffer() *RenderBuffer {
	buf := bufferPool.Get().(*RenderBuffer)
	buf.Reset()
	return buf
}

// ReleaseBuffer returns a RenderBuffer to the pool.
func ReleaseBuffer(buf *RenderBuffer) {
	if buf == nil {
		return
	}
	buf.Reset()
	bufferPool.Put(buf)
}

// RenderBuffer accumulates terminal output for one element.
type RenderBuffer struct {
	buf []byte
}

// MoveTo positions the cursor at column x, row y (1-based).
func (b *RenderBuffer) MoveTo(x, y int) {
	b.buf = terminal.AppendMoveTo(b.buf, x, y)
}

// Style resets attributes and applies fg and bg.
func (b *RenderBuffer) Style(fg, bg color.Color) {
	b.buf = append(b.buf, color.Force(fg, bg)...)
}

// WriteString appends s verbatim.
func (b *RenderBuffer) WriteString(s string) {
	b.buf = append(b.buf, s...)
}

// Write appends p verbatim. It never fails.
func (b *RenderBuffer) Write(p []byte) (int, error) {
	b.buf = append(b.buf, p...)
	return len(p), nil
}

// Row writes text at (x, y) in fg on bg, followed by a style reset.
func (b *RenderBuffer) Row(x, y int, fg, bg color.Color, text string) {
	b.MoveTo(x, y)
	b.Style(fg, bg)
	b.WriteString(text)
	b.WriteString(color.Reset)
}

// Bytes returns the accumulated output. Valid until the next mutation.
func (b *RenderBuffer) Bytes() []byte {
	return b.buf
}

// String returns the accumulated output as a string.
func (b *RenderBuffer) String() string {
	return string(b.buf)
}

// Reset clears the buffer for reuse without deallocating.
func (b *RenderBuffer) Reset() {
	b.buf = b.buf[:0]
}

// Len returns the number of buffered bytes.
func (b *RenderBuffer) Len() int {
	return len(b.buf)
}
