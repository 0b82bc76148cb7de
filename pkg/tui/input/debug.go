// ABOUTME: One-line diagnostic overlay drawn on the bottom row.
// ABOUTME: Shows terminal size, last key, last mouse report and this frame's raw bytes.

package input

import (
	"fmt"
	"io"

	"github.com/mauromedda/charflow-go/pkg/tui/terminal"
)

func (p *Pipeline) overlayLine() string {
	w, h := p.Size()
	return fmt.Sprintf("\x1b[%dHw:%d h:%d key:%d mouse:%d x:%d y:%d readout:%v%s",
		h, w, h, p.lastKey.Code, p.lastMouse.Code, p.lastMouse.X, p.lastMouse.Y,
		p.readout, terminal.ClearLine)
}

func (p *Pipeline) drawOverlay() {
	_, _ = io.WriteString(p.term, p.overlayLine())
	_ = p.term.Flush()
}
