// ABOUTME: Box draws a bordered rectangle using one of the box-drawing line sets
// ABOUTME: The interior is filled with spaces in the background color

package component

import (
	"strings"
	"sync"

	"github.com/mauromedda/charflow-go/pkg/tui"
	"github.com/mauromedda/charflow-go/pkg/tui/color"
	"github.com/mauromedda/charflow-go/pkg/tui/lines"
)

// Box is an outlined rectangle. Boxes narrower or shorter than two cells
// draw nothing.
type Box struct {
	drawable

	mu       sync.RWMutex
	rect     tui.Rect
	set      lines.Set
	line, bg color.Color
}

// NewBox returns a visible Box at z 0.
func NewBox(rect tui.Rect, set lines.Set) *Box {
	return &Box{drawable: newDrawable(0), rect: rect, set: set}
}

// SetColors sets the border color and the fill.
func (b *Box) SetColors(line, bg color.Color) {
	b.mu.Lock()
	b.line, b.bg = line, bg
	b.mu.Unlock()
}

// Colors returns the border color and the fill.
func (b *Box) Colors() (line, bg color.Color) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.line, b.bg
}

func (b *Box) SetLines(set lines.Set) {
	b.mu.Lock()
	b.set = set
	b.mu.Unlock()
}

func (b *Box) SetRect(rect tui.Rect) {
	b.mu.Lock()
	b.rect = rect
	b.mu.Unlock()
}

func (b *Box) Draw(out *tui.RenderBuffer) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	r := b.rect
	if r.Width < 2 || r.Height < 2 {
		return
	}
	inner := r.Width - 2
	edge := strings.Repeat(b.set.Horizontal, inner)
	fill := b.set.Vertical + strings.Repeat(" ", inner) + b.set.Vertical

	out.Row(r.X, r.Y, b.line, b.bg, b.set.TopLeft+edge+b.set.TopRight)
	for i := 1; i < r.Height-1; i++ {
		out.Row(r.X, r.Y+i, b.line, b.bg, fill)
	}
	out.Row(r.X, r.Y+r.Height-1, b.line, b.bg, b.set.BottomLeft+edge+b.set.BottomRight)
}
