// ABOUTME: Text draws literal lines at a fixed position; TextBox word-wraps into a rectangle
// ABOUTME: Both take their colors from the caller and reset attributes after each row

package component

import (
	"strings"
	"sync"

	"github.com/mauromedda/charflow-go/pkg/tui"
	"github.com/mauromedda/charflow-go/pkg/tui/color"
	"github.com/mauromedda/charflow-go/pkg/tui/layout"
)

// Text draws each line of its content on consecutive rows starting at
// (X, Y). No wrapping or clipping is done.
type Text struct {
	drawable

	mu     sync.RWMutex
	x, y   int
	text   string
	fg, bg color.Color
}

// NewText returns a visible Text at z 0.
func NewText(x, y int, text string) *Text {
	return &Text{drawable: newDrawable(0), x: x, y: y, text: text}
}

// SetText replaces the content.
func (t *Text) SetText(text string) {
	t.mu.Lock()
	t.text = text
	t.mu.Unlock()
}

// Text returns the content.
func (t *Text) Text() string {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.text
}

// SetColors sets the foreground and background. color.None keeps the
// terminal default.
func (t *Text) SetColors(fg, bg color.Color) {
	t.mu.Lock()
	t.fg, t.bg = fg, bg
	t.mu.Unlock()
}

// SetPosition moves the first line to (x, y).
func (t *Text) SetPosition(x, y int) {
	t.mu.Lock()
	t.x, t.y = x, y
	t.mu.Unlock()
}

func (t *Text) Draw(out *tui.RenderBuffer) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	for i, line := range strings.Split(t.text, "\n") {
		out.Row(t.x, t.y+i, t.fg, t.bg, line)
	}
}

// TextBox word-wraps its content into a Width x Height rectangle, padding
// every row so the background fills the box.
type TextBox struct {
	drawable

	mu     sync.RWMutex
	rect   tui.Rect
	text   string
	fg, bg color.Color
}

// NewTextBox returns a visible TextBox at z 0.
func NewTextBox(rect tui.Rect, text string) *TextBox {
	return &TextBox{drawable: newDrawable(0), rect: rect, text: text}
}

func (t *TextBox) SetText(text string) {
	t.mu.Lock()
	t.text = text
	t.mu.Unlock()
}

func (t *TextBox) SetColors(fg, bg color.Color) {
	t.mu.Lock()
	t.fg, t.bg = fg, bg
	t.mu.Unlock()
}

func (t *TextBox) SetRect(rect tui.Rect) {
	t.mu.Lock()
	t.rect = rect
	t.mu.Unlock()
}

func (t *TextBox) Draw(out *tui.RenderBuffer) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	drawWrapped(out, t.rect, t.fg, t.bg, t.text)
}

// drawWrapped paints text wrapped into r, one styled row per line.
func drawWrapped(out *tui.RenderBuffer, r tui.Rect, fg, bg color.Color, text string) {
	if r.Width <= 0 {
		return
	}
	for i, row := range layout.Wrap(text, r.Width, r.Height) {
		out.Row(r.X, r.Y+i, fg, bg, row)
	}
}
