// ABOUTME: Button is a focusable wrapped-text rectangle; Interactable is its invisible cousin
// ABOUTME: Both forward key and mouse events to caller-supplied callbacks

package component

import (
	"sync"

	"github.com/mauromedda/charflow-go/pkg/tui"
	"github.com/mauromedda/charflow-go/pkg/tui/color"
)

// Interactable is a Reactive with no drawing of its own. Register it with
// TUI.AddReactive to make a region clickable or focusable.
type Interactable struct {
	reactive
}

// NewInteractable returns an enabled Interactable covering bounds.
func NewInteractable(bounds tui.Rect) *Interactable {
	return &Interactable{reactive: newReactive(bounds)}
}

// Button draws its label wrapped inside its bounds and switches to the
// selected colors while focused.
type Button struct {
	drawable
	reactive

	mu           sync.RWMutex
	text         string
	fg, bg       color.Color
	selFG, selBG color.Color
}

// NewButton returns an enabled, visible Button at z 0.
func NewButton(bounds tui.Rect, text string) *Button {
	return &Button{
		drawable: newDrawable(0),
		reactive: newReactive(bounds),
		text:     text,
	}
}

func (b *Button) SetText(text string) {
	b.mu.Lock()
	b.text = text
	b.mu.Unlock()
}

// SetColors sets the colors used while not selected.
func (b *Button) SetColors(fg, bg color.Color) {
	b.mu.Lock()
	b.fg, b.bg = fg, bg
	b.mu.Unlock()
}

// SetSelectedColors sets the colors used while selected.
func (b *Button) SetSelectedColors(fg, bg color.Color) {
	b.mu.Lock()
	b.selFG, b.selBG = fg, bg
	b.mu.Unlock()
}

func (b *Button) Draw(out *tui.RenderBuffer) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	bounds, selected := b.geometry()
	fg, bg := b.fg, b.bg
	if selected {
		fg, bg = b.selFG, b.selBG
	}
	drawWrapped(out, bounds, fg, bg, b.text)
}

