// ABOUTME: Core scene contracts: Element (drawable) and Reactive (focusable input target)
// ABOUTME: Rect does half-open hit-testing and saturating translation to local coordinates

package tui

import "github.com/mauromedda/charflow-go/pkg/tui/key"

// Element is anything the scene can draw.
type Element interface {
	// Draw writes the element at its own absolute position. It must not
	// fail; partial state degrades to blank output.
	Draw(out *RenderBuffer)
	// Z orders drawing: higher values draw later. Ties keep insertion order.
	Z() int
	Visible() bool
	SetVisible(visible bool)
}

// Reactive is anything that can hold focus and receive routed input.
type Reactive interface {
	// HandleKey is called only while the reactive is selected.
	HandleKey(e key.Event)
	// HandleMouse receives events inside Bounds, translated to the
	// rectangle's origin.
	HandleMouse(e key.MouseEvent)
	Bounds() Rect
	SetSelected(selected bool)
	Enabled() bool
	SetEnabled(enabled bool)
}

// Rect is a cell rectangle in terminal coordinates.
type Rect struct {
	X, Y          int
	Width, Height int
}

// Contains reports whether (x, y) lies in [X, X+Width) x [Y, Y+Height).
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.Width && y >= r.Y && y < r.Y+r.Height
}

// Translate moves e to r's origin. Coordinates left of or above the
// origin become 0.
func (r Rect) Translate(e key.MouseEvent) key.MouseEvent {
	e.X = saturatingSub(e.X, r.X)
	e.Y = saturatingSub(e.Y, r.Y)
	return e
}

func saturatingSub(v uint8, origin int) uint8 {
	d := int(v) - origin
	switch {
	case d < 0:
		return 0
	case d > 255:
		return 255
	}
	return uint8(d)
}
