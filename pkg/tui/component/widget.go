// ABOUTME: State shared by the built-in widgets: stacking order, visibility and focus
// ABOUTME: reactive implements tui.Reactive; callbacks always run with no lock held

package component

import (
	"sync"

	"github.com/mauromedda/charflow-go/pkg/tui"
	"github.com/mauromedda/charflow-go/pkg/tui/key"
)

// drawable carries the tui.Element bookkeeping for a widget.
type drawable struct {
	dmu     sync.RWMutex
	z       int
	visible bool
}

func newDrawable(z int) drawable {
	return drawable{z: z, visible: true}
}

// Z returns the stacking order.
func (d *drawable) Z() int {
	d.dmu.RLock()
	defer d.dmu.RUnlock()
	return d.z
}

// SetZ changes the stacking order from the next frame on.
func (d *drawable) SetZ(z int) {
	d.dmu.Lock()
	d.z = z
	d.dmu.Unlock()
}

// Visible reports whether the widget is drawn.
func (d *drawable) Visible() bool {
	d.dmu.RLock()
	defer d.dmu.RUnlock()
	return d.visible
}

// SetVisible shows or hides the widget from the next frame on.
func (d *drawable) SetVisible(visible bool) {
	d.dmu.Lock()
	d.visible = visible
	d.dmu.Unlock()
}

// reactive carries the tui.Reactive half of a widget.
type reactive struct {
	rmu      sync.RWMutex
	bounds   tui.Rect
	selected bool
	enabled  bool
	onKey    func(key.Event)
	onMouse  func(key.MouseEvent)
}

func newReactive(bounds tui.Rect) reactive {
	return reactive{bounds: bounds, enabled: true}
}

// HandleKey runs the key callback, if any.
func (r *reactive) HandleKey(e key.Event) {
	r.rmu.RLock()
	fn := r.onKey
	r.rmu.RUnlock()
	if fn != nil {
		fn(e)
	}
}

// HandleMouse runs the mouse callback, if any. Coordinates are local.
func (r *reactive) HandleMouse(e key.MouseEvent) {
	r.rmu.RLock()
	fn := r.onMouse
	r.rmu.RUnlock()
	if fn != nil {
		fn(e)
	}
}

// OnKey sets the callback for key events received while selected.
func (r *reactive) OnKey(fn func(key.Event)) {
	r.rmu.Lock()
	r.onKey = fn
	r.rmu.Unlock()
}

// OnMouse sets the callback for mouse events inside Bounds.
func (r *reactive) OnMouse(fn func(key.MouseEvent)) {
	r.rmu.Lock()
	r.onMouse = fn
	r.rmu.Unlock()
}

// Bounds returns the hit-test rectangle.
func (r *reactive) Bounds() tui.Rect {
	r.rmu.RLock()
	defer r.rmu.RUnlock()
	return r.bounds
}

// SetBounds moves or resizes the widget.
func (r *reactive) SetBounds(b tui.Rect) {
	r.rmu.Lock()
	r.bounds = b
	r.rmu.Unlock()
}

func (r *reactive) SetSelected(selected bool) {
	r.rmu.Lock()
	r.selected = selected
	r.rmu.Unlock()
}

// Selected reports whether the widget holds focus.
func (r *reactive) Selected() bool {
	r.rmu.RLock()
	defer r.rmu.RUnlock()
	return r.selected
}

func (r *reactive) Enabled() bool {
	r.rmu.RLock()
	defer r.rmu.RUnlock()
	return r.enabled
}

func (r *reactive) SetEnabled(enabled bool) {
	r.rmu.Lock()
	r.enabled = enabled
	r.rmu.Unlock()
}

// geometry reads bounds and selection in one critical section. Widgets
// call it while holding their own mu, so rmu is always taken second.
func (r *reactive) geometry() (tui.Rect, bool) {
	r.rmu.RLock()
	defer r.rmu.RUnlock()
	return r.bounds, r.selected
}
