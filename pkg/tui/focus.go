// ABOUTME: Focus state machine: key events cycle selection among enabled reactives
// ABOUTME: Mouse events hit-test every reactive in registration order, regardless of focus

package tui

import "github.com/mauromedda/charflow-go/pkg/tui/key"

// HandleKey updates focus and forwards e to the selected reactive. Every
// key is forwarded, including the cycle keys themselves.
func (t *TUI) HandleKey(e key.Event) {
	target := t.focus(e.Code)
	if target != nil {
		target.HandleKey(e)
	}
}

// focus applies one key to the focus state and returns the reactive that
// should receive it. The scene lock is released before the caller
// dispatches.
func (t *TUI) focus(code uint8) Reactive {
	t.mu.Lock()
	defer t.mu.Unlock()
	if !t.reactive {
		return nil
	}

	enabled := make([]Reactive, 0, len(t.reactives))
	for _, r := range t.reactives {
		r.SetSelected(false)
		if r.Enabled() {
			enabled = append(enabled, r)
		}
	}
	n := len(enabled)
	if n == 0 {
		t.index = 0
		return nil
	}

	t.index %= n
	switch code {
	case t.nextKey:
		t.index = (t.index + 1) % n
	case t.prevKey:
		t.index = (t.index + n - 1) % n
	}

	target := enabled[t.index]
	target.SetSelected(true)
	return target
}

// HandleMouse forwards e, translated to local coordinates, to every
// reactive whose bounds contain it. Disabled reactives are included.
func (t *TUI) HandleMouse(e key.MouseEvent) {
	t.mu.RLock()
	active := t.reactive
	t.mu.RUnlock()
	if !active {
		return
	}

	for _, r := range t.Reactives() {
		b := r.Bounds()
		if b.Contains(int(e.X), int(e.Y)) {
			r.HandleMouse(b.Translate(e))
		}
	}
}

// FocusIndex returns the current index into the enabled reactives.
func (t *TUI) FocusIndex() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.index
}
