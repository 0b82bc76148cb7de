// ABOUTME: TUI scene: z-ordered compositing of elements plus the reactive focus list
// ABOUTME: Update draws each visible element into a pooled buffer and flushes once per element

package tui

import (
	"errors"
	"fmt"
	"io"
	"sort"
	"sync"
)

// Flusher is implemented by writers that buffer output.
type Flusher interface {
	Flush() error
}

// TUI is the scene. Elements and reactives are independent lists: a
// reactive that is never added as an element still takes focus, it just
// never draws.
type TUI struct {
	out io.Writer

	mu        sync.RWMutex
	elements  []Element
	reactives []Reactive
	groups    map[string]*Group

	// Focus state; only meaningful for reactive scenes.
	reactive bool
	nextKey  uint8
	prevKey  uint8
	index    int
}

// New returns a static scene: it renders but ignores key and mouse events.
func New(out io.Writer) *TUI {
	return &TUI{
		out:    out,
		groups: make(map[string]*Group),
	}
}

// NewReactive returns a scene that routes input to its reactives and
// cycles focus on next and prev.
func NewReactive(out io.Writer, next, prev uint8) *TUI {
	t := New(out)
	t.reactive = true
	t.nextKey = next
	t.prevKey = prev
	return t
}

// Add appends elements to the draw list.
func (t *TUI) Add(elems ...Element) {
	t.mu.Lock()
	t.elements = append(t.elements, elems...)
	t.mu.Unlock()
}

// Remove removes an element from the draw list.
// Returns true if the element was found and removed.
func (t *TUI) Remove(e Element) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	var ok bool
	t.elements, ok = without(t.elements, e)
	return ok
}

// AddReactive appends reactives to the focus list.
func (t *TUI) AddReactive(rs ...Reactive) {
	t.mu.Lock()
	t.reactives = append(t.reactives, rs...)
	t.mu.Unlock()
}

// RemoveReactive removes a reactive from the focus list.
func (t *TUI) RemoveReactive(r Reactive) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	var ok bool
	t.reactives, ok = without(t.reactives, r)
	return ok
}

// Elements returns a snapshot of the draw list.
func (t *TUI) Elements() []Element {
	t.mu.RLock()
	defer t.mu.RUnlock()
	out := make([]Element, len(t.elements))
	copy(out, t.elements)
	return out
}

// Reactives returns a snapshot of the focus list.
func (t *TUI) Reactives() []Reactive {
	t.mu.RLock()
	defer t.mu.RUnlock()
	out := make([]Reactive, len(t.reactives))
	copy(out, t.reactives)
	return out
}

// Group returns the named group, creating it on first use.
func (t *TUI) Group(name string) *Group {
	t.mu.Lock()
	defer t.mu.Unlock()
	g, ok := t.groups[name]
	if !ok {
		g = NewGroup(name)
		t.groups[name] = g
	}
	return g
}

type layer struct {
	elem    Element
	z       int
	visible bool
}

// Update draws one frame. Z and visibility are read once per element at
// the start of the frame, so changes made while drawing apply next frame.
func (t *TUI) Update() error {
	elems := t.Elements()

	layers := make([]layer, len(elems))
	for i, e := range elems {
		layers[i] = layer{elem: e, z: e.Z(), visible: e.Visible()}
	}
	sort.SliceStable(layers, func(i, j int) bool {
		return layers[i].z < layers[j].z
	})

	buf := AcquireBuffer()
	defer ReleaseBuffer(buf)

	flusher, _ := t.out.(Flusher)
	var errs []error
	for _, l := range layers {
		if !l.visible {
			continue
		}
		buf.Reset()
		l.elem.Draw(buf)
		if buf.Len() == 0 {
			continue
		}
		if _, err := t.out.Write(buf.Bytes()); err != nil {
			errs = append(errs, fmt.Errorf("writing frame: %w", err))
			continue
		}
		if flusher != nil {
			if err := flusher.Flush(); err != nil {
				errs = append(errs, fmt.Errorf("flushing frame: %w", err))
			}
		}
	}
	return errors.Join(errs...)
}
