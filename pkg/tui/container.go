// ABOUTME: Group is a named set of elements and reactives toggled together
// ABOUTME: Thread-safe via RWMutex; membership is independent of the scene

package tui

import "sync"

// Group holds named references to elements and reactives so an
// application can show, hide, enable or disable them in bulk. Adding to a
// group does not add to the scene.
type Group struct {
	name string

	mu        sync.RWMutex
	elements  []Element
	reactives []Reactive
}

// NewGroup creates an empty Group.
func NewGroup(name string) *Group {
	return &Group{name: name}
}

// Name returns the group's name.
func (g *Group) Name() string {
	return g.name
}

// Add appends elements to the group.
func (g *Group) Add(elems ...Element) {
	g.mu.Lock()
	g.elements = append(g.elements, elems...)
	g.mu.Unlock()
}

// AddReactive appends reactives to the group.
func (g *Group) AddReactive(rs ...Reactive) {
	g.mu.Lock()
	g.reactives = append(g.reactives, rs...)
	g.mu.Unlock()
}

// Remove removes an element from the group.
// Returns true if the element was found and removed.
func (g *Group) Remove(e Element) bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	var ok bool
	g.elements, ok = without(g.elements, e)
	return ok
}

// RemoveReactive removes a reactive from the group.
func (g *Group) RemoveReactive(r Reactive) bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	var ok bool
	g.reactives, ok = without(g.reactives, r)
	return ok
}

// Elements returns a snapshot of the group's elements.
func (g *Group) Elements() []Element {
	g.mu.RLock()
	defer g.mu.RUnlock()
	out := make([]Element, len(g.elements))
	copy(out, g.elements)
	return out
}

// Reactives returns a snapshot of the group's reactives.
func (g *Group) Reactives() []Reactive {
	g.mu.RLock()
	defer g.mu.RUnlock()
	out := make([]Reactive, len(g.reactives))
	copy(out, g.reactives)
	return out
}

// SetVisible sets visibility on every element in the group.
func (g *Group) SetVisible(visible bool) {
	for _, e := range g.Elements() {
		e.SetVisible(visible)
	}
}

// SetEnabled sets the enabled flag on every reactive in the group.
func (g *Group) SetEnabled(enabled bool) {
	for _, r := range g.Reactives() {
		r.SetEnabled(enabled)
	}
}

// without removes the first occurrence of v from s, preserving order.
func without[T comparable](s []T, v T) ([]T, bool) {
	for i, item := range s {
		if item == v {
			return append(s[:i:i], s[i+1:]...), true
		}
	}
	return s, false
}
