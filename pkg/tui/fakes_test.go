// ABOUTME: Recording fakes for scene tests: elements that log draws, reactives that log input
// ABOUTME: Each fake guards its own state the way real widgets do

package tui

import (
	"sync"

	"github.com/mauromedda/charflow-go/pkg/tui/color"
	"github.com/mauromedda/charflow-go/pkg/tui/key"
)

type drawLog struct {
	mu    sync.Mutex
	names []string
}

func (l *drawLog) add(name string) {
	l.mu.Lock()
	l.names = append(l.names, name)
	l.mu.Unlock()
}

func (l *drawLog) take() []string {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := l.names
	l.names = nil
	return out
}

type mockElement struct {
	mu     sync.RWMutex
	name   string
	z      int
	hidden bool
	x, y   int
	text   string
	log    *drawLog
	onDraw func()
}

func (m *mockElement) Draw(out *RenderBuffer) {
	m.mu.RLock()
	name, x, y, text := m.name, m.x, m.y, m.text
	onDraw := m.onDraw
	m.mu.RUnlock()

	if m.log != nil {
		m.log.add(name)
	}
	if text != "" {
		out.Row(x, y, color.White, color.Grey, text)
	}
	if onDraw != nil {
		onDraw()
	}
}

func (m *mockElement) Z() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.z
}

func (m *mockElement) setZ(z int) {
	m.mu.Lock()
	m.z = z
	m.mu.Unlock()
}

func (m *mockElement) Visible() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return !m.hidden
}

func (m *mockElement) SetVisible(v bool) {
	m.mu.Lock()
	m.hidden = !v
	m.mu.Unlock()
}

type mockReactive struct {
	mu       sync.RWMutex
	name     string
	rect     Rect
	disabled bool
	selected bool
	keys     []key.Event
	mice     []key.MouseEvent
	onKey    func(key.Event)
	onMouse  func(key.MouseEvent)
}

func (m *mockReactive) HandleKey(e key.Event) {
	m.mu.Lock()
	m.keys = append(m.keys, e)
	cb := m.onKey
	m.mu.Unlock()
	if cb != nil {
		cb(e)
	}
}

func (m *mockReactive) HandleMouse(e key.MouseEvent) {
	m.mu.Lock()
	m.mice = append(m.mice, e)
	cb := m.onMouse
	m.mu.Unlock()
	if cb != nil {
		cb(e)
	}
}

func (m *mockReactive) Bounds() Rect {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.rect
}

func (m *mockReactive) SetSelected(s bool) {
	m.mu.Lock()
	m.selected = s
	m.mu.Unlock()
}

func (m *mockReactive) Selected() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.selected
}

func (m *mockReactive) Enabled() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return !m.disabled
}

func (m *mockReactive) SetEnabled(e bool) {
	m.mu.Lock()
	m.disabled = !e
	m.mu.Unlock()
}

func (m *mockReactive) keyCount() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.keys)
}

func (m *mockReactive) mouseEvents() []key.MouseEvent {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]key.MouseEvent, len(m.mice))
	copy(out, m.mice)
	return out
}
