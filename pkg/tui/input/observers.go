// ABOUTME: Observer interfaces and func adapters for decoded input events.
// ABOUTME: Also the built-in exit, reload and debug cursor observers.

package input

import (
	"io"

	"github.com/mauromedda/charflow-go/pkg/tui/key"
	"github.com/mauromedda/charflow-go/pkg/tui/terminal"
)

// KeyObserver receives every decoded key event.
type KeyObserver interface {
	HandleKey(key.Event)
}

// MouseObserver receives every decoded mouse event in terminal coordinates.
type MouseObserver interface {
	HandleMouse(key.MouseEvent)
}

// KeyFunc adapts a function to KeyObserver.
type KeyFunc func(key.Event)

// HandleKey calls f(e).
func (f KeyFunc) HandleKey(e key.Event) { f(e) }

// MouseFunc adapts a function to MouseObserver.
type MouseFunc func(key.MouseEvent)

// HandleMouse calls f(e).
func (f MouseFunc) HandleMouse(e key.MouseEvent) { f(e) }

// ExitObserver calls p.Exit on Ctrl+C.
func ExitObserver(p *Pipeline) KeyObserver {
	return KeyFunc(func(e key.Event) {
		if e.Code == key.CtrlC {
			p.Exit()
		}
	})
}

// ReloadObserver calls p.Reload on Ctrl+L.
func ReloadObserver(p *Pipeline) KeyObserver {
	return KeyFunc(func(e key.Event) {
		if e.Code == key.CtrlL {
			p.Reload()
		}
	})
}

// CursorMarker draws a "+" wherever the mouse moves.
func CursorMarker(t terminal.Terminal) MouseObserver {
	return MouseFunc(func(e key.MouseEvent) {
		if e.Code != key.MouseMove {
			return
		}
		_, _ = io.WriteString(t, terminal.MoveTo(int(e.X), int(e.Y))+"+")
		_ = t.Flush()
	})
}
