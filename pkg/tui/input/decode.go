// ABOUTME: Byte-at-a-time decoder for keys and X10/normal mouse reports.
// ABOUTME: ESC [ M plus three bytes is a mouse event; every other byte is a key.

package input

import "github.com/mauromedda/charflow-go/pkg/tui/key"

// mouseBias is added by the terminal to the coordinate bytes of a mouse report.
const mouseBias = 32

// decoder turns raw bytes into key and mouse events. It buffers at most the
// two-byte prefix ESC [ while deciding whether a mouse report follows.
type decoder struct {
	pending []byte
	// next returns the next follow-up byte, or false when none arrived
	// within the follow-up wait.
	next    func() (byte, bool)
	onKey   func(key.Event)
	onMouse func(key.MouseEvent)
}

// feed consumes one byte.
func (d *decoder) feed(b byte) {
	switch len(d.pending) {
	case 0:
		if b == key.Escape {
			d.pending = append(d.pending, b)
			return
		}
		d.onKey(key.Event{Code: b})
	case 1:
		if b == '[' {
			d.pending = append(d.pending, b)
			return
		}
		d.flush()
		d.feed(b)
	default:
		if b == 'M' {
			d.pending = d.pending[:0]
			d.onMouse(d.readMouse())
			return
		}
		d.flush()
		d.feed(b)
	}
}

// flush emits any buffered prefix bytes as individual key events.
func (d *decoder) flush() {
	for _, b := range d.pending {
		d.onKey(key.Event{Code: b})
	}
	d.pending = d.pending[:0]
}

// readMouse reads the button, column and row bytes. Missing bytes count as
// zero; coordinates saturate at zero instead of wrapping.
func (d *decoder) readMouse() key.MouseEvent {
	var raw [3]byte
	for i := range raw {
		if b, ok := d.next(); ok {
			raw[i] = b
		}
	}
	return key.MouseEvent{
		Code: raw[0],
		X:    unbias(raw[1]),
		Y:    unbias(raw[2]),
	}
}

func unbias(b byte) uint8 {
	if b < mouseBias {
		return 0
	}
	return b - mouseBias
}
