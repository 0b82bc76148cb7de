// ABOUTME: Key and mouse event types delivered by the input pipeline
// ABOUTME: Codes are single raw bytes; Name and Parse map them to readable labels

package key

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrUnknownKey is returned by Parse for names it cannot map to a code.
var ErrUnknownKey = errors.New("unknown key")

// Event is one decoded keyboard byte.
type Event struct {
	Code uint8
}

// MouseEvent is one decoded mouse report. X and Y are 1-based terminal
// cells with the protocol bias already removed, or widget-local offsets
// after hit-testing.
type MouseEvent struct {
	Code uint8
	X, Y uint8
}

// Control codes.
const (
	CtrlC     uint8 = 0x03 // exit
	CtrlL     uint8 = 0x0c // reload
	Tab       uint8 = 0x09
	Enter     uint8 = 0x0d
	Escape    uint8 = 0x1b
	Space     uint8 = 0x20
	Backspace uint8 = 0x7f
)

// Mouse report codes as sent with any-event tracking (?1003h).
const (
	MouseLeftPress   uint8 = 32
	MouseMiddlePress uint8 = 33
	MouseRightPress  uint8 = 34
	MouseRelease     uint8 = 35
	MouseLeftDrag    uint8 = 64
	MouseMiddleDrag  uint8 = 65
	MouseRightDrag   uint8 = 66
	MouseMove        uint8 = 67
)

var codeNames = map[uint8]string{
	CtrlC:     "Ctrl+C",
	CtrlL:     "Ctrl+L",
	Tab:       "Tab",
	Enter:     "Enter",
	Escape:    "Escape",
	Space:     "Space",
	Backspace: "Backspace",
}

var mouseNames = map[uint8]string{
	MouseLeftPress:   "LeftPress",
	MouseMiddlePress: "MiddlePress",
	MouseRightPress:  "RightPress",
	MouseRelease:     "Release",
	MouseLeftDrag:    "LeftDrag",
	MouseMiddleDrag:  "MiddleDrag",
	MouseRightDrag:   "RightDrag",
	MouseMove:        "Move",
}

// Name returns a readable label for a key code: named control keys,
// Ctrl+<letter> for the remaining C0 codes, the character itself for
// printable ASCII and a hex literal otherwise.
func Name(code uint8) string {
	if name, ok := codeNames[code]; ok {
		return name
	}
	switch {
	case code >= 0x01 && code <= 0x1a:
		return "Ctrl+" + string(rune('A'+code-1))
	case code > Space && code < Backspace:
		return string(rune(code))
	}
	return fmt.Sprintf("0x%02x", code)
}

// String returns the key name.
func (e Event) String() string {
	return Name(e.Code)
}

// MouseName returns a readable label for a mouse report code.
func MouseName(code uint8) string {
	if name, ok := mouseNames[code]; ok {
		return name
	}
	return fmt.Sprintf("0x%02x", code)
}

// String returns "<name>@x,y" for debug display.
func (m MouseEvent) String() string {
	return fmt.Sprintf("%s@%d,%d", MouseName(m.Code), m.X, m.Y)
}

// IsPress reports whether m is a button press.
func (m MouseEvent) IsPress() bool {
	return m.Code >= MouseLeftPress && m.Code <= MouseRightPress
}

// IsDrag reports whether m is a motion report with a button held.
func (m MouseEvent) IsDrag() bool {
	return m.Code >= MouseLeftDrag && m.Code <= MouseRightDrag
}

// Parse maps a key name to its code. It accepts a single printable
// character ("J"), a named key ("enter", "tab"), "ctrl+<letter>", and
// decimal or 0x-prefixed numeric codes. Letter case matters only for
// single characters.
func Parse(name string) (uint8, error) {
	if len(name) == 1 && name[0] >= Space && name[0] < Backspace {
		return name[0], nil
	}

	lower := strings.ToLower(strings.TrimSpace(name))
	for code, n := range codeNames {
		if strings.ToLower(n) == lower {
			return code, nil
		}
	}
	switch lower {
	case "esc":
		return Escape, nil
	case "return":
		return Enter, nil
	}

	if letter, ok := strings.CutPrefix(lower, "ctrl+"); ok {
		if len(letter) == 1 && letter[0] >= 'a' && letter[0] <= 'z' {
			return letter[0] - 'a' + 1, nil
		}
		return 0, fmt.Errorf("%w: %q", ErrUnknownKey, name)
	}

	if n, err := strconv.ParseUint(lower, 0, 8); err == nil {
		return uint8(n), nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownKey, name)
}
