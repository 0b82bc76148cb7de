// ABOUTME: Escape sequences emitted on startup, shutdown, resize and per frame
// ABOUTME: MoveTo builds 1-based cursor positioning without fmt

package terminal

import "strconv"

const (
	Reset          = "\x1b[0m"
	Home           = "\x1b[H"
	ClearScreen    = "\x1b[J"
	ClearLine      = "\x1b[K"
	HideCursor     = "\x1b[?25l"
	ShowCursor     = "\x1b[?25h"
	MouseTrackOn   = "\x1b[?1003h"
	MouseTrackOff  = "\x1b[?1003l"
	ClearAll       = Reset + Home + ClearScreen
	StartupScreen  = ClearAll + HideCursor + MouseTrackOn
	ShutdownScreen = ClearAll + ShowCursor + MouseTrackOff
)

// MoveTo returns the sequence placing the cursor at column x, row y
// (both 1-based).
func MoveTo(x, y int) string {
	return string(AppendMoveTo(make([]byte, 0, 12), x, y))
}

// AppendMoveTo appends the MoveTo sequence to buf.
func AppendMoveTo(buf []byte, x, y int) []byte {
	buf = append(buf, "\x1b["...)
	buf = strconv.AppendInt(buf, int64(y), 10)
	buf = append(buf, ';')
	buf = strconv.AppendInt(buf, int64(x), 10)
	return append(buf, 'H')
}
