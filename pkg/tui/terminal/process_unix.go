// ABOUTME: Unix window size query for ProcessTerminal via TIOCGWINSZ.
// ABOUTME: Falls back to x/term when the ioctl reports a zero size.

//go:build unix

package terminal

import (
	"os"

	"golang.org/x/sys/unix"
	"golang.org/x/term"
)

func size(f *os.File) (width, height int, err error) {
	ws, err := unix.IoctlGetWinsize(int(f.Fd()), unix.TIOCGWINSZ)
	if err == nil && ws.Col > 0 && ws.Row > 0 {
		return int(ws.Col), int(ws.Row), nil
	}
	return term.GetSize(int(f.Fd()))
}
