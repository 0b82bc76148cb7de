// ABOUTME: Virtual screen for render tests, backed by a vt10x emulator
// ABOUTME: Feed it frame bytes and read back cell contents by 1-based coordinates

package vtscreen

import (
	"io"
	"strings"

	"github.com/hinshun/vt10x"
)

// Screen is an emulated terminal of fixed size.
type Screen struct {
	vt            vt10x.Terminal
	width, height int
}

// New returns a blank width x height screen.
func New(width, height int) *Screen {
	return &Screen{
		vt:     vt10x.New(vt10x.WithWriter(io.Discard), vt10x.WithSize(width, height)),
		width:  width,
		height: height,
	}
}

// Write feeds terminal output to the emulator.
func (s *Screen) Write(p []byte) (int, error) {
	return s.vt.Write(p)
}

// Rune returns the character at column x, row y (both 1-based).
func (s *Screen) Rune(x, y int) rune {
	if x < 1 || y < 1 || x > s.width || y > s.height {
		return 0
	}
	s.vt.Lock()
	defer s.vt.Unlock()
	return s.vt.Cell(x-1, y-1).Char
}

// Background returns the background color at (x, y) packed as 0xRRGGBB,
// or -1 for the terminal default.
func (s *Screen) Background(x, y int) int {
	if x < 1 || y < 1 || x > s.width || y > s.height {
		return -1
	}
	s.vt.Lock()
	defer s.vt.Unlock()
	bg := s.vt.Cell(x-1, y-1).BG
	if bg == vt10x.DefaultBG || bg == vt10x.DefaultFG {
		return -1
	}
	return int(bg)
}

// Text returns n cells of row y starting at column x, with unset cells as
// spaces.
func (s *Screen) Text(x, y, n int) string {
	var b strings.Builder
	for i := range n {
		r := s.Rune(x+i, y)
		if r == 0 {
			r = ' '
		}
		b.WriteRune(r)
	}
	return b.String()
}

// Row returns row y with trailing spaces trimmed.
func (s *Screen) Row(y int) string {
	return strings.TrimRight(s.Text(1, y, s.width), " ")
}
