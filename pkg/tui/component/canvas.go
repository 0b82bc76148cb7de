// ABOUTME: Canvas composites z-ordered sprites into a clipped cell grid and paints it as rows
// ABOUTME: Sprites use signed offsets; an unset sprite background keeps whatever lies beneath

package component

import (
	"sort"
	"strings"
	"sync"

	"github.com/mauromedda/charflow-go/pkg/tui"
	"github.com/mauromedda/charflow-go/pkg/tui/color"
	"github.com/mauromedda/charflow-go/pkg/tui/width"
	"github.com/rivo/uniseg"
)

// Sprite is a block of text placed on a Canvas. Its position is relative
// to the canvas origin and may be negative or past the far edge; the
// part outside the canvas is clipped.
type Sprite struct {
	mu     sync.RWMutex
	x, y   int
	z      int
	look   string
	fg, bg color.Color
}

// NewSprite returns a sprite drawing look, which may span several lines.
func NewSprite(x, y, z int, look string) *Sprite {
	return &Sprite{x: x, y: y, z: z, look: look}
}

func (s *Sprite) SetPosition(x, y int) {
	s.mu.Lock()
	s.x, s.y = x, y
	s.mu.Unlock()
}

func (s *Sprite) Position() (x, y int) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.x, s.y
}

// Move shifts the sprite by (dx, dy).
func (s *Sprite) Move(dx, dy int) {
	s.mu.Lock()
	s.x += dx
	s.y += dy
	s.mu.Unlock()
}

func (s *Sprite) SetLook(look string) {
	s.mu.Lock()
	s.look = look
	s.mu.Unlock()
}

func (s *Sprite) SetZ(z int) {
	s.mu.Lock()
	s.z = z
	s.mu.Unlock()
}

// SetColors sets the sprite colors. An unset fg falls back to the canvas
// foreground; an unset bg shows the cell underneath.
func (s *Sprite) SetColors(fg, bg color.Color) {
	s.mu.Lock()
	s.fg, s.bg = fg, bg
	s.mu.Unlock()
}

type spriteState struct {
	x, y, z int
	look    string
	fg, bg  color.Color
}

func (s *Sprite) snapshot() spriteState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return spriteState{x: s.x, y: s.y, z: s.z, look: s.look, fg: s.fg, bg: s.bg}
}

// Canvas is a rectangle of freely placed sprites. It is also a Reactive so
// it can take focus and receive clicks.
type Canvas struct {
	drawable
	reactive

	mu      sync.RWMutex
	sprites []*Sprite
	fg, bg  color.Color
}

// NewCanvas returns an empty, visible, enabled canvas.
func NewCanvas(bounds tui.Rect) *Canvas {
	return &Canvas{
		drawable: newDrawable(0),
		reactive: newReactive(bounds),
	}
}

// SetColors sets the default foreground and the background of empty cells.
func (c *Canvas) SetColors(fg, bg color.Color) {
	c.mu.Lock()
	c.fg, c.bg = fg, bg
	c.mu.Unlock()
}

func (c *Canvas) Add(sprites ...*Sprite) {
	c.mu.Lock()
	c.sprites = append(c.sprites, sprites...)
	c.mu.Unlock()
}

func (c *Canvas) Remove(s *Sprite) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i, sp := range c.sprites {
		if sp == s {
			c.sprites = append(c.sprites[:i], c.sprites[i+1:]...)
			return true
		}
	}
	return false
}

// cell is one grid position. A zero-width glyph marks the right half of a
// wide glyph to its left.
type cell struct {
	glyph  string
	fg, bg color.Color
}

type grid struct {
	w, h  int
	cells [][]cell
}

func newGrid(w, h int) *grid {
	g := &grid{w: w, h: h, cells: make([][]cell, h)}
	for y := range g.cells {
		row := make([]cell, w)
		for x := range row {
			row[x].glyph = " "
		}
		g.cells[y] = row
	}
	return g
}

// put writes a glyph of cols cells at (x, y), clearing any wide glyph it
// partially covers.
func (g *grid) put(x, y, cols int, glyph string, fg, bg color.Color) {
	row := g.cells[y]
	if x+cols > g.w {
		glyph, cols = " ", 1
	}
	for i := x; i < x+cols; i++ {
		if row[i].glyph == "" && i > 0 {
			row[i-1].glyph = " "
		}
		if i+1 < g.w && row[i+1].glyph == "" {
			row[i+1].glyph = " "
		}
	}
	if !bg.IsSet() {
		bg = row[x].bg
	}
	row[x] = cell{glyph: glyph, fg: fg, bg: bg}
	for i := x + 1; i < x+cols; i++ {
		row[i] = cell{fg: fg, bg: bg}
	}
}

func (g *grid) paint(s spriteState) {
	for dy, line := range strings.Split(s.look, "\n") {
		y := s.y + dy
		if y < 0 || y >= g.h {
			continue
		}
		x := s.x
		state := -1
		for len(line) > 0 && x < g.w {
			var cluster string
			cluster, line, _, state = uniseg.FirstGraphemeClusterInString(line, state)
			cols := width.String(cluster)
			if cols == 0 {
				continue
			}
			if x >= 0 {
				g.put(x, y, cols, cluster, s.fg, s.bg)
			} else if x+cols > 0 {
				// Left half clipped: keep the visible cells blank.
				for i := 0; i < x+cols; i++ {
					g.put(i, y, 1, " ", s.fg, s.bg)
				}
			}
			x += cols
		}
	}
}

func (c *Canvas) Draw(out *tui.RenderBuffer) {
	c.mu.RLock()
	bounds, _ := c.geometry()
	states := make([]spriteState, len(c.sprites))
	for i, s := range c.sprites {
		states[i] = s.snapshot()
	}
	fg, bg := c.fg, c.bg
	c.mu.RUnlock()

	if bounds.Width <= 0 || bounds.Height <= 0 {
		return
	}

	sort.SliceStable(states, func(i, j int) bool { return states[i].z < states[j].z })
	g := newGrid(bounds.Width, bounds.Height)
	for _, s := range states {
		g.paint(s)
	}

	for y, row := range g.cells {
		out.MoveTo(bounds.X, bounds.Y+y)
		var curFG, curBG color.Color
		styled := false
		for _, cl := range row {
			if cl.glyph == "" {
				continue
			}
			cellFG, cellBG := pick(cl.fg, fg), pick(cl.bg, bg)
			if !styled || cellFG != curFG || cellBG != curBG {
				out.Style(cellFG, cellBG)
				curFG, curBG = cellFG, cellBG
				styled = true
			}
			out.WriteString(cl.glyph)
		}
		out.WriteString(color.Reset)
	}
}

func pick(c, fallback color.Color) color.Color {
	if c.IsSet() {
		return c
	}
	return fallback
}
