// ABOUTME: Tree paints an expanded folder outline into a fixed rectangle
// ABOUTME: Long labels end in a continuation glyph; a dotted last row marks hidden rows below

package component

import (
	"strings"
	"sync"

	"github.com/mauromedda/charflow-go/pkg/tui"
	"github.com/mauromedda/charflow-go/pkg/tui/color"
	"github.com/mauromedda/charflow-go/pkg/tui/layout"
	"github.com/mauromedda/charflow-go/pkg/tui/width"
)

// Tree draws the children of Root, one row each, clipped to its rectangle.
type Tree struct {
	drawable

	mu    sync.RWMutex
	rect  tui.Rect
	root  *layout.Folder
	lines layout.TreeLines
	icons layout.Icons

	lineColor, labelColor, bg color.Color
}

// NewTree returns a visible Tree using SimpleTreeLines and DefaultIcons.
func NewTree(rect tui.Rect, root *layout.Folder) *Tree {
	return &Tree{
		drawable: newDrawable(0),
		rect:     rect,
		root:     root,
		lines:    layout.SimpleTreeLines,
		icons:    layout.DefaultIcons(),
	}
}

// SetColors sets the connector color, the label color and the background.
func (t *Tree) SetColors(lineColor, labelColor, bg color.Color) {
	t.mu.Lock()
	t.lineColor, t.labelColor, t.bg = lineColor, labelColor, bg
	t.mu.Unlock()
}

func (t *Tree) SetLines(lines layout.TreeLines) {
	t.mu.Lock()
	t.lines = lines
	t.mu.Unlock()
}

func (t *Tree) SetIcons(icons layout.Icons) {
	t.mu.Lock()
	t.icons = icons
	t.mu.Unlock()
}

// Update runs fn on the model with the widget locked, so a frame never
// sees a half-applied change.
func (t *Tree) Update(fn func(root *layout.Folder)) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.root != nil {
		fn(t.root)
	}
}

// Reveal opens the folders leading to labels that fuzzy-match query and
// returns the number of matches.
func (t *Tree) Reveal(query string) int {
	n := 0
	t.Update(func(root *layout.Folder) { n = root.Reveal(query) })
	return n
}

func (t *Tree) Draw(out *tui.RenderBuffer) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	r := t.rect
	if r.Width <= 0 || r.Height <= 0 {
		return
	}
	var rows []layout.Row
	if t.root != nil {
		rows = t.root.Expand(t.lines, t.icons)
	}
	overflow := len(rows) > r.Height

	for i := range r.Height {
		p := painter{out: out, left: r.Width, bg: t.bg}
		out.MoveTo(r.X, r.Y+i)
		switch {
		case i >= len(rows):
		case overflow && i == r.Height-1:
			p.segment(t.lineColor, t.continued(rows[i].Prefix))
		default:
			t.paintRow(&p, rows[i])
		}
		p.pad()
		out.WriteString(color.Reset)
	}
}

// paintRow writes prefix, icon, separator and label, shortening the label
// when the row is too wide.
func (t *Tree) paintRow(p *painter, row layout.Row) {
	used := width.String(row.Prefix) + width.String(row.Icon.Glyph) + width.String(row.Separator)
	label := row.Label
	if used+width.String(label) > p.left {
		cont := t.lines.HorizontalContinuation
		label = width.Truncate(label, max(p.left-used-width.String(cont), 0)) + cont
	}

	p.segment(t.lineColor, row.Prefix)
	p.segment(pick(row.Icon.Color, t.labelColor), row.Icon.Glyph)
	p.segment(t.lineColor, row.Separator)
	p.segment(t.labelColor, label)
}

// continued rewrites a prefix for the last visible row when rows are
// hidden below it.
func (t *Tree) continued(prefix string) string {
	var pairs []string
	for _, g := range []string{t.lines.VerticalBuffer, t.lines.MiddleEntry} {
		if g != "" {
			pairs = append(pairs, g, t.lines.VerticalContinuation)
		}
	}
	return strings.NewReplacer(pairs...).Replace(prefix)
}

// painter writes colored segments into a row of limited width.
type painter struct {
	out  *tui.RenderBuffer
	left int
	bg   color.Color
}

func (p *painter) segment(fg color.Color, s string) {
	if p.left <= 0 || s == "" {
		return
	}
	s = width.Truncate(s, p.left)
	p.out.Style(fg, p.bg)
	p.out.WriteString(s)
	p.left -= width.String(s)
}

func (p *painter) pad() {
	p.out.Style(color.None, p.bg)
	p.out.WriteString(strings.Repeat(" ", max(p.left, 0)))
	p.left = 0
}
