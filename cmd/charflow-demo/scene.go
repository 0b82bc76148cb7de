// ABOUTME: The demo scene: tree, wrapped text, a box toggled by a button, a numbered column and a canvas
// ABOUTME: Colors come from the active palette so a config reload can restyle everything

package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/mauromedda/charflow-go/pkg/tui"
	"github.com/mauromedda/charflow-go/pkg/tui/color"
	"github.com/mauromedda/charflow-go/pkg/tui/component"
	"github.com/mauromedda/charflow-go/pkg/tui/key"
	"github.com/mauromedda/charflow-go/pkg/tui/layout"
	"github.com/mauromedda/charflow-go/pkg/tui/lines"
)

const lorem = "Lorem ipsum dolor sit amet, consectetur adipiscing elit. " +
	"Praesent sed lorem sit amet elit ullamcorper gravida ut vitae dolor. Cras."

const (
	iconElement = "element"
	buttonGroup = "buttons"
	hideKey     = 'H'
)

type demo struct {
	scene *tui.TUI

	tree    *component.Tree
	text    *component.TextBox
	box     *component.Box
	toggle  *component.Button
	fold    *component.Button
	numbers *component.Text
	canvas  *component.Canvas
	cursor  *component.Sprite

	palette color.Palette
	boxAlt  bool
	folded  bool
	hidden  bool
}

func sampleFolder() *layout.Folder {
	file := func() layout.Node {
		return &layout.Leaf{Name: "text_file.txt", Icon: iconElement}
	}
	open := func(name string, children ...layout.Node) *layout.Folder {
		f := layout.NewFolder(name, children...)
		f.Open = true
		return f
	}
	return open("main",
		layout.NewFolder("images"),
		file(),
		open("folder", file(), file()),
		file(),
		open("folder", file(), file(), file(), file()),
	)
}

func numberColumn(n int) string {
	rows := make([]string, n)
	for i := range rows {
		rows[i] = fmt.Sprintf("%2d", i)
		if i < 10 {
			rows[i] = fmt.Sprintf("-%d", i)
		}
	}
	return strings.Join(rows, "\n")
}

// newDemo builds the scene. Nothing is drawn until the first Update.
func newDemo(out io.Writer, next, prev uint8, palette color.Palette) *demo {
	d := &demo{
		scene:   tui.NewReactive(out, next, prev),
		tree:    component.NewTree(tui.Rect{X: 10, Y: 5, Width: 20, Height: 15}, sampleFolder()),
		text:    component.NewTextBox(tui.Rect{X: 35, Y: 5, Width: 20, Height: 15}, lorem),
		box:     component.NewBox(tui.Rect{X: 61, Y: 5, Width: 13, Height: 3}, lines.Heavy),
		toggle:  component.NewButton(tui.Rect{X: 61, Y: 9, Width: 13, Height: 2}, "This is a button."),
		fold:    component.NewButton(tui.Rect{X: 61, Y: 12, Width: 13, Height: 2}, "This is also a button!"),
		numbers: component.NewText(57, 5, numberColumn(15)),
		canvas:  component.NewCanvas(tui.Rect{X: 10, Y: 21, Width: 64, Height: 3}),
		cursor:  component.NewSprite(0, 1, 1, "*"),
	}

	d.tree.SetIcons(layout.Icons{
		layout.IconOpenFolder:   {Glyph: "v"},
		layout.IconClosedFolder: {Glyph: ">"},
		iconElement:             {Glyph: "#"},
	})
	d.canvas.Add(component.NewSprite(0, 0, 0, strings.Repeat("~", 64)), d.cursor)

	d.toggle.OnKey(func(e key.Event) {
		if e.Code == key.Enter {
			d.toggleBox()
		}
	})
	d.toggle.OnMouse(func(e key.MouseEvent) {
		if e.Code == key.MouseLeftPress {
			d.toggleBox()
		}
	})
	d.fold.OnKey(func(e key.Event) {
		if e.Code == key.Enter {
			d.toggleFold()
		}
	})
	d.fold.OnMouse(func(e key.MouseEvent) {
		if e.Code == key.MouseLeftPress {
			d.toggleFold()
		}
	})
	d.canvas.OnMouse(func(e key.MouseEvent) {
		if e.IsPress() || e.IsDrag() {
			d.cursor.SetPosition(int(e.X), int(e.Y))
		}
	})

	d.scene.Add(d.tree, d.text, d.box, d.toggle, d.fold, d.numbers, d.canvas)
	d.scene.AddReactive(d.toggle, d.fold, d.canvas)

	buttons := d.scene.Group(buttonGroup)
	buttons.Add(d.toggle, d.fold)
	buttons.AddReactive(d.toggle, d.fold)

	d.apply(palette)
	return d
}

// apply restyles every widget from p.
func (d *demo) apply(p color.Palette) {
	d.palette = p
	orange, grey, yellow := p.Get("orange"), p.Get("grey"), p.Get("yellow")

	d.tree.SetColors(color.None, orange, grey)
	d.text.SetColors(orange, grey)
	d.numbers.SetColors(orange, grey)
	for _, b := range []*component.Button{d.toggle, d.fold} {
		b.SetColors(color.None, grey)
		b.SetSelectedColors(yellow, p.Get("orange_50"))
	}
	d.canvas.SetColors(p.Get("green_50"), p.Get("black"))
	d.cursor.SetColors(p.Get("lime"), color.None)
	d.paintBox()
}

func (d *demo) paintBox() {
	bg := d.palette.Get("grey")
	if d.boxAlt {
		bg = d.palette.Get("orange_50")
	}
	d.box.SetColors(d.palette.Get("yellow"), bg)
}

func (d *demo) toggleBox() {
	d.boxAlt = !d.boxAlt
	d.paintBox()
}

// toggleFold collapses the whole tree, or reopens every folder.
func (d *demo) toggleFold() {
	d.folded = !d.folded
	d.tree.Update(func(root *layout.Folder) {
		if d.folded {
			root.Collapse()
			return
		}
		openAll(root)
	})
}

func openAll(f *layout.Folder) {
	f.Open = true
	for _, c := range f.Children {
		if sub, ok := c.(*layout.Folder); ok {
			openAll(sub)
		}
	}
}

// HandleKey hides or shows both buttons on hideKey. Hidden buttons are
// also disabled so focus skips them.
func (d *demo) HandleKey(e key.Event) {
	if e.Code != hideKey {
		return
	}
	d.hidden = !d.hidden
	g := d.scene.Group(buttonGroup)
	g.SetVisible(!d.hidden)
	g.SetEnabled(!d.hidden)
}
