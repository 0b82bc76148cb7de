// ABOUTME: Folder/leaf tree model and its expansion into outline rows
// ABOUTME: Rows carry connector prefix, icon, separator and label for a tree widget to paint

package layout

import "github.com/mauromedda/charflow-go/pkg/tui/color"

// Icon is a glyph drawn before a label.
type Icon struct {
	Color color.Color
	Glyph string
}

// Icons maps icon ids to icons. Unknown ids render as an empty icon.
type Icons map[string]Icon

// Icon ids used by DefaultIcons and NewFolder.
const (
	IconOpenFolder   = "open_folder"
	IconClosedFolder = "closed_folder"
	IconFile         = "file"
)

// DefaultIcons returns the built-in folder icons.
func DefaultIcons() Icons {
	return Icons{
		IconOpenFolder:   {Color: color.Orange, Glyph: "v"},
		IconClosedFolder: {Color: color.Orange, Glyph: ">"},
		IconFile:         {Color: color.LightGrey50, Glyph: "-"},
	}
}

// TreeLines are the connector glyphs of an outline.
type TreeLines struct {
	TopEntry               string
	MiddleEntry            string
	BottomEntry            string
	TopAndOnly             string
	VerticalBuffer         string
	HorizontalBuffer       string
	VerticalContinuation   string
	HorizontalContinuation string
}

// SimpleTreeLines is the default heavy-line connector set.
var SimpleTreeLines = TreeLines{
	TopEntry:               "┢",
	MiddleEntry:            "┣",
	BottomEntry:            "┗",
	TopAndOnly:             "┕",
	VerticalBuffer:         "┃",
	HorizontalBuffer:       "╸",
	VerticalContinuation:   "┇",
	HorizontalContinuation: "┅",
}

// Node is a *Folder or a *Leaf.
type Node interface {
	Label() string
	node()
}

// Leaf is a childless entry.
type Leaf struct {
	Name string
	Icon string
}

// Label returns the leaf's name.
func (l *Leaf) Label() string { return l.Name }

func (*Leaf) node() {}

// Folder is an entry with children. Closed folders hide their subtree.
type Folder struct {
	Name       string
	ClosedIcon string
	OpenIcon   string
	Open       bool
	Children   []Node
}

// NewFolder returns a closed folder using the default folder icons.
func NewFolder(name string, children ...Node) *Folder {
	return &Folder{
		Name:       name,
		ClosedIcon: IconClosedFolder,
		OpenIcon:   IconOpenFolder,
		Children:   children,
	}
}

// Label returns the folder's name.
func (f *Folder) Label() string { return f.Name }

func (*Folder) node() {}

func (f *Folder) icon() string {
	if f.Open {
		return f.OpenIcon
	}
	return f.ClosedIcon
}

// Row is one line of an expanded outline.
type Row struct {
	Prefix    string
	Icon      Icon
	Separator string
	Label     string
}

// Expand lists the rows under f. f itself produces no row; its children
// start at depth zero. Open folders are expanded recursively.
func (f *Folder) Expand(lines TreeLines, icons Icons) []Row {
	return f.expand(nil, "", lines, icons)
}

func (f *Folder) expand(rows []Row, indent string, lines TreeLines, icons Icons) []Row {
	n := len(f.Children)
	for i, child := range f.Children {
		last := i == n-1
		row := Row{
			Prefix:    indent + connector(lines, i, last),
			Separator: lines.HorizontalBuffer,
			Label:     child.Label(),
		}
		switch c := child.(type) {
		case *Leaf:
			row.Icon = icons[c.Icon]
			rows = append(rows, row)
		case *Folder:
			row.Icon = icons[c.icon()]
			rows = append(rows, row)
			if c.Open {
				nested := indent + lines.VerticalBuffer
				if last {
					nested = indent + " "
				}
				rows = c.expand(rows, nested, lines, icons)
			}
		}
	}
	return rows
}

func connector(lines TreeLines, i int, last bool) string {
	switch {
	case i == 0 && last:
		return lines.TopAndOnly
	case i == 0:
		return lines.TopEntry
	case last:
		return lines.BottomEntry
	default:
		return lines.MiddleEntry
	}
}
