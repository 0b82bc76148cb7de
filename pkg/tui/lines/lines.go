// ABOUTME: Box-drawing character sets used for borders
// ABOUTME: Light, Heavy and Double share one struct shape

package lines

// Set is one family of box-drawing glyphs.
type Set struct {
	Horizontal  string
	Vertical    string
	TopLeft     string
	TopRight    string
	BottomLeft  string
	BottomRight string
}

var (
	Light = Set{
		Horizontal:  "─",
		Vertical:    "│",
		TopLeft:     "┌",
		TopRight:    "┐",
		BottomLeft:  "└",
		BottomRight: "┘",
	}
	Heavy = Set{
		Horizontal:  "━",
		Vertical:    "┃",
		TopLeft:     "┏",
		TopRight:    "┓",
		BottomLeft:  "┗",
		BottomRight: "┛",
	}
	Double = Set{
		Horizontal:  "═",
		Vertical:    "║",
		TopLeft:     "╔",
		TopRight:    "╗",
		BottomLeft:  "╚",
		BottomRight: "╝",
	}
)

// ByName returns the named set ("light", "heavy", "double").
func ByName(name string) (Set, bool) {
	switch name {
	case "light":
		return Light, true
	case "heavy":
		return Heavy, true
	case "double":
		return Double, true
	}
	return Set{}, false
}
