// ABOUTME: 24-bit RGB colors and the escape sequences that apply them
// ABOUTME: The zero Color means "terminal default"; Force resets before applying

package color

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/lucasb-eyer/go-colorful"
)

// ErrInvalidColor is returned by Hex for strings that are not #rrggbb or #rgb.
var ErrInvalidColor = errors.New("invalid color")

// Color is an RGB triple. The zero value is unset and renders as the
// terminal's default color.
type Color struct {
	R, G, B uint8
	set     bool
}

// None is the unset color.
var None Color

// RGB returns a set Color.
func RGB(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b, set: true}
}

// Hex parses "#rrggbb" or "#rgb".
func Hex(s string) (Color, error) {
	if len(s) == 4 && s[0] == '#' {
		s = "#" + string([]byte{s[1], s[1], s[2], s[2], s[3], s[3]})
	}
	c, err := colorful.Hex(s)
	if err != nil {
		return None, fmt.Errorf("%w %q: %v", ErrInvalidColor, s, err)
	}
	r, g, b := c.RGB255()
	return RGB(r, g, b), nil
}

// IsSet reports whether c carries a color.
func (c Color) IsSet() bool {
	return c.set
}

// FG returns the truecolor foreground sequence, or "" for an unset color.
func (c Color) FG() string {
	if !c.set {
		return ""
	}
	return sgr("38", c)
}

// BG returns the truecolor background sequence, or "" for an unset color.
func (c Color) BG() string {
	if !c.set {
		return ""
	}
	return sgr("48", c)
}

// Blend mixes c toward other in Lab space; t=0 is c, t=1 is other.
// Unset inputs return the other operand unchanged.
func (c Color) Blend(other Color, t float64) Color {
	switch {
	case !c.set:
		return other
	case !other.set, t <= 0:
		return c
	case t >= 1:
		return other
	}
	mixed := toColorful(c).BlendLab(toColorful(other), t).Clamped()
	r, g, b := mixed.RGB255()
	return RGB(r, g, b)
}

// String returns "#rrggbb", or "default" for an unset color.
func (c Color) String() string {
	if !c.set {
		return "default"
	}
	return toColorful(c).Hex()
}

// Force resets all attributes, then applies bg and fg when set.
func Force(fg, bg Color) string {
	return Reset + bg.BG() + fg.FG()
}

// Reset is the SGR reset sequence.
const Reset = "\x1b[0m"

func sgr(kind string, c Color) string {
	buf := make([]byte, 0, 20)
	buf = append(buf, "\x1b["...)
	buf = append(buf, kind...)
	buf = append(buf, ";2;"...)
	buf = strconv.AppendUint(buf, uint64(c.R), 10)
	buf = append(buf, ';')
	buf = strconv.AppendUint(buf, uint64(c.G), 10)
	buf = append(buf, ';')
	buf = strconv.AppendUint(buf, uint64(c.B), 10)
	buf = append(buf, 'm')
	return string(buf)
}

func toColorful(c Color) colorful.Color {
	return colorful.Color{R: float64(c.R) / 255, G: float64(c.G) / 255, B: float64(c.B) / 255}
}
