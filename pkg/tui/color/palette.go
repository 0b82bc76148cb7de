// ABOUTME: Built-in named colors and a swappable global palette
// ABOUTME: Palette maps names to colors; Current/SetPalette swap it atomically

package color

import (
	"strings"
	"sync/atomic"
)

var (
	Yellow      = RGB(0xFF, 0xCC, 0x00)
	Orange      = RGB(0xFF, 0xB0, 0x00)
	Orange75    = RGB(0xCC, 0x91, 0x0D)
	Orange50    = RGB(0x9A, 0x73, 0x1B)
	Lime        = RGB(0x33, 0xFF, 0x00)
	Green       = RGB(0x2D, 0xE0, 0x00)
	Green75     = RGB(0x2F, 0xB5, 0x0D)
	Green50     = RGB(0x31, 0x8B, 0x1B)
	White       = RGB(0xF6, 0xF8, 0xFF)
	LightGrey   = RGB(0xDF, 0xE3, 0xED)
	LightGrey75 = RGB(0xB4, 0xB7, 0xBF)
	LightGrey50 = RGB(0x8A, 0x8C, 0x91)
	Black       = RGB(0x1F, 0x1F, 0x1F)
	Grey        = RGB(0x35, 0x35, 0x35)
)

// Palette maps lower-case names to colors.
type Palette map[string]Color

// DefaultPalette returns the built-in colors keyed by snake_case name.
func DefaultPalette() Palette {
	return Palette{
		"yellow":        Yellow,
		"orange":        Orange,
		"orange_75":     Orange75,
		"orange_50":     Orange50,
		"lime":          Lime,
		"green":         Green,
		"green_75":      Green75,
		"green_50":      Green50,
		"white":         White,
		"light_grey":    LightGrey,
		"light_grey_75": LightGrey75,
		"light_grey_50": LightGrey50,
		"black":         Black,
		"grey":          Grey,
	}
}

// Get returns the named color, or None when the name is unknown.
func (p Palette) Get(name string) Color {
	return p[strings.ToLower(name)]
}

// Merge returns a copy of p with overrides applied on top.
func (p Palette) Merge(overrides Palette) Palette {
	out := make(Palette, len(p)+len(overrides))
	for k, v := range p {
		out[k] = v
	}
	for k, v := range overrides {
		out[strings.ToLower(k)] = v
	}
	return out
}

// shades lists the derived variants of a base color and how far each is
// mixed toward Grey.
var shades = []struct {
	suffix string
	t      float64
}{
	{"_75", 0.25},
	{"_50", 0.5},
}

// WithShades returns a copy of overrides in which every overridden base
// color that has shades in DefaultPalette also gets its "_75" and "_50"
// shades, blended toward Grey. Shades named explicitly in overrides win.
func WithShades(overrides Palette) Palette {
	defaults := DefaultPalette()
	out := make(Palette, len(overrides))
	for name, c := range overrides {
		out[strings.ToLower(name)] = c
	}
	for name, c := range overrides {
		name = strings.ToLower(name)
		for _, sh := range shades {
			shade := name + sh.suffix
			if _, known := defaults[shade]; !known {
				continue
			}
			if _, explicit := out[shade]; explicit {
				continue
			}
			out[shade] = c.Blend(Grey, sh.t)
		}
	}
	return out
}

var current atomic.Pointer[Palette]

func init() {
	p := DefaultPalette()
	current.Store(&p)
}

// Current returns the active palette. Never nil.
func Current() Palette {
	return *current.Load()
}

// SetPalette atomically replaces the active palette.
func SetPalette(p Palette) {
	current.Store(&p)
}
