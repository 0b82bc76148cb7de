// ABOUTME: Tests for RGB colors, hex parsing and escape sequence output
// ABOUTME: Verifies unset colors emit nothing and Force always resets first

package color

import (
	"errors"
	"testing"
)

func TestFGBG(t *testing.T) {
	t.Parallel()

	c := RGB(255, 204, 0)
	if got, want := c.FG(), "\x1b[38;2;255;204;0m"; got != want {
		t.Errorf("FG() = %q, want %q", got, want)
	}
	if got, want := c.BG(), "\x1b[48;2;255;204;0m"; got != want {
		t.Errorf("BG() = %q, want %q", got, want)
	}
}

func TestUnsetEmitsNothing(t *testing.T) {
	t.Parallel()

	if None.IsSet() {
		t.Fatal("zero Color should be unset")
	}
	if None.FG() != "" || None.BG() != "" {
		t.Errorf("unset color emitted %q / %q", None.FG(), None.BG())
	}
	if got := None.String(); got != "default" {
		t.Errorf("String() = %q, want default", got)
	}
}

func TestForce(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		fg, bg Color
		want   string
	}{
		{name: "both", fg: RGB(1, 2, 3), bg: RGB(4, 5, 6), want: "\x1b[0m\x1b[48;2;4;5;6m\x1b[38;2;1;2;3m"},
		{name: "fg only", fg: RGB(1, 2, 3), want: "\x1b[0m\x1b[38;2;1;2;3m"},
		{name: "neither", want: "\x1b[0m"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := Force(tt.fg, tt.bg); got != tt.want {
				t.Errorf("Force() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestHex(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input   string
		want    Color
		wantErr bool
	}{
		{input: "#ffcc00", want: Yellow},
		{input: "#1F1F1F", want: Black},
		{input: "#fff", want: RGB(255, 255, 255)},
		{input: "ffcc00", wantErr: true},
		{input: "#zzzzzz", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			t.Parallel()
			got, err := Hex(tt.input)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidColor) {
					t.Fatalf("Hex(%q) error = %v, want ErrInvalidColor", tt.input, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Hex(%q) unexpected error: %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("Hex(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestString(t *testing.T) {
	t.Parallel()

	if got := Orange50.String(); got != "#9a731b" {
		t.Errorf("String() = %q, want #9a731b", got)
	}
}

func TestBlend(t *testing.T) {
	t.Parallel()

	if got := Yellow.Blend(Grey, 0); got != Yellow {
		t.Errorf("Blend(t=0) = %v, want %v", got, Yellow)
	}
	if got := Yellow.Blend(Grey, 1); got != Grey {
		t.Errorf("Blend(t=1) = %v, want %v", got, Grey)
	}
	if got := None.Blend(Grey, 0.5); got != Grey {
		t.Errorf("unset Blend = %v, want %v", got, Grey)
	}
	mid := Black.Blend(White, 0.5)
	if !mid.IsSet() || mid == Black || mid == White {
		t.Errorf("midpoint blend = %v, want a distinct set color", mid)
	}
}

func TestWithShades(t *testing.T) {
	t.Parallel()

	got := WithShades(Palette{"Lime": Yellow, "light_grey_75": Black, "accent": Orange})

	tests := []struct {
		name string
		want Color
	}{
		{"lime", Yellow},
		{"light_grey_75", Black},
		{"accent", Orange},
	}
	for _, tt := range tests {
		if got[tt.name] != tt.want {
			t.Errorf("%s = %v, want %v", tt.name, got[tt.name], tt.want)
		}
	}
	if _, ok := got["lime_75"]; ok {
		t.Error("lime has no shades in the default palette")
	}
	if _, ok := got["accent_50"]; ok {
		t.Error("unknown base should not get shades")
	}
	if _, ok := got["light_grey_50"]; ok {
		t.Error("overriding a shade must not derive siblings")
	}

	shaded := WithShades(Palette{"green": Yellow})
	if shaded["green_75"] != Yellow.Blend(Grey, 0.25) || shaded["green_50"] != Yellow.Blend(Grey, 0.5) {
		t.Errorf("green shades = %v %v", shaded["green_75"], shaded["green_50"])
	}
	if shaded["green_75"] == shaded["green_50"] {
		t.Error("75 and 50 shades should differ")
	}
}

func TestPalette(t *testing.T) {
	p := DefaultPalette()
	if got := p.Get("ORANGE_50"); got != Orange50 {
		t.Errorf("Get(ORANGE_50) = %v, want %v", got, Orange50)
	}
	if got := p.Get("missing"); got.IsSet() {
		t.Errorf("Get(missing) = %v, want unset", got)
	}

	merged := p.Merge(Palette{"Accent": Lime})
	if merged.Get("accent") != Lime {
		t.Error("Merge should add lower-cased override")
	}
	if _, ok := p["accent"]; ok {
		t.Error("Merge must not modify the receiver")
	}

	orig := Current()
	t.Cleanup(func() { SetPalette(orig) })
	SetPalette(merged)
	if Current().Get("accent") != Lime {
		t.Error("SetPalette did not take effect")
	}
}
