package rast

import (
	"image/color"
	"testing"
)

// TestPremultiplyRoundTrip checks unpremultiply(premultiply(x)) stays
// within the 8-bit rounding tolerance. Low alphas quantize straight
// channels away by construction, so the straight-side check uses alphas
// where the representation still resolves channel steps.
func TestPremultiplyRoundTrip(t *testing.T) {
	channels := []uint8{0, 1, 3, 17, 64, 127, 128, 200, 254, 255}
	for _, a := range []uint8{64, 128, 200, 254, 255} {
		for _, c := range channels {
			pr, pg, pb, pa := Premultiply(c, c, c, a)
			ur, ug, ub, ua := Unpremultiply(pr, pg, pb, pa)
			if ua != a {
				t.Fatalf("alpha changed: %d -> %d", a, ua)
			}
			for _, u := range []uint8{ur, ug, ub} {
				d := int(u) - int(c)
				if d < -2 || d > 2 {
					t.Fatalf("round trip c=%d a=%d: got %d (off by %d)", c, a, u, d)
				}
			}
		}
	}
}

// TestUnpremultiplyRoundTrip checks the reverse direction on valid
// premultiplied pixels (channel <= alpha), which holds for every
// nonzero alpha.
func TestUnpremultiplyRoundTrip(t *testing.T) {
	for a := 1; a < 256; a += 7 {
		for c := 0; c <= a; c += 5 {
			ur, _, _, _ := Unpremultiply(uint8(c), uint8(c), uint8(c), uint8(a))
			pr, _, _, pa := Premultiply(ur, ur, ur, uint8(a))
			if pa != uint8(a) {
				t.Fatalf("alpha changed: %d -> %d", a, pa)
			}
			d := int(pr) - c
			if d < -2 || d > 2 {
				t.Fatalf("premul round trip c=%d a=%d: got %d", c, a, pr)
			}
		}
	}
}

// TestUnpremultiplyZeroAlpha checks the degenerate pixel maps to
// transparent black.
func TestUnpremultiplyZeroAlpha(t *testing.T) {
	r, g, b, a := Unpremultiply(10, 20, 30, 0)
	if r != 0 || g != 0 || b != 0 || a != 0 {
		t.Errorf("zero-alpha unpremultiply = (%d,%d,%d,%d), want zeros", r, g, b, a)
	}
}

// TestRGBAPremultiply checks the float color path against known bytes.
func TestRGBAPremultiply(t *testing.T) {
	tests := []struct {
		name string
		c    RGBA
		want [4]uint8
	}{
		{"opaque red", Red, [4]uint8{255, 0, 0, 255}},
		{"half red", RGBA{R: 1, A: 0.5}, [4]uint8{128, 0, 0, 128}},
		{"transparent", Transparent, [4]uint8{0, 0, 0, 0}},
		{"clamped overbright", RGBA{R: 2, G: -1, A: 1}, [4]uint8{255, 0, 0, 255}},
		{"clamped alpha", RGBA{R: 1, A: 1.5}, [4]uint8{255, 0, 0, 255}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, g, b, a := tt.c.Premultiply()
			got := [4]uint8{r, g, b, a}
			if got != tt.want {
				t.Errorf("Premultiply() = %v, want %v", got, tt.want)
			}
		})
	}
}

// TestFromColorRoundTrip converts through the standard library color
// type and back.
func TestFromColorRoundTrip(t *testing.T) {
	orig := color.NRGBA{R: 200, G: 100, B: 50, A: 128}
	c := FromColor(orig)
	back := c.Color().(color.NRGBA)

	diff := func(a, b uint8) int {
		d := int(a) - int(b)
		if d < 0 {
			d = -d
		}
		return d
	}
	if diff(back.R, orig.R) > 1 || diff(back.G, orig.G) > 1 ||
		diff(back.B, orig.B) > 1 || diff(back.A, orig.A) > 1 {
		t.Errorf("round trip %v -> %v", orig, back)
	}
}

// TestNamedColors spot-checks the exported palette.
func TestNamedColors(t *testing.T) {
	if r, g, b, a := White.Premultiply(); r != 255 || g != 255 || b != 255 || a != 255 {
		t.Errorf("White = (%d,%d,%d,%d)", r, g, b, a)
	}
	if _, _, _, a := Transparent.Premultiply(); a != 0 {
		t.Errorf("Transparent alpha = %d", a)
	}
	if r, g, b, _ := Magenta.Premultiply(); r != 255 || g != 0 || b != 255 {
		t.Errorf("Magenta = (%d,%d,%d)", r, g, b)
	}
}
