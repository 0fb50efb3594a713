package rast

import "image/color"

// RGBA represents a straight-alpha color with components in [0, 1].
type RGBA struct {
	R, G, B, A float64
}

// RGB creates an opaque color from RGB components.
func RGB(r, g, b float64) RGBA {
	return RGBA{R: r, G: g, B: b, A: 1.0}
}

// Color converts RGBA to the standard color.Color interface.
func (c RGBA) Color() color.Color {
	return color.NRGBA{
		R: uint8(clamp255(c.R * 255)),
		G: uint8(clamp255(c.G * 255)),
		B: uint8(clamp255(c.B * 255)),
		A: uint8(clamp255(c.A * 255)),
	}
}

// FromColor converts a standard color.Color to RGBA.
func FromColor(c color.Color) RGBA {
	r, g, b, a := c.RGBA()
	if a == 0 {
		return RGBA{}
	}
	// color.Color returns premultiplied 16-bit channels.
	return RGBA{
		R: float64(r) / float64(a),
		G: float64(g) / float64(a),
		B: float64(b) / float64(a),
		A: float64(a) / 65535,
	}
}

// Premultiply converts the color to premultiplied 8-bit channels, the
// representation every compositing path operates on.
func (c RGBA) Premultiply() (r, g, b, a uint8) {
	ca := clamp01(c.A)
	r = uint8(clamp255(c.R*ca*255 + 0.5))
	g = uint8(clamp255(c.G*ca*255 + 0.5))
	b = uint8(clamp255(c.B*ca*255 + 0.5))
	a = uint8(clamp255(ca*255 + 0.5))
	return r, g, b, a
}

// Premultiply converts straight 8-bit channels to premultiplied ones.
func Premultiply(r, g, b, a uint8) (uint8, uint8, uint8, uint8) {
	return mul255(r, a), mul255(g, a), mul255(b, a), a
}

// Unpremultiply converts premultiplied 8-bit channels back to straight
// alpha. With a != 0 the round-trip through Premultiply is exact to
// within 8-bit rounding; a == 0 yields transparent black.
func Unpremultiply(r, g, b, a uint8) (uint8, uint8, uint8, uint8) {
	if a == 0 {
		return 0, 0, 0, 0
	}
	return div255by(r, a), div255by(g, a), div255by(b, a), a
}

// mul255 multiplies two channels with exact rounding.
func mul255(c, a uint8) uint8 {
	x := uint32(c) * uint32(a)
	return uint8(((x + 128) * 257) >> 16)
}

// div255by computes round(c*255/a) clamped to 255.
func div255by(c, a uint8) uint8 {
	v := (uint32(c)*255 + uint32(a)/2) / uint32(a)
	if v > 255 {
		return 255
	}
	return uint8(v)
}

func clamp255(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return v
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// Common colors.
var (
	Transparent = RGBA{}
	Black       = RGB(0, 0, 0)
	White       = RGB(1, 1, 1)
	Red         = RGB(1, 0, 0)
	Green       = RGB(0, 1, 0)
	Blue        = RGB(0, 0, 1)
	Yellow      = RGB(1, 1, 0)
	Cyan        = RGB(0, 1, 1)
	Magenta     = RGB(1, 0, 1)
)
