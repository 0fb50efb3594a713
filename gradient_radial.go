package rast

import "github.com/gogpu/rast/internal/fetch"

// RadialGradient is a paint that interpolates colors between two circles:
// the focal circle (X0, Y0, R0) and the end circle (X1, Y1, R1). With
// coincident centers and R0 = 0 this is a simple center-out radial fill.
type RadialGradient struct {
	X0, Y0, R0 float64 // Focal circle
	X1, Y1, R1 float64 // End circle

	stops  []ColorStop
	extend ExtendMode

	lut   []uint8
	dirty bool
}

// NewRadialGradient creates a radial gradient between two circles.
func NewRadialGradient(x0, y0, r0, x1, y1, r1 float64) *RadialGradient {
	return &RadialGradient{X0: x0, Y0: y0, R0: r0, X1: x1, Y1: y1, R1: r1}
}

// NewSimpleRadialGradient creates a center-out radial gradient with a
// point focus at the center.
func NewSimpleRadialGradient(cx, cy, r float64) *RadialGradient {
	return NewRadialGradient(cx, cy, 0, cx, cy, r)
}

// AddColorStop appends a color stop and returns the gradient for
// chaining. Offsets should be in non-decreasing order in [0, 1].
func (g *RadialGradient) AddColorStop(offset float64, c RGBA) *RadialGradient {
	g.stops = append(g.stops, ColorStop{Offset: offset, Color: c})
	g.dirty = true
	return g
}

// SetExtend sets the extend mode and returns the gradient for chaining.
func (g *RadialGradient) SetExtend(m ExtendMode) *RadialGradient {
	g.extend = m
	return g
}

// Stops returns the gradient's color stops.
func (g *RadialGradient) Stops() []ColorStop { return g.stops }

func (g *RadialGradient) fetcher() fetch.Fetcher {
	if len(g.stops) == 0 {
		return fetch.Solid(0, 0, 0, 0)
	}
	if g.dirty || g.lut == nil {
		g.lut = compileLUT(g.lut, g.stops)
		g.dirty = false
	}
	return fetch.Radial(
		float32(g.X0), float32(g.Y0), float32(g.R0),
		float32(g.X1), float32(g.Y1), float32(g.R1),
		g.lut, fetchExtend(g.extend),
	)
}

func (g *RadialGradient) paintMarker() {}
