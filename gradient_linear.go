package rast

import "github.com/gogpu/rast/internal/fetch"

// LinearGradient is a paint that interpolates colors along the axis from
// (X0, Y0) to (X1, Y1) in device space.
type LinearGradient struct {
	X0, Y0 float64 // Start point
	X1, Y1 float64 // End point

	stops  []ColorStop
	extend ExtendMode

	lut   []uint8
	dirty bool
}

// NewLinearGradient creates a linear gradient along the given axis.
func NewLinearGradient(x0, y0, x1, y1 float64) *LinearGradient {
	return &LinearGradient{X0: x0, Y0: y0, X1: x1, Y1: y1}
}

// AddColorStop appends a color stop and returns the gradient for
// chaining. Offsets should be in non-decreasing order in [0, 1].
func (g *LinearGradient) AddColorStop(offset float64, c RGBA) *LinearGradient {
	g.stops = append(g.stops, ColorStop{Offset: offset, Color: c})
	g.dirty = true
	return g
}

// SetExtend sets the extend mode and returns the gradient for chaining.
func (g *LinearGradient) SetExtend(m ExtendMode) *LinearGradient {
	g.extend = m
	return g
}

// Stops returns the gradient's color stops.
func (g *LinearGradient) Stops() []ColorStop { return g.stops }

func (g *LinearGradient) fetcher() fetch.Fetcher {
	if len(g.stops) == 0 {
		return fetch.Solid(0, 0, 0, 0)
	}
	if g.dirty || g.lut == nil {
		g.lut = compileLUT(g.lut, g.stops)
		g.dirty = false
	}
	return fetch.Linear(
		float32(g.X0), float32(g.Y0),
		float32(g.X1), float32(g.Y1),
		g.lut, fetchExtend(g.extend),
	)
}

func (g *LinearGradient) paintMarker() {}
