package rast

import (
	"math"

	"github.com/gogpu/rast/internal/fetch"
)

// SweepGradient is a paint that interpolates colors by angle around a
// center point, from StartAngle to EndAngle in radians.
type SweepGradient struct {
	CX, CY     float64 // Center point
	StartAngle float64 // Start angle in radians
	EndAngle   float64 // End angle in radians

	stops  []ColorStop
	extend ExtendMode

	lut   []uint8
	dirty bool
}

// NewSweepGradient creates a full-turn sweep gradient around (cx, cy).
func NewSweepGradient(cx, cy float64) *SweepGradient {
	return &SweepGradient{CX: cx, CY: cy, StartAngle: 0, EndAngle: 2 * math.Pi}
}

// SetAngles sets the angular range in radians and returns the gradient
// for chaining.
func (g *SweepGradient) SetAngles(start, end float64) *SweepGradient {
	g.StartAngle = start
	g.EndAngle = end
	return g
}

// AddColorStop appends a color stop and returns the gradient for
// chaining. Offsets should be in non-decreasing order in [0, 1].
func (g *SweepGradient) AddColorStop(offset float64, c RGBA) *SweepGradient {
	g.stops = append(g.stops, ColorStop{Offset: offset, Color: c})
	g.dirty = true
	return g
}

// SetExtend sets the extend mode and returns the gradient for chaining.
func (g *SweepGradient) SetExtend(m ExtendMode) *SweepGradient {
	g.extend = m
	return g
}

// Stops returns the gradient's color stops.
func (g *SweepGradient) Stops() []ColorStop { return g.stops }

func (g *SweepGradient) fetcher() fetch.Fetcher {
	if len(g.stops) == 0 {
		return fetch.Solid(0, 0, 0, 0)
	}
	if g.dirty || g.lut == nil {
		g.lut = compileLUT(g.lut, g.stops)
		g.dirty = false
	}
	return fetch.Sweep(
		float32(g.CX), float32(g.CY),
		float32(g.StartAngle), float32(g.EndAngle),
		g.lut, fetchExtend(g.extend),
	)
}

func (g *SweepGradient) paintMarker() {}
