package rast

import (
	"sort"

	"github.com/gogpu/rast/internal/fetch"
)

// ExtendMode defines how gradients and patterns extend beyond their
// defined domain.
type ExtendMode int

const (
	// ExtendPad extends edge colors beyond bounds (default behavior).
	ExtendPad ExtendMode = iota
	// ExtendRepeat repeats the pattern.
	ExtendRepeat
	// ExtendReflect mirrors the pattern every other period.
	ExtendReflect
)

// String returns a string representation of the extend mode.
func (m ExtendMode) String() string {
	switch m {
	case ExtendPad:
		return "Pad"
	case ExtendRepeat:
		return "Repeat"
	case ExtendReflect:
		return "Reflect"
	default:
		return "Unknown"
	}
}

// ColorStop represents a color at a specific position in a gradient.
// Offsets are expected in non-decreasing order in [0, 1]; two stops at
// the same offset produce a hard color step.
type ColorStop struct {
	Offset float64 // Position in gradient, 0.0 to 1.0
	Color  RGBA    // Color at this position
}

// compileStops sorts the stops (stable, so duplicate offsets keep their
// step order) and premultiplies their colors for table building.
func compileStops(stops []ColorStop) []fetch.Stop {
	sorted := make([]ColorStop, len(stops))
	copy(sorted, stops)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Offset < sorted[j].Offset
	})

	out := make([]fetch.Stop, len(sorted))
	for i, s := range sorted {
		r, g, b, a := s.Color.Premultiply()
		out[i] = fetch.Stop{Offset: float32(s.Offset), R: r, G: g, B: b, A: a}
	}
	return out
}

// compileLUT (re)builds a gradient lookup table from stops, reusing the
// previous allocation when present.
func compileLUT(lut []uint8, stops []ColorStop) []uint8 {
	if lut == nil {
		lut = make([]uint8, 4*fetch.LUTSize)
	}
	fetch.BuildLUT(lut, compileStops(stops))
	return lut
}

func fetchExtend(m ExtendMode) fetch.ExtendMode {
	switch m {
	case ExtendRepeat:
		return fetch.ExtendRepeat
	case ExtendReflect:
		return fetch.ExtendReflect
	default:
		return fetch.ExtendPad
	}
}
