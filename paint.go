package rast

import "github.com/gogpu/rast/internal/raster"

// FillRule determines how self-intersecting paths are filled.
type FillRule int

const (
	// FillRuleNonZero fills where the winding number is non-zero.
	FillRuleNonZero FillRule = iota
	// FillRuleEvenOdd fills where an edge-crossing count is odd.
	FillRuleEvenOdd
)

// String returns a string representation of the fill rule.
func (r FillRule) String() string {
	switch r {
	case FillRuleNonZero:
		return "NonZero"
	case FillRuleEvenOdd:
		return "EvenOdd"
	default:
		return "Unknown"
	}
}

func rasterRule(r FillRule) raster.FillRule {
	if r == FillRuleEvenOdd {
		return raster.FillEvenOdd
	}
	return raster.FillNonZero
}

// Paint is a source of color for fill operations. Implementations are
// Solid, *LinearGradient, *RadialGradient, *SweepGradient and *Pattern.
type Paint interface {
	paintMarker()
}

// Solid is a single-color paint.
type Solid struct {
	Color RGBA
}

// NewSolid creates a solid paint with the given color.
func NewSolid(c RGBA) Solid {
	return Solid{Color: c}
}

func (Solid) paintMarker() {}
