package rast

import "github.com/gogpu/rast/internal/fetch"

// Filter selects the pattern sampling filter.
type Filter int

const (
	// FilterNearest rounds to the nearest source pixel.
	FilterNearest Filter = iota
	// FilterBilinear blends the four surrounding source pixels.
	FilterBilinear
)

// String returns a string representation of the filter.
func (f Filter) String() string {
	switch f {
	case FilterNearest:
		return "Nearest"
	case FilterBilinear:
		return "Bilinear"
	default:
		return "Unknown"
	}
}

// Pattern is a paint that samples a source pixmap through an affine
// transform, with independent horizontal and vertical extend modes.
type Pattern struct {
	Source *Pixmap

	transform Matrix
	inverse   Matrix
	valid     bool // inverse exists

	extendX ExtendMode
	extendY ExtendMode
	filter  Filter
}

// NewPattern creates a pattern sampling src with the identity transform.
func NewPattern(src *Pixmap) *Pattern {
	return &Pattern{
		Source:    src,
		transform: Identity(),
		inverse:   Identity(),
		valid:     true,
	}
}

// SetTransform sets the source-to-device transform and returns the
// pattern for chaining. A singular transform makes the pattern fetch
// transparent.
func (p *Pattern) SetTransform(m Matrix) *Pattern {
	p.transform = m
	p.inverse, p.valid = m.Invert()
	return p
}

// Transform returns the source-to-device transform.
func (p *Pattern) Transform() Matrix { return p.transform }

// SetExtend sets the horizontal and vertical extend modes and returns
// the pattern for chaining.
func (p *Pattern) SetExtend(x, y ExtendMode) *Pattern {
	p.extendX = x
	p.extendY = y
	return p
}

// SetFilter sets the sampling filter and returns the pattern for
// chaining.
func (p *Pattern) SetFilter(f Filter) *Pattern {
	p.filter = f
	return p
}

func (p *Pattern) fetcher() fetch.Fetcher {
	if p.Source == nil || p.Source.width == 0 || p.Source.height == 0 || !p.valid {
		return fetch.Solid(0, 0, 0, 0)
	}
	img := fetch.Image{
		Pix:    p.Source.pix,
		W:      p.Source.width,
		H:      p.Source.height,
		Stride: p.Source.Stride(),
	}
	inv := [6]float32{
		float32(p.inverse.A), float32(p.inverse.B),
		float32(p.inverse.C), float32(p.inverse.D),
		float32(p.inverse.E), float32(p.inverse.F),
	}
	filter := fetch.FilterNearest
	if p.filter == FilterBilinear {
		filter = fetch.FilterBilinear
	}
	return fetch.Pattern(img, inv, fetchExtend(p.extendX), fetchExtend(p.extendY), filter)
}

func (p *Pattern) paintMarker() {}
