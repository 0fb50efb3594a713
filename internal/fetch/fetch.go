// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package fetch implements paint-source fetchers: given device pixel
// coordinates, a fetcher produces premultiplied RGBA colors. Fetchers are
// compiled once per draw from the public paint types and write whole
// spans, so the per-pixel dispatch is a single switch on the fetcher
// kind rather than an interface call.
package fetch

// Kind discriminates the fetcher variants.
type Kind uint8

const (
	KindSolid Kind = iota
	KindLinear
	KindRadial
	KindSweep
	KindPattern
)

// ExtendMode selects how gradients and patterns sample outside their
// defined domain.
type ExtendMode uint8

const (
	// ExtendPad clamps to the nearest edge value.
	ExtendPad ExtendMode = iota
	// ExtendRepeat tiles the domain.
	ExtendRepeat
	// ExtendReflect mirrors every other period.
	ExtendReflect
)

// Filter selects the pattern sampling filter.
type Filter uint8

const (
	// FilterNearest rounds to the nearest source pixel.
	FilterNearest Filter = iota
	// FilterBilinear blends the four surrounding source pixels.
	FilterBilinear
)

// Image is a borrowed premultiplied RGBA pixel buffer sampled by the
// pattern fetcher.
type Image struct {
	Pix    []uint8
	W, H   int
	Stride int
}

// Fetcher is the compiled form of a paint source. The zero value is a
// transparent solid.
type Fetcher struct {
	kind Kind

	// Solid premultiplied pixel (opacity already folded in).
	sr, sg, sb, sa uint8

	// Gradient state: a 256-entry premultiplied RGBA table plus the
	// extend mode applied to the parametric position.
	lut    []uint8
	extend ExtendMode

	// Linear: t(x,y) = tx*x + ty*y + t0.
	tx, ty, t0 float32

	// Radial: two-circle parameters. cdx/cdy is c1-c0, dr is r1-r0,
	// qa the quadratic's leading coefficient (cd·cd - dr²).
	cx, cy, cdx, cdy, r0, dr, qa float32
	qaLinear                     bool // |qa| below stabilization threshold

	// Sweep: the relative angle is wrapped into one turn toward the
	// sweep direction, then scaled by aScale = 1/(end-start).
	aStart, aScale float32
	aSpanNeg       bool

	// Pattern.
	img              Image
	inv              [6]float32 // pre-inverted device→source affine
	extendX, extendY ExtendMode
	filter           Filter

	// opacity is a 0..256 multiplier applied to fetched spans.
	opacity uint32
}

// Solid returns a fetcher producing the constant premultiplied pixel.
func Solid(r, g, b, a uint8) Fetcher {
	return Fetcher{kind: KindSolid, sr: r, sg: g, sb: b, sa: a, opacity: 256}
}

// Linear returns a fetcher projecting pixels onto the axis p0→p1 and
// sampling lut. A degenerate axis collapses to the first table entry.
func Linear(x0, y0, x1, y1 float32, lut []uint8, extend ExtendMode) Fetcher {
	f := Fetcher{kind: KindLinear, lut: lut, extend: extend, opacity: 256}
	dx := x1 - x0
	dy := y1 - y0
	d2 := dx*dx + dy*dy
	if d2 > 0 {
		f.tx = dx / d2
		f.ty = dy / d2
		f.t0 = -(x0*f.tx + y0*f.ty)
	}
	return f
}

// radialEpsilon bounds the leading quadratic coefficient below which the
// radial solve switches to its linear form. Near-concentric focal
// geometry makes the quadratic ill-conditioned well before qa reaches
// zero exactly.
const radialEpsilon = 1e-6

// Radial returns a fetcher for the two-circle radial gradient from
// (cx0,cy0,r0) to (cx1,cy1,r1).
func Radial(cx0, cy0, r0, cx1, cy1, r1 float32, lut []uint8, extend ExtendMode) Fetcher {
	f := Fetcher{kind: KindRadial, lut: lut, extend: extend, opacity: 256}
	f.cx = cx0
	f.cy = cy0
	f.cdx = cx1 - cx0
	f.cdy = cy1 - cy0
	f.r0 = r0
	f.dr = r1 - r0
	f.qa = f.cdx*f.cdx + f.cdy*f.cdy - f.dr*f.dr
	f.qaLinear = f.qa > -radialEpsilon && f.qa < radialEpsilon
	return f
}

// Sweep returns a fetcher mapping the angle around (cx,cy) from
// startAngle to endAngle (radians) onto lut.
func Sweep(cx, cy, startAngle, endAngle float32, lut []uint8, extend ExtendMode) Fetcher {
	f := Fetcher{kind: KindSweep, lut: lut, extend: extend, opacity: 256}
	f.cx = cx
	f.cy = cy
	f.aStart = startAngle
	span := endAngle - startAngle
	f.aSpanNeg = span < 0
	if span != 0 {
		f.aScale = 1 / span
	}
	return f
}

// Pattern returns a fetcher sampling img through the pre-inverted affine
// transform inv (device → source space).
func Pattern(img Image, inv [6]float32, extendX, extendY ExtendMode, filter Filter) Fetcher {
	return Fetcher{
		kind:    KindPattern,
		img:     img,
		inv:     inv,
		extendX: extendX,
		extendY: extendY,
		filter:  filter,
		opacity: 256,
	}
}

// SetOpacity scales every fetched pixel by op in [0,1].
func (f *Fetcher) SetOpacity(op float64) {
	if op >= 1 {
		f.opacity = 256
		return
	}
	if op <= 0 {
		f.opacity = 0
		return
	}
	f.opacity = uint32(op*256 + 0.5)
	if f.kind == KindSolid {
		// Fold into the constant pixel so solid spans stay a plain fill.
		f.sr = scale8(f.sr, f.opacity)
		f.sg = scale8(f.sg, f.opacity)
		f.sb = scale8(f.sb, f.opacity)
		f.sa = scale8(f.sa, f.opacity)
		f.opacity = 256
	}
}

// Opaque reports whether every pixel the fetcher can produce is fully
// opaque, enabling the full-coverage compositing fast path.
func (f *Fetcher) Opaque() bool {
	return f.kind == KindSolid && f.sa == 255
}

// SolidPixel returns the constant pixel of a solid fetcher.
func (f *Fetcher) SolidPixel() (r, g, b, a uint8) {
	return f.sr, f.sg, f.sb, f.sa
}

// Kind returns the fetcher variant.
func (f *Fetcher) Kind() Kind { return f.kind }

// Span writes n premultiplied RGBA pixels for the device row starting at
// (x, y) into dst, which must hold at least 4n bytes.
func (f *Fetcher) Span(dst []uint8, x, y, n int) {
	if n <= 0 {
		return
	}
	switch f.kind {
	case KindSolid:
		f.solidSpan(dst, n)
	case KindLinear:
		f.linearSpan(dst, x, y, n)
	case KindRadial:
		f.radialSpan(dst, x, y, n)
	case KindSweep:
		f.sweepSpan(dst, x, y, n)
	case KindPattern:
		f.patternSpan(dst, x, y, n)
	}
	if f.opacity < 256 {
		for i := 0; i < 4*n; i++ {
			dst[i] = scale8(dst[i], f.opacity)
		}
	}
}

// Fetch returns the premultiplied color of a single device pixel. The
// span path is the hot one; Fetch exists for point queries and tests.
func (f *Fetcher) Fetch(x, y int) (r, g, b, a uint8) {
	var px [4]uint8
	f.Span(px[:], x, y, 1)
	return px[0], px[1], px[2], px[3]
}

func (f *Fetcher) solidSpan(dst []uint8, n int) {
	for i := 0; i < n; i++ {
		o := i * 4
		dst[o] = f.sr
		dst[o+1] = f.sg
		dst[o+2] = f.sb
		dst[o+3] = f.sa
	}
}

// scale8 multiplies a channel by a 0..256 factor.
func scale8(c uint8, s uint32) uint8 {
	return uint8(uint32(c) * s >> 8)
}
