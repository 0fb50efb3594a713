// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package raster

import "math"

// Edge is a directed, vertically clipped line segment prepared for
// scanline conversion. Edges live in the EdgeStorage arena and are linked
// through Next, first into per-scanline buckets and later into the
// rasterizer's active list.
type Edge struct {
	// X is the FDot16 x position at Y0. The rasterizer advances it
	// incrementally by DxDy per scanline.
	X int32

	// DxDy is the FDot16 x advance per full scanline.
	DxDy int32

	// Y0 is the FDot8 top y, inclusive. Y0 < Y1 after normalization.
	Y0 int32

	// Y1 is the FDot8 bottom y, exclusive.
	Y1 int32

	// Sign is the winding direction: +1 if the original segment pointed
	// down, -1 if it was flipped during normalization.
	Sign int32

	// Next links edges inside the arena. -1 terminates a list.
	Next int32
}

// EdgeBuilder converts flattened polygon contours into clipped edges in an
// EdgeStorage. Degenerate input (horizontal segments, NaN or infinite
// coordinates, segments clipped away entirely) is dropped silently; such
// geometry contributes no coverage and never reaches the rasterizer.
type EdgeBuilder struct {
	storage *EdgeStorage
	width   int
	height  int
}

// NewEdgeBuilder creates a builder appending into storage, clipping
// vertically against [0, height) and horizontally against [0, width].
func NewEdgeBuilder(storage *EdgeStorage, width, height int) *EdgeBuilder {
	return &EdgeBuilder{storage: storage, width: width, height: height}
}

// SetSize updates the clip extents.
func (b *EdgeBuilder) SetSize(width, height int) {
	b.width = width
	b.height = height
}

// Build appends edges for every contour of the polygon. vertices holds
// interleaved x,y pairs; contourCounts gives the vertex count of each
// contour in order. A nil contourCounts means a single contour spanning
// all vertices. Contours are closed implicitly: the last vertex connects
// back to the first.
//
// If the counts do not sum to the vertex count the whole vertex array is
// treated as one contour. Build reports whether that fallback was taken.
func (b *EdgeBuilder) Build(vertices []float64, contourCounts []uint32) (fallback bool) {
	n := len(vertices) / 2
	if n < 2 {
		return false
	}

	if contourCounts == nil {
		b.buildContour(vertices)
		return false
	}

	total := 0
	for _, c := range contourCounts {
		total += int(c)
	}
	if total != n {
		// Malformed counts: safest visible behavior is one contour.
		b.buildContour(vertices)
		return true
	}

	off := 0
	for _, c := range contourCounts {
		end := off + int(c)*2
		b.buildContour(vertices[off:end])
		off = end
	}
	return false
}

// buildContour emits the cyclic edge chain of one contour.
func (b *EdgeBuilder) buildContour(verts []float64) {
	n := len(verts) / 2
	if n < 2 {
		return
	}
	for i := 0; i < n; i++ {
		j := i + 1
		if j == n {
			j = 0
		}
		b.addEdge(verts[2*i], verts[2*i+1], verts[2*j], verts[2*j+1])
	}
}

// addEdge normalizes, clips and appends a single segment.
func (b *EdgeBuilder) addEdge(x0, y0, x1, y1 float64) {
	if !isFinite(x0) || !isFinite(y0) || !isFinite(x1) || !isFinite(y1) {
		return
	}
	if y0 == y1 {
		// Horizontal: no coverage contribution.
		return
	}

	sign := int32(1)
	if y0 > y1 {
		x0, x1 = x1, x0
		y0, y1 = y1, y0
		sign = -1
	}

	clipBot := float64(b.height)
	if y1 <= 0 || y0 >= clipBot {
		return
	}

	dxdy := (x1 - x0) / (y1 - y0)
	if y0 < 0 {
		x0 += dxdy * -y0
		y0 = 0
	}
	if y1 > clipBot {
		x1 += dxdy * (clipBot - y1)
		y1 = clipBot
	}

	b.clipX(x0, y0, x1, y1, dxdy, sign)
}

// clipX clips one segment horizontally against [0, width]. Portions
// outside are replaced by vertical carriers on the border they crossed,
// which keeps the winding seen inside the target intact while bounding
// every x coordinate that reaches the FDot16 conversion.
func (b *EdgeBuilder) clipX(x0, y0, x1, y1, dxdy float64, sign int32) {
	lo := 0.0
	hi := float64(b.width)

	switch {
	case x0 <= lo && x1 <= lo:
		b.appendEdge(lo, y0, y1, 0, sign)
		return
	case x0 >= hi && x1 >= hi:
		b.appendEdge(hi, y0, y1, 0, sign)
		return
	case x0 >= lo && x0 <= hi && x1 >= lo && x1 <= hi:
		b.appendEdge(x0, y0, y1, dxdy, sign)
		return
	}

	// The segment crosses a border: carrier, sloped middle, carrier.
	// Either carrier may be empty.
	ya, yb := y0, y1
	xa := x0
	if x0 < lo {
		ya = y0 + (lo-x0)/dxdy
		xa = lo
	} else if x0 > hi {
		ya = y0 + (hi-x0)/dxdy
		xa = hi
	}
	if x1 < lo {
		yb = y0 + (lo-x0)/dxdy
	} else if x1 > hi {
		yb = y0 + (hi-x0)/dxdy
	}
	if ya < y0 {
		ya = y0
	}
	if yb > y1 {
		yb = y1
	}
	if yb < ya {
		yb = ya
	}

	if ya > y0 {
		b.appendEdge(xa, y0, ya, 0, sign)
	}
	b.appendEdge(x0+dxdy*(ya-y0), ya, yb, dxdy, sign)
	if yb < y1 {
		xb := lo
		if x1 > hi {
			xb = hi
		}
		b.appendEdge(xb, yb, y1, 0, sign)
	}
}

// maxEdgeSlope bounds |dx/dy| so its FDot16 form fits an int32.
const maxEdgeSlope = 1<<(31-fdot16Bits) - 1

// appendEdge snaps one horizontally clipped segment to fixed point and
// stores it.
func (b *EdgeBuilder) appendEdge(x0, y0, y1, dxdy float64, sign int32) {
	fy0 := floatToFDot8(y0)
	fy1 := floatToFDot8(y1)
	if fy0 >= fy1 {
		// Collapsed below subpixel resolution.
		return
	}

	if dxdy > maxEdgeSlope {
		dxdy = maxEdgeSlope
	} else if dxdy < -maxEdgeSlope {
		dxdy = -maxEdgeSlope
	}

	// Snap x to the quantized top y so the incremental walk starts from
	// the exact point the y rounding chose.
	xs := x0 + dxdy*(float64(fy0)/onePixel-y0)
	if xs < 0 {
		xs = 0
	} else if w := float64(b.width); xs > w {
		xs = w
	}

	b.storage.Append(Edge{
		X:    floatToFDot16(xs),
		DxDy: floatToFDot16(dxdy),
		Y0:   fy0,
		Y1:   fy1,
		Sign: sign,
	})
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
