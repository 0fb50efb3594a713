// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package raster implements analytic scanline rasterization of flattened
// polygons.
//
// Coverage is computed exactly, without supersampling: every edge
// crossing a pixel row deposits two integer accumulators into the
// crossing cell, a cover delta (the subpixel height of the crossing,
// prefix-summed rightward so that columns right of the crossing see full
// coverage) and an area term (twice the trapezoid area between the edge
// and the pixel's left border, capturing the antialiased sliver). The
// per-pixel fill-rule resolve turns the two accumulators into an 8-bit
// alpha.
//
// All hot-path arithmetic is fixed point: FDot16 for incremental edge
// stepping, FDot8 subpixel cells. The scratch buffers are sized once per
// target and reused, so steady-state fills allocate nothing.
package raster

// FillRule selects how accumulated winding resolves to coverage.
type FillRule uint8

const (
	// FillNonZero paints pixels whose winding number is non-zero.
	FillNonZero FillRule = iota

	// FillEvenOdd paints pixels crossed by an odd number of edges,
	// with a triangular fold for smooth parity antialiasing.
	FillEvenOdd
)

// String returns the fill rule name.
func (f FillRule) String() string {
	switch f {
	case FillNonZero:
		return "NonZero"
	case FillEvenOdd:
		return "EvenOdd"
	default:
		return "Unknown"
	}
}

// SpanFunc receives one resolved scanline: alpha[i] is the coverage of
// pixel (x0+i, y). Alpha is only valid during the call; the buffer is
// reused for the next row.
type SpanFunc func(y, x0 int, alpha []uint8)

// Rasterizer drives the scanline loop over an EdgeStorage, accumulating
// cover/area cells and resolving them under a fill rule. One Rasterizer
// serves one target size at a time and must not be shared across
// goroutines.
type Rasterizer struct {
	width, height int

	// cover and area are the per-column cell accumulators for the
	// current row. One extra cell collects crossings clamped to the
	// right target border; it is never resolved.
	cover []int32
	area  []int32

	// alpha is the resolved coverage row handed to the span callback.
	alpha []uint8

	// active is the head of the intrusive active edge list.
	active int32

	// minX/maxX bound the cells touched on the current row, so the
	// resolve and the clear only sweep that range.
	minX, maxX int
}

// NewRasterizer creates a rasterizer for the given target size.
func NewRasterizer(width, height int) *Rasterizer {
	r := &Rasterizer{}
	r.Resize(width, height)
	return r
}

// Resize adjusts the scratch buffers for a new target size. Buffers are
// kept when the existing capacity suffices.
func (r *Rasterizer) Resize(width, height int) {
	r.width = width
	r.height = height
	r.cover = resizeCells(r.cover, width+1)
	r.area = resizeCells(r.area, width+1)
	if cap(r.alpha) < width {
		r.alpha = make([]uint8, width)
	} else {
		r.alpha = r.alpha[:width]
	}
	r.active = -1
}

// Width returns the rasterizer's target width.
func (r *Rasterizer) Width() int { return r.width }

// Height returns the rasterizer's target height.
func (r *Rasterizer) Height() int { return r.height }

// Fill rasterizes the edges in storage under the fill rule, invoking span
// for each scanline that received coverage. Fill consumes the storage's
// bucket links; call storage.Clear before building the next path.
func (r *Rasterizer) Fill(storage *EdgeStorage, rule FillRule, span SpanFunc) {
	if storage.Empty() || r.width == 0 || r.height == 0 {
		return
	}
	yMin, yMax := storage.YRange()
	if yMin < 0 {
		yMin = 0
	}
	if yMax >= r.height {
		yMax = r.height - 1
	}

	r.active = -1
	for y := yMin; y <= yMax; y++ {
		// Activate edges whose first scanline is y.
		for idx := storage.Bucket(y); idx != -1; {
			e := storage.Edge(idx)
			next := e.Next
			e.Next = r.active
			r.active = idx
			idx = next
		}

		rowTop := int32(y) << pixelBits
		rowBot := rowTop + onePixel

		r.minX = r.width + 1
		r.maxX = -1

		// Accumulate coverage, retiring ended edges in the same pass.
		prev := int32(-1)
		for idx := r.active; idx != -1; {
			e := storage.Edge(idx)
			next := e.Next
			if e.Y1 <= rowTop {
				if prev == -1 {
					r.active = next
				} else {
					storage.Edge(prev).Next = next
				}
				idx = next
				continue
			}

			segTop := e.Y0
			if segTop < rowTop {
				segTop = rowTop
			}
			segBot := e.Y1
			if segBot > rowBot {
				segBot = rowBot
			}

			x0 := e.X
			x1 := x0 + fdot16MulFrac(e.DxDy, segBot-segTop)
			r.cellLine(x0>>pixelBits, x1>>pixelBits, segTop-rowTop, segBot-rowTop, e.Sign)
			if e.Y1 > rowBot {
				// Edge continues: x1 is its position at the next
				// row top.
				e.X = x1
			}

			prev = idx
			idx = next
		}

		if r.maxX >= 0 {
			r.emitRow(y, rule, span)
		}
	}
	r.active = -1
}

// cellLine deposits the coverage of one row segment into the cells.
// ax/bx are FDot8 x positions at the segment's top and bottom; ay/by are
// FDot8 offsets within the row (0..onePixel, ay < by). Columns are split
// proportionally to the horizontal distance covered in each, the same
// subdivision FreeType's smooth rasterizer uses.
func (r *Rasterizer) cellLine(ax, bx, ay, by, sign int32) {
	dy := by - ay
	if dy <= 0 {
		return
	}

	// Clamp horizontally. Crossings left of the target collapse to a
	// vertical sliver at x=0 (full winding carries right); crossings
	// right of it land in the spill cell and never resolve.
	lim := int32(r.width) << pixelBits
	ax = clampFDot8(ax, lim)
	bx = clampFDot8(bx, lim)

	ex0 := ax >> pixelBits
	ex1 := bx >> pixelBits
	fx0 := ax & (onePixel - 1)
	fx1 := bx & (onePixel - 1)

	if ex0 == ex1 {
		r.addCell(int(ex0), sign*dy, sign*dy*(fx0+fx1))
		return
	}

	dx := bx - ax
	var delta, mod int32
	y := ay
	if dx > 0 {
		p := (onePixel - fx0) * dy
		delta = p / dx
		mod = p % dx
		r.addCell(int(ex0), sign*delta, sign*delta*(fx0+onePixel))
		y += delta

		if ex := ex0 + 1; ex < ex1 {
			p = onePixel * dy
			lift := p / dx
			rem := p % dx
			for ; ex < ex1; ex++ {
				delta = lift
				mod += rem
				if mod >= dx {
					mod -= dx
					delta++
				}
				r.addCell(int(ex), sign*delta, sign*delta*onePixel)
				y += delta
			}
		}
		delta = by - y
		r.addCell(int(ex1), sign*delta, sign*delta*fx1)
	} else {
		dx = -dx
		p := fx0 * dy
		delta = p / dx
		mod = p % dx
		r.addCell(int(ex0), sign*delta, sign*delta*fx0)
		y += delta

		if ex := ex0 - 1; ex > ex1 {
			p = onePixel * dy
			lift := p / dx
			rem := p % dx
			for ; ex > ex1; ex-- {
				delta = lift
				mod += rem
				if mod >= dx {
					mod -= dx
					delta++
				}
				r.addCell(int(ex), sign*delta, sign*delta*onePixel)
				y += delta
			}
		}
		delta = by - y
		r.addCell(int(ex1), sign*delta, sign*delta*(fx1+onePixel))
	}
}

// addCell accumulates into the cell at column x and widens the touched
// range.
func (r *Rasterizer) addCell(x int, cover, area int32) {
	r.cover[x] += cover
	r.area[x] += area
	if x < r.minX {
		r.minX = x
	}
	if x > r.maxX {
		r.maxX = x
	}
}

// emitRow resolves the touched cell range, hands the span to the
// callback, and clears exactly the cells it used.
func (r *Rasterizer) emitRow(y int, rule FillRule, span SpanFunc) {
	x0 := r.minX
	x1 := r.maxX
	if x1 > r.width-1 {
		x1 = r.width - 1
	}
	if x1 >= x0 {
		if rule == FillEvenOdd {
			r.resolveEvenOdd(x0, x1)
		} else {
			r.resolveNonZero(x0, x1)
		}
		span(y, x0, r.alpha[x0:x1+1])
	}

	hi := r.maxX
	if hi > r.width {
		hi = r.width
	}
	for x := r.minX; x <= hi; x++ {
		r.cover[x] = 0
		r.area[x] = 0
	}
}

// Cell scale: a fully covered row contributes onePixel of cover; raw
// coverage is cover<<(pixelBits+1) - area on a 2*onePixel² scale, so the
// shift back down is pixelBits+1.
const resolveShift = pixelBits + 1

// resolveNonZero maps winding to alpha as clamp(|raw|, 0, 255).
func (r *Rasterizer) resolveNonZero(x0, x1 int) {
	var acc int32
	for x := x0; x <= x1; x++ {
		acc += r.cover[x]
		v := acc<<resolveShift - r.area[x]
		if v < 0 {
			v = -v
		}
		a := v >> resolveShift
		if a > 255 {
			a = 255
		}
		r.alpha[x] = uint8(a)
	}
}

// resolveEvenOdd folds winding through a triangular function so parity
// transitions stay antialiased instead of toggling hard.
func (r *Rasterizer) resolveEvenOdd(x0, x1 int) {
	var acc int32
	for x := x0; x <= x1; x++ {
		acc += r.cover[x]
		v := acc<<resolveShift - r.area[x]
		if v < 0 {
			v = -v
		}
		a := v >> resolveShift
		a &= 2*onePixel - 1
		if a > onePixel {
			a = 2*onePixel - a
		}
		if a > 255 {
			a = 255
		}
		r.alpha[x] = uint8(a)
	}
}

func clampFDot8(v, lim int32) int32 {
	if v < 0 {
		return 0
	}
	if v > lim {
		return lim
	}
	return v
}

func resizeCells(s []int32, n int) []int32 {
	if cap(s) < n {
		return make([]int32, n)
	}
	s = s[:n]
	for i := range s {
		s[i] = 0
	}
	return s
}
