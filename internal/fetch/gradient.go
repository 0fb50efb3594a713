// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package fetch

import (
	"github.com/chewxy/math32"
)

// LUTSize is the number of samples in a gradient lookup table. Entry k
// holds the premultiplied color at parametric position k/(LUTSize-1), so
// the table endpoints are exactly the first and last stop colors.
const LUTSize = 256

// Stop is a gradient color stop with a premultiplied color. Stops must be
// ordered by non-decreasing offset; duplicate offsets produce a hard
// step.
type Stop struct {
	Offset     float32
	R, G, B, A uint8
}

// BuildLUT fills lut (4*LUTSize bytes) by linear interpolation between
// the bracketing stops of each sample. An empty stop list yields a
// transparent table; a single stop a constant one.
func BuildLUT(lut []uint8, stops []Stop) {
	if len(stops) == 0 {
		for i := range lut[:4*LUTSize] {
			lut[i] = 0
		}
		return
	}

	hi := 0 // index of the first stop with Offset >= pos
	for k := 0; k < LUTSize; k++ {
		pos := float32(k) / (LUTSize - 1)
		for hi < len(stops) && stops[hi].Offset < pos {
			hi++
		}
		o := k * 4
		switch {
		case hi == 0:
			s := stops[0]
			lut[o], lut[o+1], lut[o+2], lut[o+3] = s.R, s.G, s.B, s.A
		case hi == len(stops):
			s := stops[len(stops)-1]
			lut[o], lut[o+1], lut[o+2], lut[o+3] = s.R, s.G, s.B, s.A
		default:
			s0 := stops[hi-1]
			s1 := stops[hi]
			span := s1.Offset - s0.Offset
			if span <= 0 {
				lut[o], lut[o+1], lut[o+2], lut[o+3] = s1.R, s1.G, s1.B, s1.A
				break
			}
			t := (pos - s0.Offset) / span
			lut[o] = lerp8(s0.R, s1.R, t)
			lut[o+1] = lerp8(s0.G, s1.G, t)
			lut[o+2] = lerp8(s0.B, s1.B, t)
			lut[o+3] = lerp8(s0.A, s1.A, t)
		}
	}
}

func lerp8(a, b uint8, t float32) uint8 {
	return uint8(float32(a) + t*(float32(b)-float32(a)) + 0.5)
}

// lutIndex maps a parametric position to a table index under the extend
// mode. The two's-complement masks handle negative indices for repeat
// and reflect.
func (f *Fetcher) lutIndex(t float32) int {
	i := int(math32.Floor(t * LUTSize))
	switch f.extend {
	case ExtendRepeat:
		i &= LUTSize - 1
	case ExtendReflect:
		i &= 2*LUTSize - 1
		if i >= LUTSize {
			i = 2*LUTSize - 1 - i
		}
	default: // ExtendPad
		if i < 0 {
			i = 0
		} else if i >= LUTSize {
			i = LUTSize - 1
		}
	}
	return i
}

// writeLUT copies one table entry into the span.
func (f *Fetcher) writeLUT(dst []uint8, o, idx int) {
	l := idx * 4
	dst[o] = f.lut[l]
	dst[o+1] = f.lut[l+1]
	dst[o+2] = f.lut[l+2]
	dst[o+3] = f.lut[l+3]
}

// linearSpan projects each pixel center onto the gradient axis. The
// projection is affine in x, so t advances by a constant step across the
// span.
func (f *Fetcher) linearSpan(dst []uint8, x, y, n int) {
	t := f.tx*(float32(x)+0.5) + f.ty*(float32(y)+0.5) + f.t0
	for i := 0; i < n; i++ {
		f.writeLUT(dst, i*4, f.lutIndex(t))
		t += f.tx
	}
}

// radialSpan solves, per pixel, the quadratic locating the circle of the
// two-circle family passing through the pixel. The root is chosen by the
// sign of the leading coefficient so the parametrization does not clamp
// spuriously near the focal point; a near-zero leading coefficient falls
// back to the stabilized linear form. Pixels outside the gradient cone
// (negative discriminant or negative radius) are transparent.
func (f *Fetcher) radialSpan(dst []uint8, x, y, n int) {
	py := float32(y) + 0.5 - f.cy
	px := float32(x) + 0.5 - f.cx
	bRow := py*f.cdy + f.r0*f.dr
	cRow := py*py - f.r0*f.r0

	for i := 0; i < n; i++ {
		o := i * 4
		b := px*f.cdx + bRow
		c := px*px + cRow

		var t float32
		valid := true
		if f.qaLinear {
			if b != 0 {
				t = c / (2 * b)
			} else {
				valid = false
			}
		} else {
			disc := b*b - f.qa*c
			if disc < 0 {
				valid = false
			} else {
				sq := math32.Sqrt(disc)
				if f.qa > 0 {
					t = (b + sq) / f.qa
				} else {
					t = (b - sq) / f.qa
				}
			}
		}
		if valid && f.r0+t*f.dr >= 0 {
			f.writeLUT(dst, o, f.lutIndex(t))
		} else {
			dst[o], dst[o+1], dst[o+2], dst[o+3] = 0, 0, 0, 0
		}
		px++
	}
}

// sweepSpan maps the angle around the center onto the table. The angle
// relative to the start is wrapped into a single turn toward the sweep
// direction before the extend mode applies, so a full-turn sweep stays
// continuous below the center where atan2 goes negative.
func (f *Fetcher) sweepSpan(dst []uint8, x, y, n int) {
	const twoPi = 2 * math32.Pi
	dy := float32(y) + 0.5 - f.cy
	dx := float32(x) + 0.5 - f.cx
	for i := 0; i < n; i++ {
		rel := math32.Atan2(dy, dx) - f.aStart
		if f.aSpanNeg {
			for rel > 0 {
				rel -= twoPi
			}
			for rel <= -twoPi {
				rel += twoPi
			}
		} else {
			for rel < 0 {
				rel += twoPi
			}
			for rel >= twoPi {
				rel -= twoPi
			}
		}
		f.writeLUT(dst, i*4, f.lutIndex(rel*f.aScale))
		dx++
	}
}
