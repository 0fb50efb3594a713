// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package fetch

import (
	"github.com/chewxy/math32"
)

// patternSpan samples the source image through the pre-inverted affine
// transform. The full transform runs once at the span start; consecutive
// pixels advance the source position by the transform's per-pixel delta
// (inv[0], inv[3]), which is what makes pattern fills cheap.
func (f *Fetcher) patternSpan(dst []uint8, x, y, n int) {
	if f.img.W <= 0 || f.img.H <= 0 {
		for i := 0; i < 4*n; i++ {
			dst[i] = 0
		}
		return
	}

	fx := float32(x) + 0.5
	fy := float32(y) + 0.5
	u := f.inv[0]*fx + f.inv[1]*fy + f.inv[2]
	v := f.inv[3]*fx + f.inv[4]*fy + f.inv[5]
	du := f.inv[0]
	dv := f.inv[3]

	if f.filter == FilterBilinear {
		for i := 0; i < n; i++ {
			f.sampleBilinear(dst, i*4, u, v)
			u += du
			v += dv
		}
		return
	}
	for i := 0; i < n; i++ {
		f.sampleNearest(dst, i*4, u, v)
		u += du
		v += dv
	}
}

// sampleNearest rounds to the nearest source pixel.
func (f *Fetcher) sampleNearest(dst []uint8, o int, u, v float32) {
	sx := extendCoord(int(math32.Floor(u)), f.img.W, f.extendX)
	sy := extendCoord(int(math32.Floor(v)), f.img.H, f.extendY)
	p := sy*f.img.Stride + sx*4
	dst[o] = f.img.Pix[p]
	dst[o+1] = f.img.Pix[p+1]
	dst[o+2] = f.img.Pix[p+2]
	dst[o+3] = f.img.Pix[p+3]
}

// sampleBilinear blends the four surrounding source pixels weighted by
// the fractional offset. Premultiplied channels interpolate linearly, so
// no unmultiply round-trip is needed.
func (f *Fetcher) sampleBilinear(dst []uint8, o int, u, v float32) {
	u -= 0.5
	v -= 0.5
	fu := math32.Floor(u)
	fv := math32.Floor(v)
	wx := uint32((u - fu) * 256)
	wy := uint32((v - fv) * 256)

	x0 := extendCoord(int(fu), f.img.W, f.extendX)
	x1 := extendCoord(int(fu)+1, f.img.W, f.extendX)
	y0 := extendCoord(int(fv), f.img.H, f.extendY)
	y1 := extendCoord(int(fv)+1, f.img.H, f.extendY)

	r0 := y0 * f.img.Stride
	r1 := y1 * f.img.Stride
	p00 := r0 + x0*4
	p10 := r0 + x1*4
	p01 := r1 + x0*4
	p11 := r1 + x1*4

	w00 := (256 - wx) * (256 - wy)
	w10 := wx * (256 - wy)
	w01 := (256 - wx) * wy
	w11 := wx * wy

	pix := f.img.Pix
	for ch := 0; ch < 4; ch++ {
		acc := uint32(pix[p00+ch])*w00 +
			uint32(pix[p10+ch])*w10 +
			uint32(pix[p01+ch])*w01 +
			uint32(pix[p11+ch])*w11
		dst[o+ch] = uint8(acc >> 16)
	}
}

// extendCoord maps a source coordinate into [0, n) under the extend mode,
// applied per axis.
func extendCoord(i, n int, mode ExtendMode) int {
	switch mode {
	case ExtendRepeat:
		m := i % n
		if m < 0 {
			m += n
		}
		return m
	case ExtendReflect:
		period := 2 * n
		m := i % period
		if m < 0 {
			m += period
		}
		if m >= n {
			m = period - 1 - m
		}
		return m
	default: // ExtendPad
		if i < 0 {
			return 0
		}
		if i >= n {
			return n - 1
		}
		return i
	}
}
