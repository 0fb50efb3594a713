// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package raster

// Two fixed-point formats cooperate in the scanline loop: y positions and
// cell offsets use 24.8 (one pixel = 256 subpixel units), while edge x
// positions and slopes use 16.16 so the per-scanline walk keeps 16
// fractional bits of precision.
const (
	pixelBits = 8
	onePixel  = 1 << pixelBits

	fdot16Bits = 16
	fdot16One  = 1 << fdot16Bits
)

// floatToFDot16 converts to 16.16 with round-to-nearest.
func floatToFDot16(v float64) int32 {
	if v < 0 {
		return int32(v*fdot16One - 0.5)
	}
	return int32(v*fdot16One + 0.5)
}

// floatToFDot8 converts to 24.8 with round-to-nearest.
func floatToFDot8(v float64) int32 {
	if v < 0 {
		return int32(v*onePixel - 0.5)
	}
	return int32(v*onePixel + 0.5)
}

// fdot16MulFrac scales a 16.16 slope by a 24.8 y distance, yielding the
// 16.16 x advance over that distance. The intermediate product needs 64
// bits.
func fdot16MulFrac(slope, dyF8 int32) int32 {
	return int32(int64(slope) * int64(dyF8) >> pixelBits)
}
