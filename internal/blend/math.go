// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package blend

// mulDiv255 multiplies two channels and divides by 255 with exact rounding.
// ((x+128)*257)>>16 equals (x+127.5)/255 truncated, which is round(x/255)
// for every x in [0, 255*255].
func mulDiv255(a, b uint8) uint8 {
	x := uint32(a) * uint32(b)
	return uint8(((x + 128) * 257) >> 16)
}

// unmul recovers an unmultiplied channel from a premultiplied one.
// a must be non-zero.
func unmul(c, a uint8) uint8 {
	v := uint32(c) * 255 / uint32(a)
	if v > 255 {
		return 255
	}
	return uint8(v)
}

// clampAdd adds two channels, saturating at 255.
func clampAdd(a, b uint8) uint8 {
	sum := uint16(a) + uint16(b)
	if sum > 255 {
		return 255
	}
	return uint8(sum)
}

// clampSub subtracts b from a, saturating at 0.
func clampSub(a, b uint8) uint8 {
	if a < b {
		return 0
	}
	return a - b
}

// sat8 clamps an int32 to [0, 255].
func sat8(v int32) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}

func minU8(a, b uint8) uint8 {
	if a < b {
		return a
	}
	return b
}

func maxU8(a, b uint8) uint8 {
	if a > b {
		return a
	}
	return b
}
