// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package blend

// Separable blend modes. Each mode is a per-channel function B(Cb, Cs) on
// unmultiplied values, lifted into premultiplied space via the general
// compositing formula
//
//	result = B(Dc, Sc)*Sa*Da + Sc*Sa*(1-Da) + Dc*Da*(1-Sa)
//
// which is the W3C compositing-1 form with source-over alpha.

// separable applies the per-channel blend function b to unmultiplied
// channels and recomposes the premultiplied result.
func separable(sr, sg, sb, sa, dr, dg, db, da uint8, b func(s, d uint8) uint8) (uint8, uint8, uint8, uint8) {
	// A fully transparent operand degenerates to source-over.
	if sa == 0 {
		return dr, dg, db, da
	}
	if da == 0 {
		return sr, sg, sb, sa
	}

	sur := unmul(sr, sa)
	sug := unmul(sg, sa)
	sub := unmul(sb, sa)
	dur := unmul(dr, da)
	dug := unmul(dg, da)
	dub := unmul(db, da)

	invSa := 255 - sa
	invDa := 255 - da
	saDa := mulDiv255(sa, da)

	// (1-Da)*S + (1-Sa)*D, then + Sa*Da*B per channel.
	outR := clampAdd(mulDiv255(sr, invDa), mulDiv255(dr, invSa))
	outG := clampAdd(mulDiv255(sg, invDa), mulDiv255(dg, invSa))
	outB := clampAdd(mulDiv255(sb, invDa), mulDiv255(db, invSa))

	outR = clampAdd(outR, mulDiv255(saDa, b(sur, dur)))
	outG = clampAdd(outG, mulDiv255(saDa, b(sug, dug)))
	outB = clampAdd(outB, mulDiv255(saDa, b(sub, dub)))

	outA := clampAdd(sa, mulDiv255(da, invSa))
	return outR, outG, outB, outA
}

// compMultiply darkens by multiplying channels.
// B(Cb, Cs) = Cb*Cs
func compMultiply(sr, sg, sb, sa, dr, dg, db, da uint8) (uint8, uint8, uint8, uint8) {
	return separable(sr, sg, sb, sa, dr, dg, db, da, mulDiv255)
}

// compScreen lightens by inverting, multiplying and inverting again.
// B(Cb, Cs) = Cs + Cb - Cs*Cb
func compScreen(sr, sg, sb, sa, dr, dg, db, da uint8) (uint8, uint8, uint8, uint8) {
	return separable(sr, sg, sb, sa, dr, dg, db, da, screenChan)
}

func screenChan(s, d uint8) uint8 {
	return 255 - mulDiv255(255-s, 255-d)
}

// compOverlay is HardLight with the operands swapped.
func compOverlay(sr, sg, sb, sa, dr, dg, db, da uint8) (uint8, uint8, uint8, uint8) {
	return separable(sr, sg, sb, sa, dr, dg, db, da, func(s, d uint8) uint8 {
		return hardLightChan(d, s)
	})
}

// compDarken keeps the darker channel.
// B(Cb, Cs) = min(Cb, Cs)
func compDarken(sr, sg, sb, sa, dr, dg, db, da uint8) (uint8, uint8, uint8, uint8) {
	return separable(sr, sg, sb, sa, dr, dg, db, da, minU8)
}

// compLighten keeps the lighter channel.
// B(Cb, Cs) = max(Cb, Cs)
func compLighten(sr, sg, sb, sa, dr, dg, db, da uint8) (uint8, uint8, uint8, uint8) {
	return separable(sr, sg, sb, sa, dr, dg, db, da, maxU8)
}

// compColorDodge brightens the backdrop to reflect the source.
// B(Cb, Cs) = Cs==1 ? 1 : min(1, Cb/(1-Cs))
func compColorDodge(sr, sg, sb, sa, dr, dg, db, da uint8) (uint8, uint8, uint8, uint8) {
	return separable(sr, sg, sb, sa, dr, dg, db, da, func(s, d uint8) uint8 {
		if s == 255 {
			return 255
		}
		v := uint32(d) * 255 / uint32(255-s)
		if v > 255 {
			return 255
		}
		return uint8(v)
	})
}

// compColorBurn darkens the backdrop to reflect the source.
// B(Cb, Cs) = Cs==0 ? 0 : 1 - min(1, (1-Cb)/Cs)
func compColorBurn(sr, sg, sb, sa, dr, dg, db, da uint8) (uint8, uint8, uint8, uint8) {
	return separable(sr, sg, sb, sa, dr, dg, db, da, func(s, d uint8) uint8 {
		if s == 0 {
			return 0
		}
		v := uint32(255-d) * 255 / uint32(s)
		if v > 255 {
			return 0
		}
		return 255 - uint8(v)
	})
}

// compLinearBurn sums and subtracts full scale.
// B(Cb, Cs) = max(Cb + Cs - 1, 0)
func compLinearBurn(sr, sg, sb, sa, dr, dg, db, da uint8) (uint8, uint8, uint8, uint8) {
	return separable(sr, sg, sb, sa, dr, dg, db, da, func(s, d uint8) uint8 {
		v := int32(s) + int32(d) - 255
		if v < 0 {
			return 0
		}
		return uint8(v)
	})
}

// compLinearLight burns or dodges linearly depending on the source.
// B(Cb, Cs) = clamp(Cb + 2*Cs - 1)
func compLinearLight(sr, sg, sb, sa, dr, dg, db, da uint8) (uint8, uint8, uint8, uint8) {
	return separable(sr, sg, sb, sa, dr, dg, db, da, func(s, d uint8) uint8 {
		v := int32(d) + 2*int32(s) - 255
		if v < 0 {
			return 0
		}
		if v > 255 {
			return 255
		}
		return uint8(v)
	})
}

// compPinLight replaces channels depending on the source.
// B(Cb, Cs) = Cs > 0.5 ? max(Cb, 2*Cs-1) : min(Cb, 2*Cs)
func compPinLight(sr, sg, sb, sa, dr, dg, db, da uint8) (uint8, uint8, uint8, uint8) {
	return separable(sr, sg, sb, sa, dr, dg, db, da, func(s, d uint8) uint8 {
		if s > 128 {
			return maxU8(d, sat8(2*int32(s)-255))
		}
		return minU8(d, sat8(2*int32(s)))
	})
}

// compHardLight multiplies or screens depending on the source.
func compHardLight(sr, sg, sb, sa, dr, dg, db, da uint8) (uint8, uint8, uint8, uint8) {
	return separable(sr, sg, sb, sa, dr, dg, db, da, hardLightChan)
}

// hardLightChan is B(Cb, Cs) = Cs <= 0.5 ? Multiply(Cb, 2*Cs) : Screen(Cb, 2*Cs-1).
func hardLightChan(s, d uint8) uint8 {
	if s <= 128 {
		return mulDiv255(sat8(2*int32(s)), d)
	}
	return screenChan(sat8(2*int32(s)-255), d)
}

// compSoftLight is the W3C soft-light curve. The piecewise D(x) ramp does
// not reduce to byte arithmetic; it runs in fixed point over a widened
// 16-bit intermediate, still divisionless per pixel.
func compSoftLight(sr, sg, sb, sa, dr, dg, db, da uint8) (uint8, uint8, uint8, uint8) {
	return separable(sr, sg, sb, sa, dr, dg, db, da, softLightChan)
}

func softLightChan(s, d uint8) uint8 {
	sc := int32(s)
	dc := int32(d)
	if sc <= 128 {
		// Cb - (1 - 2*Cs)*Cb*(1 - Cb), all terms scaled by 255².
		v := dc*255*255 - (255-2*sc)*dc*(255-dc)
		return sat8(v / (255 * 255))
	}
	// Cb + (2*Cs - 1)*(D(Cb) - Cb) with the piecewise ramp
	// D(x) = x <= 0.25 ? ((16x-12)x+4)x : sqrt(x).
	var dRamp int32
	if dc <= 64 {
		dRamp = dc * ((16*dc-12*255)*dc + 4*255*255) / (255 * 255)
	} else {
		dRamp = int32(sqrtRamp[dc])
	}
	v := dc + (2*sc-255)*(dRamp-dc)/255
	return sat8(v)
}

// sqrtRamp holds round(255*sqrt(x/255)) for the soft-light D(x) branch.
var sqrtRamp [256]uint8

func init() {
	for i := range sqrtRamp {
		// Integer square root of i*255, rounded.
		v := isqrt(uint32(i) * 255)
		if v > 255 {
			v = 255
		}
		sqrtRamp[i] = uint8(v)
	}
}

// isqrt returns round(sqrt(x)) for x <= 255*255.
func isqrt(x uint32) uint32 {
	if x == 0 {
		return 0
	}
	r := uint32(1)
	for r*r <= x {
		r++
	}
	r--
	// Round to nearest.
	if (r+1)*(r+1)-x < x-r*r {
		r++
	}
	return r
}

// compDifference takes the absolute channel difference.
// B(Cb, Cs) = |Cb - Cs|
func compDifference(sr, sg, sb, sa, dr, dg, db, da uint8) (uint8, uint8, uint8, uint8) {
	return separable(sr, sg, sb, sa, dr, dg, db, da, func(s, d uint8) uint8 {
		if s > d {
			return s - d
		}
		return d - s
	})
}

// compExclusion is Difference with lower contrast.
// B(Cb, Cs) = Cb + Cs - 2*Cb*Cs
func compExclusion(sr, sg, sb, sa, dr, dg, db, da uint8) (uint8, uint8, uint8, uint8) {
	return separable(sr, sg, sb, sa, dr, dg, db, da, func(s, d uint8) uint8 {
		v := int32(s) + int32(d) - 2*int32(mulDiv255(s, d))
		return sat8(v)
	})
}
