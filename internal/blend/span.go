// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package blend

// ComposeSpan composites n source pixels into dst under op, modulated by
// per-pixel coverage. dst and src are premultiplied RGBA rows (4 bytes per
// pixel); cov holds one coverage byte per pixel. len(cov) pixels are
// processed; dst and src must be at least 4*len(cov) bytes.
//
// Coverage is applied by scaling the premultiplied source, which is exact
// for every operator whose result depends on the source. Clear and DstCopy
// ignore the source, so partial coverage interpolates their result against
// the destination instead.
func ComposeSpan(op CompOp, dst, src, cov []uint8) {
	switch op {
	case SrcOver:
		composeSrcOverSpan(dst, src, cov)
		return
	case SrcCopy:
		composeSrcCopySpan(dst, src, cov)
		return
	}

	proc := procs[op]
	usesSrc := UsesSource(op)
	for i, c := range cov {
		if c == 0 {
			continue
		}
		o := i * 4
		sr, sg, sb, sa := src[o], src[o+1], src[o+2], src[o+3]
		dr, dg, db, da := dst[o], dst[o+1], dst[o+2], dst[o+3]
		if usesSrc {
			if c < 255 {
				sr = mulDiv255(sr, c)
				sg = mulDiv255(sg, c)
				sb = mulDiv255(sb, c)
				sa = mulDiv255(sa, c)
			}
			dst[o], dst[o+1], dst[o+2], dst[o+3] = proc(sr, sg, sb, sa, dr, dg, db, da)
			continue
		}
		rr, rg, rb, ra := proc(sr, sg, sb, sa, dr, dg, db, da)
		if c == 255 {
			dst[o], dst[o+1], dst[o+2], dst[o+3] = rr, rg, rb, ra
			continue
		}
		inv := 255 - c
		dst[o] = clampAdd(mulDiv255(rr, c), mulDiv255(dr, inv))
		dst[o+1] = clampAdd(mulDiv255(rg, c), mulDiv255(dg, inv))
		dst[o+2] = clampAdd(mulDiv255(rb, c), mulDiv255(db, inv))
		dst[o+3] = clampAdd(mulDiv255(ra, c), mulDiv255(da, inv))
	}
}

// composeSrcOverSpan is the specialized source-over loop. Opaque source
// pixels at full coverage are stored directly; fully transparent
// contributions are skipped without touching dst.
func composeSrcOverSpan(dst, src, cov []uint8) {
	for i, c := range cov {
		if c == 0 {
			continue
		}
		o := i * 4
		sr, sg, sb, sa := src[o], src[o+1], src[o+2], src[o+3]
		if c == 255 && sa == 255 {
			dst[o], dst[o+1], dst[o+2], dst[o+3] = sr, sg, sb, sa
			continue
		}
		if c < 255 {
			sr = mulDiv255(sr, c)
			sg = mulDiv255(sg, c)
			sb = mulDiv255(sb, c)
			sa = mulDiv255(sa, c)
		}
		if sa == 0 && sr == 0 && sg == 0 && sb == 0 {
			continue
		}
		invSa := 255 - sa
		dst[o] = clampAdd(sr, mulDiv255(dst[o], invSa))
		dst[o+1] = clampAdd(sg, mulDiv255(dst[o+1], invSa))
		dst[o+2] = clampAdd(sb, mulDiv255(dst[o+2], invSa))
		dst[o+3] = clampAdd(sa, mulDiv255(dst[o+3], invSa))
	}
}

// composeSrcCopySpan replaces destination pixels, interpolating at partial
// coverage so edge antialiasing survives a copy.
func composeSrcCopySpan(dst, src, cov []uint8) {
	for i, c := range cov {
		if c == 0 {
			continue
		}
		o := i * 4
		if c == 255 {
			dst[o] = src[o]
			dst[o+1] = src[o+1]
			dst[o+2] = src[o+2]
			dst[o+3] = src[o+3]
			continue
		}
		inv := 255 - c
		dst[o] = clampAdd(mulDiv255(src[o], c), mulDiv255(dst[o], inv))
		dst[o+1] = clampAdd(mulDiv255(src[o+1], c), mulDiv255(dst[o+1], inv))
		dst[o+2] = clampAdd(mulDiv255(src[o+2], c), mulDiv255(dst[o+2], inv))
		dst[o+3] = clampAdd(mulDiv255(src[o+3], c), mulDiv255(dst[o+3], inv))
	}
}

// FillSpan writes a constant premultiplied pixel across dst, which must be
// a whole number of 4-byte pixels. Used by the opaque full-coverage fast
// path and by target clears.
func FillSpan(dst []uint8, r, g, b, a uint8) {
	for o := 0; o+3 < len(dst); o += 4 {
		dst[o] = r
		dst[o+1] = g
		dst[o+2] = b
		dst[o+3] = a
	}
}
