// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package blend implements the pixel compositing kernel: Porter-Duff
// operators plus separable blend modes over premultiplied alpha.
//
// All operations work on premultiplied 8-bit channels. Division by 255
// uses the exact rounded integer form ((x+128)*257)>>16; no floating
// point appears in the per-pixel path.
//
// References:
//   - Porter-Duff: "Compositing Digital Images" (1984)
//   - W3C Compositing and Blending Level 1: https://www.w3.org/TR/compositing-1/
package blend

// CompOp identifies a compositing operator.
type CompOp uint8

const (
	// Porter-Duff operators.
	SrcOver CompOp = iota // S + D*(1-Sa) [default]
	SrcCopy               // S
	SrcIn                 // S*Da
	SrcOut                // S*(1-Da)
	SrcAtop               // S*Da + D*(1-Sa)
	DstOver               // S*(1-Da) + D
	DstCopy               // D
	DstIn                 // D*Sa
	DstOut                // D*(1-Sa)
	DstAtop               // S*(1-Da) + D*Sa
	Xor                   // S*(1-Da) + D*(1-Sa)
	Clear                 // 0

	// Arithmetic operators.
	Plus     // min(S + D, 1)
	Minus    // max(D - S, 0)
	Modulate // S*D

	// Separable blend modes (W3C compositing-1 + PDF addendum).
	Multiply
	Screen
	Overlay
	Darken
	Lighten
	ColorDodge
	ColorBurn
	LinearBurn
	LinearLight
	PinLight
	HardLight
	SoftLight
	Difference
	Exclusion

	// NumOps is the number of compositing operators.
	NumOps = int(Exclusion) + 1
)

// String returns the operator name.
func (op CompOp) String() string {
	if int(op) < len(opNames) {
		return opNames[op]
	}
	return "Unknown"
}

var opNames = [NumOps]string{
	"SrcOver", "SrcCopy", "SrcIn", "SrcOut", "SrcAtop",
	"DstOver", "DstCopy", "DstIn", "DstOut", "DstAtop",
	"Xor", "Clear", "Plus", "Minus", "Modulate",
	"Multiply", "Screen", "Overlay", "Darken", "Lighten",
	"ColorDodge", "ColorBurn", "LinearBurn", "LinearLight", "PinLight",
	"HardLight", "SoftLight", "Difference", "Exclusion",
}

// Func is the signature of a compositing operation.
// All channels are premultiplied alpha, 0-255.
type Func func(sr, sg, sb, sa, dr, dg, db, da uint8) (r, g, b, a uint8)

// procs is the operator function table, indexed by CompOp.
var procs = [NumOps]Func{
	SrcOver:     compSrcOver,
	SrcCopy:     compSrcCopy,
	SrcIn:       compSrcIn,
	SrcOut:      compSrcOut,
	SrcAtop:     compSrcAtop,
	DstOver:     compDstOver,
	DstCopy:     compDstCopy,
	DstIn:       compDstIn,
	DstOut:      compDstOut,
	DstAtop:     compDstAtop,
	Xor:         compXor,
	Clear:       compClear,
	Plus:        compPlus,
	Minus:       compMinus,
	Modulate:    compModulate,
	Multiply:    compMultiply,
	Screen:      compScreen,
	Overlay:     compOverlay,
	Darken:      compDarken,
	Lighten:     compLighten,
	ColorDodge:  compColorDodge,
	ColorBurn:   compColorBurn,
	LinearBurn:  compLinearBurn,
	LinearLight: compLinearLight,
	PinLight:    compPinLight,
	HardLight:   compHardLight,
	SoftLight:   compSoftLight,
	Difference:  compDifference,
	Exclusion:   compExclusion,
}

// Proc returns the compositing function for op.
// Returns compSrcOver for out-of-range values.
func Proc(op CompOp) Func {
	if int(op) < NumOps {
		return procs[op]
	}
	return compSrcOver
}

// UsesSource reports whether the operator's result depends on the source
// pixel. Operators that ignore the source (Clear, DstCopy) cannot apply
// partial coverage by scaling the source and are interpolated against the
// destination instead.
func UsesSource(op CompOp) bool {
	return op != Clear && op != DstCopy
}

// Porter-Duff implementations.

func compClear(_, _, _, _, _, _, _, _ uint8) (uint8, uint8, uint8, uint8) {
	return 0, 0, 0, 0
}

func compSrcCopy(sr, sg, sb, sa, _, _, _, _ uint8) (uint8, uint8, uint8, uint8) {
	return sr, sg, sb, sa
}

func compDstCopy(_, _, _, _, dr, dg, db, da uint8) (uint8, uint8, uint8, uint8) {
	return dr, dg, db, da
}

// compSrcOver composites source over destination.
// Formula: S + D*(1-Sa)
func compSrcOver(sr, sg, sb, sa, dr, dg, db, da uint8) (uint8, uint8, uint8, uint8) {
	invSa := 255 - sa
	return clampAdd(sr, mulDiv255(dr, invSa)),
		clampAdd(sg, mulDiv255(dg, invSa)),
		clampAdd(sb, mulDiv255(db, invSa)),
		clampAdd(sa, mulDiv255(da, invSa))
}

// compDstOver composites destination over source.
// Formula: S*(1-Da) + D
func compDstOver(sr, sg, sb, sa, dr, dg, db, da uint8) (uint8, uint8, uint8, uint8) {
	invDa := 255 - da
	return clampAdd(mulDiv255(sr, invDa), dr),
		clampAdd(mulDiv255(sg, invDa), dg),
		clampAdd(mulDiv255(sb, invDa), db),
		clampAdd(mulDiv255(sa, invDa), da)
}

// compSrcIn shows source where destination is opaque.
// Formula: S*Da
func compSrcIn(sr, sg, sb, sa, _, _, _, da uint8) (uint8, uint8, uint8, uint8) {
	return mulDiv255(sr, da), mulDiv255(sg, da), mulDiv255(sb, da), mulDiv255(sa, da)
}

// compDstIn shows destination where source is opaque.
// Formula: D*Sa
func compDstIn(_, _, _, sa, dr, dg, db, da uint8) (uint8, uint8, uint8, uint8) {
	return mulDiv255(dr, sa), mulDiv255(dg, sa), mulDiv255(db, sa), mulDiv255(da, sa)
}

// compSrcOut shows source where destination is transparent.
// Formula: S*(1-Da)
func compSrcOut(sr, sg, sb, sa, _, _, _, da uint8) (uint8, uint8, uint8, uint8) {
	invDa := 255 - da
	return mulDiv255(sr, invDa), mulDiv255(sg, invDa), mulDiv255(sb, invDa), mulDiv255(sa, invDa)
}

// compDstOut shows destination where source is transparent.
// Formula: D*(1-Sa)
func compDstOut(_, _, _, sa, dr, dg, db, da uint8) (uint8, uint8, uint8, uint8) {
	invSa := 255 - sa
	return mulDiv255(dr, invSa), mulDiv255(dg, invSa), mulDiv255(db, invSa), mulDiv255(da, invSa)
}

// compSrcAtop composites source over destination, keeping destination alpha.
// Formula: S*Da + D*(1-Sa)
func compSrcAtop(sr, sg, sb, sa, dr, dg, db, da uint8) (uint8, uint8, uint8, uint8) {
	invSa := 255 - sa
	return clampAdd(mulDiv255(sr, da), mulDiv255(dr, invSa)),
		clampAdd(mulDiv255(sg, da), mulDiv255(dg, invSa)),
		clampAdd(mulDiv255(sb, da), mulDiv255(db, invSa)),
		da
}

// compDstAtop composites destination over source, keeping source alpha.
// Formula: S*(1-Da) + D*Sa
func compDstAtop(sr, sg, sb, sa, dr, dg, db, da uint8) (uint8, uint8, uint8, uint8) {
	invDa := 255 - da
	return clampAdd(mulDiv255(sr, invDa), mulDiv255(dr, sa)),
		clampAdd(mulDiv255(sg, invDa), mulDiv255(dg, sa)),
		clampAdd(mulDiv255(sb, invDa), mulDiv255(db, sa)),
		sa
}

// compXor shows source and destination where they do not overlap.
// Formula: S*(1-Da) + D*(1-Sa)
func compXor(sr, sg, sb, sa, dr, dg, db, da uint8) (uint8, uint8, uint8, uint8) {
	invDa := 255 - da
	invSa := 255 - sa
	return clampAdd(mulDiv255(sr, invDa), mulDiv255(dr, invSa)),
		clampAdd(mulDiv255(sg, invDa), mulDiv255(dg, invSa)),
		clampAdd(mulDiv255(sb, invDa), mulDiv255(db, invSa)),
		clampAdd(mulDiv255(sa, invDa), mulDiv255(da, invSa))
}

// compPlus adds source and destination, saturating at 255.
func compPlus(sr, sg, sb, sa, dr, dg, db, da uint8) (uint8, uint8, uint8, uint8) {
	return clampAdd(sr, dr), clampAdd(sg, dg), clampAdd(sb, db), clampAdd(sa, da)
}

// compMinus subtracts source from destination, saturating at 0.
// Alpha is the union of the two alphas so the result stays premultiplied.
func compMinus(sr, sg, sb, sa, dr, dg, db, da uint8) (uint8, uint8, uint8, uint8) {
	return clampSub(dr, sr), clampSub(dg, sg), clampSub(db, sb),
		clampAdd(sa, mulDiv255(da, 255-sa))
}

// compModulate multiplies source and destination channels.
// Formula: S*D
func compModulate(sr, sg, sb, sa, dr, dg, db, da uint8) (uint8, uint8, uint8, uint8) {
	return mulDiv255(sr, dr), mulDiv255(sg, dg), mulDiv255(sb, db), mulDiv255(sa, da)
}
