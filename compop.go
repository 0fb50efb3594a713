package rast

import "github.com/gogpu/rast/internal/blend"

// CompOp selects the pixel compositing operator for a draw call. All
// operators are total over premultiplied pixels: any destination/source
// pair yields channels in [0, 255].
type CompOp = blend.CompOp

// The compositing operators.
const (
	// Porter-Duff operators.
	SrcOver = blend.SrcOver // S + D*(1-Sa), the default
	SrcCopy = blend.SrcCopy
	SrcIn   = blend.SrcIn
	SrcOut  = blend.SrcOut
	SrcAtop = blend.SrcAtop
	DstOver = blend.DstOver
	DstCopy = blend.DstCopy
	DstIn   = blend.DstIn
	DstOut  = blend.DstOut
	DstAtop = blend.DstAtop
	Xor     = blend.Xor
	Clear   = blend.Clear

	// Arithmetic operators.
	Plus     = blend.Plus
	Minus    = blend.Minus
	Modulate = blend.Modulate

	// Separable blend modes.
	Multiply    = blend.Multiply
	Screen      = blend.Screen
	Overlay     = blend.Overlay
	Darken      = blend.Darken
	Lighten     = blend.Lighten
	ColorDodge  = blend.ColorDodge
	ColorBurn   = blend.ColorBurn
	LinearBurn  = blend.LinearBurn
	LinearLight = blend.LinearLight
	PinLight    = blend.PinLight
	HardLight   = blend.HardLight
	SoftLight   = blend.SoftLight
	Difference  = blend.Difference
	Exclusion   = blend.Exclusion
)

// Compose applies op to one premultiplied destination/source pixel pair.
// It is a pure function; the per-span paths inside Context are the hot
// ones, Compose exists for point use and testing.
func Compose(op CompOp, dr, dg, db, da, sr, sg, sb, sa uint8) (r, g, b, a uint8) {
	return blend.Proc(op)(sr, sg, sb, sa, dr, dg, db, da)
}
