package rast

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestComposeArgumentOrder pins the public signature: destination first,
// source second.
func TestComposeArgumentOrder(t *testing.T) {
	// Opaque red source over opaque blue destination wins entirely.
	r, g, b, a := Compose(SrcOver, 0, 0, 255, 255, 255, 0, 0, 255)
	assert.Equal(t, [4]uint8{255, 0, 0, 255}, [4]uint8{r, g, b, a})

	// DstCopy keeps the destination.
	r, g, b, a = Compose(DstCopy, 0, 0, 255, 255, 255, 0, 0, 255)
	assert.Equal(t, [4]uint8{0, 0, 255, 255}, [4]uint8{r, g, b, a})
}

// TestComposeAllOps runs every exported operator through the public
// wrapper and checks the result respects the premultiplied bound.
func TestComposeAllOps(t *testing.T) {
	ops := []CompOp{
		SrcOver, SrcCopy, SrcIn, SrcOut, SrcAtop,
		DstOver, DstCopy, DstIn, DstOut, DstAtop,
		Xor, Clear, Plus, Minus, Modulate,
		Multiply, Screen, Overlay, Darken, Lighten,
		ColorDodge, ColorBurn, LinearBurn, LinearLight, PinLight,
		HardLight, SoftLight, Difference, Exclusion,
	}
	for _, op := range ops {
		r, g, b, a := Compose(op, 100, 110, 120, 255, 30, 60, 90, 120)
		for _, c := range []uint8{r, g, b} {
			assert.LessOrEqual(t, int(c), int(a)+3, "%v channel above alpha", op)
		}
	}
}
