// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package fetch

import "testing"

// grayRamp is a two-stop black-to-white LUT: entry k resolves to gray k.
func grayRamp() []uint8 {
	lut := make([]uint8, 4*LUTSize)
	BuildLUT(lut, []Stop{
		{Offset: 0, R: 0, G: 0, B: 0, A: 255},
		{Offset: 1, R: 255, G: 255, B: 255, A: 255},
	})
	return lut
}

// TestBuildLUTEndpoints verifies the table endpoints hit the first and
// last stop colors exactly.
func TestBuildLUTEndpoints(t *testing.T) {
	lut := make([]uint8, 4*LUTSize)
	BuildLUT(lut, []Stop{
		{Offset: 0.25, R: 10, G: 20, B: 30, A: 255},
		{Offset: 0.75, R: 200, G: 100, B: 50, A: 255},
	})

	if lut[0] != 10 || lut[1] != 20 || lut[2] != 30 || lut[3] != 255 {
		t.Errorf("first entry = %v, want first stop", lut[:4])
	}
	last := 4 * (LUTSize - 1)
	if lut[last] != 200 || lut[last+1] != 100 || lut[last+2] != 50 {
		t.Errorf("last entry = %v, want last stop", lut[last:last+4])
	}
	// Positions before the first stop pad with the first stop's color.
	if lut[4*32] != 10 {
		t.Errorf("entry below first offset = %d, want 10", lut[4*32])
	}
}

// TestBuildLUTHardStep verifies two stops at the same offset produce a
// step, not an interpolated ramp.
func TestBuildLUTHardStep(t *testing.T) {
	lut := make([]uint8, 4*LUTSize)
	BuildLUT(lut, []Stop{
		{Offset: 0, R: 255, A: 255},
		{Offset: 0.5, R: 255, A: 255},
		{Offset: 0.5, G: 255, A: 255},
		{Offset: 1, G: 255, A: 255},
	})

	// Just below the step: pure red. At and above: pure green.
	below := 4 * 126 // 126/255 < 0.5
	if lut[below] != 255 || lut[below+1] != 0 {
		t.Errorf("below step = %v, want red", lut[below:below+4])
	}
	above := 4 * 129 // 129/255 > 0.5
	if lut[above] != 0 || lut[above+1] != 255 {
		t.Errorf("above step = %v, want green", lut[above:above+4])
	}
}

// TestBuildLUTEmptyAndSingle covers the degenerate stop lists.
func TestBuildLUTEmptyAndSingle(t *testing.T) {
	lut := make([]uint8, 4*LUTSize)
	for i := range lut {
		lut[i] = 0xAA
	}
	BuildLUT(lut, nil)
	for i, v := range lut {
		if v != 0 {
			t.Fatalf("empty stops: byte %d = %d, want 0", i, v)
		}
	}

	BuildLUT(lut, []Stop{{Offset: 0.3, R: 7, G: 8, B: 9, A: 10}})
	for k := 0; k < LUTSize; k++ {
		o := k * 4
		if lut[o] != 7 || lut[o+1] != 8 || lut[o+2] != 9 || lut[o+3] != 10 {
			t.Fatalf("single stop: entry %d = %v", k, lut[o:o+4])
		}
	}
}

// TestSolidFetcher verifies the constant span and the Opaque report.
func TestSolidFetcher(t *testing.T) {
	f := Solid(10, 20, 30, 255)
	if !f.Opaque() {
		t.Error("alpha-255 solid should report opaque")
	}
	dst := make([]uint8, 12)
	f.Span(dst, 100, 100, 3)
	for i := 0; i < 3; i++ {
		o := i * 4
		if dst[o] != 10 || dst[o+1] != 20 || dst[o+2] != 30 || dst[o+3] != 255 {
			t.Fatalf("pixel %d = %v", i, dst[o:o+4])
		}
	}

	half := Solid(200, 0, 0, 200)
	if half.Opaque() {
		t.Error("alpha-200 solid should not report opaque")
	}
}

// TestSolidOpacityFold verifies SetOpacity folds into the solid pixel so
// the fetcher still reports a plain constant.
func TestSolidOpacityFold(t *testing.T) {
	f := Solid(255, 0, 0, 255)
	f.SetOpacity(0.5)
	r, _, _, a := f.SolidPixel()
	if r != 127 || a != 127 {
		t.Errorf("half-opacity solid pixel = (%d, alpha %d), want (127, 127)", r, a)
	}
	if f.Opaque() {
		t.Error("half-opacity solid must not report opaque")
	}
}

// TestLinearEndpointExactness samples a linear gradient at its exact
// start and end pixels.
func TestLinearEndpointExactness(t *testing.T) {
	// Axis from the center of pixel (0,0) to the center of (255,0): pixel
	// x samples the ramp at x/255.
	f := Linear(0.5, 0.5, 255.5, 0.5, grayRamp(), ExtendPad)

	if r, _, _, a := f.Fetch(0, 0); r != 0 || a != 255 {
		t.Errorf("start pixel = gray %d alpha %d, want 0, 255", r, a)
	}
	if r, _, _, _ := f.Fetch(255, 0); r != 255 {
		t.Errorf("end pixel = gray %d, want 255", r)
	}
	if r, _, _, _ := f.Fetch(127, 0); r != 127 {
		t.Errorf("midpoint pixel = gray %d, want 127", r)
	}
}

// TestLinearExtendModes checks pad, repeat and reflect beyond the axis.
func TestLinearExtendModes(t *testing.T) {
	// Ten-pixel axis: t = x/10 at pixel centers.
	lut := grayRamp()

	pad := Linear(0.5, 0.5, 10.5, 0.5, lut, ExtendPad)
	if r, _, _, _ := pad.Fetch(25, 0); r != 255 {
		t.Errorf("pad past end = %d, want 255", r)
	}
	if r, _, _, _ := pad.Fetch(-9, 0); r != 0 {
		t.Errorf("pad before start = %d, want 0", r)
	}

	rep := Linear(0.5, 0.5, 10.5, 0.5, lut, ExtendRepeat)
	r0, _, _, _ := rep.Fetch(3, 0)
	r1, _, _, _ := rep.Fetch(13, 0)
	if r0 != r1 {
		t.Errorf("repeat: gray at t and t+1 differ: %d vs %d", r0, r1)
	}

	ref := Linear(0.5, 0.5, 10.5, 0.5, lut, ExtendReflect)
	r0, _, _, _ = ref.Fetch(7, 0)
	r1, _, _, _ = ref.Fetch(13, 0)
	if r0 != r1 {
		t.Errorf("reflect: gray at 0.7 and 1.3 differ: %d vs %d", r0, r1)
	}
}

// TestLinearDegenerate checks a zero-length axis collapses to the first
// table entry instead of dividing by zero.
func TestLinearDegenerate(t *testing.T) {
	f := Linear(5, 5, 5, 5, grayRamp(), ExtendPad)
	if r, _, _, _ := f.Fetch(50, 50); r != 0 {
		t.Errorf("degenerate axis = gray %d, want first entry", r)
	}
}

// TestRadialConcentric checks the simple center-out geometry: t is
// distance over radius.
func TestRadialConcentric(t *testing.T) {
	// Center on the center of pixel (20,20), radius 10.
	f := Radial(20.5, 20.5, 0, 20.5, 20.5, 10, grayRamp(), ExtendPad)

	if r, _, _, a := f.Fetch(20, 20); r != 0 || a != 255 {
		t.Errorf("center = gray %d alpha %d, want 0, 255", r, a)
	}
	if r, _, _, _ := f.Fetch(30, 20); r != 255 {
		t.Errorf("at radius = gray %d, want 255", r)
	}
	if r, _, _, _ := f.Fetch(26, 20); r != 153 {
		t.Errorf("at 0.6 radius = gray %d, want 153", r)
	}
	// Pad extends the rim color outward.
	if r, _, _, _ := f.Fetch(38, 20); r != 255 {
		t.Errorf("outside radius = gray %d, want 255", r)
	}
}

// TestRadialFocal exercises the two-circle quadratic with an offset
// focal point: t grows monotonically away from the focus along the axis.
func TestRadialFocal(t *testing.T) {
	f := Radial(15.5, 20.5, 2, 20.5, 20.5, 12, grayRamp(), ExtendPad)

	var prev int = -1
	for x := 16; x < 32; x++ {
		r, _, _, a := f.Fetch(x, 20)
		if a != 255 {
			t.Fatalf("pixel %d transparent inside the cone", x)
		}
		if int(r) < prev {
			t.Fatalf("gray decreased at x=%d: %d after %d", x, r, prev)
		}
		prev = int(r)
	}
}

// TestRadialLinearFallback covers the degenerate |qa| ~ 0 geometry where
// the center offset equals the radius delta.
func TestRadialLinearFallback(t *testing.T) {
	f := Radial(0.5, 0.5, 0, 10.5, 0.5, 10, grayRamp(), ExtendPad)
	if !f.qaLinear {
		t.Fatal("expected linear fallback for cd == dr geometry")
	}
	// On the axis the circles through each point still order by distance.
	r0, _, _, _ := f.Fetch(2, 0)
	r1, _, _, _ := f.Fetch(6, 0)
	if r0 >= r1 {
		t.Errorf("fallback not monotonic along axis: %d then %d", r0, r1)
	}
}

// TestRadialOutsideCone checks pixels with no valid circle come back
// transparent instead of clamped.
func TestRadialOutsideCone(t *testing.T) {
	// Strongly separated circles: pixels behind the focus fall outside
	// the cone (negative radius solutions).
	f := Radial(0.5, 0.5, 0, 30.5, 0.5, 5, grayRamp(), ExtendPad)
	_, _, _, a := f.Fetch(-20, 0)
	if a != 0 {
		t.Errorf("pixel outside the cone alpha = %d, want 0", a)
	}
}

// TestSweepAngles checks the angular mapping of a full-turn sweep.
func TestSweepAngles(t *testing.T) {
	// Center on the center of pixel (20,20), full turn.
	f := Sweep(20.5, 20.5, 0, 2*3.1415926535, grayRamp(), ExtendPad)

	if r, _, _, _ := f.Fetch(30, 20); r != 0 {
		t.Errorf("angle 0 = gray %d, want 0", r)
	}
	if r, _, _, _ := f.Fetch(20, 30); r != 64 {
		t.Errorf("angle pi/2 = gray %d, want 64", r)
	}
	if r, _, _, _ := f.Fetch(10, 20); r != 128 {
		t.Errorf("angle pi = gray %d, want 128", r)
	}
	// Below the center atan2 is negative; the wrap keeps the sweep
	// continuous through the second half turn instead of clamping.
	if r, _, _, _ := f.Fetch(20, 10); r != 192 {
		t.Errorf("angle -pi/2 = gray %d, want 192", r)
	}
}

// TestSweepNegativeSpan checks a sweep running clockwise wraps toward
// the negative direction.
func TestSweepNegativeSpan(t *testing.T) {
	f := Sweep(20.5, 20.5, 0, -2*3.1415926535, grayRamp(), ExtendPad)

	if r, _, _, _ := f.Fetch(20, 10); r != 64 {
		t.Errorf("angle -pi/2 = gray %d, want 64", r)
	}
	if r, _, _, _ := f.Fetch(20, 30); r != 192 {
		t.Errorf("angle pi/2 = gray %d, want 192", r)
	}
}

// checkerboard builds a w by h premultiplied image whose pixel (x,y) has
// a red channel encoding its position.
func checkerboard(w, h int) Image {
	pix := make([]uint8, w*h*4)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			o := (y*w + x) * 4
			pix[o] = uint8(x*16 + y)
			pix[o+3] = 255
		}
	}
	return Image{Pix: pix, W: w, H: h, Stride: w * 4}
}

var identity = [6]float32{1, 0, 0, 0, 1, 0}

// TestPatternNearestIdentity checks identity sampling maps device pixels
// straight to source pixels.
func TestPatternNearestIdentity(t *testing.T) {
	f := Pattern(checkerboard(4, 4), identity, ExtendPad, ExtendPad, FilterNearest)
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			r, _, _, _ := f.Fetch(x, y)
			if r != uint8(x*16+y) {
				t.Fatalf("pixel (%d,%d) = %d, want %d", x, y, r, x*16+y)
			}
		}
	}
}

// TestPatternRepeatPeriodicity verifies fetch(x+w) == fetch(x) under
// repeat, the defining property of the mode.
func TestPatternRepeatPeriodicity(t *testing.T) {
	f := Pattern(checkerboard(4, 4), identity, ExtendRepeat, ExtendRepeat, FilterNearest)
	for y := -3; y < 8; y++ {
		for x := -5; x < 9; x++ {
			r0, g0, b0, a0 := f.Fetch(x, y)
			r1, g1, b1, a1 := f.Fetch(x+4, y)
			if r0 != r1 || g0 != g1 || b0 != b1 || a0 != a1 {
				t.Fatalf("repeat not periodic at (%d,%d)", x, y)
			}
		}
	}
}

// TestPatternPadAndReflect spot-checks the other two extend modes.
func TestPatternPadAndReflect(t *testing.T) {
	pad := Pattern(checkerboard(4, 4), identity, ExtendPad, ExtendPad, FilterNearest)
	r, _, _, _ := pad.Fetch(10, 1)
	if r != 3*16+1 {
		t.Errorf("pad right = %d, want edge pixel %d", r, 3*16+1)
	}
	r, _, _, _ = pad.Fetch(-5, 2)
	if r != 2 {
		t.Errorf("pad left = %d, want edge pixel 2", r)
	}

	ref := Pattern(checkerboard(4, 4), identity, ExtendReflect, ExtendReflect, FilterNearest)
	r, _, _, _ = ref.Fetch(4, 0) // mirrors back to x=3
	if r != 3*16 {
		t.Errorf("reflect at w = %d, want %d", r, 3*16)
	}
	r, _, _, _ = ref.Fetch(7, 0) // mirrors back to x=0
	if r != 0 {
		t.Errorf("reflect at 2w-1 = %d, want 0", r)
	}
}

// TestPatternBilinear checks the four-tap blend at a half-texel offset.
func TestPatternBilinear(t *testing.T) {
	// 2x1 image: black then white. Scaling device by 2 puts device pixel
	// 1 a quarter of the way into the blend.
	img := Image{
		Pix:    []uint8{0, 0, 0, 255, 255, 255, 255, 255},
		W:      2,
		H:      1,
		Stride: 8,
	}
	inv := [6]float32{0.5, 0, 0, 0, 0.5, 0}
	f := Pattern(img, inv, ExtendPad, ExtendPad, FilterBilinear)

	r, _, _, a := f.Fetch(1, 0)
	if d := int(r) - 64; d < -2 || d > 2 {
		t.Errorf("quarter blend = %d, want ~64", r)
	}
	if a != 255 {
		t.Errorf("alpha = %d, want 255", a)
	}
}

// TestPatternEmptyImage checks a zero-size image fetches transparent.
func TestPatternEmptyImage(t *testing.T) {
	f := Pattern(Image{}, identity, ExtendRepeat, ExtendRepeat, FilterNearest)
	dst := []uint8{9, 9, 9, 9}
	f.Span(dst, 0, 0, 1)
	if dst[0] != 0 || dst[3] != 0 {
		t.Errorf("empty image span = %v, want zeros", dst)
	}
}

// TestSpanOpacity verifies the post-pass scales non-solid fetchers.
func TestSpanOpacity(t *testing.T) {
	f := Linear(0.5, 0.5, 10.5, 0.5, grayRamp(), ExtendPad)
	f.SetOpacity(0.5)
	r, _, _, a := f.Fetch(20, 0) // padded white
	if d := int(r) - 127; d < -1 || d > 1 {
		t.Errorf("half-opacity gray = %d, want ~127", r)
	}
	if d := int(a) - 127; d < -1 || d > 1 {
		t.Errorf("half-opacity alpha = %d, want ~127", a)
	}
}

// TestZeroFetcherTransparent checks the zero value is a transparent
// solid.
func TestZeroFetcherTransparent(t *testing.T) {
	var f Fetcher
	dst := []uint8{1, 2, 3, 4}
	f.Span(dst, 0, 0, 1)
	if dst[0] != 0 || dst[1] != 0 || dst[2] != 0 || dst[3] != 0 {
		t.Errorf("zero fetcher span = %v, want zeros", dst)
	}
}
