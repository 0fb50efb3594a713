// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package blend

import "testing"

// composeRef is the reference per-pixel path the specialized span loops
// must agree with.
func composeRef(op CompOp, dst, src, cov []uint8) {
	proc := procs[op]
	for i, c := range cov {
		if c == 0 {
			continue
		}
		o := i * 4
		sr, sg, sb, sa := src[o], src[o+1], src[o+2], src[o+3]
		if c < 255 {
			sr = mulDiv255(sr, c)
			sg = mulDiv255(sg, c)
			sb = mulDiv255(sb, c)
			sa = mulDiv255(sa, c)
		}
		dst[o], dst[o+1], dst[o+2], dst[o+3] = proc(sr, sg, sb, sa, dst[o], dst[o+1], dst[o+2], dst[o+3])
	}
}

func spanFixture() (dst, src, cov []uint8) {
	cov = []uint8{0, 1, 64, 128, 200, 254, 255, 255}
	n := len(cov)
	dst = make([]uint8, 4*n)
	src = make([]uint8, 4*n)
	for i := 0; i < n; i++ {
		o := i * 4
		dst[o], dst[o+1], dst[o+2], dst[o+3] = uint8(30*i), 0, uint8(255-30*i), 255
		sa := uint8(255 - 10*i)
		src[o], src[o+1], src[o+2], src[o+3] = sa, uint8(10*i), 0, sa
	}
	return dst, src, cov
}

// TestComposeSpanMatchesPerPixel checks the specialized SrcOver loop and
// the generic loop against straightforward per-pixel composition.
func TestComposeSpanMatchesPerPixel(t *testing.T) {
	for _, op := range []CompOp{SrcOver, DstIn, Plus, Multiply} {
		t.Run(op.String(), func(t *testing.T) {
			dst, src, cov := spanFixture()
			ref := make([]uint8, len(dst))
			copy(ref, dst)
			composeRef(op, ref, src, cov)

			ComposeSpan(op, dst, src, cov)
			for i := range dst {
				if dst[i] != ref[i] {
					t.Fatalf("%v: byte %d = %d, want %d", op, i, dst[i], ref[i])
				}
			}
		})
	}
}

// TestComposeSpanZeroCoverage verifies untouched pixels stay untouched.
func TestComposeSpanZeroCoverage(t *testing.T) {
	dst := []uint8{10, 20, 30, 255}
	src := []uint8{255, 255, 255, 255}
	ComposeSpan(SrcOver, dst, src, []uint8{0})
	if dst[0] != 10 || dst[1] != 20 || dst[2] != 30 || dst[3] != 255 {
		t.Errorf("zero coverage modified dst: %v", dst)
	}
}

// TestComposeSpanClearCoverage verifies Clear fades the destination by
// coverage instead of scaling a source it does not use.
func TestComposeSpanClearCoverage(t *testing.T) {
	dst := []uint8{200, 100, 50, 255, 200, 100, 50, 255}
	src := make([]uint8, 8)
	ComposeSpan(Clear, dst, src, []uint8{255, 128})

	if dst[0] != 0 || dst[3] != 0 {
		t.Errorf("full-coverage clear left %v", dst[:4])
	}
	// Half coverage keeps about half of the destination.
	if absInt(int(dst[4])-100) > 2 || absInt(int(dst[7])-128) > 2 {
		t.Errorf("half-coverage clear = %v, want ~(100,50,25,128)", dst[4:])
	}
}

// TestComposeSpanSrcCopyPartial confirms antialiased edges survive a
// copy: partial coverage interpolates toward the destination.
func TestComposeSpanSrcCopyPartial(t *testing.T) {
	dst := []uint8{0, 0, 0, 255}
	src := []uint8{255, 0, 0, 255}
	ComposeSpan(SrcCopy, dst, src, []uint8{128})
	if absInt(int(dst[0])-128) > 1 || dst[1] != 0 || absInt(int(dst[3])-255) > 1 {
		t.Errorf("partial copy = %v, want ~(128,0,0,255)", dst)
	}
}

// TestFillSpan verifies the constant fill covers whole pixels only.
func TestFillSpan(t *testing.T) {
	dst := make([]uint8, 12)
	FillSpan(dst, 1, 2, 3, 4)
	want := []uint8{1, 2, 3, 4, 1, 2, 3, 4, 1, 2, 3, 4}
	for i := range dst {
		if dst[i] != want[i] {
			t.Fatalf("FillSpan byte %d = %d, want %d", i, dst[i], want[i])
		}
	}
}
