package rast

import (
	"fmt"
	"image"
	"image/color"

	"github.com/gogpu/gputypes"
	xdraw "golang.org/x/image/draw"

	"github.com/gogpu/rast/internal/blend"
)

// Pixmap is a rectangular premultiplied-RGBA pixel buffer, the render
// target of the rasterizer. The buffer is owned by the caller side of
// the API: draw calls receive it by reference and write in place, no
// copy is retained across calls.
type Pixmap struct {
	width  int
	height int
	pix    []uint8 // premultiplied RGBA, 4 bytes per pixel
}

// NewPixmap creates a pixmap with the given dimensions, cleared to
// transparent.
func NewPixmap(width, height int) *Pixmap {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	return &Pixmap{
		width:  width,
		height: height,
		pix:    make([]uint8, width*height*4),
	}
}

// Width returns the width of the pixmap.
func (p *Pixmap) Width() int {
	return p.width
}

// Height returns the height of the pixmap.
func (p *Pixmap) Height() int {
	return p.height
}

// Pix returns the raw premultiplied pixel data.
func (p *Pixmap) Pix() []uint8 {
	return p.pix
}

// Stride returns the number of bytes per row.
func (p *Pixmap) Stride() int {
	return p.width * 4
}

// Format returns the pixel format of the buffer, for callers handing it
// to a gogpu texture upload.
func (p *Pixmap) Format() gputypes.TextureFormat {
	return gputypes.TextureFormatRGBA8Unorm
}

// Clear fills the entire pixmap with a color.
func (p *Pixmap) Clear(c RGBA) {
	r, g, b, a := c.Premultiply()
	blend.FillSpan(p.pix, r, g, b, a)
}

// CopyFrom replaces the pixel data with src. The source must have
// exactly the same length as the pixmap's buffer: a mismatch is a
// programming error and is reported instead of being truncated
// silently.
func (p *Pixmap) CopyFrom(src []uint8) error {
	if len(src) != len(p.pix) {
		return fmt.Errorf("rast: buffer length %d does not match %dx%d target (want %d)",
			len(src), p.width, p.height, len(p.pix))
	}
	copy(p.pix, src)
	return nil
}

// SetPixel sets one pixel from a straight-alpha color.
func (p *Pixmap) SetPixel(x, y int, c RGBA) {
	if x < 0 || x >= p.width || y < 0 || y >= p.height {
		return
	}
	o := (y*p.width + x) * 4
	p.pix[o], p.pix[o+1], p.pix[o+2], p.pix[o+3] = c.Premultiply()
}

// GetPixel returns one pixel as a straight-alpha color.
func (p *Pixmap) GetPixel(x, y int) RGBA {
	if x < 0 || x >= p.width || y < 0 || y >= p.height {
		return Transparent
	}
	o := (y*p.width + x) * 4
	a := p.pix[o+3]
	if a == 0 {
		return Transparent
	}
	return RGBA{
		R: float64(p.pix[o]) / float64(a),
		G: float64(p.pix[o+1]) / float64(a),
		B: float64(p.pix[o+2]) / float64(a),
		A: float64(a) / 255,
	}
}

// ToImage converts the pixmap to an *image.RGBA. image.RGBA is also
// premultiplied, so the pixel data copies straight across.
func (p *Pixmap) ToImage() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, p.width, p.height))
	copy(img.Pix, p.pix)
	return img
}

// FromImage creates a pixmap from an arbitrary image.
func FromImage(img image.Image) *Pixmap {
	bounds := img.Bounds()
	pm := NewPixmap(bounds.Dx(), bounds.Dy())
	dst := &image.RGBA{Pix: pm.pix, Stride: pm.Stride(), Rect: image.Rect(0, 0, pm.width, pm.height)}
	xdraw.Draw(dst, dst.Rect, img, bounds.Min, xdraw.Src)
	return pm
}

// FromImageScaled creates a pixmap of the given size, resampling the
// source image bilinearly. Useful for preparing pattern sources at the
// resolution they will be sampled at.
func FromImageScaled(img image.Image, width, height int) *Pixmap {
	pm := NewPixmap(width, height)
	dst := &image.RGBA{Pix: pm.pix, Stride: pm.Stride(), Rect: image.Rect(0, 0, width, height)}
	xdraw.BiLinear.Scale(dst, dst.Rect, img, img.Bounds(), xdraw.Src, nil)
	return pm
}

// At implements the image.Image interface.
func (p *Pixmap) At(x, y int) color.Color {
	return p.GetPixel(x, y).Color()
}

// Bounds implements the image.Image interface.
func (p *Pixmap) Bounds() image.Rectangle {
	return image.Rect(0, 0, p.width, p.height)
}

// ColorModel implements the image.Image interface.
func (p *Pixmap) ColorModel() color.Model {
	return color.NRGBAModel
}
