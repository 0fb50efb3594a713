package rast

import (
	"github.com/gogpu/rast/internal/blend"
	"github.com/gogpu/rast/internal/fetch"
	"github.com/gogpu/rast/internal/raster"
)

// FillOptions control a single Fill call.
//
// The zero value selects the defaults: opaque black paint, non-zero fill
// rule, source-over compositing, full opacity. A zero Opacity is treated
// as 1 so that partially initialized options stay visible.
type FillOptions struct {
	Paint   Paint    // nil means opaque black
	Rule    FillRule // winding rule for self-intersecting paths
	Op      CompOp   // compositing operator
	Opacity float64  // global alpha in (0, 1]; 0 means 1
}

// Context rasterizes filled paths into a target pixmap. It owns the edge
// storage, the scanline rasterizer and a source scratch row, all of which
// are reused across Fill calls so that steady-state filling does not
// allocate.
//
// A Context is not safe for concurrent use.
type Context struct {
	target  *Pixmap
	storage *raster.EdgeStorage
	builder *raster.EdgeBuilder
	ras     *raster.Rasterizer
	srcRow  []uint8 // fetcher output, one target row

	// spanFn is bound once so the per-row callback does not allocate on
	// every Fill. It reads the per-fill state below.
	spanFn raster.SpanFunc

	fetcher        fetch.Fetcher
	op             blend.CompOp
	usesSrc        bool
	constSrc       bool // srcRow already holds the source
	fast           bool // opaque solid under SrcOver/SrcCopy
	sr, sg, sb, sa uint8
}

// NewContext creates a rasterization context drawing into target.
func NewContext(target *Pixmap) *Context {
	c := &Context{target: target}
	c.spanFn = c.composeRow
	c.bind()
	return c
}

// Target returns the pixmap the context draws into.
func (c *Context) Target() *Pixmap { return c.target }

// SetTarget redirects the context to a new pixmap, resizing the internal
// buffers as needed.
func (c *Context) SetTarget(target *Pixmap) {
	c.target = target
	c.bind()
}

func (c *Context) bind() {
	w, h := c.target.width, c.target.height
	if c.storage == nil {
		c.storage = raster.NewEdgeStorage(h)
		c.builder = raster.NewEdgeBuilder(c.storage, w, h)
		c.ras = raster.NewRasterizer(w, h)
	} else {
		c.storage.Resize(h)
		c.builder.SetSize(w, h)
		c.ras.Resize(w, h)
	}
	if cap(c.srcRow) < 4*w {
		c.srcRow = make([]uint8, 4*w)
	} else {
		c.srcRow = c.srcRow[:4*w]
	}
}

// Fill rasterizes the polygon set described by vertices and fills it.
//
// vertices holds interleaved x, y coordinates in device space.
// contourCounts gives the number of vertices in each closed contour; if
// the counts do not sum to the vertex count, the whole vertex list is
// treated as a single contour. Each contour is implicitly closed back to
// its first vertex. Non-finite vertices drop the edges that touch them.
func (c *Context) Fill(vertices []float64, contourCounts []uint32, opts FillOptions) {
	if c.target.width == 0 || c.target.height == 0 || len(vertices) < 6 {
		return
	}

	opacity := opts.Opacity
	if opacity <= 0 || opacity > 1 {
		opacity = 1
	}
	c.fetcher = compileFetcher(opts.Paint)
	c.fetcher.SetOpacity(opacity)
	c.op = opts.Op

	c.storage.Clear()
	if c.builder.Build(vertices, contourCounts) {
		Logger().Debug("contour counts do not sum to vertex count, filling as one contour",
			"vertices", len(vertices)/2, "contours", len(contourCounts))
	}
	if c.storage.Empty() {
		return
	}

	c.fast = c.fetcher.Opaque() && (c.op == blend.SrcOver || c.op == blend.SrcCopy)
	c.usesSrc = blend.UsesSource(c.op)
	c.constSrc = false
	if c.fetcher.Kind() == fetch.KindSolid {
		c.sr, c.sg, c.sb, c.sa = c.fetcher.SolidPixel()
		if c.usesSrc && !c.fast {
			// Constant source: materialize the row once for the fill.
			blend.FillSpan(c.srcRow, c.sr, c.sg, c.sb, c.sa)
			c.constSrc = true
		}
	}

	c.ras.Fill(c.storage, rasterRule(opts.Rule), c.spanFn)
}

// composeRow composites one resolved coverage row into the target.
func (c *Context) composeRow(y, x0 int, alpha []uint8) {
	n := len(alpha)
	o := (y*c.target.width + x0) * 4
	row := c.target.pix[o : o+4*n]

	if c.fast {
		fillOpaqueRow(row, alpha, c.sr, c.sg, c.sb, c.sa)
		return
	}
	src := c.srcRow[:4*n]
	if c.usesSrc && !c.constSrc {
		c.fetcher.Span(src, x0, y, n)
	}
	blend.ComposeSpan(c.op, row, src, alpha)
}

// fillOpaqueRow is the fast path for opaque solid fills under SrcOver or
// SrcCopy, where both operators reduce to a coverage lerp and runs of
// full coverage become plain stores.
func fillOpaqueRow(dst, alpha []uint8, sr, sg, sb, sa uint8) {
	i := 0
	n := len(alpha)
	for i < n {
		a := alpha[i]
		if a == 255 {
			run := i
			for run < n && alpha[run] == 255 {
				run++
			}
			blend.FillSpan(dst[i*4:run*4], sr, sg, sb, sa)
			i = run
			continue
		}
		if a > 0 {
			o := i * 4
			inv := uint32(255 - a)
			ca := uint32(a)
			dst[o] = uint8((uint32(sr)*ca + uint32(dst[o])*inv + 128) * 257 >> 16)
			dst[o+1] = uint8((uint32(sg)*ca + uint32(dst[o+1])*inv + 128) * 257 >> 16)
			dst[o+2] = uint8((uint32(sb)*ca + uint32(dst[o+2])*inv + 128) * 257 >> 16)
			dst[o+3] = uint8((uint32(sa)*ca + uint32(dst[o+3])*inv + 128) * 257 >> 16)
		}
		i++
	}
}

// compileFetcher lowers a public paint into its span fetcher.
func compileFetcher(p Paint) fetch.Fetcher {
	switch p := p.(type) {
	case nil:
		return fetch.Solid(0, 0, 0, 255)
	case Solid:
		r, g, b, a := p.Color.Premultiply()
		return fetch.Solid(r, g, b, a)
	case *LinearGradient:
		return p.fetcher()
	case *RadialGradient:
		return p.fetcher()
	case *SweepGradient:
		return p.fetcher()
	case *Pattern:
		return p.fetcher()
	default:
		// Unknown Paint implementations cannot exist outside this
		// package; treat one as transparent if it ever appears.
		return fetch.Solid(0, 0, 0, 0)
	}
}
