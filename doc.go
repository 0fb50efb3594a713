// Package rast is a software 2D rasterizer with analytic antialiasing.
//
// It fills polygonal paths into premultiplied RGBA pixmaps: edges are
// clipped and bucketed by scanline, walked with exact area coverage (no
// supersampling), and composited through the full Porter-Duff operator
// set plus the separable blend modes. Paints include solid colors,
// linear, radial and sweep gradients, and transformed image patterns.
//
// The entry point is [NewContext]:
//
//	pm := rast.NewPixmap(512, 512)
//	ctx := rast.NewContext(pm)
//	ctx.Fill([]float64{100, 100, 400, 120, 250, 450}, nil, rast.FillOptions{
//	    Paint: rast.NewSolid(rast.Red),
//	})
//
// All rasterization state is reused between Fill calls, so steady-state
// drawing does not allocate.
package rast
