package raster

import (
	"image"

	"trskit/internal/scene"
	"trskit/internal/vec"
)

// DefaultMargin is the border, in output pixels, kept free around the scene.
const DefaultMargin = 16

// Options control a scene render.
type Options struct {
	Size        int // output edge in pixels
	Supersample int // render at Size*Supersample, then downscale
	Margin      int // output pixels, 0 = DefaultMargin
	Camera      Camera

	// Cache is shared across renders to reuse local matrices. Optional.
	Cache *scene.MatrixCache[float64]
}

// Render draws every object of s as a unit cube transformed by its world
// matrix. The returned image is Size*Supersample pixels square.
func Render(s *scene.Scene, opts Options) *image.NRGBA {
	supersample := max(opts.Supersample, 1)
	margin := opts.Margin
	if margin == 0 {
		margin = DefaultMargin
	}
	renderSize := opts.Size * supersample

	worlds := s.WorldMatrices(opts.Cache)
	R := opts.Camera.View()

	// View-space corners of every cube
	corners := make([][8]vec.DVec3, len(worlds))
	bounds := EmptyBounds()
	for i, w := range worlds {
		for k, c := range cubeCorners {
			v := vec.DVec3(R.MulVec3(w.MulPoint(c)))
			corners[i][k] = v
			bounds.Extend(v)
		}
	}

	fb := NewFrameBuffer(renderSize, renderSize)
	if bounds.Empty() {
		return fb.Image()
	}

	proj := FitProjection(bounds, renderSize, margin*supersample)
	lc := DefaultLightConfig()

	for i := range corners {
		var px [8]vec.DVec3
		for k, v := range corners[i] {
			px[k] = proj.Project(v)
		}
		col := s.Objects[i].Color
		for _, f := range cubeFaces {
			RasterizeTriangle(fb, px[f[0]], px[f[1]], px[f[2]], col, &lc)
			RasterizeTriangle(fb, px[f[0]], px[f[2]], px[f[3]], col, &lc)
		}
	}

	return fb.Image()
}
