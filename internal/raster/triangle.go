package raster

import (
	"image/color"
	"math"

	"trskit/internal/vec"
)

// RasterizeTriangle fills one screen-space triangle with a flat-shaded solid
// color, depth-tested against the z-buffer. Vertex X/Y are pixel coordinates
// and Z is depth, larger being nearer the viewer.
//
// This is the hot path; the pixel loop does not allocate.
func RasterizeTriangle(fb *FrameBuffer, p0, p1, p2 vec.DVec3, c color.RGBA, lc *LightConfig) {
	x0, y0, z0 := p0[0], p0[1], p0[2]
	x1, y1, z1 := p1[0], p1[1], p1[2]
	x2, y2, z2 := p2[0], p2[1], p2[2]

	// Face normal for flat shading
	n := p1.Sub(p0).Cross(p2.Sub(p0))
	if n.Len() < 1e-8 {
		return
	}
	if n.Z() < 0 {
		n = n.Mul(-1)
	}
	shade := lc.ComputeShade(n.Normalize())

	// Bounding box
	minX := int(math.Min(math.Min(x0, x1), x2))
	maxX := int(math.Max(math.Max(x0, x1), x2)) + 1
	minY := int(math.Min(math.Min(y0, y1), y2))
	maxY := int(math.Max(math.Max(y0, y1), y2)) + 1

	if minX < 0 {
		minX = 0
	}
	if maxX >= fb.Width {
		maxX = fb.Width - 1
	}
	if minY < 0 {
		minY = 0
	}
	if maxY >= fb.Height {
		maxY = fb.Height - 1
	}
	if minX > maxX || minY > maxY {
		return
	}

	// Barycentric setup
	det := (y1-y2)*(x0-x2) + (x2-x1)*(y0-y2)
	if det > -1e-8 && det < 1e-8 {
		return
	}
	invDet := 1.0 / det

	dy12 := y1 - y2
	dx21 := x2 - x1
	dy20 := y2 - y0
	dx02 := x0 - x2

	// The color is constant across the face, so shading and tone mapping run
	// once per triangle.
	var rgb [3]uint8
	for k, ch := range [3]uint8{c.R, c.G, c.B} {
		lin := srgbToLinear[ch] * shade * lc.Exposure
		rgb[k] = clamp255(math.Pow(ACESTonemap(lin), lc.InvGamma) * 255)
	}

	for sy := minY; sy <= maxY; sy++ {
		dsy := float64(sy) - y2
		rowOff := sy * fb.Width
		for sx := minX; sx <= maxX; sx++ {
			dsx := float64(sx) - x2
			w0 := (dy12*dsx + dx21*dsy) * invDet
			w1 := (dy20*dsx + dx02*dsy) * invDet
			w2 := 1.0 - w0 - w1

			if w0 < -0.001 || w1 < -0.001 || w2 < -0.001 {
				continue
			}

			z := w0*z0 + w1*z1 + w2*z2
			zIdx := rowOff + sx
			if z <= fb.ZBuf[zIdx] {
				continue
			}
			fb.ZBuf[zIdx] = z

			pxIdx := zIdx * 4
			fb.Color[pxIdx] = rgb[0]
			fb.Color[pxIdx+1] = rgb[1]
			fb.Color[pxIdx+2] = rgb[2]
			fb.Color[pxIdx+3] = 255
		}
	}
}

func clamp255(v float64) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v + 0.5)
}
