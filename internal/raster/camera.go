package raster

import (
	"math"

	"trskit/internal/mathutil"
	"trskit/internal/vec"
)

// Camera orients the scene before orthographic projection. The viewer looks
// down -Z after the view rotation; +Y is up.
type Camera struct {
	Yaw   float64 // degrees about Y
	Pitch float64 // degrees about X, negative looks down
}

// View returns the 3×3 view rotation: yaw first, then pitch.
func (c Camera) View() mathutil.DMat3 {
	yaw := mathutil.RotY(mathutil.Deg2Rad(c.Yaw))
	pitch := mathutil.RotX(mathutil.Deg2Rad(-c.Pitch))
	return mathutil.Mat3Mul(pitch, yaw)
}

// Bounds is the axis-aligned extent of view-space points.
type Bounds struct {
	Min, Max vec.DVec3
}

// EmptyBounds returns bounds that any point extends.
func EmptyBounds() Bounds {
	return Bounds{
		Min: vec.Splat3[float64](math.Inf(1)),
		Max: vec.Splat3[float64](math.Inf(-1)),
	}
}

// Extend grows b to include p.
func (b *Bounds) Extend(p vec.DVec3) {
	for k := 0; k < 3; k++ {
		b.Min[k] = math.Min(b.Min[k], p[k])
		b.Max[k] = math.Max(b.Max[k], p[k])
	}
}

// Empty reports whether no point was added.
func (b Bounds) Empty() bool {
	return b.Min[0] > b.Max[0]
}

// Projection maps view space onto a square canvas.
type Projection struct {
	Center [2]float64
	Scale  float64 // pixels per view unit
	Size   int
}

// FitProjection centers b on a canvas of the given size, leaving margin
// pixels on every side of the larger XY extent.
func FitProjection(b Bounds, size, margin int) Projection {
	center := [2]float64{
		(b.Min[0] + b.Max[0]) / 2,
		(b.Min[1] + b.Max[1]) / 2,
	}
	span := math.Max(b.Max[0]-b.Min[0], b.Max[1]-b.Min[1])
	if span < 0.001 {
		span = 0.001
	}
	usable := size - 2*margin
	if usable < 1 {
		usable = 1
	}
	return Projection{Center: center, Scale: float64(usable) / span, Size: size}
}

// Project converts a view-space point to pixel X/Y (Y down) keeping the view
// depth as Z.
func (p Projection) Project(v vec.DVec3) vec.DVec3 {
	half := float64(p.Size) / 2
	return vec.New3(
		(v[0]-p.Center[0])*p.Scale+half,
		-(v[1]-p.Center[1])*p.Scale+half,
		v[2],
	)
}
