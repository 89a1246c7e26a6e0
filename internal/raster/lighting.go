package raster

import (
	"math"

	"trskit/internal/vec"
)

// LightConfig holds the lighting parameters for flat-shaded cube faces.
// Directions are in screen space: +X right, +Y down, +Z toward the viewer.
type LightConfig struct {
	KeyDir   vec.DVec3
	FillDir  vec.DVec3
	HalfKey  vec.DVec3 // Blinn-Phong half-vector for the key light
	Ambient  float64
	Sky      float64
	Key      float64
	Fill     float64
	SpecInt  float64
	SpecPow  float64
	Exposure float64
	InvGamma float64
}

// DefaultLightConfig lights the cube from the upper left and front, so the
// three visible faces of an axis-aligned box land on distinct shades.
func DefaultLightConfig() LightConfig {
	keyDir := vec.New3(-0.45, -0.7, 0.55).Normalize()
	fillDir := vec.New3(0.6, 0.2, 0.75).Normalize()
	view := vec.New3(0.0, 0, 1)

	return LightConfig{
		KeyDir:   keyDir,
		FillDir:  fillDir,
		HalfKey:  keyDir.Add(view).Normalize(),
		Ambient:  0.35,
		Sky:      0.25,
		Key:      1.1,
		Fill:     0.35,
		SpecInt:  0.25,
		SpecPow:  24.0,
		Exposure: 1.0,
		InvGamma: 1.0 / 2.2,
	}
}

// ComputeShade returns the lighting scalar for a unit face normal that
// points toward the viewer.
func (lc *LightConfig) ComputeShade(normal vec.DVec3) float64 {
	key := math.Max(normal.Dot(lc.KeyDir), 0)
	fill := math.Max(normal.Dot(lc.FillDir), 0)

	// Upward faces (-Y) see the sky
	sky := (1 - normal.Y()) * 0.5 * lc.Sky

	spec := 0.0
	if key > 0 {
		spec = math.Pow(math.Max(normal.Dot(lc.HalfKey), 0), lc.SpecPow) * lc.SpecInt
	}
	return lc.Ambient + sky + key*lc.Key + fill*lc.Fill + spec
}

// Precomputed sRGB-to-linear lookup table (256 entries).
var srgbToLinear [256]float64

func init() {
	for i := 0; i < 256; i++ {
		srgbToLinear[i] = math.Pow(float64(i)/255.0, 2.2)
	}
}

// ACESTonemap applies ACES Filmic tone mapping to a linear value.
func ACESTonemap(x float64) float64 {
	return (x * (2.51*x + 0.03)) / (x*(2.43*x+0.59) + 0.14)
}
