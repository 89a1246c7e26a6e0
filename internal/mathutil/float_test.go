package mathutil

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEpsilonDefaults(t *testing.T) {
	require.Equal(t, float32(1.1920929e-07), Epsilon[float32]())
	require.Equal(t, 2.220446049250313e-16, Epsilon[float64]())
	require.Equal(t, Epsilon[float32](), DefaultMaxRelative[float32]())
	require.Equal(t, Epsilon[float64](), DefaultMaxRelative[float64]())
	require.Equal(t, uint32(4), DefaultMaxUlps)
}

func TestAbsDiffEq(t *testing.T) {
	tests := []struct {
		name string
		a, b float64
		eps  float64
		want bool
	}{
		{"equal", 1, 1, 0, true},
		{"within", 1, 1.05, 0.1, true},
		{"boundary", 1, 1.5, 0.5, true},
		{"outside", 1, 1.2, 0.1, false},
		{"symmetric", 1.2, 1, 0.1, false},
		{"nan", math.NaN(), math.NaN(), 1, false},
		{"inf", math.Inf(1), math.Inf(1), 1, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, AbsDiffEq(tt.a, tt.b, tt.eps))
		})
	}
}

func TestRelativeEq(t *testing.T) {
	eps := Epsilon[float64]()
	tests := []struct {
		name   string
		a, b   float64
		maxRel float64
		want   bool
	}{
		{"identical", 3, 3, 0, true},
		{"same infinity", math.Inf(1), math.Inf(1), eps, true},
		{"opposite infinity", math.Inf(1), math.Inf(-1), eps, false},
		{"infinity vs finite", math.Inf(1), 1e308, 1, false},
		{"large magnitude", 1e10, 1e10 + 1, 1e-9, true},
		{"large magnitude too strict", 1e10, 1e10 + 100, 1e-9, false},
		{"nan", math.NaN(), math.NaN(), 1, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, RelativeEq(tt.a, tt.b, eps, tt.maxRel))
		})
	}
}

func TestUlpsEq(t *testing.T) {
	one := float32(1)
	next := math.Nextafter32(one, 2)
	next4 := next
	for i := 0; i < 3; i++ {
		next4 = math.Nextafter32(next4, 2)
	}
	next5 := math.Nextafter32(next4, 2)

	require.True(t, UlpsEq(one, next, 0, 1))
	require.True(t, UlpsEq(one, next4, 0, DefaultMaxUlps))
	require.False(t, UlpsEq(one, next5, 0, DefaultMaxUlps))
	require.True(t, UlpsEq(next5, one, 0, 5))

	require.False(t, UlpsEq(float32(-1e-30), float32(1e-30), 0, math.MaxUint32))
	require.True(t, UlpsEq(float32(-1e-30), float32(1e-30), 1e-29, 0))
	require.True(t, UlpsEq(float32(0), float32(math.Copysign(0, -1)), 0, 0))
	require.False(t, UlpsEq(float32(math.NaN()), float32(math.NaN()), 1, math.MaxUint32))

	d := 1.0
	require.True(t, UlpsEq(d, math.Nextafter(d, 2), 0, 1))
	require.False(t, UlpsEq(d, math.Nextafter(math.Nextafter(d, 2), 2), 0, 1))
	require.True(t, UlpsEq(-d, math.Nextafter(-d, -2), 0, 1))
}

func TestAbsImpliesRelative(t *testing.T) {
	pairs := [][2]float64{{1, 1.0000001}, {100, 100.00001}, {-5, -5.000001}, {0.25, 0.2500002}}
	eps := 1e-5
	for _, p := range pairs {
		if AbsDiffEq(p[0], p[1], eps) {
			require.True(t, RelativeEq(p[0], p[1], eps, DefaultMaxRelative[float64]()), "%v", p)
			require.True(t, RelativeEq(p[0], p[1], 2*eps, 0), "%v", p)
		}
	}
}

func TestSliceTiers(t *testing.T) {
	a := []float32{1, 2, 3}
	b := []float32{1, 2, 3.5}

	require.True(t, AbsDiffEqSlice(a, a, 0))
	require.False(t, AbsDiffEqSlice(a, b, 0.1))
	require.True(t, AbsDiffEqSlice(a, b, 0.5))
	require.False(t, AbsDiffEqSlice(a, a[:2], 1))
	require.True(t, RelativeEqSlice(a, b, 0, 0.2))
	require.False(t, RelativeEqSlice(a, b, 0, 0.1))
	require.False(t, UlpsEqSlice(a, b, 0, DefaultMaxUlps))
	require.True(t, UlpsEqSlice(a, a, 0, 0))
}
