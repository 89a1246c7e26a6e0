package mathutil

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMat4MulIdentity(t *testing.T) {
	m := DMat4{
		1, 2, 3, 4,
		5, 6, 7, 8,
		9, 10, 11, 12,
		13, 14, 15, 16,
	}
	require.Equal(t, m, Mat4Mul(m, Mat4Identity[float64]()))
	require.Equal(t, m, Mat4Identity[float64]().Mul(m))
	require.True(t, Mat4Identity[float32]().IsIdentity())
	require.False(t, m.IsIdentity())
}

func TestMat4MulAssociative(t *testing.T) {
	a := Translation([3]float64{1, 2, 3})
	b := RotZ(Deg2Rad(30.0)).Mat4()
	c := NonUniformScale([3]float64{2, 3, 4})

	left := Mat4Mul(Mat4Mul(a, b), c)
	right := Mat4Mul(a, Mat4Mul(b, c))
	require.True(t, left.AbsDiffEq(right, 1e-12))
}

func TestMat4NotCommutative(t *testing.T) {
	tr := Translation([3]float64{1, 0, 0})
	sc := NonUniformScale([3]float64{2, 2, 2})

	p := [3]float64{1, 0, 0}
	require.Equal(t, [3]float64{3, 0, 0}, Mat4Mul(tr, sc).MulPoint(p))
	require.Equal(t, [3]float64{4, 0, 0}, Mat4Mul(sc, tr).MulPoint(p))
}

func TestMat4RowsCols(t *testing.T) {
	m := Translation([3]float32{7, 8, 9})
	require.Equal(t, float32(7), m[3])
	require.Equal(t, float32(8), m.At(1, 3))

	rows := m.Rows()
	require.Equal(t, [4]float32{0, 0, 1, 9}, rows[2])
	require.Equal(t, m, Mat4FromRows(rows))

	cols := m.Cols()
	require.Equal(t, [4]float32{7, 8, 9, 1}, cols[3])
	require.Equal(t, m, Mat4FromCols(cols))
	require.Equal(t, m, m.Transpose().Transpose())
}

func TestMat4MulVec4(t *testing.T) {
	m := Mat4Mul(Translation([3]float64{1, 2, 3}), NonUniformScale([3]float64{2, 2, 2}))
	require.Equal(t, [4]float64{3, 4, 5, 1}, m.MulVec4([4]float64{1, 1, 1, 1}))
	require.Equal(t, [4]float64{2, 2, 2, 0}, m.MulVec4([4]float64{1, 1, 1, 0}))
}

func TestMat4Tiers(t *testing.T) {
	a := Mat4Identity[float32]()
	b := a
	b[5] += 1e-6

	require.False(t, a.AbsDiffEq(b, Epsilon[float32]()))
	require.True(t, a.AbsDiffEq(b, 1e-5))
	require.True(t, a.RelativeEq(b, 0, 1e-5))
	require.False(t, a.UlpsEq(b, 0, DefaultMaxUlps))
	require.True(t, a.UlpsEq(b, 0, 32))
}

func TestConvertMat4(t *testing.T) {
	d := Translation([3]float64{0.1, 0.2, 0.3})
	f := ConvertMat4[float32](d)
	require.Equal(t, float32(0.1), f[3])
	require.True(t, ConvertMat4[float64](f).AbsDiffEq(d, 1e-7))
}

func TestMat4String(t *testing.T) {
	require.Equal(t,
		"[(1, 0, 0, 2), (0, 1, 0, 0), (0, 0, 1, 0), (0, 0, 0, 1)]",
		Translation([3]float64{2, 0, 0}).String())
	require.Equal(t, "(0.1, 2.5)", FormatTuple([]float32{0.1, 2.5}))
}

func TestMat3(t *testing.T) {
	r := RotZ(Deg2Rad(90.0))
	v := r.MulVec3([3]float64{1, 0, 0})
	require.InDelta(t, 0, v[0], 1e-12)
	require.InDelta(t, 1, v[1], 1e-12)
	require.InDelta(t, 1, r.Det(), 1e-12)

	d := Mat3Diag(2.0, 3.0, 4.0)
	require.Equal(t, 24.0, d.Det())
	require.Equal(t, d, Mat3Mul(d, Mat3Identity[float64]()))
	require.True(t, Mat3Mul(r, r.Transpose()).AbsDiffEq(Mat3Identity[float64](), 1e-12))

	m := d.Mat4()
	require.Equal(t, 4.0, m.At(2, 2))
	require.Equal(t, 1.0, m.At(3, 3))
	require.Equal(t, 0.0, m.At(0, 3))
}
