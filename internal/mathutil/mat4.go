package mathutil

import (
	"strconv"
	"strings"
)

// Matrix4 is a 4×4 matrix stored row-major: m[4*r + c] is row r, column c.
// Matrices act on column vectors by left multiplication, so the translation
// of an affine transform lives in m[3], m[7] and m[11].
type Matrix4[T Float] [16]T

type (
	Mat4  = Matrix4[float32]
	DMat4 = Matrix4[float64]
)

func Mat4Identity[T Float]() Matrix4[T] {
	return Matrix4[T]{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
}

// Mat4Mul returns a × b.
func Mat4Mul[T Float](a, b Matrix4[T]) Matrix4[T] {
	var m Matrix4[T]
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			m[r*4+c] = a[r*4+0]*b[0*4+c] + a[r*4+1]*b[1*4+c] +
				a[r*4+2]*b[2*4+c] + a[r*4+3]*b[3*4+c]
		}
	}
	return m
}

// Mul returns m × b.
func (m Matrix4[T]) Mul(b Matrix4[T]) Matrix4[T] {
	return Mat4Mul(m, b)
}

// MulPoint transforms a 3D point (w=1) by the 4×4 matrix.
func (m Matrix4[T]) MulPoint(v [3]T) [3]T {
	return [3]T{
		m[0]*v[0] + m[1]*v[1] + m[2]*v[2] + m[3],
		m[4]*v[0] + m[5]*v[1] + m[6]*v[2] + m[7],
		m[8]*v[0] + m[9]*v[1] + m[10]*v[2] + m[11],
	}
}

// MulVec4 returns M × v.
func (m Matrix4[T]) MulVec4(v [4]T) [4]T {
	var out [4]T
	for r := 0; r < 4; r++ {
		out[r] = m[r*4]*v[0] + m[r*4+1]*v[1] + m[r*4+2]*v[2] + m[r*4+3]*v[3]
	}
	return out
}

// FromMat3Translation builds a 4×4 affine matrix from a 3×3 rotation and translation.
func FromMat3Translation[T Float](r Matrix3[T], t [3]T) Matrix4[T] {
	return Matrix4[T]{
		r[0], r[1], r[2], t[0],
		r[3], r[4], r[5], t[1],
		r[6], r[7], r[8], t[2],
		0, 0, 0, 1,
	}
}

// Translation returns the matrix that moves points by t.
func Translation[T Float](t [3]T) Matrix4[T] {
	return FromMat3Translation(Mat3Identity[T](), t)
}

// NonUniformScale returns the matrix that scales each axis independently.
func NonUniformScale[T Float](s [3]T) Matrix4[T] {
	return Mat3Diag(s[0], s[1], s[2]).Mat4()
}

func (m Matrix4[T]) At(row, col int) T {
	return m[row*4+col]
}

// Rows returns the matrix as an array of rows.
func (m Matrix4[T]) Rows() [4][4]T {
	var rows [4][4]T
	for r := 0; r < 4; r++ {
		copy(rows[r][:], m[r*4:r*4+4])
	}
	return rows
}

func Mat4FromRows[T Float](rows [4][4]T) Matrix4[T] {
	var m Matrix4[T]
	for r := 0; r < 4; r++ {
		copy(m[r*4:r*4+4], rows[r][:])
	}
	return m
}

// Cols returns the matrix as an array of columns, the layout GL-style
// column-major consumers expect.
func (m Matrix4[T]) Cols() [4][4]T {
	return m.Transpose().Rows()
}

func Mat4FromCols[T Float](cols [4][4]T) Matrix4[T] {
	return Mat4FromRows(cols).Transpose()
}

func (m Matrix4[T]) Transpose() Matrix4[T] {
	var t Matrix4[T]
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			t[c*4+r] = m[r*4+c]
		}
	}
	return t
}

// IsIdentity checks if the matrix is approximately identity.
func (m Matrix4[T]) IsIdentity() bool {
	return m.AbsDiffEq(Mat4Identity[T](), Epsilon[T]()*16)
}

func (m Matrix4[T]) AbsDiffEq(o Matrix4[T], epsilon T) bool {
	return AbsDiffEqSlice(m[:], o[:], epsilon)
}

func (m Matrix4[T]) RelativeEq(o Matrix4[T], epsilon, maxRelative T) bool {
	return RelativeEqSlice(m[:], o[:], epsilon, maxRelative)
}

func (m Matrix4[T]) UlpsEq(o Matrix4[T], epsilon T, maxUlps uint32) bool {
	return UlpsEqSlice(m[:], o[:], epsilon, maxUlps)
}

// ConvertMat4 casts every element of m to precision T.
func ConvertMat4[T, S Float](m Matrix4[S]) Matrix4[T] {
	var out Matrix4[T]
	for i, v := range m {
		out[i] = T(v)
	}
	return out
}

// String renders the matrix one row per bracket group.
func (m Matrix4[T]) String() string {
	var b strings.Builder
	b.WriteByte('[')
	for r := 0; r < 4; r++ {
		if r > 0 {
			b.WriteString(", ")
		}
		b.WriteString(FormatTuple(m[r*4 : r*4+4]))
	}
	b.WriteByte(']')
	return b.String()
}

// FormatTuple renders scalars as "(a, b, ...)" with the shortest
// representation that round-trips at the scalar's own precision.
func FormatTuple[T Float](vs []T) string {
	bits := 64
	if is32[T]() {
		bits = 32
	}
	var b strings.Builder
	b.WriteByte('(')
	for i, v := range vs {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(strconv.FormatFloat(float64(v), 'g', -1, bits))
	}
	b.WriteByte(')')
	return b.String()
}
