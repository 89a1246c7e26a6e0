package mathutil

// Matrix3 is a 3×3 matrix stored row-major: [r0c0, r0c1, r0c2, r1c0, ...].
// Value type for zero heap allocation.
type Matrix3[T Float] [9]T

type (
	Mat3  = Matrix3[float32]
	DMat3 = Matrix3[float64]
)

func Mat3Identity[T Float]() Matrix3[T] {
	return Matrix3[T]{1, 0, 0, 0, 1, 0, 0, 0, 1}
}

func Mat3Diag[T Float](x, y, z T) Matrix3[T] {
	return Matrix3[T]{x, 0, 0, 0, y, 0, 0, 0, z}
}

// Mat3Mul returns a × b.
func Mat3Mul[T Float](a, b Matrix3[T]) Matrix3[T] {
	var m Matrix3[T]
	for r := 0; r < 3; r++ {
		for c := 0; c < 3; c++ {
			m[r*3+c] = a[r*3+0]*b[0*3+c] + a[r*3+1]*b[1*3+c] + a[r*3+2]*b[2*3+c]
		}
	}
	return m
}

// MulVec3 returns M × v.
func (m Matrix3[T]) MulVec3(v [3]T) [3]T {
	return [3]T{
		m[0]*v[0] + m[1]*v[1] + m[2]*v[2],
		m[3]*v[0] + m[4]*v[1] + m[5]*v[2],
		m[6]*v[0] + m[7]*v[1] + m[8]*v[2],
	}
}

func (m Matrix3[T]) Det() T {
	return m[0]*(m[4]*m[8]-m[5]*m[7]) -
		m[1]*(m[3]*m[8]-m[5]*m[6]) +
		m[2]*(m[3]*m[7]-m[4]*m[6])
}

func (m Matrix3[T]) Transpose() Matrix3[T] {
	return Matrix3[T]{
		m[0], m[3], m[6],
		m[1], m[4], m[7],
		m[2], m[5], m[8],
	}
}

// Mat4 embeds m as the upper-left block of an otherwise identity 4×4 matrix.
func (m Matrix3[T]) Mat4() Matrix4[T] {
	return FromMat3Translation(m, [3]T{})
}

func (m Matrix3[T]) AbsDiffEq(o Matrix3[T], epsilon T) bool {
	return AbsDiffEqSlice(m[:], o[:], epsilon)
}
