package mathutil

import "math"

// Quaternion represents a quaternion (x, y, z, w); w is the scalar part.
type Quaternion[T Float] [4]T

type (
	Quat  = Quaternion[float32]
	DQuat = Quaternion[float64]
)

// NewQuat builds a quaternion from its imaginary parts and scalar part.
func NewQuat[T Float](x, y, z, w T) Quaternion[T] {
	return Quaternion[T]{x, y, z, w}
}

// QuatIdentity returns the rotation that leaves every vector unchanged.
func QuatIdentity[T Float]() Quaternion[T] {
	return Quaternion[T]{0, 0, 0, 1}
}

func (q Quaternion[T]) X() T { return q[0] }
func (q Quaternion[T]) Y() T { return q[1] }
func (q Quaternion[T]) Z() T { return q[2] }
func (q Quaternion[T]) W() T { return q[3] }

// Imag returns the vector part (x, y, z).
func (q Quaternion[T]) Imag() [3]T { return [3]T{q[0], q[1], q[2]} }

// QuatFromAxisAngle returns the rotation of angle radians about axis.
// The axis is normalized; a zero axis yields the identity.
func QuatFromAxisAngle[T Float](axis [3]T, angle T) Quaternion[T] {
	x, y, z := float64(axis[0]), float64(axis[1]), float64(axis[2])
	l := math.Sqrt(x*x + y*y + z*z)
	if l == 0 {
		return QuatIdentity[T]()
	}
	s, c := math.Sincos(float64(angle) * 0.5)
	s /= l
	return Quaternion[T]{T(x * s), T(y * s), T(z * s), T(c)}
}

// EulerToQuat converts Euler XYZ (radians) to a quaternion.
func EulerToQuat[T Float](rx, ry, rz T) Quaternion[T] {
	cx, sx := math.Cos(float64(rx)*0.5), math.Sin(float64(rx)*0.5)
	cy, sy := math.Cos(float64(ry)*0.5), math.Sin(float64(ry)*0.5)
	cz, sz := math.Cos(float64(rz)*0.5), math.Sin(float64(rz)*0.5)

	return Quaternion[T]{
		T(sx*cy*cz - cx*sy*sz), // x
		T(cx*sy*cz + sx*cy*sz), // y
		T(cx*cy*sz - sx*sy*cz), // z
		T(cx*cy*cz + sx*sy*sz), // w
	}
}

// Mul returns the Hamilton product q ⋅ r (apply r, then q).
func (q Quaternion[T]) Mul(r Quaternion[T]) Quaternion[T] {
	return Quaternion[T]{
		q[3]*r[0] + q[0]*r[3] + q[1]*r[2] - q[2]*r[1],
		q[3]*r[1] - q[0]*r[2] + q[1]*r[3] + q[2]*r[0],
		q[3]*r[2] + q[0]*r[1] - q[1]*r[0] + q[2]*r[3],
		q[3]*r[3] - q[0]*r[0] - q[1]*r[1] - q[2]*r[2],
	}
}

func (q Quaternion[T]) Conjugate() Quaternion[T] {
	return Quaternion[T]{-q[0], -q[1], -q[2], q[3]}
}

func (q Quaternion[T]) Len() T {
	return T(math.Sqrt(float64(q[0]*q[0] + q[1]*q[1] + q[2]*q[2] + q[3]*q[3])))
}

// Normalize returns q scaled to unit length, or the identity if q is zero.
func (q Quaternion[T]) Normalize() Quaternion[T] {
	l := q.Len()
	if l == 0 {
		return QuatIdentity[T]()
	}
	return Quaternion[T]{q[0] / l, q[1] / l, q[2] / l, q[3] / l}
}

// Mat3 converts the quaternion to a 3×3 rotation matrix. The quaternion is
// used as given, without normalization.
func (q Quaternion[T]) Mat3() Matrix3[T] {
	x, y, z, w := q[0], q[1], q[2], q[3]
	xx, yy, zz := x*x, y*y, z*z
	xy, xz, yz := x*y, x*z, y*z
	wx, wy, wz := w*x, w*y, w*z

	return Matrix3[T]{
		1 - 2*(yy+zz), 2 * (xy - wz), 2 * (xz + wy),
		2 * (xy + wz), 1 - 2*(xx+zz), 2 * (yz - wx),
		2 * (xz - wy), 2 * (yz + wx), 1 - 2*(xx+yy),
	}
}

// Mat4 converts the quaternion to a 4×4 rotation matrix.
func (q Quaternion[T]) Mat4() Matrix4[T] {
	return q.Mat3().Mat4()
}

// Rotate applies the rotation to v.
func (q Quaternion[T]) Rotate(v [3]T) [3]T {
	return q.Mat3().MulVec3(v)
}

func (q Quaternion[T]) AbsDiffEq(o Quaternion[T], epsilon T) bool {
	return AbsDiffEqSlice(q[:], o[:], epsilon)
}

func (q Quaternion[T]) RelativeEq(o Quaternion[T], epsilon, maxRelative T) bool {
	return RelativeEqSlice(q[:], o[:], epsilon, maxRelative)
}

func (q Quaternion[T]) UlpsEq(o Quaternion[T], epsilon T, maxUlps uint32) bool {
	return UlpsEqSlice(q[:], o[:], epsilon, maxUlps)
}

// ConvertQuat casts every component of q to precision T.
func ConvertQuat[T, S Float](q Quaternion[S]) Quaternion[T] {
	return Quaternion[T]{T(q[0]), T(q[1]), T(q[2]), T(q[3])}
}

func (q Quaternion[T]) String() string {
	return FormatTuple(q[:])
}
