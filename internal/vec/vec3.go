package vec

import (
	"math"

	"trskit/internal/mathutil"
)

// Vector3 is a 3-component vector (value type, stack-allocated).
type Vector3[T mathutil.Float] [3]T

type (
	Vec3  = Vector3[float32]
	DVec3 = Vector3[float64]
)

// New3 is the full constructor.
func New3[T mathutil.Float](x, y, z T) Vector3[T] {
	return Vector3[T]{x, y, z}
}

func Zero3[T mathutil.Float]() Vector3[T] {
	return Vector3[T]{}
}

func (v Vector3[T]) X() T { return v[0] }
func (v Vector3[T]) Y() T { return v[1] }
func (v Vector3[T]) Z() T { return v[2] }

func (a Vector3[T]) Add(b Vector3[T]) Vector3[T] {
	return Vector3[T]{a[0] + b[0], a[1] + b[1], a[2] + b[2]}
}

func (a Vector3[T]) Sub(b Vector3[T]) Vector3[T] {
	return Vector3[T]{a[0] - b[0], a[1] - b[1], a[2] - b[2]}
}

// Mul scales every component by s.
func (v Vector3[T]) Mul(s T) Vector3[T] {
	return Vector3[T]{v[0] * s, v[1] * s, v[2] * s}
}

func (a Vector3[T]) Dot(b Vector3[T]) T {
	return a[0]*b[0] + a[1]*b[1] + a[2]*b[2]
}

func (a Vector3[T]) Cross(b Vector3[T]) Vector3[T] {
	return Vector3[T]{
		a[1]*b[2] - a[2]*b[1],
		a[2]*b[0] - a[0]*b[2],
		a[0]*b[1] - a[1]*b[0],
	}
}

func (v Vector3[T]) Len() T {
	return T(math.Sqrt(float64(v.Dot(v))))
}

// Normalize returns v at unit length, or the zero vector if v is too short
// to have a direction.
func (v Vector3[T]) Normalize() Vector3[T] {
	l := v.Len()
	if l < 1e-12 {
		return Vector3[T]{}
	}
	return Vector3[T]{v[0] / l, v[1] / l, v[2] / l}
}

// Truncate drops z.
func (v Vector3[T]) Truncate() Vector2[T] {
	return Vector2[T]{v[0], v[1]}
}

func (v Vector3[T]) Array() [3]T { return v }

func (v Vector3[T]) Float32() Vector3[float32] { return Convert3[float32](v) }
func (v Vector3[T]) Float64() Vector3[float64] { return Convert3[float64](v) }

func (a Vector3[T]) AbsDiffEq(b Vector3[T], epsilon T) bool {
	return mathutil.AbsDiffEqSlice(a[:], b[:], epsilon)
}

func (a Vector3[T]) RelativeEq(b Vector3[T], epsilon, maxRelative T) bool {
	return mathutil.RelativeEqSlice(a[:], b[:], epsilon, maxRelative)
}

func (a Vector3[T]) UlpsEq(b Vector3[T], epsilon T, maxUlps uint32) bool {
	return mathutil.UlpsEqSlice(a[:], b[:], epsilon, maxUlps)
}

// ApproxEq is RelativeEq with the default tolerances of T.
func (a Vector3[T]) ApproxEq(b Vector3[T]) bool {
	return a.RelativeEq(b, mathutil.Epsilon[T](), mathutil.DefaultMaxRelative[T]())
}

func (v Vector3[T]) String() string {
	return mathutil.FormatTuple(v[:])
}
