package vec

import "trskit/internal/mathutil"

// Vector4 is a 4-component vector (value type, stack-allocated).
type Vector4[T mathutil.Float] [4]T

type (
	Vec4  = Vector4[float32]
	DVec4 = Vector4[float64]
)

// New4 is the full constructor.
func New4[T mathutil.Float](x, y, z, w T) Vector4[T] {
	return Vector4[T]{x, y, z, w}
}

func Zero4[T mathutil.Float]() Vector4[T] {
	return Vector4[T]{}
}

func (v Vector4[T]) X() T { return v[0] }
func (v Vector4[T]) Y() T { return v[1] }
func (v Vector4[T]) Z() T { return v[2] }
func (v Vector4[T]) W() T { return v[3] }

func (a Vector4[T]) Add(b Vector4[T]) Vector4[T] {
	return Vector4[T]{a[0] + b[0], a[1] + b[1], a[2] + b[2], a[3] + b[3]}
}

func (a Vector4[T]) Sub(b Vector4[T]) Vector4[T] {
	return Vector4[T]{a[0] - b[0], a[1] - b[1], a[2] - b[2], a[3] - b[3]}
}

// Mul scales every component by s.
func (v Vector4[T]) Mul(s T) Vector4[T] {
	return Vector4[T]{v[0] * s, v[1] * s, v[2] * s, v[3] * s}
}

func (a Vector4[T]) Dot(b Vector4[T]) T {
	return a[0]*b[0] + a[1]*b[1] + a[2]*b[2] + a[3]*b[3]
}

// Truncate drops w.
func (v Vector4[T]) Truncate() Vector3[T] {
	return Vector3[T]{v[0], v[1], v[2]}
}

func (v Vector4[T]) Array() [4]T { return v }

func (v Vector4[T]) Float32() Vector4[float32] { return Convert4[float32](v) }
func (v Vector4[T]) Float64() Vector4[float64] { return Convert4[float64](v) }

func (a Vector4[T]) AbsDiffEq(b Vector4[T], epsilon T) bool {
	return mathutil.AbsDiffEqSlice(a[:], b[:], epsilon)
}

func (a Vector4[T]) RelativeEq(b Vector4[T], epsilon, maxRelative T) bool {
	return mathutil.RelativeEqSlice(a[:], b[:], epsilon, maxRelative)
}

func (a Vector4[T]) UlpsEq(b Vector4[T], epsilon T, maxUlps uint32) bool {
	return mathutil.UlpsEqSlice(a[:], b[:], epsilon, maxUlps)
}

// ApproxEq is RelativeEq with the default tolerances of T.
func (a Vector4[T]) ApproxEq(b Vector4[T]) bool {
	return a.RelativeEq(b, mathutil.Epsilon[T](), mathutil.DefaultMaxRelative[T]())
}

func (v Vector4[T]) String() string {
	return mathutil.FormatTuple(v[:])
}
