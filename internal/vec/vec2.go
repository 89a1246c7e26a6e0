package vec

import "trskit/internal/mathutil"

// Vector2 is a 2-component vector (value type, stack-allocated).
type Vector2[T mathutil.Float] [2]T

type (
	Vec2  = Vector2[float32]
	DVec2 = Vector2[float64]
)

// New2 is the full constructor.
func New2[T mathutil.Float](x, y T) Vector2[T] {
	return Vector2[T]{x, y}
}

func Zero2[T mathutil.Float]() Vector2[T] {
	return Vector2[T]{}
}

func (v Vector2[T]) X() T { return v[0] }
func (v Vector2[T]) Y() T { return v[1] }

func (a Vector2[T]) Add(b Vector2[T]) Vector2[T] {
	return Vector2[T]{a[0] + b[0], a[1] + b[1]}
}

func (a Vector2[T]) Sub(b Vector2[T]) Vector2[T] {
	return Vector2[T]{a[0] - b[0], a[1] - b[1]}
}

// Mul scales every component by s.
func (v Vector2[T]) Mul(s T) Vector2[T] {
	return Vector2[T]{v[0] * s, v[1] * s}
}

func (a Vector2[T]) Dot(b Vector2[T]) T {
	return a[0]*b[0] + a[1]*b[1]
}

func (v Vector2[T]) Array() [2]T { return v }

func (v Vector2[T]) Float32() Vector2[float32] { return Convert2[float32](v) }
func (v Vector2[T]) Float64() Vector2[float64] { return Convert2[float64](v) }

func (a Vector2[T]) AbsDiffEq(b Vector2[T], epsilon T) bool {
	return mathutil.AbsDiffEqSlice(a[:], b[:], epsilon)
}

func (a Vector2[T]) RelativeEq(b Vector2[T], epsilon, maxRelative T) bool {
	return mathutil.RelativeEqSlice(a[:], b[:], epsilon, maxRelative)
}

func (a Vector2[T]) UlpsEq(b Vector2[T], epsilon T, maxUlps uint32) bool {
	return mathutil.UlpsEqSlice(a[:], b[:], epsilon, maxUlps)
}

// ApproxEq is RelativeEq with the default tolerances of T.
func (a Vector2[T]) ApproxEq(b Vector2[T]) bool {
	return a.RelativeEq(b, mathutil.Epsilon[T](), mathutil.DefaultMaxRelative[T]())
}

func (v Vector2[T]) String() string {
	return mathutil.FormatTuple(v[:])
}
