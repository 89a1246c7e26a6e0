// Package trs implements the translation + rotation + non-uniform scale
// transform and its flat binary encoding.
package trs

import (
	"fmt"

	"trskit/internal/mathutil"
	"trskit/internal/vec"
)

// Transform is a translation + rotation + *non-uniform* scale transform.
// Every field shares one precision. The zero value has zero scale; use
// Identity for the neutral transform.
type Transform[T mathutil.Float] struct {
	// Translation vector.
	Translation vec.Vector3[T]

	// Rotation quaternion, stored as given (never normalized here).
	Rotation mathutil.Quaternion[T]

	// Scale factor per axis. Zero is allowed and yields a degenerate matrix.
	Scale vec.Vector3[T]
}

type (
	// Trs is the single-precision transform.
	Trs = Transform[float32]

	// DTrs is the double-precision transform.
	DTrs = Transform[float64]
)

// New is the full constructor; the parts are stored verbatim.
func New[T mathutil.Float](t vec.Vector3[T], r mathutil.Quaternion[T], s vec.Vector3[T]) Transform[T] {
	return Transform[T]{Translation: t, Rotation: r, Scale: s}
}

// Identity returns zero translation, identity rotation and unit scale.
func Identity[T mathutil.Float]() Transform[T] {
	return Transform[T]{
		Translation: vec.Zero3[T](),
		Rotation:    mathutil.QuatIdentity[T](),
		Scale:       vec.Splat3[T](1.0),
	}
}

func NewTrs(t vec.Vec3, r mathutil.Quat, s vec.Vec3) Trs      { return New(t, r, s) }
func NewDTrs(t vec.DVec3, r mathutil.DQuat, s vec.DVec3) DTrs { return New(t, r, s) }
func IdentityTrs() Trs                                        { return Identity[float32]() }
func IdentityDTrs() DTrs                                      { return Identity[float64]() }

// Matrix returns the equivalent matrix representation for this transform:
// translation · rotation · scale, so a point is scaled first, then rotated,
// then translated. A new matrix is built on every call.
func (x Transform[T]) Matrix() mathutil.Matrix4[T] {
	t := mathutil.Translation(x.Translation.Array())
	r := x.Rotation.Mat4()
	s := mathutil.NonUniformScale(x.Scale.Array())
	return mathutil.Mat4Mul(mathutil.Mat4Mul(t, r), s)
}

// TransformPoint applies the transform to p without materializing the matrix.
func (x Transform[T]) TransformPoint(p vec.Vector3[T]) vec.Vector3[T] {
	scaled := [3]T{p[0] * x.Scale[0], p[1] * x.Scale[1], p[2] * x.Scale[2]}
	return vec.Vector3[T](x.Rotation.Rotate(scaled)).Add(x.Translation)
}

// Convert casts every field of x to precision T.
func Convert[T, S mathutil.Float](x Transform[S]) Transform[T] {
	return Transform[T]{
		Translation: vec.Convert3[T](x.Translation),
		Rotation:    mathutil.ConvertQuat[T](x.Rotation),
		Scale:       vec.Convert3[T](x.Scale),
	}
}

func (x Transform[T]) Float32() Trs  { return Convert[float32](x) }
func (x Transform[T]) Float64() DTrs { return Convert[float64](x) }

// AbsDiffEq compares every field with the same absolute epsilon.
func (x Transform[T]) AbsDiffEq(o Transform[T], epsilon T) bool {
	return x.Translation.AbsDiffEq(o.Translation, epsilon) &&
		x.Rotation.AbsDiffEq(o.Rotation, epsilon) &&
		x.Scale.AbsDiffEq(o.Scale, epsilon)
}

// RelativeEq compares every field with the same epsilon and relative bound.
func (x Transform[T]) RelativeEq(o Transform[T], epsilon, maxRelative T) bool {
	return x.Translation.RelativeEq(o.Translation, epsilon, maxRelative) &&
		x.Rotation.RelativeEq(o.Rotation, epsilon, maxRelative) &&
		x.Scale.RelativeEq(o.Scale, epsilon, maxRelative)
}

// UlpsEq compares every field with the same epsilon and ULP bound.
func (x Transform[T]) UlpsEq(o Transform[T], epsilon T, maxUlps uint32) bool {
	return x.Translation.UlpsEq(o.Translation, epsilon, maxUlps) &&
		x.Rotation.UlpsEq(o.Rotation, epsilon, maxUlps) &&
		x.Scale.UlpsEq(o.Scale, epsilon, maxUlps)
}

// ApproxEq is RelativeEq with the default tolerances of T.
func (x Transform[T]) ApproxEq(o Transform[T]) bool {
	return x.RelativeEq(o, mathutil.Epsilon[T](), mathutil.DefaultMaxRelative[T]())
}

func (x Transform[T]) String() string {
	return fmt.Sprintf("(%v, %v, %v)", x.Translation, x.Rotation, x.Scale)
}
