package vec

import "trskit/internal/mathutil"

// Splat2 sets every component to s, cast to precision T.
func Splat2[T, S mathutil.Float](s S) Vector2[T] {
	return Vector2[T]{T(s), T(s)}
}

// Splat3 sets every component to s, cast to precision T.
func Splat3[T, S mathutil.Float](s S) Vector3[T] {
	return Vector3[T]{T(s), T(s), T(s)}
}

// Splat4 sets every component to s, cast to precision T.
func Splat4[T, S mathutil.Float](s S) Vector4[T] {
	return Vector4[T]{T(s), T(s), T(s), T(s)}
}

// Convert2 casts each component of v to precision T. Narrowing rounds to
// nearest like float32(x); widening is exact.
func Convert2[T, S mathutil.Float](v Vector2[S]) Vector2[T] {
	return Vector2[T]{T(v[0]), T(v[1])}
}

// Convert3 casts each component of v to precision T.
func Convert3[T, S mathutil.Float](v Vector3[S]) Vector3[T] {
	return Vector3[T]{T(v[0]), T(v[1]), T(v[2])}
}

// Convert4 casts each component of v to precision T.
func Convert4[T, S mathutil.Float](v Vector4[S]) Vector4[T] {
	return Vector4[T]{T(v[0]), T(v[1]), T(v[2]), T(v[3])}
}

// Extend2 appends z to a 2D vector.
func Extend2[T mathutil.Float](v Vector2[T], z T) Vector3[T] {
	return Vector3[T]{v[0], v[1], z}
}

// Extend2x2 appends z and w to a 2D vector.
func Extend2x2[T mathutil.Float](v Vector2[T], z, w T) Vector4[T] {
	return Vector4[T]{v[0], v[1], z, w}
}

// Extend3 appends w to a 3D vector.
func Extend3[T mathutil.Float](v Vector3[T], w T) Vector4[T] {
	return Vector4[T]{v[0], v[1], v[2], w}
}
