package vec

import (
	"golang.org/x/image/math/f32"

	"trskit/internal/mathutil"
)

// F32Vec2 converts v to the x/image single-precision vector type.
func F32Vec2[T mathutil.Float](v Vector2[T]) f32.Vec2 {
	return f32.Vec2(Convert2[float32](v))
}

// F32Vec3 converts v to the x/image single-precision vector type.
func F32Vec3[T mathutil.Float](v Vector3[T]) f32.Vec3 {
	return f32.Vec3(Convert3[float32](v))
}

// F32Vec4 converts v to the x/image single-precision vector type.
func F32Vec4[T mathutil.Float](v Vector4[T]) f32.Vec4 {
	return f32.Vec4(Convert4[float32](v))
}

func FromF32Vec2(v f32.Vec2) Vec2 { return Vec2(v) }
func FromF32Vec3(v f32.Vec3) Vec3 { return Vec3(v) }
func FromF32Vec4(v f32.Vec4) Vec4 { return Vec4(v) }

// F32Mat4 converts m to the x/image matrix type. Both are row-major.
func F32Mat4[T mathutil.Float](m mathutil.Matrix4[T]) f32.Mat4 {
	return f32.Mat4(mathutil.ConvertMat4[float32](m))
}

func FromF32Mat4(m f32.Mat4) mathutil.Mat4 { return mathutil.Mat4(m) }
