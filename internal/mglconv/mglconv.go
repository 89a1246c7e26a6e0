// Package mglconv converts between this module's types and go-gl/mathgl.
//
// mathgl stores matrices column-major; Matrix4 is row-major, so matrix
// conversions transpose. Quaternions map (x, y, z, w) to mathgl's {W, V}.
package mglconv

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/go-gl/mathgl/mgl64"

	"trskit/internal/mathutil"
	"trskit/internal/trs"
	"trskit/internal/vec"
)

func Vec2To32(v vec.Vec2) mgl32.Vec2    { return mgl32.Vec2(v) }
func Vec3To32(v vec.Vec3) mgl32.Vec3    { return mgl32.Vec3(v) }
func Vec4To32(v vec.Vec4) mgl32.Vec4    { return mgl32.Vec4(v) }
func Vec2From32(v mgl32.Vec2) vec.Vec2  { return vec.Vec2(v) }
func Vec3From32(v mgl32.Vec3) vec.Vec3  { return vec.Vec3(v) }
func Vec4From32(v mgl32.Vec4) vec.Vec4  { return vec.Vec4(v) }
func Vec2To64(v vec.DVec2) mgl64.Vec2   { return mgl64.Vec2(v) }
func Vec3To64(v vec.DVec3) mgl64.Vec3   { return mgl64.Vec3(v) }
func Vec4To64(v vec.DVec4) mgl64.Vec4   { return mgl64.Vec4(v) }
func Vec2From64(v mgl64.Vec2) vec.DVec2 { return vec.DVec2(v) }
func Vec3From64(v mgl64.Vec3) vec.DVec3 { return vec.DVec3(v) }
func Vec4From64(v mgl64.Vec4) vec.DVec4 { return vec.DVec4(v) }

func QuatTo32(q mathutil.Quat) mgl32.Quat {
	return mgl32.Quat{W: q.W(), V: mgl32.Vec3(q.Imag())}
}

func QuatFrom32(q mgl32.Quat) mathutil.Quat {
	return mathutil.NewQuat(q.V[0], q.V[1], q.V[2], q.W)
}

func QuatTo64(q mathutil.DQuat) mgl64.Quat {
	return mgl64.Quat{W: q.W(), V: mgl64.Vec3(q.Imag())}
}

func QuatFrom64(q mgl64.Quat) mathutil.DQuat {
	return mathutil.NewQuat(q.V[0], q.V[1], q.V[2], q.W)
}

func Mat4To32(m mathutil.Mat4) mgl32.Mat4 {
	return mgl32.Mat4(m.Transpose())
}

func Mat4From32(m mgl32.Mat4) mathutil.Mat4 {
	return mathutil.Mat4(m).Transpose()
}

func Mat4To64(m mathutil.DMat4) mgl64.Mat4 {
	return mgl64.Mat4(m.Transpose())
}

func Mat4From64(m mgl64.Mat4) mathutil.DMat4 {
	return mathutil.DMat4(m).Transpose()
}

// TrsMat4 composes the transform with mathgl's own kernel, in the same
// translation · rotation · scale order as Transform.Matrix.
func TrsMat4(x trs.Trs) mgl32.Mat4 {
	t, s := x.Translation, x.Scale
	return mgl32.Translate3D(t[0], t[1], t[2]).
		Mul4(QuatTo32(x.Rotation).Mat4()).
		Mul4(mgl32.Scale3D(s[0], s[1], s[2]))
}

// DTrsMat4 is TrsMat4 in double precision.
func DTrsMat4(x trs.DTrs) mgl64.Mat4 {
	t, s := x.Translation, x.Scale
	return mgl64.Translate3D(t[0], t[1], t[2]).
		Mul4(QuatTo64(x.Rotation).Mat4()).
		Mul4(mgl64.Scale3D(s[0], s[1], s[2]))
}
