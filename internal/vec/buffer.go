package vec

import (
	"unsafe"

	"trskit/internal/mathutil"
)

// View2 reinterprets a flat scalar buffer as 2D vectors without copying.
// Writes through the result land in buf. Trailing scalars that do not fill a
// whole vector are not part of the view.
func View2[T mathutil.Float](buf []T) []Vector2[T] {
	return view[Vector2[T]](buf, 2)
}

// View3 reinterprets a flat scalar buffer as 3D vectors without copying.
func View3[T mathutil.Float](buf []T) []Vector3[T] {
	return view[Vector3[T]](buf, 3)
}

// View4 reinterprets a flat scalar buffer as 4D vectors without copying.
func View4[T mathutil.Float](buf []T) []Vector4[T] {
	return view[Vector4[T]](buf, 4)
}

// Flatten2 reinterprets 2D vectors as a flat scalar buffer without copying.
func Flatten2[T mathutil.Float](vs []Vector2[T]) []T {
	return flatten[T](vs, 2)
}

// Flatten3 reinterprets 3D vectors as a flat scalar buffer without copying.
func Flatten3[T mathutil.Float](vs []Vector3[T]) []T {
	return flatten[T](vs, 3)
}

// Flatten4 reinterprets 4D vectors as a flat scalar buffer without copying.
func Flatten4[T mathutil.Float](vs []Vector4[T]) []T {
	return flatten[T](vs, 4)
}

// AsArray2 returns v's storage as an array pointer.
func AsArray2[T mathutil.Float](v *Vector2[T]) *[2]T {
	return (*[2]T)(v)
}

// AsArray3 returns v's storage as an array pointer.
func AsArray3[T mathutil.Float](v *Vector3[T]) *[3]T {
	return (*[3]T)(v)
}

// AsArray4 returns v's storage as an array pointer.
func AsArray4[T mathutil.Float](v *Vector4[T]) *[4]T {
	return (*[4]T)(v)
}

// view and flatten rely on VectorN[T] and [N]T sharing one layout: N
// contiguous scalars, no padding.
func view[V any, T mathutil.Float](buf []T, n int) []V {
	count := len(buf) / n
	if count == 0 {
		return nil
	}
	return unsafe.Slice((*V)(unsafe.Pointer(unsafe.SliceData(buf))), count)
}

func flatten[T mathutil.Float, V any](vs []V, n int) []T {
	if len(vs) == 0 {
		return nil
	}
	return unsafe.Slice((*T)(unsafe.Pointer(unsafe.SliceData(vs))), len(vs)*n)
}
