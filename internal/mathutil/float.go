package mathutil

import (
	"math"
	"unsafe"
)

// Float is the scalar capability every vector, quaternion and matrix type is
// generic over: single or double precision IEEE-754.
type Float interface {
	~float32 | ~float64
}

// DefaultMaxUlps is the default representation distance for UlpsEq.
const DefaultMaxUlps uint32 = 4

var (
	epsilon32 float32 = 0x1p-23
	epsilon64 float64 = 0x1p-52
)

// is32 reports whether T is single precision.
func is32[T Float]() bool {
	var z T
	return unsafe.Sizeof(z) == 4
}

// Epsilon returns the machine epsilon of T.
func Epsilon[T Float]() T {
	if is32[T]() {
		return T(epsilon32)
	}
	return T(epsilon64)
}

// DefaultMaxRelative returns the default relative tolerance of T.
func DefaultMaxRelative[T Float]() T {
	return Epsilon[T]()
}

func abs[T Float](x T) T {
	if x < 0 {
		return -x
	}
	return x
}

func isInf[T Float](x T) bool {
	return math.IsInf(float64(x), 0)
}

func isNaN[T Float](x T) bool {
	return x != x
}

// AbsDiffEq reports whether a and b differ by no more than epsilon.
func AbsDiffEq[T Float](a, b, epsilon T) bool {
	var d T
	if a > b {
		d = a - b
	} else {
		d = b - a
	}
	return d <= epsilon
}

// RelativeEq reports whether a and b are within epsilon of each other, or
// within maxRelative scaled by the larger of their magnitudes.
func RelativeEq[T Float](a, b, epsilon, maxRelative T) bool {
	if a == b {
		return true
	}
	if isInf(a) || isInf(b) {
		return false
	}
	d := abs(a - b)
	if d <= epsilon {
		return true
	}
	largest := max(abs(a), abs(b))
	return d <= largest*maxRelative
}

// UlpsEq reports whether a and b are within epsilon of each other, or share a
// sign and are no more than maxUlps representable steps apart.
func UlpsEq[T Float](a, b, epsilon T, maxUlps uint32) bool {
	if AbsDiffEq(a, b, epsilon) {
		return true
	}
	if isNaN(a) || isNaN(b) {
		return false
	}
	if math.Signbit(float64(a)) != math.Signbit(float64(b)) {
		return false
	}
	return ulpDistance(a, b) <= uint64(maxUlps)
}

// ulpDistance counts the representable values between two same-signed floats.
func ulpDistance[T Float](a, b T) uint64 {
	if is32[T]() {
		ia := int64(int32(math.Float32bits(float32(a))))
		ib := int64(int32(math.Float32bits(float32(b))))
		if ia > ib {
			return uint64(ia - ib)
		}
		return uint64(ib - ia)
	}
	ia := int64(math.Float64bits(float64(a)))
	ib := int64(math.Float64bits(float64(b)))
	if ia > ib {
		return uint64(ia) - uint64(ib)
	}
	return uint64(ib) - uint64(ia)
}

// AbsDiffEqSlice applies AbsDiffEq pairwise and requires every pair to pass.
// Slices of different length are never equal.
func AbsDiffEqSlice[T Float](a, b []T, epsilon T) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !AbsDiffEq(a[i], b[i], epsilon) {
			return false
		}
	}
	return true
}

// RelativeEqSlice applies RelativeEq pairwise and requires every pair to pass.
func RelativeEqSlice[T Float](a, b []T, epsilon, maxRelative T) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !RelativeEq(a[i], b[i], epsilon, maxRelative) {
			return false
		}
	}
	return true
}

// UlpsEqSlice applies UlpsEq pairwise and requires every pair to pass.
func UlpsEqSlice[T Float](a, b []T, epsilon T, maxUlps uint32) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !UlpsEq(a[i], b[i], epsilon, maxUlps) {
			return false
		}
	}
	return true
}
