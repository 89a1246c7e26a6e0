// Package vec implements fixed-size 2, 3 and 4 component vectors in single
// and double precision.
//
// Every vector is a Go array of its scalar type, so a Vector3[float32] has
// exactly the layout of a [3]float32: it converts to and from raw arrays with
// a plain type conversion and can alias flat scalar buffers (see View3).
// All operations take and return values; nothing is mutated in place.
package vec
