package scene

import (
	"trskit/internal/mathutil"
	"trskit/internal/trs"
)

// WorldMatrices computes the world matrix of every object, indexed like
// Objects. Each world matrix is the parent's world matrix times the local
// T·R·S matrix. cache may be nil.
func (s *Scene) WorldMatrices(cache *MatrixCache[float64]) []mathutil.DMat4 {
	worlds := make([]mathutil.DMat4, len(s.Objects))

	for _, i := range s.order {
		obj := &s.Objects[i]

		var local mathutil.DMat4
		if cache != nil {
			local = cache.Matrix(obj.Transform)
		} else {
			local = obj.Transform.Matrix()
		}

		if obj.Parent != "" {
			worlds[i] = mathutil.Mat4Mul(worlds[s.index[obj.Parent]], local)
		} else {
			worlds[i] = local
		}
	}

	return worlds
}

// Export returns the local transforms narrowed to single precision, ready for
// the binary TRS codec.
func (s *Scene) Export() []trs.Trs {
	out := make([]trs.Trs, len(s.Objects))
	for i, obj := range s.Objects {
		out[i] = obj.Transform.Float32()
	}
	return out
}
