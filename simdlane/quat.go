package simdlane

import "github.com/go-gl/mathgl/mgl32"

// QuatColumn holds orientation/rotation lanes. It shares Column's
// block-padded layout for index-alignment with every other column, but its
// lane width is always 1: go-highway's generic lane API (hwy.Floats) is
// specified over scalar floating element types, not 4-wide quaternion
// structs, so there is no SIMD register to pack multiple quaternions into.
// Composition (Mul/Normalize/Slerp) goes through mgl32 per element instead.
type QuatColumn = Column[mgl32.Quat]

// IdentityQuat is the column store's default fill for orientation and
// rotation lanes (spec.md §4.1 "orientation = identity").
var IdentityQuat = mgl32.QuatIdent()

// NewQuatColumn allocates a QuatColumn of the given capacity, every lane
// initialized to IdentityQuat.
func NewQuatColumn(capacity int) *QuatColumn {
	return NewColumn[mgl32.Quat](1, capacity, IdentityQuat)
}
