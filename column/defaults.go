package column

import "github.com/go-gl/mathgl/mgl32"

// Default fill values for newly allocated lanes (spec.md §4.1 "new(C,R) —
// ... fills packed columns with a type-specific default"). Position and
// damage default to 0; forward defaults to the unit +X axis; end_time and
// ticks default to 0; parent has no default fill here because it is a
// slice of pointers (nil already means "no parent"); family_depth defaults
// to 0 for never-written padding lanes (a live slot's family_depth is
// always stamped by the coordinator before insertion completes).
//
// Scale defaults to 1, not 0: spec.md §4.1 lists "position/scale 0" as the
// literal default, but §9's open questions flag exactly this as a bug
// ("The render pass defaults missing scales to 0, producing a degenerate
// matrix; an implementer should treat missing scale as 1") — fixed at the
// source here rather than papered over at render time, so an allocated but
// never-assigned scale lane is never degenerate.
const (
	defaultScaleAxis float32 = 1
	defaultForwardX  float32 = 1
	defaultForwardYZ float32 = 0
	defaultF32       float32 = 0
	defaultI32       int32   = 0
	defaultI16       int16   = 0
)

var defaultQuat = mgl32.QuatIdent()
