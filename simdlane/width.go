package simdlane

import "github.com/ajroetker/go-highway/hwy"

// SuggestedWidthF32 returns the host's suggested SIMD width for float32
// lanes, discovered via go-highway's generic zero-vector lane count. This
// backs every real-valued attribute column (position, scale, damage,
// motion, gravity, forward, speed_accel).
func SuggestedWidthF32() int {
	w := hwy.Zero[float32]().NumLanes()
	if w <= 0 {
		return 1
	}
	return w
}

// SuggestedWidthI32 returns the host's suggested SIMD width for int32
// lanes (colors: spec.md §4.1 "i32 for color"). go-highway's lane API is
// generic over hwy.Floats only, so there is no direct NumLanes() query for
// integer element types; int32 occupies the same 4 bytes as float32, so a
// register sized for N float32 lanes holds exactly N int32 lanes too. This
// is the one open-question call the implementer must make (see
// DESIGN.md): derive from the float32 register size rather than leave
// integer columns unpacked.
func SuggestedWidthI32() int {
	return SuggestedWidthF32()
}

// SuggestedWidthI16 returns the host's suggested SIMD width for int16
// lanes (ticks_existed/end_time: spec.md §4.1 "i16 for ticks/end time").
// An int16 is half the width of a float32, so the same register holds
// twice as many int16 lanes.
func SuggestedWidthI16() int {
	return SuggestedWidthF32() * 2
}
