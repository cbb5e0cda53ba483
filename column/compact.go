package column

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/nightclipse/dancoren"
	"github.com/nightclipse/dancoren/simdlane"
)

// Compact stream-compacts the Store around the Dead mask, preserving the
// relative order of live entries, then repacks every column at newCapacity
// (spec.md §4.1 "compact(C') ... Packed columns must compact lane-by-lane:
// read each block's mask, gather live lanes into an auxiliary dense scalar
// buffer, then repack into ⌈C'/W⌉ blocks"). After compaction Dead is reset
// to all-false and CurrentDead is cleared, and Compact returns the new live
// count, which the caller (Bucket) must use as its current_size — the fix
// for the shrink bug spec.md §9 documents ("does not re-derive
// current_size"). A second documented bug ("compact_vec in an older
// revision inverts the retain predicate, keeping dead rows") is fixed here
// by keeping exactly the rows where Dead.Test(i) is false.
//
// liveLen is the number of slots in [0, s.capacity) considered "in use"
// before compaction (Bucket's current_size); slots at or beyond liveLen
// are already absent padding and are not scanned.
func (s *Store) Compact(liveLen, newCapacity int) (liveCount int) {
	mustBePowerOfTwoAtLeast128(newCapacity)

	live := make([]int, 0, liveLen)
	for i := 0; i < liveLen; i++ {
		if !s.Dead.Test(uint(i)) {
			live = append(live, i)
		}
	}
	liveCount = len(live)

	s.ID = gatherRepackSlice(s.ID, live, newCapacity, dancoren.ID{})
	gatherRepackColumn(s.TicksExisted, live, newCapacity, defaultI16)
	gatherRepackColumn(s.EndTime, live, newCapacity, defaultI16)
	s.NextStage = gatherRepackSlice(s.NextStage, live, newCapacity, nil)
	s.NextStageAddData = gatherRepackSlice(s.NextStageAddData, live, newCapacity, dancoren.ColumnSet(0))
	s.Parent = gatherRepackSlice(s.Parent, live, newCapacity, nil)
	gatherRepackColumn(s.FamilyDepth, live, newCapacity, int16(0))
	s.TransformMats = gatherRepackSlice(s.TransformMats, live, newCapacity, mgl32.Ident4())

	if s.PosX != nil {
		gatherRepackColumn(s.PosX, live, newCapacity, defaultF32)
		gatherRepackColumn(s.OldPosX, live, newCapacity, defaultF32)
	}
	if s.PosY != nil {
		gatherRepackColumn(s.PosY, live, newCapacity, defaultF32)
		gatherRepackColumn(s.OldPosY, live, newCapacity, defaultF32)
	}
	if s.PosZ != nil {
		gatherRepackColumn(s.PosZ, live, newCapacity, defaultF32)
		gatherRepackColumn(s.OldPosZ, live, newCapacity, defaultF32)
	}
	if s.ScaleX != nil {
		gatherRepackColumn(s.ScaleX, live, newCapacity, defaultScaleAxis)
		gatherRepackColumn(s.OldScaleX, live, newCapacity, defaultScaleAxis)
	}
	if s.ScaleY != nil {
		gatherRepackColumn(s.ScaleY, live, newCapacity, defaultScaleAxis)
		gatherRepackColumn(s.OldScaleY, live, newCapacity, defaultScaleAxis)
	}
	if s.ScaleZ != nil {
		gatherRepackColumn(s.ScaleZ, live, newCapacity, defaultScaleAxis)
		gatherRepackColumn(s.OldScaleZ, live, newCapacity, defaultScaleAxis)
	}
	if s.Orientation != nil {
		gatherRepackColumn(s.Orientation, live, newCapacity, defaultQuat)
		gatherRepackColumn(s.OldOrientation, live, newCapacity, defaultQuat)
	}
	if s.Rotation != nil {
		gatherRepackColumn(s.Rotation, live, newCapacity, defaultQuat)
	}
	if s.ColorPrimary != nil {
		gatherRepackColumn(s.ColorPrimary, live, newCapacity, defaultI32)
		gatherRepackColumn(s.OldColorPrimary, live, newCapacity, defaultI32)
	}
	if s.ColorSecondary != nil {
		gatherRepackColumn(s.ColorSecondary, live, newCapacity, defaultI32)
		gatherRepackColumn(s.OldColorSecondary, live, newCapacity, defaultI32)
	}
	if s.Damage != nil {
		gatherRepackColumn(s.Damage, live, newCapacity, defaultF32)
	}
	if s.Form != nil {
		s.Form = gatherRepackSlice(s.Form, live, newCapacity, dancoren.SphereForm)
	}
	if s.RenderProps != nil {
		s.RenderProps = gatherRepackSlice(s.RenderProps, live, newCapacity, nil)
	}
	if s.MotionX != nil {
		gatherRepackColumn(s.MotionX, live, newCapacity, defaultF32)
	}
	if s.MotionY != nil {
		gatherRepackColumn(s.MotionY, live, newCapacity, defaultF32)
	}
	if s.MotionZ != nil {
		gatherRepackColumn(s.MotionZ, live, newCapacity, defaultF32)
	}
	if s.GravityX != nil {
		gatherRepackColumn(s.GravityX, live, newCapacity, defaultF32)
	}
	if s.GravityY != nil {
		gatherRepackColumn(s.GravityY, live, newCapacity, defaultF32)
	}
	if s.GravityZ != nil {
		gatherRepackColumn(s.GravityZ, live, newCapacity, defaultF32)
	}
	if s.SpeedAccel != nil {
		gatherRepackColumn(s.SpeedAccel, live, newCapacity, defaultF32)
	}
	if s.ForwardX != nil {
		gatherRepackColumn(s.ForwardX, live, newCapacity, defaultForwardX)
	}
	if s.ForwardY != nil {
		gatherRepackColumn(s.ForwardY, live, newCapacity, defaultForwardYZ)
	}
	if s.ForwardZ != nil {
		gatherRepackColumn(s.ForwardZ, live, newCapacity, defaultForwardYZ)
	}

	s.capacity = newCapacity
	s.Dead.ClearAll()
	s.CurrentDead.Clear()

	return liveCount
}

// gatherRepackColumn gathers the live rows of a lane-packed column into a
// scratch scalar buffer and repacks the column at newCapacity in place —
// the scratch-buffer compaction strategy spec.md §4.1 prescribes for
// packed columns.
func gatherRepackColumn[T any](c *simdlane.Column[T], live []int, newCapacity int, fill T) {
	scratch := c.Gather(live)
	c.Repack(scratch, newCapacity, fill)
}

// gatherRepackSlice performs the equivalent compaction for a plain
// (non-lane-packed) scalar column: gather the live rows in order, then
// repack into a fresh slice of length newCapacity with trailing slots
// filled with fill.
func gatherRepackSlice[T any](s []T, live []int, newCapacity int, fill T) []T {
	next := make([]T, newCapacity)
	for i := range next {
		next[i] = fill
	}
	for k, i := range live {
		if k >= newCapacity {
			break
		}
		next[k] = s[i]
	}
	return next
}
