package column

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/nightclipse/dancoren"
)

// Resize grows or shrinks every allocated column to newCapacity (spec.md
// §4.1 "resize(C') — grows/shrinks each allocated column to match the new
// capacity; packed columns resize to ⌈C'/W⌉ blocks. New slots receive the
// defaults above"). Resize does not compact around dead slots — it is a
// pure capacity change; Bucket calls Compact separately when it needs to
// reclaim dead slots (spec.md §4.4 "Shrink ... calls compact with the
// smaller capacity").
func (s *Store) Resize(newCapacity int) {
	mustBePowerOfTwoAtLeast128(newCapacity)

	s.ID = resizeSlice(s.ID, newCapacity, dancoren.ID{})
	s.TicksExisted.Resize(newCapacity, defaultI16)
	s.EndTime.Resize(newCapacity, defaultI16)
	s.NextStage = resizeSlice(s.NextStage, newCapacity, nil)
	s.NextStageAddData = resizeSlice(s.NextStageAddData, newCapacity, 0)
	s.Parent = resizeSlice(s.Parent, newCapacity, nil)
	s.FamilyDepth.Resize(newCapacity, 0)
	s.TransformMats = resizeSlice(s.TransformMats, newCapacity, mgl32.Ident4())

	if newCapacity < s.capacity {
		for i := newCapacity; i < s.capacity; i++ {
			s.Dead.Clear(uint(i))
		}
	}

	if s.PosX != nil {
		s.PosX.Resize(newCapacity, defaultF32)
		s.OldPosX.Resize(newCapacity, defaultF32)
	}
	if s.PosY != nil {
		s.PosY.Resize(newCapacity, defaultF32)
		s.OldPosY.Resize(newCapacity, defaultF32)
	}
	if s.PosZ != nil {
		s.PosZ.Resize(newCapacity, defaultF32)
		s.OldPosZ.Resize(newCapacity, defaultF32)
	}
	if s.ScaleX != nil {
		s.ScaleX.Resize(newCapacity, defaultScaleAxis)
		s.OldScaleX.Resize(newCapacity, defaultScaleAxis)
	}
	if s.ScaleY != nil {
		s.ScaleY.Resize(newCapacity, defaultScaleAxis)
		s.OldScaleY.Resize(newCapacity, defaultScaleAxis)
	}
	if s.ScaleZ != nil {
		s.ScaleZ.Resize(newCapacity, defaultScaleAxis)
		s.OldScaleZ.Resize(newCapacity, defaultScaleAxis)
	}
	if s.Orientation != nil {
		s.Orientation.Resize(newCapacity, defaultQuat)
		s.OldOrientation.Resize(newCapacity, defaultQuat)
	}
	if s.Rotation != nil {
		s.Rotation.Resize(newCapacity, defaultQuat)
	}
	if s.ColorPrimary != nil {
		s.ColorPrimary.Resize(newCapacity, defaultI32)
		s.OldColorPrimary.Resize(newCapacity, defaultI32)
	}
	if s.ColorSecondary != nil {
		s.ColorSecondary.Resize(newCapacity, defaultI32)
		s.OldColorSecondary.Resize(newCapacity, defaultI32)
	}
	if s.Damage != nil {
		s.Damage.Resize(newCapacity, defaultF32)
	}
	if s.Form != nil {
		s.Form = resizeFormSlice(s.Form, newCapacity)
	}
	if s.RenderProps != nil {
		s.RenderProps = resizeSlice(s.RenderProps, newCapacity, nil)
	}
	if s.MotionX != nil {
		s.MotionX.Resize(newCapacity, defaultF32)
	}
	if s.MotionY != nil {
		s.MotionY.Resize(newCapacity, defaultF32)
	}
	if s.MotionZ != nil {
		s.MotionZ.Resize(newCapacity, defaultF32)
	}
	if s.GravityX != nil {
		s.GravityX.Resize(newCapacity, defaultF32)
	}
	if s.GravityY != nil {
		s.GravityY.Resize(newCapacity, defaultF32)
	}
	if s.GravityZ != nil {
		s.GravityZ.Resize(newCapacity, defaultF32)
	}
	if s.SpeedAccel != nil {
		s.SpeedAccel.Resize(newCapacity, defaultF32)
	}
	if s.ForwardX != nil {
		s.ForwardX.Resize(newCapacity, defaultForwardX)
	}
	if s.ForwardY != nil {
		s.ForwardY.Resize(newCapacity, defaultForwardYZ)
	}
	if s.ForwardZ != nil {
		s.ForwardZ.Resize(newCapacity, defaultForwardYZ)
	}

	s.capacity = newCapacity
}

// resizeFormSlice grows or shrinks the Form column, filling new slots with
// the SphereForm sentinel (spec.md §4.1 "form = SPHERE sentinel").
func resizeFormSlice(s []dancoren.Form, newCapacity int) []dancoren.Form {
	return resizeSlice(s, newCapacity, dancoren.SphereForm)
}

// resizeSlice grows or shrinks a plain (non-lane-packed) scalar column to
// newCapacity, preserving existing entries and filling new ones with fill.
func resizeSlice[T any](s []T, newCapacity int, fill T) []T {
	next := make([]T, newCapacity)
	copyLen := len(s)
	if copyLen > newCapacity {
		copyLen = newCapacity
	}
	copy(next, s[:copyLen])
	for i := copyLen; i < newCapacity; i++ {
		next[i] = fill
	}
	return next
}
