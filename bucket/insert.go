package bucket

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/nightclipse/dancoren"
	"github.com/nightclipse/dancoren/column"
)

// Insert places desc into the bucket, preferring slot preferredIndex when
// preferredValid is true and that slot is actually dead (spec.md §4.4
// "Insertion"; §9 re-validates the advisory hint per the re-architecture
// guidance "the preferred index hint is advisory and must be validated").
// It returns the freshly assigned ID and desc.Children with each child's
// Parent set to that ID, for further routing by the Coordinator.
func (b *Bucket) Insert(desc dancoren.SpawnDescriptor, preferredIndex int, preferredValid bool) (dancoren.ID, []dancoren.SpawnDescriptor) {
	reuse := preferredValid && preferredIndex < b.currentSize && b.store.Dead.Test(uint(preferredIndex))

	var i int
	if reuse {
		i = preferredIndex
	} else {
		if b.needsGrow() {
			b.grow()
		}
		i = b.currentSize
		b.currentSize++
	}

	id := dancoren.NewID(b.ID, b.localCounter)
	b.localCounter++

	s := b.store
	s.ID[i] = id
	s.EndTime.Set(i, desc.EndTime)
	s.NextStage[i] = desc.NextStage
	s.NextStageAddData[i] = desc.AdditiveMask
	s.Parent[i] = desc.Parent
	s.FamilyDepth.Set(i, desc.FamilyDepth)
	s.Dead.Clear(uint(i))
	s.TicksExisted.Set(i, 0)
	s.TransformMats[i] = mgl32.Ident4()
	if s.RenderProps != nil {
		s.RenderProps[i] = desc.RenderProps
	}

	for _, a := range desc.Attributes {
		writeAttribute(s, i, a)
	}

	children := desc.Children
	for c := range children {
		childID := id
		children[c].Parent = &childID
	}
	return id, children
}

// writeAttribute copies a single-axis (or scalar/quat/color/form) attribute
// into its column, matched bit-by-bit: every call site builds Attributes
// with a single ColumnKind bit (ColPosZ, ColMotionY, ...), never an OR'd
// axis-group constant, so the switch must match individual bits rather
// than the PosSet/ScaleSet/MotionSet/GravitySet/ForwardSet groups.
func writeAttribute(s *column.Store, i int, a dancoren.Attribute) {
	switch a.Kind {
	case dancoren.ColPosX:
		if s.PosX != nil {
			s.PosX.Set(i, a.Vec3[0])
		}
	case dancoren.ColPosY:
		if s.PosY != nil {
			s.PosY.Set(i, a.Vec3[1])
		}
	case dancoren.ColPosZ:
		if s.PosZ != nil {
			s.PosZ.Set(i, a.Vec3[2])
		}
	case dancoren.ColScaleX:
		if s.ScaleX != nil {
			s.ScaleX.Set(i, a.Vec3[0])
		}
	case dancoren.ColScaleY:
		if s.ScaleY != nil {
			s.ScaleY.Set(i, a.Vec3[1])
		}
	case dancoren.ColScaleZ:
		if s.ScaleZ != nil {
			s.ScaleZ.Set(i, a.Vec3[2])
		}
	case dancoren.ColMotionX:
		if s.MotionX != nil {
			s.MotionX.Set(i, a.Vec3[0])
		}
	case dancoren.ColMotionY:
		if s.MotionY != nil {
			s.MotionY.Set(i, a.Vec3[1])
		}
	case dancoren.ColMotionZ:
		if s.MotionZ != nil {
			s.MotionZ.Set(i, a.Vec3[2])
		}
	case dancoren.ColGravityX:
		if s.GravityX != nil {
			s.GravityX.Set(i, a.Vec3[0])
		}
	case dancoren.ColGravityY:
		if s.GravityY != nil {
			s.GravityY.Set(i, a.Vec3[1])
		}
	case dancoren.ColGravityZ:
		if s.GravityZ != nil {
			s.GravityZ.Set(i, a.Vec3[2])
		}
	case dancoren.ColForwardX:
		if s.ForwardX != nil {
			s.ForwardX.Set(i, a.Vec3[0])
		}
	case dancoren.ColForwardY:
		if s.ForwardY != nil {
			s.ForwardY.Set(i, a.Vec3[1])
		}
	case dancoren.ColForwardZ:
		if s.ForwardZ != nil {
			s.ForwardZ.Set(i, a.Vec3[2])
		}
	case dancoren.ColOrientation:
		if s.Orientation != nil {
			s.Orientation.Set(i, a.Quat)
		}
	case dancoren.ColRotation:
		if s.Rotation != nil {
			s.Rotation.Set(i, a.Quat)
		}
	case dancoren.ColDamage:
		if s.Damage != nil {
			s.Damage.Set(i, a.Scalar)
		}
	case dancoren.ColSpeedAccel:
		if s.SpeedAccel != nil {
			s.SpeedAccel.Set(i, a.Scalar)
		}
	case dancoren.ColColorPrimary:
		if s.ColorPrimary != nil {
			s.ColorPrimary.Set(i, int32(a.Color))
		}
	case dancoren.ColColorSecondary:
		if s.ColorSecondary != nil {
			s.ColorSecondary.Set(i, int32(a.Color))
		}
	case dancoren.ColForm:
		if s.Form != nil {
			s.Form[i] = a.Form
		}
	}
}
