package behavior

import (
	"github.com/nightclipse/dancoren"
	"github.com/nightclipse/dancoren/column"
)

// MandatoryEnd implements the death & staging protocol (spec.md §4.3). It
// is listed last in a bucket's signature (bucket.New does not check this;
// behaviors run in signature order) and is the only behavior permitted to
// mutate Dead/CurrentDead or append to AddSpawns.
func MandatoryEnd() Behavior {
	return Behavior{
		Identifier: "mandatory_end",
		Required:   0,
		Act:        mandatoryEndAct,
	}
}

func mandatoryEndAct(s *column.Store, size int) {
	required := s.Required()
	for i := 0; i < size; i++ {
		s.TicksExisted.Set(i, s.TicksExisted.Get(i)+1)
		thisDead := s.TicksExisted.Get(i) > s.EndTime.Get(i)

		if thisDead && !s.CurrentDead.Contains(uint32(i)) {
			s.CurrentDead.Add(uint32(i))

			nextStage := s.NextStage[i]
			s.NextStage[i] = nil

			mask := required.Intersect(s.NextStageAddData[i])
			for _, desc := range nextStage {
				applyAdditiveAttributes(s, i, mask, desc.Attributes)
			}

			if len(nextStage) == 1 {
				s.AddSpawns = append(s.AddSpawns, dancoren.PendingSpawn{
					Descriptor:     nextStage[0],
					PreferredIndex: i,
					PreferredValid: true,
				})
			} else {
				for _, ns := range nextStage {
					s.AddSpawns = append(s.AddSpawns, dancoren.PendingSpawn{Descriptor: ns})
				}
			}
		}

		if thisDead {
			s.Dead.Set(uint(i))
		}
	}
}

// applyAdditiveAttributes mutates attrs in place, adding or overwriting the
// dying slot i's current values into the attributes whose kind is
// requested by mask (spec.md §4.3 step 3c: "appears in both the bucket's
// required set AND the descriptor's next_stage_add_data mask" — a
// per-column test). Every attribute carries a single-axis kind (ColPosZ,
// ColMotionY, ...), never an OR'd axis-group constant, matching every
// other call site in the repo, so mask.Has and the switch below both
// operate bit-by-bit rather than requiring all three axes of a vector at
// once. Orientation/rotation are left-multiplied by the current
// orientation/rotation; colors are overwritten outright; appearance
// attributes (form, render props) are never touched here.
func applyAdditiveAttributes(s *column.Store, i int, mask dancoren.ColumnSet, attrs []dancoren.Attribute) {
	for j := range attrs {
		a := &attrs[j]
		if !mask.Has(a.Kind) {
			continue
		}
		switch a.Kind {
		case dancoren.ColPosX:
			a.Vec3[0] += s.PosX.Get(i)
		case dancoren.ColPosY:
			a.Vec3[1] += s.PosY.Get(i)
		case dancoren.ColPosZ:
			a.Vec3[2] += s.PosZ.Get(i)
		case dancoren.ColScaleX:
			a.Vec3[0] += s.ScaleX.Get(i)
		case dancoren.ColScaleY:
			a.Vec3[1] += s.ScaleY.Get(i)
		case dancoren.ColScaleZ:
			a.Vec3[2] += s.ScaleZ.Get(i)
		case dancoren.ColMotionX:
			a.Vec3[0] += s.MotionX.Get(i)
		case dancoren.ColMotionY:
			a.Vec3[1] += s.MotionY.Get(i)
		case dancoren.ColMotionZ:
			a.Vec3[2] += s.MotionZ.Get(i)
		case dancoren.ColGravityX:
			a.Vec3[0] += s.GravityX.Get(i)
		case dancoren.ColGravityY:
			a.Vec3[1] += s.GravityY.Get(i)
		case dancoren.ColGravityZ:
			a.Vec3[2] += s.GravityZ.Get(i)
		case dancoren.ColForwardX:
			a.Vec3[0] += s.ForwardX.Get(i)
		case dancoren.ColForwardY:
			a.Vec3[1] += s.ForwardY.Get(i)
		case dancoren.ColForwardZ:
			a.Vec3[2] += s.ForwardZ.Get(i)
		case dancoren.ColOrientation:
			a.Quat = s.Orientation.Get(i).Mul(a.Quat)
		case dancoren.ColRotation:
			a.Quat = s.Rotation.Get(i).Mul(a.Quat)
		case dancoren.ColDamage:
			a.Scalar += s.Damage.Get(i)
		case dancoren.ColColorPrimary:
			a.Color = dancoren.PackedColor(s.ColorPrimary.Get(i))
		case dancoren.ColColorSecondary:
			a.Color = dancoren.PackedColor(s.ColorSecondary.Get(i))
		}
	}
}
