package behavior

import (
	"github.com/nightclipse/dancoren"
	"github.com/nightclipse/dancoren/column"
)

// Motion1 implements the single-axis "motion1" reference behavior (spec.md
// §4.2): old_pos_z ← pos_z; pos_z += motion_z.
func Motion1() Behavior {
	return Behavior{
		Identifier: "motion1",
		Required:   dancoren.ColPosZ | dancoren.ColMotionZ,
		Act: func(s *column.Store, size int) {
			for i := 0; i < size; i++ {
				s.OldPosZ.Set(i, s.PosZ.Get(i))
				s.PosZ.Set(i, s.PosZ.Get(i)+s.MotionZ.Get(i))
			}
		},
	}
}

// Motion3 implements the three-axis "motion3" reference behavior: saves
// each axis's old position, then advances it by the matching motion axis.
// Each axis reads and writes its own column — the §9-documented
// "everything aliases into motion_x" bug does not exist here.
func Motion3() Behavior {
	return Behavior{
		Identifier: "motion3",
		Required:   dancoren.PosSet | dancoren.MotionSet,
		Act: func(s *column.Store, size int) {
			for i := 0; i < size; i++ {
				s.OldPosX.Set(i, s.PosX.Get(i))
				s.OldPosY.Set(i, s.PosY.Get(i))
				s.OldPosZ.Set(i, s.PosZ.Get(i))

				s.PosX.Set(i, s.PosX.Get(i)+s.MotionX.Get(i))
				s.PosY.Set(i, s.PosY.Get(i)+s.MotionY.Get(i))
				s.PosZ.Set(i, s.PosZ.Get(i)+s.MotionZ.Get(i))
			}
		},
	}
}
