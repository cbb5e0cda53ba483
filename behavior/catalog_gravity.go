package behavior

import (
	"github.com/nightclipse/dancoren"
	"github.com/nightclipse/dancoren/column"
)

// Gravity1 implements "gravity1": motion_y += gravity_y · ticks_existed.
func Gravity1() Behavior {
	return Behavior{
		Identifier: "gravity1",
		Required:   dancoren.ColMotionY | dancoren.ColGravityY,
		Act: func(s *column.Store, size int) {
			for i := 0; i < size; i++ {
				ticks := float32(s.TicksExisted.Get(i))
				s.MotionY.Set(i, s.MotionY.Get(i)+s.GravityY.Get(i)*ticks)
			}
		},
	}
}

// Gravity3 implements "gravity3": each motion axis accumulates its own
// gravity axis scaled by ticks_existed, writing back to its own column —
// the §9-documented motion-aliasing bug is fixed by construction here.
func Gravity3() Behavior {
	return Behavior{
		Identifier: "gravity3",
		Required:   dancoren.MotionSet | dancoren.GravitySet,
		Act: func(s *column.Store, size int) {
			for i := 0; i < size; i++ {
				ticks := float32(s.TicksExisted.Get(i))
				s.MotionX.Set(i, s.MotionX.Get(i)+s.GravityX.Get(i)*ticks)
				s.MotionY.Set(i, s.MotionY.Get(i)+s.GravityY.Get(i)*ticks)
				s.MotionZ.Set(i, s.MotionZ.Get(i)+s.GravityZ.Get(i)*ticks)
			}
		},
	}
}
