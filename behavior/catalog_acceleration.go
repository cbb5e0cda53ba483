package behavior

import (
	"github.com/nightclipse/dancoren"
	"github.com/nightclipse/dancoren/column"
)

// Acceleration1 implements "acceleration1": motion_z += speed_accel.
func Acceleration1() Behavior {
	return Behavior{
		Identifier: "acceleration1",
		Required:   dancoren.ColMotionZ | dancoren.ColSpeedAccel,
		Act: func(s *column.Store, size int) {
			for i := 0; i < size; i++ {
				s.MotionZ.Set(i, s.MotionZ.Get(i)+s.SpeedAccel.Get(i))
			}
		},
	}
}

// Acceleration3 implements "acceleration3": motion += forward · speed_accel,
// i.e. every lane accelerates along its own current facing direction.
func Acceleration3() Behavior {
	return Behavior{
		Identifier: "acceleration3",
		Required:   dancoren.ColSpeedAccel | dancoren.MotionSet | dancoren.ForwardSet,
		Act: func(s *column.Store, size int) {
			for i := 0; i < size; i++ {
				accel := s.SpeedAccel.Get(i)
				s.MotionX.Set(i, s.MotionX.Get(i)+s.ForwardX.Get(i)*accel)
				s.MotionY.Set(i, s.MotionY.Get(i)+s.ForwardY.Get(i)*accel)
				s.MotionZ.Set(i, s.MotionZ.Get(i)+s.ForwardZ.Get(i)*accel)
			}
		},
	}
}
