package behavior

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/nightclipse/dancoren"
	"github.com/nightclipse/dancoren/column"
)

// RotateOrientation implements "rotate_orientation": old_orientation ←
// orientation; orientation ← orientation · rotation.
func RotateOrientation() Behavior {
	return Behavior{
		Identifier: "rotate_orientation",
		Required:   dancoren.ColRotation | dancoren.ColOrientation,
		Act: func(s *column.Store, size int) {
			for i := 0; i < size; i++ {
				cur := s.Orientation.Get(i)
				s.OldOrientation.Set(i, cur)
				s.Orientation.Set(i, cur.Mul(s.Rotation.Get(i)).Normalize())
			}
		},
	}
}

// RotateForward implements "rotate_forward": forward ← rotation · forward,
// renormalized, so a lane's facing direction tracks its own rotation lane
// independent of its orientation lane.
func RotateForward() Behavior {
	return Behavior{
		Identifier: "rotate_forward",
		Required:   dancoren.ColRotation | dancoren.ForwardSet,
		Act: func(s *column.Store, size int) {
			for i := 0; i < size; i++ {
				fwd := mgl32.Vec3{s.ForwardX.Get(i), s.ForwardY.Get(i), s.ForwardZ.Get(i)}
				rotated := s.Rotation.Get(i).Rotate(fwd)
				if l := rotated.Len(); l > 0 {
					rotated = rotated.Mul(1 / l)
				}
				s.ForwardX.Set(i, rotated[0])
				s.ForwardY.Set(i, rotated[1])
				s.ForwardZ.Set(i, rotated[2])
			}
		},
	}
}
