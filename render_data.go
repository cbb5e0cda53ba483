package dancoren

import "github.com/go-gl/mathgl/mgl32"

// RenderData is one projectile's per-tick render payload (spec.md §6
// "RenderData fields"). Model is already world-space by the time it leaves
// Coordinator.RenderData: the render package left-multiplies each child's
// local matrix by its parent's world matrix in depth order before handing
// results back.
type RenderData struct {
	ID             ID
	Form           Form
	RenderProps    map[string]float32
	Model          mgl32.Mat4
	ColorPrimary   PackedColor
	ColorSecondary PackedColor
	TicksExisted   int16
	EndTime        int16
}
