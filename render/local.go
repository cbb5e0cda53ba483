package render

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/nightclipse/dancoren"
	"github.com/nightclipse/dancoren/colorutil"
	"github.com/nightclipse/dancoren/column"
	"github.com/nightclipse/dancoren/simdlane"
)

// LocalFrame builds model-space RenderData for every live slot in
// [0, liveCount) of s, interpolating orientation (slerp), position and
// scale (lerp) at partialTicks ∈ [0,1] (spec.md §4.6). liveCount is the
// bucket's current_size (the Coordinator passes Bucket.CurrentSize);
// slots in that range that the Dead bitset marks are skipped.
func LocalFrame(s *column.Store, liveCount int, partialTicks float32) []dancoren.RenderData {
	out := make([]dancoren.RenderData, 0, liveCount)
	for i := 0; i < liveCount; i++ {
		if s.Dead.Test(uint(i)) {
			continue
		}
		out = append(out, localFrameAt(s, i, partialTicks))
	}
	return out
}

func localFrameAt(s *column.Store, i int, t float32) dancoren.RenderData {
	pos := lerpVec3(oldPos(s, i), curPos(s, i), t)
	scale := lerpVec3(oldScale(s, i), curScale(s, i), t)
	orient := slerpOrient(s, i, t)

	model := orient.Mat4().Mul4(mgl32.Translate3D(pos[0], pos[1], pos[2]))
	model = model.Mul4(mgl32.Scale3D(scale[0], scale[1], scale[2]))

	var form dancoren.Form
	if s.Form != nil {
		form = s.Form[i]
	} else {
		form = dancoren.SphereForm
	}
	var props map[string]float32
	if s.RenderProps != nil {
		props = s.RenderProps[i]
	}

	return dancoren.RenderData{
		ID:             s.ID[i],
		Form:           form,
		RenderProps:    props,
		Model:          model,
		ColorPrimary:   lerpColor(s.ColorPrimary, s.OldColorPrimary, i, t),
		ColorSecondary: lerpColor(s.ColorSecondary, s.OldColorSecondary, i, t),
		TicksExisted:   s.TicksExisted.Get(i),
		EndTime:        s.EndTime.Get(i),
	}
}

// axisOr reads c.Get(i) if the column is allocated, else returns fallback.
// Position/scale columns are allocated per axis independently (ColPosX,
// ColPosY, ColPosZ are separate bits), so a bucket may hold e.g. PosZ
// without PosX/PosY — each axis must be defaulted on its own rather than
// gating all three on one axis's presence.
func axisOr(c *simdlane.F32Column, i int, fallback float32) float32 {
	if c == nil {
		return fallback
	}
	return c.Get(i)
}

func curPos(s *column.Store, i int) mgl32.Vec3 {
	return mgl32.Vec3{axisOr(s.PosX, i, 0), axisOr(s.PosY, i, 0), axisOr(s.PosZ, i, 0)}
}

func oldPos(s *column.Store, i int) mgl32.Vec3 {
	return mgl32.Vec3{axisOr(s.OldPosX, i, 0), axisOr(s.OldPosY, i, 0), axisOr(s.OldPosZ, i, 0)}
}

// curScale and oldScale default every absent axis to 1, not 0 — spec.md §9
// flags the zero-default as producing a degenerate matrix; this
// implementation treats an unallocated scale axis as the identity scale.
func curScale(s *column.Store, i int) mgl32.Vec3 {
	return mgl32.Vec3{axisOr(s.ScaleX, i, 1), axisOr(s.ScaleY, i, 1), axisOr(s.ScaleZ, i, 1)}
}

func oldScale(s *column.Store, i int) mgl32.Vec3 {
	return mgl32.Vec3{axisOr(s.OldScaleX, i, 1), axisOr(s.OldScaleY, i, 1), axisOr(s.OldScaleZ, i, 1)}
}

func slerpOrient(s *column.Store, i int, t float32) mgl32.Quat {
	if s.Orientation == nil {
		return mgl32.QuatIdent()
	}
	return mgl32.QuatSlerp(s.OldOrientation.Get(i), s.Orientation.Get(i), t)
}

func lerpVec3(a, b mgl32.Vec3, t float32) mgl32.Vec3 {
	return a.Add(b.Sub(a).Mul(t))
}

func lerpColor(cur, old *simdlane.I32Column, i int, t float32) dancoren.PackedColor {
	if cur == nil {
		return 0
	}
	a := dancoren.PackedColor(uint32(old.Get(i)))
	b := dancoren.PackedColor(uint32(cur.Get(i)))
	return colorutil.LerpHSV(a, b, t)
}
