package render_test

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nightclipse/dancoren"
	"github.com/nightclipse/dancoren/column"
	"github.com/nightclipse/dancoren/render"
)

func TestLocalFrame_LerpsPositionAtPartialTicks(t *testing.T) {
	s := column.New(128, dancoren.PosSet)
	s.ID[0] = dancoren.NewID(1, 0)
	s.OldPosX.Set(0, 0)
	s.PosX.Set(0, 10)

	entries := render.LocalFrame(s, 1, 0.5)

	require.Len(t, entries, 1)
	pos := entries[0].Model.Col(3)
	assert.InDelta(t, 5, pos[0], 1e-4)
}

func TestLocalFrame_SkipsDeadSlots(t *testing.T) {
	s := column.New(128, dancoren.ColumnSet(0))
	s.ID[0] = dancoren.NewID(1, 0)
	s.Dead.Set(0)

	entries := render.LocalFrame(s, 1, 0)
	assert.Empty(t, entries)
}

func TestLocalFrame_MissingScaleDefaultsToOne(t *testing.T) {
	s := column.New(128, dancoren.PosSet)
	s.ID[0] = dancoren.NewID(1, 0)

	entries := render.LocalFrame(s, 1, 0)
	require.Len(t, entries, 1)

	scaled := entries[0].Model.Mul4x1(mgl32.Vec4{1, 0, 0, 0})
	assert.InDelta(t, 1, scaled[0], 1e-4, "a missing scale column must not collapse the matrix to zero")
}

func TestCompose_ChildInheritsParentTranslation(t *testing.T) {
	parentID := dancoren.NewID(1, 0)
	childID := dancoren.NewID(1, 1)

	entries := []dancoren.RenderData{
		{ID: parentID, Model: mgl32.Translate3D(1, 0, 0)},
		{ID: childID, Model: mgl32.Translate3D(0, 1, 0)},
	}
	parentOf := map[dancoren.ID]dancoren.ID{childID: parentID}
	depthOf := map[dancoren.ID]int16{parentID: 0, childID: 1}

	out := render.Compose(entries, parentOf, depthOf)

	require.Len(t, out, 2)
	var childOut dancoren.RenderData
	for _, e := range out {
		if e.ID == childID {
			childOut = e
		}
	}
	world := childOut.Model.Col(3)
	assert.InDelta(t, 1, world[0], 1e-4)
	assert.InDelta(t, 1, world[1], 1e-4)
}

func TestCompose_DropsChildWithMissingParent(t *testing.T) {
	childID := dancoren.NewID(1, 1)
	missingParent := dancoren.NewID(9, 9)

	entries := []dancoren.RenderData{
		{ID: childID, Model: mgl32.Ident4()},
	}
	parentOf := map[dancoren.ID]dancoren.ID{childID: missingParent}
	depthOf := map[dancoren.ID]int16{childID: 1}

	out := render.Compose(entries, parentOf, depthOf)
	assert.Empty(t, out)
}
