package column_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nightclipse/dancoren"
	"github.com/nightclipse/dancoren/column"
)

func TestNew_AllocatesOnlyRequiredOptionalColumns(t *testing.T) {
	required := dancoren.PosSet | dancoren.ColColorPrimary
	s := column.New(128, required)

	assert.NotNil(t, s.PosX)
	assert.NotNil(t, s.PosY)
	assert.NotNil(t, s.PosZ)
	assert.NotNil(t, s.ColorPrimary)

	assert.Nil(t, s.ScaleX, "scale was not in the required set and must stay unallocated")
	assert.Nil(t, s.Orientation)
	assert.Nil(t, s.Damage)
	assert.Nil(t, s.Form)
}

func TestNew_AlwaysPresentColumnsAllocatedRegardlessOfRequired(t *testing.T) {
	s := column.New(128, dancoren.ColumnSet(0))

	require.Len(t, s.ID, 128)
	require.NotNil(t, s.TicksExisted)
	require.NotNil(t, s.EndTime)
	require.NotNil(t, s.Dead)
	require.Len(t, s.NextStage, 128)
	require.Len(t, s.Parent, 128)
	require.NotNil(t, s.FamilyDepth)
	require.Len(t, s.TransformMats, 128)
	require.NotNil(t, s.CurrentDead)

	for i := 0; i < 128; i++ {
		assert.True(t, s.TransformMats[i].ApproxEqual(s.TransformMats[0]), "every slot starts at identity")
	}
}

func TestNew_PanicsBelowMinimumCapacity(t *testing.T) {
	assert.Panics(t, func() {
		column.New(64, dancoren.ColumnSet(0))
	})
}

func TestNew_PanicsOnNonPowerOfTwo(t *testing.T) {
	assert.Panics(t, func() {
		column.New(200, dancoren.ColumnSet(0))
	})
}

func TestNew_ScaleDefaultsToOneNotZero(t *testing.T) {
	s := column.New(128, dancoren.ScaleSet)
	for i := 0; i < 128; i++ {
		assert.Equal(t, float32(1), s.ScaleX.Get(i))
		assert.Equal(t, float32(1), s.ScaleY.Get(i))
		assert.Equal(t, float32(1), s.ScaleZ.Get(i))
	}
}

func TestNew_ForwardDefaultsToUnitXAxis(t *testing.T) {
	s := column.New(128, dancoren.ForwardSet)
	assert.Equal(t, float32(1), s.ForwardX.Get(0))
	assert.Equal(t, float32(0), s.ForwardY.Get(0))
	assert.Equal(t, float32(0), s.ForwardZ.Get(0))
}

func TestResize_PreservesSurvivingValuesAndClearsDeadTail(t *testing.T) {
	s := column.New(128, dancoren.PosSet)
	s.PosX.Set(5, 42)
	s.Dead.Set(200)

	s.Resize(256)

	assert.Equal(t, 256, s.Capacity())
	assert.Equal(t, float32(42), s.PosX.Get(5), "surviving lane must keep its value")
	assert.Len(t, s.ID, 256)

	s.Resize(128)
	assert.False(t, s.Dead.Test(200), "dead bit beyond the shrunk capacity must be cleared")
}

func TestCompact_KeepsOnlyLiveRowsInOriginalOrder(t *testing.T) {
	s := column.New(128, dancoren.PosSet)
	for i := 0; i < 5; i++ {
		s.PosX.Set(i, float32(i))
		s.ID[i] = dancoren.NewID(1, uint64(i))
	}
	s.Dead.Set(1)
	s.Dead.Set(3)

	liveCount := s.Compact(5, 128)

	require.Equal(t, 3, liveCount)
	assert.Equal(t, float32(0), s.PosX.Get(0))
	assert.Equal(t, float32(2), s.PosX.Get(1))
	assert.Equal(t, float32(4), s.PosX.Get(2))
	assert.Equal(t, uint64(0), s.ID[0].Local)
	assert.Equal(t, uint64(2), s.ID[1].Local)
	assert.Equal(t, uint64(4), s.ID[2].Local)
}

func TestCompact_ResetsDeadAndCurrentDead(t *testing.T) {
	s := column.New(128, dancoren.ColumnSet(0))
	s.Dead.Set(3)
	s.CurrentDead.Add(3)

	s.Compact(10, 128)

	assert.Equal(t, uint(0), s.Dead.Count())
	assert.True(t, s.CurrentDead.IsEmpty())
}

func TestCompact_RepacksToSmallerCapacity(t *testing.T) {
	s := column.New(256, dancoren.PosSet)
	for i := 0; i < 40; i++ {
		s.PosX.Set(i, float32(i))
	}

	liveCount := s.Compact(40, 128)

	assert.Equal(t, 40, liveCount)
	assert.Equal(t, 128, s.Capacity())
	assert.Equal(t, float32(39), s.PosX.Get(39))
}
