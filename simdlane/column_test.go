package simdlane_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nightclipse/dancoren/simdlane"
)

func TestColumn_PaddedLength(t *testing.T) {
	const width = 4
	c := simdlane.NewColumn[float32](width, 10, 0)
	require.Equal(t, 10, c.Cap())
	// ceil(10/4)=3 blocks * 4 lanes == 12.
	assert.Equal(t, 12, c.Len())
}

func TestColumn_GetSetRoundTrip(t *testing.T) {
	c := simdlane.NewColumn[int32](4, 9, -1)
	for i := 0; i < c.Cap(); i++ {
		c.Set(i, int32(i*2))
	}
	for i := 0; i < c.Cap(); i++ {
		assert.Equal(t, int32(i*2), c.Get(i))
	}
	// Padding lanes beyond capacity keep the fill value.
	for i := c.Cap(); i < c.Len(); i++ {
		assert.Equal(t, int32(-1), c.Get(i))
	}
}

func TestColumn_Resize_PreservesSurvivingLanes(t *testing.T) {
	c := simdlane.NewColumn[float32](4, 5, 0)
	c.Set(0, 1)
	c.Set(4, 5)
	c.Resize(9, -9)
	assert.Equal(t, float32(1), c.Get(0))
	assert.Equal(t, float32(5), c.Get(4))
	assert.Equal(t, float32(-9), c.Get(5))
	assert.Equal(t, 12, c.Len()) // ceil(9/4)*4
}

func TestColumn_GatherRepack_Compaction(t *testing.T) {
	c := simdlane.NewColumn[float32](4, 6, 0)
	for i := 0; i < 6; i++ {
		c.Set(i, float32(i))
	}
	live := []int{1, 3, 4} // simulate dead[0,2,5]
	scratch := c.Gather(live)
	require.Equal(t, []float32{1, 3, 4}, scratch)
	c.Repack(scratch, 3, -1)
	assert.Equal(t, 3, c.Cap())
	assert.Equal(t, float32(1), c.Get(0))
	assert.Equal(t, float32(3), c.Get(1))
	assert.Equal(t, float32(4), c.Get(2))
}

func TestSuggestedWidths_PowerOfTwoAndConsistent(t *testing.T) {
	wf32 := simdlane.SuggestedWidthF32()
	wi32 := simdlane.SuggestedWidthI32()
	wi16 := simdlane.SuggestedWidthI16()
	require.GreaterOrEqual(t, wf32, 1)
	assert.Zero(t, wf32&(wf32-1), "float32 lane width must be a power of two")
	assert.Equal(t, wf32, wi32)
	assert.Equal(t, wf32*2, wi16)
}
