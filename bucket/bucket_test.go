package bucket_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nightclipse/dancoren"
	"github.com/nightclipse/dancoren/behavior"
	"github.com/nightclipse/dancoren/bucket"
)

func newTestBucket(t *testing.T, signature []string) *bucket.Bucket {
	t.Helper()
	r := behavior.NewRegistry()
	behavior.RegisterReferenceCatalog(r)
	resolved, required, err := r.Resolve(signature)
	require.NoError(t, err)
	return bucket.New(1, signature, resolved, required, false)
}

func TestInsert_AssignsDistinctIDs(t *testing.T) {
	b := newTestBucket(t, []string{"motion1", "mandatory_end"})
	id1, _ := b.Insert(dancoren.NewSpawnDescriptor([]string{"motion1", "mandatory_end"}, 5), 0, false)
	id2, _ := b.Insert(dancoren.NewSpawnDescriptor([]string{"motion1", "mandatory_end"}, 5), 0, false)

	assert.NotEqual(t, id1, id2)
	assert.Equal(t, 2, b.CurrentSize())
}

func TestInsert_CopiesEndTimeAndClearsDead(t *testing.T) {
	b := newTestBucket(t, []string{"motion1", "mandatory_end"})
	b.Insert(dancoren.NewSpawnDescriptor([]string{"motion1", "mandatory_end"}, 7), 0, false)

	assert.Equal(t, int16(7), b.Store().EndTime.Get(0))
	assert.False(t, b.Store().Dead.Test(0))
}

func TestInsert_ReusesDeadPreferredSlotWithoutGrowing(t *testing.T) {
	b := newTestBucket(t, []string{"motion1", "mandatory_end"})
	b.Insert(dancoren.NewSpawnDescriptor([]string{"motion1", "mandatory_end"}, 0), 0, false)
	capBefore := b.Capacity()

	b.Store().Dead.Set(0)
	id, _ := b.Insert(dancoren.NewSpawnDescriptor([]string{"motion1", "mandatory_end"}, 9), 0, true)

	assert.Equal(t, capBefore, b.Capacity(), "reusing a dead preferred slot must not grow the bucket")
	assert.Equal(t, 1, b.CurrentSize(), "current_size must not increase on slot reuse")
	assert.Equal(t, uint64(1), id.Local) // the reuse insert still takes the next local counter value
}

func TestInsert_StaleReuseHintFallsBackToAppend(t *testing.T) {
	b := newTestBucket(t, []string{"motion1", "mandatory_end"})
	b.Insert(dancoren.NewSpawnDescriptor([]string{"motion1", "mandatory_end"}, 5), 0, false)

	_, _ = b.Insert(dancoren.NewSpawnDescriptor([]string{"motion1", "mandatory_end"}, 5), 0, true)

	assert.Equal(t, 2, b.CurrentSize(), "slot 0 was not dead, so the hint must be ignored")
}

func TestInsert_GrowsBeforeOverflow(t *testing.T) {
	b := newTestBucket(t, []string{"motion1", "mandatory_end"})
	capBefore := b.Capacity()
	for i := 0; i < capBefore; i++ {
		b.Insert(dancoren.NewSpawnDescriptor([]string{"motion1", "mandatory_end"}, 100), 0, false)
	}

	assert.Greater(t, b.Capacity(), capBefore)
}

func TestInsert_SetsChildParentToNewID(t *testing.T) {
	b := newTestBucket(t, []string{"motion1", "mandatory_end"})
	desc := dancoren.NewSpawnDescriptor([]string{"motion1", "mandatory_end"}, 5)
	desc.Children = []dancoren.SpawnDescriptor{
		dancoren.NewSpawnDescriptor([]string{"motion1", "mandatory_end"}, 3),
	}

	id, children := b.Insert(desc, 0, false)

	require.Len(t, children, 1)
	require.NotNil(t, children[0].Parent)
	assert.Equal(t, id, *children[0].Parent)
}

func TestTick_RunsBehaviorsInSignatureOrder(t *testing.T) {
	b := newTestBucket(t, []string{"motion1", "mandatory_end"})
	desc := dancoren.NewSpawnDescriptor([]string{"motion1", "mandatory_end"}, 3)
	desc.Attributes = []dancoren.Attribute{}
	b.Insert(desc, 0, false)
	b.Store().PosZ.Set(0, 0)
	b.Store().MotionZ.Set(0, 0.1)

	b.Tick()

	assert.InDelta(t, 0.1, b.Store().PosZ.Get(0), 1e-6)
	assert.Equal(t, int16(1), b.Store().TicksExisted.Get(0))
}

func TestMaybeShrink_NoopBelowShrinkFloor(t *testing.T) {
	b := newTestBucket(t, []string{"motion1", "mandatory_end"})
	capBefore := b.Capacity()
	b.MaybeShrink()
	assert.Equal(t, capBefore, b.Capacity())
}
