package behavior_test

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nightclipse/dancoren"
	"github.com/nightclipse/dancoren/behavior"
	"github.com/nightclipse/dancoren/column"
)

func TestRegistry_ResolveUnionsRequiredColumns(t *testing.T) {
	r := behavior.NewRegistry()
	behavior.RegisterReferenceCatalog(r)

	resolved, required, err := r.Resolve([]string{"motion1", "gravity1", "mandatory_end"})
	require.NoError(t, err)
	assert.Len(t, resolved, 3)
	assert.True(t, required.Has(dancoren.ColPosZ))
	assert.True(t, required.Has(dancoren.ColMotionZ))
	assert.True(t, required.Has(dancoren.ColGravityY))
}

func TestRegistry_ResolveUnknownIdentifier(t *testing.T) {
	r := behavior.NewRegistry()
	_, _, err := r.Resolve([]string{"no-such-behavior"})
	assert.ErrorIs(t, err, behavior.ErrUnknownIdentifier)
}

func TestRegistry_RegisterDuplicateIdentifier(t *testing.T) {
	r := behavior.NewRegistry()
	require.NoError(t, r.Register(behavior.Motion1()))
	err := r.Register(behavior.Motion1())
	assert.ErrorIs(t, err, behavior.ErrDuplicateIdentifier)
}

func TestMotion1_AdvancesPosZByMotionZ(t *testing.T) {
	s := column.New(128, dancoren.ColPosZ|dancoren.ColMotionZ)
	s.PosZ.Set(0, 10)
	s.MotionZ.Set(0, 2)

	behavior.Motion1().Act(s, 1)

	assert.Equal(t, float32(10), s.OldPosZ.Get(0))
	assert.Equal(t, float32(12), s.PosZ.Get(0))
}

func TestGravity3_EachAxisAccumulatesItsOwnGravity(t *testing.T) {
	s := column.New(128, dancoren.MotionSet|dancoren.GravitySet)
	s.GravityX.Set(0, 1)
	s.GravityY.Set(0, -2)
	s.GravityZ.Set(0, 3)
	s.TicksExisted.Set(0, 4)

	behavior.Gravity3().Act(s, 1)

	assert.Equal(t, float32(4), s.MotionX.Get(0))
	assert.Equal(t, float32(-8), s.MotionY.Get(0))
	assert.Equal(t, float32(12), s.MotionZ.Get(0))
}

func TestMandatoryEnd_MarksDeadAfterEndTime(t *testing.T) {
	s := column.New(128, dancoren.ColumnSet(0))
	s.EndTime.Set(0, 1)
	s.TicksExisted.Set(0, 0)

	behavior.MandatoryEnd().Act(s, 1)

	assert.False(t, s.Dead.Test(0))

	behavior.MandatoryEnd().Act(s, 1)
	assert.True(t, s.Dead.Test(0))
}

func TestMandatoryEnd_SingleNextStageRequestsSlotReuse(t *testing.T) {
	s := column.New(128, dancoren.ColPosX)
	s.EndTime.Set(0, 0)
	s.PosX.Set(0, 7)
	s.NextStage[0] = []dancoren.SpawnDescriptor{
		dancoren.NewSpawnDescriptor([]string{"mandatory_end"}, 10),
	}
	s.NextStageAddData[0] = dancoren.ColPosX

	behavior.MandatoryEnd().Act(s, 1)

	require.Len(t, s.AddSpawns, 1)
	assert.True(t, s.AddSpawns[0].PreferredValid)
	assert.Equal(t, 0, s.AddSpawns[0].PreferredIndex)
	assert.True(t, s.Dead.Test(0))
}

func TestMandatoryEnd_AdditiveAttributeAddsCurrentValue(t *testing.T) {
	s := column.New(128, dancoren.ColPosX)
	s.EndTime.Set(0, 0)
	s.PosX.Set(0, 5)
	s.NextStageAddData[0] = dancoren.ColPosX
	s.NextStage[0] = []dancoren.SpawnDescriptor{
		{
			Attributes: []dancoren.Attribute{
				dancoren.Vec3Attr(dancoren.ColPosX, mgl32.Vec3{1, 0, 0}),
			},
			FamilyDepth: 0,
		},
	}

	behavior.MandatoryEnd().Act(s, 1)

	require.Len(t, s.AddSpawns, 1)
	attr := s.AddSpawns[0].Descriptor.Attributes[0]
	assert.Equal(t, float32(6), attr.Vec3[0])
}

func TestMandatoryEnd_MultipleNextStageHaveNoPreferredIndex(t *testing.T) {
	s := column.New(128, dancoren.ColumnSet(0))
	s.EndTime.Set(0, 0)
	s.NextStage[0] = []dancoren.SpawnDescriptor{
		dancoren.NewSpawnDescriptor([]string{"mandatory_end"}, 5),
		dancoren.NewSpawnDescriptor([]string{"mandatory_end"}, 5),
	}

	behavior.MandatoryEnd().Act(s, 1)

	require.Len(t, s.AddSpawns, 2)
	assert.False(t, s.AddSpawns[0].PreferredValid)
	assert.False(t, s.AddSpawns[1].PreferredValid)
}
