package column

import (
	"github.com/bits-and-blooms/bitset"
	"github.com/RoaringBitmap/roaring/v2"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/nightclipse/dancoren"
	"github.com/nightclipse/dancoren/simdlane"
)

// New allocates a Store of the given capacity (power of two, >= 128) with
// exactly the optional columns named in required allocated (spec.md §4.1
// "new(C, R)"). Always-present columns are allocated unconditionally.
func New(capacity int, required dancoren.ColumnSet) *Store {
	mustBePowerOfTwoAtLeast128(capacity)

	wf32 := simdlane.SuggestedWidthF32()
	wi32 := simdlane.SuggestedWidthI32()
	wi16 := simdlane.SuggestedWidthI16()

	s := &Store{
		capacity: capacity,
		required: required,

		ID:               make([]dancoren.ID, capacity),
		TicksExisted:     simdlane.NewColumn[int16](wi16, capacity, defaultI16),
		EndTime:          simdlane.NewColumn[int16](wi16, capacity, defaultI16),
		Dead:             bitset.New(uint(capacity)),
		NextStage:        make([][]dancoren.SpawnDescriptor, capacity),
		NextStageAddData: make([]dancoren.ColumnSet, capacity),
		Parent:           make([]*dancoren.ID, capacity),
		FamilyDepth:      simdlane.NewColumn[int16](wi16, capacity, 0),
		TransformMats:    make([]mgl32.Mat4, capacity),
		CurrentDead:      roaring.New(),
		AddSpawns:        nil,
	}
	for i := range s.TransformMats {
		s.TransformMats[i] = mgl32.Ident4()
	}

	if required.Has(dancoren.ColPosX) {
		s.PosX = simdlane.NewColumn[float32](wf32, capacity, defaultF32)
		s.OldPosX = simdlane.NewColumn[float32](wf32, capacity, defaultF32)
	}
	if required.Has(dancoren.ColPosY) {
		s.PosY = simdlane.NewColumn[float32](wf32, capacity, defaultF32)
		s.OldPosY = simdlane.NewColumn[float32](wf32, capacity, defaultF32)
	}
	if required.Has(dancoren.ColPosZ) {
		s.PosZ = simdlane.NewColumn[float32](wf32, capacity, defaultF32)
		s.OldPosZ = simdlane.NewColumn[float32](wf32, capacity, defaultF32)
	}
	if required.Has(dancoren.ColScaleX) {
		s.ScaleX = simdlane.NewColumn[float32](wf32, capacity, defaultScaleAxis)
		s.OldScaleX = simdlane.NewColumn[float32](wf32, capacity, defaultScaleAxis)
	}
	if required.Has(dancoren.ColScaleY) {
		s.ScaleY = simdlane.NewColumn[float32](wf32, capacity, defaultScaleAxis)
		s.OldScaleY = simdlane.NewColumn[float32](wf32, capacity, defaultScaleAxis)
	}
	if required.Has(dancoren.ColScaleZ) {
		s.ScaleZ = simdlane.NewColumn[float32](wf32, capacity, defaultScaleAxis)
		s.OldScaleZ = simdlane.NewColumn[float32](wf32, capacity, defaultScaleAxis)
	}
	if required.Has(dancoren.ColOrientation) {
		s.Orientation = simdlane.NewQuatColumn(capacity)
		s.OldOrientation = simdlane.NewQuatColumn(capacity)
	}
	if required.Has(dancoren.ColRotation) {
		s.Rotation = simdlane.NewQuatColumn(capacity)
	}
	if required.Has(dancoren.ColColorPrimary) {
		s.ColorPrimary = simdlane.NewColumn[int32](wi32, capacity, defaultI32)
		s.OldColorPrimary = simdlane.NewColumn[int32](wi32, capacity, defaultI32)
	}
	if required.Has(dancoren.ColColorSecondary) {
		s.ColorSecondary = simdlane.NewColumn[int32](wi32, capacity, defaultI32)
		s.OldColorSecondary = simdlane.NewColumn[int32](wi32, capacity, defaultI32)
	}
	if required.Has(dancoren.ColDamage) {
		s.Damage = simdlane.NewColumn[float32](wf32, capacity, defaultF32)
	}
	if required.Has(dancoren.ColForm) {
		s.Form = make([]dancoren.Form, capacity)
		for i := range s.Form {
			s.Form[i] = dancoren.SphereForm
		}
	}
	if required.Has(dancoren.ColRenderProps) {
		s.RenderProps = make([]map[string]float32, capacity)
	}
	if required.Has(dancoren.ColMotionX) {
		s.MotionX = simdlane.NewColumn[float32](wf32, capacity, defaultF32)
	}
	if required.Has(dancoren.ColMotionY) {
		s.MotionY = simdlane.NewColumn[float32](wf32, capacity, defaultF32)
	}
	if required.Has(dancoren.ColMotionZ) {
		s.MotionZ = simdlane.NewColumn[float32](wf32, capacity, defaultF32)
	}
	if required.Has(dancoren.ColGravityX) {
		s.GravityX = simdlane.NewColumn[float32](wf32, capacity, defaultF32)
	}
	if required.Has(dancoren.ColGravityY) {
		s.GravityY = simdlane.NewColumn[float32](wf32, capacity, defaultF32)
	}
	if required.Has(dancoren.ColGravityZ) {
		s.GravityZ = simdlane.NewColumn[float32](wf32, capacity, defaultF32)
	}
	if required.Has(dancoren.ColSpeedAccel) {
		s.SpeedAccel = simdlane.NewColumn[float32](wf32, capacity, defaultF32)
	}
	if required.Has(dancoren.ColForwardX) {
		s.ForwardX = simdlane.NewColumn[float32](wf32, capacity, defaultForwardX)
	}
	if required.Has(dancoren.ColForwardY) {
		s.ForwardY = simdlane.NewColumn[float32](wf32, capacity, defaultForwardYZ)
	}
	if required.Has(dancoren.ColForwardZ) {
		s.ForwardZ = simdlane.NewColumn[float32](wf32, capacity, defaultForwardYZ)
	}

	return s
}
