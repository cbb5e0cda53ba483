package column

import (
	"github.com/bits-and-blooms/bitset"
	"github.com/RoaringBitmap/roaring/v2"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/nightclipse/dancoren"
	"github.com/nightclipse/dancoren/simdlane"
)

// Store is one bucket's structure-of-arrays storage (spec.md §3 Bucket
// "a Column Store", §4.1 C1). Fields prefixed with a comment "always
// present" exist in every Store regardless of Required(); every other
// field is nil unless its ColumnKind bit is set in Required().
type Store struct {
	capacity int
	required dancoren.ColumnSet

	// --- always present (spec.md §4.1) ---

	ID               []dancoren.ID
	TicksExisted     *simdlane.I16Column
	EndTime          *simdlane.I16Column
	Dead             *bitset.BitSet
	NextStage        [][]dancoren.SpawnDescriptor
	NextStageAddData []dancoren.ColumnSet
	Parent           []*dancoren.ID
	FamilyDepth      *simdlane.I16Column
	TransformMats    []mgl32.Mat4
	CurrentDead      *roaring.Bitmap
	AddSpawns        []dancoren.PendingSpawn

	// --- optional, allocated iff the matching ColumnKind bit is required ---

	PosX, PosY, PosZ                *simdlane.F32Column
	OldPosX, OldPosY, OldPosZ       *simdlane.F32Column
	ScaleX, ScaleY, ScaleZ          *simdlane.F32Column
	OldScaleX, OldScaleY, OldScaleZ *simdlane.F32Column

	Orientation, OldOrientation *simdlane.QuatColumn
	Rotation                    *simdlane.QuatColumn

	ColorPrimary, ColorSecondary       *simdlane.I32Column
	OldColorPrimary, OldColorSecondary *simdlane.I32Column

	Damage      *simdlane.F32Column
	Form        []dancoren.Form
	RenderProps []map[string]float32

	MotionX, MotionY, MotionZ       *simdlane.F32Column
	GravityX, GravityY, GravityZ    *simdlane.F32Column
	SpeedAccel                      *simdlane.F32Column
	ForwardX, ForwardY, ForwardZ    *simdlane.F32Column
}

// Required returns the bucket's resolved required-column set.
func (s *Store) Required() dancoren.ColumnSet { return s.required }

// Capacity returns the current logical capacity C (spec.md §3 "size
// exponent k ... capacity = 2^k").
func (s *Store) Capacity() int { return s.capacity }

// Has reports whether kind is allocated in this Store.
func (s *Store) Has(kind dancoren.ColumnKind) bool { return s.required.Has(kind) }

// GrabNewSpawns returns and clears add_spawns (spec.md §4.1
// "grab_new_spawns()").
func (s *Store) GrabNewSpawns() []dancoren.PendingSpawn {
	out := s.AddSpawns
	s.AddSpawns = nil
	return out
}
