package dancoren

// SpawnDescriptor is a value object describing one projectile to create
// (spec.md §3 Spawn Descriptor). Signature is the ordered list of behavior
// identifiers that determines which Bucket the descriptor routes to
// (spec.md §3 "Signature"): two descriptors with the same identifiers in a
// different order land in different buckets (scenario S6).
type SpawnDescriptor struct {
	EndTime      int16
	Attributes   []Attribute
	RenderProps  map[string]float32
	Signature    []string
	AdditiveMask ColumnSet
	NextStage    []SpawnDescriptor
	Children     []SpawnDescriptor
	Parent       *ID
	FamilyDepth  int16 // -1 == unresolved, per spec.md §3 Invariant/Lifecycle
}

// UnresolvedDepth is the sentinel FamilyDepth value meaning "not yet
// resolved" (spec.md §3: "Family depth ... -1 sentinel").
const UnresolvedDepth int16 = -1

// NewSpawnDescriptor returns a SpawnDescriptor with FamilyDepth defaulted
// to UnresolvedDepth, matching how a freshly authored descriptor (no known
// ancestry yet) is expected to arrive at Coordinator.Add.
func NewSpawnDescriptor(signature []string, endTime int16) SpawnDescriptor {
	return SpawnDescriptor{
		Signature:   signature,
		EndTime:     endTime,
		FamilyDepth: UnresolvedDepth,
	}
}

// PendingSpawn pairs a next-stage SpawnDescriptor with an optional
// preferred slot index for in-place reuse (spec.md §3 Lifecycle
// "Mandatory-end behavior": "preferred index... equal to this slot if the
// next-stage list has exactly one entry"). PreferredIndex is meaningful
// only when PreferredValid is true.
type PendingSpawn struct {
	Descriptor     SpawnDescriptor
	PreferredIndex int
	PreferredValid bool
}
