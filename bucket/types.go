package bucket

import (
	"github.com/nightclipse/dancoren"
	"github.com/nightclipse/dancoren/behavior"
	"github.com/nightclipse/dancoren/column"
)

// minSizeExp is the smallest size exponent a bucket may hold — capacity
// 2^7 = 128 (spec.md §4.4 "size_exp k starts at 7").
const minSizeExp = 7

// shrinkFloor is the smallest size exponent at which a bucket is
// considered for shrink (spec.md §4.4 "Shrink is considered when k ≥ 8");
// a shrink from shrinkFloor lands on minSizeExp.
const shrinkFloor = 8

// Bucket is a fixed-signature group of projectiles sharing one Column
// Store and resolved behavior pipeline (spec.md §3 "Bucket").
type Bucket struct {
	ID           uint64
	Signature    []string
	AlwaysKeep   bool
	localCounter uint64
	sizeExp      int
	currentSize  int
	behaviors    []behavior.Behavior
	store        *column.Store
}

// New allocates a Bucket at the minimum capacity with exactly the columns
// in required, running behaviors in the order given. It adds no behavior
// and does not check that mandatory_end is last; callers assemble
// behaviors via a behavior.Registry.Resolve call before constructing a
// Bucket.
func New(id uint64, signature []string, behaviors []behavior.Behavior, required dancoren.ColumnSet, alwaysKeep bool) *Bucket {
	return &Bucket{
		ID:          id,
		Signature:   signature,
		AlwaysKeep:  alwaysKeep,
		sizeExp:     minSizeExp,
		currentSize: 0,
		behaviors:   behaviors,
		store:       column.New(1<<minSizeExp, required),
	}
}

// CurrentSize returns the number of slots in [0, capacity) considered
// in-use (live or dead-but-not-yet-reclaimed).
func (b *Bucket) CurrentSize() int { return b.currentSize }

// Capacity returns the bucket's current column-store capacity, 2^sizeExp.
func (b *Bucket) Capacity() int { return 1 << b.sizeExp }

// Store exposes the bucket's Column Store for render-data assembly and
// testing. Behaviors must not be invoked directly against it outside of
// Tick — doing so bypasses the death/staging protocol's CurrentDead
// bookkeeping.
func (b *Bucket) Store() *column.Store { return b.store }

// IsEmpty reports whether the bucket has zero live projectiles, the
// condition Cleanup uses to decide whether a non-always-keep bucket may be
// dropped (spec.md §4.5 "Cleanup").
func (b *Bucket) IsEmpty() bool {
	return b.liveCount() == 0
}

func (b *Bucket) liveCount() int {
	dead := 0
	for i, ok := b.store.Dead.NextSet(0); ok && int(i) < b.currentSize; i, ok = b.store.Dead.NextSet(i + 1) {
		dead++
	}
	return b.currentSize - dead
}
