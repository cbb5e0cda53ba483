// Package column implements the Column Store (spec.md §4.1, component C1):
// structure-of-arrays storage for one bucket, sparse by required-column
// set, lane-packed per simdlane, with resize and dead-slot compaction.
//
// Design contract (strict), mirroring the teacher's builder/api.go
// contract style:
//   - A column is allocated in a Store ⇔ at least one resolved behavior in
//     the owning bucket's signature declares it required (Invariant 2).
//   - Position/scale/orientation/color each implicitly allocate their
//     paired "previous tick" column alongside the live one.
//   - Reading a field that is nil (not allocated) is a programmer error;
//     Store does not guard every access with a nil check on the hot path —
//     callers iterate only the columns named in Store.Required().
//   - Compact never reorders live slots; Resize never reorders any slot.
//
// AI-Hints (practical):
//   - Use Required() to decide which exported fields are safe to touch.
//   - Dead is a *bitset.BitSet (one bit per slot, not a []bool) — use
//     Dead.Test(i)/Dead.Set(i) rather than indexing.
//   - CurrentDead is a *roaring.Bitmap: the sparse set of slots marked dead
//     *this tick*, drained by Bucket.Tick after the mandatory_end pass.
package column
