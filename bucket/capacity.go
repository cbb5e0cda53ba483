package bucket

import "math"

// growthThreshold returns the current_size value at or above which an
// insert must grow the bucket first (spec.md §4.4: "Grow when current_size
// + 0.1·capacity > capacity", rearranged to current_size > capacity -
// ⌈0.1·capacity⌉, matching invariant 3's "current_size + 1 > 2^k −
// ⌈0.1·2^k⌉").
func growthThreshold(capacity int) int {
	return capacity - int(math.Ceil(0.1*float64(capacity)))
}

// needsGrow reports whether an insert at the bucket's current size would
// require growth first, ignoring the dead-preferred-slot exemption (spec.md
// §4.4: "An insert whose preferred index is a live dead slot does not
// trigger growth" — callers check that exemption separately).
func (b *Bucket) needsGrow() bool {
	return b.currentSize+1 > growthThreshold(b.Capacity())
}

// grow doubles the bucket's capacity and resizes its Column Store to match.
func (b *Bucket) grow() {
	b.sizeExp++
	b.store.Resize(b.Capacity())
}

// MaybeShrink halves the bucket's capacity and compacts its Column Store
// when doing so would still leave more than 10% headroom (spec.md §4.4
// "Shrink is considered when k ≥ 8 and stepping down would still leave >
// 10% headroom; shrinking calls compact with the smaller capacity"). It
// fixes the documented shrink bug (spec.md §9) by always setting
// current_size to the live count Compact returns, rather than leaving it
// at its pre-shrink value.
func (b *Bucket) MaybeShrink() {
	if b.sizeExp < shrinkFloor {
		return
	}
	newCap := 1 << (b.sizeExp - 1)
	headroomFloor := growthThreshold(newCap)
	if b.liveCount() > headroomFloor {
		return
	}
	b.currentSize = b.store.Compact(b.currentSize, newCap)
	b.sizeExp--
}
