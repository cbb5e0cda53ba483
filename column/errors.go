package column

import "errors"

// ErrInvalidCapacity indicates New, Resize or Compact received a capacity
// that is not a power of two >= 128 (spec.md §4.1 "capacity C, power of
// two, ≥ 128").
var ErrInvalidCapacity = errors.New("column: capacity must be a power of two >= 128")

// InvariantError reports a programmer error (spec.md §7 "Invariant
// violations ... programmer errors; the core aborts with a diagnostic").
// The Store raises it only for an invalid capacity; reads of unallocated
// columns are not checked and hit a nil column instead.
// Unlike the sentinel errors above, InvariantError is meant to be raised
// via panic, not returned, matching spec.md's "must not be recoverable at
// runtime" guidance.
type InvariantError struct {
	Op     string
	Detail string
}

func (e *InvariantError) Error() string {
	return "column: invariant violation in " + e.Op + ": " + e.Detail
}

// mustBePowerOfTwoAtLeast128 panics via InvariantError if capacity breaks
// the spec's capacity contract; New/Resize are only ever called by Bucket
// with capacities it derives itself, so a violation here is a core bug,
// not caller input — hence panic rather than a returned error.
func mustBePowerOfTwoAtLeast128(capacity int) {
	if capacity < 128 || capacity&(capacity-1) != 0 {
		panic(&InvariantError{Op: "New/Resize", Detail: ErrInvalidCapacity.Error()})
	}
}
