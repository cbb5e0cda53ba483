package coordinator

// InvariantError reports a programmer error the Coordinator cannot recover
// from at runtime (spec.md §7 "Invariant violations ... the core aborts
// with a diagnostic"): an add-danmaku pass that made no progress while
// descriptors remain unresolved (a parent ID that will never appear,
// typically a cycle or a reference to a projectile that was never queued).
type InvariantError struct {
	Op     string
	Detail string
}

func (e *InvariantError) Error() string {
	return "coordinator: invariant violation in " + e.Op + ": " + e.Detail
}
