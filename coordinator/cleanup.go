package coordinator

// Cleanup drops every bucket whose AlwaysKeep is false and whose live
// count is zero (spec.md §4.5 "Cleanup"). Calling Cleanup twice in
// succession with no intervening ticks is a no-op (spec.md §8 property 6):
// the second call finds no non-always-keep empty bucket it has not already
// dropped.
func (c *Coordinator) Cleanup() {
	for key, b := range c.buckets {
		if !b.AlwaysKeep && b.IsEmpty() {
			delete(c.buckets, key)
		}
	}
}

// MemoryWarning signals resource pressure to the Coordinator; per spec.md
// §6 it simply calls Cleanup.
func (c *Coordinator) MemoryWarning() {
	c.Cleanup()
}
