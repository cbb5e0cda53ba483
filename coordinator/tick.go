package coordinator

import "github.com/nightclipse/dancoren"

// Tick runs every bucket's behavior pipeline once, then resolves the spawn
// requests they produced (spec.md §4.5 "Tick orchestration"). Pairs with a
// valid preferred index are first offered back to the bucket that produced
// them if the descriptor's signature still matches that bucket's signature
// (in-place slot reuse); every other pair — including reuse attempts whose
// family depth cannot yet be resolved inline — falls through to Add, which
// performs full routing and family-depth resolution. Reused-slot attempts
// are resolved before the Add pass so that fresh appends observe the
// correct current_size (spec.md: "this order ... is important").
func (c *Coordinator) Tick() {
	type ownedSpawn struct {
		bucketKey string
		spawn     dancoren.PendingSpawn
	}

	var collected []ownedSpawn
	for key, b := range c.buckets {
		for _, sp := range b.Tick() {
			collected = append(collected, ownedSpawn{bucketKey: key, spawn: sp})
		}
	}

	var remaining []dancoren.SpawnDescriptor
	for _, cs := range collected {
		b := c.buckets[cs.bucketKey]
		d := cs.spawn.Descriptor

		if cs.spawn.PreferredValid && signatureKey(d.Signature) == cs.bucketKey {
			if depth, ok := c.resolveFamilyDepth(d); ok {
				d.FamilyDepth = depth
				stampChildDepths(d.Children, depth)

				id, children := b.Insert(d, cs.spawn.PreferredIndex, true)
				c.depthOf[id] = depth
				if d.Parent != nil {
					c.parentOf[id] = *d.Parent
				}
				remaining = append(remaining, children...)
				continue
			}
		}
		remaining = append(remaining, d)
	}

	if len(remaining) > 0 {
		c.Add(remaining)
	}

	for _, b := range c.buckets {
		b.MaybeShrink()
	}
}
