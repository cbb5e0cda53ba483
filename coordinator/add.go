package coordinator

import (
	"github.com/nightclipse/dancoren"
	"github.com/nightclipse/dancoren/bucket"
)

// Add routes every descriptor in descs to its signature's bucket (spec.md
// §4.5 "Add danmaku loop"). A descriptor whose family depth cannot yet be
// resolved (an unresolved parent that has not been inserted this round) is
// deferred to the next pass; the loop terminates because every inserted
// projectile resolves its own children's parent links before they are
// queued. If an entire pass makes no progress while descriptors remain
// unresolved, Add panics with InvariantError — spec.md §7 allows this to
// "surface a diagnostic" rather than loop forever on a descriptor that can
// never resolve (typically a parent ID that was never queued).
func (c *Coordinator) Add(descs []dancoren.SpawnDescriptor) {
	pending := append([]dancoren.SpawnDescriptor(nil), descs...)

	for len(pending) > 0 {
		var deferred, spawnedChildren []dancoren.SpawnDescriptor
		progressed := false

		for _, d := range pending {
			depth, ok := c.resolveFamilyDepth(d)
			if !ok {
				deferred = append(deferred, d)
				continue
			}
			progressed = true

			d.FamilyDepth = depth
			stampChildDepths(d.Children, depth)

			id, children := c.route(d)
			c.depthOf[id] = depth
			if d.Parent != nil {
				c.parentOf[id] = *d.Parent
			}
			spawnedChildren = append(spawnedChildren, children...)
		}

		if !progressed {
			panic(&InvariantError{
				Op:     "Add",
				Detail: "family depth unresolved after a full pass with no progress",
			})
		}
		pending = append(deferred, spawnedChildren...)
	}
}

// resolveFamilyDepth implements spec.md §4.5 "Family-depth resolution": a
// descriptor that already carries a resolved depth keeps it; a root
// descriptor (no parent) resolves to 0; a descriptor with a parent
// resolves to depth_of[parent]+1 if that parent has been inserted, or
// fails (the caller defers) otherwise.
func (c *Coordinator) resolveFamilyDepth(d dancoren.SpawnDescriptor) (int16, bool) {
	if d.FamilyDepth >= 0 {
		return d.FamilyDepth, true
	}
	if d.Parent == nil {
		return 0, true
	}
	depth, ok := c.depthOf[*d.Parent]
	if !ok {
		return 0, false
	}
	return depth + 1, true
}

// stampChildDepths recursively assigns family_depth = baseDepth+1 to every
// nested child (and baseDepth+2 to their children, and so on), per spec.md
// §4.5's "recursively stamp family_depth+1 on all nested children" clause —
// done eagerly against the parent's own resolved depth rather than waiting
// for each child to look up depth_of after insertion.
func stampChildDepths(children []dancoren.SpawnDescriptor, baseDepth int16) {
	for i := range children {
		children[i].FamilyDepth = baseDepth + 1
		stampChildDepths(children[i].Children, baseDepth+1)
	}
}

// route resolves d's signature to a bucket (creating one on first sight)
// and inserts d at a fresh slot, per spec.md §3 Lifecycle "Create".
func (c *Coordinator) route(d dancoren.SpawnDescriptor) (dancoren.ID, []dancoren.SpawnDescriptor) {
	key := signatureKey(d.Signature)
	b, ok := c.buckets[key]
	if !ok {
		resolved, required, err := c.registry.Resolve(d.Signature)
		if err != nil {
			panic(err)
		}
		b = bucket.New(c.nextBucketID, d.Signature, resolved, required, c.alwaysKeep[key])
		c.nextBucketID++
		c.buckets[key] = b
	}
	return b.Insert(d, 0, false)
}
