package bucket

import "github.com/nightclipse/dancoren"

// Tick runs every resolved behavior, in signature order, against the live
// range [0, current_size), then returns the pending spawns the
// mandatory-end behavior (always last in the pipeline) produced this tick
// (spec.md §4.4 "Tick"). The Store's CurrentDead set is drained once the
// pipeline has run, so it only ever holds the slots that died this tick.
func (b *Bucket) Tick() []dancoren.PendingSpawn {
	for _, beh := range b.behaviors {
		beh.Act(b.store, b.currentSize)
	}
	b.store.CurrentDead.Clear()
	return b.store.GrabNewSpawns()
}
