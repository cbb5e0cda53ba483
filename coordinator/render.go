package coordinator

import (
	"github.com/nightclipse/dancoren"
	"github.com/nightclipse/dancoren/render"
)

// RenderData assembles one frame's render payload across every bucket,
// interpolating at partialTicks ∈ [0,1] and composing parent/child world
// matrices in family-depth order (spec.md §4.5 "Render data", §4.6).
func (c *Coordinator) RenderData(partialTicks float32) []dancoren.RenderData {
	var all []dancoren.RenderData
	for _, b := range c.buckets {
		all = append(all, render.LocalFrame(b.Store(), b.CurrentSize(), partialTicks)...)
	}
	return render.Compose(all, c.parentOf, c.depthOf)
}
