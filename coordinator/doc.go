// Package coordinator implements the Top Coordinator (spec.md §4.5,
// component C4): the owner of every Bucket, the behavior registry, and the
// two global cross-bucket maps (parent_of, depth_of) that let render-time
// transform composition work without owning pointers (spec.md §9
// re-architecture guidance "do not model with owning pointers").
//
// Coordinator is the module's only embedding surface (spec.md §6):
// New, RegisterBehavior, Add, Tick, RenderData, Cleanup, MemoryWarning.
// The column, behavior, bucket and render packages it builds on are
// exported as well and can be used directly.
package coordinator
