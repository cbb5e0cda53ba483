// Package render implements the per-tick interpolation and parent/child
// transform composition the Top Coordinator's RenderData operation needs
// (spec.md §4.6, §4.5 "Render data"): for each live slot it computes a
// local model matrix from slerped orientation, lerped position/scale and
// HSV-lerped colors, then — driven by the Coordinator's depth_of map —
// composes children's matrices onto their parent's via a depth-ordered
// priority queue so parents are always resolved before children
// (Invariant 8).
//
// This package owns only the math; it holds no bucket or coordinator
// state of its own. Composition input/output is the flat
// []dancoren.RenderData slice the Coordinator assembles per tick.
package render
