// Package simdlane provides width-agnostic, SIMD-lane-packed column
// storage (spec.md §4.1 "Layout rules"). A lane-packed column is an array
// of ⌈capacity/W⌉ blocks of width W, where W is the host's suggested SIMD
// width for the element type; row index i maps to block i/W, lane i%W.
//
// The packed layout is realized as one flat, padded slice per column —
// block b, lane l live at flat offset b*W+l, which for contiguous lanes is
// simply i — so every accessor in this package is a direct index into a
// slice whose length is always a multiple of W. This keeps the abstraction
// trivial to reason about while preserving the guarantee spec.md §8
// property 7 tests: len(column) == ceil(capacity/W)*W.
//
// Suggested width is discovered once at load time from
// github.com/ajroetker/go-highway (hwy.Zero[float32]().NumLanes()) for
// float32 lanes; integer lane widths are derived from the same underlying
// register size (see width.go). A host reporting no usable SIMD registers
// yields W=1, the portable scalar fallback spec.md §4.1 requires.
package simdlane
