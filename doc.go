// Package dancoren is a data-oriented, columnar, SIMD-lane-packed bullet
// pattern ("danmaku") simulation core.
//
// 🚀 What is dancoren?
//
//	A structure-of-arrays runtime that advances a large population of
//	short-lived projectiles through a fixed-step behavior pipeline and
//	emits per-projectile render data every tick:
//
//	  • Column store: sparse, lane-packed storage partitioned by behavior
//	    signature, so every projectile sharing a signature runs the same
//	    ordered behavior list over dense, aligned lanes.
//	  • Behaviors: pure functions over a column-store slice, pluggable and
//	    resolved once per bucket at creation.
//	  • Buckets: own one column store, grow/shrink by power of two,
//	    compact around dead slots while preserving live order.
//	  • Coordinator: routes spawns to buckets by signature, resolves
//	    family depth, and composes parent→child world transforms.
//
// ✨ Why dancoren?
//
//   - Single-threaded, cooperative — a tick is one atomic synchronous pass.
//   - Sparse by signature — a column only exists where some behavior in
//     the bucket's pipeline actually needs it.
//   - Lane-packed — behaviors are written once against a width-agnostic
//     SIMD lane abstraction (simdlane), dispatched to the host's suggested
//     width at load time, with width=1 as a portable fallback.
//
// Under the hood, everything is organized into subpackages:
//
//	column/      — the column store (C1): sparse alloc, resize, compact
//	simdlane/    — width-agnostic lane-packed column storage
//	behavior/    — the Behavior contract (C2) and reference catalog
//	bucket/      — the Bucket (C3): capacity policy, insertion, tick
//	coordinator/ — the Top Coordinator (C4): routing, depth, cleanup
//	render/      — render assembly (C5): interpolation, parent→child compose
//	colorutil/   — lerp_color_hsv, the one pure color-space function the
//	               core depends on
//
// dancoren itself holds the value types shared across every subpackage:
// ID, SpawnDescriptor, RenderData, Form, and the ColumnKind bitmask used to
// describe a behavior's required columns and a spawn descriptor's additive
// mask.
//
//	go get github.com/nightclipse/dancoren
package dancoren
