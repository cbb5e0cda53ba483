// Package bucket implements the Bucket container (spec.md §3 "Bucket",
// §4.4): a fixed-signature group of projectiles sharing one Column Store
// and one resolved behavior pipeline, with geometric growth, threshold
// shrink, and dead-slot-aware insertion.
//
// A Bucket never resolves cross-bucket routing itself — Tick returns the
// raw spawn requests its mandatory-end behavior produced, and the
// Coordinator decides where each one lands (same bucket for slot reuse,
// elsewhere for fan-out or signature change).
package bucket
