// Package behavior defines the Behavior contract (spec.md §4.2) and a
// reference catalog of behaviors, one family per file, mirroring the
// teacher's one-algorithm-per-file convention (algorithms/bfs.go,
// algorithms/dfs.go).
//
// A Behavior declares the set of columns it reads and writes (Required)
// and an Act function that may touch only those columns across the live
// range [0, size). The mandatory-end behavior is the sole exception: it
// owns the death/staging protocol and is listed last in a bucket's
// signature. Neither this package nor bucket.New checks that order; a
// bucket runs its behaviors exactly in the order its signature gives.
//
// AI-Hints:
//   - Behaviors are pure functions of (*column.Store, size) plus whatever
//     constant parameters they close over (e.g. a gravity vector); they
//     hold no per-projectile state of their own — all state lives in the
//     column store.
//   - Register() returns ErrDuplicateIdentifier on a duplicate identifier;
//     RegisterReferenceCatalog panics on that error instead.
package behavior
