package dancoren

import "fmt"

// ID is a projectile's 128-bit identity, composed as (bucket_id<<64)|local
// (spec.md §3 Projectile). Bucket is the owning bucket's monotonic 64-bit
// id; Local is that bucket's monotonic per-insert counter. IDs never recur
// within a Coordinator's lifetime (spec.md §8 property 3) because Bucket
// ids are never reused and Local only increments.
type ID struct {
	Bucket uint64
	Local  uint64
}

// NewID constructs an ID from its bucket and local components.
func NewID(bucket, local uint64) ID { return ID{Bucket: bucket, Local: local} }

// Pack renders the ID as the 128-bit big-endian value (bucket_id<<64)|local.
func (id ID) Pack() [16]byte {
	var out [16]byte
	for i := 0; i < 8; i++ {
		out[i] = byte(id.Bucket >> (56 - 8*i))
		out[8+i] = byte(id.Local >> (56 - 8*i))
	}
	return out
}

// String renders the ID as "bucket:local", useful for diagnostics and test
// failure messages; it is not part of the wire contract (there is none).
func (id ID) String() string { return fmt.Sprintf("%d:%d", id.Bucket, id.Local) }

// IsZero reports whether id is the zero value. Parent links elsewhere in
// the module are *ID (nil means "no parent"), not a zero ID.
func (id ID) IsZero() bool { return id.Bucket == 0 && id.Local == 0 }
