package coordinator

import (
	"strings"

	"github.com/nightclipse/dancoren"
	"github.com/nightclipse/dancoren/behavior"
	"github.com/nightclipse/dancoren/bucket"
	"github.com/nightclipse/dancoren/column"
)

// signatureSeparator joins signature identifiers into a map key. \x1f
// (unit separator) is chosen because no behavior identifier is expected to
// contain a control character, mirroring how the teacher's builder package
// keys composite lookups on a single delimiter.
const signatureSeparator = "\x1f"

// Coordinator owns every Bucket, the behavior Registry, and the two global
// cross-bucket maps (spec.md §4.5 "State").
type Coordinator struct {
	registry     *behavior.Registry
	buckets      map[string]*bucket.Bucket
	alwaysKeep   map[string]bool
	parentOf     map[dancoren.ID]dancoren.ID
	depthOf      map[dancoren.ID]int16
	nextBucketID uint64
}

// Option configures a Coordinator at construction time (spec.md's ambient
// configuration note: functional options throughout, mirroring the
// teacher's GraphOption/MatrixOptions style).
type Option func(*Coordinator)

// WithAlwaysKeepSignature marks every bucket matching signature as exempt
// from Cleanup's empty-bucket eviction (spec.md §3 "Bucket ... always_keep").
func WithAlwaysKeepSignature(signature []string) Option {
	key := signatureKey(signature)
	return func(c *Coordinator) { c.alwaysKeep[key] = true }
}

// WithReferenceCatalog registers the spec's reference behavior catalog
// (motion1, gravity1, acceleration1, rotate_orientation, rotate_forward,
// motion3, gravity3, acceleration3, mandatory_end) on construction.
func WithReferenceCatalog() Option {
	return func(c *Coordinator) { behavior.RegisterReferenceCatalog(c.registry) }
}

// New constructs an empty Coordinator.
func New(opts ...Option) *Coordinator {
	c := &Coordinator{
		registry:     behavior.NewRegistry(),
		buckets:      make(map[string]*bucket.Bucket),
		alwaysKeep:   make(map[string]bool),
		parentOf:     make(map[dancoren.ID]dancoren.ID),
		depthOf:      make(map[dancoren.ID]int16),
		nextBucketID: 1,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// RegisterBehavior adds b to the Coordinator's behavior registry.
func (c *Coordinator) RegisterBehavior(b behavior.Behavior) error {
	return c.registry.Register(b)
}

// BucketCount reports how many buckets currently exist, useful for tests
// and diagnostics.
func (c *Coordinator) BucketCount() int { return len(c.buckets) }

// BucketStore returns the Column Store of the bucket matching signature,
// or nil if no such bucket exists yet. It exists for diagnostics and
// tests; ordinary embedders drive the simulation through Add/Tick/
// RenderData alone.
func (c *Coordinator) BucketStore(signature []string) *column.Store {
	b, ok := c.buckets[signatureKey(signature)]
	if !ok {
		return nil
	}
	return b.Store()
}

func signatureKey(signature []string) string {
	return strings.Join(signature, signatureSeparator)
}
