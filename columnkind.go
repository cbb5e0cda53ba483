package dancoren

// ColumnKind identifies one optional, behavior-declared attribute column.
// A Bucket allocates a column in this set if and only if at least one of
// its resolved behaviors requires it (spec.md §3 Invariant 2). ColumnKind
// values compose into a ColumnSet bitmask via bitwise OR, mirroring how the
// teacher's GraphOption/MatrixOptions flags compose independent booleans
// into one configuration value.
//
// Columns not listed here (id, ticks_existed, end_time, dead, next_stage,
// next_stage_add_data, parent, transform_mats, family_depth) are always
// present in every bucket and therefore never appear in a ColumnSet.
type ColumnKind uint32

// ColumnSet is an OR-combination of ColumnKind bits: a behavior's required
// set, or a spawn descriptor's next-stage additive-data mask.
type ColumnSet = ColumnKind

// Position, scale, orientation and color kinds each imply allocation of a
// paired "previous tick" column (old_pos_*, old_scale_*, old_orientation,
// old_color_*) for interpolation — the pairing is automatic in the column
// store and is not itself a separate bit here.
const (
	ColPosX ColumnKind = 1 << iota
	ColPosY
	ColPosZ
	ColScaleX
	ColScaleY
	ColScaleZ
	ColOrientation
	ColRotation
	ColColorPrimary
	ColColorSecondary
	ColDamage
	ColForm
	ColRenderProps
	ColMotionX
	ColMotionY
	ColMotionZ
	ColGravityX
	ColGravityY
	ColGravityZ
	ColSpeedAccel
	ColForwardX
	ColForwardY
	ColForwardZ

	// colKindCount is the number of distinct ColumnKind bits defined above;
	// keep it last so it always tracks the iota count.
	colKindCount = iota
)

// Has reports whether set contains every bit in kind.
func (set ColumnSet) Has(kind ColumnKind) bool { return set&kind == kind }

// Union returns the bitwise OR of set and other.
func (set ColumnSet) Union(other ColumnSet) ColumnSet { return set | other }

// Intersect returns the bits present in both set and other — this is the
// operation mandatory_end uses to find which attributes on a next-stage
// descriptor are both allocated in the bucket and requested by the
// descriptor's additive mask (spec.md §4.3 step 3c).
func (set ColumnSet) Intersect(other ColumnSet) ColumnSet { return set & other }

// PosSet, ScaleSet, MotionSet, GravitySet and ForwardSet group the three
// axis bits of a vector attribute, handy for "is any axis required" checks.
var (
	PosSet     = ColPosX | ColPosY | ColPosZ
	ScaleSet   = ColScaleX | ColScaleY | ColScaleZ
	MotionSet  = ColMotionX | ColMotionY | ColMotionZ
	GravitySet = ColGravityX | ColGravityY | ColGravityZ
	ForwardSet = ColForwardX | ColForwardY | ColForwardZ
)
