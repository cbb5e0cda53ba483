package simdlane

// Column is a lane-packed, fixed-width-agnostic array of T, padded to a
// multiple of its lane width W (spec.md §4.1). The zero value is not
// usable; construct with NewColumn.
type Column[T any] struct {
	width int
	size  int // logical capacity C (rows [0,size) are addressable)
	data  []T // length == blocks(size, width) * width
}

// F32Column, I32Column and I16Column are the three lane-packed element
// kinds spec.md §4.1 names explicitly (f32 for position/scale/damage/etc,
// i32 for color, i16 for ticks/end_time). QuatColumn holds orientation and
// rotation lanes; it shares the same block-packed layout but is composed
// via quaternion math rather than elementwise SIMD (see quat.go).
type F32Column = Column[float32]
type I32Column = Column[int32]
type I16Column = Column[int16]

// blocks returns ⌈capacity/width⌉, the number of SIMD blocks spec.md §4.1
// requires.
func blocks(capacity, width int) int {
	if width <= 0 {
		width = 1
	}
	return (capacity + width - 1) / width
}

// NewColumn allocates a lane-packed column of the given logical capacity,
// filling every lane (including padding lanes beyond capacity) with fill.
func NewColumn[T any](width, capacity int, fill T) *Column[T] {
	if width <= 0 {
		width = 1
	}
	n := blocks(capacity, width) * width
	data := make([]T, n)
	for i := range data {
		data[i] = fill
	}
	return &Column[T]{width: width, size: capacity, data: data}
}

// Width reports the column's lane width W.
func (c *Column[T]) Width() int { return c.width }

// Cap reports the column's logical capacity C.
func (c *Column[T]) Cap() int { return c.size }

// Len reports the padded backing length, always blocks(Cap(),Width())*Width().
func (c *Column[T]) Len() int { return len(c.data) }

// Get returns the value at row i.
func (c *Column[T]) Get(i int) T { return c.data[i] }

// Set stores v at row i.
func (c *Column[T]) Set(i int, v T) { c.data[i] = v }

// Raw exposes the padded backing slice for bulk/vectorized access by
// behaviors that want to iterate a contiguous range directly.
func (c *Column[T]) Raw() []T { return c.data }

// Resize grows or shrinks the column to newCapacity, preserving existing
// values at surviving indices and filling any newly exposed lanes
// (including padding) with fill (spec.md §4.1 "resize(C')").
func (c *Column[T]) Resize(newCapacity int, fill T) {
	n := blocks(newCapacity, c.width) * c.width
	next := make([]T, n)
	copyLen := c.size
	if copyLen > newCapacity {
		copyLen = newCapacity
	}
	copy(next, c.data[:copyLen])
	for i := copyLen; i < n; i++ {
		next[i] = fill
	}
	c.data = next
	c.size = newCapacity
}

// Gather copies the values at the given row indices, in order, into a
// fresh dense scalar buffer — the scratch step compaction uses to
// stream-compact a lane-packed column around a liveness mask (spec.md
// §4.1 "Compaction of lane-packed columns ... through a scratch scalar
// buffer").
func (c *Column[T]) Gather(indices []int) []T {
	out := make([]T, len(indices))
	for k, i := range indices {
		out[k] = c.data[i]
	}
	return out
}

// Repack replaces the column's contents with scratch (the gathered live
// values), re-padding to newCapacity lanes with fill.
func (c *Column[T]) Repack(scratch []T, newCapacity int, fill T) {
	n := blocks(newCapacity, c.width) * c.width
	next := make([]T, n)
	copy(next, scratch)
	for i := len(scratch); i < n; i++ {
		next[i] = fill
	}
	c.data = next
	c.size = newCapacity
}
