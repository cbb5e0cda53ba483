package dancoren

import "github.com/go-gl/mathgl/mgl32"

// Attribute is one typed initial-value assignment inside a SpawnDescriptor
// (spec.md §3 Spawn Descriptor: "an ordered list of typed initial attribute
// assignments"). Exactly one of Vec3/Quat/Scalar/Color/Form is meaningful,
// selected by Kind; the others are zero. This mirrors a tagged union
// without the overhead of an interface{} per attribute.
type Attribute struct {
	Kind   ColumnKind
	Vec3   mgl32.Vec3 // position / scale / motion / gravity / forward axes
	Quat   mgl32.Quat // orientation / rotation
	Scalar float32    // damage / speed_accel
	Color  PackedColor
	Form   Form
}

// PackedColor is a 24-bit RGB value packed into the low bits of a uint32,
// per spec.md §3 ("packed 24-bit RGB in a 32-bit integer").
type PackedColor uint32

// PackColor packs 8-bit r,g,b channels into a PackedColor.
func PackColor(r, g, b uint8) PackedColor {
	return PackedColor(uint32(r)<<16 | uint32(g)<<8 | uint32(b))
}

// RGB unpacks a PackedColor into its 8-bit r,g,b channels.
func (c PackedColor) RGB() (r, g, b uint8) {
	return uint8(c >> 16), uint8(c >> 8), uint8(c)
}

// Vec3Attr builds an Attribute for a vector-valued kind (position, scale,
// motion, gravity, forward).
func Vec3Attr(kind ColumnKind, v mgl32.Vec3) Attribute {
	return Attribute{Kind: kind, Vec3: v}
}

// QuatAttr builds an Attribute for a quaternion-valued kind (orientation,
// rotation).
func QuatAttr(kind ColumnKind, q mgl32.Quat) Attribute {
	return Attribute{Kind: kind, Quat: q}
}

// ScalarAttr builds an Attribute for a scalar-valued kind (damage,
// speed_accel).
func ScalarAttr(kind ColumnKind, v float32) Attribute {
	return Attribute{Kind: kind, Scalar: v}
}

// ColorAttr builds an Attribute for a color-valued kind (primary/secondary
// color).
func ColorAttr(kind ColumnKind, c PackedColor) Attribute {
	return Attribute{Kind: kind, Color: c}
}

// FormAttr builds an Attribute carrying an opaque Form handle.
func FormAttr(f Form) Attribute {
	return Attribute{Kind: ColForm, Form: f}
}
