// Package colorutil provides the color-interpolation helper the render
// package uses to blend a projectile's previous and current packed colors
// (spec.md §4.6 "Colors are interpolated through HSV, hue taking the
// shorter arc, to produce a single 24-bit packed color per slot").
package colorutil
