package colorutil

import (
	"math"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/nightclipse/dancoren"
)

// LerpHSV blends a and b through HSV space at parameter t ∈ [0,1], taking
// the shorter arc around the hue wheel, and repacks the result as a 24-bit
// PackedColor (spec.md §4.6).
func LerpHSV(a, b dancoren.PackedColor, t float32) dancoren.PackedColor {
	ca := toColorful(a)
	cb := toColorful(b)

	h1, s1, v1 := ca.Hsv()
	h2, s2, v2 := cb.Hsv()

	h := lerpHueShortestArc(h1, h2, float64(t))
	s := lerp(s1, s2, float64(t))
	v := lerp(v1, v2, float64(t))

	out := colorful.Hsv(h, s, v)
	r, g, bch := out.RGB255()
	return dancoren.PackColor(r, g, bch)
}

func toColorful(c dancoren.PackedColor) colorful.Color {
	r, g, b := c.RGB()
	return colorful.Color{R: float64(r) / 255, G: float64(g) / 255, B: float64(b) / 255}
}

func lerp(a, b, t float64) float64 { return a + (b-a)*t }

// lerpHueShortestArc interpolates a hue angle (degrees, [0,360)) through
// the shorter of the two possible arcs between h1 and h2.
func lerpHueShortestArc(h1, h2, t float64) float64 {
	delta := math.Mod(h2-h1+540, 360) - 180
	h := h1 + delta*t
	h = math.Mod(h, 360)
	if h < 0 {
		h += 360
	}
	return h
}
