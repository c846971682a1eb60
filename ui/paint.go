package ui

import (
	"image/color"
	"math"

	"centipede/game/types"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// Paint answers the fill colour at a point in world space.
type Paint interface {
	ColorAt(p types.Point) color.NRGBA
}

// Solid paints every point the same colour.
type Solid color.NRGBA

func (s Solid) ColorAt(types.Point) color.NRGBA {
	return color.NRGBA(s)
}

// Stop is a gradient colour stop at Offset in [0,1].
type Stop struct {
	Offset float64
	Color  color.NRGBA
}

// LinearGradient varies along the From→To axis; points beyond either end
// take the end colour.
type LinearGradient struct {
	From, To types.Point
	Stops    []Stop
}

func (g LinearGradient) ColorAt(p types.Point) color.NRGBA {
	axis := g.To.Sub(g.From)
	l2 := axis.Dot(axis)
	if l2 == 0 {
		return sample(g.Stops, 0)
	}
	return sample(g.Stops, p.Sub(g.From).Dot(axis)/l2)
}

// RadialGradient varies with distance from Center, reaching the last stop
// at Radius.
type RadialGradient struct {
	Center types.Point
	Radius float64
	Stops  []Stop
}

func (g RadialGradient) ColorAt(p types.Point) color.NRGBA {
	if g.Radius <= 0 {
		return sample(g.Stops, 1)
	}
	return sample(g.Stops, types.Distance(p, g.Center)/g.Radius)
}

// sample evaluates sorted stops at t. RGB is blended by go-colorful,
// alpha linearly.
func sample(stops []Stop, t float64) color.NRGBA {
	switch {
	case len(stops) == 0:
		return color.NRGBA{}
	case math.IsNaN(t) || t <= stops[0].Offset:
		return stops[0].Color
	case t >= stops[len(stops)-1].Offset:
		return stops[len(stops)-1].Color
	}

	for i := 1; i < len(stops); i++ {
		lo, hi := stops[i-1], stops[i]
		if t > hi.Offset {
			continue
		}
		span := hi.Offset - lo.Offset
		if span <= 0 {
			return hi.Color
		}
		return mix(lo.Color, hi.Color, (t-lo.Offset)/span)
	}
	return stops[len(stops)-1].Color
}

func mix(a, b color.NRGBA, t float64) color.NRGBA {
	c := toColorful(a).BlendRgb(toColorful(b), t)
	r, g, bl := c.Clamped().RGB255()
	return color.NRGBA{R: r, G: g, B: bl, A: uint8(math.Round(types.Lerp(float64(a.A), float64(b.A), t)))}
}

func toColorful(c color.NRGBA) colorful.Color {
	return colorful.Color{R: float64(c.R) / 255, G: float64(c.G) / 255, B: float64(c.B) / 255}
}

// HSLA converts CSS-style hue (degrees), saturation and lightness
// (percent) and alpha (0..1).
func HSLA(h, s, l, a float64) color.NRGBA {
	c := colorful.Hsl(math.Mod(math.Mod(h, 360)+360, 360), types.Clamp(s/100, 0, 1), types.Clamp(l/100, 0, 1))
	r, g, b := c.Clamped().RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: uint8(math.Round(types.Clamp(a, 0, 1) * 255))}
}

func HSL(h, s, l float64) color.NRGBA {
	return HSLA(h, s, l, 1)
}

// Over composites src onto an opaque-or-not dst with source-over.
func Over(dst, src color.NRGBA) color.NRGBA {
	sa := float64(src.A) / 255
	if sa <= 0 {
		return dst
	}
	da := float64(dst.A) / 255
	oa := sa + da*(1-sa)
	if oa <= 0 {
		return color.NRGBA{}
	}
	ch := func(s, d uint8) uint8 {
		v := (float64(s)*sa + float64(d)*da*(1-sa)) / oa
		return uint8(math.Round(types.Clamp(v, 0, 255)))
	}
	return color.NRGBA{
		R: ch(src.R, dst.R),
		G: ch(src.G, dst.G),
		B: ch(src.B, dst.B),
		A: uint8(math.Round(oa * 255)),
	}
}
