package desktop

import (
	"image/color"

	"centipede/game/types"
	"centipede/ui"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// stripStep is the spacing in pixels of the chords a gradient capsule is
// drawn with.
const stripStep = 1.0

// canvas draws into whatever raylib target is active. Size is tracked by
// the backend.
type canvas struct {
	width, height int32
}

func (c *canvas) Size() types.Bounds {
	return types.Bounds{Width: float64(c.width), Height: float64(c.height)}
}

func (c *canvas) Overlay(col color.NRGBA) {
	rl.DrawRectangle(0, 0, c.width, c.height, toColor(col))
}

func (c *canvas) FillCircle(center types.Point, r float64, p ui.Paint) {
	switch p := p.(type) {
	case ui.Solid:
		rl.DrawCircleV(vec(center), float32(r), toColor(color.NRGBA(p)))
	case ui.RadialGradient:
		rl.DrawCircleGradient(int32(center.X), int32(center.Y), float32(r),
			toColor(p.ColorAt(p.Center)),
			toColor(p.ColorAt(p.Center.Add(types.Point{X: p.Radius}))))
	default:
		rl.DrawCircleV(vec(center), float32(r), toColor(p.ColorAt(center)))
	}
}

func (c *canvas) FillCapsule(a, b types.Point, r float64, p ui.Paint) {
	if s, ok := p.(ui.Solid); ok {
		col := toColor(color.NRGBA(s))
		rl.DrawLineEx(vec(a), vec(b), float32(2*r), col)
		rl.DrawCircleV(vec(a), float32(r), col)
		rl.DrawCircleV(vec(b), float32(r), col)
		return
	}
	for _, s := range ui.CapsuleStrips(a, b, r, p, stripStep) {
		rl.DrawLineEx(vec(s.From), vec(s.To), stripStep*1.5, toColor(s.Color))
	}
}

func (c *canvas) StrokePolyline(pts []types.Point, width float64, col color.NRGBA) {
	rc := toColor(col)
	for i := 1; i < len(pts); i++ {
		rl.DrawLineEx(vec(pts[i-1]), vec(pts[i]), float32(width), rc)
	}
	for _, p := range pts {
		rl.DrawCircleV(vec(p), float32(width/2), rc)
	}
}

func vec(p types.Point) rl.Vector2 {
	return rl.NewVector2(float32(p.X), float32(p.Y))
}

// raylib colours are straight alpha despite the color.RGBA type.
func toColor(c color.NRGBA) rl.Color {
	return rl.Color{R: c.R, G: c.G, B: c.B, A: c.A}
}
