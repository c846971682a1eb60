package ui

import (
	"image/color"
	"math"

	"centipede/game"
	"centipede/game/entity"
	"centipede/game/types"
)

// Drawing proportions, relative to the radius they are attached to.
const (
	capsuleLengthRatio  = 1.05
	gradientLengthRatio = 1.15

	legBaseRatio   = 1.4
	femurRatio     = 3.0
	tibiaRatio     = 2.5
	kneeBend       = 0.6
	legSwing       = 0.45
	legCadence     = 7.0
	legPhaseStep   = 0.5
	legWidthRatio  = 0.32
	legMinWidth    = 2.0
	foodGlowRatio  = 2.2
	eyeRatio       = 0.55
	eyeSideRatio   = 0.9
	pupilRatio     = 0.45
	pupilShift     = 0.35
	antennaSpread  = 0.35
	antennaWobble  = 0.25
	antennaRate    = 4.0
	antennaLenRate = 3.5
	antennaWidth   = 0.2
	antennaMinW    = 1.6
)

var (
	trailOverlay = color.NRGBA{A: 56} // rgba(0,0,0,0.22)
	eyeWhite     = color.NRGBA{R: 255, G: 255, B: 255, A: 255}
	pupilColor   = color.NRGBA{R: 0x11, G: 0x11, B: 0x11, A: 255}
)

// Renderer turns the game state into Canvas primitives.
type Renderer struct{}

func NewRenderer() *Renderer {
	return &Renderer{}
}

// Draw paints one frame: fade, food, body tail to head with legs, then
// the head's eyes and antennas.
func (r *Renderer) Draw(c Canvas, g *game.Game) {
	c.Overlay(trailOverlay)

	for _, f := range g.GetFoodList() {
		drawFood(c, f)
	}

	cr := g.Creature()
	cfg := cr.Config()
	segs := cr.Segments()
	n := len(segs)

	for i := n - 1; i >= 0; i-- {
		s := segs[i]
		t := 0.0
		if n > 1 {
			t = float64(i) / float64(n-1)
		}
		drawSegment(c, s, cfg, t)

		if i%cfg.LegsEvery == 0 {
			left, right := legs(s, i, cr.Time())
			legColor := HSLA(cfg.LegHue, 100, 40, 0.95)
			width := math.Max(legMinWidth, s.Radius*legWidthRatio)
			c.StrokePolyline(left, width, legColor)
			c.StrokePolyline(right, width, legColor)
		}
	}

	drawHead(c, segs[0], cfg, cr.Time(), cr.AntennaLean())
}

func drawFood(c Canvas, f entity.Food) {
	glow := f.Radius * foodGlowRatio
	c.FillCircle(f.Pos, glow, RadialGradient{
		Center: f.Pos,
		Radius: glow,
		Stops: []Stop{
			{0, HSLA(f.Hue, 100, 60, 1)},
			{1, HSLA(f.Hue, 100, 55, 0)},
		},
	})
	c.FillCircle(f.Pos, f.Radius, Solid(HSL(f.Hue, 95, 55)))
}

func drawSegment(c Canvas, s entity.Segment, cfg types.Config, t float64) {
	dir := s.Direction()

	half := math.Max(0, cfg.SegmentLength*capsuleLengthRatio*0.5-s.Radius)
	a, b := s.Pos.Sub(dir.Mul(half)), s.Pos.Add(dir.Mul(half))

	c.FillCapsule(a, b, s.Radius, BodyGradient(s, cfg, t))
}

// BodyGradient is the shading across one segment; t runs from 0 at the
// head to 1 at the tail.
func BodyGradient(s entity.Segment, cfg types.Config, t float64) LinearGradient {
	span := s.Direction().Mul(cfg.SegmentLength * gradientLengthRatio * 0.5)
	lum := 45 + 10*t
	return LinearGradient{
		From: s.Pos.Sub(span),
		To:   s.Pos.Add(span),
		Stops: []Stop{
			{0, HSL(cfg.BodyHue, 60, lum-8)},
			{0.45, HSL(cfg.BodyHue, 70, lum+10)},
			{1, HSL(cfg.BodyHue, 55, lum-10)},
		},
	}
}

// legs returns the hip, knee and foot of the left and right legs of
// segment i at the given animation time.
func legs(s entity.Segment, i int, time float64) (left, right []types.Point) {
	side := types.FromAngle(s.Angle+math.Pi/2, s.Radius*legBaseRatio)
	swing := legSwing * math.Sin(time*legCadence+float64(i)*legPhaseStep)

	femur, tibia := s.Radius*femurRatio, s.Radius*tibiaRatio

	leg := func(hip types.Point, dir, bend float64) []types.Point {
		knee := hip.Add(types.FromAngle(dir, femur))
		foot := knee.Add(types.FromAngle(dir+bend, tibia))
		return []types.Point{hip, knee, foot}
	}

	left = leg(s.Pos.Add(side), s.Angle-math.Pi/2+swing, kneeBend)
	right = leg(s.Pos.Sub(side), s.Angle+math.Pi/2-swing, -kneeBend)
	return left, right
}

func drawHead(c Canvas, h entity.Segment, cfg types.Config, time, lean float64) {
	headR := cfg.HeadRadius()
	eyeR := headR * eyeRatio
	forward := h.Direction().Mul(eyeR * pupilShift)

	for _, e := range eyes(h, headR) {
		c.FillCircle(e, eyeR, Solid(eyeWhite))
		c.FillCircle(e.Add(forward), eyeR*pupilRatio, Solid(pupilColor))
	}

	antColor := HSLA(cfg.LegHue, 100, 35, 0.95)
	width := math.Max(antennaMinW, headR*antennaWidth)
	for _, a := range antennas(h, headR, time, lean) {
		c.StrokePolyline(a, width, antColor)
	}
}

// eyes returns the left and right eye centres.
func eyes(h entity.Segment, headR float64) [2]types.Point {
	side := types.FromAngle(h.Angle+math.Pi/2, headR*eyeSideRatio)
	return [2]types.Point{h.Pos.Add(side), h.Pos.Sub(side)}
}

func antennas(h entity.Segment, headR, time, lean float64) [2][]types.Point {
	osc := antennaWobble * math.Sin(time*antennaRate)
	reach := headR + headR*antennaLenRate

	leftBase := h.Pos.Add(types.FromAngle(h.Angle+math.Pi/2, headR))
	rightBase := h.Pos.Add(types.FromAngle(h.Angle-math.Pi/2, headR))
	leftTip := h.Pos.Add(types.FromAngle(h.Angle+antennaSpread+osc+lean, reach))
	rightTip := h.Pos.Add(types.FromAngle(h.Angle-antennaSpread-osc+lean, reach))

	return [2][]types.Point{{leftBase, leftTip}, {rightBase, rightTip}}
}
